package entity

import "time"

// LayoutRecord estado persistido de orden/ocultos para una colección
// reordenable, keyed por una feature key arbitraria. Order no tiene por qué
// contener todos los ítems canónicos (los ausentes van al final al
// reconciliar); Hidden es independiente de Order. Cada guardado reemplaza el
// registro completo, nunca hay escrituras parciales.
type LayoutRecord struct {
	FeatureKey string
	Order      []string
	Hidden     []string
	UpdatedAt  time.Time
}
