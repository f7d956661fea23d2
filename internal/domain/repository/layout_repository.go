package repository

import (
	"context"

	"github.com/jhoicas/clubhub-api/internal/domain/entity"
)

// LayoutRepository puerto de persistencia para registros orden/ocultos.
// El contrato de forma es exacto: { order: string[], hidden: string[] }.
// Un registro guardado al que le falte cualquiera de los dos campos se
// trata como ausente (Get devuelve nil, nil), nunca como error: dispara la
// reconciliación por defecto.
type LayoutRepository interface {
	Get(ctx context.Context, featureKey string) (*entity.LayoutRecord, error)
	// Save reemplaza el registro completo (no hay escrituras parciales).
	Save(ctx context.Context, record *entity.LayoutRecord) error
}
