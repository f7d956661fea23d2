package dto

// LayoutRecordPayload forma exacta del contrato persistido de un layout:
// { order: string[], hidden: string[] }. Cualquier registro al que le falte
// uno de los dos campos se trata como ausente, no como error.
type LayoutRecordPayload struct {
	Order  []string `json:"order"`
	Hidden []string `json:"hidden"`
}

// ResolveLayoutRequest reconcilia el registro guardado de una feature key
// contra sus ítems canónicos actuales (la feature dueña de la key es quien
// los conoce).
type ResolveLayoutRequest struct {
	Items []string `json:"items"`
}

// MoveLayoutRequest gesto de reordenado: mover source a la posición de
// destination dentro del orden de la feature key.
type MoveLayoutRequest struct {
	Items       []string `json:"items"`
	Source      string   `json:"source"`
	Destination string   `json:"destination"`
}

// LayoutResponse registro reconciliado devuelto al caller.
type LayoutResponse struct {
	FeatureKey string           `json:"feature_key"`
	Order      []string         `json:"order"`
	Hidden     []string         `json:"hidden"`
	Warning    *WarningResponse `json:"warning,omitempty"`
}
