package dto

// GroupPayload grupo de navegación en la API de edición.
type GroupPayload struct {
	ID       string              `json:"id"`
	Label    string              `json:"label"`
	Color    string              `json:"color,omitempty"`
	Members  []string            `json:"members"`
	Children map[string][]string `json:"children,omitempty"`
}

// GroupAssignmentResponse asignación de grupos vigente de un rol.
// Defaults=true indica que el rol usa el catálogo sin personalizar.
type GroupAssignmentResponse struct {
	Role     string         `json:"role"`
	Groups   []GroupPayload `json:"groups"`
	Defaults bool           `json:"defaults"`
}

// SaveGroupAssignmentRequest reemplazo completo de la asignación de un rol.
type SaveGroupAssignmentRequest struct {
	Groups []GroupPayload `json:"groups"`
}

// MoveModuleRequest gesto de drag-and-drop entre grupos: mover Source al
// grupo DestGroup, delante de DestItem (vacío = al final del grupo).
type MoveModuleRequest struct {
	Source    string `json:"source"`
	DestGroup string `json:"dest_group"`
	DestItem  string `json:"dest_item,omitempty"`
}

// ReorderGroupsRequest reordenado de los propios grupos: mover Source a la
// posición de Destination.
type ReorderGroupsRequest struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
}
