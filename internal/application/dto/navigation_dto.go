package dto

// NavigationItem módulo resuelto dentro de un grupo. Matched es false solo
// con búsqueda activa, cuando el ítem se conserva porque un hijo coincide.
type NavigationItem struct {
	ID       string           `json:"id"`
	Label    string           `json:"label"`
	Icon     string           `json:"icon,omitempty"`
	Matched  bool             `json:"matched"`
	Children []NavigationItem `json:"children,omitempty"`
}

// NavigationGroup grupo resuelto del sidebar.
type NavigationGroup struct {
	ID    string           `json:"id"`
	Label string           `json:"label"`
	Color string           `json:"color,omitempty"`
	Items []NavigationItem `json:"items"`
}

// NavigationResponse vista completa de navegación para un rol.
// Warning no vacío indica resolución degradada (fallback a defaults).
type NavigationResponse struct {
	Role    string            `json:"role"`
	Groups  []NavigationGroup `json:"groups"`
	Warning *WarningResponse  `json:"warning,omitempty"`
}
