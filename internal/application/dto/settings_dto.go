package dto

import "time"

// RoleSettingsResponse configuración de UI vigente de un rol.
type RoleSettingsResponse struct {
	Role           string    `json:"role"`
	AllowedModules []string  `json:"allowed_modules"`
	PrimaryColor   string    `json:"primary_color,omitempty"`
	SecondaryColor string    `json:"secondary_color,omitempty"`
	Widgets        []string  `json:"widgets,omitempty"`
	Defaults       bool      `json:"defaults"` // true si no hay registro guardado
	UpdatedAt      time.Time `json:"updated_at,omitzero"`
}

// UpdateRoleSettingsRequest reemplazo de la configuración de un rol.
type UpdateRoleSettingsRequest struct {
	AllowedModules []string `json:"allowed_modules"`
	PrimaryColor   string   `json:"primary_color"`
	SecondaryColor string   `json:"secondary_color"`
	Widgets        []string `json:"widgets"`
}

// ClubOverrideResponse recorte de módulos de un club para un rol.
type ClubOverrideResponse struct {
	ClubID  string   `json:"club_id"`
	Role    string   `json:"role"`
	Modules []string `json:"modules"`
	// Effective: módulos del override que sobreviven al recorte contra la
	// allow-list vigente (los demás se ignoran en silencio al resolver).
	Effective []string `json:"effective"`
}

// SaveClubOverrideRequest reemplazo del override de un club.
type SaveClubOverrideRequest struct {
	Modules []string `json:"modules"`
}
