package entity

import "time"

// RoleUISettings configuración de UI por rol definida por el super-admin.
// AllowedModules es la allow-list: el techo de módulos que ese rol puede
// llegar a ver en cualquier club. Hay exactamente un registro por rol; nunca
// se borra, solo se reemplaza o se restablece a los defaults del catálogo.
type RoleUISettings struct {
	Role           string
	AllowedModules []string
	PrimaryColor   string
	SecondaryColor string
	Widgets        []string // identificadores de widgets del dashboard
	UpdatedAt      time.Time
}

// ClubOverride subconjunto de módulos que un club (tenant) recorta sobre la
// allow-list de un rol. Todo identificador fuera de la allow-list vigente se
// excluye en silencio al resolver; jamás se reporta como error (ventanas de
// consistencia eventual entre ediciones administrativas independientes).
type ClubOverride struct {
	ID        string
	ClubID    string
	Role      string
	Modules   []string
	CreatedAt time.Time
	UpdatedAt time.Time
}
