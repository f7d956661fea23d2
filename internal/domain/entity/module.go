package entity

// Roles válidos del sistema.
const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleClubAdmin  = "CLUB_ADMIN"
	RoleClub       = "CLUB"
	RoleCoach      = "COACH"
	RoleAthlete    = "ATHLETE"
	RoleSupplier   = "SUPPLIER"
)

// Module representa una unidad funcional de la plataforma (página/feature)
// con sus metadatos de presentación y visibilidad. El catálogo de módulos
// se define en build time y es de solo lectura en runtime.
type Module struct {
	ID           string   // identificador estable (ej. "dashboard")
	Label        string   // etiqueta visible
	Icon         string   // referencia de ícono para el frontend
	Category     string   // agrupación temática laxa (no es el Group de navegación)
	DefaultRoles []string // roles que lo ven por defecto (sin configuración previa)
	RestrictedTo []string // si no está vacío, SOLO estos roles pueden verlo jamás
}

// RestrictedFor indica si el módulo está vetado para el rol: tiene
// RestrictedTo y el rol no aparece en esa lista. Un módulo vetado nunca es
// visible para ese rol, sin importar allow-lists ni overrides.
func (m Module) RestrictedFor(role string) bool {
	if len(m.RestrictedTo) == 0 {
		return false
	}
	for _, r := range m.RestrictedTo {
		if r == role {
			return false
		}
	}
	return true
}

// Capability permisos CRUD de un rol sobre un módulo.
// View=false implica que el módulo no aparece en ninguna resolución para ese rol.
type Capability struct {
	View   bool
	Create bool
	Edit   bool
	Update bool // variante "solo actualizar" (sin crear ni borrar)
}
