package catalog

import "github.com/jhoicas/clubhub-api/internal/domain/entity"

// Excepciones a la regla por defecto. La regla por defecto se deriva del
// catálogo: un rol tiene View sobre los módulos donde aparece en
// DefaultRoles, y los roles administrativos además Create/Edit.
var permissionOverrides = map[string]map[string]entity.Capability{
	entity.RoleClubAdmin: {
		// El club admin consulta finanzas pero no emite facturas.
		ModuleInvoices: {View: true, Update: true},
	},
	entity.RoleCoach: {
		// Los coaches gestionan entrenamientos pero el calendario del club
		// solo lo actualizan, no crean entradas nuevas.
		ModuleSchedules: {View: true, Update: true},
		ModuleTrainings: {View: true, Create: true, Edit: true},
	},
	entity.RoleAthlete: {
		ModuleProfile: {View: true, Update: true},
		// Las finanzas del club nunca se muestran a atletas, aunque una
		// allow-list mal configurada las incluya.
		ModuleFinance:  {},
		ModuleInvoices: {},
	},
	entity.RoleSupplier: {
		ModuleJersey: {View: true, Create: true, Edit: true},
	},
}

// PermissionFor capacidad del rol sobre el módulo. Rol o módulo desconocidos
// devuelven la capacidad cero (todo en false), nunca error.
func PermissionFor(role, moduleID string) entity.Capability {
	if byModule, ok := permissionOverrides[role]; ok {
		if cap, ok := byModule[moduleID]; ok {
			return cap
		}
	}
	m, ok := moduleIndex[moduleID]
	if !ok || m.RestrictedFor(role) {
		return entity.Capability{}
	}
	for _, r := range m.DefaultRoles {
		if r == role {
			admin := role == entity.RoleSuperAdmin || role == entity.RoleClubAdmin
			return entity.Capability{View: true, Create: admin, Edit: admin, Update: true}
		}
	}
	// Sin default: el super-admin puede habilitarlo vía allow-list, así que
	// View queda en true salvo restricción; el resto de capacidades en false.
	if role == entity.RoleSuperAdmin {
		return entity.Capability{View: true, Create: true, Edit: true, Update: true}
	}
	return entity.Capability{View: true}
}

// CanView atajo sobre PermissionFor.
func CanView(role, moduleID string) bool {
	return PermissionFor(role, moduleID).View
}
