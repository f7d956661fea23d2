// Package catalog contiene las tablas estáticas de la plataforma: módulos,
// matriz de permisos por rol y grupos de navegación. Se definen en build
// time y son de solo lectura en runtime; los cambios de catálogo se
// despliegan con nuevas versiones.
package catalog

import "github.com/jhoicas/clubhub-api/internal/domain/entity"

// Identificadores de módulos. Deben ser estables entre versiones: los
// registros de layout persistidos se reconcilian contra estos IDs.
const (
	ModuleDashboard = "dashboard"
	ModuleProfile   = "profile"
	ModuleMembers   = "members"
	ModuleTeams     = "teams"
	ModuleSchedules = "schedules"
	ModuleTrainings = "trainings"
	ModuleFinance   = "finance"
	ModuleInvoices  = "invoices"
	ModuleReports   = "reports"
	ModuleEvents    = "events"
	ModuleDocuments = "documents"
	ModuleMessages  = "messages"
	ModuleShop      = "shop"
	ModuleJersey    = "jersey"
	ModuleSuppliers = "suppliers"
	ModuleSettings  = "settings"
)

var allRoles = []string{
	entity.RoleSuperAdmin, entity.RoleClubAdmin, entity.RoleClub,
	entity.RoleCoach, entity.RoleAthlete, entity.RoleSupplier,
}

var modules = []entity.Module{
	{ID: ModuleDashboard, Label: "Dashboard", Icon: "layout-dashboard", Category: "general", DefaultRoles: allRoles},
	{ID: ModuleProfile, Label: "Perfil", Icon: "user", Category: "general", DefaultRoles: allRoles},
	{ID: ModuleMembers, Label: "Miembros", Icon: "users", Category: "club", DefaultRoles: []string{entity.RoleSuperAdmin, entity.RoleClubAdmin, entity.RoleClub}},
	{ID: ModuleTeams, Label: "Equipos", Icon: "shield", Category: "club", DefaultRoles: []string{entity.RoleSuperAdmin, entity.RoleClubAdmin, entity.RoleClub, entity.RoleCoach}},
	{ID: ModuleSchedules, Label: "Calendario", Icon: "calendar", Category: "club", DefaultRoles: []string{entity.RoleSuperAdmin, entity.RoleClubAdmin, entity.RoleClub, entity.RoleCoach, entity.RoleAthlete}},
	{ID: ModuleTrainings, Label: "Entrenamientos", Icon: "dumbbell", Category: "club", DefaultRoles: []string{entity.RoleCoach, entity.RoleAthlete}},
	{ID: ModuleFinance, Label: "Finanzas", Icon: "wallet", Category: "administracion", DefaultRoles: []string{entity.RoleSuperAdmin, entity.RoleClubAdmin}},
	{ID: ModuleInvoices, Label: "Facturas", Icon: "receipt", Category: "administracion", DefaultRoles: []string{entity.RoleSuperAdmin, entity.RoleClubAdmin}},
	{ID: ModuleReports, Label: "Reportes", Icon: "bar-chart", Category: "administracion", DefaultRoles: []string{entity.RoleSuperAdmin, entity.RoleClubAdmin}},
	{ID: ModuleEvents, Label: "Eventos", Icon: "flag", Category: "club", DefaultRoles: []string{entity.RoleSuperAdmin, entity.RoleClubAdmin, entity.RoleClub, entity.RoleCoach, entity.RoleAthlete}},
	{ID: ModuleDocuments, Label: "Documentos", Icon: "folder", Category: "club", DefaultRoles: []string{entity.RoleSuperAdmin, entity.RoleClubAdmin, entity.RoleClub, entity.RoleCoach}},
	{ID: ModuleMessages, Label: "Mensajes", Icon: "mail", Category: "general", DefaultRoles: allRoles},
	{ID: ModuleShop, Label: "Tienda", Icon: "shopping-bag", Category: "comercio", DefaultRoles: []string{entity.RoleClub, entity.RoleAthlete}},
	// jersey y suppliers son módulos del canal de proveedores: restringidos,
	// ninguna allow-list puede abrirlos a otros roles.
	{ID: ModuleJersey, Label: "Camisetas", Icon: "shirt", Category: "comercio", DefaultRoles: []string{entity.RoleSupplier}, RestrictedTo: []string{entity.RoleSupplier, entity.RoleSuperAdmin}},
	{ID: ModuleSuppliers, Label: "Proveedores", Icon: "truck", Category: "comercio", DefaultRoles: []string{entity.RoleSuperAdmin}, RestrictedTo: []string{entity.RoleSuperAdmin}},
	{ID: ModuleSettings, Label: "Configuración", Icon: "settings", Category: "general", DefaultRoles: []string{entity.RoleSuperAdmin, entity.RoleClubAdmin}},
}

var moduleIndex = buildModuleIndex()

func buildModuleIndex() map[string]entity.Module {
	idx := make(map[string]entity.Module, len(modules))
	for _, m := range modules {
		idx[m.ID] = m
	}
	return idx
}

// Modules devuelve el catálogo completo en orden de definición.
// Devuelve una copia: el catálogo es inmutable.
func Modules() []entity.Module {
	return append([]entity.Module(nil), modules...)
}

// ModuleByID busca un módulo por identificador.
func ModuleByID(id string) (entity.Module, bool) {
	m, ok := moduleIndex[id]
	return m, ok
}

// DefaultAllowList módulos visibles por defecto para un rol (antes de
// cualquier configuración del super-admin), en orden de catálogo.
func DefaultAllowList(role string) []string {
	var out []string
	for _, m := range modules {
		if m.RestrictedFor(role) {
			continue
		}
		for _, r := range m.DefaultRoles {
			if r == role {
				out = append(out, m.ID)
				break
			}
		}
	}
	return out
}

// KnownRole indica si el rol existe en el catálogo de roles.
func KnownRole(role string) bool {
	for _, r := range allRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Roles devuelve los roles del sistema en orden de definición.
func Roles() []string {
	return append([]string(nil), allRoles...)
}
