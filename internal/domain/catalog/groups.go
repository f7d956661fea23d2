package catalog

import "github.com/jhoicas/clubhub-api/internal/domain/entity"

// Identificadores de grupos de navegación.
const (
	GroupGeneral  = "general"
	GroupClub     = "club"
	GroupFinanzas = "finanzas"
	GroupComercio = "comercio"
)

// Grupos de navegación por defecto. Un módulo pertenece como mucho a la
// lista top-level de un grupo; los hijos anidados (Children) se renderizan
// solo bajo su padre. El orden de esta lista y de Members es el orden de
// renderizado: el resolver no reordena nada.
var groups = []entity.Group{
	{
		ID:      GroupGeneral,
		Label:   "General",
		Color:   "#3b82f6",
		Members: []string{ModuleDashboard, ModuleProfile, ModuleMessages, ModuleSettings},
	},
	{
		ID:      GroupClub,
		Label:   "Mi club",
		Color:   "#10b981",
		Members: []string{ModuleMembers, ModuleTeams, ModuleSchedules, ModuleEvents, ModuleDocuments},
		Children: map[string][]string{
			ModuleTeams: {ModuleTrainings},
		},
	},
	{
		ID:      GroupFinanzas,
		Label:   "Administración",
		Color:   "#f59e0b",
		Members: []string{ModuleFinance, ModuleReports},
		Children: map[string][]string{
			ModuleFinance: {ModuleInvoices},
		},
	},
	{
		ID:      GroupComercio,
		Label:   "Comercio",
		Color:   "#8b5cf6",
		Members: []string{ModuleShop, ModuleJersey, ModuleSuppliers},
	},
}

// Groups devuelve el catálogo de grupos (copia profunda, el catálogo es
// inmutable).
func Groups() []entity.Group {
	out := make([]entity.Group, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.Clone())
	}
	return out
}

// GroupByID busca un grupo por identificador.
func GroupByID(id string) (entity.Group, bool) {
	for _, g := range groups {
		if g.ID == id {
			return g.Clone(), true
		}
	}
	return entity.Group{}, false
}
