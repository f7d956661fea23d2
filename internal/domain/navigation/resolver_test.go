package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clubhub-api/internal/domain/entity"
	"github.com/jhoicas/clubhub-api/internal/domain/navigation"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

func testModules() []entity.Module {
	return []entity.Module{
		{ID: "dashboard", Label: "Dashboard"},
		{ID: "profile", Label: "Perfil"},
		{ID: "finance", Label: "Finanzas"},
		{ID: "invoices", Label: "Facturas"},
		{ID: "schedules", Label: "Calendario"},
		{ID: "jersey", Label: "Camisetas", RestrictedTo: []string{"SUPPLIER", "SUPER_ADMIN"}},
		{ID: "shop", Label: "Tienda"},
	}
}

func testGroups() []entity.Group {
	return []entity.Group{
		{
			ID: "general", Label: "General",
			Members: []string{"dashboard", "profile"},
		},
		{
			ID: "admin", Label: "Administración",
			Members:  []string{"finance", "invoices", "schedules"},
			Children: map[string][]string{"finance": {"schedules"}},
		},
		{
			ID: "comercio", Label: "Comercio",
			Members: []string{"shop", "jersey"},
		},
	}
}

// allView todos los roles ven todo (la matriz no recorta); los tests de
// permisos usan una función propia.
func allView(role, moduleID string) entity.Capability {
	return entity.Capability{View: true}
}

func newTestResolver() *navigation.Resolver {
	return navigation.NewResolver(testModules(), testGroups(), allView)
}

func visibleIDs(view navigation.View) []string {
	var out []string
	for _, g := range view.Groups {
		for _, it := range g.Items {
			out = append(out, it.Module.ID)
		}
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Capas de recorte
// ──────────────────────────────────────────────────────────────────────────────

// El override solo puede recortar: un id fuera de la allow-list se excluye
// en silencio.
func TestResolve_OverrideNuncaAmplia(t *testing.T) {
	r := newTestResolver()
	view := r.Resolve("CLUB",
		[]string{"dashboard", "profile"},
		[]string{"profile", "finance"}, // finance no está en la allow-list
		"")

	assert.Equal(t, []string{"profile"}, visibleIDs(view),
		"el conjunto efectivo es override ∩ allow-list")
}

// Contención: el conjunto efectivo siempre es subconjunto de la allow-list.
func TestEffectiveAllowList_ContenidaEnAllowList(t *testing.T) {
	r := newTestResolver()
	allow := []string{"dashboard", "finance", "shop"}
	overrides := [][]string{
		nil,
		{},
		{"shop", "dashboard"},
		{"finance", "jersey", "no-existe", "finance"},
	}
	inAllow := map[string]bool{"dashboard": true, "finance": true, "shop": true}
	for _, ov := range overrides {
		for _, id := range r.EffectiveAllowList("CLUB", allow, ov) {
			assert.True(t, inAllow[id], "id fuera de la allow-list: %s (override=%v)", id, ov)
		}
	}
}

// Restricción dura: un módulo con RestrictedTo jamás se resuelve para un rol
// ajeno, aunque la allow-list lo incluya por misconfiguración.
func TestResolve_RestriccionInviolable(t *testing.T) {
	r := newTestResolver()
	allow := []string{"shop", "jersey"}

	club := r.Resolve("CLUB", allow, nil, "")
	assert.NotContains(t, visibleIDs(club), "jersey")
	assert.Contains(t, visibleIDs(club), "shop")

	supplier := r.Resolve("SUPPLIER", allow, nil, "")
	assert.Contains(t, visibleIDs(supplier), "jersey",
		"el rol permitido sí lo ve")
}

// View=false en la matriz excluye el módulo aunque esté en la allow-list.
func TestResolve_PermisoViewFalseExcluye(t *testing.T) {
	perms := func(role, moduleID string) entity.Capability {
		if role == "ATHLETE" && moduleID == "finance" {
			return entity.Capability{}
		}
		return entity.Capability{View: true}
	}
	r := navigation.NewResolver(testModules(), testGroups(), perms)
	view := r.Resolve("ATHLETE", []string{"dashboard", "finance"}, nil, "")

	assert.Equal(t, []string{"dashboard"}, visibleIDs(view))
}

// Monotonía: quitar un id de la allow-list nunca agranda el conjunto visible.
func TestResolve_QuitarDeAllowListEsMonotono(t *testing.T) {
	r := newTestResolver()
	full := []string{"dashboard", "profile", "finance", "shop"}
	reduced := []string{"dashboard", "profile", "shop"}
	override := []string{"profile", "finance", "shop"}

	before := visibleIDs(r.Resolve("CLUB", full, override, ""))
	after := visibleIDs(r.Resolve("CLUB", reduced, override, ""))

	assert.Subset(t, before, after, "el conjunto resuelto solo puede encoger")
	assert.NotContains(t, after, "finance")
}

// ──────────────────────────────────────────────────────────────────────────────
// Grupos y anidamiento
// ──────────────────────────────────────────────────────────────────────────────

// Un hijo anidado no se repite al nivel superior de su grupo.
func TestResolve_HijoAnidadoNoDuplicaTopLevel(t *testing.T) {
	r := newTestResolver()
	allow := []string{"finance", "invoices", "schedules"}
	view := r.Resolve("CLUB", allow, nil, "")

	require.Len(t, view.Groups, 1)
	g := view.Groups[0]
	ids := make([]string, 0, len(g.Items))
	for _, it := range g.Items {
		ids = append(ids, it.Module.ID)
	}
	assert.Equal(t, []string{"finance", "invoices"}, ids,
		"schedules solo se renderiza bajo finance")

	require.NotEmpty(t, g.Items[0].Children)
	assert.Equal(t, "schedules", g.Items[0].Children[0].ID)
}

// Un grupo sin ítems visibles desaparece de la salida.
func TestResolve_GrupoVacioSeOmite(t *testing.T) {
	r := newTestResolver()
	view := r.Resolve("CLUB", []string{"dashboard"}, nil, "")

	require.Len(t, view.Groups, 1)
	assert.Equal(t, "general", view.Groups[0].Group.ID)
}

// Un módulo presente en dos grupos se renderiza en ambos (la deduplicación
// entre grupos no se modela).
func TestResolve_ModuloEnDosGrupos_AmbosLoRenderizan(t *testing.T) {
	groups := []entity.Group{
		{ID: "g1", Label: "Uno", Members: []string{"dashboard"}},
		{ID: "g2", Label: "Dos", Members: []string{"dashboard"}},
	}
	r := navigation.NewResolver(testModules(), groups, allView)
	view := r.Resolve("CLUB", []string{"dashboard"}, nil, "")

	assert.Equal(t, []string{"dashboard", "dashboard"}, visibleIDs(view))
}

// Rol desconocido: resultado vacío, no error (la allow-list que le llegue
// estará vacía y la matriz no le concede View).
func TestResolve_RolDesconocido_VistaVacia(t *testing.T) {
	perms := func(role, moduleID string) entity.Capability {
		return entity.Capability{} // nadie conocido
	}
	r := navigation.NewResolver(testModules(), testGroups(), perms)
	view := r.Resolve("NO_EXISTE", []string{"dashboard", "profile"}, nil, "")
	assert.Empty(t, view.Groups)
}

// Determinismo: entradas idénticas producen salidas idénticas, con el orden
// de catálogo preservado.
func TestResolve_EsDeterminista(t *testing.T) {
	r := newTestResolver()
	allow := []string{"shop", "profile", "dashboard", "finance"}
	a := r.Resolve("CLUB", allow, nil, "")
	b := r.Resolve("CLUB", allow, nil, "")
	assert.Equal(t, a, b)

	// El orden de miembros viene del grupo, no de la allow-list.
	assert.Equal(t, "dashboard", a.Groups[0].Items[0].Module.ID)
	assert.Equal(t, "profile", a.Groups[0].Items[1].Module.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Búsqueda
// ──────────────────────────────────────────────────────────────────────────────

// Un hijo que coincide conserva a su padre aunque el padre no coincida; el
// padre queda marcado como no-coincidente (contenedor atenuado).
func TestResolve_BusquedaCoincideHijo_ConservaPadre(t *testing.T) {
	r := newTestResolver()
	allow := []string{"finance", "invoices", "schedules"}
	view := r.Resolve("CLUB", allow, nil, "sched")

	require.Len(t, view.Groups, 1)
	require.Len(t, view.Groups[0].Items, 1)
	item := view.Groups[0].Items[0]
	assert.Equal(t, "finance", item.Module.ID)
	assert.False(t, item.Matched, "finance no coincide por sí mismo")
	require.Len(t, item.Children, 1)
	assert.Equal(t, "schedules", item.Children[0].ID)
}

// Con el padre coincidente, los hijos igualmente se filtran a coincidentes.
func TestResolve_BusquedaFiltraHijos(t *testing.T) {
	r := newTestResolver()
	allow := []string{"finance", "schedules"}
	view := r.Resolve("CLUB", allow, nil, "finanzas")

	require.Len(t, view.Groups, 1)
	item := view.Groups[0].Items[0]
	assert.True(t, item.Matched)
	assert.Empty(t, item.Children, "schedules no coincide con 'finanzas'")
}

func TestResolve_BusquedaSinResultados_VistaVacia(t *testing.T) {
	r := newTestResolver()
	view := r.Resolve("CLUB", []string{"dashboard", "profile"}, nil, "zzz")
	assert.Empty(t, view.Groups)
}

// La búsqueda ignora mayúsculas y diacríticos.
func TestNormalize_IgnoraDiacriticos(t *testing.T) {
	assert.Equal(t, "configuracion", navigation.Normalize("  Configuración "))
	assert.Equal(t, "camisetas", navigation.Normalize("CAMISETAS"))
}

func TestResolve_BusquedaConAcentos(t *testing.T) {
	r := newTestResolver()
	view := r.Resolve("CLUB", []string{"finance"}, nil, "FINÁN")

	require.Len(t, view.Groups, 1)
	assert.Equal(t, "finance", view.Groups[0].Items[0].Module.ID)
}
