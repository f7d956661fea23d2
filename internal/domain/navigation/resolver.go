// Package navigation implementa el motor de resolución de visibilidad:
// compone catálogo de módulos, matriz de permisos, allow-list por rol,
// override por club y término de búsqueda en una estructura agrupada lista
// para renderizar. Todas las operaciones son puras y deterministas; ningún
// camino devuelve error — una entrada desconocida produce una vista vacía.
package navigation

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/clubhub-api/internal/domain/entity"
)

// PermissionFunc consulta la capacidad de un rol sobre un módulo.
type PermissionFunc func(role, moduleID string) entity.Capability

// Item módulo de nivel superior resuelto dentro de un grupo. Matched es
// false solo cuando hay búsqueda activa y el módulo se conserva únicamente
// porque alguno de sus hijos anidados coincide (el frontend lo pinta
// atenuado, como contenedor).
type Item struct {
	Module   entity.Module
	Matched  bool
	Children []entity.Module
}

// GroupView grupo resuelto con sus ítems visibles.
type GroupView struct {
	Group entity.Group
	Items []Item
}

// View resultado completo de una resolución. Puede estar vacía; nunca es
// inválida.
type View struct {
	Role   string
	Groups []GroupView
}

// Resolver compone las tablas estáticas. Es seguro compartirlo entre
// goroutines: no tiene estado mutable.
type Resolver struct {
	modules map[string]entity.Module
	groups  []entity.Group
	perms   PermissionFunc
}

// NewResolver construye un resolver sobre un catálogo de módulos, un
// catálogo de grupos y una matriz de permisos.
func NewResolver(modules []entity.Module, groups []entity.Group, perms PermissionFunc) *Resolver {
	idx := make(map[string]entity.Module, len(modules))
	for _, m := range modules {
		idx[m.ID] = m
	}
	return &Resolver{modules: idx, groups: groups, perms: perms}
}

// EffectiveAllowList aplica las tres capas de recorte sobre la allow-list:
//  1. permiso View del rol,
//  2. restricción dura del módulo (RestrictedTo),
//  3. override del club, que solo puede recortar, nunca ampliar.
//
// override == nil significa "sin override" (cae a la allow-list);
// un override vacío no nulo significa "el club ocultó todo".
func (r *Resolver) EffectiveAllowList(role string, allowList, override []string) []string {
	base := make([]string, 0, len(allowList))
	seen := make(map[string]bool, len(allowList))
	for _, id := range allowList {
		if seen[id] {
			continue
		}
		seen[id] = true
		m, ok := r.modules[id]
		if !ok || m.RestrictedFor(role) || !r.perms(role, id).View {
			continue
		}
		base = append(base, id)
	}
	if override == nil {
		return base
	}
	inBase := make(map[string]bool, len(base))
	for _, id := range base {
		inBase[id] = true
	}
	// Se preserva el orden del override: el club decidió ese orden.
	out := make([]string, 0, len(override))
	used := make(map[string]bool, len(override))
	for _, id := range override {
		if inBase[id] && !used[id] {
			used[id] = true
			out = append(out, id)
		}
	}
	return out
}

// Resolve produce la vista agrupada para un rol. allowList es la allow-list
// vigente del rol; override el recorte del club (nil si no hay); search el
// término de búsqueda opcional. El orden de grupos y de miembros se preserva
// tal cual viene de los catálogos: entradas idénticas producen salidas
// idénticas.
func (r *Resolver) Resolve(role string, allowList, override []string, search string) View {
	effective := r.EffectiveAllowList(role, allowList, override)
	visible := make(map[string]bool, len(effective))
	for _, id := range effective {
		visible[id] = true
	}

	term := Normalize(search)
	view := View{Role: role}
	for _, g := range r.groups {
		gv := r.resolveGroup(g, visible, term)
		if len(gv.Items) == 0 {
			continue // grupo sin ítems: no se renderiza
		}
		view.Groups = append(view.Groups, gv)
	}
	return view
}

func (r *Resolver) resolveGroup(g entity.Group, visible map[string]bool, term string) GroupView {
	gv := GroupView{Group: g}
	for _, id := range g.Members {
		if !visible[id] || g.ChildOfAnother(id) {
			continue
		}
		m, ok := r.modules[id]
		if !ok {
			continue
		}
		children := r.visibleChildren(g, id, visible)
		if term == "" {
			gv.Items = append(gv.Items, Item{Module: m, Matched: true, Children: children})
			continue
		}
		selfMatch := r.matches(m, term)
		matchedKids := make([]entity.Module, 0, len(children))
		for _, c := range children {
			if r.matches(c, term) {
				matchedKids = append(matchedKids, c)
			}
		}
		if !selfMatch && len(matchedKids) == 0 {
			continue
		}
		// Con búsqueda activa la lista de hijos queda filtrada solo a los
		// que coinciden, aunque el padre también coincida.
		gv.Items = append(gv.Items, Item{Module: m, Matched: selfMatch, Children: matchedKids})
	}
	return gv
}

func (r *Resolver) visibleChildren(g entity.Group, parentID string, visible map[string]bool) []entity.Module {
	kids := g.Children[parentID]
	if len(kids) == 0 {
		return nil
	}
	out := make([]entity.Module, 0, len(kids))
	for _, id := range kids {
		if !visible[id] {
			continue
		}
		if m, ok := r.modules[id]; ok {
			out = append(out, m)
		}
	}
	return out
}

func (r *Resolver) matches(m entity.Module, term string) bool {
	return strings.Contains(Normalize(m.Label), term) ||
		strings.Contains(Normalize(m.ID), term)
}

var stripAccents = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Normalize minúsculas sin diacríticos, para comparación de búsqueda
// ("Configuración" coincide con "configuracion").
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if out, _, err := transform.String(stripAccents, s); err == nil {
		return out
	}
	return s
}
