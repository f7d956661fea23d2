package entity

// Group colección etiquetada de módulos que se renderiza junta en la navegación.
// Members mantiene el orden de renderizado; Children mapea un miembro a sus
// módulos anidados (estos se renderizan solo bajo su padre, nunca al nivel
// superior del grupo).
type Group struct {
	ID       string              `json:"id"`
	Label    string              `json:"label"`
	Color    string              `json:"color,omitempty"`
	Members  []string            `json:"members"`
	Children map[string][]string `json:"children,omitempty"`
}

// ChildOfAnother indica si moduleID aparece como hijo anidado de OTRO miembro
// del grupo. Esos módulos se excluyen del pase de nivel superior para no
// duplicarse.
func (g Group) ChildOfAnother(moduleID string) bool {
	for parent, kids := range g.Children {
		if parent == moduleID {
			continue
		}
		for _, k := range kids {
			if k == moduleID {
				return true
			}
		}
	}
	return false
}

// Clone copia profunda del grupo (los editores de drag-and-drop nunca deben
// mutar el catálogo compartido).
func (g Group) Clone() Group {
	out := Group{ID: g.ID, Label: g.Label, Color: g.Color}
	out.Members = append([]string(nil), g.Members...)
	if g.Children != nil {
		out.Children = make(map[string][]string, len(g.Children))
		for k, v := range g.Children {
			out.Children[k] = append([]string(nil), v...)
		}
	}
	return out
}
