// Package layout contiene la lógica pura de registros orden/ocultos: la
// reconciliación contra la lista canónica vigente y las operaciones de
// movimiento que respaldan los editores de drag-and-drop. Nada aquí muta
// sus entradas ni devuelve errores: los identificadores obsoletos se
// reparan o se ignoran en silencio.
package layout

// Record par orden/ocultos de una colección reordenable. Hidden es
// independiente de Order: un ítem puede estar ordenado y oculto a la vez.
type Record struct {
	Order  []string `json:"order"`
	Hidden []string `json:"hidden"`
}

// Reconcile repara un registro persistido contra la lista canónica actual:
// descarta identificadores que ya no existen, añade al final (en orden
// canónico) los recién introducidos y deduplica conservando la primera
// aparición. Hidden pasa igual, salvo que también pierde los obsoletos.
//
// Garantía: Order del resultado es siempre una permutación exacta del
// conjunto canónico — sin extras, sin omisiones, sin duplicados. La
// operación es idempotente.
func Reconcile(persisted *Record, canonical []string) Record {
	if persisted == nil {
		return Record{
			Order:  append([]string(nil), canonical...),
			Hidden: []string{},
		}
	}

	inCanonical := make(map[string]bool, len(canonical))
	for _, id := range canonical {
		inCanonical[id] = true
	}

	order := make([]string, 0, len(canonical))
	placed := make(map[string]bool, len(canonical))
	for _, id := range persisted.Order {
		if inCanonical[id] && !placed[id] {
			placed[id] = true
			order = append(order, id)
		}
	}
	for _, id := range canonical {
		if !placed[id] {
			placed[id] = true
			order = append(order, id)
		}
	}

	hidden := make([]string, 0, len(persisted.Hidden))
	seenHidden := make(map[string]bool, len(persisted.Hidden))
	for _, id := range persisted.Hidden {
		if inCanonical[id] && !seenHidden[id] {
			seenHidden[id] = true
			hidden = append(hidden, id)
		}
	}

	return Record{Order: order, Hidden: hidden}
}
