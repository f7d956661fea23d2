package layout

// Membership mapa plano grupo → lista ordenada de miembros. Representa la
// pertenencia durante una sesión de drag-and-drop sin clonar árboles: los
// movimientos son altas/bajas por índice sobre claves estables. El grupo
// "pool" virtual de módulos disponibles es una clave más del mapa.
type Membership map[string][]string

// Clone copia profunda del mapa de pertenencia.
func (m Membership) Clone() Membership {
	out := make(Membership, len(m))
	for k, v := range m {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// Reorder mueve source a la posición que ocupa dest dentro de la misma lista
// y devuelve una lista nueva. Si source y dest son iguales, o alguno no está
// en la lista, devuelve una copia sin cambios: los gestos de drag disparan
// eventos redundantes y jamás deben corromper estado.
func Reorder(list []string, source, dest string) []string {
	out := append([]string(nil), list...)
	if source == dest {
		return out
	}
	si, di := indexOf(out, source), indexOf(out, dest)
	if si < 0 || di < 0 {
		return out
	}
	out = append(out[:si], out[si+1:]...)
	// El índice destino se recalcula tras extraer: insertar "en la posición
	// de dest" significa delante de dest tal como quedó la lista.
	di = indexOf(out, dest)
	out = append(out, "")
	copy(out[di+1:], out[di:])
	out[di] = source
	return out
}

// Move traslada source a la lista destGroup, delante de destItem. Si
// destItem está vacío o no existe en la lista destino, source se añade al
// final (soltar sobre el contenedor del grupo). Si source no pertenece a
// ninguna lista, o destGroup no existe, la operación es un no-op idempotente
// que devuelve un estado igual al de entrada. Nunca muta m.
func Move(m Membership, source, destGroup, destItem string) Membership {
	out := m.Clone()
	lists, ok := out[destGroup]
	if !ok {
		return out
	}
	origin := ""
	for g, members := range out {
		if indexOf(members, source) >= 0 {
			origin = g
			break
		}
	}
	if origin == "" {
		return out
	}
	if origin == destGroup {
		out[destGroup] = Reorder(lists, source, destItem)
		return out
	}

	si := indexOf(out[origin], source)
	out[origin] = append(out[origin][:si], out[origin][si+1:]...)

	dst := out[destGroup]
	di := indexOf(dst, destItem)
	if destItem == "" || di < 0 {
		out[destGroup] = append(dst, source)
		return out
	}
	dst = append(dst, "")
	copy(dst[di+1:], dst[di:])
	dst[di] = source
	out[destGroup] = dst
	return out
}

func indexOf(list []string, id string) int {
	for i, v := range list {
		if v == id {
			return i
		}
	}
	return -1
}
