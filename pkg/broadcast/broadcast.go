// Package broadcast implementa un canal publish/subscribe síncrono a nivel
// de proceso, keyed por feature key plana. Sustituye el patrón de "estado
// global + polling periódico": cualquier consumidor se suscribe a la clave
// que le interesa sin compartir ancestro en el call graph.
//
// Semántica: entrega at-most-once, síncrona y en orden de registro. Publicar
// sin suscriptores es un no-op; no hay buffering para suscriptores tardíos
// (quien se suscribe después de un publish debe re-leer el estado actual).
package broadcast

import "sync"

// Handler recibe el nuevo valor publicado para una clave.
type Handler func(value any)

// Subscription token devuelto por Subscribe; se usa para cancelar.
type Subscription struct {
	key    string
	id     uint64
	active bool
}

// Broadcaster canal pub/sub seguro para uso concurrente. El valor cero no es
// utilizable; usar New.
type Broadcaster struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[string][]*subscriber
}

type subscriber struct {
	sub     *Subscription
	handler Handler
}

// New construye un broadcaster vacío.
func New() *Broadcaster {
	return &Broadcaster{subs: make(map[string][]*subscriber)}
}

// Subscribe registra un handler para una clave y devuelve el token de
// cancelación. Claves iguales fusionan sus conjuntos de suscriptores.
func (b *Broadcaster) Subscribe(key string, h Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	s := &Subscription{key: key, id: b.nextID, active: true}
	b.subs[key] = append(b.subs[key], &subscriber{sub: s, handler: h})
	return s
}

// Unsubscribe retira la suscripción. Es seguro llamarlo desde el propio
// handler durante una notificación, y llamarlo más de una vez.
func (b *Broadcaster) Unsubscribe(s *Subscription) {
	if s == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if !s.active {
		return
	}
	s.active = false
	list := b.subs[s.key]
	for i, entry := range list {
		if entry.sub == s {
			b.subs[s.key] = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(b.subs[s.key]) == 0 {
		delete(b.subs, s.key)
	}
}

// Publish notifica síncronamente, en orden de registro, a los suscriptores
// vigentes de la clave. Los handlers se invocan fuera del lock: un handler
// puede suscribir o cancelar (incluso a sí mismo) sin invalidar la
// iteración. Un suscriptor cancelado durante la notificación ya no recibe
// el valor.
func (b *Broadcaster) Publish(key string, value any) {
	b.mu.Lock()
	snapshot := append([]*subscriber(nil), b.subs[key]...)
	b.mu.Unlock()

	for _, entry := range snapshot {
		b.mu.Lock()
		alive := entry.sub.active
		b.mu.Unlock()
		if alive {
			entry.handler(value)
		}
	}
}

// SubscriberCount número de suscriptores vigentes para una clave (útil en
// tests y métricas).
func (b *Broadcaster) SubscriberCount(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[key])
}
