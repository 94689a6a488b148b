/*
Fabric implements the service/listener/connector contract that binds the
pipeline stages together.

A service is a keyed in-memory store plus a synchronous fan-out of add
events. A listener bridges one service's output type to another service's
input type. A connector is the boundary device: source connectors drain an
external feed into a service, sink connectors publish records out.
*/
package fabric

import (
	"github.com/yanun0323/errors"
)

// ErrNotFound is returned by Store.Get for unknown keys.
var ErrNotFound = errors.New("key not found")

// Service is the contract every pipeline stage satisfies.
type Service[K comparable, V any] interface {
	// GetData returns the most recent record stored under key.
	GetData(key K) (V, error)

	// OnMessage is the callback a connector invokes for new or updated data.
	OnMessage(v V)

	// AddListener registers a listener for add/remove/update callbacks.
	AddListener(l Listener[V])

	// GetListeners returns the registered listeners in registration order.
	GetListeners() []Listener[V]
}

// Listener receives record events from a service.
// This system only drives ProcessAdd; the other two may be no-ops.
type Listener[V any] interface {
	ProcessAdd(v V)
	ProcessRemove(v V)
	ProcessUpdate(v V)
}

// Connector adapts a service to an external medium. Source-only connectors
// leave Publish a no-op; sink-only connectors leave Subscribe a no-op.
type Connector[V any] interface {
	Publish(v V) error
	Subscribe() error
}

// AddFunc adapts a function to a Listener whose remove/update events are
// no-ops, which is the default listener policy here.
type AddFunc[V any] func(v V)

func (f AddFunc[V]) ProcessAdd(v V)  { f(v) }
func (f AddFunc[V]) ProcessRemove(V) {}
func (f AddFunc[V]) ProcessUpdate(V) {}

// Store is the keyed map every service owns exclusively.
// Put is an upsert; the stored record is what listeners observe.
type Store[K comparable, V any] struct {
	data map[K]V
}

// NewStore allocates an empty store.
func NewStore[K comparable, V any]() *Store[K, V] {
	return &Store[K, V]{data: make(map[K]V)}
}

// Get returns the record under key, or ErrNotFound.
func (s *Store[K, V]) Get(key K) (V, error) {
	v, ok := s.data[key]
	if !ok {
		var zero V
		return zero, ErrNotFound
	}
	return v, nil
}

// Put inserts or replaces the record under key.
func (s *Store[K, V]) Put(key K, v V) {
	s.data[key] = v
}

// Has reports whether key is present.
func (s *Store[K, V]) Has(key K) bool {
	_, ok := s.data[key]
	return ok
}

// Len returns the number of stored records.
func (s *Store[K, V]) Len() int {
	return len(s.data)
}

// Keys returns the stored keys in unspecified order.
func (s *Store[K, V]) Keys() []K {
	keys := make([]K, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys
}

// Notifier fans events out to listeners synchronously, in registration
// order. Ordering guarantees of the pipelines depend on this staying
// synchronous; concurrency belongs at the connector boundary.
type Notifier[V any] struct {
	listeners []Listener[V]
}

// AddListener appends a listener.
func (n *Notifier[V]) AddListener(l Listener[V]) {
	n.listeners = append(n.listeners, l)
}

// GetListeners returns the registered listeners.
func (n *Notifier[V]) GetListeners() []Listener[V] {
	return n.listeners
}

// NotifyAdd invokes ProcessAdd on every listener, each to completion
// before the next.
func (n *Notifier[V]) NotifyAdd(v V) {
	for _, l := range n.listeners {
		l.ProcessAdd(v)
	}
}
