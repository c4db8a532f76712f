// package gomap provides a container.Mapper implementation
// backed by Go's native map for benchmark reference.
package gomap

import (
	"fmt"

	"github.com/Spyriounis/hashmap/pkg/container"
)

type Gomap[K comparable, V any] struct {
	m map[K]V
}

func New[K comparable, V any](capacity int) *Gomap[K, V] {
	return &Gomap[K, V]{
		m: make(map[K]V, capacity),
	}
}

func (m *Gomap[K, V]) Put(key K, value V) {
	m.m[key] = value
}

func (m *Gomap[K, V]) Remove(key K) error {
	if _, ok := m.m[key]; !ok {
		return fmt.Errorf("%#v: %w", key, container.ErrKeyNotFound)
	}
	delete(m.m, key)
	return nil
}

func (m *Gomap[K, V]) Get(key K) (v V, ok bool) {
	v, ok = m.m[key]
	return v, ok
}

func (m *Gomap[K, V]) GetOr(key K, def V) V {
	if v, ok := m.m[key]; ok {
		return v
	}
	return def
}

func (m *Gomap[K, V]) Contains(key K) bool {
	_, ok := m.m[key]
	return ok
}

func (m *Gomap[K, V]) Keys() []K {
	keys := make([]K, 0, len(m.m))
	for k := range m.m {
		keys = append(keys, k)
	}
	return keys
}

func (m *Gomap[K, V]) Reset() {
	m.m = make(map[K]V)
}

func (m *Gomap[K, V]) Len() int {
	return len(m.m)
}
