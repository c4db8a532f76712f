// package linear provides a container.Mapper implementation
// backed by a slice and linear search for benchmark reference.
package linear

import (
	"fmt"

	"github.com/Spyriounis/hashmap/pkg/container"
)

type pair[K comparable, V any] struct {
	Key   K
	Value V
}

type Linear[K comparable, V any] struct {
	d []pair[K, V]
}

func New[K comparable, V any](capacity int) *Linear[K, V] {
	return &Linear[K, V]{
		d: make([]pair[K, V], 0, capacity),
	}
}

func (m *Linear[K, V]) Put(key K, value V) {
	if i := m.find(key); i > -1 {
		m.d[i].Value = value
		return
	}
	m.d = append(m.d, pair[K, V]{
		Key:   key,
		Value: value,
	})
}

func (m *Linear[K, V]) Remove(key K) error {
	i := m.find(key)
	if i < 0 {
		return fmt.Errorf("%#v: %w", key, container.ErrKeyNotFound)
	}
	m.d[i] = m.d[len(m.d)-1]
	m.d = m.d[:len(m.d)-1]
	return nil
}

func (m *Linear[K, V]) Get(key K) (v V, ok bool) {
	if i := m.find(key); i > -1 {
		return m.d[i].Value, true
	}
	return v, false
}

func (m *Linear[K, V]) GetOr(key K, def V) V {
	if i := m.find(key); i > -1 {
		return m.d[i].Value
	}
	return def
}

func (m *Linear[K, V]) Contains(key K) bool {
	return m.find(key) > -1
}

func (m *Linear[K, V]) Keys() []K {
	keys := make([]K, len(m.d))
	for i := range m.d {
		keys[i] = m.d[i].Key
	}
	return keys
}

func (m *Linear[K, V]) Reset() {
	m.d = m.d[:0]
}

func (m *Linear[K, V]) Len() int {
	return len(m.d)
}

func (m *Linear[K, V]) find(key K) int {
	for i := 0; i < len(m.d); i++ {
		if m.d[i].Key == key {
			return i
		}
	}
	return -1
}
