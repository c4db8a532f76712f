package chmap

import (
	"sync"

	"github.com/Spyriounis/hashmap/pkg/container"
)

var _ container.Mapper[string, int] = new(Sync[string, int])

// Sync is a Map guarded by a single lock held for the entire
// duration of every operation, resizes included.
type Sync[K comparable, V any] struct {
	lock sync.RWMutex
	m    *Map[K, V]
}

// NewSync creates a new synchronized map instance.
func NewSync[K comparable, V any](
	conf Config,
	hasher Hasher[K],
) (*Sync[K, V], error) {
	m, err := New[K, V](conf, hasher)
	if err != nil {
		return nil, err
	}
	return &Sync[K, V]{m: m}, nil
}

func (s *Sync[K, V]) Get(key K) (value V, ok bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.m.Get(key)
}

func (s *Sync[K, V]) GetOr(key K, def V) V {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.m.GetOr(key, def)
}

func (s *Sync[K, V]) Contains(key K) bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.m.Contains(key)
}

func (s *Sync[K, V]) Put(key K, value V) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.m.Put(key, value)
}

func (s *Sync[K, V]) Remove(key K) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.m.Remove(key)
}

func (s *Sync[K, V]) Len() int {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.m.Len()
}

func (s *Sync[K, V]) Keys() []K {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.m.Keys()
}

func (s *Sync[K, V]) Reset() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.m.Reset()
}

// Stats returns the current shape of the bucket table.
func (s *Sync[K, V]) Stats() Stats {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.m.Stats()
}

func (s *Sync[K, V]) Capacity() int {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.m.Capacity()
}

func (s *Sync[K, V]) LoadFactor() float64 {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.m.LoadFactor()
}

func (s *Sync[K, V]) Values() []V {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.m.Values()
}

func (s *Sync[K, V]) Pairs() []Pair[K, V] {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.m.Pairs()
}

func (s *Sync[K, V]) String() string {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.m.String()
}
