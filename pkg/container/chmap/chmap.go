// Package chmap provides a hashmap implementation resolving collisions
// by separate chaining. Every bucket holds a singly linked chain of
// entries sharing the same bucket index. The bucket table grows when
// the load factor exceeds the configured maximum before an insertion
// and shrinks when it falls below the configured minimum before a
// removal, rehashing every entry into a freshly allocated table.
//
// By default, XXH3 from github.com/zeebo/xxh3 is used for string keys,
// XXH64 for integer keys and the runtime hash for any other key type.
// Any custom hasher can be provided during initialization.
//
// Map is not safe for concurrent use, see Sync.
package chmap

import (
	"fmt"
	"strings"

	"github.com/Spyriounis/hashmap/pkg/container"
	"github.com/Spyriounis/hashmap/pkg/math"
	"github.com/google/go-cmp/cmp"
	plog "github.com/phuslu/log"
)

var _ container.Mapper[string, int] = new(Map[string, int])

type entry[K comparable, V any] struct {
	Key   K
	Value V
	Next  *entry[K, V]
}

// Map is a hashmap backed by a table of collision chains.
// A nil bucket is an empty chain.
type Map[K comparable, V any] struct {
	buckets         []*entry[K, V]
	size            int
	initialCapacity int
	minLoadFactor   float64
	maxLoadFactor   float64
	downsizeFactor  float64
	upsizeFactor    float64
	resizes         int
	hasher          Hasher[K]
	log             *plog.Logger
}

// Pair is a key-value pair.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Stats describes the current shape of the bucket table.
type Stats struct {
	Len          int
	Capacity     int
	UsedBuckets  int
	LongestChain int
	Resizes      int
	LoadFactor   float64
}

// New creates a new map instance.
// DefaultHasher is used when hasher is nil.
func New[K comparable, V any](conf Config, hasher Hasher[K]) (*Map[K, V], error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	if hasher == nil {
		hasher = DefaultHasher[K]()
	}
	return &Map[K, V]{
		buckets:         make([]*entry[K, V], conf.InitialCapacity),
		initialCapacity: conf.InitialCapacity,
		minLoadFactor:   conf.MinLoadFactor,
		maxLoadFactor:   conf.MaxLoadFactor,
		downsizeFactor:  conf.DownsizeFactor,
		upsizeFactor:    conf.UpsizeFactor,
		hasher:          hasher,
		log:             conf.Log,
	}, nil
}

// NewDefault creates a new map instance using DefaultConfig
// and DefaultHasher.
func NewDefault[K comparable, V any]() *Map[K, V] {
	m, err := New[K, V](DefaultConfig(), nil)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Map[K, V]) index(key K) int {
	return int(m.hasher.Hash(key) % uint64(len(m.buckets)))
}

// Get returns (value, true) if key exists,
// otherwise returns (zeroValue, false).
func (m *Map[K, V]) Get(key K) (value V, ok bool) {
	for p := m.buckets[m.index(key)]; p != nil; p = p.Next {
		if p.Key == key {
			return p.Value, true
		}
	}
	return value, false
}

// GetOr returns the value associated with key,
// otherwise returns def.
func (m *Map[K, V]) GetOr(key K, def V) V {
	if v, ok := m.Get(key); ok {
		return v
	}
	return def
}

// Contains returns true if key exists.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Put associates key with value overwriting any existing associations.
// The map grows before the key is located if the load factor
// exceeds the maximum, even if the key already exists.
func (m *Map[K, V]) Put(key K, value V) {
	m.insertExternal(key, value)
}

func (m *Map[K, V]) insertExternal(key K, value V) {
	if m.LoadFactor() > m.maxLoadFactor {
		m.resize(m.upsizeFactor)
	}
	if m.link(key, value) {
		m.size++
	}
}

// insertRehash places an entry into the current table
// without counting it and without checking the load factor.
func (m *Map[K, V]) insertRehash(key K, value V) {
	m.link(key, value)
}

// link updates the entry of key in place or appends a new one
// to the end of its chain. Returns true if a new entry was created.
func (m *Map[K, V]) link(key K, value V) (added bool) {
	i := m.index(key)
	p := m.buckets[i]
	if p == nil {
		m.buckets[i] = &entry[K, V]{Key: key, Value: value}
		return true
	}
	for ; ; p = p.Next {
		if p.Key == key {
			p.Value = value
			return false
		}
		if p.Next == nil {
			// Key doesn't yet exist
			p.Next = &entry[K, V]{Key: key, Value: value}
			return true
		}
	}
}

// Remove removes the key.
// Returns *ErrorKeyNotFound if the key doesn't exist.
// The map shrinks before the key is located if the load factor
// is below the minimum and the capacity exceeds the initial capacity.
func (m *Map[K, V]) Remove(key K) error {
	if m.LoadFactor() < m.minLoadFactor &&
		len(m.buckets) > m.initialCapacity {
		m.resize(m.downsizeFactor)
	}

	i := m.index(key)
	head := m.buckets[i]
	if head == nil {
		return &ErrorKeyNotFound[K]{Key: key}
	}
	if head.Key == key {
		m.buckets[i] = head.Next
		m.size--
		return nil
	}
	for prev, p := head, head.Next; p != nil; prev, p = p, p.Next {
		if p.Key == key {
			prev.Next = p.Next
			m.size--
			return nil
		}
	}
	return &ErrorKeyNotFound[K]{Key: key}
}

// resize allocates a new bucket table of ceil(capacity*factor) buckets
// and rehashes all entries into it. The new capacity is never below 1
// and a shrink never goes below the initial capacity.
func (m *Map[K, V]) resize(factor float64) {
	from := len(m.buckets)
	to := math.Max(math.CeilMul(from, factor), 1)
	if factor < 1 {
		to = math.Max(to, m.initialCapacity)
	}

	old := m.buckets
	m.buckets = make([]*entry[K, V], to)
	for i := range old {
		for p := old[i]; p != nil; p = p.Next {
			m.insertRehash(p.Key, p.Value)
		}
	}
	m.resizes++

	if m.log != nil {
		m.log.Debug().
			Int("from", from).
			Int("to", to).
			Int("size", m.size).
			Msg("resized")
	}
}

// Len returns the number of stored key-value pairs.
func (m *Map[K, V]) Len() int {
	return m.size
}

// Capacity returns the current number of buckets.
func (m *Map[K, V]) Capacity() int {
	return len(m.buckets)
}

// LoadFactor returns Len()/Capacity(). The value may exceed 1.
func (m *Map[K, V]) LoadFactor() float64 {
	return float64(m.size) / float64(len(m.buckets))
}

// Reset removes all entries and restores the initial capacity.
func (m *Map[K, V]) Reset() {
	m.buckets, m.size = make([]*entry[K, V], m.initialCapacity), 0
}

// Visit calls fn for every stored key-value pair.
// Returns immediately if fn returns true.
func (m *Map[K, V]) Visit(fn func(key K, value V) (stop bool)) {
	for i := range m.buckets {
		for p := m.buckets[i]; p != nil; p = p.Next {
			if fn(p.Key, p.Value) {
				return
			}
		}
	}
}

// VisitAll calls fn for every stored key-value pair.
func (m *Map[K, V]) VisitAll(fn func(key K, value V)) {
	for i := range m.buckets {
		for p := m.buckets[i]; p != nil; p = p.Next {
			fn(p.Key, p.Value)
		}
	}
}

// Keys returns all map keys.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	m.VisitAll(func(key K, value V) {
		keys = append(keys, key)
	})
	return keys
}

// Values returns all map values.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.size)
	m.VisitAll(func(key K, value V) {
		values = append(values, value)
	})
	return values
}

// Pairs returns all key-value pairs.
func (m *Map[K, V]) Pairs() []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, m.size)
	m.VisitAll(func(key K, value V) {
		pairs = append(pairs, Pair[K, V]{Key: key, Value: value})
	})
	return pairs
}

// String renders the map as {key: value, ...}.
func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	i := 0
	m.VisitAll(func(key K, value V) {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%#v: %#v", key, value)
		i++
	})
	b.WriteByte('}')
	return b.String()
}

// Equal returns true if mm holds the same keys as m
// associated with equal values. A nil mm is never equal.
func (m *Map[K, V]) Equal(mm *Map[K, V]) bool {
	if mm == nil || m.size != mm.size {
		return false
	}
	equal := true
	m.Visit(func(key K, value V) bool {
		v, ok := mm.Get(key)
		equal = ok && cmp.Equal(value, v)
		return !equal
	})
	return equal
}

// Stats returns the current shape of the bucket table.
func (m *Map[K, V]) Stats() Stats {
	s := Stats{
		Len:        m.size,
		Capacity:   len(m.buckets),
		Resizes:    m.resizes,
		LoadFactor: m.LoadFactor(),
	}
	for i := range m.buckets {
		l := 0
		for p := m.buckets[i]; p != nil; p = p.Next {
			l++
		}
		if l > 0 {
			s.UsedBuckets++
		}
		s.LongestChain = math.Max(s.LongestChain, l)
	}
	return s
}
