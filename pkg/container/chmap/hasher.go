package chmap

import (
	"hash/maphash"

	"github.com/Spyriounis/hashmap/pkg/xxhash"
	"github.com/zeebo/xxh3"
	"golang.org/x/exp/constraints"
)

// Hasher computes the 64-bit hash of a key.
// Equal keys must produce equal hashes.
type Hasher[K comparable] interface{ Hash(K) uint64 }

// HasherXXH3 hashes string keys with XXH3.
// It can be used to provide custom seeds during initialization.
type HasherXXH3[K ~string] struct {
	Seed uint64
}

// Hash hashes k to a 64-bit hash value.
func (h *HasherXXH3[K]) Hash(k K) uint64 {
	return xxh3.HashStringSeed(string(k), h.Seed)
}

// HasherXXH64 hashes integer keys with XXH64
// over their 8-byte two's complement representation.
type HasherXXH64[K constraints.Integer] struct {
	Seed uint64
}

// Hash hashes k to a 64-bit hash value.
func (h *HasherXXH64[K]) Hash(k K) uint64 {
	return xxhash.Sum8(h.Seed, uint64(k))
}

// HasherComparable hashes any comparable key using the runtime hash
// function. Hash values are stable for the lifetime of the hasher only.
type HasherComparable[K comparable] struct {
	seed maphash.Seed
}

// NewHasherComparable creates a HasherComparable with a random seed.
func NewHasherComparable[K comparable]() *HasherComparable[K] {
	return &HasherComparable[K]{seed: maphash.MakeSeed()}
}

// Hash hashes k to a 64-bit hash value.
func (h *HasherComparable[K]) Hash(k K) uint64 {
	return maphash.Comparable(h.seed, k)
}

// DefaultHasher returns XXH3 for strings, XXH64 for built-in integer
// types and a HasherComparable for any other key type.
func DefaultHasher[K comparable]() Hasher[K] {
	var zeroKey K
	var h any
	switch any(zeroKey).(type) {
	case string:
		h = &HasherXXH3[string]{}
	case int:
		h = &HasherXXH64[int]{}
	case int8:
		h = &HasherXXH64[int8]{}
	case int16:
		h = &HasherXXH64[int16]{}
	case int32:
		h = &HasherXXH64[int32]{}
	case int64:
		h = &HasherXXH64[int64]{}
	case uint:
		h = &HasherXXH64[uint]{}
	case uint8:
		h = &HasherXXH64[uint8]{}
	case uint16:
		h = &HasherXXH64[uint16]{}
	case uint32:
		h = &HasherXXH64[uint32]{}
	case uint64:
		h = &HasherXXH64[uint64]{}
	case uintptr:
		h = &HasherXXH64[uintptr]{}
	default:
		return NewHasherComparable[K]()
	}
	return h.(Hasher[K])
}
