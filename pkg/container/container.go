// Package container defines the map contract shared by every
// container implementation in this module.
package container

import "errors"

// ErrKeyNotFound is matched by the errors returned from Mapper.Remove
// when the key has no entry.
var ErrKeyNotFound = errors.New("key not found")

// Mapper is a mutable associative container.
type Mapper[K comparable, V any] interface {
	// Get returns (value, true) if key exists,
	// otherwise returns (zeroValue, false).
	Get(K) (v V, ok bool)

	// GetOr returns the value associated with the key or def.
	GetOr(key K, def V) V

	// Put associates key with value overwriting any existing association.
	Put(K, V)

	// Remove removes the key and fails with an error matching
	// ErrKeyNotFound if the key doesn't exist.
	Remove(K) error

	Len() int
	Contains(K) bool

	// Keys returns a copy of all stored keys in unspecified order.
	Keys() []K

	Reset()
}
