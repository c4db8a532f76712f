// Package xxhash provides XXH64 hashing of fixed-width 64-bit words.
//
// The digest is identical to the one produced by
// github.com/pierrec/xxHash for the same 8 little-endian bytes
// but requires neither a buffer nor a hash state.
package xxhash

const (
	prime64_1 = 11400714785074694791
	prime64_2 = 14029467366897019727
	prime64_3 = 1609587929392839161
	prime64_4 = 9650029242287828579
	prime64_5 = 2870177450012600261
)

// Sum8 returns the XXH64 digest of the 8 little-endian bytes of v.
func Sum8(seed, v uint64) uint64 {
	h := seed + prime64_5 + 8

	// Single 8-byte lane, no 32-byte stripes for inputs this short.
	h ^= rol31(v*prime64_2) * prime64_1
	h = rol27(h)*prime64_1 + prime64_4

	h ^= h >> 33
	h *= prime64_2
	h ^= h >> 29
	h *= prime64_3
	h ^= h >> 32
	return h
}

// Bytes8 returns the little-endian encoding of v
// which Sum8 digests.
func Bytes8(v uint64) (b [8]byte) {
	for i := range b {
		b[i] = byte(v >> (8 * i))
	}
	return b
}

func rol27(u uint64) uint64 { return u<<27 | u>>37 }
func rol31(u uint64) uint64 { return u<<31 | u>>33 }
