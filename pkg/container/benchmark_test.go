package container_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/Spyriounis/hashmap/pkg/container"
)

func forEachImplB(
	b *testing.B,
	fn func(*testing.B, container.Mapper[string, int]),
) {
	for _, impl := range implementations {
		b.Run(impl.Name, func(b *testing.B) {
			fn(b, impl.Make(0))
		})
	}
}

var (
	GI int
	GB bool
)

func BenchmarkAdd(b *testing.B) {
	for _, td := range []int{8, 64, 192, 512, 1024} {
		b.Run(fmt.Sprintf("%v", td), func(b *testing.B) {
			keys := MakeKeys(td)
			forEachImplB(b, func(b *testing.B, m container.Mapper[string, int]) {
				for n := 0; n < b.N; n++ {
					m.Reset()
					for i := 0; i < len(keys); i++ {
						m.Put(keys[i], i)
					}
				}
			})
		})
	}
}

func BenchmarkPut(b *testing.B) {
	for _, td := range []int{8, 64, 192, 512, 1024} {
		b.Run(fmt.Sprintf("%v", td), func(b *testing.B) {
			forEachImplB(b, func(b *testing.B, m container.Mapper[string, int]) {
				keys := PutNewKeys(td, m)
				b.ResetTimer()
				for n := 0; n < b.N; n++ {
					for i := 0; i < len(keys); i++ {
						m.Put(keys[i], n)
					}
				}
			})
		})
	}
}

func BenchmarkGet(b *testing.B) {
	for _, td := range []int{8, 64, 192, 512, 1024} {
		b.Run(fmt.Sprintf("%v", td), func(b *testing.B) {
			forEachImplB(b, func(b *testing.B, m container.Mapper[string, int]) {
				keys := PutNewKeys(td, m)
				b.ResetTimer()
				for n, i := 0, -1; n < b.N; n++ {
					i++
					if i >= len(keys) {
						i = 0
					}
					GI, GB = m.Get(keys[i])
				}
			})
		})
	}
}

// BenchmarkChurn removes and re-inserts every key
// crossing the shrink and growth thresholds.
func BenchmarkChurn(b *testing.B) {
	for _, td := range []int{64, 1024} {
		b.Run(fmt.Sprintf("%v", td), func(b *testing.B) {
			forEachImplB(b, func(b *testing.B, m container.Mapper[string, int]) {
				keys := PutNewKeys(td, m)
				b.ResetTimer()
				for n := 0; n < b.N; n++ {
					for i := range keys {
						_ = m.Remove(keys[i])
					}
					for i := range keys {
						m.Put(keys[i], i)
					}
				}
			})
		})
	}
}

func MakeKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = RandString(20)
	}
	return keys
}

func PutNewKeys(n int, m container.Mapper[string, int]) []string {
	keys := MakeKeys(n)
	for i := range keys {
		m.Put(keys[i], i)
	}
	return keys
}

func RandString(n int) string {
	letters := []byte(
		"abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_",
	)
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
