package chmap

import (
	"fmt"
	"strings"

	"github.com/Spyriounis/hashmap/pkg/container"
)

// ErrorKeyNotFound is returned by Remove when the key has no entry.
type ErrorKeyNotFound[K comparable] struct {
	Key K
}

func (e *ErrorKeyNotFound[K]) Error() string {
	return fmt.Sprintf("key %#v not found", e.Key)
}

// Is reports whether target is container.ErrKeyNotFound.
func (e *ErrorKeyNotFound[K]) Is(target error) bool {
	return target == container.ErrKeyNotFound
}

// ErrorInvalidConfig is returned by New when the configuration
// is inconsistent.
type ErrorInvalidConfig struct {
	Feature string
	Message string
}

func (e ErrorInvalidConfig) Error() string {
	var b strings.Builder
	b.Grow(len("invalid ") + len(e.Feature) + len(": ") + len(e.Message))
	b.WriteString("invalid ")
	b.WriteString(e.Feature)
	b.WriteString(": ")
	b.WriteString(e.Message)
	return b.String()
}
