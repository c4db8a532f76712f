package chmap

import (
	"fmt"
	stdmath "math"

	plog "github.com/phuslu/log"
)

const (
	DefaultInitialCapacity = 16
	DefaultMinLoadFactor   = 0.1
	DefaultMaxLoadFactor   = 0.75
	DefaultDownsizeFactor  = 0.5
	DefaultUpsizeFactor    = 2.0
)

// Config defines the capacity management policy of a Map.
type Config struct {
	// InitialCapacity is the initial number of buckets
	// and the floor below which the map never shrinks.
	InitialCapacity int `yaml:"initial_capacity" toml:"initial_capacity"`

	// MinLoadFactor is the load factor below which Remove shrinks the map.
	MinLoadFactor float64 `yaml:"min_load_factor" toml:"min_load_factor"`

	// MaxLoadFactor is the load factor above which Put grows the map.
	MaxLoadFactor float64 `yaml:"max_load_factor" toml:"max_load_factor"`

	// DownsizeFactor is the capacity multiplier applied when shrinking.
	DownsizeFactor float64 `yaml:"downsize_factor" toml:"downsize_factor"`

	// UpsizeFactor is the capacity multiplier applied when growing.
	UpsizeFactor float64 `yaml:"upsize_factor" toml:"upsize_factor"`

	// Log receives resize events at debug level. Optional.
	Log *plog.Logger `yaml:"-" toml:"-"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		InitialCapacity: DefaultInitialCapacity,
		MinLoadFactor:   DefaultMinLoadFactor,
		MaxLoadFactor:   DefaultMaxLoadFactor,
		DownsizeFactor:  DefaultDownsizeFactor,
		UpsizeFactor:    DefaultUpsizeFactor,
	}
}

// Validate returns ErrorInvalidConfig if c is inconsistent.
func (c Config) Validate() error {
	if c.InitialCapacity < 1 {
		return ErrorInvalidConfig{
			Feature: "initial capacity",
			Message: fmt.Sprintf("must be positive, got %d", c.InitialCapacity),
		}
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"min load factor", c.MinLoadFactor},
		{"max load factor", c.MaxLoadFactor},
		{"downsize factor", c.DownsizeFactor},
		{"upsize factor", c.UpsizeFactor},
	} {
		if stdmath.IsNaN(f.value) || stdmath.IsInf(f.value, 0) {
			return ErrorInvalidConfig{
				Feature: f.name,
				Message: fmt.Sprintf("must be finite, got %v", f.value),
			}
		}
	}
	if c.MinLoadFactor < 0 {
		return ErrorInvalidConfig{
			Feature: "min load factor",
			Message: fmt.Sprintf("must not be negative, got %v", c.MinLoadFactor),
		}
	}
	if c.MaxLoadFactor <= c.MinLoadFactor {
		return ErrorInvalidConfig{
			Feature: "max load factor",
			Message: fmt.Sprintf(
				"must exceed min load factor (%v), got %v",
				c.MinLoadFactor, c.MaxLoadFactor,
			),
		}
	}
	if c.DownsizeFactor <= 0 || c.DownsizeFactor >= 1 {
		return ErrorInvalidConfig{
			Feature: "downsize factor",
			Message: fmt.Sprintf("must be in (0, 1), got %v", c.DownsizeFactor),
		}
	}
	if c.UpsizeFactor <= 1 {
		return ErrorInvalidConfig{
			Feature: "upsize factor",
			Message: fmt.Sprintf("must be greater than 1, got %v", c.UpsizeFactor),
		}
	}
	return nil
}
