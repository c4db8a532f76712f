package workload

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/Spyriounis/hashmap/pkg/container"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// BenchConfig defines a random workload.
type BenchConfig struct {
	// Keys is the number of distinct keys the workload draws from.
	Keys int
	// Ops is the number of operations to execute.
	Ops  int
	Seed int64
}

// Result summarizes an executed workload.
type Result struct {
	Puts, Gets, Hits, Removes, Misses int
	Duration                          time.Duration
}

// GenerateKeys returns n distinct UUID keys derived from seed.
func GenerateKeys(n int, seed int64) ([]string, error) {
	rnd := rand.New(rand.NewSource(seed))
	keys := make([]string, n)
	for i := range keys {
		u, err := uuid.NewRandomFromReader(rnd)
		if err != nil {
			return nil, fmt.Errorf("generating key: %w", err)
		}
		keys[i] = u.String()
	}
	return keys, nil
}

// Bench executes a random mix of puts (50%), gets (30%)
// and removes (20%) on m.
func Bench(m container.Mapper[string, int], c BenchConfig) (Result, error) {
	if c.Keys < 1 {
		return Result{}, fmt.Errorf("invalid number of keys: %d", c.Keys)
	}
	keys, err := GenerateKeys(c.Keys, c.Seed)
	if err != nil {
		return Result{}, err
	}

	rnd := rand.New(rand.NewSource(c.Seed))
	var r Result
	start := time.Now()
	for n := 0; n < c.Ops; n++ {
		k := keys[rnd.Intn(len(keys))]
		switch p := rnd.Intn(10); {
		case p < 5:
			m.Put(k, n)
			r.Puts++
		case p < 8:
			if _, ok := m.Get(k); ok {
				r.Hits++
			}
			r.Gets++
		default:
			if m.Remove(k) != nil {
				r.Misses++
			}
			r.Removes++
		}
	}
	r.Duration = time.Since(start)
	return r, nil
}

// Write writes a human readable report to w.
func (r Result) Write(w io.Writer) {
	ops := r.Puts + r.Gets + r.Removes
	fmt.Fprintf(w, "operations: %s in %s", humanize.Comma(int64(ops)), r.Duration)
	if s := r.Duration.Seconds(); s > 0 {
		fmt.Fprintf(w, " (%s ops/s)", humanize.Comma(int64(float64(ops)/s)))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "puts: %s\n", humanize.Comma(int64(r.Puts)))
	fmt.Fprintf(w, "gets: %s (hits: %s)\n",
		humanize.Comma(int64(r.Gets)), humanize.Comma(int64(r.Hits)))
	fmt.Fprintf(w, "removes: %s (missing: %s)\n",
		humanize.Comma(int64(r.Removes)), humanize.Comma(int64(r.Misses)))
}
