package main

import (
	"fmt"
	"io"

	"github.com/Spyriounis/hashmap/pkg/cli"
	"github.com/Spyriounis/hashmap/pkg/container/chmap"
	"github.com/Spyriounis/hashmap/pkg/workload"
	"github.com/dustin/go-humanize"
)

func bench(w io.Writer, c cli.CommandBench) (ok bool) {
	conf := ReadConfig(w, c.ConfigPath, c.LogLevel)
	if conf == nil {
		return false
	}
	log := newLogger(conf)

	conf.Map.Log = log
	m, err := chmap.New[string, int](conf.Map, nil)
	if err != nil {
		log.Error().Err(err).Msg("creating map")
		return false
	}

	log.Info().
		Int("keys", c.Keys).
		Int("ops", c.Ops).
		Int64("seed", c.Seed).
		Msg("running workload")
	r, err := workload.Bench(m, workload.BenchConfig{
		Keys: c.Keys,
		Ops:  c.Ops,
		Seed: c.Seed,
	})
	if err != nil {
		log.Error().Err(err).Msg("running workload")
		return false
	}

	r.Write(w)
	s := m.Stats()
	fmt.Fprintf(w, "len: %s\n", humanize.Comma(int64(s.Len)))
	fmt.Fprintf(w, "capacity: %s (initial: %s)\n",
		humanize.Comma(int64(s.Capacity)),
		humanize.Comma(int64(conf.Map.InitialCapacity)))
	fmt.Fprintf(w, "load factor: %.3f\n", s.LoadFactor)
	fmt.Fprintf(w, "used buckets: %s\n", humanize.Comma(int64(s.UsedBuckets)))
	fmt.Fprintf(w, "longest chain: %d\n", s.LongestChain)
	fmt.Fprintf(w, "resizes: %d\n", s.Resizes)
	return true
}
