package main

import (
	"io"
	"os"

	"github.com/Spyriounis/hashmap/pkg/cli"
	"github.com/Spyriounis/hashmap/pkg/container/chmap"
	"github.com/Spyriounis/hashmap/pkg/workload"
)

func replay(w io.Writer, c cli.CommandReplay) (ok bool) {
	conf := ReadConfig(w, c.ConfigPath, c.LogLevel)
	if conf == nil {
		return false
	}
	log := newLogger(conf)

	f, err := os.Open(c.ScriptPath)
	if err != nil {
		log.Error().Err(err).Msg("opening script")
		return false
	}
	defer f.Close()

	ops, err := workload.ParseScript(f)
	if err != nil {
		log.Error().Err(err).Str("script", c.ScriptPath).Msg("parsing script")
		return false
	}

	conf.Map.Log = log
	m, err := chmap.New[string, string](conf.Map, nil)
	if err != nil {
		log.Error().Err(err).Msg("creating map")
		return false
	}

	log.Info().
		Str("script", c.ScriptPath).
		Int("operations", len(ops)).
		Msg("replaying")
	workload.Replay(w, m, ops)

	s := m.Stats()
	log.Info().
		Int("len", s.Len).
		Int("capacity", s.Capacity).
		Float64("load_factor", s.LoadFactor).
		Int("resizes", s.Resizes).
		Msg("done")
	_, _ = io.WriteString(w, m.String()+"\n")
	return true
}
