package main

import (
	"fmt"
	"os"

	"github.com/Spyriounis/hashmap/pkg/cli"
)

func main() {
	w := os.Stdout
	switch c := cli.Parse(w, os.Args).(type) {
	case cli.CommandReplay:
		if !replay(w, c) {
			os.Exit(1)
		}
	case cli.CommandBench:
		if !bench(w, c) {
			os.Exit(1)
		}
	case cli.CommandHelp:
	default:
		if c != nil {
			panic(fmt.Errorf("unexpected command: %#v", c))
		}
		os.Exit(2)
	}
}
