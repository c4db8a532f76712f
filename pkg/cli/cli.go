package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const EnvConfig = "CHMAP_CONFIG"
const EnvLogLevel = "CHMAP_LOG_LEVEL"

const (
	DefaultBenchKeys = 1024
	DefaultBenchOps  = 1_000_000
)

// Command can be any of:
//
//	CommandReplay
//	CommandBench
//	CommandHelp
type Command any

type CommandReplay struct {
	ConfigPath string
	LogLevel   string
	ScriptPath string
}

type CommandBench struct {
	ConfigPath string
	LogLevel   string
	Keys       int
	Ops        int
	Seed       int64
}

type CommandHelp struct{}

func Parse(w io.Writer, args []string) (cmd Command) {
	fm := fmt.Sprintf

	executableName := "chmap"
	if len(args) > 0 {
		executableName = filepath.Base(args[0])
	}

	flags := flag.NewFlagSet(executableName, flag.ContinueOnError)
	flags.SetOutput(w)
	flags.Usage = func() {
		writeLines(w,
			fm("usage: %s <command> [flags]", executableName),
			"",
			"commands available:",
			" replay - replays a JSON-lines operation script",
			" bench - runs a random workload and prints statistics",
			" help - prints this help",
		)
	}

	envLines := []string{
		"",
		"environment variables:",
		fm("%s: default configuration file or directory path", EnvConfig),
		fm("%s: overrides the configured log level", EnvLogLevel),
	}

	parseFlags := func() (ok bool) {
		err := flags.Parse(args[2:])
		// flags will automatically call .Usage()
		return err == nil
	}

	if len(args) < 2 {
		flags.Usage()
		return nil
	}

	configPath := os.Getenv(EnvConfig)
	logLevel := os.Getenv(EnvLogLevel)

	switch args[1] {
	case "replay":
		c := CommandReplay{LogLevel: logLevel}
		flags.Usage = func() {
			writeLines(w, append([]string{
				"",
				fm("usage: %s replay [-config <path>] <script>", executableName),
				"",
				"flags:",
				"-config <path>: configuration file or directory path",
			}, envLines...)...)
		}
		flags.StringVar(&c.ConfigPath, "config", configPath, "")
		if !parseFlags() {
			return nil
		}
		if flags.NArg() != 1 {
			writeLines(w, "expected exactly one script path")
			flags.Usage()
			return nil
		}
		c.ScriptPath = flags.Arg(0)
		cmd = c

	case "bench":
		c := CommandBench{LogLevel: logLevel}
		flags.Usage = func() {
			writeLines(w, append([]string{
				"",
				fm("usage: %s bench [-config <path>] "+
					"[-keys <n>] [-ops <n>] [-seed <n>]", executableName),
				"",
				"flags:",
				"-config <path>: configuration file or directory path",
				fm("-keys <n>: number of distinct keys (default: %d)",
					DefaultBenchKeys),
				fm("-ops <n>: number of operations (default: %d)",
					DefaultBenchOps),
				"-seed <n>: random seed (default: 0)",
			}, envLines...)...)
		}
		flags.StringVar(&c.ConfigPath, "config", configPath, "")
		flags.IntVar(&c.Keys, "keys", DefaultBenchKeys, "")
		flags.IntVar(&c.Ops, "ops", DefaultBenchOps, "")
		flags.Int64Var(&c.Seed, "seed", 0, "")
		if !parseFlags() {
			return nil
		}
		if c.Keys < 1 || c.Ops < 0 {
			writeLines(w, "-keys must be positive and -ops must not be negative")
			flags.Usage()
			return nil
		}
		cmd = c

	case "help":
		flags.Usage()
		return CommandHelp{}

	default:
		flags.Usage()
		return nil
	}
	return cmd
}

func writeLines(w io.Writer, lines ...string) {
	for i := range lines {
		_, _ = w.Write([]byte(lines[i]))
		_, _ = w.Write([]byte("\n"))
	}
}
