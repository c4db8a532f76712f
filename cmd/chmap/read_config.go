package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Spyriounis/hashmap/pkg/config"
	plog "github.com/phuslu/log"
)

// ReadConfig reads the configuration from configPath which can be
// either a file or a directory. Returns the default configuration
// if configPath is empty.
func ReadConfig(w io.Writer, configPath, logLevel string) *config.Config {
	conf := config.Default()
	if configPath != "" {
		var err error
		if conf, err = readConfig(configPath); err != nil {
			fmt.Fprintf(w, "reading config: %s\n", err)
			return nil
		}
	}
	if logLevel != "" {
		l, ok := config.ParseLogLevel(logLevel)
		if !ok {
			fmt.Fprintf(w, "reading config: unknown log level %q\n", logLevel)
			return nil
		}
		conf.Log.Level = l
	}
	return conf
}

func readConfig(configPath string) (*config.Config, error) {
	i, err := os.Stat(configPath)
	if err != nil {
		return nil, err
	}
	if i.IsDir() {
		return config.ReadDir(os.DirFS(configPath), ".")
	}
	basePath, fileName := filepath.Split(configPath)
	if basePath == "" {
		basePath = "."
	}
	return config.Read(os.DirFS(basePath), fileName)
}

func newLogger(conf *config.Config) *plog.Logger {
	return &plog.Logger{
		Level:      conf.Log.Level,
		TimeField:  "time",
		TimeFormat: "15:04:05",
		Writer: &plog.ConsoleWriter{
			ColorOutput: true,
			Writer:      os.Stderr,
		},
	}
}
