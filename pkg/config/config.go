// Package config reads the map and logging configuration
// from YAML or TOML files.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Spyriounis/hashmap/pkg/container/chmap"
	plog "github.com/phuslu/log"
	yaml "gopkg.in/yaml.v3"
)

const ConfigFileYAML1 = "config.yaml"
const ConfigFileYAML2 = "config.yml"
const ConfigFileTOML = "config.toml"

const DefaultLogLevel = "info"

type Config struct {
	Map chmap.Config
	Log Log
}

type Log struct {
	Level plog.Level
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		Map: chmap.DefaultConfig(),
		Log: Log{Level: plog.InfoLevel},
	}
}

type fileConfig struct {
	Map chmap.Config `yaml:"map" toml:"map"`
	Log struct {
		Level string `yaml:"level" toml:"level"`
	} `yaml:"log" toml:"log"`
}

// ReadDir reads the configuration file from directory dirPath.
// The directory must contain exactly one of
// config.yaml, config.yml or config.toml.
func ReadDir(filesystem fs.FS, dirPath string) (*Config, error) {
	d, err := fs.ReadDir(filesystem, dirPath)
	if err != nil {
		return nil, fmt.Errorf("reading config directory: %w", err)
	}
	var found []string
	for _, o := range d {
		if o.IsDir() {
			continue
		}
		switch n := o.Name(); n {
		case ConfigFileYAML1, ConfigFileYAML2, ConfigFileTOML:
			found = append(found, path.Join(dirPath, n))
		}
	}
	switch len(found) {
	case 0:
		return nil, &ErrorMissing{
			FilePath: path.Join(dirPath, ConfigFileYAML1),
		}
	case 1:
		return Read(filesystem, found[0])
	}
	return nil, &ErrorConflict{Items: found}
}

// Read reads the configuration file at filePath.
// The format is determined by the file extension.
// Values that aren't defined in the file keep their defaults.
func Read(filesystem fs.FS, filePath string) (*Config, error) {
	f, err := filesystem.Open(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ErrorMissing{FilePath: filePath}
		}
		return nil, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	c := fileConfig{Map: chmap.DefaultConfig()}
	c.Log.Level = DefaultLogLevel

	switch ext := strings.ToLower(path.Ext(filePath)); ext {
	case ".yaml", ".yml":
		d := yaml.NewDecoder(f)
		d.KnownFields(true)
		if err := d.Decode(&c); err != nil && err != io.EOF {
			return nil, &ErrorIllegal{
				FilePath: filePath,
				Feature:  "syntax",
				Message:  err.Error(),
			}
		}
	case ".toml":
		md, err := toml.NewDecoder(f).Decode(&c)
		if err != nil {
			return nil, &ErrorIllegal{
				FilePath: filePath,
				Feature:  "syntax",
				Message:  err.Error(),
			}
		}
		if u := md.Undecoded(); len(u) > 0 {
			return nil, &ErrorIllegal{
				FilePath: filePath,
				Feature:  "syntax",
				Message:  fmt.Sprintf("unknown field %q", u[0].String()),
			}
		}
	default:
		return nil, &ErrorIllegal{
			FilePath: filePath,
			Feature:  "file extension",
			Message:  fmt.Sprintf("unsupported extension %q", ext),
		}
	}

	if err := c.Map.Validate(); err != nil {
		var errConf chmap.ErrorInvalidConfig
		if errors.As(err, &errConf) {
			return nil, &ErrorIllegal{
				FilePath: filePath,
				Feature:  errConf.Feature,
				Message:  errConf.Message,
			}
		}
		return nil, err
	}

	level, ok := ParseLogLevel(c.Log.Level)
	if !ok {
		return nil, &ErrorIllegal{
			FilePath: filePath,
			Feature:  "log level",
			Message:  fmt.Sprintf("unknown level %q", c.Log.Level),
		}
	}

	return &Config{
		Map: c.Map,
		Log: Log{Level: level},
	}, nil
}

// ParseLogLevel parses a log level name case-insensitively.
// Accepts every name and abbreviation plog.ParseLevel knows
// (e.g. "warning", "WRN"). Returns false for unknown names.
func ParseLogLevel(s string) (plog.Level, bool) {
	for _, n := range []string{s, strings.ToUpper(s)} {
		if l := plog.ParseLevel(n); l >= plog.TraceLevel &&
			l <= plog.PanicLevel {
			return l, true
		}
	}
	return 0, false
}

type ErrorConflict struct {
	Items []string
}

func (e ErrorConflict) Error() string {
	var b strings.Builder
	b.WriteString("conflict between: ")
	for i := range e.Items {
		b.WriteString(e.Items[i])
		if i+1 < len(e.Items) {
			b.WriteString(", ")
		}
	}
	return b.String()
}

type ErrorMissing struct {
	FilePath string
	Feature  string
}

func (e ErrorMissing) Error() string {
	var b strings.Builder
	if e.Feature == "" {
		b.Grow(len("missing ") + len(e.FilePath))
		b.WriteString("missing ")
		b.WriteString(e.FilePath)
		return b.String()
	}
	b.Grow(len("missing ") + len(e.Feature) + len(" in ") + len(e.FilePath))
	b.WriteString("missing ")
	b.WriteString(e.Feature)
	b.WriteString(" in ")
	b.WriteString(e.FilePath)
	return b.String()
}

type ErrorIllegal struct {
	FilePath string
	Feature  string
	Message  string
}

func (e ErrorIllegal) Error() string {
	var b strings.Builder
	b.Grow(len("illegal ") +
		len(e.Feature) +
		len(" in ") +
		len(e.FilePath) +
		len(": ") +
		len(e.Message))
	b.WriteString("illegal ")
	b.WriteString(e.Feature)
	b.WriteString(" in ")
	b.WriteString(e.FilePath)
	b.WriteString(": ")
	b.WriteString(e.Message)
	return b.String()
}
