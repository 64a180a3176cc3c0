package aocgrid

import (
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// Config is the optional driver configuration, read from a TOML file:
//
//	input_dir = "inputs/2023"
//	log_level = "debug"
//	timing = false
type Config struct {
	// InputDir is prepended to relative input paths.
	InputDir string `toml:"input_dir"`
	// LogLevel is one of debug, info, warn, error. Defaults to info.
	LogLevel string `toml:"log_level"`
	// Timing logs how long each part took. Defaults to true.
	Timing *bool `toml:"timing"`
}

// LoadConfig reads a Config from path. Unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	var c Config
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Config{}, errors.Wrapf(ErrParse, "config %s: %v", path, err)
	}
	if un := md.Undecoded(); len(un) > 0 {
		keys := make([]string, len(un))
		for i, k := range un {
			keys[i] = k.String()
		}
		return Config{}, errors.Wrapf(ErrParse, "config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if _, err := c.Level(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Level() (log.Level, error) {
	if c.LogLevel == "" {
		return log.InfoLevel, nil
	}
	l, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel, errors.Wrapf(ErrParse, "log_level %q", c.LogLevel)
	}
	return l, nil
}

func (c Config) timing() bool {
	return c.Timing == nil || *c.Timing
}

// resolve returns path, relative to InputDir when path is relative.
func (c Config) resolve(path string) string {
	if c.InputDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.InputDir, path)
}
