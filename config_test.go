package aocgrid

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadConfig(t *testing.T) {
	p := writeFile(t, "aoc.toml", `
input_dir = "inputs/2023"
log_level = "debug"
timing = false
`)
	c, err := LoadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, "inputs/2023", c.InputDir)
	lvl, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, lvl)
	assert.False(t, c.timing())
	assert.Equal(t, filepath.Join("inputs/2023", "day1.txt"), c.resolve("day1.txt"))
	assert.Equal(t, "/abs/day1.txt", c.resolve("/abs/day1.txt"))
}

func TestConfigDefaults(t *testing.T) {
	var c Config
	lvl, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, log.InfoLevel, lvl)
	assert.True(t, c.timing())
	assert.Equal(t, "day1.txt", c.resolve("day1.txt"))
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name, content string
	}{
		{"unknown key", `input_dri = "x"`},
		{"bad level", `log_level = "loud"`},
		{"bad toml", `input_dir = `},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, "aoc.toml", tt.content))
			assert.True(t, errors.Is(err, ErrParse), "err = %v", err)
		})
	}
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
