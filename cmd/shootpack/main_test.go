package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutCommandPrintsWrappedRows(t *testing.T) {
	color.NoColor = true
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"layout", "--count", "8"})

	require.NoError(t, root.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 10)
	assert.Contains(t, lines[0], "viewport=160 margin=8 wrap>136.0")
	assert.Equal(t, "   0     8.00     8.00    0", lines[2])
	assert.Equal(t, "   6   128.00     8.00    0", lines[8])
	assert.Equal(t, "   7     8.00    20.00    1", lines[9])
}

func TestLayoutCommandCounterMargin(t *testing.T) {
	color.NoColor = true
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"layout", "--count", "1", "--counter", "100"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "margin=47")
}

func TestEnvOverridesLogLevel(t *testing.T) {
	t.Setenv("SHOOTPACK_LOG_LEVEL", "debug")
	dir := t.TempDir()
	path := filepath.Join(dir, "shootpack.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"warn\"\n[loop]\ntick_rate = 20\n"), 0o644))

	v := newViper()
	v.Set("config", path)
	cfg, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 20, cfg.Loop.TickRate)
}

func TestLayoutCommandRejectsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[layout]\nscale = 0\n"), 0o644))

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--config", path, "layout"})
	assert.Error(t, root.Execute())
}
