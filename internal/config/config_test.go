// internal/config/config_test.go
package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repeatscan/internal/cli"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "repeatscan.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
threads = 8
output = "jsonl"
sort = true

[log]
level = "debug"
file = "scan.log"
max_backups = 5
`)
	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, s.Threads)
	assert.Equal(t, "jsonl", s.Output)
	assert.True(t, s.Sort)
	assert.Equal(t, "debug", s.Log.Level)
	assert.Equal(t, "scan.log", s.Log.File)
	assert.Equal(t, 5, s.Log.MaxBackups)
	// Untouched defaults survive.
	assert.Equal(t, 20, s.Log.MaxSizeMB)
}

func TestLoadUnknownKey(t *testing.T) {
	path := writeConfig(t, "treads = 8\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown key")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestApplyRespectsExplicitFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	opt, err := cli.ParseArgs(fs, []string{"--threads", "2", "seqs.txt"})
	require.NoError(t, err)

	Apply(&opt, Settings{Threads: 8, Output: "json", Log: LogSettings{Level: "info"}})

	assert.Equal(t, 2, opt.Threads, "explicit flag wins over config")
	assert.Equal(t, "json", opt.Output, "unset flag takes config value")
	assert.Equal(t, "info", opt.LogLevel)
}
