// internal/config/config.go
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"repeatscan/internal/cli"
)

// LogSettings maps the [log] table.
type LogSettings struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	Compress   bool   `toml:"compress"`
}

// Settings is the TOML config file schema. Zero values mean "unset";
// command-line flags always win over file values.
type Settings struct {
	Threads   int         `toml:"threads"`
	Output    string      `toml:"output"`
	Algorithm string      `toml:"algorithm"`
	Sort      bool        `toml:"sort"`
	Log       LogSettings `toml:"log"`
}

// Default returns the baseline settings applied before any file is read.
func Default() Settings {
	return Settings{
		Log: LogSettings{
			MaxSizeMB:  20,
			MaxBackups: 3,
			MaxAgeDays: 14,
		},
	}
}

// Load reads a TOML file over the defaults.
func Load(path string) (Settings, error) {
	s := Default()
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return s, fmt.Errorf("config %s: %w", path, err)
	}
	if un := md.Undecoded(); len(un) > 0 {
		return s, fmt.Errorf("config %s: unknown key %q", path, un[0].String())
	}
	return s, nil
}

// Apply copies file settings into opt for every flag the user did not set
// explicitly on the command line.
func Apply(opt *cli.Options, s Settings) {
	if !opt.WasSet("threads") && s.Threads > 0 {
		opt.Threads = s.Threads
	}
	if !opt.WasSet("output") && s.Output != "" {
		opt.Output = s.Output
	}
	if !opt.WasSet("algorithm") && s.Algorithm != "" {
		opt.Algorithm = s.Algorithm
	}
	if !opt.WasSet("sort") && s.Sort {
		opt.Sort = true
	}
	if !opt.WasSet("log-level") && s.Log.Level != "" {
		opt.LogLevel = s.Log.Level
	}
	if !opt.WasSet("log-file") && s.Log.File != "" {
		opt.LogFile = s.Log.File
	}
}
