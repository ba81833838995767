// internal/logx/logx.go

// Package logx builds the process logger. Console output goes to stderr so
// report formats on stdout stay machine-parseable; an optional rotated file
// captures the same stream.
package logx

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects level and sinks for the logger.
type Options struct {
	Level string // zerolog level name; empty means warn
	File  string // optional log file, rotated
	Quiet bool   // raise console floor to error

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// New returns a configured logger. Bad level names fall back to warn.
func New(o Options) zerolog.Logger {
	level := zerolog.WarnLevel
	if o.Level != "" {
		if l, err := zerolog.ParseLevel(o.Level); err == nil {
			level = l
		}
	}
	if o.Quiet && level < zerolog.ErrorLevel {
		level = zerolog.ErrorLevel
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	var w io.Writer = console
	if o.File != "" {
		w = zerolog.MultiLevelWriter(console, &lumberjack.Logger{
			Filename:   o.File,
			MaxSize:    o.MaxSizeMB,
			MaxBackups: o.MaxBackups,
			MaxAge:     o.MaxAgeDays,
			Compress:   o.Compress,
		})
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
