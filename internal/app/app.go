// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"repeatscan-core/engine"
	"repeatscan/internal/appcore"
	"repeatscan/internal/cli"
	"repeatscan/internal/config"
	"repeatscan/internal/logx"
	"repeatscan/internal/version"
	"repeatscan/internal/writers"
)

// RunContext parses argv and runs a full scan. It returns the process exit
// code and writes reports to stdout, diagnostics to stderr.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("repeatscan")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "repeatscan version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	settings := config.Default()
	if opts.ConfigFile != "" {
		settings, err = config.Load(opts.ConfigFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
	}
	config.Apply(&opts, settings)

	if err := cli.Validate(&opts); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	log := logx.New(logx.Options{
		Level:      opts.LogLevel,
		File:       opts.LogFile,
		Quiet:      opts.Quiet,
		MaxSizeMB:  settings.Log.MaxSizeMB,
		MaxBackups: settings.Log.MaxBackups,
		MaxAgeDays: settings.Log.MaxAgeDays,
		Compress:   settings.Log.Compress,
	})

	coreOpts := appcore.Options{
		SeqFiles:         opts.SeqFiles,
		Algorithm:        opts.Algorithm,
		Threads:          opts.Threads,
		Quiet:            opts.Quiet,
		NoRepeatExitCode: opts.NoRepeatExitCode,
	}
	writer := appcore.NewReportWriterFactory(opts.Output, opts.Sort, opts.Header)
	identity := func(r engine.Report) (bool, engine.Report, error) { return true, r, nil }
	return appcore.Run[engine.Report](parent, stdout, stderr, log, coreOpts, identity, writer)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
