// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"repeatscan-core/engine"
	"repeatscan/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	SeqFiles []string

	// Detection
	Algorithm string

	// Performance
	Threads int

	// Output
	Output string
	Sort   bool
	Header bool // true unless --no-header

	// Diagnostics / config
	Quiet      bool
	ConfigFile string
	LogLevel   string
	LogFile    string

	// Exit behavior
	NoRepeatExitCode int

	Version bool

	explicit map[string]bool
}

// WasSet reports whether the named flag was given on the command line.
// Config file values only apply to flags the user left at their default.
func (o *Options) WasSet(name string) bool { return o.explicit[name] }

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: DNA repeat detection via suffix trees

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Positional arguments are treated as additional sequence files.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Input
	var seq stringSlice
	fs.Var(&seq, "sequences", "sequence file(s): FASTA or one sequence per line (repeatable or '-') [*]")

	// Detection
	fs.StringVar(&opt.Algorithm, "algorithm", engine.AlgorithmSuffixTree, "detection algorithm: suffixtree | runs ["+engine.AlgorithmSuffixTree+"]")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")

	// Output
	fs.StringVar(&opt.Output, "output", "text", "output format: text | json | jsonl [text]")
	fs.BoolVar(&opt.Sort, "sort", false, "sort outputs for determinism (SourceFile,SequenceID) [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")

	// Diagnostics / config
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-error logging [false]")
	fs.StringVar(&opt.ConfigFile, "config", "", "TOML config file (flags given on the command line win)")
	fs.StringVar(&opt.LogLevel, "log-level", "", "log level: trace|debug|info|warn|error (default warn)")
	fs.StringVar(&opt.LogFile, "log-file", "", "also write logs to this file (rotated)")

	// Exit behavior
	fs.IntVar(&opt.NoRepeatExitCode, "no-repeat-exit-code", 0, "exit code when no sequence contains a repeat [0]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := splitArgs(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	opt.explicit = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { opt.explicit[f.Name] = true })

	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	pos, err := expandGlobs(posArgs)
	if err != nil {
		return opt, err
	}
	opt.SeqFiles = append([]string(seq), pos...)
	opt.Header = !noHeader

	return opt, nil
}

// Validate checks option consistency after config-file merging.
func Validate(opt *Options) error {
	if len(opt.SeqFiles) == 0 {
		return errors.New("at least one sequence file is required (--sequences or positional)")
	}
	if opt.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	switch opt.Output {
	case "text", "json", "jsonl":
	default:
		return fmt.Errorf("invalid --output %q", opt.Output)
	}
	switch opt.Algorithm {
	case engine.AlgorithmSuffixTree, engine.AlgorithmRuns:
	default:
		return fmt.Errorf("invalid --algorithm %q", opt.Algorithm)
	}
	if opt.NoRepeatExitCode < 0 || opt.NoRepeatExitCode > 125 {
		return errors.New("--no-repeat-exit-code must be in [0,125]")
	}
	return nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
