// internal/cli/args.go
package cli

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"
)

// splitArgs separates flag arguments from positional sequence paths so files
// can be given without --sequences. A lone "-" stays positional (stdin) and
// "--" ends flag parsing.
func splitArgs(fs *flag.FlagSet, argv []string) (flags, paths []string) {
	takesValue := func(arg string) bool {
		f := fs.Lookup(strings.TrimLeft(arg, "-"))
		if f == nil {
			return true
		}
		b, ok := f.Value.(interface{ IsBoolFlag() bool })
		return !ok || !b.IsBoolFlag()
	}

	for i := 0; i < len(argv); i++ {
		a := argv[i]
		switch {
		case a == "--":
			paths = append(paths, argv[i+1:]...)
			return
		case a == "-" || !strings.HasPrefix(a, "-"):
			paths = append(paths, a)
		case strings.Contains(a, "="):
			flags = append(flags, a)
		default:
			flags = append(flags, a)
			if takesValue(a) && i+1 < len(argv) {
				i++
				flags = append(flags, argv[i])
			}
		}
	}
	return
}

// expandGlobs resolves shell-style patterns among positional paths, for
// shells and scripts that pass them through unexpanded.
func expandGlobs(paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "-" || !strings.ContainsAny(p, "*?[") {
			out = append(out, p)
			continue
		}
		matches, err := filepath.Glob(p)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %v", p, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no input matched %q", p)
		}
		out = append(out, matches...)
	}
	return out, nil
}
