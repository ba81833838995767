// internal/cli/options_test.go
package cli

import (
	"flag"
	"testing"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if err := Validate(&opts); err != nil {
		t.Fatalf("validate err: %v", err)
	}
	return opts
}

func TestSequencesFlagOK(t *testing.T) {
	o := mustParse(t, "--sequences", "seqs.txt", "--sequences", "extra.fa")
	if len(o.SeqFiles) != 2 || o.SeqFiles[0] != "seqs.txt" {
		t.Errorf("bad SeqFiles %+v", o.SeqFiles)
	}
}

func TestPositionalSequences(t *testing.T) {
	o := mustParse(t, "--sort", "seqs.txt")
	if len(o.SeqFiles) != 1 || o.SeqFiles[0] != "seqs.txt" || !o.Sort {
		t.Errorf("bad parse %+v", o)
	}
}

func TestDefaults(t *testing.T) {
	o := mustParse(t, "seqs.txt")
	if o.Output != "text" || o.Algorithm != "suffixtree" || !o.Header || o.Threads != 0 {
		t.Errorf("bad defaults %+v", o)
	}
}

func TestWasSet(t *testing.T) {
	o := mustParse(t, "--threads", "4", "seqs.txt")
	if !o.WasSet("threads") {
		t.Error("threads should be marked explicit")
	}
	if o.WasSet("output") {
		t.Error("output should not be marked explicit")
	}
}

func TestErrorNoSequences(t *testing.T) {
	o, err := ParseArgs(newFS(), nil)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if err := Validate(&o); err == nil {
		t.Fatal("expected error when sequences missing")
	}
}

func TestErrorBadOutput(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"--output", "xml", "seqs.txt"})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if err := Validate(&o); err == nil {
		t.Fatal("expected error for invalid output")
	}
}

func TestErrorBadAlgorithm(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"--algorithm", "bwt", "seqs.txt"})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if err := Validate(&o); err == nil {
		t.Fatal("expected error for invalid algorithm")
	}
}

func TestNoHeader(t *testing.T) {
	o := mustParse(t, "--no-header", "seqs.txt")
	if o.Header {
		t.Error("Header should be false with --no-header")
	}
}

func TestVersionShortCircuits(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"-v"})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if !o.Version {
		t.Error("Version should be set")
	}
}
