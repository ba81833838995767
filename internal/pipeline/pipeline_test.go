// internal/pipeline/pipeline_test.go
package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"repeatscan-core/engine"
	"repeatscan-core/repeats"
)

type fakeScanner struct{}

func (fakeScanner) Scan(id, seq string) engine.Report {
	rep := engine.Report{SequenceID: id, Sequence: seq}
	if len(seq) >= 4 {
		rep.Ranges = []repeats.Range{{Start: 0, End: 1}}
	}
	return rep
}

func writeLines(t *testing.T, name string, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func collect(t *testing.T, threads int, files ...string) ([]engine.Report, error) {
	t.Helper()
	var (
		mu  sync.Mutex
		got []engine.Report
	)
	err := ForEachReport(context.Background(), Config{Threads: threads}, files, fakeScanner{}, func(r engine.Report) error {
		mu.Lock()
		got = append(got, r)
		mu.Unlock()
		return nil
	})
	return got, err
}

func TestForEachReportBasic(t *testing.T) {
	path := writeLines(t, "seqs.txt", "ACGT\nTTAA\n")
	got, err := collect(t, 1, path)
	if err != nil {
		t.Fatalf("ForEachReport: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d reports, want 2", len(got))
	}
	for _, r := range got {
		if r.SourceFile != path {
			t.Errorf("report %q: SourceFile = %q, want %q", r.SequenceID, r.SourceFile, path)
		}
	}
}

func TestForEachReportDuplicateAborts(t *testing.T) {
	path := writeLines(t, "seqs.txt", "ACGT\nacgt\n")
	_, err := collect(t, 1, path)
	var ierr *InputError
	if !errors.As(err, &ierr) {
		t.Fatalf("err = %v, want InputError", err)
	}
}

func TestForEachReportDuplicateAcrossFiles(t *testing.T) {
	a := writeLines(t, "a.txt", "ACGT\n")
	b := writeLines(t, "b.txt", "ACGT\n")
	_, err := collect(t, 1, a, b)
	var ierr *InputError
	if !errors.As(err, &ierr) {
		t.Fatalf("err = %v, want InputError", err)
	}
}

func TestForEachReportInvalidBaseAborts(t *testing.T) {
	path := writeLines(t, "seqs.txt", "ACGX\n")
	_, err := collect(t, 1, path)
	var ierr *InputError
	if !errors.As(err, &ierr) {
		t.Fatalf("err = %v, want InputError", err)
	}
}

func TestForEachReportMissingFile(t *testing.T) {
	_, err := collect(t, 1, filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("want error for missing file")
	}
	var ierr *InputError
	if errors.As(err, &ierr) {
		t.Fatalf("missing file should not be an InputError: %v", err)
	}
}

func TestForEachReportSerialMatchesParallel(t *testing.T) {
	path := writeLines(t, "seqs.txt", "ACGTACGT\nTTTT\nGATTACA\nCCGG\nAT\n")

	serial, err := collect(t, 1, path)
	if err != nil {
		t.Fatalf("serial: %v", err)
	}
	parallel, err := collect(t, 4, path)
	if err != nil {
		t.Fatalf("parallel: %v", err)
	}

	key := func(list []engine.Report) []string {
		ids := make([]string, len(list))
		for i, r := range list {
			ids[i] = r.SequenceID + ":" + r.Sequence
		}
		sort.Strings(ids)
		return ids
	}
	s, p := key(serial), key(parallel)
	if len(s) != len(p) {
		t.Fatalf("serial %d reports, parallel %d", len(s), len(p))
	}
	for i := range s {
		if s[i] != p[i] {
			t.Errorf("mismatch at %d: %q vs %q", i, s[i], p[i])
		}
	}
}

func TestForEachReportCancel(t *testing.T) {
	path := writeLines(t, "seqs.txt", "ACGT\nTTAA\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ForEachReport(ctx, Config{Threads: 2}, []string{path}, fakeScanner{}, func(engine.Report) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
