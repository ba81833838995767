// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"sync"

	"repeatscan-core/dna"
	"repeatscan-core/engine"
	"repeatscan-core/seqio"
)

// Config controls the scanning pipeline.
type Config struct {
	Threads int // number of worker goroutines (>=1)
}

// InputError marks malformed or duplicate input. Callers report it as a
// usage-class failure rather than an I/O failure.
type InputError struct {
	msg string
}

func (e *InputError) Error() string { return e.msg }

func inputErrorf(format string, a ...any) *InputError {
	return &InputError{msg: fmt.Sprintf(format, a...)}
}

// ForEachReport streams per-sequence repeat reports to visit.
//
// The feed stage is serial: it normalizes each record, validates the
// alphabet, and rejects any sequence already seen across all input files.
// The whole run aborts on the first InputError. Valid records fan out to
// workers, each of which builds its own tree, so no state is shared
// between sequences. The first error encountered (including cancellation)
// is returned.
func ForEachReport(
	ctx context.Context,
	cfg Config,
	seqFiles []string,
	sc Scanner,
	visit func(engine.Report) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	type job struct {
		id         string
		seq        string
		sourceFile string
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan engine.Report, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					rep := sc.Scan(j.id, j.seq)
					rep.SourceFile = j.sourceFile
					select {
					case results <- rep:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// First error wins; feed and collector both report through here.
	var (
		errMu sync.Mutex
		cerr  error
	)
	setErr := func(err error) {
		errMu.Lock()
		if cerr == nil {
			cerr = err
		}
		errMu.Unlock()
	}
	failed := func() bool {
		errMu.Lock()
		defer errMu.Unlock()
		return cerr != nil
	}

	// Collector
	var cwg sync.WaitGroup
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for rep := range results {
			if failed() {
				continue
			}
			if err := visit(rep); err != nil {
				setErr(err)
			}
		}
	}()

	// Feed: serial, so duplicate detection is deterministic.
	seen := make(map[string]string) // normalized sequence -> first ID
feed:
	for _, path := range seqFiles {
		rch, err := seqio.Records(ctx, path)
		if err != nil {
			setErr(err)
			continue
		}
		for rec := range rch {
			seq, verr := dna.Validate(rec.Seq)
			if verr != nil {
				setErr(inputErrorf("sequence %q: %v", rec.ID, verr))
				break feed
			}
			if firstID, dup := seen[seq]; dup {
				setErr(inputErrorf("duplicate sequence %q (already seen as %q)", rec.ID, firstID))
				break feed
			}
			seen[seq] = rec.ID

			select {
			case <-ctx.Done():
				break feed
			case jobs <- job{id: rec.ID, seq: seq, sourceFile: path}:
			}
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	return cerr
}
