// internal/cmdutil/run.go

// Package cmdutil bridges the pipeline and a writer goroutine: it adapts
// per-report visitors to typed writer channels and keeps the match counters
// every front end needs for exit codes.
package cmdutil

import (
	"context"

	"repeatscan-core/engine"
	"repeatscan/internal/pipeline"
)

// RunStream drives the pipeline and forwards visited items to send.
// visit maps a report to the writer's item type; emit=false skips the item
// without counting it as an error. Returned counters: total reports seen,
// and how many contained at least one repeat.
func RunStream[T any](
	ctx context.Context,
	cfg pipeline.Config,
	seqFiles []string,
	sc pipeline.Scanner,
	visit func(engine.Report) (bool, T, error),
	send func(T) error,
) (total, found int, err error) {
	perr := pipeline.ForEachReport(ctx, cfg, seqFiles, sc, func(r engine.Report) error {
		total++
		if r.HasRepeats() {
			found++
		}
		emit, item, verr := visit(r)
		if verr != nil {
			return verr
		}
		if !emit {
			return nil
		}
		return send(item)
	})
	return total, found, perr
}
