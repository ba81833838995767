// internal/writers/report.go
package writers

import (
	"fmt"
	"io"

	"repeatscan-core/engine"
	"repeatscan/internal/common"
	"repeatscan/internal/output"
)

// StartReportWriter spins up a writer goroutine for engine.Report items and
// returns the input channel plus a one-shot error channel that yields after
// the input channel is closed and the writer drains.
//
// With sortOut set, every format buffers and sorts for deterministic output;
// otherwise text and jsonl stream as reports arrive. json always buffers
// (it emits one array).
func StartReportWriter(out io.Writer, format string, sortOut, header bool, bufSize int) (chan<- engine.Report, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Report, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case "json":
			var buf []engine.Report
			for r := range in {
				buf = append(buf, r)
			}
			if sortOut {
				common.SortReports(buf)
			}
			err = output.WriteJSON(out, buf)

		case "jsonl":
			if sortOut {
				var buf []engine.Report
				for r := range in {
					buf = append(buf, r)
				}
				common.SortReports(buf)
				err = output.WriteJSONL(out, buf)
			} else {
				err = output.StreamJSONL(out, in)
			}

		case "text":
			if sortOut {
				var buf []engine.Report
				for r := range in {
					buf = append(buf, r)
				}
				common.SortReports(buf)
				err = output.WriteText(out, buf, header)
			} else {
				err = output.StreamText(out, in, header)
			}

		default:
			err = fmt.Errorf("unsupported output %q", format)
		}
		// Drain so producers never block on an aborted writer.
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}
