// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"repeatscan-core/engine"
)

// TSVHeader is the canonical header row for text output. Keep it the single
// source of truth for column order.
const TSVHeader = "sequence_id\tstart\tend\tlength\trepeat"

// writeRows prints one line per repeat occurrence, or a single placeholder
// line when the sequence has none.
func writeRows(w io.Writer, r engine.Report) error {
	if !r.HasRepeats() {
		_, err := fmt.Fprintf(w, "%s\t-\t-\t-\t-\n", r.SequenceID)
		return err
	}
	for _, rg := range r.Ranges {
		sub := "-"
		if r.Sequence != "" {
			sub = r.Sequence[rg.Start : rg.End+1]
		}
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n",
			r.SequenceID, rg.Start, rg.End, rg.Len(), sub); err != nil {
			return err
		}
	}
	return nil
}

// WriteText prints a buffered report list as TSV.
func WriteText(w io.Writer, list []engine.Report, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if err := writeRows(w, r); err != nil {
			return err
		}
	}
	return nil
}

// StreamText prints reports as they arrive.
func StreamText(w io.Writer, in <-chan engine.Report, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if err := writeRows(w, r); err != nil {
			return err
		}
	}
	return nil
}
