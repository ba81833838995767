// internal/output/jsonl.go
package output

import (
	"io"

	"repeatscan-core/engine"
	"repeatscan/internal/jsonutil"
)

// StreamJSONL writes one v1 report per line as reports arrive.
func StreamJSONL(w io.Writer, in <-chan engine.Report) error {
	for r := range in {
		if err := jsonutil.EncodeLine(w, ToAPIReport(r)); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSONL writes a buffered report list, one v1 report per line.
func WriteJSONL(w io.Writer, list []engine.Report) error {
	for _, r := range list {
		if err := jsonutil.EncodeLine(w, ToAPIReport(r)); err != nil {
			return err
		}
	}
	return nil
}
