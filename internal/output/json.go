// internal/output/json.go
package output

import (
	"io"

	"repeatscan-core/engine"
	"repeatscan/internal/jsonutil"
	"repeatscan/pkg/api"
)

// ToAPIReport converts a domain Report to the stable wire schema (v1).
// Repeats stays nil when the sequence has none, so it serializes as null.
func ToAPIReport(r engine.Report) api.ReportV1 {
	v := api.ReportV1{
		SequenceID: r.SequenceID,
		Sequence:   r.Sequence,
		SourceFile: r.SourceFile,
	}
	for _, rg := range r.Ranges {
		rv := api.RangeV1{Start: rg.Start, End: rg.End, Length: rg.Len()}
		if r.Sequence != "" {
			rv.Repeat = r.Sequence[rg.Start : rg.End+1]
		}
		v.Repeats = append(v.Repeats, rv)
	}
	return v
}

func toAPIReports(list []engine.Report) []api.ReportV1 {
	out := make([]api.ReportV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIReport(r))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 reports (pretty-indented).
func WriteJSON(w io.Writer, list []engine.Report) error {
	return jsonutil.EncodePretty(w, toAPIReports(list))
}
