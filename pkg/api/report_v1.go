// pkg/api/report_v1.go
package api

// ReportV1 is the stable JSON/JSONL schema for per-sequence repeat reports.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReportV1 struct {
	SequenceID string    `json:"sequence_id"`
	Sequence   string    `json:"sequence,omitempty"`
	SourceFile string    `json:"source_file,omitempty"`
	Repeats    []RangeV1 `json:"repeats"` // null when the sequence has no repeats
}

// RangeV1 is one repeated-substring occurrence, 0-based, inclusive ends.
type RangeV1 struct {
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Length int    `json:"length"`
	Repeat string `json:"repeat,omitempty"`
}
