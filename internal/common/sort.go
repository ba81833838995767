// internal/common/sort.go
package common

import (
	"sort"

	"repeatscan-core/engine"
)

// LessReport defines a stable order for reports (for --sort).
func LessReport(a, b engine.Report) bool {
	if a.SourceFile != b.SourceFile {
		return a.SourceFile < b.SourceFile
	}
	return a.SequenceID < b.SequenceID
}

// SortReports orders reports deterministically by (source file, sequence ID).
func SortReports(rs []engine.Report) {
	sort.SliceStable(rs, func(i, j int) bool { return LessReport(rs[i], rs[j]) })
}
