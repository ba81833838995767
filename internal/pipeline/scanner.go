// internal/pipeline/scanner.go
package pipeline

import "repeatscan-core/engine"

// Scanner is the minimal capability the pipeline needs.
// Any detector (including fakes in tests) can satisfy it.
type Scanner interface {
	Scan(seqID string, seq string) engine.Report
}
