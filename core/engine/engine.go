// core/engine/engine.go
package engine

import (
	"repeatscan-core/repeats"
	"repeatscan-core/suffixtree"
)

// Detection algorithms.
const (
	AlgorithmSuffixTree = "suffixtree" // maximal repeated substrings via suffix tree
	AlgorithmRuns       = "runs"       // consecutive single-symbol runs only
)

// Config holds repeat-detection parameters.
type Config struct {
	Algorithm string // AlgorithmSuffixTree (default) or AlgorithmRuns
	NeedSeq   bool   // populate Report.Sequence for writers that print it
}

// Engine detects repeats in validated sequences.
type Engine struct {
	cfg Config
}

// New creates a new Engine.
func New(c Config) *Engine {
	if c.Algorithm == "" {
		c.Algorithm = AlgorithmSuffixTree
	}
	return &Engine{cfg: c}
}

// Report is the detection result for one sequence. Ranges is nil when the
// sequence has no repeats, including any sequence shorter than two symbols.
type Report struct {
	SequenceID string
	Sequence   string
	Ranges     []repeats.Range
	SourceFile string
}

// HasRepeats reports whether the sequence contained any repeat.
func (r Report) HasRepeats() bool { return len(r.Ranges) > 0 }

// Scan runs the configured detector over seq and returns its report. seq
// must already be validated (see core/dna). Each call builds an independent
// tree and shares no state, so Scan is safe to call concurrently for
// distinct sequences.
func (e *Engine) Scan(seqID string, seq string) Report {
	rep := Report{SequenceID: seqID}
	if e.cfg.NeedSeq {
		rep.Sequence = seq
	}
	if len(seq) < repeats.MinLength {
		return rep
	}
	switch e.cfg.Algorithm {
	case AlgorithmRuns:
		rep.Ranges = repeats.Runs([]byte(seq))
	default:
		rep.Ranges = repeats.Find(suffixtree.Build([]byte(seq)))
	}
	return rep
}
