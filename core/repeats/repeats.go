// core/repeats/repeats.go
package repeats

import (
	"sort"

	"repeatscan-core/suffixtree"
)

// MinLength is the shortest repeated substring reported.
const MinLength = 2

// Range is one occurrence of a repeated substring within a sequence,
// 0-based and inclusive at both ends.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of symbols the range covers.
func (r Range) Len() int { return r.End - r.Start + 1 }

// Find walks a completed tree and returns the occurrence ranges of every
// repeated substring of length >= MinLength, deduplicated and sorted
// ascending by (start, end). It returns nil when the sequence has no
// repeats. Find never mutates the tree; running it twice yields identical
// output.
//
// Every non-root internal node is branching (the sentinel guarantees at
// least two children), so its path string prefixes at least two suffixes and
// therefore occurs at least twice. A node at string depth d contributes one
// occurrence (s, s+d-1) for each suffix start s in its subtree. Overlapping
// occurrences of the same substring collapse into a single run range, which
// reports a homopolymer stretch such as AAAA as one (0,3) rather than three
// sliding windows.
func Find(t *suffixtree.Tree) []Range {
	seen := make(map[Range]struct{})
	var out []Range

	// walk returns the suffix start positions below id; depth is the string
	// depth of id itself.
	var walk func(id int32, depth int) []int
	walk = func(id int32, depth int) []int {
		if t.IsLeaf(id) {
			s, e := t.Edge(id)
			parentDepth := depth - (e - s)
			return []int{s - parentDepth}
		}
		var starts []int
		for _, c := range t.Children(id) {
			s, e := t.Edge(c)
			starts = append(starts, walk(c, depth+(e-s))...)
		}
		if id != t.Root() && depth >= MinLength {
			for _, r := range mergeRuns(starts, depth) {
				if _, dup := seen[r]; !dup {
					seen[r] = struct{}{}
					out = append(out, r)
				}
			}
		}
		return starts
	}
	walk(t.Root(), 0)

	if len(out) == 0 {
		return nil
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].End < out[j].End
	})
	return out
}

// mergeRuns turns suffix starts into occurrence ranges of one substring of
// the given length and merges the ones that overlap. Adjacent but disjoint
// occurrences stay separate.
func mergeRuns(starts []int, length int) []Range {
	sort.Ints(starts)
	var runs []Range
	for _, s := range starts {
		r := Range{Start: s, End: s + length - 1}
		if n := len(runs); n > 0 && r.Start <= runs[n-1].End {
			if r.End > runs[n-1].End {
				runs[n-1].End = r.End
			}
			continue
		}
		runs = append(runs, r)
	}
	return runs
}
