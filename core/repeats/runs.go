// core/repeats/runs.go
package repeats

// Runs scans seq once and returns the maximal runs of a single repeated
// symbol with length >= MinLength, in order of appearance, or nil when there
// are none. It is the cheap consecutive-run detector; Find is the general
// one.
func Runs(seq []byte) []Range {
	var out []Range
	for i := 0; i < len(seq); {
		j := i + 1
		for j < len(seq) && seq[j] == seq[i] {
			j++
		}
		if j-i >= MinLength {
			out = append(out, Range{Start: i, End: j - 1})
		}
		i = j
	}
	return out
}
