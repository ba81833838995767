// core/dna/dna.go
package dna

import "fmt"

// Alphabet is the set of accepted nucleotide symbols.
const Alphabet = "ACGT"

// Normalize strips whitespace and uppercases nucleotides, mirroring how raw
// records arrive from sequence files.
func Normalize(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		}
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		out = append(out, c)
	}
	return string(out)
}

// Validate returns the normalized sequence, or an error when it is empty or
// contains a symbol outside {A,C,G,T}. The detection core assumes input has
// passed through here and does not re-validate.
func Validate(raw string) (string, error) {
	s := Normalize(raw)
	if s == "" {
		return "", fmt.Errorf("empty DNA sequence")
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A', 'C', 'G', 'T':
		default:
			return "", fmt.Errorf("invalid base %q at position %d; allowed: A C G T", s[i], i+1)
		}
	}
	return s, nil
}
