// Package literal extracts required literal substrings from a parsed
// pattern for prefilter optimization: by finding text that must appear in
// any match, a cheap substring scan can reject most non-matching lines
// before the regex engine ever runs.
package literal

import "sort"

// Literal is a literal codepoint sequence that must appear in any match.
// The engine works in codepoints rather than bytes (patterns and input are
// Unicode; comparison is codepoint equality), so unlike a byte-oriented
// literal extractor this stores runes directly.
type Literal struct {
	Runes []rune
}

// NewLiteral returns a Literal wrapping runes.
func NewLiteral(runes []rune) Literal {
	return Literal{Runes: runes}
}

// Len returns the literal's length in codepoints.
func (l Literal) Len() int { return len(l.Runes) }

// String returns the literal as a plain string.
func (l Literal) String() string { return string(l.Runes) }

// Seq is a set of alternative literals, such as the branches of a
// literal-only alternation, or the required substrings of a larger
// pattern.
type Seq struct {
	literals []Literal
}

// NewSeq returns a sequence containing lits.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{literals: lits}
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at index i.
func (s *Seq) Get(i int) Literal { return s.literals[i] }

// IsEmpty reports whether the sequence has no literals.
func (s *Seq) IsEmpty() bool { return s.Len() == 0 }

// Longest returns the length of the longest literal in the sequence, or 0
// if the sequence is empty.
func (s *Seq) Longest() int {
	max := 0
	for _, l := range s.literals {
		if l.Len() > max {
			max = l.Len()
		}
	}
	return max
}

// SortByDecreasingLength sorts the sequence's literals longest-first,
// which gives better prefilter selectivity (spec 4.I: "sort by decreasing
// length").
func (s *Seq) SortByDecreasingLength() {
	sort.SliceStable(s.literals, func(i, j int) bool {
		return s.literals[i].Len() > s.literals[j].Len()
	})
}

// Dedup removes literals with identical text, preserving the first
// occurrence's position.
func (s *Seq) Dedup() {
	seen := make(map[string]bool, len(s.literals))
	kept := s.literals[:0]
	for _, l := range s.literals {
		k := l.String()
		if seen[k] {
			continue
		}
		seen[k] = true
		kept = append(kept, l)
	}
	s.literals = kept
}

// Strings returns the sequence's literals as plain strings, in order.
func (s *Seq) Strings() []string {
	out := make([]string, len(s.literals))
	for i, l := range s.literals {
		out[i] = l.String()
	}
	return out
}
