// Package scan implements the literal-substring scanners used both as
// standalone matchers for pure-literal patterns and as prefilter
// predicates ahead of the regex engine (spec 4.H).
package scan

// KMP is a Knuth-Morris-Pratt scanner for a single literal pattern.
// Patterns and text are runes, matching the engine's codepoint semantics
// rather than bytes.
type KMP struct {
	pattern []rune
	failure []int
}

// NewKMP builds the failure table for pattern in O(m) time.
func NewKMP(pattern []rune) *KMP {
	k := &KMP{pattern: pattern, failure: make([]int, len(pattern))}
	k.buildFailureTable()
	return k
}

// buildFailureTable computes, for each prefix of the pattern, the length
// of the longest proper prefix that is also a suffix.
func (k *KMP) buildFailureTable() {
	if len(k.pattern) == 0 {
		return
	}
	k.failure[0] = 0
	length := 0
	i := 1
	for i < len(k.pattern) {
		if k.pattern[i] == k.pattern[length] {
			length++
			k.failure[i] = length
			i++
		} else if length > 0 {
			length = k.failure[length-1]
		} else {
			k.failure[i] = 0
			i++
		}
	}
}

// Search returns the start offsets of every (possibly self-overlapping)
// occurrence of the pattern in text, in increasing order. Self-overlapping
// matches are allowed by the failure-function semantics, e.g. "aa" in
// "aaaa" yields positions 0, 1, 2.
func (k *KMP) Search(text []rune) []int {
	if len(k.pattern) == 0 {
		return nil
	}
	var hits []int
	j := 0
	for i := 0; i < len(text); i++ {
		for j > 0 && text[i] != k.pattern[j] {
			j = k.failure[j-1]
		}
		if text[i] == k.pattern[j] {
			j++
		}
		if j == len(k.pattern) {
			hits = append(hits, i-j+1)
			j = k.failure[j-1]
		}
	}
	return hits
}

// Contains reports whether the pattern occurs anywhere in text, stopping
// at the first match.
func (k *KMP) Contains(text []rune) bool {
	if len(k.pattern) == 0 {
		return true
	}
	j := 0
	for i := 0; i < len(text); i++ {
		for j > 0 && text[i] != k.pattern[j] {
			j = k.failure[j-1]
		}
		if text[i] == k.pattern[j] {
			j++
		}
		if j == len(k.pattern) {
			return true
		}
	}
	return false
}
