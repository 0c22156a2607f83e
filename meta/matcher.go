package meta

import (
	"github.com/coregx/rescan/dfa"
	"github.com/coregx/rescan/dfa/lazy"
	"github.com/coregx/rescan/nfa"
	"github.com/coregx/rescan/scan"
	"github.com/coregx/rescan/selector"
)

// Match is an alias for nfa.Match so every layer of the engine shares one
// result type.
type Match = nfa.Match

// Matcher is the tagged-variant backend selected and built by Compile: it
// carries exactly one populated field for its Kind, and every method
// dispatches on Kind rather than on interface polymorphism (spec 9).
//
// Not safe for concurrent use when Kind is KindLazyDFA: the underlying lazy
// DFA mutates a cache during scanning (spec 5). Every other Kind is
// stateless after construction and safe to share across goroutines.
type Matcher struct {
	kind       selector.Kind
	ignoreCase bool

	nfaSim  *nfa.Simulator
	dfaSim  *dfa.Simulator
	lazySim *lazy.Simulator

	kmp *scan.KMP
	bm  *scan.BoyerMoore
	ac  *scan.Automaton

	literal    []rune   // single literal pattern for KindLiteralKMP/KindLiteralBM
	acPatterns [][]rune // alternation branches for KindAhoCorasick, by scan.Hit.Pattern index
}

// Kind returns the backend algorithm this matcher was built with.
func (m *Matcher) Kind() selector.Kind { return m.kind }

// Match reports whether the matcher's pattern matches the whole of s.
func (m *Matcher) Match(s string) bool {
	switch m.kind {
	case selector.KindNFA:
		return m.nfaSim.Match(s)
	case selector.KindMinDFA:
		return m.dfaSim.Match(s)
	case selector.KindLazyDFA:
		return m.lazySim.Match(s)
	case selector.KindLiteralKMP, selector.KindLiteralBM:
		text := []rune(s)
		if m.ignoreCase {
			text = foldRunes(text)
		}
		return runesEqual(text, m.literal)
	case selector.KindAhoCorasick:
		text := []rune(s)
		if m.ignoreCase {
			text = foldRunes(text)
		}
		for _, p := range m.acPatterns {
			if runesEqual(text, p) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// FindAll returns every non-overlapping leftmost-longest match in line
// (spec 4.C/4.L's ordering guarantee, carried through every backend).
func (m *Matcher) FindAll(line []rune) []Match {
	switch m.kind {
	case selector.KindNFA:
		return m.nfaSim.FindAllMatches(line)
	case selector.KindMinDFA:
		return m.dfaSim.FindAllMatches(line)
	case selector.KindLazyDFA:
		return m.lazySim.FindAllMatches(line)
	case selector.KindLiteralKMP:
		if len(m.literal) == 0 {
			return emptyMatchesEveryPosition(line)
		}
		text := line
		if m.ignoreCase {
			text = foldRunes(line)
		}
		starts := nonOverlapping(m.kmp.Search(text), len(m.literal))
		return literalMatches(line, starts, len(m.literal))
	case selector.KindLiteralBM:
		if len(m.literal) == 0 {
			return emptyMatchesEveryPosition(line)
		}
		text := line
		if m.ignoreCase {
			text = foldRunes(line)
		}
		starts := nonOverlapping(m.bm.Search(text), len(m.literal))
		return literalMatches(line, starts, len(m.literal))
	case selector.KindAhoCorasick:
		text := line
		if m.ignoreCase {
			text = foldRunes(line)
		}
		hits := m.ac.Search(text)
		return acFindAll(line, hits, m.acPatterns)
	default:
		return nil
	}
}

func foldRunes(in []rune) []rune {
	out := make([]rune, len(in))
	for i, r := range in {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		out[i] = r
	}
	return out
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// nonOverlapping filters a scanner's (possibly self-overlapping, per
// KMP.Search's documented behavior) ascending start offsets down to a
// strictly left-to-right, non-overlapping subsequence: the earliest start
// is kept, the next kept start must be >= the previous one's end.
func nonOverlapping(starts []int, patLen int) []int {
	var out []int
	lastEnd := -1
	for _, s := range starts {
		if s < lastEnd {
			continue
		}
		out = append(out, s)
		lastEnd = s + patLen
	}
	return out
}

// literalMatches builds Match values for a fixed-length literal pattern at
// each of starts, slicing matched text from the original (not case-folded)
// line so the reported text always preserves the input's real casing.
func literalMatches(line []rune, starts []int, patLen int) []Match {
	if len(starts) == 0 {
		return nil
	}
	out := make([]Match, len(starts))
	for i, s := range starts {
		out[i] = Match{Start: s, End: s + patLen, Text: string(line[s : s+patLen])}
	}
	return out
}

// emptyMatchesEveryPosition handles the degenerate zero-length literal
// pattern (an empty group with nothing else in it): it matches the empty
// string at every position, following the same "one empty match per
// distinct start position" contract as the NFA/DFA simulators.
func emptyMatchesEveryPosition(line []rune) []Match {
	matches := make([]Match, 0, len(line)+1)
	for p := 0; p <= len(line); p++ {
		matches = append(matches, Match{Start: p, End: p, Text: ""})
	}
	return matches
}

// acFindAll selects one match per anchor position from an Aho-Corasick
// search's hits, preferring the longest alternative when several patterns
// match at the same start (leftmost-longest, spec 4.C/4.L), then advances
// past each selected match exactly as the NFA/DFA simulators do.
func acFindAll(line []rune, hits []scan.Hit, patterns [][]rune) []Match {
	bestEnd := make(map[int]int, len(hits))
	for _, h := range hits {
		patLen := len(patterns[h.Pattern])
		start := h.End - patLen
		if cur, ok := bestEnd[start]; !ok || h.End > cur {
			bestEnd[start] = h.End
		}
	}

	var matches []Match
	p := 0
	for p <= len(line) {
		end, ok := bestEnd[p]
		if !ok {
			p++
			continue
		}
		matches = append(matches, Match{Start: p, End: end, Text: string(line[p:end])})
		if end > p {
			p = end
		} else {
			p++
		}
	}
	return matches
}
