package dfa

import "github.com/coregx/rescan/nfa"

// Match is an alias for nfa.Match so DFA-based and NFA-based matchers share
// one result type across the engine.
type Match = nfa.Match

// Simulator runs greedy longest-match scans over a DFA. It holds no
// mutable state and is safe for concurrent use across goroutines sharing
// one immutable DFA.
type Simulator struct {
	dfa *DFA
}

// NewSimulator returns a Simulator over d.
func NewSimulator(d *DFA) *Simulator {
	return &Simulator{dfa: d}
}

// MatchAt runs a deterministic greedy longest-match scan anchored at rune
// offset p in line, analogous to nfa.Simulator.MatchAt (spec 4.F). At each
// step it follows the specific-codepoint edge when present and falls back
// to the ANYCHAR edge otherwise (see DFA.Step).
func (s *Simulator) MatchAt(line []rune, p int) (Match, bool) {
	state := s.dfa.Start
	lastAccept := -1
	if s.dfa.Accepts(state) {
		lastAccept = p
	}

	for i := p; i < len(line); i++ {
		next, ok := s.dfa.Step(state, line[i])
		if !ok {
			break
		}
		state = next
		if s.dfa.Accepts(state) {
			lastAccept = i + 1
		}
	}

	if lastAccept < 0 {
		return Match{}, false
	}
	return Match{Start: p, End: lastAccept, Text: string(line[p:lastAccept])}, true
}

// FindAllMatches scans every start position in line for non-overlapping
// leftmost-longest matches, using the same empty-match advancement
// contract as nfa.Simulator.FindAllMatches.
func (s *Simulator) FindAllMatches(line []rune) []Match {
	var matches []Match
	p := 0
	for p <= len(line) {
		m, ok := s.MatchAt(line, p)
		if !ok {
			p++
			continue
		}
		matches = append(matches, m)
		if m.End > p {
			p = m.End
		} else {
			p++
		}
	}
	return matches
}

// Match reports whether the DFA accepts the whole of str.
func (s *Simulator) Match(str string) bool {
	line := []rune(str)
	state := s.dfa.Start
	for _, c := range line {
		next, ok := s.dfa.Step(state, c)
		if !ok {
			return false
		}
		state = next
	}
	return s.dfa.Accepts(state)
}
