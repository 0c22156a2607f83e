package nfa

// Match records one match against a line: the half-open range [Start, End)
// of rune indices into the line, and the matched text itself. Start == End
// denotes a legitimate empty match at that offset.
//
// Positions are rune indices, not byte offsets: the engine's alphabet is
// Unicode codepoints, so "advance by one" means "advance by one codepoint"
// throughout the simulators.
type Match struct {
	Start, End int
	Text       string
}

// Simulator runs greedy longest-match scans over an NFA by repeated
// epsilon-closure, as described in spec 4.C. It holds no state between
// calls and is safe for concurrent use by multiple goroutines sharing one
// immutable NFA.
type Simulator struct {
	nfa *NFA
}

// NewSimulator returns a Simulator over nfa.
func NewSimulator(n *NFA) *Simulator {
	return &Simulator{nfa: n}
}

// closure computes epsilonClosure(nfa, states) by delegating to the
// package-level Closure helper shared with the DFA builders.
func (s *Simulator) closure(start []StateID) []StateID {
	return Closure(s.nfa, start)
}

func (s *Simulator) hasAccept(states []StateID) bool {
	for _, id := range states {
		if s.nfa.Accepts(id) {
			return true
		}
	}
	return false
}

// step advances states by one input rune c, following KindChar edges that
// match c exactly and KindAny edges unconditionally, then closes the
// result under epsilon transitions.
func (s *Simulator) step(states []StateID, c rune) []StateID {
	var next []StateID
	for _, id := range states {
		st := s.nfa.State(id)
		switch st.Kind {
		case KindChar:
			if st.Char == c {
				next = append(next, st.Next)
			}
		case KindAny:
			next = append(next, st.Next)
		}
	}
	if len(next) == 0 {
		return nil
	}
	return s.closure(next)
}

// MatchAt runs a greedy longest-match scan anchored at rune offset p in
// line (given as runes). It returns the match and true if the pattern
// matches (possibly the empty string) starting exactly at p, or
// (Match{}, false) if no match starts there.
func (s *Simulator) MatchAt(line []rune, p int) (Match, bool) {
	states := s.closure([]StateID{s.nfa.Start})
	lastAccept := -1
	if s.hasAccept(states) {
		lastAccept = p
	}

	for i := p; i < len(line) && len(states) > 0; i++ {
		states = s.step(states, line[i])
		if len(states) == 0 {
			break
		}
		if s.hasAccept(states) {
			lastAccept = i + 1
		}
	}

	if lastAccept < 0 {
		return Match{}, false
	}
	return Match{Start: p, End: lastAccept, Text: string(line[p:lastAccept])}, true
}

// FindAllMatches scans every start position in line, collecting
// non-overlapping leftmost-longest matches per spec 4.C / 4.L.
//
// On a non-empty match at p, the scan resumes at match.End. On an empty
// match (or no match) at p, the scan advances by exactly one rune, per the
// "one empty match per distinct start position" contract from spec 9.
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

// Match reports whether the NFA accepts the whole of s (full-string
// match), with no anchoring options: the entire input must be consumed and
// the final closure must intersect the accept set.
func (s *Simulator) Match(str string) bool {
	line := []rune(str)
	states := s.closure([]StateID{s.nfa.Start})
	for _, c := range line {
		if len(states) == 0 {
			return false
		}
		states = s.step(states, c)
	}
	return s.hasAccept(states)
}
