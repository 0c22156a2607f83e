// Package dfa implements subset construction (NFA -> DFA), Hopcroft-style
// partition-refinement minimization, and a deterministic greedy
// longest-match simulator over the resulting automaton.
package dfa

import "fmt"

// StateID uniquely identifies a DFA state. State 0 is always Start.
type StateID uint32

// InvalidState marks the absence of a transition.
const InvalidState StateID = 0xFFFFFFFF

// AnyChar is the sentinel label used for a state's wildcard fallback
// transition: consulted only when no transition exists for the concrete
// codepoint being scanned. It is chosen outside the Unicode codepoint range
// so it can never collide with a literal character label.
const AnyChar rune = -1

// State is one DFA state: a deterministic map from label to target state,
// where label is either a literal codepoint or the AnyChar fallback.
type State struct {
	Accept bool
	Trans  map[rune]StateID
}

// DFA is an immutable deterministic automaton built by subset construction
// (see Build) and optionally minimized (see Minimize). Start is always 0.
type DFA struct {
	States []State
	Start  StateID
}

// NumStates returns the number of states in the automaton.
func (d *DFA) NumStates() int { return len(d.States) }

// Step returns the target of the transition from state on codepoint c,
// falling back to the AnyChar wildcard entry when no specific edge exists.
// The second return value is false when neither transition is present.
func (d *DFA) Step(state StateID, c rune) (StateID, bool) {
	s := &d.States[state]
	if next, ok := s.Trans[c]; ok {
		return next, true
	}
	if next, ok := s.Trans[AnyChar]; ok {
		return next, true
	}
	return InvalidState, false
}

// Accepts reports whether state is an accepting state.
func (d *DFA) Accepts(state StateID) bool {
	return d.States[state].Accept
}

func (d *DFA) String() string {
	return fmt.Sprintf("DFA{states=%d, start=%d}", len(d.States), d.Start)
}
