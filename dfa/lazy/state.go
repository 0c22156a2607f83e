package lazy

import "github.com/coregx/rescan/nfa"

// StateID identifies a state within a single DFA's Cache. IDs are assigned
// in discovery order: state 0 is the epsilon-closure of the NFA's start
// state until a bounded cache clears, after which IDs restart from 0 with
// whichever state is created next.
type StateID uint32

// InvalidState marks the absence of a memoized transition.
const InvalidState StateID = 0xFFFFFFFF

// StartState is the fixed ID of the initial state, created on first use.
const StartState StateID = 0

// State is one lazily-discovered DFA state: the canonical NFA subset it
// represents, whether that subset is accepting, and whatever transitions
// have been memoized for it so far. Trans grows monotonically - entries
// are only ever added, never removed or overwritten (spec 4.G: "monotonic
// growth; never evicts").
type State struct {
	id         StateID
	generation int // cache generation this State's id/trans entries belong to
	nfaStates  []nfa.StateID
	accept     bool
	trans      map[rune]StateID
}

func newState(id StateID, generation int, nfaStates []nfa.StateID, accept bool) *State {
	return &State{
		id:         id,
		generation: generation,
		nfaStates:  nfaStates,
		accept:     accept,
		trans:      make(map[rune]StateID, 4),
	}
}

// ID returns the state's identifier within its cache.
func (s *State) ID() StateID { return s.id }

// Accept reports whether this state is accepting.
func (s *State) Accept() bool { return s.accept }

// NFAStates returns the canonical NFA subset this state represents.
func (s *State) NFAStates() []nfa.StateID { return s.nfaStates }

// Transition returns the memoized target for codepoint c, if any.
func (s *State) Transition(c rune) (StateID, bool) {
	id, ok := s.trans[c]
	return id, ok
}
