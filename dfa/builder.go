package dfa

import (
	"strconv"
	"strings"

	"github.com/coregx/rescan/nfa"
)

// MaxStates bounds how many DFA states subset construction will discover
// before giving up. Patterns in this engine's supported grammar (no
// counted repetition, no character classes) do not come close to this in
// practice; it exists purely as a guard against pathological input.
const MaxStates = 1 << 16

// Builder performs subset construction over an NFA, discovering reachable
// DFA states via a worklist, per spec 4.D.
type Builder struct {
	nfa *nfa.NFA
}

// NewBuilder returns a Builder over n.
func NewBuilder(n *nfa.NFA) *Builder {
	return &Builder{nfa: n}
}

// subsetKey canonicalizes a sorted NFA state-ID slice into a map key.
// String keys are simpler than a custom hash and fast enough here -
// subsets for this grammar stay small - but a dense integer encoding would
// be the first place to optimize if that ever changed (see spec 9's note
// on key canonicalization).
func subsetKey(ids []nfa.StateID) string {
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(id), 10))
	}
	return b.String()
}

// Build runs subset construction and returns the resulting DFA. Every
// state is reachable from Start by construction (the worklist only visits
// subsets discovered via a transition from an already-registered state).
func Build(n *nfa.NFA) (*DFA, error) {
	b := NewBuilder(n)
	return b.Build()
}

// Build runs subset construction over b's NFA.
func (b *Builder) Build() (*DFA, error) {
	d := &DFA{Start: 0}
	index := make(map[string]StateID)
	var worklist []StateID
	var subsets [][]nfa.StateID

	register := func(subset []nfa.StateID) StateID {
		key := subsetKey(subset)
		if id, ok := index[key]; ok {
			return id
		}
		id := StateID(len(d.States))
		index[key] = id
		subsets = append(subsets, subset)
		d.States = append(d.States, State{
			Accept: containsAccept(b.nfa, subset),
			Trans:  make(map[rune]StateID),
		})
		worklist = append(worklist, id)
		return id
	}

	start := nfa.Closure(b.nfa, []nfa.StateID{b.nfa.Start})
	register(start)

	for len(worklist) > 0 {
		if len(d.States) > MaxStates {
			return nil, &BuildError{Message: "DFA state limit exceeded"}
		}
		id := worklist[0]
		worklist = worklist[1:]
		subset := subsets[id]

		// Step 2: one transition per concrete label that appears on a
		// KindChar edge in this subset, folding in ANYCHAR targets since a
		// wildcard subsumes any concrete character (spec 4.D step 2 - the
		// fix for patterns like (.*)(abc)(.*)).
		anyTargets := nfa.AnyTargets(b.nfa, subset)
		for _, c := range nfa.CharLabelsIn(b.nfa, subset) {
			raw := nfa.CharTargets(b.nfa, subset, c)
			raw = append(raw, anyTargets...)
			target := nfa.Closure(b.nfa, raw)
			d.States[id].Trans[c] = register(target)
		}

		// The ANYCHAR fallback entry handles every codepoint not covered
		// above: any concrete character not matched by a literal edge in
		// this subset still needs to reach wherever the wildcard edges go.
		if len(anyTargets) > 0 {
			target := nfa.Closure(b.nfa, anyTargets)
			d.States[id].Trans[AnyChar] = register(target)
		}
	}

	return d, nil
}

func containsAccept(n *nfa.NFA, subset []nfa.StateID) bool {
	for _, id := range subset {
		if n.Accepts(id) {
			return true
		}
	}
	return false
}
