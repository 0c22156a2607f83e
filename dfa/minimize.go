package dfa

import (
	"sort"
	"strconv"
	"strings"
)

// classID identifies a partition class during refinement.
type classID int

// Minimize returns a DFA equivalent to d with the minimum number of states,
// via Hopcroft-style partition refinement (spec 4.E).
//
// The initial partition is {accepts, non-accepts} (empty classes dropped).
// Each round buckets every class's members by their transition signature
// under the current partition - (class(delta(s, x)) for every label x in
// the alphabet, with a sentinel for a missing transition) - and splits any
// class whose members disagree. This terminates because each round either
// leaves the partition unchanged (fixed point) or strictly increases the
// number of classes, which is bounded by len(d.States).
func Minimize(d *DFA) *DFA {
	alphabet := collectAlphabet(d)

	classOf := make([]classID, len(d.States))
	var accept, reject []StateID
	for id, st := range d.States {
		if st.Accept {
			accept = append(accept, StateID(id))
		} else {
			reject = append(reject, StateID(id))
		}
	}

	classes := [][]StateID{}
	if len(accept) > 0 {
		classes = append(classes, accept)
	}
	if len(reject) > 0 {
		classes = append(classes, reject)
	}
	assignClassIDs(classOf, classes)

	for {
		newClasses := [][]StateID{}
		changed := false

		for _, class := range classes {
			buckets := make(map[string][]StateID)
			var bucketOrder []string
			for _, s := range class {
				sig := signature(d, s, alphabet, classOf)
				if _, ok := buckets[sig]; !ok {
					bucketOrder = append(bucketOrder, sig)
				}
				buckets[sig] = append(buckets[sig], s)
			}
			if len(bucketOrder) > 1 {
				changed = true
			}
			sort.Strings(bucketOrder)
			for _, sig := range bucketOrder {
				newClasses = append(newClasses, buckets[sig])
			}
		}

		classes = newClasses
		assignClassIDs(classOf, classes)

		if !changed {
			break
		}
	}

	return buildFromClasses(d, classes, classOf)
}

func assignClassIDs(classOf []classID, classes [][]StateID) {
	for cid, class := range classes {
		for _, s := range class {
			classOf[s] = classID(cid)
		}
	}
}

// signature builds a per-state fingerprint of "which class does each
// alphabet label lead to", using -1 as the sentinel for a missing
// transition. Two states with identical signatures are, so far as this
// round's partition can tell, behaviorally indistinguishable.
func signature(d *DFA, s StateID, alphabet []rune, classOf []classID) string {
	var b strings.Builder
	for _, label := range alphabet {
		next, ok := d.Step(s, label)
		if !ok {
			b.WriteString("-1")
		} else {
			b.WriteString(strconv.Itoa(int(classOf[next])))
		}
		b.WriteByte('|')
	}
	return b.String()
}

// collectAlphabet gathers every label (including the ANYCHAR sentinel)
// that appears as a transition key anywhere in d, for use as the fixed
// alphabet partition refinement tests against.
func collectAlphabet(d *DFA) []rune {
	seen := make(map[rune]bool)
	for _, st := range d.States {
		for label := range st.Trans {
			seen[label] = true
		}
	}
	out := make([]rune, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// buildFromClasses lifts the refined partition into a new DFA: one state
// per final class, transitions taken from the first representative of
// each source class, start = class(d.Start), and accept propagated from
// any original accept state in the class.
func buildFromClasses(d *DFA, classes [][]StateID, classOf []classID) *DFA {
	out := &DFA{
		States: make([]State, len(classes)),
		Start:  StateID(classOf[d.Start]),
	}

	for cid, class := range classes {
		rep := class[0]
		trans := make(map[rune]StateID, len(d.States[rep].Trans))
		for label, target := range d.States[rep].Trans {
			trans[label] = StateID(classOf[target])
		}
		accept := false
		for _, s := range class {
			if d.Accepts(s) {
				accept = true
				break
			}
		}
		out.States[cid] = State{Accept: accept, Trans: trans}
	}

	return out
}
