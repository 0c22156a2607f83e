package nfa

import "sort"

// Closure computes the epsilon-closure of start: the smallest superset of
// start closed under KindEpsilon and KindSplit transitions. The result is
// sorted and deduplicated so it can serve directly as a canonical subset
// key for subset construction (spec 4.D/4.G use "sorted/canonicalized list
// of NFA state IDs" for exactly this purpose).
func Closure(n *NFA, start []StateID) []StateID {
	visited := make(map[StateID]bool, len(start)*2)
	stack := append([]StateID(nil), start...)
	var out []StateID

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			continue
		}
		visited[id] = true
		out = append(out, id)

		st := n.State(id)
		switch st.Kind {
		case KindEpsilon:
			if !visited[st.Next] {
				stack = append(stack, st.Next)
			}
		case KindSplit:
			if !visited[st.Out1] {
				stack = append(stack, st.Out1)
			}
			if !visited[st.Out2] {
				stack = append(stack, st.Out2)
			}
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// CharTargets returns the (unclosed) targets of every KindChar edge in
// states that matches codepoint c exactly.
func CharTargets(n *NFA, states []StateID, c rune) []StateID {
	var out []StateID
	for _, id := range states {
		st := n.State(id)
		if st.Kind == KindChar && st.Char == c {
			out = append(out, st.Next)
		}
	}
	return out
}

// AnyTargets returns the (unclosed) targets of every KindAny edge in
// states. These are the edges a wildcard '.' compiles to; per spec 4.D/4.I
// they subsume any concrete codepoint, which is why Move folds them into
// every concrete-character transition as well as the ANYCHAR fallback.
func AnyTargets(n *NFA, states []StateID) []StateID {
	var out []StateID
	for _, id := range states {
		st := n.State(id)
		if st.Kind == KindAny {
			out = append(out, st.Next)
		}
	}
	return out
}

// HasAny reports whether any state in states is a KindAny state.
func HasAny(n *NFA, states []StateID) bool {
	for _, id := range states {
		if n.State(id).Kind == KindAny {
			return true
		}
	}
	return false
}

// Alphabet returns the sorted, deduplicated set of concrete codepoints that
// appear on some KindChar edge anywhere in the automaton. Subset
// construction does not call it: dfa.Builder enumerates labels per subset
// with CharLabelsIn, and codepoints outside those labels are handled
// solely by the ANYCHAR fallback (if present).
func Alphabet(n *NFA) []rune {
	seen := make(map[rune]bool)
	for _, st := range n.States {
		if st.Kind == KindChar {
			seen[st.Char] = true
		}
	}
	out := make([]rune, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// CharLabelsIn returns the sorted, deduplicated set of concrete codepoints
// that label a KindChar edge from a member of states. Used by subset
// construction to find, for a specific subset, which labels need their own
// DFA transition rather than falling through to the ANYCHAR entry.
func CharLabelsIn(n *NFA, states []StateID) []rune {
	seen := make(map[rune]bool)
	for _, id := range states {
		st := n.State(id)
		if st.Kind == KindChar {
			seen[st.Char] = true
		}
	}
	out := make([]rune, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
