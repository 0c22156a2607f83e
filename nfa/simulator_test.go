package nfa

import (
	"reflect"
	"testing"
)

func buildSim(t *testing.T, pattern string) *Simulator {
	t.Helper()
	n := mustParse(t, pattern)
	automaton, err := Build(n)
	if err != nil {
		t.Fatalf("Build(%q): %v", pattern, err)
	}
	return NewSimulator(automaton)
}

func TestMatchFullString(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"(a|b)*abb", "abb", true},
		{"(a|b)*abb", "aabb", true},
		{"(a|b)*abb", "babb", true},
		{"(a|b)*abb", "ab", false},
		{"(a|b)*abb", "", false},
		{"a*", "", true},
		{"a*", "aaaa", true},
		{"a*", "aaab", false},
		{".", "x", true},
		{".", "", false},
	}
	for _, tt := range tests {
		sim := buildSim(t, tt.pattern)
		got := sim.Match(tt.input)
		if got != tt.want {
			t.Errorf("Match(%q, %q) = %v, want %v", tt.pattern, tt.input, got, tt.want)
		}
	}
}

func TestMatchAtScenarioS1(t *testing.T) {
	sim := buildSim(t, "(.*)(abc)(.*)")
	if !sim.Match("jdioaabczd") {
		t.Fatalf("full match should be true for (.*)(abc)(.*) on jdioaabczd")
	}
	m, ok := sim.MatchAt([]rune("jdioaabczd"), 0)
	if !ok || !containsSubstring(m.Text, "abc") {
		t.Fatalf("MatchAt(0) = %v, %v; want a match containing \"abc\"", m, ok)
	}
}

func containsSubstring(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}

// TestFindAllGreedyExtendsToLastOccurrence documents a deliberate resolution
// of a tension in spec.md: §9 states greedy '.*' means "longest match
// starting at the current anchor", explicitly rejecting the alternative
// "leftmost match of .* that lets the rest succeed" (which would require
// backtracking and is out of scope). Taken literally, a(.*)b over
// "ab axxxb" extends all the way to the final 'b' in the string, producing
// one match spanning the whole line rather than the two short matches the
// illustrative S3 table suggests - that table's outcome requires the
// backtracking semantics §9 explicitly disclaims. This engine follows the
// documented algorithm (§4.C: keep overwriting lastAccept until the state
// set empties), so FindAll yields a single longest match here. See
// DESIGN.md for the full writeup.
func TestFindAllGreedyExtendsToLastOccurrence(t *testing.T) {
	sim := buildSim(t, "a(.*)b")
	line := []rune("ab axxxb")
	matches := sim.FindAllMatches(line)

	want := []Match{
		{Start: 0, End: 8, Text: "ab axxxb"},
	}
	if !reflect.DeepEqual(matches, want) {
		t.Fatalf("FindAllMatches = %#v, want %#v", matches, want)
	}
}

// TestFindAllTwoSeparateLiterals exercises the same non-overlapping,
// strictly-increasing-start contract on a pattern with no greedy-dot
// ambiguity: two disjoint literal matches.
func TestFindAllTwoSeparateLiterals(t *testing.T) {
	sim := buildSim(t, "cat")
	line := []rune("a cat and another cat")
	matches := sim.FindAllMatches(line)
	if len(matches) != 2 {
		t.Fatalf("len(matches) = %d, want 2; got %#v", len(matches), matches)
	}
	for _, m := range matches {
		if m.Text != "cat" {
			t.Errorf("match text = %q, want \"cat\"", m.Text)
		}
	}
}

func TestFindAllEmptyMatchAdvances(t *testing.T) {
	sim := buildSim(t, "a*")
	line := []rune("bbb")
	matches := sim.FindAllMatches(line)
	// a* matches empty at every position in a string with no 'a's.
	if len(matches) != 4 {
		t.Fatalf("len(matches) = %d, want 4 (one per position incl. end)", len(matches))
	}
	for i, m := range matches {
		if m.Start != i || m.End != i {
			t.Errorf("matches[%d] = %v, want empty match at %d", i, m, i)
		}
	}
}

func TestFindAllOrderingAndNonOverlap(t *testing.T) {
	sim := buildSim(t, "cat|dog|bird")
	line := []rune("I have a cat and a dog but no bird")
	matches := sim.FindAllMatches(line)
	if len(matches) != 3 {
		t.Fatalf("len(matches) = %d, want 3; got %#v", len(matches), matches)
	}
	prevEnd := -1
	for _, m := range matches {
		if m.Start < prevEnd {
			t.Errorf("matches not ordered/non-overlapping: %#v", matches)
		}
		prevEnd = m.End
	}
}
