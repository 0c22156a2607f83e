package dfa

import (
	"testing"

	"github.com/coregx/rescan/ast"
	"github.com/coregx/rescan/nfa"
)

func buildDFA(t *testing.T, pattern string) (*nfa.NFA, *DFA) {
	t.Helper()
	n, err := ast.Parse(pattern)
	if err != nil {
		t.Fatalf("ast.Parse(%q): %v", pattern, err)
	}
	automaton, err := nfa.Build(n)
	if err != nil {
		t.Fatalf("nfa.Build(%q): %v", pattern, err)
	}
	d, err := Build(automaton)
	if err != nil {
		t.Fatalf("dfa.Build(%q): %v", pattern, err)
	}
	return automaton, d
}

func TestSubsetEquivalence(t *testing.T) {
	patterns := []string{"a", "abc", "a|b", "a*", "a.c", ".*", "(a|b)*", "(a|b)*abb", "(.*)abc", "a(.*)b", "(.*)(abc)(.*)", "cat|dog|bird"}
	inputs := []string{"", "a", "b", "c", "ab", "abc", "aabb", "abb", "babb", "xabcx", "cat", "dog", "bird", "catdogbird"}

	for _, p := range patterns {
		automaton, d := buildDFA(t, p)
		nsim := nfa.NewSimulator(automaton)
		dsim := NewSimulator(d)
		for _, in := range inputs {
			got := dsim.Match(in)
			want := nsim.Match(in)
			if got != want {
				t.Errorf("pattern %q, input %q: dfa.Match=%v nfa.Match=%v", p, in, got, want)
			}
		}
	}
}

func TestDFAWildcardSubsumption(t *testing.T) {
	// Regression case from spec 4.D/4.I: without folding ANYCHAR targets
	// into concrete-character transitions, a pattern like (.*)(abc)(.*)
	// would fail to recognize "abc" immediately following the wildcard
	// prefix's own concrete-character edges.
	_, d := buildDFA(t, "(.*)(abc)(.*)")
	sim := NewSimulator(d)
	if !sim.Match("jdioaabczd") {
		t.Fatal("(.*)(abc)(.*) should match jdioaabczd")
	}
}

func TestMinimizationEquivalence(t *testing.T) {
	patterns := []string{"a", "a|b", "(a|b)*abb", "a.c", "a*", "cat|dog|bird"}
	inputs := []string{"", "a", "b", "abb", "aabb", "cat", "xyz", "abc"}

	for _, p := range patterns {
		_, d := buildDFA(t, p)
		min := Minimize(d)

		if len(min.States) > len(d.States) {
			t.Errorf("pattern %q: minimized has more states (%d > %d)", p, len(min.States), len(d.States))
		}

		dsim := NewSimulator(d)
		msim := NewSimulator(min)
		for _, in := range inputs {
			if got, want := msim.Match(in), dsim.Match(in); got != want {
				t.Errorf("pattern %q, input %q: min.Match=%v dfa.Match=%v", p, in, got, want)
			}
		}
	}
}

func TestFindAllNonOverlapping(t *testing.T) {
	_, d := buildDFA(t, "cat")
	sim := NewSimulator(d)
	matches := sim.FindAllMatches([]rune("a cat and another cat"))
	if len(matches) != 2 {
		t.Fatalf("len(matches) = %d, want 2", len(matches))
	}
	prevEnd := -1
	for _, m := range matches {
		if m.Start < prevEnd {
			t.Errorf("overlapping matches: %#v", matches)
		}
		prevEnd = m.End
	}
}
