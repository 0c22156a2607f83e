package nfa

import (
	"testing"

	"github.com/coregx/rescan/ast"
)

func mustParse(t *testing.T, pattern string) ast.Node {
	t.Helper()
	n, err := ast.Parse(pattern)
	if err != nil {
		t.Fatalf("ast.Parse(%q): %v", pattern, err)
	}
	return n
}

func TestBuildSingleAcceptAndStart(t *testing.T) {
	n := mustParse(t, "a|b*c")
	automaton, err := Build(n)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if automaton.States[automaton.Accept].Kind != KindMatch {
		t.Fatalf("accept state kind = %v, want KindMatch", automaton.States[automaton.Accept].Kind)
	}
	if int(automaton.Start) >= len(automaton.States) {
		t.Fatalf("start state %d out of range", automaton.Start)
	}
}

func TestBuildEmptyGroupIsEpsilon(t *testing.T) {
	n := mustParse(t, "()")
	automaton, err := Build(n)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	start := automaton.States[automaton.Start]
	if start.Kind != KindEpsilon {
		t.Fatalf("empty group start kind = %v, want KindEpsilon", start.Kind)
	}
}

func TestBuildCharTransition(t *testing.T) {
	n := mustParse(t, "a")
	automaton, err := Build(n)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	start := automaton.States[automaton.Start]
	if start.Kind != KindChar || start.Char != 'a' {
		t.Fatalf("start = %v, want Char('a')", start)
	}
}

func TestBuildDotTransition(t *testing.T) {
	n := mustParse(t, ".")
	automaton, err := Build(n)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	start := automaton.States[automaton.Start]
	if start.Kind != KindAny {
		t.Fatalf("start = %v, want Any", start)
	}
}
