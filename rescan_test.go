package rescan

import (
	"testing"
)

// TestScenarioS1 grounds on spec 8's S1 scenario.
func TestScenarioS1(t *testing.T) {
	m := MustCompile("(.*)(abc)(.*)", DefaultOptions())
	if !m.Match("jdioaabczd") {
		t.Fatal("expected (.*)(abc)(.*) to match jdioaabczd")
	}
	matches := m.FindAll("jdioaabczd")
	found := false
	for _, mt := range matches {
		if contains(mt.Text, "abc") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected at least one match containing \"abc\", got %+v", matches)
	}
}

// TestScenarioS2 grounds on spec 8's S2 scenario.
func TestScenarioS2(t *testing.T) {
	m := MustCompile("(a|b)*abb", DefaultOptions())
	cases := []struct {
		input string
		want  bool
	}{
		{"abb", true},
		{"aabb", true},
		{"babb", true},
		{"ab", false},
		{"", false},
	}
	for _, c := range cases {
		if got := m.Match(c.input); got != c.want {
			t.Errorf("Match(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

// TestScenarioS3 grounds on spec 8's S3 scenario under this engine's
// documented resolution of the greedy-'.*' tension (see
// nfa.TestFindAllGreedyExtendsToLastOccurrence and DESIGN.md): a(.*)b's
// greedy wildcard extends to the last 'b' in the line rather than stopping
// at the first, so findAll yields one match spanning the whole line.
func TestScenarioS3(t *testing.T) {
	m := MustCompile("a(.*)b", DefaultOptions())
	matches := m.FindAll("ab axxxb")
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1: %+v", len(matches), matches)
	}
	if matches[0].Start != 0 || matches[0].End != 8 {
		t.Errorf("match = %+v, want [0,8)", matches[0])
	}
}

// TestScenarioS4 grounds on spec 8's S4 scenario.
func TestScenarioS4(t *testing.T) {
	m := MustCompile("cat|dog|bird", DefaultOptions())
	if m.Analysis().Kind.String() != "aho-corasick" {
		t.Fatalf("Kind = %v, want aho-corasick", m.Analysis().Kind)
	}
	matches := m.FindAll("I have a cat and a dog but no bird")
	if len(matches) != 3 {
		t.Fatalf("got %d matches, want 3: %+v", len(matches), matches)
	}
}

// TestScenarioS5 grounds on spec 8's S5 scenario.
func TestScenarioS5(t *testing.T) {
	m := MustCompile("test", DefaultOptions())
	if m.Analysis().Kind.String() != "literal-kmp" {
		t.Fatalf("Kind = %v, want literal-kmp", m.Analysis().Kind)
	}
	matches := m.FindAll("this is a test line")
	want := Match{Start: 10, End: 14, Text: "test"}
	if len(matches) != 1 || matches[0] != want {
		t.Fatalf("matches = %+v, want [%+v]", matches, want)
	}
}

// TestScenarioS6 grounds on spec 8's S6 scenario.
func TestScenarioS6(t *testing.T) {
	m := MustCompile("a*", DefaultOptions())
	if !m.Match("") {
		t.Error("expected a* to match the empty string")
	}
	matches := m.FindAll("")
	if len(matches) != 1 || matches[0].Start != 0 || matches[0].End != 0 {
		t.Fatalf("matches = %+v, want a single empty match at 0", matches)
	}
}

// TestScenarioS7Subset grounds on spec 8's S7 scenario: lazy-dfa and
// min-dfa must agree on match and findAll for a representative subset of
// the full pattern/input Cartesian product.
func TestScenarioS7Subset(t *testing.T) {
	patterns := []string{"a", "abc", "a|b", "a*", "a.c", ".*", "(a|b)*", "(a|b)*abb", "(.*)abc", "a(.*)b", "(.*)(abc)(.*)"}
	inputs := []string{"", "a", "b", "abc", "ab", "abb", "aabb", "a.c", "xxabcxx", "aXb"}

	for _, p := range patterns {
		lazyOpts := DefaultOptions()
		lazyOpts.Matcher = "lazy-dfa"
		lazyM, err := Compile(p, lazyOpts)
		if err != nil {
			t.Fatalf("compile %q (lazy-dfa): %v", p, err)
		}

		dfaOpts := DefaultOptions()
		dfaOpts.Matcher = "min-dfa"
		dfaM, err := Compile(p, dfaOpts)
		if err != nil {
			t.Fatalf("compile %q (min-dfa): %v", p, err)
		}

		for _, in := range inputs {
			if lazyM.Match(in) != dfaM.Match(in) {
				t.Errorf("pattern %q input %q: lazy-dfa Match=%v, min-dfa Match=%v",
					p, in, lazyM.Match(in), dfaM.Match(in))
			}
			lazyMatches := lazyM.FindAll(in)
			dfaMatches := dfaM.FindAll(in)
			if !matchesEqual(lazyMatches, dfaMatches) {
				t.Errorf("pattern %q input %q: lazy-dfa FindAll=%+v, min-dfa FindAll=%+v",
					p, in, lazyMatches, dfaMatches)
			}
		}
	}
}

func matchesEqual(a, b []Match) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}

func TestAnalyzeIsPureIntrospection(t *testing.T) {
	a, err := Analyze("cat|dog", -1)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if a.Kind.String() != "aho-corasick" {
		t.Fatalf("Kind = %v, want aho-corasick", a.Kind)
	}
}

func TestAnalyzeSurfacesParseError(t *testing.T) {
	if _, err := Analyze("a|", -1); err == nil {
		t.Fatal("expected a parse error")
	}
}
