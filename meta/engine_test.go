package meta

import (
	"errors"
	"strings"
	"testing"

	"github.com/coregx/rescan/selector"
)

func mustCompile(t *testing.T, pattern string, cfg Config) *Engine {
	t.Helper()
	e, err := Compile(pattern, cfg)
	if err != nil {
		t.Fatalf("Compile(%q): %v", pattern, err)
	}
	return e
}

func TestCompileSurfacesParseError(t *testing.T) {
	_, err := Compile("a|", DefaultConfig())
	if err == nil {
		t.Fatal("expected a parse error")
	}
	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("error is not a *CompileError: %v", err)
	}
	if ce.Kind != ErrParse {
		t.Errorf("Kind = %v, want ErrParse", ce.Kind)
	}
}

func TestCompilePicksLiteralKMPForShortLiteral(t *testing.T) {
	e := mustCompile(t, "test", DefaultConfig())
	if e.Analysis().Kind != selector.KindLiteralKMP {
		t.Fatalf("Kind = %v, want literal-kmp", e.Analysis().Kind)
	}
}

func TestCompilePicksAhoCorasickForAlternationOfLiterals(t *testing.T) {
	e := mustCompile(t, "cat|dog|bird", DefaultConfig())
	if e.Analysis().Kind != selector.KindAhoCorasick {
		t.Fatalf("Kind = %v, want aho-corasick", e.Analysis().Kind)
	}
}

func TestIgnoreCaseRejectedForGeneralMatcher(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IgnoreCase = true
	cfg.TextSizeHint = 100 // forces NFA for "a.c"
	_, err := Compile("a.c", cfg)
	if err == nil {
		t.Fatal("expected ErrIgnoreCaseRequiresLiteral")
	}
	var ce *CompileError
	if !errors.As(err, &ce) || ce.Kind != ErrIgnoreCaseRequiresLiteral {
		t.Fatalf("got %v, want ErrIgnoreCaseRequiresLiteral", err)
	}
}

func TestIgnoreCaseAcceptedForLiteralMatcher(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IgnoreCase = true
	e := mustCompile(t, "test", cfg)
	if !e.Match("TEST") {
		t.Error("expected case-insensitive literal match to succeed")
	}
}

func TestUnknownMatcherOverrideRejected(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Matcher = "quantum-dfa"
	_, err := Compile("abc", cfg)
	if err == nil {
		t.Fatal("expected an error for an unknown matcher override")
	}
}

func TestMatcherOverrideIncompatiblePatternRejected(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Matcher = "literal-kmp"
	_, err := Compile("a.c", cfg)
	if err == nil {
		t.Fatal("expected ErrMatcherIncompatiblePattern for a non-literal pattern")
	}
	var ce *CompileError
	if !errors.As(err, &ce) || ce.Kind != ErrMatcherIncompatiblePattern {
		t.Fatalf("got %v, want ErrMatcherIncompatiblePattern", err)
	}
}

func TestMatcherOverrideForcesNFA(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Matcher = "nfa"
	cfg.TextSizeHint = 1 << 20 // would otherwise pick min-dfa
	e := mustCompile(t, "a.c", cfg)
	if e.Analysis().Kind != selector.KindNFA {
		t.Fatalf("Kind = %v, want nfa", e.Analysis().Kind)
	}
	if !e.Match("abc") {
		t.Error("expected a.c to match abc")
	}
}

// TestScenarioS4 grounds directly on spec 8's S4 scenario: cat|dog|bird on
// "I have a cat and a dog but no bird" selects aho-corasick and finds all
// three literals.
func TestScenarioS4(t *testing.T) {
	e := mustCompile(t, "cat|dog|bird", DefaultConfig())
	matches := e.FindAll("I have a cat and a dog but no bird")
	if len(matches) != 3 {
		t.Fatalf("got %d matches, want 3: %+v", len(matches), matches)
	}
	words := []string{matches[0].Text, matches[1].Text, matches[2].Text}
	want := []string{"cat", "dog", "bird"}
	for i, w := range want {
		if words[i] != w {
			t.Errorf("match %d = %q, want %q", i, words[i], w)
		}
	}
}

// TestScenarioS5 grounds on spec 8's S5 scenario.
func TestScenarioS5(t *testing.T) {
	e := mustCompile(t, "test", DefaultConfig())
	matches := e.FindAll("this is a test line")
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1: %+v", len(matches), matches)
	}
	if matches[0].Start != 10 || matches[0].End != 14 || matches[0].Text != "test" {
		t.Errorf("match = %+v, want {10,14,test}", matches[0])
	}
}

// TestScenarioS6 grounds on spec 8's S6 scenario: a* on "" matches true,
// and findAll yields a single empty match at 0 under this engine's chosen
// empty-match convention.
func TestScenarioS6(t *testing.T) {
	e := mustCompile(t, "a*", DefaultConfig())
	if !e.Match("") {
		t.Error("expected a* to match the empty string")
	}
	matches := e.FindAll("")
	if len(matches) != 1 || matches[0].Start != 0 || matches[0].End != 0 {
		t.Fatalf("matches = %+v, want a single empty match at 0", matches)
	}
}

func TestInvertMatch(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InvertMatch = true
	e := mustCompile(t, "cat", cfg)
	if e.Match("cat") {
		t.Error("expected inverted Match to report false for a matching string")
	}
	if !e.Match("a dog sat") {
		t.Error("expected inverted Match to report true for a non-matching string")
	}
}

func TestSearchStreamYieldsLinesInOrder(t *testing.T) {
	e := mustCompile(t, "cat", DefaultConfig())
	stream := e.SearchStream(strings.NewReader("no match\na cat here\nanother cat\nnothing"))

	var got []LineMatch
	for {
		lm, ok, err := stream.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if !ok {
			break
		}
		got = append(got, lm)
	}

	if len(got) != 2 {
		t.Fatalf("got %d lines, want 2: %+v", len(got), got)
	}
	if got[0].LineNumber != 2 || got[1].LineNumber != 3 {
		t.Errorf("line numbers = %d, %d, want 2, 3", got[0].LineNumber, got[1].LineNumber)
	}
}

func TestSearchStreamInvertMatchYieldsNonMatchingLines(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InvertMatch = true
	e := mustCompile(t, "cat", cfg)
	stream := e.SearchStream(strings.NewReader("a cat\nno animal\nanother cat"))

	var got []LineMatch
	for {
		lm, ok, err := stream.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if !ok {
			break
		}
		got = append(got, lm)
	}

	if len(got) != 1 || got[0].LineNumber != 2 {
		t.Fatalf("got %+v, want exactly line 2", got)
	}
}

func TestSearchFileMissingReturnsIoError(t *testing.T) {
	e := mustCompile(t, "cat", DefaultConfig())
	_, err := e.SearchFile("/nonexistent/path/for/rescan/tests")
	if err == nil {
		t.Fatal("expected an error opening a nonexistent file")
	}
	var ioErr *IoError
	if !errors.As(err, &ioErr) {
		t.Fatalf("error is not an *IoError: %v", err)
	}
}

func TestMustCompilePanicsOnBadPattern(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected MustCompile to panic on a bad pattern")
		}
	}()
	MustCompile("(unclosed", DefaultConfig())
}

func TestStatsTrackSearches(t *testing.T) {
	e := mustCompile(t, "test", DefaultConfig())
	e.Match("test")
	e.FindAll("a test string")
	stats := e.Stats()
	if stats.LiteralSearches != 2 {
		t.Errorf("LiteralSearches = %d, want 2", stats.LiteralSearches)
	}
	e.ResetStats()
	if e.Stats().LiteralSearches != 0 {
		t.Error("expected ResetStats to zero counters")
	}
}
