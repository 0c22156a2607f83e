// Package prefilter selects and runs a cheap substring test ahead of the
// full regex engine, rejecting lines that cannot possibly match without
// ever invoking the matcher (spec 4.J).
package prefilter

import (
	"fmt"

	"github.com/coregx/rescan/literal"
	"github.com/coregx/rescan/scan"
)

// Config controls prefilter selection thresholds.
type Config struct {
	// MinSize is the smallest known input size (in bytes) at which a
	// prefilter is worth building; Aho-Corasick setup in particular does
	// not amortize on tiny inputs. Zero or unknown size (size < 0 passed
	// to Select) is treated as "build anyway". Default: 10 KiB.
	MinSize int
}

// DefaultConfig returns the default prefilter configuration.
func DefaultConfig() Config {
	return Config{MinSize: 10 * 1024}
}

// Prefilter is a cheap predicate run over a line before the full matcher.
// A Prefilter never produces false negatives: every line Passes rejects
// truly cannot match the underlying pattern, but a line it accepts is not
// guaranteed to match (spec 4.J, property 8).
type Prefilter interface {
	Passes(line []rune) bool
}

// none always passes every line; used when no prefilter is warranted.
type none struct{}

func (none) Passes([]rune) bool { return true }

// None is the trivial always-pass prefilter.
var None Prefilter = none{}

// contains wraps a single-literal scanner (Boyer-Moore) as a prefilter.
type contains struct {
	bm         *scan.BoyerMoore
	ignoreCase bool
}

func (c *contains) Passes(line []rune) bool {
	if c.ignoreCase {
		line = toLower(line)
	}
	return c.bm.Contains(line)
}

// kmpContains wraps a single-literal KMP scanner as a prefilter; an
// alternative to contains for callers that explicitly request the KMP
// algorithm rather than Boyer-Moore.
type kmpContains struct {
	kmp        *scan.KMP
	ignoreCase bool
}

func (k *kmpContains) Passes(line []rune) bool {
	if k.ignoreCase {
		line = toLower(line)
	}
	return k.kmp.Contains(line)
}

// acAny passes a line if any one of an Aho-Corasick automaton's literals
// is present - the correct predicate for an alternation pattern, where a
// match may take any one branch.
type acAny struct {
	automaton  *scan.Automaton
	ignoreCase bool
}

func (a *acAny) Passes(line []rune) bool {
	if a.ignoreCase {
		line = toLower(line)
	}
	return a.automaton.Contains(line)
}

// acAll passes a line only if every one of an Aho-Corasick automaton's
// literals is present - the correct predicate for a concatenation
// pattern, where all required literals must appear.
type acAll struct {
	automaton   *scan.Automaton
	numPatterns int
	ignoreCase  bool
}

func (a *acAll) Passes(line []rune) bool {
	if a.ignoreCase {
		line = toLower(line)
	}
	return a.automaton.ContainsAll(line, a.numPatterns)
}

func toLower(line []rune) []rune {
	out := make([]rune, len(line))
	for i, r := range line {
		out[i] = toLowerRune(r)
	}
	return out
}

func toLowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// Select builds the prefilter for a pattern given its extracted required
// literals, following spec 4.J's selection rules in order:
//
//  1. Disabled if the chosen matcher is itself a pure-literal algorithm
//     (isLiteralMatcher) - it would duplicate the matcher's own scan.
//  2. Disabled if the input size is known (sizeHint >= 0) and below
//     cfg.MinSize.
//  3. Zero literals -> no prefilter.
//  4. One literal -> Boyer-Moore contains.
//  5. Multiple literals -> Aho-Corasick, using "any" (contains) if
//     isAlternation is set (the pattern contains an alternation anywhere)
//     and "all" (containsAll) otherwise.
//
// ignoreCase, when set, lowercases both the literals and each scanned
// line before testing.
func Select(lits *literal.Seq, isAlternation, isLiteralMatcher bool, sizeHint int, ignoreCase bool, cfg Config) Prefilter {
	if isLiteralMatcher {
		return None
	}
	if sizeHint >= 0 && sizeHint < cfg.MinSize {
		return None
	}
	if lits.IsEmpty() {
		return None
	}

	runeLits := foldedLiterals(lits, ignoreCase)

	if len(runeLits) == 1 {
		return &contains{bm: scan.NewBoyerMoore(runeLits[0]), ignoreCase: ignoreCase}
	}

	automaton := scan.NewBuilder(runeLits)
	if isAlternation {
		return &acAny{automaton: automaton, ignoreCase: ignoreCase}
	}
	return &acAll{automaton: automaton, numPatterns: len(runeLits), ignoreCase: ignoreCase}
}

// foldedLiterals returns lits' literals as rune slices, lowercased if
// ignoreCase is set.
func foldedLiterals(lits *literal.Seq, ignoreCase bool) [][]rune {
	out := make([][]rune, lits.Len())
	for i := 0; i < lits.Len(); i++ {
		runes := lits.Get(i).Runes
		if ignoreCase {
			runes = toLower(runes)
		}
		out[i] = runes
	}
	return out
}

// Force builds the prefilter named by kind ("boyer-moore", "kmp",
// "aho-corasick", or "off"), bypassing Select's automatic decision - used
// when a caller explicitly overrides the prefilter choice instead of
// asking for "auto" (spec 4.J / 6's explicit prefilter option).
func Force(kind string, lits *literal.Seq, isAlternation, ignoreCase bool) (Prefilter, error) {
	if kind == "off" {
		return None, nil
	}
	if lits.IsEmpty() {
		return None, nil
	}
	runeLits := foldedLiterals(lits, ignoreCase)

	switch kind {
	case "boyer-moore":
		return &contains{bm: scan.NewBoyerMoore(runeLits[0]), ignoreCase: ignoreCase}, nil
	case "kmp":
		return &kmpContains{kmp: scan.NewKMP(runeLits[0]), ignoreCase: ignoreCase}, nil
	case "aho-corasick":
		automaton := scan.NewBuilder(runeLits)
		if isAlternation {
			return &acAny{automaton: automaton, ignoreCase: ignoreCase}, nil
		}
		return &acAll{automaton: automaton, numPatterns: len(runeLits), ignoreCase: ignoreCase}, nil
	default:
		return nil, fmt.Errorf("prefilter: unknown kind %q", kind)
	}
}
