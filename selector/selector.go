// Package selector implements the algorithm selector: given a parsed
// pattern and an optional input size hint, it decides which matching
// engine the façade should build (spec 4.K).
package selector

import (
	"strconv"
	"strings"

	"github.com/coregx/rescan/ast"
	"github.com/coregx/rescan/literal"
)

// Kind identifies the chosen matching algorithm.
type Kind int

const (
	KindAhoCorasick Kind = iota
	KindLiteralKMP
	KindLiteralBM
	KindNFA
	KindLazyDFA
	KindMinDFA
)

func (k Kind) String() string {
	switch k {
	case KindAhoCorasick:
		return "aho-corasick"
	case KindLiteralKMP:
		return "literal-kmp"
	case KindLiteralBM:
		return "literal-bm"
	case KindNFA:
		return "nfa"
	case KindLazyDFA:
		return "lazy-dfa"
	case KindMinDFA:
		return "min-dfa"
	default:
		return "unknown"
	}
}

// Flags summarizes structural properties of the pattern that informed the
// decision.
type Flags struct {
	IsLiteral    bool // no Dot, Star, or Alt anywhere
	HasWildcards bool // contains a Dot
	HasAlts      bool // contains an Alt
	HasStars     bool // contains a Star
}

// Analysis is the selector's output: the chosen algorithm, why it was
// chosen, the pattern's complexity score, its required literals, and the
// structural flags that drove the decision.
type Analysis struct {
	Kind       Kind
	Rationale  string
	Complexity int
	Literals   *literal.Seq
	Flags      Flags
}

// String renders the analysis for diagnostics.
func (a Analysis) String() string {
	var b strings.Builder
	b.WriteString(a.Kind.String())
	b.WriteString(": ")
	b.WriteString(a.Rationale)
	b.WriteString(" (complexity=")
	b.WriteString(strconv.Itoa(a.Complexity))
	b.WriteString(")")
	return b.String()
}

// sizeThresholdSmall and sizeThresholdMedium are the byte-size
// breakpoints from spec 4.K's decision table.
const (
	sizeThresholdSmall  = 500
	sizeThresholdMedium = 10 * 1024
	complexityThreshold = 50
	literalLengthCutoff = 10
)

// Analyze inspects n (and, if known, sizeHint bytes of input) and selects
// the matching algorithm per spec 4.K's decision table. Pass a negative
// sizeHint when the input size is unknown.
func Analyze(n ast.Node, sizeHint int) Analysis {
	flags := computeFlags(n)
	complexity := complexityScore(n)
	lits := literal.Extract(n)

	if altLits, ok := literal.AlternationOfLiterals(n); ok && altLits.Len() >= 2 {
		return Analysis{
			Kind:       KindAhoCorasick,
			Rationale:  "pattern is an alternation of two or more literals",
			Complexity: complexity,
			Literals:   altLits,
			Flags:      flags,
		}
	}

	if flags.IsLiteral {
		full := patternLength(n)
		if full < literalLengthCutoff {
			return Analysis{
				Kind:       KindLiteralKMP,
				Rationale:  "pure literal pattern shorter than 10 codepoints",
				Complexity: complexity,
				Literals:   lits,
				Flags:      flags,
			}
		}
		return Analysis{
			Kind:       KindLiteralBM,
			Rationale:  "pure literal pattern of 10 codepoints or more",
			Complexity: complexity,
			Literals:   lits,
			Flags:      flags,
		}
	}

	if sizeHint >= 0 && sizeHint < sizeThresholdSmall {
		return Analysis{
			Kind:       KindNFA,
			Rationale:  "input under 500 bytes: DFA build cost would not be amortized",
			Complexity: complexity,
			Literals:   lits,
			Flags:      flags,
		}
	}
	if sizeHint >= 0 && sizeHint < sizeThresholdMedium {
		return Analysis{
			Kind:       KindLazyDFA,
			Rationale:  "input under 10 KiB: lazy DFA avoids full subset construction",
			Complexity: complexity,
			Literals:   lits,
			Flags:      flags,
		}
	}
	if complexity > complexityThreshold {
		return Analysis{
			Kind:       KindLazyDFA,
			Rationale:  "estimated complexity exceeds 50: avoid DFA state explosion",
			Complexity: complexity,
			Literals:   lits,
			Flags:      flags,
		}
	}
	return Analysis{
		Kind:       KindMinDFA,
		Rationale:  "regular pattern with moderate complexity and ample input",
		Complexity: complexity,
		Literals:   lits,
		Flags:      flags,
	}
}

// computeFlags walks n once to record which constructs it uses.
func computeFlags(n ast.Node) Flags {
	var f Flags
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		switch v := n.(type) {
		case ast.Char:
		case ast.Dot:
			f.HasWildcards = true
		case ast.Concat:
			walk(v.Left)
			walk(v.Right)
		case ast.Alt:
			f.HasAlts = true
			walk(v.Left)
			walk(v.Right)
		case ast.Star:
			f.HasStars = true
			walk(v.Child)
		}
	}
	walk(n)
	f.IsLiteral = !f.HasWildcards && !f.HasAlts && !f.HasStars
	return f
}

// complexityScore recursively sums the heuristic weights from spec 4.K:
// +1 per Char, +2 per Dot, +3 per Alt, +5 per Star.
func complexityScore(n ast.Node) int {
	switch v := n.(type) {
	case ast.Char:
		return 1
	case ast.Dot:
		return 2
	case ast.Concat:
		return complexityScore(v.Left) + complexityScore(v.Right)
	case ast.Alt:
		return 3 + complexityScore(v.Left) + complexityScore(v.Right)
	case ast.Star:
		return 5 + complexityScore(v.Child)
	default:
		return 0
	}
}

// patternLength returns the number of literal codepoints in a pure
// literal pattern (no Dot/Star/Alt), used to pick between KMP and
// Boyer-Moore.
func patternLength(n ast.Node) int {
	switch v := n.(type) {
	case ast.Char:
		if v.IsEmpty() {
			return 0
		}
		return 1
	case ast.Concat:
		return patternLength(v.Left) + patternLength(v.Right)
	default:
		return 0
	}
}
