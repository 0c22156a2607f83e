package literal

import "github.com/coregx/rescan/ast"

// Extract returns the required literal set of n: substrings that must
// appear in any string n matches (spec 4.I).
//
// The walk accumulates a run of consecutive literal characters; a Dot or
// Star flushes the run (wildcards and repetition break the guarantee that
// those characters must be present); Concat recurses through both
// children in order; Alt flushes and extracts each branch independently,
// unioning their required literals rather than intersecting them, since a
// match may take either branch; if either branch has no required literal,
// the Alt contributes none, since a match through that branch need contain
// none of the other branch's literals. The result is deduplicated and sorted by
// decreasing length for prefilter selectivity.
func Extract(n ast.Node) *Seq {
	var cur []rune
	var runs []Literal
	walkRequired(n, &cur, &runs)
	flushRun(&cur, &runs)

	seq := NewSeq(runs...)
	seq.Dedup()
	seq.SortByDecreasingLength()
	return seq
}

func walkRequired(n ast.Node, cur *[]rune, runs *[]Literal) {
	switch v := n.(type) {
	case ast.Char:
		if !v.IsEmpty() {
			*cur = append(*cur, v.Ch)
		}
	case ast.Dot:
		flushRun(cur, runs)
	case ast.Concat:
		walkRequired(v.Left, cur, runs)
		walkRequired(v.Right, cur, runs)
	case ast.Star:
		flushRun(cur, runs)
	case ast.Alt:
		flushRun(cur, runs)
		left, right := Extract(v.Left), Extract(v.Right)
		if left.IsEmpty() || right.IsEmpty() {
			return
		}
		for _, sub := range [...]*Seq{left, right} {
			for i := 0; i < sub.Len(); i++ {
				*runs = append(*runs, sub.Get(i))
			}
		}
	}
}

func flushRun(cur *[]rune, runs *[]Literal) {
	if len(*cur) == 0 {
		return
	}
	runes := make([]rune, len(*cur))
	copy(runes, *cur)
	*runs = append(*runs, NewLiteral(runes))
	*cur = (*cur)[:0]
}

// BenefitsFromPrefilter reports whether seq's longest literal is long
// enough (>= 2 codepoints) to make prefiltering worthwhile (spec 4.I).
func BenefitsFromPrefilter(seq *Seq) bool {
	return seq.Longest() >= 2
}

// AlternationOfLiterals checks whether n is a pure Alt tree whose leaves
// are pure literal concatenations - no Dot or Star anywhere - and if so
// returns the flat list of branch literals (spec 4.I's second analysis).
// ok is false if n contains anything but Char, Concat, and Alt nodes, or
// isn't an alternation at all.
func AlternationOfLiterals(n ast.Node) (seq *Seq, ok bool) {
	if _, isAlt := n.(ast.Alt); !isAlt {
		return nil, false
	}
	var lits []Literal
	if !collectLiteralBranches(n, &lits) {
		return nil, false
	}
	return NewSeq(lits...), true
}

// collectLiteralBranches recurses through a chain of Alt nodes, requiring
// every leaf to be a pure literal concatenation (only Char and Concat).
func collectLiteralBranches(n ast.Node, lits *[]Literal) bool {
	if alt, isAlt := n.(ast.Alt); isAlt {
		return collectLiteralBranches(alt.Left, lits) && collectLiteralBranches(alt.Right, lits)
	}

	var runes []rune
	if !pureLiteralConcat(n, &runes) {
		return false
	}
	*lits = append(*lits, NewLiteral(runes))
	return true
}

// pureLiteralConcat reports whether n is built only from Char and Concat
// nodes (no Dot, Star, or Alt), appending its literal characters to out in
// order.
func pureLiteralConcat(n ast.Node, out *[]rune) bool {
	switch v := n.(type) {
	case ast.Char:
		if !v.IsEmpty() {
			*out = append(*out, v.Ch)
		}
		return true
	case ast.Concat:
		return pureLiteralConcat(v.Left, out) && pureLiteralConcat(v.Right, out)
	default:
		return false
	}
}

// ContainsAlt reports whether n contains an Alt node anywhere, which
// determines the prefilter predicate for a multi-literal matcher: "any
// literal matches" for an alternation pattern versus "all literals must
// match" for a concatenation pattern (spec 4.I).
func ContainsAlt(n ast.Node) bool {
	switch v := n.(type) {
	case ast.Alt:
		return true
	case ast.Concat:
		return ContainsAlt(v.Left) || ContainsAlt(v.Right)
	case ast.Star:
		return ContainsAlt(v.Child)
	default:
		return false
	}
}
