// Package meta implements the engine façade that ties the parser, the
// algorithm selector, the matching engines, and the prefilter together into
// a single compile/match API (spec 4.L).
//
// Per spec 9's design note, the façade is a tagged-variant matcher with a
// single dispatch at scan time rather than a polymorphic interface
// hierarchy: Matcher carries a selector.Kind and exactly one populated
// backend, and every operation switches on that Kind directly.
package meta

// Config controls how Compile selects and builds a matcher.
type Config struct {
	// TextSizeHint is the expected input size in bytes, passed through to
	// the Algorithm Selector. A negative value (the default) means
	// "unknown".
	TextSizeHint int

	// IgnoreCase requests case-insensitive matching. Per spec 9, this is
	// only meaningful for a literal-family matcher (literal-kmp,
	// literal-bm, aho-corasick); combining it with a general regex matcher
	// (nfa, dfa, min-dfa, lazy-dfa) is rejected at Compile time with
	// ErrIgnoreCaseRequiresLiteral rather than silently only affecting the
	// prefilter.
	IgnoreCase bool

	// InvertMatch, when set, negates the result of Engine.Match and
	// filters Engine.SearchStream to lines with no match instead of lines
	// with one.
	InvertMatch bool

	// Matcher overrides the Algorithm Selector's choice. One of "auto" (the
	// default), "nfa", "dfa", "min-dfa", "lazy-dfa", "literal-kmp",
	// "literal-bm", or "aho-corasick".
	Matcher string

	// Prefilter overrides the prefilter selection. One of "auto" (the
	// default), "boyer-moore", "kmp", "aho-corasick", or "off".
	Prefilter string

	// ChunkSize is the byte chunk size SearchStream's line reader uses.
	// Zero means lineio's default (64 KiB).
	ChunkSize int

	// Diagnostics, if non-nil, receives any InternalInvariantError
	// encountered during matching. A nil sink silently treats the
	// condition as "no match" (spec 7).
	Diagnostics DiagnosticsSink
}

// DefaultConfig returns a Config requesting automatic matcher and prefilter
// selection with no size hint.
func DefaultConfig() Config {
	return Config{
		TextSizeHint: -1,
		Matcher:      "auto",
		Prefilter:    "auto",
	}
}
