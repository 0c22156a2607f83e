// Package rescan is the public library surface over the engine façade: an
// ERE-like regex matcher supporting literal characters, '.', '*',
// concatenation, '|', and grouping, with no character classes, anchors,
// captures, or lookaround (spec 6).
package rescan

import "github.com/coregx/rescan/meta"

// Options controls pattern compilation: the expected input size, case
// folding, matcher/prefilter overrides, invert-match, and chunked-read
// size. The zero value compiles (an empty Matcher or Prefilter is read as
// "auto"), but its TextSizeHint of 0 is read as a known empty input; use
// DefaultOptions for an unknown size and override individual fields.
type Options struct {
	// TextSizeHint is the expected input size in bytes, used by the
	// Algorithm Selector. Leave at -1 (DefaultOptions' value) when the size
	// is unknown.
	TextSizeHint int

	// IgnoreCase requests case-insensitive matching. Only compatible with a
	// literal-family matcher (literal-kmp, literal-bm, aho-corasick);
	// combined with a general regex matcher, Compile returns an error
	// rather than silently limiting the effect to the prefilter.
	IgnoreCase bool

	// InvertMatch negates Matcher.Match and, for SearchStream, yields
	// non-matching lines instead of matching ones.
	InvertMatch bool

	// Matcher overrides automatic algorithm selection: "auto" (default),
	// "nfa", "dfa", "min-dfa", "lazy-dfa", "literal-kmp", "literal-bm", or
	// "aho-corasick".
	Matcher string

	// Prefilter overrides automatic prefilter selection: "auto" (default),
	// "boyer-moore", "kmp", "aho-corasick", or "off".
	Prefilter string

	// ChunkSize is the byte chunk size SearchStream's underlying reader
	// uses. Zero (the default) uses the reader's own default (64 KiB).
	ChunkSize int

	// Diagnostics, if set, receives any InternalInvariantError encountered
	// during matching.
	Diagnostics meta.DiagnosticsSink
}

// DefaultOptions returns Options requesting automatic matcher and prefilter
// selection with an unknown input size.
func DefaultOptions() Options {
	return Options{
		TextSizeHint: -1,
		Matcher:      "auto",
		Prefilter:    "auto",
	}
}

func (o Options) toConfig() meta.Config {
	cfg := meta.Config{
		TextSizeHint: o.TextSizeHint,
		IgnoreCase:   o.IgnoreCase,
		InvertMatch:  o.InvertMatch,
		Matcher:      o.Matcher,
		Prefilter:    o.Prefilter,
		ChunkSize:    o.ChunkSize,
		Diagnostics:  o.Diagnostics,
	}
	if cfg.Matcher == "" {
		cfg.Matcher = "auto"
	}
	if cfg.Prefilter == "" {
		cfg.Prefilter = "auto"
	}
	return cfg
}
