package rescan

import (
	"github.com/coregx/rescan/ast"
	"github.com/coregx/rescan/meta"
	"github.com/coregx/rescan/selector"
)

// Match records one match against a line: the half-open range [Start, End)
// of rune indices, and the matched text itself.
type Match = meta.Match

// LineMatch is one line yielded by a Stream, together with its 1-based
// line number and the matches found on it.
type LineMatch = meta.LineMatch

// Stream is the file-oriented search iterator returned by
// Matcher.SearchStream.
type Stream = meta.Stream

// Matcher is a compiled pattern. It is safe for concurrent use across
// goroutines unless Analysis().Kind is "lazy-dfa", in which case the
// underlying cache is mutated during scanning and each goroutine needs its
// own Matcher (compile the pattern again, or see the lazy package directly
// for sharing one immutable NFA across several caches) (spec 5).
type Matcher struct {
	engine *meta.Engine
}

// Compile parses pattern, selects (or applies opts' override of) a
// matching algorithm, and returns the resulting Matcher. Parser failures
// surface unchanged as a *meta.CompileError with Kind meta.ErrParse.
func Compile(pattern string, opts Options) (*Matcher, error) {
	e, err := meta.Compile(pattern, opts.toConfig())
	if err != nil {
		return nil, err
	}
	return &Matcher{engine: e}, nil
}

// MustCompile is like Compile but panics if pattern fails to compile.
func MustCompile(pattern string, opts Options) *Matcher {
	return &Matcher{engine: meta.MustCompile(pattern, opts.toConfig())}
}

// Match reports whether the pattern matches the whole of s, negated if
// Options.InvertMatch was set.
func (m *Matcher) Match(s string) bool {
	return m.engine.Match(s)
}

// FindAll returns every non-overlapping leftmost-longest match in s.
func (m *Matcher) FindAll(s string) []Match {
	return m.engine.FindAll(s)
}

// SearchStream opens path and returns a Stream over its lines, applying the
// chunked reader and prefilter. The caller should Close the Stream (or
// drain it to exhaustion) to release its file descriptor.
func (m *Matcher) SearchStream(path string) (*Stream, error) {
	return m.engine.SearchFile(path)
}

// Analysis returns the Algorithm Selector's output for this Matcher's
// pattern, including the backend actually in use.
func (m *Matcher) Analysis() selector.Analysis {
	return m.engine.Analysis()
}

// Stats returns a snapshot of this Matcher's execution counters.
func (m *Matcher) Stats() meta.Stats {
	return m.engine.Stats()
}

// ResetStats zeroes this Matcher's execution counters.
func (m *Matcher) ResetStats() {
	m.engine.ResetStats()
}

// Pattern returns the original pattern string this Matcher was compiled
// from.
func (m *Matcher) Pattern() string {
	return m.engine.Pattern()
}

// Analyze is pure introspection: it parses pattern and returns the
// Algorithm Selector's output without building any matching engine (spec
// 6). textSize is the expected input size in bytes, or -1 if unknown.
func Analyze(pattern string, textSize int) (selector.Analysis, error) {
	root, err := ast.Parse(pattern)
	if err != nil {
		return selector.Analysis{}, &meta.CompileError{Kind: meta.ErrParse, Pattern: pattern, Cause: err}
	}
	return selector.Analyze(root, textSize), nil
}
