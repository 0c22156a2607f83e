package meta

import (
	"io"
	"os"

	"github.com/coregx/rescan/ast"
	"github.com/coregx/rescan/dfa"
	"github.com/coregx/rescan/dfa/lazy"
	"github.com/coregx/rescan/lineio"
	"github.com/coregx/rescan/literal"
	"github.com/coregx/rescan/nfa"
	"github.com/coregx/rescan/prefilter"
	"github.com/coregx/rescan/scan"
	"github.com/coregx/rescan/selector"
)

// Engine is the compiled façade over a single pattern: the chosen Matcher,
// the prefilter built for it, the Algorithm Selector's analysis, and
// running statistics.
type Engine struct {
	pattern   string
	cfg       Config
	analysis  selector.Analysis
	matcher   *Matcher
	prefilter prefilter.Prefilter
	stats     Stats
}

// Compile parses pattern, selects a matching algorithm (or honors cfg's
// explicit override), builds the corresponding backend and prefilter, and
// returns the resulting Engine. Parser failures surface unchanged, wrapped
// in a *CompileError with Kind ErrParse (spec 6).
func Compile(pattern string, cfg Config) (*Engine, error) {
	root, err := ast.Parse(pattern)
	if err != nil {
		return nil, &CompileError{Kind: ErrParse, Pattern: pattern, Cause: err}
	}

	analysis := selector.Analyze(root, cfg.TextSizeHint)
	kind := analysis.Kind

	if cfg.Matcher != "" && cfg.Matcher != "auto" {
		k, ok := parseMatcherOverride(cfg.Matcher)
		if !ok {
			return nil, &CompileError{Kind: ErrUnknownMatcher, Pattern: pattern, Message: cfg.Matcher}
		}
		kind = k
		analysis.Kind = k
		analysis.Rationale = "explicit matcher override: " + cfg.Matcher
	}

	if cfg.IgnoreCase && !isLiteralFamily(kind) {
		return nil, &CompileError{Kind: ErrIgnoreCaseRequiresLiteral, Pattern: pattern, Message: kind.String()}
	}

	isAlt := literal.ContainsAlt(root)
	lits, err := literalsFor(kind, root, analysis)
	if err != nil {
		return nil, &CompileError{Kind: ErrMatcherIncompatiblePattern, Pattern: pattern, Message: err.Error()}
	}

	matcher, err := buildMatcher(kind, root, lits, cfg.IgnoreCase)
	if err != nil {
		return nil, &CompileError{Kind: ErrBuild, Pattern: pattern, Cause: err}
	}

	analysis.Literals = lits
	pf, err := buildPrefilter(cfg, lits, isAlt, isLiteralFamily(kind))
	if err != nil {
		return nil, &CompileError{Kind: ErrUnknownPrefilter, Pattern: pattern, Message: cfg.Prefilter, Cause: err}
	}

	return &Engine{pattern: pattern, cfg: cfg, analysis: analysis, matcher: matcher, prefilter: pf}, nil
}

// MustCompile is like Compile but panics if pattern fails to compile,
// grounded on the teacher's regex.go MustCompile convenience wrapper.
func MustCompile(pattern string, cfg Config) *Engine {
	e, err := Compile(pattern, cfg)
	if err != nil {
		panic(err)
	}
	return e
}

// Pattern returns the original pattern string this Engine was compiled
// from.
func (e *Engine) Pattern() string { return e.pattern }

// Analysis returns the Algorithm Selector's output for this Engine's
// pattern, including the matcher Kind actually in use (which may differ
// from the auto-selected one if Config.Matcher overrode it).
func (e *Engine) Analysis() selector.Analysis { return e.analysis }

// Stats returns a snapshot of this Engine's execution counters.
func (e *Engine) Stats() Stats { return e.stats }

// ResetStats zeroes this Engine's execution counters.
func (e *Engine) ResetStats() { e.stats = Stats{} }

// Match reports whether the compiled pattern matches the whole of s,
// negated if Config.InvertMatch was set.
func (e *Engine) Match(s string) bool {
	e.stats.recordSearch(e.matcher.Kind())
	result := e.matcher.Match(s)
	if e.cfg.InvertMatch {
		return !result
	}
	return result
}

// FindAll returns every non-overlapping leftmost-longest match in s. The
// prefilter (if any) is consulted first; since it never produces a false
// negative, a rejected line can short-circuit straight to an empty result
// (spec 4.J, property 8). FindAll does not apply Config.InvertMatch -
// inversion is a line-level boolean test, meaningful for Match and
// SearchStream but not for "the list of matches on this line".
func (e *Engine) FindAll(s string) []Match {
	e.stats.recordSearch(e.matcher.Kind())
	line := []rune(s)
	if e.prefilter != nil && !e.prefilter.Passes(line) {
		e.stats.recordPrefilter(false)
		return nil
	}
	e.stats.recordPrefilter(true)
	return e.matcher.FindAll(line)
}

// LineMatch is one line yielded by a Stream: its text, its 1-based line
// number in the original input, and the matches FindAll found on it.
type LineMatch struct {
	Line       string
	LineNumber int
	Matches    []Match
}

// Stream is the file-oriented search iterator returned by SearchStream and
// SearchFile (spec 6's searchStream). Lines are yielded in file order with
// monotonically increasing line numbers; if Config.InvertMatch is set, only
// lines with no match are yielded.
type Stream struct {
	r      *lineio.Reader
	e      *Engine
	closer io.Closer
}

// SearchStream returns a Stream reading lines from r using the Engine's
// chunk size.
func (e *Engine) SearchStream(r io.Reader) *Stream {
	cfg := lineio.DefaultConfig()
	if e.cfg.ChunkSize > 0 {
		cfg.ChunkSize = e.cfg.ChunkSize
	}
	return &Stream{r: lineio.New(r, cfg), e: e}
}

// SearchFile opens path and returns a Stream over its contents. The caller
// must call Close when done (directly, or by exhausting Next to EOF, which
// closes automatically) to release the file descriptor - guaranteed
// resource cleanup on every exit path per spec 5.
func (e *Engine) SearchFile(path string) (*Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IoError{Cause: err}
	}
	s := e.SearchStream(f)
	s.closer = f
	return s, nil
}

// Next returns the next qualifying line, or false once the stream is
// exhausted. A non-nil error reports an I/O failure (*IoError); lines
// already yielded before the error remain valid (spec 7).
func (s *Stream) Next() (LineMatch, bool, error) {
	for {
		line, ok, err := s.r.Next()
		if err != nil {
			s.Close()
			return LineMatch{}, false, &IoError{Cause: err}
		}
		if !ok {
			s.Close()
			return LineMatch{}, false, nil
		}

		matches := s.e.FindAll(line.Text)
		want := len(matches) > 0
		if s.e.cfg.InvertMatch {
			want = !want
		}
		if !want {
			continue
		}
		return LineMatch{Line: line.Text, LineNumber: line.Number, Matches: matches}, true, nil
	}
}

// Close releases the Stream's underlying file descriptor, if it opened
// one. Safe to call more than once.
func (s *Stream) Close() error {
	if s.closer == nil {
		return nil
	}
	c := s.closer
	s.closer = nil
	return c.Close()
}

func parseMatcherOverride(s string) (selector.Kind, bool) {
	switch s {
	case "nfa":
		return selector.KindNFA, true
	case "dfa", "min-dfa":
		// This engine's Algorithm Selector never emits an intermediate
		// unminimized-DFA strategy of its own (spec 4.K only ever chooses
		// min-dfa), so an explicit "dfa" override is treated the same as
		// "min-dfa".
		return selector.KindMinDFA, true
	case "lazy-dfa":
		return selector.KindLazyDFA, true
	case "literal-kmp":
		return selector.KindLiteralKMP, true
	case "literal-bm":
		return selector.KindLiteralBM, true
	case "aho-corasick":
		return selector.KindAhoCorasick, true
	default:
		return 0, false
	}
}

func isLiteralFamily(kind selector.Kind) bool {
	switch kind {
	case selector.KindLiteralKMP, selector.KindLiteralBM, selector.KindAhoCorasick:
		return true
	default:
		return false
	}
}

// literalsFor returns the literal set a literal-family kind should be built
// from, falling back to a fresh extraction when the selector's own analysis
// didn't already produce one for an explicitly overridden kind. It rejects
// a literal-family override that the pattern's structure cannot actually
// satisfy (spec 9's design note: the façade dispatches on Kind, but Kind
// must still be a pattern the chosen backend can express).
func literalsFor(kind selector.Kind, root ast.Node, analysis selector.Analysis) (*literal.Seq, error) {
	switch kind {
	case selector.KindAhoCorasick:
		if altLits, ok := literal.AlternationOfLiterals(root); ok {
			return altLits, nil
		}
		return nil, errIncompatible("aho-corasick requires a pure alternation of literals")
	case selector.KindLiteralKMP, selector.KindLiteralBM:
		if !analysis.Flags.IsLiteral {
			return nil, errIncompatible("literal matcher requires a pure literal pattern")
		}
		lits := literal.Extract(root)
		if lits.IsEmpty() {
			// A pure literal pattern built entirely of the empty-group
			// marker: treat it as matching only the empty string.
			lits = literal.NewSeq(literal.NewLiteral(nil))
		}
		return lits, nil
	default:
		return analysis.Literals, nil
	}
}

func errIncompatible(msg string) error { return &incompatibleError{msg} }

type incompatibleError struct{ msg string }

func (e *incompatibleError) Error() string { return e.msg }

// buildMatcher constructs the backend named by kind.
func buildMatcher(kind selector.Kind, root ast.Node, lits *literal.Seq, ignoreCase bool) (*Matcher, error) {
	switch kind {
	case selector.KindNFA:
		n, err := nfa.Build(root)
		if err != nil {
			return nil, err
		}
		return &Matcher{kind: kind, nfaSim: nfa.NewSimulator(n)}, nil

	case selector.KindMinDFA:
		n, err := nfa.Build(root)
		if err != nil {
			return nil, err
		}
		d, err := dfa.Build(n)
		if err != nil {
			return nil, err
		}
		d = dfa.Minimize(d)
		return &Matcher{kind: kind, dfaSim: dfa.NewSimulator(d)}, nil

	case selector.KindLazyDFA:
		n, err := nfa.Build(root)
		if err != nil {
			return nil, err
		}
		ld := lazy.New(n, lazy.DefaultConfig())
		return &Matcher{kind: kind, lazySim: lazy.NewSimulator(ld)}, nil

	case selector.KindLiteralKMP, selector.KindLiteralBM:
		lit := lits.Get(0).Runes
		if ignoreCase {
			lit = foldRunes(lit)
		}
		m := &Matcher{kind: kind, ignoreCase: ignoreCase, literal: lit}
		if kind == selector.KindLiteralKMP {
			m.kmp = scan.NewKMP(lit)
		} else {
			m.bm = scan.NewBoyerMoore(lit)
		}
		return m, nil

	case selector.KindAhoCorasick:
		pats := make([][]rune, lits.Len())
		for i := 0; i < lits.Len(); i++ {
			r := lits.Get(i).Runes
			if ignoreCase {
				r = foldRunes(r)
			}
			pats[i] = r
		}
		return &Matcher{kind: kind, ignoreCase: ignoreCase, ac: scan.NewBuilder(pats), acPatterns: pats}, nil

	default:
		return nil, &nfa.BuildError{Message: "unknown selector kind"}
	}
}

func buildPrefilter(cfg Config, lits *literal.Seq, isAlternation, isLiteralFamilyKind bool) (prefilter.Prefilter, error) {
	if cfg.Prefilter != "" && cfg.Prefilter != "auto" {
		return prefilter.Force(cfg.Prefilter, lits, isAlternation, cfg.IgnoreCase)
	}
	return prefilter.Select(lits, isAlternation, isLiteralFamilyKind, cfg.TextSizeHint, cfg.IgnoreCase, prefilter.DefaultConfig()), nil
}
