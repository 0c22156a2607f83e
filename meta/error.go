package meta

import (
	"errors"
	"fmt"
)

// CompileErrorKind classifies why Compile failed.
type CompileErrorKind uint8

const (
	// ErrParse wraps a parser failure (*ast.ParseError), surfaced
	// unchanged per spec 6's "compilation errors surface parser errors
	// unchanged".
	ErrParse CompileErrorKind = iota
	// ErrIgnoreCaseRequiresLiteral reports that Config.IgnoreCase was set
	// alongside a general regex matcher, which this engine rejects rather
	// than silently limiting the case-folding to the prefilter (spec 9,
	// Decision 2).
	ErrIgnoreCaseRequiresLiteral
	// ErrUnknownMatcher reports an unrecognized Config.Matcher override.
	ErrUnknownMatcher
	// ErrUnknownPrefilter reports an unrecognized Config.Prefilter override.
	ErrUnknownPrefilter
	// ErrBuild wraps a failure from the NFA/DFA builders (nfa.BuildError,
	// dfa.BuildError), e.g. a pattern nested past the builder's recursion
	// guard. On a well-formed pattern within those guards this never
	// occurs.
	ErrBuild
	// ErrMatcherIncompatiblePattern reports an explicit matcher override
	// that cannot express the compiled pattern, e.g. forcing "literal-kmp"
	// on a pattern containing '.' or '*'.
	ErrMatcherIncompatiblePattern
)

func (k CompileErrorKind) String() string {
	switch k {
	case ErrParse:
		return "parse error"
	case ErrIgnoreCaseRequiresLiteral:
		return "ignoreCase requires a literal-family matcher"
	case ErrUnknownMatcher:
		return "unknown matcher override"
	case ErrUnknownPrefilter:
		return "unknown prefilter override"
	case ErrBuild:
		return "automaton build failed"
	case ErrMatcherIncompatiblePattern:
		return "matcher override cannot express this pattern"
	default:
		return "unknown compile error"
	}
}

// CompileError reports a failure to compile a pattern into a Matcher.
type CompileError struct {
	Kind    CompileErrorKind
	Pattern string
	Message string
	Cause   error
}

func (e *CompileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("meta: compile %q: %s: %v", e.Pattern, e.Kind, e.Cause)
	}
	return fmt.Sprintf("meta: compile %q: %s: %s", e.Pattern, e.Kind, e.Message)
}

func (e *CompileError) Unwrap() error { return e.Cause }

// Is reports whether target is the sentinel for e's Kind, so errors.Is
// matches the ErrSentinel* values against a *CompileError.
func (e *CompileError) Is(target error) bool {
	switch target {
	case ErrSentinelIgnoreCaseRequiresLiteral:
		return e.Kind == ErrIgnoreCaseRequiresLiteral
	case ErrSentinelUnknownMatcher:
		return e.Kind == ErrUnknownMatcher
	case ErrSentinelUnknownPrefilter:
		return e.Kind == ErrUnknownPrefilter
	}
	return false
}

// sentinels for three of the CompileErrorKinds, matched by CompileError.Is,
// so callers can use errors.Is without inspecting a *CompileError's Kind
// directly.
var (
	ErrSentinelIgnoreCaseRequiresLiteral = errors.New("meta: ignoreCase requires a literal-family matcher")
	ErrSentinelUnknownMatcher            = errors.New("meta: unknown matcher override")
	ErrSentinelUnknownPrefilter          = errors.New("meta: unknown prefilter override")
)

// IoError wraps an I/O failure encountered while opening a file in
// SearchFile or while advancing a Stream. Per spec 7, prior yields from the
// same iterator remain valid;
// only the failing Next call reports the error.
type IoError struct {
	Cause error
}

func (e *IoError) Error() string { return fmt.Sprintf("meta: io error: %v", e.Cause) }
func (e *IoError) Unwrap() error { return e.Cause }

// InternalInvariantError reports that a matching engine observed a state it
// believes can never occur for a well-formed compiled pattern. Per spec 7
// this is treated as "no match" rather than propagated to the caller, and is
// reported to a DiagnosticsSink if one is installed.
type InternalInvariantError struct {
	Message string
}

func (e *InternalInvariantError) Error() string {
	return fmt.Sprintf("meta: internal invariant violated: %s", e.Message)
}

// DiagnosticsSink receives InternalInvariantError occurrences. Installing
// one is optional; the engine never requires it to function correctly.
type DiagnosticsSink interface {
	Report(err *InternalInvariantError)
}

// reportInvariant records an InternalInvariantError occurrence and, if a
// DiagnosticsSink is installed, reports it there. Per spec 7 the condition
// itself is always treated as "no match" by the caller; this only affects
// observability.
func (e *Engine) reportInvariant(message string) {
	e.stats.InvariantErrors++
	if e.cfg.Diagnostics != nil {
		e.cfg.Diagnostics.Report(&InternalInvariantError{Message: message})
	}
}
