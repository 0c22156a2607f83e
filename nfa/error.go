package nfa

import "fmt"

// BuildError reports a failure to construct an NFA from a syntax tree. On a
// well-formed tree this should never occur; it exists for defensive limits
// like MaxDepth.
type BuildError struct {
	Message string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("nfa: build failed: %s", e.Message)
}
