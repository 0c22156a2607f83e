package dfa

import "fmt"

// BuildError reports a failure during subset construction or minimization.
// On a well-formed NFA within MaxStates this should never occur.
type BuildError struct {
	Message string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("dfa: build failed: %s", e.Message)
}
