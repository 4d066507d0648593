package automaton

import (
	"errors"
	"fmt"
)

// ErrInvariant reports that a built automaton violates one of its structural
// invariants. This is always a construction bug, never a caller input
// problem: searching such an automaton could loop or report wrong matches.
var ErrInvariant = errors.New("automaton invariant violated")

// BuildError describes an invariant violation found by Verify.
type BuildError struct {
	Message string
	State   StateID
}

// Error implements the error interface
func (e *BuildError) Error() string {
	return fmt.Sprintf("automaton build error at state %d: %s", e.State, e.Message)
}

// Unwrap returns ErrInvariant so callers can match with errors.Is.
func (e *BuildError) Unwrap() error {
	return ErrInvariant
}
