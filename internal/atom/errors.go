package atom

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConverged is returned only when Config.RequireConvergence is set.
	ErrNotConverged = errors.New("scf: iteration cap reached before convergence")

	// ErrCanceled indicates the solve was interrupted by its context.
	ErrCanceled = errors.New("scf: solve canceled by context")

	// ErrInvalidConfig indicates a solver setting outside its valid range.
	ErrInvalidConfig = errors.New("scf: invalid solver configuration")

	// ErrEmptyConfiguration indicates a configuration with no occupied subshells.
	ErrEmptyConfiguration = errors.New("scf: configuration has no occupied subshells")

	ErrOrbitalNotFound  = errors.New("atom: no orbital with these quantum numbers")
	ErrAmbiguousOrbital = errors.New("atom: more than one orbital with these quantum numbers")
)

// OrbitalError wraps a bound-state failure with the subshell and SCF
// iteration it happened in.
type OrbitalError struct {
	N         int
	L         int
	Iteration int
	Wrapped   error
}

func (e *OrbitalError) Error() string {
	return fmt.Sprintf("scf: iteration %d: orbital n=%d l=%d: %v", e.Iteration, e.N, e.L, e.Wrapped)
}

func (e *OrbitalError) Unwrap() error {
	return e.Wrapped
}
