package atom

import (
	"fmt"
	"runtime"

	"github.com/san-kum/hsatom/internal/element"
	"github.com/san-kum/hsatom/internal/mesh"
	"github.com/san-kum/hsatom/internal/potential"
)

// Config controls one SCF solve.
type Config struct {
	Mesh mesh.Class
	// Exchange is the exchange term used while iterating. The reported
	// potential without exchange is always built with potential.NoExchange.
	Exchange potential.ExchangeMode
	// Tolerance bounds max |new-trial|/|new+trial| for convergence.
	Tolerance     float64
	MaxIterations int
	// Mixing is the weight of the rebuilt potential in the next trial.
	Mixing     float64
	LatterTail bool
	// Workers bounds concurrent orbital solves. 1 solves in order; 0 uses
	// GOMAXPROCS.
	Workers            int
	RequireConvergence bool
}

func DefaultConfig() Config {
	return Config{
		Mesh:          mesh.Normal,
		Exchange:      potential.NonStatistical,
		Tolerance:     1e-4,
		MaxIterations: 200,
		Mixing:        0.5,
		LatterTail:    true,
		Workers:       1,
	}
}

func (c Config) validate() error {
	if _, err := mesh.ParseClass(c.Mesh.String()); err != nil {
		return fmt.Errorf("%w: mesh %v", ErrInvalidConfig, c.Mesh)
	}
	if _, err := potential.ParseExchangeMode(c.Exchange.String()); err != nil {
		return fmt.Errorf("%w: exchange %v", ErrInvalidConfig, c.Exchange)
	}
	if !(c.Tolerance > 0) {
		return fmt.Errorf("%w: tolerance must be positive, got %g", ErrInvalidConfig, c.Tolerance)
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("%w: max iterations must be at least 1, got %d", ErrInvalidConfig, c.MaxIterations)
	}
	if !(c.Mixing > 0 && c.Mixing <= 1) {
		return fmt.Errorf("%w: mixing must be in (0, 1], got %g", ErrInvalidConfig, c.Mixing)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

func (c Config) workers() int {
	if c.Workers == 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Workers
}

// Status is how the SCF loop ended.
type Status struct {
	Converged  bool
	Iterations int
	// MaxDelta is the last relative potential change.
	MaxDelta float64
}

func (s Status) String() string {
	if s.Converged {
		return fmt.Sprintf("converged after %d iterations (ΔV %.3g)", s.Iterations, s.MaxDelta)
	}
	return fmt.Sprintf("not converged after %d iterations (ΔV %.3g)", s.Iterations, s.MaxDelta)
}

// Level is an orbital eigenvalue reported during iteration.
type Level struct {
	N, L      int
	Occupancy float64
	Energy    float64
}

func (l Level) String() string {
	return fmt.Sprintf("%s:%.6f", element.Subshell{N: l.N, L: l.L}.Label(), l.Energy)
}

// Iteration is one pass of the SCF loop as seen by an Observer.
type Iteration struct {
	Number    int
	MaxDelta  float64
	TailStart int
	Levels    []Level
	// Potential is a copy of the rebuilt potential of this pass.
	Potential []float64
}

// Observer is notified after every iteration, on the solving goroutine.
type Observer interface {
	OnIteration(it Iteration)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(it Iteration)

func (f ObserverFunc) OnIteration(it Iteration) { f(it) }
