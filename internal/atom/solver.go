package atom

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/hsatom/internal/element"
	"github.com/san-kum/hsatom/internal/mesh"
	"github.com/san-kum/hsatom/internal/orbital"
	"github.com/san-kum/hsatom/internal/potential"
)

// Solver runs the self-consistent field loop. The orbital solver is shared by
// concurrent workers and must be safe for concurrent use.
type Solver struct {
	orbitals  orbital.Solver
	observers []Observer
}

// NewSolver uses orbitals for bound states; nil selects the Numerov solver.
func NewSolver(orbitals orbital.Solver) *Solver {
	if orbitals == nil {
		orbitals = orbital.NewNumerov()
	}
	return &Solver{orbitals: orbitals, observers: make([]Observer, 0)}
}

func (s *Solver) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Solve iterates trial potential and orbitals for el in configuration conf
// until the relative potential change drops below cfg.Tolerance or
// cfg.MaxIterations passes have run. Hitting the cap is reported through
// Atom.Status unless cfg.RequireConvergence is set.
func (s *Solver) Solve(ctx context.Context, el element.Element, conf element.Configuration, cfg Config) (*Atom, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if len(conf) == 0 {
		return nil, ErrEmptyConfiguration
	}

	z := el.Z
	m, err := mesh.New(z, cfg.Mesh)
	if err != nil {
		return nil, err
	}

	trial, err := potential.StartingPotential(z, m)
	if err != nil {
		return nil, err
	}

	var (
		next     *potential.Details
		orbitals []*orbital.Orbital
		status   Status
	)
	for it := 1; it <= cfg.MaxIterations; it++ {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrCanceled, ctx.Err())
		default:
		}

		if next != nil {
			mix(trial, next.V, cfg.Mixing)
		}

		orbitals, err = s.solveOrbitals(ctx, m, conf, trial, it, cfg.workers())
		if err != nil {
			return nil, err
		}

		next, err = potential.ComputeDetails(m, z, sources(orbitals), cfg.Exchange, cfg.LatterTail)
		if err != nil {
			return nil, err
		}

		delta := maxDelta(trial, next.V)
		status = Status{Iterations: it, MaxDelta: delta, Converged: delta < cfg.Tolerance}
		s.notify(it, delta, next, orbitals)

		if status.Converged {
			break
		}
	}

	if !status.Converged && cfg.RequireConvergence {
		return nil, fmt.Errorf("%w: %s", ErrNotConverged, status)
	}

	bare, err := potential.ComputeDetails(m, z, sources(orbitals), potential.NoExchange, cfg.LatterTail)
	if err != nil {
		return nil, err
	}

	return &Atom{
		element:       el,
		configuration: conf.Clone(),
		mesh:          m,
		potential:     next.V,
		sansExchange:  bare.V,
		rho:           bare.Rho,
		orbitals:      orbitals,
		electrons:     next.Electrons,
		tailStart:     next.TailStart,
		status:        status,
	}, nil
}

// solveOrbitals solves every subshell of conf against the same frozen trial
// potential. Results keep configuration order regardless of worker count.
func (s *Solver) solveOrbitals(ctx context.Context, m *mesh.Mesh, conf element.Configuration, trial []float64, it, workers int) ([]*orbital.Orbital, error) {
	out := make([]*orbital.Orbital, len(conf))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, sh := range conf {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			o, err := s.orbitals.Solve(m, sh.N, sh.L, sh.Occupancy, trial)
			if err != nil {
				return &OrbitalError{N: sh.N, L: sh.L, Iteration: it, Wrapped: err}
			}
			out[i] = o
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		var oe *OrbitalError
		if !errors.As(err, &oe) {
			return nil, fmt.Errorf("%w: %v", ErrCanceled, err)
		}
		return nil, err
	}
	return out, nil
}

func (s *Solver) notify(it int, delta float64, d *potential.Details, orbitals []*orbital.Orbital) {
	if len(s.observers) == 0 {
		return
	}
	levels := make([]Level, len(orbitals))
	for i, o := range orbitals {
		levels[i] = Level{N: o.N, L: o.L, Occupancy: o.Occupancy, Energy: o.Energy}
	}
	for _, obs := range s.observers {
		obs.OnIteration(Iteration{
			Number:    it,
			MaxDelta:  delta,
			TailStart: d.TailStart,
			Levels:    levels,
			Potential: clone(d.V),
		})
	}
}

func sources(orbitals []*orbital.Orbital) []potential.ChargeSource {
	out := make([]potential.ChargeSource, len(orbitals))
	for i, o := range orbitals {
		out[i] = o
	}
	return out
}

// mix moves trial toward next by weight w. Index 0 keeps its sentinel.
func mix(trial, next []float64, w float64) {
	for i := 1; i < len(trial); i++ {
		trial[i] = (1-w)*trial[i] + w*next[i]
	}
}

// maxDelta is max |next-trial|/|next+trial| over i ≥ 1. Points where both
// vanish do not contribute.
func maxDelta(trial, next []float64) float64 {
	worst := 0.0
	for i := 1; i < len(trial); i++ {
		den := math.Abs(next[i] + trial[i])
		if den == 0 {
			continue
		}
		worst = math.Max(worst, math.Abs(next[i]-trial[i])/den)
	}
	return worst
}

func clone(v []float64) []float64 {
	c := make([]float64, len(v))
	copy(c, v)
	return c
}
