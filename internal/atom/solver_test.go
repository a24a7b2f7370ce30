package atom

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"testing"

	"github.com/san-kum/hsatom/internal/element"
	"github.com/san-kum/hsatom/internal/mesh"
	"github.com/san-kum/hsatom/internal/orbital"
	"github.com/san-kum/hsatom/internal/potential"
)

// fixedSolver ignores the trial potential and returns a 1s-like shape, so the
// SCF loop contracts toward a fixed target by the mixing weight.
type fixedSolver struct {
	calls atomic.Int64
	fail  map[[2]int]error
}

func (f *fixedSolver) Solve(m *mesh.Mesh, n, l int, occupancy float64, _ []float64) (*orbital.Orbital, error) {
	f.calls.Add(1)
	if err := f.fail[[2]int{n, l}]; err != nil {
		return nil, err
	}
	// 2r·e^(-r/n)/n^(3/2) has unit norm
	nf := float64(n)
	p := make([]float64, m.Count())
	for i := 1; i < m.Count(); i++ {
		r := m.R(i)
		p[i] = 2 * r * math.Exp(-r/nf) / math.Pow(nf, 1.5)
	}
	return &orbital.Orbital{N: n, L: l, Occupancy: occupancy, Energy: -1 / float64(n*n), P: p}, nil
}

func carbon(t *testing.T) (element.Element, element.Configuration) {
	t.Helper()
	el, err := element.ByNumber(6)
	if err != nil {
		t.Fatal(err)
	}
	return el, element.MustParse("1s2 2s2 2p2")
}

func TestSolveConvergesWithFixedOrbitals(t *testing.T) {
	el, conf := carbon(t)
	s := NewSolver(&fixedSolver{})

	var deltas []float64
	s.AddObserver(ObserverFunc(func(it Iteration) {
		deltas = append(deltas, it.MaxDelta)
		if len(it.Levels) != 3 {
			t.Errorf("iteration %d: expected 3 levels, got %d", it.Number, len(it.Levels))
		}
	}))

	a, err := s.Solve(context.Background(), el, conf, DefaultConfig())
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	st := a.Status()
	if !st.Converged {
		t.Fatalf("expected convergence, got %s", st)
	}
	if st.MaxDelta >= 1e-4 {
		t.Errorf("final delta %g above tolerance", st.MaxDelta)
	}
	if len(deltas) != st.Iterations {
		t.Errorf("observer saw %d iterations, status says %d", len(deltas), st.Iterations)
	}
	for i := 2; i < len(deltas); i++ {
		if deltas[i] >= deltas[i-1] {
			t.Errorf("delta grew at iteration %d: %g -> %g", i+1, deltas[i-1], deltas[i])
		}
	}
	if a.Electrons() != 6 {
		t.Errorf("expected 6 electrons, got %g", a.Electrons())
	}
}

func TestSolveIterationCap(t *testing.T) {
	el, conf := carbon(t)
	cfg := DefaultConfig()
	cfg.MaxIterations = 3

	a, err := NewSolver(&fixedSolver{}).Solve(context.Background(), el, conf, cfg)
	if err != nil {
		t.Fatalf("capped solve should still return an atom: %v", err)
	}
	st := a.Status()
	if st.Converged || st.Iterations != 3 {
		t.Errorf("expected unconverged after 3 iterations, got %s", st)
	}
	if len(a.Potential()) != mesh.Normal.Points() {
		t.Errorf("capped atom has no potential")
	}

	cfg.RequireConvergence = true
	_, err = NewSolver(&fixedSolver{}).Solve(context.Background(), el, conf, cfg)
	if !errors.Is(err, ErrNotConverged) {
		t.Errorf("expected ErrNotConverged, got %v", err)
	}
}

func TestOrbitalFailurePropagates(t *testing.T) {
	el, conf := carbon(t)
	fs := &fixedSolver{fail: map[[2]int]error{{2, 1}: orbital.ErrNoBoundState}}

	for _, workers := range []int{1, 4} {
		cfg := DefaultConfig()
		cfg.Workers = workers
		_, err := NewSolver(fs).Solve(context.Background(), el, conf, cfg)

		var oe *OrbitalError
		if !errors.As(err, &oe) {
			t.Fatalf("workers=%d: expected OrbitalError, got %v", workers, err)
		}
		if oe.N != 2 || oe.L != 1 || oe.Iteration != 1 {
			t.Errorf("workers=%d: wrong context %+v", workers, oe)
		}
		if !errors.Is(err, orbital.ErrNoBoundState) {
			t.Errorf("workers=%d: cause lost: %v", workers, err)
		}
	}
}

func TestSolveCanceled(t *testing.T) {
	el, conf := carbon(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fs := &fixedSolver{}
	_, err := NewSolver(fs).Solve(ctx, el, conf, DefaultConfig())
	if !errors.Is(err, ErrCanceled) {
		t.Errorf("expected ErrCanceled, got %v", err)
	}
	if fs.calls.Load() != 0 {
		t.Errorf("expected no orbital solves, got %d", fs.calls.Load())
	}
}

func TestWorkersDoNotChangeResult(t *testing.T) {
	el, conf := carbon(t)

	cfg := DefaultConfig()
	seq, err := NewSolver(&fixedSolver{}).Solve(context.Background(), el, conf, cfg)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Workers = 0
	par, err := NewSolver(&fixedSolver{}).Solve(context.Background(), el, conf, cfg)
	if err != nil {
		t.Fatal(err)
	}

	a, b := seq.Potential(), par.Potential()
	for i := 1; i < len(a); i++ {
		if a[i] != b[i] {
			t.Fatalf("potential differs at %d: %g vs %g", i, a[i], b[i])
		}
	}
	if seq.Status() != par.Status() {
		t.Errorf("status differs: %s vs %s", seq.Status(), par.Status())
	}
}

func TestInvalidConfig(t *testing.T) {
	el, conf := carbon(t)
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero tolerance", func(c *Config) { c.Tolerance = 0 }},
		{"nan tolerance", func(c *Config) { c.Tolerance = math.NaN() }},
		{"no iterations", func(c *Config) { c.MaxIterations = 0 }},
		{"zero mixing", func(c *Config) { c.Mixing = 0 }},
		{"overshoot mixing", func(c *Config) { c.Mixing = 1.5 }},
		{"negative workers", func(c *Config) { c.Workers = -1 }},
		{"bad mesh", func(c *Config) { c.Mesh = mesh.Class(7) }},
		{"bad exchange", func(c *Config) { c.Exchange = potential.ExchangeMode(7) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			_, err := NewSolver(&fixedSolver{}).Solve(context.Background(), el, conf, cfg)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}

	_, err := NewSolver(&fixedSolver{}).Solve(context.Background(), el, nil, DefaultConfig())
	if !errors.Is(err, ErrEmptyConfiguration) {
		t.Errorf("expected ErrEmptyConfiguration, got %v", err)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	el, conf := carbon(t)
	a, err := NewSolver(&fixedSolver{}).Solve(context.Background(), el, conf, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	v1, v2 := a.Potential(), a.Potential()
	v1[5] = 42
	if v2[5] == 42 || a.Potential()[5] == 42 {
		t.Error("Potential shares storage")
	}

	rho := a.Rho()
	rho[3] = 1
	if a.Rho()[3] == 1 {
		t.Error("Rho shares storage")
	}

	sx := a.PotentialSansExchange()
	sx[3] = 1
	if a.PotentialSansExchange()[3] == 1 {
		t.Error("PotentialSansExchange shares storage")
	}

	orbs := a.Orbitals()
	orbs[0].P[10] = 99
	orbs[1] = nil
	again := a.Orbitals()
	if again[0].P[10] == 99 || again[1] == nil {
		t.Error("Orbitals shares storage")
	}

	c := a.Configuration()
	c[0].Occupancy = 0
	if a.Configuration()[0].Occupancy != 2 {
		t.Error("Configuration shares storage")
	}
}

func TestBoundaryValues(t *testing.T) {
	el, conf := carbon(t)
	a, err := NewSolver(&fixedSolver{}).Solve(context.Background(), el, conf, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(a.Potential()[0], -1) {
		t.Errorf("Potential[0] = %g, want -Inf", a.Potential()[0])
	}
	if !math.IsInf(a.PotentialSansExchange()[0], -1) {
		t.Errorf("PotentialSansExchange[0] = %g, want -Inf", a.PotentialSansExchange()[0])
	}
	if a.Rho()[0] != 0 {
		t.Errorf("Rho[0] = %g, want 0", a.Rho()[0])
	}

	v := a.Potential()
	m := a.Mesh()
	want := -2 * (6 - a.Electrons() + 1)
	for i := a.TailStart(); i < m.Count(); i++ {
		if math.Abs(m.R(i)*v[i]-want) > 1e-12 {
			t.Fatalf("r·V at %d = %g, want %g", i, m.R(i)*v[i], want)
		}
	}
}

func TestGetOrbital(t *testing.T) {
	el, conf := carbon(t)
	a, err := NewSolver(&fixedSolver{}).Solve(context.Background(), el, conf, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	o, err := a.GetOrbital(2, 1)
	if err != nil {
		t.Fatal(err)
	}
	if o.Label() != "2p" || o.Occupancy != 2 {
		t.Errorf("got %s", o)
	}
	o.P[4] = 7
	if again, _ := a.GetOrbital(2, 1); again.P[4] == 7 {
		t.Error("GetOrbital shares storage")
	}

	if _, err := a.GetOrbital(3, 0); !errors.Is(err, ErrOrbitalNotFound) {
		t.Errorf("expected ErrOrbitalNotFound, got %v", err)
	}

	dup := element.Configuration{{N: 1, L: 0, Occupancy: 1}, {N: 1, L: 0, Occupancy: 1}}
	b, err := NewSolver(&fixedSolver{}).Solve(context.Background(), el, dup, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.GetOrbital(1, 0); !errors.Is(err, ErrAmbiguousOrbital) {
		t.Errorf("expected ErrAmbiguousOrbital, got %v", err)
	}
}

func TestMaxDeltaSkipsNucleus(t *testing.T) {
	inf := math.Inf(-1)
	trial := []float64{inf, -2, -1, 0}
	next := []float64{inf, -2, -3, 0}
	if got := maxDelta(trial, next); got != 0.5 {
		t.Errorf("maxDelta = %g, want 0.5", got)
	}

	mix(trial, next, 0.5)
	if !math.IsInf(trial[0], -1) || trial[2] != -2 {
		t.Errorf("mix = %v", trial)
	}
}
