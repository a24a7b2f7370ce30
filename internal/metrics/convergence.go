package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/hsatom/internal/atom"
)

// Metric is an atom.Observer that folds the iterations into one number.
type Metric interface {
	atom.Observer
	Name() string
	Value() float64
	Reset()
}

// DeltaHistory keeps every ΔV of a run. Value is the last one.
type DeltaHistory struct {
	name   string
	deltas []float64
}

func NewDeltaHistory() *DeltaHistory {
	return &DeltaHistory{name: "delta"}
}

func (d *DeltaHistory) Name() string { return d.name }

func (d *DeltaHistory) OnIteration(it atom.Iteration) {
	d.deltas = append(d.deltas, it.MaxDelta)
}

func (d *DeltaHistory) Value() float64 {
	if len(d.deltas) == 0 {
		return 0
	}
	return d.deltas[len(d.deltas)-1]
}

// Deltas returns a copy of the recorded values.
func (d *DeltaHistory) Deltas() []float64 {
	out := make([]float64, len(d.deltas))
	copy(out, d.deltas)
	return out
}

func (d *DeltaHistory) Reset() { d.deltas = d.deltas[:0] }

// ConvergenceRate is the geometric mean of ΔV[k]/ΔV[k-1]. Below 1 the loop
// contracts; 0.5 is what fixed orbitals give under half mixing.
type ConvergenceRate struct {
	name   string
	last   float64
	ratios []float64
}

func NewConvergenceRate() *ConvergenceRate {
	return &ConvergenceRate{name: "convergence_rate"}
}

func (c *ConvergenceRate) Name() string { return c.name }

func (c *ConvergenceRate) OnIteration(it atom.Iteration) {
	if c.last > 0 && it.MaxDelta > 0 {
		c.ratios = append(c.ratios, it.MaxDelta/c.last)
	}
	c.last = it.MaxDelta
}

func (c *ConvergenceRate) Value() float64 {
	if len(c.ratios) == 0 {
		return math.NaN()
	}
	return stat.GeometricMean(c.ratios, nil)
}

func (c *ConvergenceRate) Reset() {
	c.last = 0
	c.ratios = c.ratios[:0]
}

// Monotonicity is the fraction of iterations whose ΔV did not grow.
type Monotonicity struct {
	name    string
	last    float64
	rises   int
	samples int
}

func NewMonotonicity() *Monotonicity {
	return &Monotonicity{name: "monotonicity"}
}

func (m *Monotonicity) Name() string { return m.name }

func (m *Monotonicity) OnIteration(it atom.Iteration) {
	if m.samples > 0 && it.MaxDelta > m.last {
		m.rises++
	}
	m.last = it.MaxDelta
	m.samples++
}

func (m *Monotonicity) Value() float64 {
	if m.samples < 2 {
		return 1.0
	}
	return 1.0 - float64(m.rises)/float64(m.samples-1)
}

func (m *Monotonicity) Reset() {
	m.last = 0
	m.rises = 0
	m.samples = 0
}
