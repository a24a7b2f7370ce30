// Package orbital solves the radial Schrödinger equation for one electron in
// a spherical potential and carries the result sampled on a radial mesh.
package orbital

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/hsatom/internal/element"
	"github.com/san-kum/hsatom/internal/mesh"
	"github.com/san-kum/hsatom/internal/numeric"
)

var (
	ErrInvalidQuantumNumbers = errors.New("orbital: invalid quantum numbers")
	ErrNoBoundState          = errors.New("orbital: no bound state in potential")
	ErrNotConverged          = errors.New("orbital: eigenvalue search did not converge")
	ErrInvalidPotential      = errors.New("orbital: potential unusable on mesh")
)

// Solver turns a trial potential and quantum numbers into an orbital.
type Solver interface {
	Solve(m *mesh.Mesh, n, l int, occupancy float64, potential []float64) (*Orbital, error)
}

// Orbital is one solved subshell. P is the radial function r·R(r) on the
// mesh, normalised so that ∫P² dr = 1; P[0] = 0. Energy is in Rydberg.
type Orbital struct {
	N         int
	L         int
	Occupancy float64
	Energy    float64
	P         []float64
}

// Label is the spectroscopic name, e.g. "2p".
func (o *Orbital) Label() string {
	return element.Subshell{N: o.N, L: o.L}.Label()
}

func (o *Orbital) String() string {
	return fmt.Sprintf("%s occ=%g E=%.6f Ry", o.Label(), o.Occupancy, o.Energy)
}

// Sigma is the orbital's charge per unit radius, -occupancy·P². Electrons
// carry negative charge, so summing Sigma over orbitals gives the electronic
// charge distribution directly.
func (o *Orbital) Sigma() []float64 {
	s := make([]float64, len(o.P))
	for i, p := range o.P {
		s[i] = -o.Occupancy * p * p
	}
	s[0] = 0
	return s
}

// ChargeOccupancy reports the electron count; together with Sigma it
// satisfies potential.ChargeSource.
func (o *Orbital) ChargeOccupancy() float64 { return o.Occupancy }

// Clone returns a deep copy.
func (o *Orbital) Clone() *Orbital {
	c := *o
	c.P = make([]float64, len(o.P))
	copy(c.P, o.P)
	return &c
}

// MeanRadius is <r> = ∫ r·P² dr on mesh m.
func (o *Orbital) MeanRadius(m *mesh.Mesh) (float64, error) {
	r := m.Radii()
	if len(r) != len(o.P) {
		return 0, ErrInvalidPotential
	}
	f := make([]float64, len(r))
	for i := range r {
		f[i] = r[i] * o.P[i] * o.P[i]
	}
	return numeric.Integral(r, f)
}

// Norm is ∫P² dr on mesh m.
func (o *Orbital) Norm(m *mesh.Mesh) (float64, error) {
	r := m.Radii()
	if len(r) != len(o.P) {
		return 0, ErrInvalidPotential
	}
	f := make([]float64, len(r))
	for i := range r {
		f[i] = o.P[i] * o.P[i]
	}
	return numeric.Integral(r, f)
}

// Nodes counts sign changes of P, ignoring samples too small to carry a sign
// reliably.
func (o *Orbital) Nodes() int {
	peak := 0.0
	for _, p := range o.P {
		peak = math.Max(peak, math.Abs(p))
	}
	floor := 1e-6 * peak

	nodes := 0
	last := 0.0
	for _, p := range o.P[1:] {
		if math.Abs(p) <= floor {
			continue
		}
		if last != 0 && (p > 0) != (last > 0) {
			nodes++
		}
		last = p
	}
	return nodes
}
