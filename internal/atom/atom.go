package atom

import (
	"context"
	"fmt"

	"github.com/san-kum/hsatom/internal/element"
	"github.com/san-kum/hsatom/internal/mesh"
	"github.com/san-kum/hsatom/internal/orbital"
)

// Atom is a solved atom. It is immutable after construction.
type Atom struct {
	element       element.Element
	configuration element.Configuration
	mesh          *mesh.Mesh
	potential     []float64
	sansExchange  []float64
	rho           []float64
	orbitals      []*orbital.Orbital
	electrons     float64
	tailStart     int
	status        Status
}

// New solves element z in its ground-state configuration with DefaultConfig.
func New(z int) (*Atom, error) {
	el, err := element.ByNumber(z)
	if err != nil {
		return nil, err
	}
	conf, err := element.GroundState(z)
	if err != nil {
		return nil, err
	}
	return NewFromConfiguration(el, conf)
}

// NewFromSpec solves element z in the configuration spec, e.g. "[Ne] 3s1".
func NewFromSpec(z int, spec string) (*Atom, error) {
	el, err := element.ByNumber(z)
	if err != nil {
		return nil, err
	}
	conf, err := element.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("atom: configuration %q: %w", spec, err)
	}
	return NewFromConfiguration(el, conf)
}

// NewFromConfiguration solves el in conf with DefaultConfig.
func NewFromConfiguration(el element.Element, conf element.Configuration) (*Atom, error) {
	return NewSolver(nil).Solve(context.Background(), el, conf, DefaultConfig())
}

func (a *Atom) AtomicNumber() int                    { return a.element.Z }
func (a *Atom) Element() element.Element             { return a.element }
func (a *Atom) Configuration() element.Configuration { return a.configuration.Clone() }
func (a *Atom) Mesh() *mesh.Mesh                     { return a.mesh }
func (a *Atom) Status() Status                       { return a.status }

// Electrons is the total occupancy of the configuration.
func (a *Atom) Electrons() float64 { return a.electrons }

// TailStart is the first mesh index on the Latter tail, or the mesh size
// when the tail never engaged.
func (a *Atom) TailStart() int { return a.tailStart }

// Potential is the self-consistent potential including exchange, in Rydberg.
// Index 0 is -Inf.
func (a *Atom) Potential() []float64 { return clone(a.potential) }

// PotentialSansExchange is the electrostatic potential of the final orbitals.
func (a *Atom) PotentialSansExchange() []float64 { return clone(a.sansExchange) }

// Rho is the electron charge density; electrons count negative.
func (a *Atom) Rho() []float64 { return clone(a.rho) }

// Orbitals returns the final orbitals in configuration order.
func (a *Atom) Orbitals() []*orbital.Orbital {
	out := make([]*orbital.Orbital, len(a.orbitals))
	for i, o := range a.orbitals {
		out[i] = o.Clone()
	}
	return out
}

// GetOrbital returns the single orbital with quantum numbers n and l.
func (a *Atom) GetOrbital(n, l int) (*orbital.Orbital, error) {
	var found *orbital.Orbital
	for _, o := range a.orbitals {
		if o.N != n || o.L != l {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("%w: n=%d l=%d", ErrAmbiguousOrbital, n, l)
		}
		found = o
	}
	if found == nil {
		return nil, fmt.Errorf("%w: n=%d l=%d", ErrOrbitalNotFound, n, l)
	}
	return found.Clone(), nil
}
