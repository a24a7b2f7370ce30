// Package mesh builds the radial sample points every radial function of an
// atom is tabulated on.
//
// The mesh is the Herman-Skillman one: r = μ·x with μ = 0.88534138·Z^(-1/3),
// and x advancing through a fixed number of blocks whose step doubles from
// one block to the next. Points are dense near the nucleus, where the
// potential and the core orbitals vary fastest, and sparse far out.
//
//	m, _ := mesh.New(26, mesh.Normal)
//	for i := 0; i < m.Count(); i++ {
//		_ = m.R(i)
//	}
//
// A Mesh is immutable once built and safe to share between goroutines.
package mesh

import (
	"errors"
	"fmt"
	"math"
)

// ThomasFermiScale is the Thomas-Fermi length constant (3π/4)^(2/3)/2.
const ThomasFermiScale = 0.88534138

// Blocks is the number of step-doubling blocks in every size class.
const Blocks = 11

var (
	ErrInvalidAtomicNumber = errors.New("mesh: atomic number must be positive")
	ErrUnknownClass        = errors.New("mesh: unknown size class")
)

// Class selects how many points each block carries.
type Class int

const (
	Abridged Class = iota
	Normal
	Double
)

type classSpec struct {
	name     string
	perBlock int
	dx0      float64
}

// All classes share the same outer radius: perBlock·dx0 is constant.
var classes = map[Class]classSpec{
	Abridged: {name: "abridged", perBlock: 10, dx0: 0.01},
	Normal:   {name: "normal", perBlock: 40, dx0: 0.0025},
	Double:   {name: "double", perBlock: 80, dx0: 0.00125},
}

func (c Class) String() string {
	if spec, ok := classes[c]; ok {
		return spec.name
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// ParseClass maps a class name to its Class.
func ParseClass(name string) (Class, error) {
	for c, spec := range classes {
		if spec.name == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want abridged, normal or double)", ErrUnknownClass, name)
}

// Points returns the number of mesh points for the class.
func (c Class) Points() int {
	return classes[c].perBlock*Blocks + 1
}

type Mesh struct {
	z     int
	class Class
	mu    float64
	r     []float64
}

// New builds the mesh for atomic number z.
func New(z int, class Class) (*Mesh, error) {
	if z < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAtomicNumber, z)
	}
	spec, ok := classes[class]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownClass, int(class))
	}

	mu := ThomasFermiScale * math.Pow(float64(z), -1.0/3.0)
	r := make([]float64, 0, spec.perBlock*Blocks+1)
	r = append(r, 0)

	x := 0.0
	dx := spec.dx0
	for b := 0; b < Blocks; b++ {
		start := x
		for k := 1; k <= spec.perBlock; k++ {
			// accumulate from the block start so rounding does not drift
			// between classes that share a point
			r = append(r, mu*(start+float64(k)*dx))
		}
		x = start + float64(spec.perBlock)*dx
		dx *= 2
	}

	return &Mesh{z: z, class: class, mu: mu, r: r}, nil
}

// Must is New for callers that have already validated z.
func Must(z int, class Class) *Mesh {
	m, err := New(z, class)
	if err != nil {
		panic(err)
	}
	return m
}

// FromRadii wraps an arbitrary increasing radius sequence starting at 0.
// It exists for tests and for callers bringing their own grid.
func FromRadii(r []float64) (*Mesh, error) {
	if len(r) < 2 || r[0] != 0 {
		return nil, errors.New("mesh: radii must start at 0 and hold at least two points")
	}
	for i := 1; i < len(r); i++ {
		if !(r[i] > r[i-1]) {
			return nil, fmt.Errorf("mesh: radii not strictly increasing at index %d", i)
		}
	}
	c := make([]float64, len(r))
	copy(c, r)
	return &Mesh{class: -1, r: c}, nil
}

func (m *Mesh) Count() int      { return len(m.r) }
func (m *Mesh) R(i int) float64 { return m.r[i] }
func (m *Mesh) Z() int          { return m.z }
func (m *Mesh) Class() Class    { return m.class }
func (m *Mesh) Mu() float64     { return m.mu }

// Last returns the outermost radius.
func (m *Mesh) Last() float64 { return m.r[len(m.r)-1] }

// Radii returns a copy of the radius samples.
func (m *Mesh) Radii() []float64 {
	c := make([]float64, len(m.r))
	copy(c, m.r)
	return c
}
