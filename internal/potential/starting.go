package potential

import (
	"fmt"
	"math"

	"github.com/san-kum/hsatom/internal/mesh"
	"github.com/san-kum/hsatom/internal/numeric"
)

// abridgedPoints is the length of every starting curve.
const abridgedPoints = 110

// abridgedStride is the spacing of the curve samples on the normal mesh.
const abridgedStride = 4

func startingCurve(z int) *[abridgedPoints]float64 {
	for i := range startingCurves {
		if z <= startingCurves[i].maxZ {
			return &startingCurves[i].u
		}
	}
	return &startingCurves[len(startingCurves)-1].u
}

// abridgedRadii returns the radii the curves are tabulated on for element z.
func abridgedRadii(z int) ([]float64, error) {
	normal, err := mesh.New(z, mesh.Normal)
	if err != nil {
		return nil, err
	}
	r := make([]float64, abridgedPoints)
	for i := range r {
		r[i] = normal.R(abridgedStride * i)
	}
	return r, nil
}

// NormalizedStartingPotential interpolates the tabulated U(r) for element z
// onto m. Radii beyond the last tabulated point hold the last value.
func NormalizedStartingPotential(z int, m *mesh.Mesh) ([]float64, error) {
	if z < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAtomicNumber, z)
	}
	r, err := abridgedRadii(z)
	if err != nil {
		return nil, err
	}
	curve := startingCurve(z)

	spline, err := numeric.NewCubicSpline(r, curve[:], 0, 0)
	if err != nil {
		return nil, err
	}

	last := r[len(r)-1]
	u := make([]float64, m.Count())
	for i := range u {
		ri := m.R(i)
		if ri > last {
			u[i] = curve[abridgedPoints-1]
			continue
		}
		u[i] = spline.At(ri)
	}
	return u, nil
}

// StartingPotential returns the initial trial potential V = -2·Z·U(r)/r for
// element z on mesh m, with V[0] = -Inf.
func StartingPotential(z int, m *mesh.Mesh) ([]float64, error) {
	u, err := NormalizedStartingPotential(z, m)
	if err != nil {
		return nil, err
	}
	v := make([]float64, len(u))
	v[0] = math.Inf(-1)
	for i := 1; i < len(v); i++ {
		v[i] = -2 * float64(z) * u[i] / m.R(i)
	}
	return v, nil
}
