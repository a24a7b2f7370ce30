package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/hsatom/internal/atom"
	"github.com/san-kum/hsatom/internal/mesh"
	"github.com/san-kum/hsatom/internal/numeric"
)

// Charge is ∫ρ·4πr² dr on m. Electrons count negative.
func Charge(m *mesh.Mesh, rho []float64) (float64, error) {
	r := m.Radii()
	if len(rho) != len(r) {
		return 0, numeric.ErrLengthMismatch
	}
	f := make([]float64, len(r))
	for i := 1; i < len(r); i++ {
		f[i] = rho[i] * 4 * math.Pi * r[i] * r[i]
	}
	return numeric.Integral(r, f)
}

// ChargeError is how far the integrated density is from -Electrons().
func ChargeError(a *atom.Atom) (float64, error) {
	q, err := Charge(a.Mesh(), a.Rho())
	if err != nil {
		return 0, err
	}
	return math.Abs(q + a.Electrons()), nil
}

// TailResidual is max |r·V + 2(Z-N+1)| over the Latter tail, 0 when the tail
// never engaged.
func TailResidual(a *atom.Atom) float64 {
	m := a.Mesh()
	v := a.Potential()
	want := -2 * (float64(a.AtomicNumber()) - a.Electrons() + 1)
	worst := 0.0
	for i := a.TailStart(); i < m.Count(); i++ {
		worst = math.Max(worst, math.Abs(m.R(i)*v[i]-want))
	}
	return worst
}

// EigenvalueSum is Σ occupancy·ε over the orbitals, in Rydberg.
func EigenvalueSum(a *atom.Atom) float64 {
	orbs := a.Orbitals()
	occ := make([]float64, len(orbs))
	e := make([]float64, len(orbs))
	for i, o := range orbs {
		occ[i], e[i] = o.Occupancy, o.Energy
	}
	return floats.Dot(occ, e)
}
