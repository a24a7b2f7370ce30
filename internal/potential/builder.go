// Package potential builds the spherical one-electron potential of an atom:
// the tabulated starting guess, the statistical exchange coefficient, and the
// reconstruction of V(r) and ρ(r) from a set of occupied orbitals.
//
// Potentials are in Rydberg on a radial mesh in Bohr. Index 0 sits on the
// nucleus, where V is the -Inf sentinel and ρ is 0.
package potential

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/hsatom/internal/mesh"
	"github.com/san-kum/hsatom/internal/numeric"
)

var (
	ErrInvalidAtomicNumber = errors.New("potential: atomic number must be positive")
	ErrLengthMismatch      = errors.New("potential: charge samples do not match mesh")
	ErrUnknownExchange     = errors.New("potential: unknown exchange mode")
)

// ExchangeMode selects the exchange term added to the electrostatic potential.
type ExchangeMode int

const (
	NoExchange ExchangeMode = iota
	// NonStatistical is the local-density term with α = 1.
	NonStatistical
	// Statistical scales the local-density term by StatisticalAlpha(Z).
	Statistical
)

var exchangeNames = map[ExchangeMode]string{
	NoExchange:     "none",
	NonStatistical: "nonstatistical",
	Statistical:    "statistical",
}

func (m ExchangeMode) String() string {
	if s, ok := exchangeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("ExchangeMode(%d)", int(m))
}

// ParseExchangeMode maps "none", "nonstatistical" or "statistical" to a mode.
func ParseExchangeMode(name string) (ExchangeMode, error) {
	for m, s := range exchangeNames {
		if s == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownExchange, name)
}

// Alpha is the exchange scale for element z in this mode.
func (m ExchangeMode) Alpha(z int) float64 {
	switch m {
	case NonStatistical:
		return 1
	case Statistical:
		return StatisticalAlpha(z)
	}
	return 0
}

// ChargeSource is anything contributing electrons: its occupancy and its
// charge per unit radius on the mesh (negative for electrons, 0 at index 0).
type ChargeSource interface {
	ChargeOccupancy() float64
	Sigma() []float64
}

// Details is the full output of a potential build.
type Details struct {
	V   []float64
	Rho []float64
	// TailStart is the first index replaced by the Latter tail; Count() when
	// the tail never engaged.
	TailStart int
	// Electrons is the summed occupancy.
	Electrons float64
}

// Compute returns only the potential of ComputeDetails.
func Compute(m *mesh.Mesh, z int, sources []ChargeSource, mode ExchangeMode, latterTail bool) ([]float64, error) {
	d, err := ComputeDetails(m, z, sources, mode, latterTail)
	if err != nil {
		return nil, err
	}
	return d.V, nil
}

// ComputeDetails builds the potential of nucleus z screened by sources:
//
//	V(r) = -2Z/r - 2·Q(r)/r - 2·∫_r^∞ σ(r')/r' dr' + Vx(r)
//
// where σ is the summed charge per unit radius, Q(r) = ∫_0^r σ, and
// Vx = -6α(3|ρ|/8π)^(1/3). With latterTail set, the potential is replaced by
// -2(Z-N+1)/r from the first point where r·V rises above -2(Z-N+1).
func ComputeDetails(m *mesh.Mesh, z int, sources []ChargeSource, mode ExchangeMode, latterTail bool) (*Details, error) {
	if z < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAtomicNumber, z)
	}
	if _, ok := exchangeNames[mode]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownExchange, int(mode))
	}

	count := m.Count()
	r := m.Radii()

	sigma := make([]float64, count)
	electrons := 0.0
	for _, src := range sources {
		s := src.Sigma()
		if len(s) != count {
			return nil, fmt.Errorf("%w: %d samples for %d points", ErrLengthMismatch, len(s), count)
		}
		for i := 1; i < count; i++ {
			sigma[i] += s[i]
		}
		electrons += src.ChargeOccupancy()
	}

	sigmaOverR := make([]float64, count)
	for i := 1; i < count; i++ {
		sigmaOverR[i] = sigma[i] / r[i]
	}

	enclosed, err := numeric.Cumulative(r, sigma)
	if err != nil {
		return nil, err
	}
	inner, err := numeric.Cumulative(r, sigmaOverR)
	if err != nil {
		return nil, err
	}
	outer := inner[count-1]

	rho := make([]float64, count)
	for i := 1; i < count; i++ {
		rho[i] = sigma[i] / (4 * math.Pi * r[i] * r[i])
	}

	alpha := mode.Alpha(z)
	zf := float64(z)
	v := make([]float64, count)
	v[0] = math.Inf(-1)
	for i := 1; i < count; i++ {
		vx := 0.0
		if alpha != 0 {
			vx = -6 * alpha * math.Cbrt(3/(8*math.Pi)*math.Abs(rho[i]))
		}
		v[i] = -2*zf/r[i] - 2*enclosed[i]/r[i] - 2*(outer-inner[i]) + vx
	}

	tail := count
	if latterTail {
		residual := zf - electrons + 1
		threshold := -2 * residual
		for i := 1; i < count; i++ {
			if r[i]*v[i] > threshold {
				tail = i
				break
			}
		}
		for i := tail; i < count; i++ {
			v[i] = threshold / r[i]
		}
	}

	return &Details{V: v, Rho: rho, TailStart: tail, Electrons: electrons}, nil
}
