package potential

import (
	"math"
	"testing"

	"github.com/san-kum/hsatom/internal/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedCharge struct {
	occ   float64
	sigma []float64
}

func (f fixedCharge) ChargeOccupancy() float64 { return f.occ }
func (f fixedCharge) Sigma() []float64         { return f.sigma }

// hydrogen1s is the exact 1s charge -4r²e^(-2r) (P = 2r·e^(-r)).
func hydrogen1s(m *mesh.Mesh, occ float64) fixedCharge {
	s := make([]float64, m.Count())
	for i := 1; i < m.Count(); i++ {
		r := m.R(i)
		s[i] = -occ * 4 * r * r * math.Exp(-2*r)
	}
	return fixedCharge{occ: occ, sigma: s}
}

func TestStatisticalAlpha(t *testing.T) {
	assert.Equal(t, 0.0, StatisticalAlpha(0))
	assert.Equal(t, 0.0, StatisticalAlpha(-3))
	assert.Equal(t, 1.0, StatisticalAlpha(1))
	assert.Equal(t, StatisticalAlpha(41), StatisticalAlpha(50))
	assert.Equal(t, StatisticalAlpha(41), StatisticalAlpha(92))
	assert.Equal(t, 41, MaxAlphaZ)

	// coefficients fall slowly from helium onwards
	for z := 2; z <= MaxAlphaZ; z++ {
		a := StatisticalAlpha(z)
		assert.True(t, a > 0.69 && a < 0.80, "Z=%d alpha=%g", z, a)
	}
}

func TestStartingCurveBrackets(t *testing.T) {
	tests := []struct {
		z    int
		curv int
	}{
		{1, 0}, {2, 0}, {3, 1}, {6, 1}, {7, 2}, {10, 2},
		{11, 3}, {18, 3}, {36, 4}, {54, 5}, {55, 6}, {103, 6}, {500, 6},
	}
	for _, tt := range tests {
		assert.Same(t, &startingCurves[tt.curv].u, startingCurve(tt.z), "Z=%d", tt.z)
	}
}

func TestNormalizedStartingPotentialHitsKnots(t *testing.T) {
	for _, z := range []int{1, 8, 26, 80} {
		m := mesh.Must(z, mesh.Normal)
		u, err := NormalizedStartingPotential(z, m)
		require.NoError(t, err)

		curve := startingCurve(z)
		for k := 0; k < abridgedPoints; k++ {
			assert.InDelta(t, curve[k], u[abridgedStride*k], 1e-12, "Z=%d k=%d", z, k)
		}
		// beyond the last knot the value is held
		for i := abridgedStride*(abridgedPoints-1) + 1; i < m.Count(); i++ {
			assert.Equal(t, curve[abridgedPoints-1], u[i])
		}
	}
}

func TestStartingPotential(t *testing.T) {
	z := 10
	m := mesh.Must(z, mesh.Double)
	v, err := StartingPotential(z, m)
	require.NoError(t, err)
	u, err := NormalizedStartingPotential(z, m)
	require.NoError(t, err)

	require.Len(t, v, m.Count())
	assert.True(t, math.IsInf(v[0], -1))
	for i := 1; i < m.Count(); i++ {
		assert.InDelta(t, -2*float64(z)*u[i], m.R(i)*v[i], 1e-9)
	}
	// near the nucleus the guess is the bare charge
	assert.InDelta(t, -2*float64(z), m.R(1)*v[1], 0.05)

	_, err = StartingPotential(0, m)
	assert.ErrorIs(t, err, ErrInvalidAtomicNumber)
}

func TestBareNucleus(t *testing.T) {
	m := mesh.Must(3, mesh.Normal)
	v, err := Compute(m, 3, nil, NoExchange, false)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v[0], -1))
	for i := 1; i < m.Count(); i++ {
		assert.InDelta(t, -6/m.R(i), v[i], 1e-12*math.Abs(v[i]))
	}
}

func TestHydrogenHartreePotential(t *testing.T) {
	m := mesh.Must(1, mesh.Double)
	src := hydrogen1s(m, 1)

	d, err := ComputeDetails(m, 1, []ChargeSource{src}, NoExchange, false)
	require.NoError(t, err)
	assert.Equal(t, m.Count(), d.TailStart)
	assert.Equal(t, 1.0, d.Electrons)
	assert.Equal(t, 0.0, d.Rho[0])
	assert.True(t, math.IsInf(d.V[0], -1))

	// nucleus plus its own 1s cloud: V = -2(1 + 1/r)e^(-2r)
	for i := 1; i < m.Count(); i++ {
		r := m.R(i)
		if r < 0.5 || r > 3 {
			continue
		}
		want := -2 * (1 + 1/r) * math.Exp(-2*r)
		assert.InDelta(t, want, d.V[i], 2e-3, "r=%g", r)
		assert.InDelta(t, -math.Exp(-2*r)/math.Pi, d.Rho[i], 1e-12)
	}
}

func TestExchangeModesScaleTheSameTerm(t *testing.T) {
	z := 2
	m := mesh.Must(z, mesh.Normal)
	src := []ChargeSource{hydrogen1s(m, 2)}

	none, err := Compute(m, z, src, NoExchange, false)
	require.NoError(t, err)
	local, err := Compute(m, z, src, NonStatistical, false)
	require.NoError(t, err)
	stat, err := Compute(m, z, src, Statistical, false)
	require.NoError(t, err)

	alpha := StatisticalAlpha(z)
	for i := 1; i < m.Count(); i++ {
		vx := local[i] - none[i]
		assert.LessOrEqual(t, vx, 0.0)
		assert.InDelta(t, alpha*vx, stat[i]-none[i], 1e-9*(1+math.Abs(none[i])))
	}
}

func TestLatterTail(t *testing.T) {
	m := mesh.Must(1, mesh.Normal)
	d, err := ComputeDetails(m, 1, []ChargeSource{hydrogen1s(m, 1)}, NonStatistical, true)
	require.NoError(t, err)

	require.Less(t, d.TailStart, m.Count())
	require.GreaterOrEqual(t, d.TailStart, 1)
	for i := d.TailStart; i < m.Count(); i++ {
		assert.InDelta(t, -2, m.R(i)*d.V[i], 1e-12)
	}
	for i := 1; i < d.TailStart; i++ {
		assert.LessOrEqual(t, m.R(i)*d.V[i], -2.0)
	}
}

func TestLatterTailBareNucleus(t *testing.T) {
	// with no electrons r·V = -2Z sits above -2(Z+1), so the tail owns the mesh
	m := mesh.Must(4, mesh.Abridged)
	d, err := ComputeDetails(m, 4, nil, NoExchange, true)
	require.NoError(t, err)
	assert.Equal(t, 1, d.TailStart)
	assert.InDelta(t, -10, m.R(7)*d.V[7], 1e-12)
}

func TestComputeErrors(t *testing.T) {
	m := mesh.Must(1, mesh.Normal)

	_, err := Compute(m, 1, []ChargeSource{fixedCharge{occ: 1, sigma: []float64{0, 1}}}, NoExchange, true)
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = Compute(m, 0, nil, NoExchange, true)
	assert.ErrorIs(t, err, ErrInvalidAtomicNumber)

	_, err = Compute(m, 1, nil, ExchangeMode(9), true)
	assert.ErrorIs(t, err, ErrUnknownExchange)
}

func TestParseExchangeMode(t *testing.T) {
	for _, mode := range []ExchangeMode{NoExchange, NonStatistical, Statistical} {
		got, err := ParseExchangeMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, got)
	}
	_, err := ParseExchangeMode("hartree-fock")
	assert.ErrorIs(t, err, ErrUnknownExchange)
}
