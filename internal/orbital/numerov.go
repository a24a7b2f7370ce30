package orbital

import (
	"fmt"
	"math"

	"github.com/san-kum/hsatom/internal/mesh"
	"github.com/san-kum/hsatom/internal/numeric"
)

const rescaleAbove = 1e100

// Numerov solves for bound states by shooting on a uniform logarithmic grid.
//
// With x = ln r and y = P/√r the radial equation becomes
// y'' = [(l+½)² + r²(V−E)]·y, which Numerov integrates to O(h⁶) per step.
// The eigenvalue is bracketed by node counting: the outward solution has
// n−l−1 nodes below the eigenvalue and one more above it.
type Numerov struct {
	// Step is the log-grid spacing.
	Step float64
	// Tolerance is the relative width at which the eigenvalue bracket stops.
	Tolerance float64
	// MaxBisections caps the eigenvalue search.
	MaxBisections int
	// DecayCutoff is the WKB exponent beyond the turning point past which P is
	// taken as zero.
	DecayCutoff float64
}

func NewNumerov() *Numerov {
	return &Numerov{
		Step:          0.005,
		Tolerance:     1e-11,
		MaxBisections: 200,
		DecayCutoff:   40,
	}
}

type logGrid struct {
	h  float64
	x  []float64
	r  []float64
	rv []float64
}

func (s *Numerov) grid(m *mesh.Mesh, potential []float64) (*logGrid, error) {
	count := m.Count()
	xs := make([]float64, count-1)
	rv := make([]float64, count-1)
	for i := 1; i < count; i++ {
		r := m.R(i)
		xs[i-1] = math.Log(r)
		rv[i-1] = r * potential[i]
		if math.IsNaN(rv[i-1]) || math.IsInf(rv[i-1], 0) {
			return nil, fmt.Errorf("%w: non-finite value at index %d", ErrInvalidPotential, i)
		}
	}

	spline, err := numeric.NewCubicSpline(xs, rv, 0, 0)
	if err != nil {
		return nil, err
	}

	x0, xn := xs[0], xs[len(xs)-1]
	n := int(math.Ceil((xn-x0)/s.Step)) + 1
	g := &logGrid{
		h:  (xn - x0) / float64(n-1),
		x:  make([]float64, n),
		r:  make([]float64, n),
		rv: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		x := x0 + float64(i)*g.h
		if i == n-1 {
			x = xn
		}
		g.x[i] = x
		g.r[i] = math.Exp(x)
		g.rv[i] = spline.At(x)
	}
	return g, nil
}

// f fills the Numerov coefficient (l+½)² + r²(V−E).
func (g *logGrid) f(dst []float64, lam, e float64) {
	for i, r := range g.r {
		dst[i] = lam + r*g.rv[i] - r*r*e
	}
}

// start returns the first two outward samples, y ≈ r^(l+½)·(1 + rV₀·r/(2(l+1))).
func (g *logGrid) start(l int) (float64, float64) {
	c := g.rv[0] / (2 * float64(l+1))
	y0 := 1 + c*g.r[0]
	y1 := math.Exp((float64(l)+0.5)*g.h) * (1 + c*g.r[1])
	return y0, y1
}

// classical returns the outer turning point of f and the index past it where
// the WKB decay exceeds cutoff, or the last index.
func (g *logGrid) classical(f []float64, cutoff float64) (turn, cut int) {
	n := len(f)
	turn = n / 2
	for i := n - 1; i > 1; i-- {
		if f[i] < 0 {
			turn = i
			break
		}
	}

	cut = n - 1
	decay := 0.0
	for i := turn + 1; i < n; i++ {
		if f[i] > 0 {
			decay += math.Sqrt(f[i]) * g.h
		}
		if decay > cutoff {
			cut = i
			break
		}
	}
	return turn, cut
}

// nodes integrates outward up to index last and counts sign changes. It
// stops early where the Numerov weight turns non-positive, past which the
// recurrence oscillates without meaning.
func (g *logGrid) nodes(f []float64, l, last int) int {
	k := g.h * g.h / 12
	y0, y1 := g.start(l)
	w0, w1 := 1-k*f[0], 1-k*f[1]

	count := 0
	for i := 1; i < last; i++ {
		w2 := 1 - k*f[i+1]
		if w2 <= 0 {
			break
		}
		y2 := ((12-10*w1)*y1 - w0*y0) / w2
		if (y2 > 0) != (y1 > 0) && y2 != 0 {
			count++
		}
		if math.Abs(y2) > rescaleAbove {
			y1 /= rescaleAbove
			y2 /= rescaleAbove
		}
		y0, y1 = y1, y2
		w0, w1 = w1, w2
	}
	return count
}

// countNodes counts the nodes of the outward solution at energy e inside the
// region where the bound state can be nonzero.
func (s *Numerov) countNodes(g *logGrid, f []float64, lam, e float64, l int) int {
	g.f(f, lam, e)
	_, cut := g.classical(f, s.DecayCutoff)
	return g.nodes(f, l, cut)
}

// Solve finds the (n, l) bound state of potential on mesh m. potential[0]
// is ignored.
func (s *Numerov) Solve(m *mesh.Mesh, n, l int, occupancy float64, potential []float64) (*Orbital, error) {
	if n < 1 || l < 0 || l >= n {
		return nil, fmt.Errorf("%w: n=%d l=%d", ErrInvalidQuantumNumbers, n, l)
	}
	if len(potential) != m.Count() {
		return nil, fmt.Errorf("%w: %d values for %d points", ErrInvalidPotential, len(potential), m.Count())
	}

	g, err := s.grid(m, potential)
	if err != nil {
		return nil, err
	}

	e, err := s.eigenvalue(g, n, l)
	if err != nil {
		return nil, err
	}

	y := s.wavefunction(g, l, e)
	p, err := s.onMesh(m, g, y)
	if err != nil {
		return nil, err
	}

	return &Orbital{N: n, L: l, Occupancy: occupancy, Energy: e, P: p}, nil
}

func (s *Numerov) eigenvalue(g *logGrid, n, l int) (float64, error) {
	lam := (float64(l) + 0.5) * (float64(l) + 0.5)
	want := n - l - 1
	f := make([]float64, len(g.r))

	// Below min(V + (l+½)²/r²) the solution cannot oscillate.
	lo := math.Inf(1)
	for i, r := range g.r {
		lo = math.Min(lo, g.rv[i]/r+lam/(r*r))
	}
	hi := 0.0
	if lo >= hi {
		return 0, fmt.Errorf("%w: n=%d l=%d", ErrNoBoundState, n, l)
	}

	if s.countNodes(g, f, lam, hi, l) <= want {
		return 0, fmt.Errorf("%w: n=%d l=%d", ErrNoBoundState, n, l)
	}

	for it := 0; it < s.MaxBisections; it++ {
		mid := 0.5 * (lo + hi)
		if s.countNodes(g, f, lam, mid, l) > want {
			hi = mid
		} else {
			lo = mid
		}
		if hi-lo <= s.Tolerance*math.Max(1, math.Abs(lo)) {
			return 0.5 * (lo + hi), nil
		}
	}
	return 0, fmt.Errorf("%w: n=%d l=%d bracket [%g, %g]", ErrNotConverged, n, l, lo, hi)
}

// wavefunction integrates outward to the outer turning point and inward from
// where the WKB decay passes DecayCutoff, scaling the inward branch to meet
// the outward one.
func (s *Numerov) wavefunction(g *logGrid, l int, e float64) []float64 {
	lam := (float64(l) + 0.5) * (float64(l) + 0.5)
	n := len(g.r)
	f := make([]float64, n)
	g.f(f, lam, e)
	k := g.h * g.h / 12
	w := make([]float64, n)
	for i := range f {
		w[i] = 1 - k*f[i]
	}

	turn, cut := g.classical(f, s.DecayCutoff)

	y := make([]float64, n)
	y[0], y[1] = g.start(l)
	for i := 1; i < turn; i++ {
		y[i+1] = ((12-10*w[i])*y[i] - w[i-1]*y[i-1]) / w[i+1]
	}
	match := y[turn]

	in := make([]float64, n)
	in[cut] = 0
	in[cut-1] = 1e-30
	for i := cut - 1; i > turn; i-- {
		in[i-1] = ((12-10*w[i])*in[i] - w[i+1]*in[i+1]) / w[i-1]
	}
	if in[turn] != 0 {
		scale := match / in[turn]
		for i := turn + 1; i <= cut; i++ {
			y[i] = in[i] * scale
		}
	}
	for i := cut + 1; i < n; i++ {
		y[i] = 0
	}
	return y
}

// onMesh splines y(x) back onto the radial mesh as P = y·√r and normalises
// it with the same trapezoidal rule the potential integrals use.
func (s *Numerov) onMesh(m *mesh.Mesh, g *logGrid, y []float64) ([]float64, error) {
	spline, err := numeric.NewCubicSpline(g.x, y, 0, 0)
	if err != nil {
		return nil, err
	}

	r := m.Radii()
	p := make([]float64, len(r))
	sq := make([]float64, len(r))
	for i := 1; i < len(r); i++ {
		p[i] = spline.At(math.Log(r[i])) * math.Sqrt(r[i])
		sq[i] = p[i] * p[i]
	}

	norm, err := numeric.Integral(r, sq)
	if err != nil {
		return nil, err
	}
	if !(norm > 0) || math.IsInf(norm, 0) {
		return nil, fmt.Errorf("%w: wavefunction norm %g", ErrNotConverged, norm)
	}
	scale := 1 / math.Sqrt(norm)
	for i := range p {
		p[i] *= scale
	}
	return p, nil
}
