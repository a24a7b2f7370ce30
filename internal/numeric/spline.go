package numeric

import (
	"gonum.org/v1/gonum/interp"
)

type predictor interface {
	Predict(x float64) float64
	PredictDerivative(x float64) float64
}

// Spline is a cubic spline through a set of knots with prescribed second
// derivatives at both ends. Outside the knot range it holds the end values.
type Spline struct {
	fn     predictor
	x0, xn float64
	y0, yn float64
}

// NewCubicSpline fits a cubic spline through (x[i], y[i]). d2Left and d2Right
// are the second derivatives imposed at the first and last knot; pass 0, 0
// for a natural spline.
func NewCubicSpline(x, y []float64, d2Left, d2Right float64) (*Spline, error) {
	if err := checkSamples(x, y); err != nil {
		return nil, err
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return nil, ErrNotIncreasing
		}
	}

	s := &Spline{x0: x[0], xn: x[len(x)-1], y0: y[0], yn: y[len(y)-1]}

	if d2Left == 0 && d2Right == 0 {
		var nc interp.NaturalCubic
		if err := nc.Fit(x, y); err != nil {
			return nil, err
		}
		s.fn = &nc
		return s, nil
	}

	var pc interp.PiecewiseCubic
	pc.FitWithDerivatives(x, y, slopes(x, y, d2Left, d2Right))
	s.fn = &pc
	return s, nil
}

// At evaluates the spline.
func (s *Spline) At(x float64) float64 {
	switch {
	case x <= s.x0:
		return s.y0
	case x >= s.xn:
		return s.yn
	}
	return s.fn.Predict(x)
}

// Derivative evaluates the first derivative; it is 0 outside the knots.
func (s *Spline) Derivative(x float64) float64 {
	if x < s.x0 || x > s.xn {
		return 0
	}
	return s.fn.PredictDerivative(x)
}

// slopes returns the knot first derivatives of the cubic spline whose end
// second derivatives are m0 and mn. The interior second derivatives solve the
// usual tridiagonal continuity system; a cubic on each interval is then fixed
// by its end values and slopes, which is what PiecewiseCubic consumes.
func slopes(x, y []float64, m0, mn float64) []float64 {
	n := len(x) - 1
	m := make([]float64, n+1)
	m[0], m[n] = m0, mn

	if n > 1 {
		// Thomas algorithm over the n-1 interior unknowns.
		sub := make([]float64, n-1)
		diag := make([]float64, n-1)
		sup := make([]float64, n-1)
		rhs := make([]float64, n-1)
		for i := 1; i < n; i++ {
			h0 := x[i] - x[i-1]
			h1 := x[i+1] - x[i]
			k := i - 1
			sub[k] = h0
			diag[k] = 2 * (h0 + h1)
			sup[k] = h1
			rhs[k] = 6 * ((y[i+1]-y[i])/h1 - (y[i]-y[i-1])/h0)
		}
		rhs[0] -= sub[0] * m0
		rhs[n-2] -= sup[n-2] * mn

		for k := 1; k < n-1; k++ {
			w := sub[k] / diag[k-1]
			diag[k] -= w * sup[k-1]
			rhs[k] -= w * rhs[k-1]
		}
		m[n-1] = rhs[n-2] / diag[n-2]
		for k := n - 3; k >= 0; k-- {
			m[k+1] = (rhs[k] - sup[k]*m[k+2]) / diag[k]
		}
	}

	d := make([]float64, n+1)
	for i := 0; i < n; i++ {
		h := x[i+1] - x[i]
		d[i] = (y[i+1]-y[i])/h - h*(2*m[i]+m[i+1])/6
	}
	h := x[n] - x[n-1]
	d[n] = (y[n]-y[n-1])/h + h*(m[n-1]+2*m[n])/6
	return d
}
