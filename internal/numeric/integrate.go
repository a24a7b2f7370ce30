// Package numeric holds the quadrature and interpolation primitives used on
// non-uniform radial meshes.
package numeric

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

var (
	ErrLengthMismatch = errors.New("numeric: x and y lengths differ")
	ErrTooFewPoints   = errors.New("numeric: at least two samples required")
	ErrNotIncreasing  = errors.New("numeric: abscissae must be strictly increasing")
)

func checkSamples(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < 2 {
		return ErrTooFewPoints
	}
	return nil
}

// Cumulative returns the running trapezoidal integral of y over x. The result
// has the same length as the input and starts at 0.
func Cumulative(x, y []float64) ([]float64, error) {
	if err := checkSamples(x, y); err != nil {
		return nil, err
	}

	out := make([]float64, len(x))
	for i := 1; i < len(x); i++ {
		out[i] = 0.5 * (x[i] - x[i-1]) * (y[i] + y[i-1])
	}
	return floats.CumSum(out, out), nil
}

// Integral returns the trapezoidal integral of y over the whole of x.
func Integral(x, y []float64) (float64, error) {
	if err := checkSamples(x, y); err != nil {
		return 0, err
	}
	return integrate.Trapezoidal(x, y), nil
}
