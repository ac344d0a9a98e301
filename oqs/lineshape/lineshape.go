// Package lineshape turns bath correlation functions into integrated
// lineshape quantities.
//
// The lineshape function g(t) is the double time-integral of the correlation
// function C(t); the half-integrated form h(t) is the single integral. Real
// and imaginary parts are integrated independently: each part is fitted with
// an interpolating cubic spline (zero smoothing, not-a-knot end conditions,
// passing through all grid points) whose antiderivative is evaluated at the
// original grid abscissae. Per-interval two-point Gauss-Legendre quadrature
// is exact for the cubic segments, so the result matches the spline
// antiderivative to rounding error.
package lineshape

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/interp"

	"github.com/cwbudde/algo-bath/oqs/axis"
)

// Errors returned by the integration transforms.
var (
	ErrLengthMismatch = errors.New("lineshape: sample count must match grid length")
	ErrTooFewPoints   = errors.New("lineshape: spline integration needs at least 4 grid points")
)

// CorrelationToLineshape computes the lineshape function g(t): the double
// integral of the correlation samples over the time grid, per part.
func CorrelationToLineshape(ta *axis.Time, values []complex128) ([]complex128, error) {
	h, err := CorrelationToHalfIntegrated(ta, values)
	if err != nil {
		return nil, err
	}
	return integrateParts(ta, h)
}

// CorrelationToHalfIntegrated computes the half-integrated form h(t): the
// single integral of the correlation samples over the time grid, per part.
func CorrelationToHalfIntegrated(ta *axis.Time, values []complex128) ([]complex128, error) {
	return integrateParts(ta, values)
}

// HalfIntegratedToLineshape integrates a half-integrated form h(t) once more,
// yielding g(t). Numerically identical to [CorrelationToHalfIntegrated]; the
// separate name keeps the physically distinct quantity visible at call sites.
func HalfIntegratedToLineshape(ta *axis.Time, values []complex128) ([]complex128, error) {
	return integrateParts(ta, values)
}

// integrateParts spline-integrates real and imaginary parts independently and
// recombines them.
func integrateParts(ta *axis.Time, values []complex128) ([]complex128, error) {
	if len(values) != ta.Len() {
		return nil, fmt.Errorf("%w: %d samples on %d points", ErrLengthMismatch, len(values), ta.Len())
	}
	if ta.Len() < 4 {
		return nil, fmt.Errorf("%w: %d", ErrTooFewPoints, ta.Len())
	}

	re := make([]float64, len(values))
	im := make([]float64, len(values))
	for i, v := range values {
		re[i] = real(v)
		im[i] = imag(v)
	}

	sr, err := antiderivative(ta.Points(), re)
	if err != nil {
		return nil, err
	}
	si, err := antiderivative(ta.Points(), im)
	if err != nil {
		return nil, err
	}

	out := make([]complex128, len(values))
	for i := range out {
		out[i] = complex(sr[i], si[i])
	}
	return out, nil
}

// antiderivative fits an interpolating not-a-knot cubic spline through
// (xs, ys) and returns its antiderivative evaluated at xs, anchored at zero
// at xs[0].
func antiderivative(xs, ys []float64) ([]float64, error) {
	var nc interp.NotAKnotCubic
	err := nc.Fit(xs, ys)
	if err != nil {
		return nil, fmt.Errorf("lineshape: spline fit failed: %w", err)
	}

	out := make([]float64, len(xs))
	acc := 0.0
	for i := 1; i < len(xs); i++ {
		// Two-point Gauss-Legendre is exact for the cubic segment.
		acc += quad.Fixed(nc.Predict, xs[i-1], xs[i], 2, quad.Legendre{}, 0)
		out[i] = acc
	}
	return out, nil
}
