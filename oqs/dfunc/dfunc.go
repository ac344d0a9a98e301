package dfunc

import (
	"errors"
	"fmt"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-bath/oqs/axis"
)

// Errors returned by dfunc constructors and transforms.
var (
	ErrLengthMismatch      = errors.New("dfunc: value count must match grid length")
	ErrLengthNotPowerOfTwo = errors.New("dfunc: grid length must be a power of two for Fourier transforms")
)

// Function is a tabulated complex-valued function over a time grid.
// It is immutable after construction.
type Function struct {
	ax     *axis.Time
	values []complex128
}

// New creates a tabulated function. The values are copied.
func New(ax *axis.Time, values []complex128) (*Function, error) {
	if len(values) != ax.Len() {
		return nil, fmt.Errorf("%w: %d values on %d points", ErrLengthMismatch, len(values), ax.Len())
	}
	v := make([]complex128, len(values))
	copy(v, values)
	return &Function{ax: ax, values: v}, nil
}

// Axis returns the time grid.
func (f *Function) Axis() *axis.Time { return f.ax }

// Values returns the sample array. The slice is shared; callers must treat it
// as read-only.
func (f *Function) Values() []complex128 { return f.values }

// FourierTransform computes the discrete Fourier transform of the function,
// returning a tabulated function over the companion frequency grid.
//
// The output follows the continuous convention F(w) = Int f(t) exp(-iwt) dt:
// transform values are rotated to ascending frequency order and scaled by the
// grid spacing, and a start-time phase factor is applied when the time grid
// does not begin at zero. The grid length must be a power of two.
func (f *Function) FourierTransform() (*FrequencyFunction, error) {
	n := f.ax.Len()
	if !isPowerOfTwo(n) {
		return nil, fmt.Errorf("%w: %d", ErrLengthNotPowerOfTwo, n)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("dfunc: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, n)
	err = plan.Forward(out, f.values)
	if err != nil {
		return nil, fmt.Errorf("dfunc: forward FFT failed: %w", err)
	}

	fa := f.ax.Frequency()
	dt := f.ax.Step()
	t0 := f.ax.Start()

	// Rotate to ascending frequency order and normalize by the spacing.
	rotated := make([]complex128, n)
	for i := range rotated {
		rotated[i] = out[(i+n/2)%n] * complex(dt, 0)
		if t0 != 0 {
			rotated[i] *= cmplx.Exp(complex(0, -fa.At(i)*t0))
		}
	}

	return &FrequencyFunction{ax: fa, values: rotated}, nil
}

// FrequencyFunction is a tabulated complex-valued function over an
// angular-frequency grid. It is immutable after construction.
type FrequencyFunction struct {
	ax     *axis.Frequency
	values []complex128
}

// NewFrequency creates a tabulated frequency-domain function. The values are
// copied.
func NewFrequency(ax *axis.Frequency, values []complex128) (*FrequencyFunction, error) {
	if len(values) != ax.Len() {
		return nil, fmt.Errorf("%w: %d values on %d points", ErrLengthMismatch, len(values), ax.Len())
	}
	v := make([]complex128, len(values))
	copy(v, values)
	return &FrequencyFunction{ax: ax, values: v}, nil
}

// Axis returns the frequency grid.
func (f *FrequencyFunction) Axis() *axis.Frequency { return f.ax }

// Values returns the sample array. The slice is shared; callers must treat it
// as read-only.
func (f *FrequencyFunction) Values() []complex128 { return f.values }

// InverseFourierTransform recovers the time-domain function, inverting
// [Function.FourierTransform] for grids starting at zero.
func (f *FrequencyFunction) InverseFourierTransform() (*Function, error) {
	n := f.ax.Len()
	if !isPowerOfTwo(n) {
		return nil, fmt.Errorf("%w: %d", ErrLengthNotPowerOfTwo, n)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("dfunc: failed to create FFT plan: %w", err)
	}

	// Undo the ascending-order rotation before transforming back.
	unrotated := make([]complex128, n)
	for i := range unrotated {
		unrotated[(i+n/2)%n] = f.values[i]
	}

	out := make([]complex128, n)
	err = plan.Inverse(out, unrotated)
	if err != nil {
		return nil, fmt.Errorf("dfunc: inverse FFT failed: %w", err)
	}

	ta := f.ax.Time()
	dt := ta.Step()
	for i := range out {
		out[i] /= complex(dt, 0)
	}

	return &Function{ax: ta, values: out}, nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
