// Package spectral derives frequency-domain variants of bath correlation
// functions.
//
// Each variant builds (or accepts) a time-domain correlation function,
// optionally symmetrizes it, and Fourier-transforms it onto the companion
// frequency grid. Results are always expressed in the internal unit system,
// independent of the unit system the parameters were declared in: samples are
// stored internally in canonical units, so no unit-context save/restore is
// involved.
package spectral

import (
	"fmt"

	"github.com/cwbudde/algo-bath/oqs/axis"
	"github.com/cwbudde/algo-bath/oqs/corr"
	"github.com/cwbudde/algo-bath/oqs/dfunc"
)

// Part selects which symmetry component of the correlation function is
// transformed.
type Part int

const (
	// PartFull transforms the correlation function as is.
	PartFull Part = iota

	// PartOdd keeps the imaginary part only, re-embedded as purely
	// imaginary samples, before transforming.
	PartOdd

	// PartEven keeps the real part only before transforming.
	PartEven
)

// String returns the part name.
func (p Part) String() string {
	switch p {
	case PartFull:
		return "full"
	case PartOdd:
		return "odd"
	case PartEven:
		return "even"
	default:
		return fmt.Sprintf("Part(%d)", int(p))
	}
}

// Transform Fourier-transforms one symmetry component of an already built
// correlation function.
func Transform(cf *corr.Function, part Part) (*dfunc.FrequencyFunction, error) {
	in := cf.Values()
	vals := make([]complex128, len(in))
	switch part {
	case PartFull:
		copy(vals, in)
	case PartOdd:
		for i, v := range in {
			vals[i] = complex(0, imag(v))
		}
	case PartEven:
		for i, v := range in {
			vals[i] = complex(real(v), 0)
		}
	default:
		return nil, fmt.Errorf("%w: unknown part %v", corr.ErrConfiguration, part)
	}

	f, err := dfunc.New(cf.TimeAxis(), vals)
	if err != nil {
		return nil, fmt.Errorf("spectral: %w", err)
	}
	ft, err := f.FourierTransform()
	if err != nil {
		return nil, fmt.Errorf("spectral: %w", err)
	}
	return ft, nil
}

// FullFT builds a correlation function from params and returns its Fourier
// transform. It fails under the same configuration conditions as corr.New.
func FullFT(ta *axis.Time, p corr.Params) (*dfunc.FrequencyFunction, error) {
	return build(ta, p, PartFull)
}

// OddFT builds a correlation function from params and returns the Fourier
// transform of its odd (imaginary) part.
func OddFT(ta *axis.Time, p corr.Params) (*dfunc.FrequencyFunction, error) {
	return build(ta, p, PartOdd)
}

// EvenFT builds a correlation function from params and returns the Fourier
// transform of its even (real) part.
func EvenFT(ta *axis.Time, p corr.Params) (*dfunc.FrequencyFunction, error) {
	return build(ta, p, PartEven)
}

func build(ta *axis.Time, p corr.Params, part Part) (*dfunc.FrequencyFunction, error) {
	cf, err := corr.New(ta, p)
	if err != nil {
		return nil, err
	}
	return Transform(cf, part)
}
