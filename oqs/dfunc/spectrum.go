package dfunc

import (
	"github.com/cwbudde/algo-vecmath"
)

// Magnitude returns |F(w)| at each frequency grid point.
//
// The complex samples are unpacked into separate real and imaginary slices so
// the SIMD-optimized vector kernels can be used.
func (f *FrequencyFunction) Magnitude() []float64 {
	return magnitude(f.values)
}

// Power returns |F(w)|^2 at each frequency grid point.
func (f *FrequencyFunction) Power() []float64 {
	n := len(f.values)
	if n == 0 {
		return nil
	}
	out := make([]float64, n)
	re, im := unpack(f.values)
	vecmath.Power(out, re, im)
	return out
}

// Magnitude returns |f(t)| at each time grid point.
func (f *Function) Magnitude() []float64 {
	return magnitude(f.values)
}

func magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	re, im := unpack(in)
	vecmath.Magnitude(out, re, im)
	return out
}

func unpack(in []complex128) (re, im []float64) {
	buf := make([]float64, 2*len(in))
	re = buf[:len(in)]
	im = buf[len(in):]
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return re, im
}
