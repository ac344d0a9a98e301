// Package axis provides evenly spaced sample grids over time and angular
// frequency, including the FFT-companion conversion between the two domains.
//
// Time is measured in femtoseconds, angular frequency in rad/fs, matching the
// internal unit system of the units package.
package axis

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by axis constructors.
var (
	ErrInvalidLength = errors.New("axis: length must be > 0")
	ErrInvalidStep   = errors.New("axis: step must be > 0")
)

// Time is an evenly spaced, strictly increasing time grid.
type Time struct {
	start  float64
	step   float64
	points []float64
}

// NewTime creates a time grid with n points start, start+step, ...
func NewTime(start, step float64, n int) (*Time, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	if step <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStep, step)
	}
	pts := make([]float64, n)
	for i := range pts {
		pts[i] = start + float64(i)*step
	}
	return &Time{start: start, step: step, points: pts}, nil
}

// Len returns the number of grid points.
func (t *Time) Len() int { return len(t.points) }

// Start returns the first grid point.
func (t *Time) Start() float64 { return t.start }

// Step returns the grid spacing dt.
func (t *Time) Step() float64 { return t.step }

// At returns the i-th grid point.
func (t *Time) At(i int) float64 { return t.points[i] }

// Max returns the last grid point.
func (t *Time) Max() float64 { return t.points[len(t.points)-1] }

// Points returns the grid point array. The slice is shared; callers must
// treat it as read-only.
func (t *Time) Points() []float64 { return t.points }

// Equal reports whether two grids have identical start, step and length.
func (t *Time) Equal(o *Time) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.start == o.start && t.step == o.step && len(t.points) == len(o.points)
}

// Frequency returns the FFT-companion angular-frequency grid: n points in
// ascending (shifted) order with spacing 2*pi/(n*dt), covering [-pi/dt, pi/dt).
func (t *Time) Frequency() *Frequency {
	n := len(t.points)
	dw := 2 * math.Pi / (float64(n) * t.step)
	start := -float64(n/2) * dw
	f, _ := NewFrequency(start, dw, n)
	return f
}

// Frequency is an evenly spaced, strictly increasing angular-frequency grid.
type Frequency struct {
	start  float64
	step   float64
	points []float64
}

// NewFrequency creates a frequency grid with n points start, start+step, ...
func NewFrequency(start, step float64, n int) (*Frequency, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	if step <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStep, step)
	}
	pts := make([]float64, n)
	for i := range pts {
		pts[i] = start + float64(i)*step
	}
	return &Frequency{start: start, step: step, points: pts}, nil
}

// Len returns the number of grid points.
func (f *Frequency) Len() int { return len(f.points) }

// Start returns the first grid point.
func (f *Frequency) Start() float64 { return f.start }

// Step returns the grid spacing dw.
func (f *Frequency) Step() float64 { return f.step }

// At returns the i-th grid point.
func (f *Frequency) At(i int) float64 { return f.points[i] }

// Max returns the last grid point.
func (f *Frequency) Max() float64 { return f.points[len(f.points)-1] }

// Points returns the grid point array. The slice is shared; callers must
// treat it as read-only.
func (f *Frequency) Points() []float64 { return f.points }

// Equal reports whether two grids have identical start, step and length.
func (f *Frequency) Equal(o *Frequency) bool {
	if f == nil || o == nil {
		return f == o
	}
	return f.start == o.start && f.step == o.step && len(f.points) == len(o.points)
}

// Time returns the FFT-companion time grid starting at zero with spacing
// 2*pi/(n*dw).
func (f *Frequency) Time() *Time {
	n := len(f.points)
	dt := 2 * math.Pi / (float64(n) * f.step)
	t, _ := NewTime(0, dt, n)
	return t
}
