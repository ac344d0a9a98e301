package corr

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-bath/oqs/axis"
	"github.com/cwbudde/algo-bath/oqs/units"
)

// Function is a bath correlation function tabulated over a time grid.
//
// It is a value-like object: construction computes the full sample array and
// nothing mutates it afterwards except [Function.Add], which accumulates a
// second correlation function into this one.
type Function struct {
	ax     *axis.Time
	params Params

	kind   Kind
	values []complex128

	// lamb is the reorganization energy in internal units.
	lamb float64
	temp float64
	tc   float64

	cutoff   float64
	composed bool
}

// New builds an analytic correlation function on the given time grid.
//
// For KindValueDefined use [NewValueDefined]; New rejects it because the raw
// samples are missing.
func New(ta *axis.Time, p Params) (*Function, error) {
	if p.Kind == KindValueDefined {
		return nil, fmt.Errorf("%w: value-defined kind requires raw samples, use NewValueDefined", ErrConfiguration)
	}
	err := p.Validate()
	if err != nil {
		return nil, err
	}

	lamb, err := units.ToInternal(p.ReorganizationEnergy, p.Units)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	f := &Function{
		ax:     ta,
		params: p,
		kind:   p.Kind,
		lamb:   lamb,
		temp:   p.Temperature,
		tc:     p.CorrelationTime,
		cutoff: 5 * p.CorrelationTime,
	}

	kBT := units.BoltzmannInternal * p.Temperature
	t := ta.Points()
	f.values = make([]complex128, len(t))

	switch p.Kind {
	case KindOverdampedBrownianHighTemp:
		for i, x := range t {
			e := math.Exp(-x / f.tc)
			f.values[i] = complex(2*lamb*kBT*e, -(lamb/f.tc)*e)
		}
	case KindOverdampedBrownian:
		n := p.matsubaraOrder()
		pref := lamb / (f.tc * math.Tan(1/(2*kBT*f.tc)))
		for i, x := range t {
			e := math.Exp(-x / f.tc)
			re := pref*e + (4*lamb*kBT/f.tc)*matsubara(kBT, f.tc, n, x)
			f.values[i] = complex(re, -(lamb/f.tc)*e)
		}
	}

	return f, nil
}

// NewValueDefined builds a correlation function from caller-supplied samples.
// The samples are copied; their length must match the grid length.
func NewValueDefined(ta *axis.Time, p Params, values []complex128) (*Function, error) {
	if p.Kind != KindValueDefined {
		return nil, fmt.Errorf("%w: NewValueDefined requires KindValueDefined, got %v", ErrConfiguration, p.Kind)
	}
	err := p.Validate()
	if err != nil {
		return nil, err
	}
	if len(values) != ta.Len() {
		return nil, fmt.Errorf("%w: %d values on %d points", ErrShapeMismatch, len(values), ta.Len())
	}

	lamb, err := units.ToInternal(p.ReorganizationEnergy, p.Units)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	cutoff := p.CutoffTime
	if cutoff == 0 {
		cutoff = ta.Max()
	}

	v := make([]complex128, len(values))
	copy(v, values)

	return &Function{
		ax:     ta,
		params: p,
		kind:   KindValueDefined,
		values: v,
		lamb:   lamb,
		temp:   p.Temperature,
		cutoff: cutoff,
	}, nil
}

// matsubara evaluates the truncated Matsubara series
//
//	sum_{k=1}^{n} nu k exp(-nu k t) / ((nu k)^2 - 1/tc^2)
//
// with nu = 2 pi kB T, by direct accumulation.
func matsubara(kBT, tc float64, n int, t float64) float64 {
	nu := 2 * math.Pi * kBT
	sum := 0.0
	for k := 1; k <= n; k++ {
		nk := nu * float64(k)
		sum += nk * math.Exp(-nk*t) / (nk*nk - 1/(tc*tc))
	}
	return sum
}

// TimeAxis returns the time grid the function is tabulated on.
func (f *Function) TimeAxis() *axis.Time { return f.ax }

// Kind returns the correlation-function model.
func (f *Function) Kind() Kind { return f.kind }

// Values returns the sample array. The slice is shared; callers must treat it
// as read-only.
func (f *Function) Values() []complex128 { return f.values }

// Temperature returns the bath temperature in Kelvin.
func (f *Function) Temperature() float64 { return f.temp }

// ReorganizationEnergy returns lambda in internal units (rad/fs).
func (f *Function) ReorganizationEnergy() float64 { return f.lamb }

// CorrelationTime returns tau_c in fs, or zero for value-defined functions.
func (f *Function) CorrelationTime() float64 { return f.tc }

// CutoffTime returns the time beyond which the function is considered
// negligible.
func (f *Function) CutoffTime() float64 { return f.cutoff }

// IsComposed reports whether another correlation function has been
// accumulated into this one.
func (f *Function) IsComposed() bool { return f.composed }

// Params returns the construction parameters.
func (f *Function) Params() Params { return f.params }

// Add accumulates another correlation function into this one. Both must be
// defined on identical time grids and at equal temperatures. Reorganization
// energies and samples add elementwise; the cutoff extends to the larger of
// the two; the composed flag is set.
func (f *Function) Add(o *Function) error {
	if !f.ax.Equal(o.ax) {
		return fmt.Errorf("%w: time grids differ", ErrIncompatibleOperand)
	}
	if f.temp != o.temp {
		return fmt.Errorf("%w: temperatures differ: %v K vs %v K", ErrIncompatibleOperand, f.temp, o.temp)
	}
	f.lamb += o.lamb
	for i := range f.values {
		f.values[i] += o.values[i]
	}
	if o.cutoff > f.cutoff {
		f.cutoff = o.cutoff
	}
	f.composed = true
	return nil
}

// Copy returns a true value copy: the sample array is cloned, so copies of
// value-defined functions preserve their raw data.
func (f *Function) Copy() *Function {
	c := *f
	c.values = make([]complex128, len(f.values))
	copy(c.values, f.values)
	return &c
}

// Rederive rebuilds the function from its stored parameters, discarding any
// accumulated state. Value-defined functions cannot be rederived: their
// samples are not determined by the parameters.
func (f *Function) Rederive() (*Function, error) {
	if f.kind == KindValueDefined {
		return nil, fmt.Errorf("%w: value-defined functions cannot be rederived from parameters", ErrConfiguration)
	}
	return New(f.ax, f.params)
}
