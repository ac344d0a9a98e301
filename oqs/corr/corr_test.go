package corr

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-bath/oqs/axis"
	"github.com/cwbudde/algo-bath/oqs/units"
)

func newTimeAxis(t *testing.T, start, step float64, n int) *axis.Time {
	t.Helper()
	ta, err := axis.NewTime(start, step, n)
	if err != nil {
		t.Fatalf("NewTime: %v", err)
	}
	return ta
}

func TestHighTempValueAtZero(t *testing.T) {
	ta := newTimeAxis(t, 0, 1, 64)
	for _, tc := range []struct {
		lamb float64
		temp float64
		ct   float64
	}{
		{lamb: 1, temp: 300, ct: 100},
		{lamb: 0.02, temp: 77, ct: 50},
		{lamb: 5, temp: 1200, ct: 20},
		{lamb: 0, temp: 300, ct: 100},
	} {
		f, err := New(ta, Params{
			Kind:                 KindOverdampedBrownianHighTemp,
			Temperature:          tc.temp,
			CorrelationTime:      tc.ct,
			ReorganizationEnergy: tc.lamb,
		})
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		want := complex(2*tc.lamb*units.BoltzmannInternal*tc.temp, -tc.lamb/tc.ct)
		if got := f.Values()[0]; cmplx.Abs(got-want) > 1e-15 {
			t.Fatalf("C(0) = %v, want %v", got, want)
		}
	}
}

func TestHighTempDecay(t *testing.T) {
	ta := newTimeAxis(t, 0, 10, 128)
	f, err := New(ta, Params{
		Kind:                 KindOverdampedBrownianHighTemp,
		Temperature:          300,
		CorrelationTime:      100,
		ReorganizationEnergy: 1,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// C(t) decays as exp(-t/tc) in both parts.
	c0 := f.Values()[0]
	c10 := f.Values()[10] // t = 100 fs = tc
	ratio := cmplx.Abs(c10) / cmplx.Abs(c0)
	if math.Abs(ratio-math.Exp(-1)) > 1e-12 {
		t.Fatalf("decay ratio = %v, want 1/e", ratio)
	}
	if f.CutoffTime() != 500 {
		t.Fatalf("cutoff = %v, want 5*tc = 500", f.CutoffTime())
	}
}

func TestScenarioSpectroscopicUnits(t *testing.T) {
	// 1000 points over [0, 500] fs, lambda = 100 1/cm, tc = 100 fs, T = 300 K.
	ta := newTimeAxis(t, 0, 500.0/999.0, 1000)
	f, err := New(ta, Params{
		Kind:                 KindOverdampedBrownianHighTemp,
		Temperature:          300,
		CorrelationTime:      100,
		ReorganizationEnergy: 100,
		Units:                units.WaveNumber,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	lamb, err := units.ToInternal(100, units.WaveNumber)
	if err != nil {
		t.Fatalf("ToInternal: %v", err)
	}
	want := complex(2*lamb*units.BoltzmannInternal*300, -lamb/100)
	if got := f.Values()[0]; cmplx.Abs(got-want) > 1e-15 {
		t.Fatalf("C(0) = %v, want %v", got, want)
	}
	if f.ReorganizationEnergy() != lamb {
		t.Fatalf("lambda = %v, want converted value %v", f.ReorganizationEnergy(), lamb)
	}
	if len(f.Values()) != ta.Len() {
		t.Fatalf("sample count %d, want %d", len(f.Values()), ta.Len())
	}
}

func TestOverdampedBrownianImagPart(t *testing.T) {
	// The imaginary part is the classical -lambda/tc exp(-t/tc) in both the
	// high-temperature and the full quantum form.
	ta := newTimeAxis(t, 0, 2, 256)
	p := Params{
		Kind:                 KindOverdampedBrownian,
		Temperature:          300,
		CorrelationTime:      100,
		ReorganizationEnergy: 0.02,
	}
	f, err := New(ta, p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i, v := range f.Values() {
		want := -(0.02 / 100) * math.Exp(-ta.At(i)/100)
		if math.Abs(imag(v)-want) > 1e-15 {
			t.Fatalf("Im C(t[%d]) = %v, want %v", i, imag(v), want)
		}
	}
}

func TestMatsubaraDefaultOrder(t *testing.T) {
	ta := newTimeAxis(t, 0, 2, 64)
	base := Params{
		Kind:                 KindOverdampedBrownian,
		Temperature:          300,
		CorrelationTime:      100,
		ReorganizationEnergy: 1,
	}
	implicit, err := New(ta, base)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	base.Matsubara = DefaultMatsubaraTerms
	explicit, err := New(ta, base)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := range implicit.Values() {
		if implicit.Values()[i] != explicit.Values()[i] {
			t.Fatalf("zero matsubara order must mean %d terms", DefaultMatsubaraTerms)
		}
	}
}

func TestMatsubaraHighTemperatureLimit(t *testing.T) {
	// With fixed truncation order, the full quantum form approaches the
	// classical closed form as kB*T*tc grows.
	ta := newTimeAxis(t, 0, 1, 16)
	relDiff := func(temp float64) float64 {
		ht, err := New(ta, Params{
			Kind:                 KindOverdampedBrownianHighTemp,
			Temperature:          temp,
			CorrelationTime:      100,
			ReorganizationEnergy: 1,
		})
		if err != nil {
			t.Fatalf("New HT: %v", err)
		}
		ob, err := New(ta, Params{
			Kind:                 KindOverdampedBrownian,
			Temperature:          temp,
			CorrelationTime:      100,
			ReorganizationEnergy: 1,
		})
		if err != nil {
			t.Fatalf("New OB: %v", err)
		}
		return cmplx.Abs(ob.Values()[0]-ht.Values()[0]) / cmplx.Abs(ht.Values()[0])
	}

	cold := relDiff(300)
	hot := relDiff(30000)
	if hot >= cold {
		t.Fatalf("relative deviation must shrink with temperature: %v -> %v", cold, hot)
	}
	if hot > 0.01 {
		t.Fatalf("relative deviation at high temperature = %v, want < 1%%", hot)
	}
}

func TestAddCommutative(t *testing.T) {
	ta := newTimeAxis(t, 0, 1, 128)
	pa := Params{
		Kind:                 KindOverdampedBrownianHighTemp,
		Temperature:          300,
		CorrelationTime:      100,
		ReorganizationEnergy: 1,
	}
	pb := Params{
		Kind:                 KindOverdampedBrownian,
		Temperature:          300,
		CorrelationTime:      40,
		ReorganizationEnergy: 0.5,
	}

	build := func(p Params) *Function {
		f, err := New(ta, p)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		return f
	}

	ab := build(pa)
	err := ab.Add(build(pb))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	ba := build(pb)
	if err := ba.Add(build(pa)); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if math.Abs(ab.ReorganizationEnergy()-ba.ReorganizationEnergy()) > 1e-18 {
		t.Fatalf("lambda accumulation not commutative: %v vs %v",
			ab.ReorganizationEnergy(), ba.ReorganizationEnergy())
	}
	for i := range ab.Values() {
		if cmplx.Abs(ab.Values()[i]-ba.Values()[i]) > 1e-15 {
			t.Fatalf("sample accumulation not commutative at %d", i)
		}
	}
	// Cutoff is the max of both: 5*100 vs 5*40.
	if ab.CutoffTime() != 500 || ba.CutoffTime() != 500 {
		t.Fatalf("cutoff = %v / %v, want 500", ab.CutoffTime(), ba.CutoffTime())
	}
	if !ab.IsComposed() || !ba.IsComposed() {
		t.Fatalf("composed flag must be set after Add")
	}
}

func TestAddTemperatureMismatch(t *testing.T) {
	ta := newTimeAxis(t, 0, 1, 32)
	a, err := New(ta, Params{
		Kind:                 KindOverdampedBrownianHighTemp,
		Temperature:          300,
		CorrelationTime:      100,
		ReorganizationEnergy: 1,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b, err := New(ta, Params{
		Kind:                 KindOverdampedBrownianHighTemp,
		Temperature:          77,
		CorrelationTime:      100,
		ReorganizationEnergy: 1,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := a.Add(b); !errors.Is(err, ErrIncompatibleOperand) {
		t.Fatalf("want ErrIncompatibleOperand, got %v", err)
	}
	if a.IsComposed() {
		t.Fatalf("failed Add must not set the composed flag")
	}
}

func TestAddGridMismatch(t *testing.T) {
	p := Params{
		Kind:                 KindOverdampedBrownianHighTemp,
		Temperature:          300,
		CorrelationTime:      100,
		ReorganizationEnergy: 1,
	}
	a, err := New(newTimeAxis(t, 0, 1, 32), p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b, err := New(newTimeAxis(t, 0, 2, 32), p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := a.Add(b); !errors.Is(err, ErrIncompatibleOperand) {
		t.Fatalf("want ErrIncompatibleOperand, got %v", err)
	}
}

func TestValueDefined(t *testing.T) {
	ta := newTimeAxis(t, 0, 1, 8)
	vals := []complex128{1, 2, 3, 4, 5, 6, 7, 8}
	f, err := NewValueDefined(ta, Params{
		Kind:                 KindValueDefined,
		ReorganizationEnergy: 0.01,
	}, vals)
	if err != nil {
		t.Fatalf("NewValueDefined: %v", err)
	}
	if f.CutoffTime() != ta.Max() {
		t.Fatalf("default cutoff = %v, want grid max %v", f.CutoffTime(), ta.Max())
	}
	for i := range vals {
		if f.Values()[i] != vals[i] {
			t.Fatalf("sample %d = %v, want %v", i, f.Values()[i], vals[i])
		}
	}

	g, err := NewValueDefined(ta, Params{
		Kind:                 KindValueDefined,
		ReorganizationEnergy: 0.01,
		CutoffTime:           3.5,
	}, vals)
	if err != nil {
		t.Fatalf("NewValueDefined: %v", err)
	}
	if g.CutoffTime() != 3.5 {
		t.Fatalf("supplied cutoff = %v, want 3.5", g.CutoffTime())
	}
}

func TestValueDefinedShapeMismatch(t *testing.T) {
	for _, tc := range []struct {
		grid int
		vals int
	}{
		{grid: 8, vals: 7},
		{grid: 8, vals: 9},
		{grid: 1, vals: 0},
		{grid: 100, vals: 1},
	} {
		ta := newTimeAxis(t, 0, 1, tc.grid)
		_, err := NewValueDefined(ta, Params{Kind: KindValueDefined}, make([]complex128, tc.vals))
		if !errors.Is(err, ErrShapeMismatch) {
			t.Fatalf("grid %d / values %d: want ErrShapeMismatch, got %v", tc.grid, tc.vals, err)
		}
	}
}

func TestConfigurationErrors(t *testing.T) {
	ta := newTimeAxis(t, 0, 1, 8)
	for name, p := range map[string]Params{
		"unknown kind":       {},
		"missing temp":       {Kind: KindOverdampedBrownianHighTemp, CorrelationTime: 100, ReorganizationEnergy: 1},
		"missing cortime":    {Kind: KindOverdampedBrownian, Temperature: 300, ReorganizationEnergy: 1},
		"negative matsubara": {Kind: KindOverdampedBrownian, Temperature: 300, CorrelationTime: 100, Matsubara: -1},
		"cutoff on analytic": {Kind: KindOverdampedBrownianHighTemp, Temperature: 300, CorrelationTime: 100, CutoffTime: 10},
		"bad units":          {Kind: KindOverdampedBrownianHighTemp, Temperature: 300, CorrelationTime: 100, Units: units.Energy(99)},
	} {
		if _, err := New(ta, p); !errors.Is(err, ErrConfiguration) {
			t.Fatalf("%s: want ErrConfiguration, got %v", name, err)
		}
	}
	// Value-defined kind through the analytic constructor.
	if _, err := New(ta, Params{Kind: KindValueDefined}); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("New with KindValueDefined: want ErrConfiguration")
	}
	// Analytic kind through the value-defined constructor.
	_, err := NewValueDefined(ta, Params{
		Kind:            KindOverdampedBrownian,
		Temperature:     300,
		CorrelationTime: 100,
	}, make([]complex128, 8))
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("NewValueDefined with analytic kind: want ErrConfiguration")
	}
}

func TestCopyPreservesRawValues(t *testing.T) {
	ta := newTimeAxis(t, 0, 1, 4)
	vals := []complex128{1 + 1i, 2, 3, 4}
	f, err := NewValueDefined(ta, Params{Kind: KindValueDefined}, vals)
	if err != nil {
		t.Fatalf("NewValueDefined: %v", err)
	}
	c := f.Copy()
	for i := range vals {
		if c.Values()[i] != vals[i] {
			t.Fatalf("copy lost raw sample %d", i)
		}
	}
	// The copy owns its samples.
	c.Values()[0] = -1
	if f.Values()[0] != 1+1i {
		t.Fatalf("copy must not alias the original sample array")
	}
}

func TestRederive(t *testing.T) {
	ta := newTimeAxis(t, 0, 1, 64)
	p := Params{
		Kind:                 KindOverdampedBrownianHighTemp,
		Temperature:          300,
		CorrelationTime:      100,
		ReorganizationEnergy: 1,
	}
	f, err := New(ta, p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	other, err := New(ta, p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := f.Add(other); err != nil {
		t.Fatalf("Add: %v", err)
	}

	r, err := f.Rederive()
	if err != nil {
		t.Fatalf("Rederive: %v", err)
	}
	if r.IsComposed() {
		t.Fatalf("rederived function must not carry the composed flag")
	}
	fresh, err := New(ta, p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := range fresh.Values() {
		if r.Values()[i] != fresh.Values()[i] {
			t.Fatalf("rederived samples differ at %d", i)
		}
	}

	vd, err := NewValueDefined(ta, Params{Kind: KindValueDefined}, make([]complex128, 64))
	if err != nil {
		t.Fatalf("NewValueDefined: %v", err)
	}
	if _, err := vd.Rederive(); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("Rederive on value-defined: want ErrConfiguration, got %v", err)
	}
}

func TestParseKindRoundTrip(t *testing.T) {
	for _, k := range []Kind{KindOverdampedBrownianHighTemp, KindOverdampedBrownian, KindValueDefined} {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", k.String(), err)
		}
		if got != k {
			t.Fatalf("ParseKind(%q) = %v, want %v", k.String(), got, k)
		}
	}
	if _, err := ParseKind("Underdamped"); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("unknown name must wrap ErrConfiguration")
	}
}
