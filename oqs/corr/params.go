package corr

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-bath/oqs/units"
)

// Errors returned by correlation-function constructors and operations.
var (
	// ErrConfiguration reports an unknown kind or an invalid/missing
	// construction parameter.
	ErrConfiguration = errors.New("corr: invalid configuration")

	// ErrIncompatibleOperand reports an attempt to combine correlation
	// functions defined on different grids or at different temperatures.
	ErrIncompatibleOperand = errors.New("corr: incompatible correlation functions")

	// ErrShapeMismatch reports a raw value array whose length does not match
	// the grid length.
	ErrShapeMismatch = errors.New("corr: value count must match grid length")
)

// Kind identifies a correlation-function model.
type Kind int

const (
	// KindUnknown is the zero value and never valid for construction.
	KindUnknown Kind = iota

	// KindOverdampedBrownianHighTemp is the overdamped Brownian oscillator in
	// the high-temperature (classical) limit.
	KindOverdampedBrownianHighTemp

	// KindOverdampedBrownian is the full finite-temperature overdamped
	// Brownian oscillator with a truncated Matsubara series.
	KindOverdampedBrownian

	// KindValueDefined marks a correlation function tabulated directly from
	// caller-supplied samples.
	KindValueDefined
)

// String returns the conventional name of the kind.
func (k Kind) String() string {
	switch k {
	case KindOverdampedBrownianHighTemp:
		return "OverdampedBrownian-HighTemperature"
	case KindOverdampedBrownian:
		return "OverdampedBrownian"
	case KindValueDefined:
		return "Value-defined"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind returns the kind for a conventional name.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "OverdampedBrownian-HighTemperature":
		return KindOverdampedBrownianHighTemp, nil
	case "OverdampedBrownian":
		return KindOverdampedBrownian, nil
	case "Value-defined":
		return KindValueDefined, nil
	default:
		return KindUnknown, fmt.Errorf("%w: unknown kind %q", ErrConfiguration, name)
	}
}

// DefaultMatsubaraTerms is the Matsubara truncation order used when
// Params.Matsubara is zero. The truncation is an accuracy/performance knob:
// more terms reduce the series-truncation error at proportional cost.
const DefaultMatsubaraTerms = 10

// Params configures a correlation function.
//
// Temperature is in Kelvin, CorrelationTime in fs. ReorganizationEnergy is
// given in the Units system and converted to internal units at construction;
// the zero Units value means it is already internal.
type Params struct {
	Kind Kind

	Temperature     float64
	CorrelationTime float64

	ReorganizationEnergy float64
	Units                units.Energy

	// Matsubara is the series truncation order for KindOverdampedBrownian.
	// Zero selects DefaultMatsubaraTerms.
	Matsubara int

	// CutoffTime applies to KindValueDefined only. Zero selects the grid
	// maximum. Analytic kinds derive their own cutoff (5 times the
	// correlation time).
	CutoffTime float64
}

// Validate checks the parameter set for the declared kind. Every failure
// wraps ErrConfiguration with a distinct reason.
func (p *Params) Validate() error {
	switch p.Kind {
	case KindOverdampedBrownianHighTemp, KindOverdampedBrownian:
		if p.Temperature <= 0 {
			return fmt.Errorf("%w: temperature must be > 0 K: %v", ErrConfiguration, p.Temperature)
		}
		if p.CorrelationTime <= 0 {
			return fmt.Errorf("%w: correlation time must be > 0 fs: %v", ErrConfiguration, p.CorrelationTime)
		}
		if p.Matsubara < 0 {
			return fmt.Errorf("%w: matsubara order must be >= 0: %d", ErrConfiguration, p.Matsubara)
		}
		if p.CutoffTime != 0 {
			return fmt.Errorf("%w: cutoff time is derived for analytic kinds", ErrConfiguration)
		}
	case KindValueDefined:
		if p.Temperature < 0 {
			return fmt.Errorf("%w: temperature must be >= 0 K: %v", ErrConfiguration, p.Temperature)
		}
		if p.CutoffTime < 0 {
			return fmt.Errorf("%w: cutoff time must be >= 0 fs: %v", ErrConfiguration, p.CutoffTime)
		}
	default:
		return fmt.Errorf("%w: unknown kind %v", ErrConfiguration, p.Kind)
	}
	if _, err := units.ToInternal(0, p.Units); err != nil {
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return nil
}

// matsubaraOrder returns the effective truncation order.
func (p *Params) matsubaraOrder() int {
	if p.Matsubara == 0 {
		return DefaultMatsubaraTerms
	}
	return p.Matsubara
}
