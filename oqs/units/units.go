// Package units handles energy-scale unit systems for open-quantum-system
// calculations.
//
// The internal (canonical) energy unit is angular frequency in rad/fs, with
// time measured in femtoseconds. All physics code in this module stores
// energies internally; conversion happens exactly once, at the boundary where
// caller-supplied parameters enter a constructor.
//
// There is no package-level "current unit" state. Conversions take the unit
// tag explicitly; [Scope] exists for callers porting code written against a
// scoped unit context and is plain stack-disciplined data.
package units

import (
	"errors"
	"fmt"
)

// Energy identifies an energy-scale unit system.
type Energy int

const (
	// Internal is angular frequency in rad/fs, the canonical unit.
	// It is the zero value, so an unset unit field means "already internal".
	Internal Energy = iota

	// WaveNumber is spectroscopic wavenumbers, 1/cm.
	WaveNumber

	// ElectronVolt is energy in eV.
	ElectronVolt

	// MilliElectronVolt is energy in meV.
	MilliElectronVolt

	// Terahertz is ordinary (non-angular) frequency in THz.
	Terahertz

	// Kelvin expresses an energy as kB times a temperature in K.
	Kelvin
)

// ErrUnknownUnit reports an unit tag outside the closed set.
var ErrUnknownUnit = errors.New("units: unknown energy unit")

// Physical constants, CODATA values.
const (
	// speedOfLight in cm/fs.
	speedOfLight = 2.99792458e-5

	// boltzmannWaveNumber is kB in 1/cm per Kelvin.
	boltzmannWaveNumber = 0.695034800

	// hbarEVfs is the reduced Planck constant in eV*fs.
	hbarEVfs = 0.6582119569
)

// Conversion factors from each unit to rad/fs.
const (
	twoPi = 6.283185307179586

	waveNumberToInternal   = twoPi * speedOfLight
	electronVoltToInternal = 1.0 / hbarEVfs
	terahertzToInternal    = twoPi * 1e-3

	// BoltzmannInternal is kB in internal energy units (rad/fs) per Kelvin.
	BoltzmannInternal = boltzmannWaveNumber * waveNumberToInternal
)

// String returns the conventional name of the unit system.
func (u Energy) String() string {
	switch u {
	case Internal:
		return "int"
	case WaveNumber:
		return "1/cm"
	case ElectronVolt:
		return "eV"
	case MilliElectronVolt:
		return "meV"
	case Terahertz:
		return "THz"
	case Kelvin:
		return "K"
	default:
		return fmt.Sprintf("Energy(%d)", int(u))
	}
}

// Parse returns the unit tag for a conventional name.
func Parse(name string) (Energy, error) {
	switch name {
	case "int", "rad/fs":
		return Internal, nil
	case "1/cm", "cm-1":
		return WaveNumber, nil
	case "eV":
		return ElectronVolt, nil
	case "meV":
		return MilliElectronVolt, nil
	case "THz":
		return Terahertz, nil
	case "K":
		return Kelvin, nil
	default:
		return Internal, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
	}
}

// factor returns the multiplicative factor from u to internal units.
func (u Energy) factor() (float64, error) {
	switch u {
	case Internal:
		return 1, nil
	case WaveNumber:
		return waveNumberToInternal, nil
	case ElectronVolt:
		return electronVoltToInternal, nil
	case MilliElectronVolt:
		return electronVoltToInternal * 1e-3, nil
	case Terahertz:
		return terahertzToInternal, nil
	case Kelvin:
		return BoltzmannInternal, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownUnit, int(u))
	}
}

// ToInternal converts an energy value from unit system u to internal units.
func ToInternal(v float64, u Energy) (float64, error) {
	f, err := u.factor()
	if err != nil {
		return 0, err
	}
	return v * f, nil
}

// FromInternal converts an energy value from internal units to unit system u.
func FromInternal(v float64, u Energy) (float64, error) {
	f, err := u.factor()
	if err != nil {
		return 0, err
	}
	return v / f, nil
}
