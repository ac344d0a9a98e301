// Package corr constructs bath correlation functions for open-quantum-system
// dynamics.
//
// A bath correlation function C(t) describes how environmental fluctuations
// coupled to a quantum system decorrelate over time. The package provides the
// overdamped Brownian oscillator in its high-temperature (classical) limit
// and in its full finite-temperature form with a truncated Matsubara series,
// plus a value-defined kind for externally tabulated data.
//
// All energies are stored in the internal unit system (rad/fs, see the units
// package); the reorganization energy is converted from the caller's declared
// unit system exactly once, at construction.
package corr
