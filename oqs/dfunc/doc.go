// Package dfunc provides tabulated complex-valued functions over time and
// frequency grids, with discrete Fourier transforms between the two domains.
//
// The transform convention approximates the continuous Fourier integral
// F(w) = Int f(t) exp(-iwt) dt: forward transforms are normalized by the time
// step and rotated to ascending frequency order, so F(0) approximates the
// time integral of the function. Transform lengths must be powers of two;
// callers choose grid sizes accordingly.
package dfunc
