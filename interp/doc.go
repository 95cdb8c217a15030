// Package interp provides shape-preserving interpolation over irregularly
// sampled series.
//
// The central type is [Pchip], a monotone piecewise cubic Hermite
// interpolant (Fritsch-Carlson slopes). Between any two samples the
// interpolant never overshoots the bracketing values, which makes it safe
// for resampling instrumental trends onto a different cadence grid.
//
// Outside the fitted domain, [Pchip.Evaluate] extends the first or last
// cubic segment polynomial. This boundary rule is deterministic: the same
// inputs always produce the same extrapolated values.
package interp
