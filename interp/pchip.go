package interp

import (
	"errors"
	"math"
	"sort"
)

var (
	// ErrInsufficientData indicates fewer than two sample points.
	ErrInsufficientData = errors.New("interp: need at least two sample points")
	// ErrUnsorted indicates abscissae that are not strictly increasing.
	ErrUnsorted = errors.New("interp: x values must be strictly increasing")
	// ErrLengthMismatch indicates x and y slices of different lengths.
	ErrLengthMismatch = errors.New("interp: x and y length mismatch")
)

// Pchip is a monotone piecewise cubic Hermite interpolant.
//
// Slopes follow the Fritsch-Carlson construction: a weighted harmonic mean
// of adjacent secants in the interior, a shape-limited three-point estimate
// at the endpoints. With exactly two points the interpolant is linear.
type Pchip struct {
	xs []float64
	ys []float64
	d  []float64
}

// NewPchip fits an interpolant to the sample points (xs[i], ys[i]).
// xs must be strictly increasing and finite; at least two points are
// required. Input slices are copied, not retained.
func NewPchip(xs, ys []float64) (*Pchip, error) {
	if len(xs) != len(ys) {
		return nil, ErrLengthMismatch
	}

	if len(xs) < 2 {
		return nil, ErrInsufficientData
	}

	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return nil, ErrUnsorted
		}
	}

	p := &Pchip{
		xs: append([]float64(nil), xs...),
		ys: append([]float64(nil), ys...),
	}
	p.d = fritschCarlsonSlopes(p.xs, p.ys)

	return p, nil
}

// Domain returns the fitted interval [lo, hi].
func (p *Pchip) Domain() (lo, hi float64) {
	return p.xs[0], p.xs[len(p.xs)-1]
}

// Evaluate returns the interpolant value at x. Outside the domain the
// nearest boundary segment polynomial is extended.
func (p *Pchip) Evaluate(x float64) float64 {
	seg := p.segment(x)
	h := p.xs[seg+1] - p.xs[seg]
	t := (x - p.xs[seg]) / h

	return hermite(t, h, p.ys[seg], p.ys[seg+1], p.d[seg], p.d[seg+1])
}

// EvaluateInto evaluates the interpolant at each x in xs, writing results
// to dst. dst is allocated when nil or too short; the filled slice is
// returned.
func (p *Pchip) EvaluateInto(dst, xs []float64) []float64 {
	if len(dst) < len(xs) {
		dst = make([]float64, len(xs))
	}

	dst = dst[:len(xs)]
	for i, x := range xs {
		dst[i] = p.Evaluate(x)
	}

	return dst
}

// segment returns the index i of the cubic piece [xs[i], xs[i+1]] used to
// evaluate x. Out-of-range x clamps to the first or last piece.
func (p *Pchip) segment(x float64) int {
	n := len(p.xs)
	i := sort.SearchFloat64s(p.xs, x)

	switch {
	case i <= 0:
		return 0
	case i >= n:
		return n - 2
	}

	// SearchFloat64s returns the insertion point; x lies in (xs[i-1], xs[i]].
	return i - 1
}

// hermite evaluates the cubic Hermite basis on a segment of width h with
// endpoint values y0, y1 and endpoint slopes d0, d1, at normalized
// position t in [0, 1] (values outside extend the same polynomial).
func hermite(t, h, y0, y1, d0, d1 float64) float64 {
	t2 := t * t
	t3 := t2 * t

	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2

	return h00*y0 + h10*h*d0 + h01*y1 + h11*h*d1
}

// fritschCarlsonSlopes computes endpoint derivatives for each sample such
// that the resulting Hermite spline preserves local monotonicity.
func fritschCarlsonSlopes(xs, ys []float64) []float64 {
	n := len(xs)
	d := make([]float64, n)

	if n == 2 {
		s := (ys[1] - ys[0]) / (xs[1] - xs[0])
		d[0], d[1] = s, s

		return d
	}

	h := make([]float64, n-1)
	delta := make([]float64, n-1)

	for i := 0; i < n-1; i++ {
		h[i] = xs[i+1] - xs[i]
		delta[i] = (ys[i+1] - ys[i]) / h[i]
	}

	for i := 1; i < n-1; i++ {
		if delta[i-1] == 0 || delta[i] == 0 || oppositeSigns(delta[i-1], delta[i]) {
			d[i] = 0
			continue
		}

		// Weighted harmonic mean of the two adjacent secants.
		w1 := 2*h[i] + h[i-1]
		w2 := h[i] + 2*h[i-1]
		d[i] = (w1 + w2) / (w1/delta[i-1] + w2/delta[i])
	}

	d[0] = edgeSlope(h[0], h[1], delta[0], delta[1])
	d[n-1] = edgeSlope(h[n-2], h[n-3], delta[n-2], delta[n-3])

	return d
}

// edgeSlope estimates the boundary derivative from the two nearest
// intervals using a non-centered three-point formula, limited so the
// boundary segment cannot overshoot.
func edgeSlope(h0, h1, delta0, delta1 float64) float64 {
	d := ((2*h0+h1)*delta0 - h0*delta1) / (h0 + h1)

	switch {
	case delta0 == 0 || oppositeSigns(d, delta0):
		return 0
	case oppositeSigns(delta0, delta1) && math.Abs(d) > 3*math.Abs(delta0):
		return 3 * delta0
	}

	return d
}

func oppositeSigns(a, b float64) bool {
	return (a > 0 && b < 0) || (a < 0 && b > 0)
}
