package cbv

import (
	"fmt"
	"math"

	"github.com/Nschanche/lightkurve/interp"
)

type interpConfig struct {
	extrapolate bool
}

// Option configures Interpolate.
type Option func(*interpConfig)

// WithExtrapolate controls handling of target times outside the table's
// time range. When enabled, the boundary cubic segment is extended beyond
// its domain; when disabled (the default), out-of-range rows are filled
// with zeros. Out-of-range rows carry the gap flag either way.
func WithExtrapolate(enabled bool) Option {
	return func(cfg *interpConfig) {
		cfg.extrapolate = enabled
	}
}

// Interpolate resamples every basis vector at the target grid's
// timestamps using shape-preserving monotone cubic interpolation. Cadence
// numbers play no role; the output simply adopts the grid's cadence
// numbers and times.
//
// Rows at in-range times are interpolated with the gap flag cleared. Rows
// at out-of-range times follow the WithExtrapolate rule and always have
// the gap flag set, marking their values as lower confidence. Rows at NaN
// times get NaN values and the gap flag. The input table is not modified.
func Interpolate(t *Table, grid TargetGrid, opts ...Option) (*Table, error) {
	if err := grid.validate(); err != nil {
		return nil, err
	}

	if t.Len() < 2 {
		return nil, ErrInsufficientData
	}

	var cfg interpConfig

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := t.emptyLike(grid)

	lo := t.times[0]
	hi := t.times[t.Len()-1]

	for i, tt := range grid.Times {
		if math.IsNaN(tt) || tt < lo || tt > hi {
			out.gaps[i] = true
		}
	}

	for k, vec := range t.vectors {
		p, err := interp.NewPchip(t.times, vec)
		if err != nil {
			return nil, fmt.Errorf("cbv: basis vector %d: %w", k+1, err)
		}

		dst := out.vectors[k]

		for i, tt := range grid.Times {
			switch {
			case math.IsNaN(tt):
				dst[i] = math.NaN()
			case tt >= lo && tt <= hi:
				dst[i] = p.Evaluate(tt)
			case cfg.extrapolate:
				dst[i] = p.Evaluate(tt)
			default:
				dst[i] = 0
			}
		}
	}

	return out, nil
}
