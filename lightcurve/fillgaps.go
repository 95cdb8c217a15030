package lightcurve

import (
	"math"

	"github.com/Nschanche/lightkurve/interp"
	"github.com/Nschanche/lightkurve/stats"
)

// FillMethod selects how missing or non-finite fluxes are replaced.
type FillMethod int

const (
	// FillInterpolate fills with shape-preserving cubic interpolation over
	// the finite samples (the default).
	FillInterpolate FillMethod = iota
	// FillZero fills with zeros.
	FillZero
)

type fillConfig struct {
	method FillMethod
}

// FillOption configures FillGaps.
type FillOption func(*fillConfig)

// WithFillMethod selects the replacement strategy for filled cadences.
func WithFillMethod(m FillMethod) FillOption {
	return func(cfg *fillConfig) {
		cfg.method = m
	}
}

// FillGaps returns a copy with missing cadences inserted. The nominal
// cadence period is the median of the successive time differences; any
// step larger than 1.5 periods is treated as a gap and filled with evenly
// spaced cadences. Inserted rows and pre-existing non-finite fluxes are
// replaced according to the fill method. Flux errors on filled rows are
// zero; cadence numbers, when present, are extended arithmetically.
//
// Interpolation-based filling needs at least two finite samples.
func (lc *LightCurve) FillGaps(opts ...FillOption) (*LightCurve, error) {
	if lc.Len() < 2 {
		return nil, ErrInsufficientData
	}

	var cfg fillConfig

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	diffs := make([]float64, lc.Len()-1)
	for i := 1; i < lc.Len(); i++ {
		diffs[i-1] = lc.Time[i] - lc.Time[i-1]
	}

	dt := stats.Median(diffs)
	if math.IsNaN(dt) || dt <= 0 {
		return nil, ErrInsufficientData
	}

	out := &LightCurve{TargetID: lc.TargetID, Label: lc.Label}
	filled := []bool{}

	hasErr := lc.FluxErr != nil
	hasCadence := lc.CadenceNumbers != nil

	appendRow := func(t, f, e float64, isFill bool) {
		out.Time = append(out.Time, t)
		out.Flux = append(out.Flux, f)
		filled = append(filled, isFill)

		if hasErr {
			out.FluxErr = append(out.FluxErr, e)
		}
	}

	for i := 0; i < lc.Len(); i++ {
		if i > 0 {
			step := lc.Time[i] - lc.Time[i-1]
			if step > 1.5*dt {
				missing := int(math.Round(step/dt)) - 1
				for m := 1; m <= missing; m++ {
					t := lc.Time[i-1] + step*float64(m)/float64(missing+1)
					appendRow(t, math.NaN(), 0, true)
				}
			}
		}

		var e float64
		if hasErr {
			e = lc.FluxErr[i]
		}

		f := lc.Flux[i]
		isFill := math.IsNaN(f) || math.IsInf(f, 0)

		if isFill && hasErr {
			e = 0
		}

		appendRow(lc.Time[i], f, e, isFill)
	}

	if err := fillValues(out, filled, cfg.method); err != nil {
		return nil, err
	}

	if hasCadence {
		out.CadenceNumbers = extendCadenceNumbers(lc, out.Time, dt)
	}

	return out, nil
}

// fillValues replaces the flux of flagged rows in place.
func fillValues(lc *LightCurve, filled []bool, method FillMethod) error {
	if method == FillZero {
		for i, isFill := range filled {
			if isFill {
				lc.Flux[i] = 0
			}
		}

		return nil
	}

	var knownT, knownF []float64

	for i, isFill := range filled {
		if !isFill {
			knownT = append(knownT, lc.Time[i])
			knownF = append(knownF, lc.Flux[i])
		}
	}

	if len(knownT) < 2 {
		return ErrInsufficientData
	}

	p, err := interp.NewPchip(knownT, knownF)
	if err != nil {
		return err
	}

	for i, isFill := range filled {
		if isFill {
			lc.Flux[i] = p.Evaluate(lc.Time[i])
		}
	}

	return nil
}

// extendCadenceNumbers assigns cadence numbers to the filled grid by
// rounding each time offset to a whole number of cadence periods from the
// first observed cadence.
func extendCadenceNumbers(lc *LightCurve, times []float64, dt float64) []int {
	base := lc.CadenceNumbers[0]
	t0 := lc.Time[0]

	out := make([]int, len(times))
	for i, t := range times {
		out[i] = base + int(math.Round((t-t0)/dt))
	}

	return out
}
