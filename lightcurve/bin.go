package lightcurve

import (
	"math"
	"sort"
)

type binConfig struct {
	width float64
	count int
}

// BinOption configures Bin. Exactly one of WithBinWidth or WithBinCount
// must be supplied.
type BinOption func(*binConfig)

// WithBinWidth bins by fixed width in time units.
func WithBinWidth(width float64) BinOption {
	return func(cfg *binConfig) {
		cfg.width = width
	}
}

// WithBinCount splits the time span into count equal bins.
func WithBinCount(count int) BinOption {
	return func(cfg *binConfig) {
		cfg.count = count
	}
}

// Bin averages the light curve into fixed-width time bins. Bin time is
// the bin midpoint; bin flux is the mean of the finite fluxes. Flux error
// is propagated in quadrature when uncertainties are present, otherwise
// estimated as the standard error of the bin. Empty bins are dropped.
func (lc *LightCurve) Bin(opts ...BinOption) (*LightCurve, error) {
	if lc.Len() == 0 {
		return nil, ErrEmpty
	}

	var cfg binConfig

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if (cfg.width <= 0 && cfg.count <= 0) || (cfg.width > 0 && cfg.count > 0) {
		return nil, ErrInvalidBins
	}

	times := append([]float64(nil), lc.Time...)
	sort.Float64s(times)

	t0 := times[0]
	span := times[len(times)-1] - t0

	width := cfg.width
	nBins := cfg.count

	if nBins > 0 {
		if span == 0 {
			nBins = 1
			width = 1
		} else {
			width = span / float64(nBins)
		}
	} else {
		nBins = int(math.Floor(span/width)) + 1
	}

	sumFlux := make([]float64, nBins)
	sumSq := make([]float64, nBins)
	sumErrSq := make([]float64, nBins)
	counts := make([]int, nBins)

	for i, t := range lc.Time {
		f := lc.Flux[i]
		if math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}

		b := int((t - t0) / width)
		if b >= nBins {
			b = nBins - 1
		}

		if b < 0 {
			b = 0
		}

		sumFlux[b] += f
		sumSq[b] += f * f
		counts[b]++

		if lc.FluxErr != nil {
			sumErrSq[b] += lc.FluxErr[i] * lc.FluxErr[i]
		}
	}

	out := &LightCurve{TargetID: lc.TargetID, Label: lc.Label}

	for b := 0; b < nBins; b++ {
		if counts[b] == 0 {
			continue
		}

		n := float64(counts[b])
		mean := sumFlux[b] / n

		out.Time = append(out.Time, t0+(float64(b)+0.5)*width)
		out.Flux = append(out.Flux, mean)

		var errOut float64
		if lc.FluxErr != nil {
			errOut = math.Sqrt(sumErrSq[b]) / n
		} else {
			variance := sumSq[b]/n - mean*mean
			if variance < 0 {
				variance = 0
			}

			errOut = math.Sqrt(variance / n)
		}

		out.FluxErr = append(out.FluxErr, errOut)
	}

	if len(out.Time) == 0 {
		return nil, ErrEmpty
	}

	return out, nil
}
