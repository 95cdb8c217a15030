package lightcurve

import (
	"math"

	"github.com/Nschanche/lightkurve/stats"
)

type outlierConfig struct {
	sigmaLower float64
	sigmaUpper float64
	maxIter    int
}

// OutlierOption configures RemoveOutliers.
type OutlierOption func(*outlierConfig)

// WithSigma sets a symmetric clipping threshold in standard deviations.
func WithSigma(sigma float64) OutlierOption {
	return func(cfg *outlierConfig) {
		cfg.sigmaLower = sigma
		cfg.sigmaUpper = sigma
	}
}

// WithSigmaLower sets the lower clipping threshold only. Use math.Inf(1)
// to keep all downward excursions.
func WithSigmaLower(sigma float64) OutlierOption {
	return func(cfg *outlierConfig) {
		cfg.sigmaLower = sigma
	}
}

// WithSigmaUpper sets the upper clipping threshold only.
func WithSigmaUpper(sigma float64) OutlierOption {
	return func(cfg *outlierConfig) {
		cfg.sigmaUpper = sigma
	}
}

// WithMaxIterations caps clipping rounds; zero or negative iterates until
// convergence.
func WithMaxIterations(n int) OutlierOption {
	return func(cfg *outlierConfig) {
		cfg.maxIter = n
	}
}

// RemoveOutliers drops flux outliers by iterative sigma clipping around
// the median (default 5 sigma both sides). It returns the cleaned curve
// and the outlier mask over the original rows, where true marks a removed
// cadence. Non-finite fluxes are always removed.
func (lc *LightCurve) RemoveOutliers(opts ...OutlierOption) (*LightCurve, []bool) {
	cfg := outlierConfig{
		sigmaLower: 5,
		sigmaUpper: 5,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	clipped := stats.SigmaClip(lc.Flux, cfg.sigmaLower, cfg.sigmaUpper, cfg.maxIter)

	keep := make([]bool, len(clipped))
	for i, c := range clipped {
		keep[i] = !c
	}

	return lc.selectRows(keep), clipped
}

// TransitMask returns a boolean mask marking cadences that fall inside a
// transit of any of the given planets. The three slices are parallel:
// one period, epoch time, and total transit duration per planet.
func (lc *LightCurve) TransitMask(periods, epochTimes, durations []float64) ([]bool, error) {
	if len(periods) != len(epochTimes) || len(periods) != len(durations) {
		return nil, ErrLengthMismatch
	}

	mask := make([]bool, lc.Len())

	for p := range periods {
		period := periods[p]
		if !(period > 0) || math.IsInf(period, 0) {
			return nil, ErrInvalidPeriod
		}

		half := durations[p] / 2

		for i, t := range lc.Time {
			m := math.Mod(t-epochTimes[p]+0.5*period, period)
			if m < 0 {
				m += period
			}

			phase := m - 0.5*period
			if math.Abs(phase) < half {
				mask[i] = true
			}
		}
	}

	return mask, nil
}
