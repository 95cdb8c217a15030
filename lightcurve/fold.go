package lightcurve

import (
	"math"
	"sort"
)

// Folded is a light curve folded at a fixed period: rows sorted by phase,
// with the originating timestamps retained.
//
// Phase is in [-period/2, period/2) around the epoch, or in [-0.5, 0.5)
// when phase normalization was requested. Cycle counts completed periods,
// shifted so the earliest cadence is cycle 0.
type Folded struct {
	Phase        []float64
	Flux         []float64
	FluxErr      []float64
	Cycle        []int
	TimeOriginal []float64

	Period          float64
	EpochTime       float64
	NormalizedPhase bool
}

type foldConfig struct {
	epochTime      float64
	epochSet       bool
	normalizePhase bool
}

// FoldOption configures Fold.
type FoldOption func(*foldConfig)

// WithEpochTime sets the reference time mapped to phase zero. Without it
// the first cadence time is used.
func WithEpochTime(t float64) FoldOption {
	return func(cfg *foldConfig) {
		cfg.epochTime = t
		cfg.epochSet = true
	}
}

// WithNormalizePhase divides phases by the period, mapping them to
// [-0.5, 0.5).
func WithNormalizePhase(enabled bool) FoldOption {
	return func(cfg *foldConfig) {
		cfg.normalizePhase = enabled
	}
}

// Fold phase-folds the light curve at the given period. The result is
// sorted by phase; ties keep time order.
func (lc *LightCurve) Fold(period float64, opts ...FoldOption) (*Folded, error) {
	if lc.Len() == 0 {
		return nil, ErrEmpty
	}

	if !(period > 0) || math.IsInf(period, 0) {
		return nil, ErrInvalidPeriod
	}

	var cfg foldConfig

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	epoch := lc.Time[0]
	if cfg.epochSet {
		epoch = cfg.epochTime
	}

	n := lc.Len()
	f := &Folded{
		Phase:           make([]float64, n),
		Flux:            make([]float64, n),
		Cycle:           make([]int, n),
		TimeOriginal:    make([]float64, n),
		Period:          period,
		EpochTime:       epoch,
		NormalizedPhase: cfg.normalizePhase,
	}

	if lc.FluxErr != nil {
		f.FluxErr = make([]float64, n)
	}

	order := make([]int, n)
	phase := make([]float64, n)
	cycle := make([]int, n)
	minCycle := math.MaxInt

	for i, t := range lc.Time {
		shifted := t - epoch + 0.5*period

		m := math.Mod(shifted, period)
		if m < 0 {
			m += period
		}

		phase[i] = m - 0.5*period
		cycle[i] = int(math.Floor(shifted / period))

		if cycle[i] < minCycle {
			minCycle = cycle[i]
		}

		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		return phase[order[a]] < phase[order[b]]
	})

	for dst, src := range order {
		p := phase[src]
		if cfg.normalizePhase {
			p /= period
		}

		f.Phase[dst] = p
		f.Flux[dst] = lc.Flux[src]
		f.Cycle[dst] = cycle[src] - minCycle
		f.TimeOriginal[dst] = lc.Time[src]

		if f.FluxErr != nil {
			f.FluxErr[dst] = lc.FluxErr[src]
		}
	}

	return f, nil
}
