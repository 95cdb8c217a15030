// Package metrics scores the quality of a systematics correction by
// comparing light curves before and after, following the goodness
// diagnostics used for CBV-corrected photometry.
package metrics

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/Nschanche/lightkurve/lightcurve"
)

var (
	// ErrNoData indicates an empty input set.
	ErrNoData = errors.New("metrics: no data")
	// ErrGridMismatch indicates light curves on different cadence grids.
	ErrGridMismatch = errors.New("metrics: cadence grids do not match")
	// ErrNoCadence indicates a light curve without cadence numbers.
	ErrNoCadence = errors.New("metrics: light curve has no cadence numbers")
)

// Correlation computes the target-to-target correlation matrix of a set
// of flux series sampled on a common cadence grid. Each series is
// L2-normalized, so constant series correlate at exactly 1; a zero series
// correlates at 0 with everything.
func Correlation(fluxes [][]float64) ([][]float64, error) {
	if len(fluxes) == 0 {
		return nil, ErrNoData
	}

	n := len(fluxes[0])
	for _, f := range fluxes {
		if len(f) != n {
			return nil, ErrGridMismatch
		}
	}

	if n == 0 {
		return nil, ErrNoData
	}

	normalized := make([][]float64, len(fluxes))

	for k, f := range fluxes {
		normalized[k] = make([]float64, n)

		var sumSq float64
		for _, v := range f {
			sumSq += v * v
		}

		if sumSq == 0 {
			continue
		}

		vecmath.ScaleBlock(normalized[k], f, 1/math.Sqrt(sumSq))
	}

	out := make([][]float64, len(fluxes))
	for i := range out {
		out[i] = make([]float64, len(fluxes))
	}

	for i := range normalized {
		out[i][i] = 1

		for j := i + 1; j < len(normalized); j++ {
			var dot float64
			for c := 0; c < n; c++ {
				dot += normalized[i][c] * normalized[j][c]
			}

			out[i][j] = dot
			out[j][i] = dot
		}
	}

	return out, nil
}

// AlignTo reprojects lc onto the cadence grid of ref. The output has one
// row per ref cadence, in ref order, taking times from ref; cadences
// missing from lc get NaN flux (and NaN flux error when lc carries
// uncertainties). Both curves must have cadence numbers.
func AlignTo(lc, ref *lightcurve.LightCurve) (*lightcurve.LightCurve, error) {
	if lc.CadenceNumbers == nil || ref.CadenceNumbers == nil {
		return nil, ErrNoCadence
	}

	if ref.Len() == 0 {
		return nil, ErrNoData
	}

	byCadence := make(map[int]int, lc.Len())
	for i, c := range lc.CadenceNumbers {
		byCadence[c] = i
	}

	out := &lightcurve.LightCurve{
		Time:           append([]float64(nil), ref.Time...),
		Flux:           make([]float64, ref.Len()),
		CadenceNumbers: append([]int(nil), ref.CadenceNumbers...),
		TargetID:       lc.TargetID,
		Label:          lc.Label,
	}

	if lc.FluxErr != nil {
		out.FluxErr = make([]float64, ref.Len())
	}

	for i, c := range ref.CadenceNumbers {
		src, ok := byCadence[c]
		if !ok {
			out.Flux[i] = math.NaN()
			if out.FluxErr != nil {
				out.FluxErr[i] = math.NaN()
			}

			continue
		}

		out.Flux[i] = lc.Flux[src]
		if out.FluxErr != nil {
			out.FluxErr[i] = lc.FluxErr[src]
		}
	}

	return out, nil
}
