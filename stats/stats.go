// Package stats provides robust statistics for photometric time series:
// streaming mean/standard deviation, median, median absolute deviation,
// and iterative sigma clipping.
//
// Non-finite samples (NaN, Inf) are ignored by the robust estimators and
// always flagged by [SigmaClip].
package stats

import (
	"math"
	"sort"
)

// MeanStd computes mean and population standard deviation in a single pass
// using Welford's online algorithm. Non-finite samples are skipped.
// Returns NaN for both when no finite sample exists.
func MeanStd(values []float64) (mean, std float64) {
	var (
		n  int
		m  float64
		m2 float64
	)

	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}

		n++
		delta := v - m
		m += delta / float64(n)
		m2 += delta * (v - m)
	}

	if n == 0 {
		return math.NaN(), math.NaN()
	}

	return m, math.Sqrt(m2 / float64(n))
}

// Mean returns the mean of the finite samples in values.
func Mean(values []float64) float64 {
	m, _ := MeanStd(values)
	return m
}

// Std returns the population standard deviation of the finite samples.
func Std(values []float64) float64 {
	_, s := MeanStd(values)
	return s
}

// Median returns the median of the finite samples in values, or NaN when
// none exist. The input is not modified.
func Median(values []float64) float64 {
	finite := make([]float64, 0, len(values))

	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}

	if len(finite) == 0 {
		return math.NaN()
	}

	sort.Float64s(finite)

	mid := len(finite) / 2
	if len(finite)%2 == 1 {
		return finite[mid]
	}

	return 0.5 * (finite[mid-1] + finite[mid])
}

// MAD returns the median absolute deviation from the median, computed over
// the finite samples in values.
func MAD(values []float64) float64 {
	med := Median(values)
	if math.IsNaN(med) {
		return math.NaN()
	}

	dev := make([]float64, 0, len(values))

	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			dev = append(dev, math.Abs(v-med))
		}
	}

	return Median(dev)
}

// SigmaClip iteratively flags samples further than sigmaLower standard
// deviations below or sigmaUpper above the median of the surviving
// samples. Iteration stops at a fixpoint or after maxIter rounds
// (maxIter <= 0 means iterate to convergence). Non-finite samples are
// always flagged. The returned mask is true for clipped samples.
func SigmaClip(values []float64, sigmaLower, sigmaUpper float64, maxIter int) []bool {
	clipped := make([]bool, len(values))
	kept := make([]float64, 0, len(values))

	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			clipped[i] = true
		}
	}

	for iter := 0; maxIter <= 0 || iter < maxIter; iter++ {
		kept = kept[:0]

		for i, v := range values {
			if !clipped[i] {
				kept = append(kept, v)
			}
		}

		if len(kept) == 0 {
			break
		}

		center := Median(kept)
		_, spread := MeanStd(kept)

		if spread == 0 {
			break
		}

		changed := false

		for i, v := range values {
			if clipped[i] {
				continue
			}

			if v < center-sigmaLower*spread || v > center+sigmaUpper*spread {
				clipped[i] = true
				changed = true
			}
		}

		if !changed {
			break
		}
	}

	return clipped
}
