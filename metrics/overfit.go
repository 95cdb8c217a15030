package metrics

import (
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/Nschanche/lightkurve/lightcurve"
	"github.com/Nschanche/lightkurve/stats"
)

// Overfit measures how much spectral power a correction injected into a
// light curve. It compares the power spectra of the original and
// corrected curves on their shared cadence grid: 1 means no power was
// added at any frequency (the correction only removed signal), and the
// score falls toward 0 as added power outgrows the photometric noise
// floor estimated from the original curve's flux errors.
//
// Score = noise / (noise + added), where added is the mean positive
// power excess of the corrected spectrum and noise is the mean squared
// flux error. An identity correction scores exactly 1; adding power to a
// noiseless curve scores exactly 0.
//
// The curves must share an equally spaced time grid of at least two
// cadences.
func Overfit(original, corrected *lightcurve.LightCurve) (float64, error) {
	if original.Len() < 2 {
		return 0, ErrNoData
	}

	if original.Len() != corrected.Len() {
		return 0, ErrGridMismatch
	}

	for i := range original.Time {
		if original.Time[i] != corrected.Time[i] {
			return 0, ErrGridMismatch
		}
	}

	pOrig, err := powerSpectrum(original.Flux)
	if err != nil {
		return 0, err
	}

	pCorr, err := powerSpectrum(corrected.Flux)
	if err != nil {
		return 0, err
	}

	var added float64
	for k := range pOrig {
		if d := pCorr[k] - pOrig[k]; d > 0 {
			added += d
		}
	}

	added /= float64(len(pOrig))

	if added == 0 {
		return 1, nil
	}

	var noise float64
	if original.FluxErr != nil {
		for _, e := range original.FluxErr {
			noise += e * e
		}

		noise /= float64(original.Len())
	}

	return noise / (noise + added), nil
}

// powerSpectrum returns the one-sided Hann-windowed power spectrum of
// flux with the mean removed, excluding the DC bin.
func powerSpectrum(flux []float64) ([]float64, error) {
	n := len(flux)
	mean := stats.Mean(flux)

	size := nextPowerOf2(n)

	in := make([]complex128, size)

	var windowPower float64

	for i, f := range flux {
		// Hann window keeps leakage from swamping the comparison.
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		windowPower += w * w
		in[i] = complex((f-mean)*w, 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, err
	}

	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return nil, err
	}

	bins := size/2 + 1

	re := make([]float64, bins-1)
	im := make([]float64, bins-1)

	for k := 1; k < bins; k++ {
		re[k-1] = real(out[k])
		im[k-1] = imag(out[k])
	}

	power := make([]float64, bins-1)
	vecmath.Power(power, re, im)

	if windowPower > 0 {
		vecmath.ScaleBlock(power, power, 1/windowPower)
	}

	return power, nil
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size *= 2
	}

	return size
}
