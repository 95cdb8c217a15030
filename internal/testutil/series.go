package testutil

import (
	"math"
	"math/rand"
)

// TimeGrid generates n evenly spaced timestamps starting at start.
func TimeGrid(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// ConstantFlux generates a flat light curve at the given level.
func ConstantFlux(level float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = level
	}
	return out
}

// SineFlux generates a sinusoidal flux series evaluated at times, with
// the given period, amplitude, and baseline offset.
func SineFlux(times []float64, period, amplitude, offset float64) []float64 {
	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = offset + amplitude*math.Sin(2*math.Pi*t/period)
	}
	return out
}

// NoisyFlux adds seeded white noise of the given amplitude to a constant
// level, for reproducible tests.
func NoisyFlux(seed int64, level, amplitude float64, n int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = level + (rng.Float64()*2-1)*amplitude
	}
	return out
}

// CadenceRange generates n consecutive cadence numbers starting at first.
func CadenceRange(first, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = first + i
	}
	return out
}
