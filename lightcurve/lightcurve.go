// Package lightcurve provides a flux time series record and the pure
// transformations used when preparing a light curve for systematics
// correction: folding, binning, normalization, outlier rejection, and gap
// filling.
//
// A LightCurve is treated as immutable: every operation returns a new
// curve and leaves the receiver untouched.
package lightcurve

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/Nschanche/lightkurve/stats"
)

var (
	// ErrLengthMismatch indicates per-cadence slices of different lengths.
	ErrLengthMismatch = errors.New("lightcurve: column length mismatch")
	// ErrEmpty indicates an operation that needs at least one cadence.
	ErrEmpty = errors.New("lightcurve: empty light curve")
	// ErrInvalidPeriod indicates a non-positive or non-finite fold period.
	ErrInvalidPeriod = errors.New("lightcurve: period must be positive and finite")
	// ErrInvalidBins indicates missing or non-positive binning parameters.
	ErrInvalidBins = errors.New("lightcurve: invalid bin specification")
	// ErrNonPositiveFlux indicates a zero-centered or negative light curve
	// that cannot be normalized.
	ErrNonPositiveFlux = errors.New("lightcurve: median flux must be positive to normalize")
	// ErrInsufficientData indicates too few finite samples for gap filling.
	ErrInsufficientData = errors.New("lightcurve: need at least two finite samples")
)

// LightCurve is one target's flux time series. Time and Flux are required
// and equally long; FluxErr and CadenceNumbers are optional but must match
// the length when present.
//
// Methods never mutate the receiver; they return new curves with freshly
// allocated slices.
type LightCurve struct {
	Time           []float64
	Flux           []float64
	FluxErr        []float64
	CadenceNumbers []int

	TargetID string
	Label    string
}

// New builds a validated light curve from parallel time and flux slices.
// The slices are copied.
func New(time, flux []float64, opts ...CurveOption) (*LightCurve, error) {
	if len(time) != len(flux) {
		return nil, ErrLengthMismatch
	}

	lc := &LightCurve{
		Time: append([]float64(nil), time...),
		Flux: append([]float64(nil), flux...),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(lc)
		}
	}

	if lc.FluxErr != nil && len(lc.FluxErr) != len(lc.Time) {
		return nil, ErrLengthMismatch
	}

	if lc.CadenceNumbers != nil && len(lc.CadenceNumbers) != len(lc.Time) {
		return nil, ErrLengthMismatch
	}

	return lc, nil
}

// CurveOption configures optional light curve columns and metadata.
type CurveOption func(*LightCurve)

// WithFluxErr attaches per-cadence flux uncertainties (copied).
func WithFluxErr(fluxErr []float64) CurveOption {
	return func(lc *LightCurve) {
		lc.FluxErr = append([]float64(nil), fluxErr...)
	}
}

// WithCadenceNumbers attaches per-cadence exposure numbers (copied).
func WithCadenceNumbers(cadences []int) CurveOption {
	return func(lc *LightCurve) {
		lc.CadenceNumbers = append([]int(nil), cadences...)
	}
}

// WithTargetID sets the target identifier.
func WithTargetID(id string) CurveOption {
	return func(lc *LightCurve) {
		lc.TargetID = id
	}
}

// WithLabel sets a display label.
func WithLabel(label string) CurveOption {
	return func(lc *LightCurve) {
		lc.Label = label
	}
}

// Len returns the number of cadences.
func (lc *LightCurve) Len() int {
	return len(lc.Time)
}

// Copy returns a deep copy.
func (lc *LightCurve) Copy() *LightCurve {
	out := &LightCurve{
		Time:     append([]float64(nil), lc.Time...),
		Flux:     append([]float64(nil), lc.Flux...),
		TargetID: lc.TargetID,
		Label:    lc.Label,
	}

	if lc.FluxErr != nil {
		out.FluxErr = append([]float64(nil), lc.FluxErr...)
	}

	if lc.CadenceNumbers != nil {
		out.CadenceNumbers = append([]int(nil), lc.CadenceNumbers...)
	}

	return out
}

// selectRows returns a copy containing only the rows where keep is true.
func (lc *LightCurve) selectRows(keep []bool) *LightCurve {
	out := &LightCurve{TargetID: lc.TargetID, Label: lc.Label}

	for i := range lc.Time {
		if !keep[i] {
			continue
		}

		out.Time = append(out.Time, lc.Time[i])
		out.Flux = append(out.Flux, lc.Flux[i])

		if lc.FluxErr != nil {
			out.FluxErr = append(out.FluxErr, lc.FluxErr[i])
		}

		if lc.CadenceNumbers != nil {
			out.CadenceNumbers = append(out.CadenceNumbers, lc.CadenceNumbers[i])
		}
	}

	return out
}

// RemoveNaNs returns a copy with all non-finite flux rows dropped.
func (lc *LightCurve) RemoveNaNs() *LightCurve {
	keep := make([]bool, lc.Len())
	for i, f := range lc.Flux {
		keep[i] = !math.IsNaN(f) && !math.IsInf(f, 0)
	}

	return lc.selectRows(keep)
}

// Normalize returns a copy with flux and flux error divided by the median
// flux. A zero-centered or negative curve cannot be normalized and yields
// ErrNonPositiveFlux.
func (lc *LightCurve) Normalize() (*LightCurve, error) {
	if lc.Len() == 0 {
		return nil, ErrEmpty
	}

	med := stats.Median(lc.Flux)
	if math.IsNaN(med) || med <= 0 {
		return nil, ErrNonPositiveFlux
	}

	out := lc.Copy()
	vecmath.ScaleBlock(out.Flux, lc.Flux, 1/med)

	if lc.FluxErr != nil {
		vecmath.ScaleBlock(out.FluxErr, lc.FluxErr, 1/med)
	}

	return out, nil
}

// Append returns the concatenation of lc and other, preserving row order.
// Optional columns survive only when present on both curves.
func (lc *LightCurve) Append(other *LightCurve) *LightCurve {
	out := &LightCurve{
		Time:     append(append([]float64(nil), lc.Time...), other.Time...),
		Flux:     append(append([]float64(nil), lc.Flux...), other.Flux...),
		TargetID: lc.TargetID,
		Label:    lc.Label,
	}

	if lc.FluxErr != nil && other.FluxErr != nil {
		out.FluxErr = append(append([]float64(nil), lc.FluxErr...), other.FluxErr...)
	}

	if lc.CadenceNumbers != nil && other.CadenceNumbers != nil {
		out.CadenceNumbers = append(append([]int(nil), lc.CadenceNumbers...), other.CadenceNumbers...)
	}

	return out
}
