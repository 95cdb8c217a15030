package metrics_test

import (
	"errors"
	"math"
	"testing"

	"github.com/Nschanche/lightkurve/internal/testutil"
	"github.com/Nschanche/lightkurve/lightcurve"
	"github.com/Nschanche/lightkurve/metrics"
)

func TestCorrelationFullyCorrelated(t *testing.T) {
	ones := []float64{1, 1, 1, 1}

	corr, err := metrics.Correlation([][]float64{ones, ones, ones, ones})
	if err != nil {
		t.Fatalf("Correlation: %v", err)
	}

	for i := range corr {
		for j := range corr[i] {
			if math.Abs(corr[i][j]-1) > 1e-12 {
				t.Fatalf("corr[%d][%d]: got %v, want 1", i, j, corr[i][j])
			}
		}
	}
}

func TestCorrelationPartiallyCorrelated(t *testing.T) {
	targets := [][]float64{
		{1, -1, 1, -1},
		{-1, 1, -1, 1},
		{1, 1, 1, -1},
		{-1, -1, -1, 1},
	}

	corr, err := metrics.Correlation(targets)
	if err != nil {
		t.Fatalf("Correlation: %v", err)
	}

	want := [][]float64{
		{1, -1, 0.5, -0.5},
		{-1, 1, -0.5, 0.5},
		{0.5, -0.5, 1, -1},
		{-0.5, 0.5, -1, 1},
	}

	for i := range want {
		testutil.RequireSliceNearlyEqual(t, corr[i], want[i], 1e-12)
	}
}

func TestCorrelationZeroSeries(t *testing.T) {
	corr, err := metrics.Correlation([][]float64{
		{1, 2, 3},
		{0, 0, 0},
	})
	if err != nil {
		t.Fatalf("Correlation: %v", err)
	}

	if corr[0][1] != 0 || corr[1][0] != 0 {
		t.Fatalf("zero series must correlate at 0, got %v", corr[0][1])
	}

	if corr[1][1] != 1 {
		t.Fatalf("diagonal: got %v, want 1", corr[1][1])
	}
}

func TestCorrelationErrors(t *testing.T) {
	if _, err := metrics.Correlation(nil); !errors.Is(err, metrics.ErrNoData) {
		t.Fatalf("empty set: got %v, want ErrNoData", err)
	}

	_, err := metrics.Correlation([][]float64{{1, 2}, {1}})
	if !errors.Is(err, metrics.ErrGridMismatch) {
		t.Fatalf("ragged input: got %v, want ErrGridMismatch", err)
	}
}

func TestAlignTo(t *testing.T) {
	ref, err := lightcurve.New(
		[]float64{0, 1, 2, 4},
		testutil.ConstantFlux(1, 4),
		lightcurve.WithCadenceNumbers([]int{1, 2, 3, 5}),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	lc, err := lightcurve.New(
		[]float64{1, 2, 3, 4},
		[]float64{20, 30, 40, 50},
		lightcurve.WithCadenceNumbers([]int{2, 3, 4, 5}),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	aligned, err := metrics.AlignTo(lc, ref)
	if err != nil {
		t.Fatalf("AlignTo: %v", err)
	}

	if len(aligned.CadenceNumbers) != ref.Len() {
		t.Fatalf("length: got %d, want %d", len(aligned.CadenceNumbers), ref.Len())
	}

	for i, c := range ref.CadenceNumbers {
		if aligned.CadenceNumbers[i] != c {
			t.Fatalf("cadence %d: got %d, want %d", i, aligned.CadenceNumbers[i], c)
		}
	}

	nan := math.NaN()
	testutil.RequireSliceNearlyEqual(t, aligned.Flux, []float64{nan, 20, 30, 50}, 0)
	testutil.RequireSliceNearlyEqual(t, aligned.Time, ref.Time, 0)
}

func TestAlignToDisjointSections(t *testing.T) {
	n := 100

	ref, _ := lightcurve.New(
		testutil.TimeGrid(0, 0.1, n),
		testutil.ConstantFlux(1, n),
		lightcurve.WithCadenceNumbers(testutil.CadenceRange(1, n)),
	)

	lc, _ := lightcurve.New(
		testutil.TimeGrid(0, 0.1, n),
		testutil.ConstantFlux(2, n),
		lightcurve.WithCadenceNumbers(testutil.CadenceRange(1, n)),
	)

	// Remove different sections from each curve.
	keepRef := make([]bool, n)
	keepLC := make([]bool, n)

	for i := 0; i < n; i++ {
		keepRef[i] = i < 10 || i >= 20
		keepLC[i] = i < 50 || i >= 70
	}

	refCut := cut(ref, keepRef)
	lcCut := cut(lc, keepLC)

	aligned, err := metrics.AlignTo(lcCut, refCut)
	if err != nil {
		t.Fatalf("AlignTo: %v", err)
	}

	if len(aligned.CadenceNumbers) != refCut.Len() {
		t.Fatalf("length: got %d, want %d", len(aligned.CadenceNumbers), refCut.Len())
	}

	for i := range aligned.CadenceNumbers {
		if aligned.CadenceNumbers[i] != refCut.CadenceNumbers[i] {
			t.Fatalf("row %d: cadence %d, want %d", i, aligned.CadenceNumbers[i], refCut.CadenceNumbers[i])
		}
	}
}

func cut(lc *lightcurve.LightCurve, keep []bool) *lightcurve.LightCurve {
	var times, flux []float64
	var cadences []int

	for i := range keep {
		if keep[i] {
			times = append(times, lc.Time[i])
			flux = append(flux, lc.Flux[i])
			cadences = append(cadences, lc.CadenceNumbers[i])
		}
	}

	out, err := lightcurve.New(times, flux, lightcurve.WithCadenceNumbers(cadences))
	if err != nil {
		panic(err)
	}

	return out
}

func TestAlignToRequiresCadenceNumbers(t *testing.T) {
	a, _ := lightcurve.New([]float64{0}, []float64{1})
	b, _ := lightcurve.New([]float64{0}, []float64{1},
		lightcurve.WithCadenceNumbers([]int{1}))

	if _, err := metrics.AlignTo(a, b); !errors.Is(err, metrics.ErrNoCadence) {
		t.Fatalf("got %v, want ErrNoCadence", err)
	}
}
