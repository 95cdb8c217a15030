package lightcurve_test

import (
	"errors"
	"math"
	"testing"

	"github.com/Nschanche/lightkurve/internal/testutil"
	"github.com/Nschanche/lightkurve/lightcurve"
)

func TestNewValidation(t *testing.T) {
	if _, err := lightcurve.New([]float64{1, 2}, []float64{1}); !errors.Is(err, lightcurve.ErrLengthMismatch) {
		t.Fatalf("got %v, want ErrLengthMismatch", err)
	}

	_, err := lightcurve.New([]float64{1, 2}, []float64{1, 1},
		lightcurve.WithFluxErr([]float64{0.1}))
	if !errors.Is(err, lightcurve.ErrLengthMismatch) {
		t.Fatalf("flux err length: got %v, want ErrLengthMismatch", err)
	}

	_, err = lightcurve.New([]float64{1, 2}, []float64{1, 1},
		lightcurve.WithCadenceNumbers([]int{5}))
	if !errors.Is(err, lightcurve.ErrLengthMismatch) {
		t.Fatalf("cadence length: got %v, want ErrLengthMismatch", err)
	}
}

func TestNewCopiesInput(t *testing.T) {
	flux := []float64{1, 2}

	lc, err := lightcurve.New([]float64{0, 1}, flux)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	flux[0] = 99
	if lc.Flux[0] != 1 {
		t.Fatal("constructor must copy input slices")
	}
}

func TestRemoveNaNs(t *testing.T) {
	lc, err := lightcurve.New(
		[]float64{1, 2, 3, 4},
		[]float64{100, math.NaN(), 102, math.NaN()},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	clean := lc.RemoveNaNs()

	testutil.RequireSliceNearlyEqual(t, clean.Time, []float64{1, 3}, 0)
	testutil.RequireSliceNearlyEqual(t, clean.Flux, []float64{100, 102}, 0)

	// Original untouched.
	if lc.Len() != 4 {
		t.Fatalf("input length changed: %d", lc.Len())
	}
}

func TestNormalize(t *testing.T) {
	lc, err := lightcurve.New(
		testutil.TimeGrid(0, 1, 10),
		testutil.ConstantFlux(5, 10),
		lightcurve.WithFluxErr(testutil.ConstantFlux(0.05, 10)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	norm, err := lc.Normalize()
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, norm.Flux, testutil.ConstantFlux(1, 10), 1e-12)
	testutil.RequireSliceNearlyEqual(t, norm.FluxErr, testutil.ConstantFlux(0.01, 10), 1e-12)

	// The input keeps its raw flux.
	if lc.Flux[0] != 5 {
		t.Fatal("Normalize modified its receiver")
	}
}

func TestNormalizeRejectsNonPositive(t *testing.T) {
	zero, err := lightcurve.New(testutil.TimeGrid(0, 1, 4), testutil.ConstantFlux(0, 4))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := zero.Normalize(); !errors.Is(err, lightcurve.ErrNonPositiveFlux) {
		t.Fatalf("zero-centered: got %v, want ErrNonPositiveFlux", err)
	}

	neg, err := lightcurve.New(testutil.TimeGrid(0, 1, 4), testutil.ConstantFlux(-1, 4))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := neg.Normalize(); !errors.Is(err, lightcurve.ErrNonPositiveFlux) {
		t.Fatalf("negative: got %v, want ErrNonPositiveFlux", err)
	}
}

func TestAppend(t *testing.T) {
	a, _ := lightcurve.New([]float64{1, 2}, []float64{10, 11},
		lightcurve.WithCadenceNumbers([]int{1, 2}))
	b, _ := lightcurve.New([]float64{3}, []float64{12},
		lightcurve.WithCadenceNumbers([]int{3}))

	out := a.Append(b)

	testutil.RequireSliceNearlyEqual(t, out.Time, []float64{1, 2, 3}, 0)
	testutil.RequireSliceNearlyEqual(t, out.Flux, []float64{10, 11, 12}, 0)

	if len(out.CadenceNumbers) != 3 || out.CadenceNumbers[2] != 3 {
		t.Fatalf("cadence numbers: got %v", out.CadenceNumbers)
	}
}

func TestAppendDropsPartialColumns(t *testing.T) {
	a, _ := lightcurve.New([]float64{1}, []float64{1},
		lightcurve.WithFluxErr([]float64{0.1}))
	b, _ := lightcurve.New([]float64{2}, []float64{2})

	out := a.Append(b)
	if out.FluxErr != nil {
		t.Fatal("flux error present on only one side must be dropped")
	}
}

func TestCopyIsDeep(t *testing.T) {
	lc, _ := lightcurve.New([]float64{1, 2}, []float64{3, 4},
		lightcurve.WithTargetID("KIC 12345"), lightcurve.WithLabel("mystar"))

	cp := lc.Copy()
	cp.Flux[0] = -1

	if lc.Flux[0] != 3 {
		t.Fatal("Copy shares flux storage")
	}

	if cp.TargetID != "KIC 12345" || cp.Label != "mystar" {
		t.Fatalf("metadata not copied: %q %q", cp.TargetID, cp.Label)
	}
}
