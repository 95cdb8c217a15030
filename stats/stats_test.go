package stats

import (
	"math"
	"testing"
)

func TestMeanStd(t *testing.T) {
	mean, std := MeanStd([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if math.Abs(mean-5) > 1e-12 {
		t.Fatalf("mean: got %v, want 5", mean)
	}

	if math.Abs(std-2) > 1e-12 {
		t.Fatalf("std: got %v, want 2", std)
	}
}

func TestMeanStdSkipsNonFinite(t *testing.T) {
	mean, std := MeanStd([]float64{1, math.NaN(), 3, math.Inf(1)})
	if math.Abs(mean-2) > 1e-12 {
		t.Fatalf("mean: got %v, want 2", mean)
	}

	if math.Abs(std-1) > 1e-12 {
		t.Fatalf("std: got %v, want 1", std)
	}
}

func TestMeanStdEmpty(t *testing.T) {
	mean, std := MeanStd(nil)
	if !math.IsNaN(mean) || !math.IsNaN(std) {
		t.Fatalf("got (%v, %v), want NaN for both", mean, std)
	}
}

func TestMedian(t *testing.T) {
	for _, tc := range []struct {
		name   string
		values []float64
		want   float64
	}{
		{name: "odd", values: []float64{3, 1, 2}, want: 2},
		{name: "even", values: []float64{4, 1, 3, 2}, want: 2.5},
		{name: "with nan", values: []float64{1, math.NaN(), 3}, want: 2},
		{name: "single", values: []float64{7}, want: 7},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := Median(tc.values); math.Abs(got-tc.want) > 1e-12 {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}

	if got := Median([]float64{math.NaN()}); !math.IsNaN(got) {
		t.Fatalf("all-NaN input: got %v, want NaN", got)
	}
}

func TestMAD(t *testing.T) {
	got := MAD([]float64{1, 1, 2, 2, 4, 6, 9})
	if math.Abs(got-1) > 1e-12 {
		t.Fatalf("got %v, want 1", got)
	}
}

func TestSigmaClipSingleOutlier(t *testing.T) {
	mask := SigmaClip([]float64{1, 1, 1000, 1}, 1, 1, 0)

	want := []bool{false, false, true, false}
	for i := range want {
		if mask[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, mask[i], want[i])
		}
	}
}

func TestSigmaClipOneSided(t *testing.T) {
	mask := SigmaClip([]float64{1, 1000, 1, -1000, 1}, math.Inf(1), 1, 0)

	want := []bool{false, true, false, false, false}
	for i := range want {
		if mask[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, mask[i], want[i])
		}
	}
}

func TestSigmaClipFlagsNonFinite(t *testing.T) {
	mask := SigmaClip([]float64{1, 1, 1000, 1, math.NaN()}, 1, 1, 0)

	if !mask[4] {
		t.Fatal("NaN sample should be flagged")
	}

	if !mask[2] {
		t.Fatal("outlier should be flagged")
	}
}

func TestSigmaClipConstantInput(t *testing.T) {
	mask := SigmaClip([]float64{2, 2, 2, 2}, 3, 3, 0)

	for i, m := range mask {
		if m {
			t.Fatalf("index %d: constant input must not be clipped", i)
		}
	}
}
