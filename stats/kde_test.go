package stats

import (
	"math"
	"testing"
)

func TestKDEBandwidth(t *testing.T) {
	samples := []float64{1, 2, 3, 4, 5}
	k, ok := NewKDE(samples)
	if !ok {
		t.Fatal("NewKDE not ok")
	}
	sigma := StdDev(samples)
	want := 1.06 * sigma * math.Pow(5, -0.2)
	if math.Abs(k.Bandwidth()-want) > 1e-12 {
		t.Errorf("Bandwidth = %v, want %v", k.Bandwidth(), want)
	}
}

func TestKDEBandwidthFloor(t *testing.T) {
	k, ok := NewKDE([]float64{3, 3, 3})
	if !ok {
		t.Fatal("NewKDE not ok")
	}
	want := 1.06 * 0.001 * math.Pow(3, -0.2)
	if math.Abs(k.Bandwidth()-want) > 1e-12 {
		t.Errorf("Bandwidth = %v, want %v (sigma floored)", k.Bandwidth(), want)
	}
}

func TestKDESymmetry(t *testing.T) {
	k, ok := NewKDE([]float64{1, 2, 3, 4, 5})
	if !ok {
		t.Fatal("NewKDE not ok")
	}
	for _, d := range []float64{0.1, 0.7, 1.5, 3} {
		lo := k.DensityAt(3 - d)
		hi := k.DensityAt(3 + d)
		if math.Abs(lo-hi) > 1e-12 {
			t.Errorf("density asymmetric at ±%v: %v vs %v", d, lo, hi)
		}
	}
}

func TestKDEBatchedMatchesScalar(t *testing.T) {
	k, ok := NewKDE([]float64{0.3, 1.1, 1.2, 4, 4.5, 9})
	if !ok {
		t.Fatal("NewKDE not ok")
	}
	xs := []float64{-1, 0.5, 2.25, 7.9}
	d0, d1, d2, d3 := k.densityAt4(xs[0], xs[1], xs[2], xs[3])
	for i, got := range []float64{d0, d1, d2, d3} {
		want := k.DensityAt(xs[i])
		if math.Abs(got-want) > 1e-10 {
			t.Errorf("densityAt4[%d] = %v, scalar = %v", i, got, want)
		}
	}
}

func TestKDESample(t *testing.T) {
	k, ok := NewKDE([]float64{1, 2, 3, 4, 5})
	if !ok {
		t.Fatal("NewKDE not ok")
	}
	out := k.Sample(1, 5, 33)
	if len(out) != 33 {
		t.Fatalf("len = %d, want 33", len(out))
	}
	peak := 0.0
	for _, v := range out {
		if v < 0 || v > 1 {
			t.Fatalf("sample value %v outside [0,1]", v)
		}
		if v > peak {
			peak = v
		}
	}
	if math.Abs(peak-1) > 1e-12 {
		t.Errorf("peak = %v, want 1", peak)
	}
}

func TestKDESampleDegenerateRange(t *testing.T) {
	k, ok := NewKDE([]float64{2, 2, 2})
	if !ok {
		t.Fatal("NewKDE not ok")
	}
	for _, v := range k.Sample(5, 5, 8) {
		if v != 1 {
			t.Fatalf("degenerate range sample = %v, want all 1", v)
		}
	}
}

func TestNewKDERejectsNonFinite(t *testing.T) {
	if _, ok := NewKDE([]float64{math.NaN(), math.Inf(-1)}); ok {
		t.Error("NewKDE of non-finite input should not be ok")
	}
	if _, ok := NewKDE(nil); ok {
		t.Error("NewKDE of empty input should not be ok")
	}
}
