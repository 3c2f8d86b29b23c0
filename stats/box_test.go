package stats

import (
	"math"
	"testing"
)

func TestNewBoxStats(t *testing.T) {
	b, ok := NewBoxStats([]float64{1, 2, 3, 4, 5, 100})
	if !ok {
		t.Fatal("NewBoxStats not ok")
	}
	approx := func(name string, got, want float64) {
		t.Helper()
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}
	approx("Q1", b.Q1, 2.25)
	approx("Median", b.Median, 3.5)
	approx("Q3", b.Q3, 4.75)
	approx("IQR", b.IQR, 2.5)
	// 100 is beyond Q3 + 1.5*IQR = 8.5; whiskers stop at the extreme
	// non-outliers.
	approx("Min", b.Min, 1)
	approx("Max", b.Max, 5)
	if len(b.Outliers) != 1 || b.Outliers[0] != 100 {
		t.Errorf("Outliers = %v, want [100]", b.Outliers)
	}
}

func TestNewBoxStatsNoOutliers(t *testing.T) {
	b, ok := NewBoxStats([]float64{10, 20, 30, 40, 50})
	if !ok {
		t.Fatal("NewBoxStats not ok")
	}
	if len(b.Outliers) != 0 {
		t.Errorf("Outliers = %v, want none", b.Outliers)
	}
	if b.Min != 10 || b.Max != 50 {
		t.Errorf("Min/Max = %v/%v, want 10/50", b.Min, b.Max)
	}
}

func TestNewBoxStatsDegenerate(t *testing.T) {
	if _, ok := NewBoxStats(nil); ok {
		t.Error("empty input should not be ok")
	}
	if _, ok := NewBoxStats([]float64{math.NaN(), math.Inf(1)}); ok {
		t.Error("non-finite input should not be ok")
	}
	b, ok := NewBoxStats([]float64{7})
	if !ok || b.Median != 7 || b.Min != 7 || b.Max != 7 {
		t.Errorf("single value: %+v, %v", b, ok)
	}
}
