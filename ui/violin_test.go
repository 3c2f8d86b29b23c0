package ui

import (
	"math"
	"strings"
	"testing"

	"github.com/rjmorel/statgrid/model"
)

func TestViolinDataStats(t *testing.T) {
	d := NewViolinData("lat", []float64{1, 2, 3, 4, 5}, model.ColorCyan)
	s, ok := d.Stats()
	if !ok {
		t.Fatal("Stats not ok for non-empty sample")
	}
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"min", s.Min, 1},
		{"q1", s.Q1, 2},
		{"median", s.Median, 3},
		{"q3", s.Q3, 4},
		{"max", s.Max, 5},
		{"mean", s.Mean, 3},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	d.SetData([]float64{10, 20})
	s2, ok := d.Stats()
	if !ok || s2.Mean != 15 {
		t.Errorf("stats after SetData: mean = %v ok=%v, want 15", s2.Mean, ok)
	}
}

func TestViolinDataStatsEmpty(t *testing.T) {
	d := NewViolinData("x", nil, model.ColorCyan)
	if _, ok := d.Stats(); ok {
		t.Error("Stats ok for empty sample")
	}
	if _, ok := d.Box(); ok {
		t.Error("Box ok for empty sample")
	}
}

func TestViolinDataBox(t *testing.T) {
	d := NewViolinData("x", []float64{1, 2, 3, 4, 5, 100}, model.ColorCyan)
	box, ok := d.Box()
	if !ok {
		t.Fatal("Box not ok")
	}
	if box.Median != 3.5 {
		t.Errorf("median = %v, want 3.5", box.Median)
	}
	if len(box.Outliers) != 1 || box.Outliers[0] != 100 {
		t.Errorf("outliers = %v, want [100]", box.Outliers)
	}
}

func TestViolinDataDensitiesCached(t *testing.T) {
	d := NewViolinData("x", []float64{1, 2, 3, 4, 5}, model.ColorCyan)
	d1 := d.Densities(0, 6, 50)
	if len(d1) != 50 {
		t.Fatalf("len = %d, want 50", len(d1))
	}
	peak := 0.0
	for _, v := range d1 {
		if v > peak {
			peak = v
		}
	}
	if math.Abs(peak-1) > 1e-9 {
		t.Errorf("peak = %v, want 1 (normalized)", peak)
	}

	d2 := d.Densities(0, 6, 50)
	if &d1[0] != &d2[0] {
		t.Error("same parameters should return the cached slice")
	}
	d3 := d.Densities(0, 6, 60)
	if len(d3) != 60 {
		t.Errorf("parameter change not recomputed: len = %d", len(d3))
	}

	d.SetData([]float64{7, 8, 9})
	d4 := d.Densities(0, 6, 60)
	if d4 == nil {
		t.Fatal("densities nil after SetData")
	}
	if &d4[0] == &d3[0] {
		t.Error("SetData should drop the KDE cache")
	}
}

func TestViolinDataDensitiesDegenerate(t *testing.T) {
	d := NewViolinData("x", []float64{math.NaN()}, model.ColorCyan)
	if got := d.Densities(0, 1, 50); got != nil {
		t.Errorf("non-finite sample: densities = %v, want nil", got)
	}
}

func TestViolinRenderVertical(t *testing.T) {
	v := NewViolin().Add(NewViolinData("e",
		[]float64{1, 2, 2, 3, 3, 3, 4, 4, 5}, model.ColorOrange))
	b := NewBuffer(21, 11)
	if err := v.Render(b, Rect{X: 0, Y: 0, W: 21, H: 11}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := b.Plain()
	if !strings.ContainsAny(out, "░▒▓█") {
		t.Errorf("no density body rendered:\n%s", out)
	}
	if !strings.ContainsRune(out, '─') {
		t.Errorf("median line missing:\n%s", out)
	}
}

func TestViolinRenderHorizontal(t *testing.T) {
	v := NewViolin().
		SetOrientation(Horizontal).
		SetTitle("entropy").
		Add(NewViolinData("e", []float64{0.1, 0.2, 0.2, 0.3, 0.9}, model.ColorCyan))
	b := NewBuffer(30, 8)
	if err := v.Render(b, Rect{X: 0, Y: 0, W: 30, H: 8}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := b.Plain()
	if !strings.HasPrefix(out, "entropy") {
		t.Errorf("title row missing:\n%s", out)
	}
	if !strings.ContainsRune(out, '│') {
		t.Errorf("median marker missing:\n%s", out)
	}
}

func TestViolinRenderEmpty(t *testing.T) {
	v := NewViolin()
	b := NewBuffer(10, 4)
	if err := v.Render(b, Rect{X: 0, Y: 0, W: 10, H: 4}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.TrimSpace(b.Plain()) != "" {
		t.Errorf("empty violin rendered content: %q", b.Plain())
	}
	if err := v.Render(b, Rect{X: 0, Y: 0, W: 0, H: 0}); err != ErrEmptyArea {
		t.Errorf("degenerate area: err = %v, want ErrEmptyArea", err)
	}
}
