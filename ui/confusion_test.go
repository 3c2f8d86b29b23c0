package ui

import (
	"math"
	"strings"
	"testing"

	"github.com/rjmorel/statgrid/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-12
}

func TestConfusionMetrics(t *testing.T) {
	m := NewConfusionMatrix().SetCounts(
		[][]float64{{8, 2}, {1, 9}},
		[]string{"neg", "pos"},
	)
	if err := m.Build(); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := m.Accuracy(); !almostEqual(got, 0.85) {
		t.Errorf("Accuracy = %v, want 0.85", got)
	}
	if got := m.Precision(0); !almostEqual(got, 8.0/9) {
		t.Errorf("Precision(0) = %v, want 8/9", got)
	}
	if got := m.Recall(0); !almostEqual(got, 0.8) {
		t.Errorf("Recall(0) = %v, want 0.8", got)
	}
	if got := m.F1(0); !almostEqual(got, 16.0/19) {
		t.Errorf("F1(0) = %v, want 16/19", got)
	}
	if got := m.F1(1); !almostEqual(got, 6.0/7) {
		t.Errorf("F1(1) = %v, want 6/7", got)
	}
	if got := m.MacroF1(); !almostEqual(got, (16.0/19+6.0/7)/2) {
		t.Errorf("MacroF1 = %v", got)
	}
}

func TestConfusionDiagonalAccuracy(t *testing.T) {
	m := NewConfusionMatrix().SetCounts(
		[][]float64{{3, 0}, {0, 7}},
		[]string{"a", "b"},
	)
	if got := m.Accuracy(); got != 1 {
		t.Errorf("Accuracy = %v, want 1", got)
	}
}

func TestConfusionZeroDenominators(t *testing.T) {
	m := NewConfusionMatrix().SetCounts(
		[][]float64{{0, 0}, {0, 5}},
		[]string{"a", "b"},
	)
	if got := m.Precision(0); got != 0 {
		t.Errorf("Precision(0) = %v, want 0 on empty column", got)
	}
	if got := m.Recall(0); got != 0 {
		t.Errorf("Recall(0) = %v, want 0 on empty row", got)
	}
	if got := m.F1(0); got != 0 {
		t.Errorf("F1(0) = %v, want 0", got)
	}

	empty := NewConfusionMatrix().SetCounts(
		[][]float64{{0, 0}, {0, 0}},
		[]string{"a", "b"},
	)
	if got := empty.Accuracy(); got != 0 {
		t.Errorf("empty matrix Accuracy = %v, want 0", got)
	}
}

func TestConfusionNormalized(t *testing.T) {
	counts := [][]float64{{8, 2}, {1, 9}}
	tests := []struct {
		name string
		norm Normalization
		want float64
	}{
		{"row", NormRow, 0.8},
		{"column", NormColumn, 8.0 / 9},
		{"total", NormTotal, 0.4},
		{"max", NormNone, 8.0 / 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewConfusionMatrix().
				SetCounts(counts, []string{"a", "b"}).
				SetNormalization(tt.norm)
			if got := m.Normalized(0, 0); !almostEqual(got, tt.want) {
				t.Errorf("Normalized(0,0) = %v, want %v", got, tt.want)
			}
		})
	}

	zero := NewConfusionMatrix().
		SetCounts([][]float64{{0}}, []string{"a"}).
		SetNormalization(NormRow)
	if got := zero.Normalized(0, 0); got != 0 {
		t.Errorf("zero denominator: Normalized = %v, want 0", got)
	}
}

func TestConfusionBuildErrors(t *testing.T) {
	tests := []struct {
		name   string
		counts [][]float64
		labels []string
	}{
		{"no counts", nil, nil},
		{"label mismatch", [][]float64{{1, 0}, {0, 1}}, []string{"a"}},
		{"ragged rows", [][]float64{{1, 0}, {0}}, []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewConfusionMatrix().SetCounts(tt.counts, tt.labels)
			if err := m.Build(); err == nil {
				t.Error("Build should reject a non-square matrix")
			}
			b := NewBuffer(20, 5)
			if err := m.Render(b, Rect{X: 0, Y: 0, W: 20, H: 5}); err == nil {
				t.Error("Render should propagate the build error")
			}
		})
	}
}

func TestConfusionRender(t *testing.T) {
	m := NewConfusionMatrix().
		SetCounts([][]float64{{8, 2}, {1, 9}}, []string{"neg", "pos"}).
		SetTitle("drift").
		ShowAccuracy(true)
	b := NewBuffer(40, 6)
	if err := m.Render(b, Rect{X: 0, Y: 0, W: 40, H: 6}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := b.Plain()
	if !strings.HasPrefix(out, "drift") {
		t.Errorf("title missing:\n%s", out)
	}
	if !strings.Contains(out, "neg") || !strings.Contains(out, "pos") {
		t.Errorf("labels missing:\n%s", out)
	}
	if !strings.Contains(out, "acc 85.0%") {
		t.Errorf("accuracy footer missing:\n%s", out)
	}
}

func TestConfusionRenderPercentages(t *testing.T) {
	m := NewConfusionMatrix().
		SetCounts([][]float64{{8, 2}, {1, 9}}, []string{"a", "b"}).
		SetNormalization(NormRow).
		ShowPercentages(true)
	b := NewBuffer(30, 5)
	if err := m.Render(b, Rect{X: 0, Y: 0, W: 30, H: 5}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(b.Plain(), "80%") {
		t.Errorf("row-normalized percentage missing:\n%s", b.Plain())
	}
}

func TestMatrixPaletteGrayscale(t *testing.T) {
	if got := PaletteGrayscale.Color(1, false); got != (model.RGB{R: 255, G: 255, B: 255}) {
		t.Errorf("Color(1) = %v, want white", got)
	}
	if got := PaletteGrayscale.Color(0, false); got != (model.RGB{}) {
		t.Errorf("Color(0) = %v, want black", got)
	}
	if got := PaletteGrayscale.TextColor(0.9); got != (model.RGB{}) {
		t.Errorf("TextColor on light cell = %v, want black", got)
	}
	if got := PaletteGrayscale.TextColor(0.2); got != model.ColorWhite {
		t.Errorf("TextColor on dark cell = %v, want white", got)
	}
}
