package ui

import (
	"strings"
	"testing"

	"github.com/rjmorel/statgrid/model"
)

func TestPercentColor(t *testing.T) {
	tests := []struct {
		pct  float64
		want model.RGB
	}{
		{0, model.ColorGray},
		{24.9, model.ColorGray},
		{25, model.ColorGreen},
		{50, model.ColorYellow},
		{75, model.ColorOrange},
		{90, model.ColorRed},
		{200, model.ColorRed},
	}
	for _, tt := range tests {
		if got := PercentColor(tt.pct); got != tt.want {
			t.Errorf("PercentColor(%v) = %v, want %v", tt.pct, got, tt.want)
		}
	}
}

func TestEntropyColor(t *testing.T) {
	tests := []struct {
		e    float64
		want model.RGB
	}{
		{0.1, model.ColorGreen},
		{0.25, model.ColorYellow},
		{0.5, model.ColorOrange},
		{0.8, model.ColorRed},
		{1, model.ColorRed},
	}
	for _, tt := range tests {
		if got := EntropyColor(tt.e); got != tt.want {
			t.Errorf("EntropyColor(%v) = %v, want %v", tt.e, got, tt.want)
		}
	}
}

func TestBlendRGBEndpoints(t *testing.T) {
	a, b := model.ColorGreen, model.ColorRed
	if got := BlendRGB(a, b, 0); got != a {
		t.Errorf("t=0 blend = %v, want %v", got, a)
	}
	if got := BlendRGB(a, b, 1); got != b {
		t.Errorf("t=1 blend = %v, want %v", got, b)
	}
	// Out-of-range t clamps instead of extrapolating.
	if got := BlendRGB(a, b, -3); got != a {
		t.Errorf("t=-3 blend = %v, want %v", got, a)
	}
	if got := BlendRGB(a, b, 7); got != b {
		t.Errorf("t=7 blend = %v, want %v", got, b)
	}
}

func TestEntropyHeatmap(t *testing.T) {
	s, color := EntropyHeatmap(0.5, 25)
	if !strings.HasPrefix(s, "████░░░░") {
		t.Errorf("gauge = %q, want half filled", s)
	}
	if !strings.HasSuffix(s, "25%") {
		t.Errorf("gauge = %q, want 25%% suffix", s)
	}
	if color != model.ColorOrange {
		t.Errorf("color = %v, want orange", color)
	}

	full, _ := EntropyHeatmap(1, 0)
	if !strings.HasPrefix(full, "████████") {
		t.Errorf("full gauge = %q", full)
	}
	empty, _ := EntropyHeatmap(0, 0)
	if !strings.HasPrefix(empty, "░░░░░░░░") {
		t.Errorf("empty gauge = %q", empty)
	}

	// Out-of-range entropy clamps rather than overflowing the gauge.
	over, _ := EntropyHeatmap(3.7, 0)
	if !strings.HasPrefix(over, "████████") {
		t.Errorf("clamped gauge = %q", over)
	}
}
