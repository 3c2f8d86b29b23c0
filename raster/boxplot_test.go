package raster

import (
	"math"
	"testing"
)

func TestBoxStats32(t *testing.T) {
	b, ok := boxStats32([]float32{1, 2, 3, 4, 5, 100})
	if !ok {
		t.Fatal("boxStats32 not ok")
	}
	if b.q1 != 2.25 || b.med != 3.5 || b.q3 != 4.75 {
		t.Errorf("quartiles = %v/%v/%v, want 2.25/3.5/4.75", b.q1, b.med, b.q3)
	}
	if b.min != 1 || b.max != 5 {
		t.Errorf("whiskers = %v/%v, want 1/5 (fence excludes 100)", b.min, b.max)
	}
	if len(b.outliers) != 1 || b.outliers[0] != 100 {
		t.Errorf("outliers = %v, want [100]", b.outliers)
	}
}

func TestBoxStats32Degenerate(t *testing.T) {
	if _, ok := boxStats32(nil); ok {
		t.Error("empty sample should not be ok")
	}
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	if _, ok := boxStats32([]float32{nan, inf}); ok {
		t.Error("all-non-finite sample should not be ok")
	}
	b, ok := boxStats32([]float32{7})
	if !ok || b.med != 7 || b.min != 7 || b.max != 7 {
		t.Errorf("single value summary = %+v ok=%v", b, ok)
	}
}

func TestPercentile32(t *testing.T) {
	sorted := []float32{1, 2, 3, 4, 5}
	tests := []struct {
		p    float64
		want float32
	}{
		{-5, 1},
		{0, 1},
		{25, 2},
		{50, 3},
		{90, 4.6},
		{100, 5},
		{150, 5},
	}
	for _, tt := range tests {
		if got := percentile32(sorted, tt.p); math.Abs(float64(got-tt.want)) > 1e-6 {
			t.Errorf("percentile32(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if got := percentile32(nil, 50); got != 0 {
		t.Errorf("empty sample = %v, want 0", got)
	}
}

func TestKDEDensities32(t *testing.T) {
	dens := kdeDensities32([]float32{1, 2, 3, 4, 5}, 0, 6, 50)
	if len(dens) != 50 {
		t.Fatalf("len = %d, want 50", len(dens))
	}
	peak := 0.0
	for _, v := range dens {
		if v > peak {
			peak = v
		}
	}
	if math.Abs(peak-1) > 1e-9 {
		t.Errorf("peak = %v, want 1 (normalized)", peak)
	}

	if kdeDensities32(nil, 0, 1, 50) != nil {
		t.Error("empty sample should return nil")
	}
	if kdeDensities32([]float32{1, 2}, 0, 1, 1) != nil {
		t.Error("fewer than 2 points should return nil")
	}
	if kdeDensities32([]float32{1, 2}, 3, 3, 50) != nil {
		t.Error("collapsed range should return nil")
	}
}

func TestPlotRenderCollapsedMargin(t *testing.T) {
	p := NewPlot()
	p.Series = []Series{{Label: "a", Values: []float32{1, 2, 3}}}
	fb := NewFramebuffer(10, 10) // 8px margin eats the whole buffer
	if err := p.Render(fb); err != ErrPlotCollapsed {
		t.Errorf("err = %v, want ErrPlotCollapsed", err)
	}
}

func TestPlotRenderErrors(t *testing.T) {
	fb := NewFramebuffer(120, 80)
	p := NewPlot()
	if err := p.Render(fb); err == nil {
		t.Error("no series should be an error")
	}
	nan := float32(math.NaN())
	p.Series = []Series{{Label: "a", Values: []float32{nan}}}
	if err := p.Render(fb); err == nil {
		t.Error("no finite values should be an error")
	}
}

// hasColor scans the buffer for at least one pixel of c.
func hasColor(fb *Framebuffer, c RGBA) bool {
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			if fb.Pixel(x, y) == c {
				return true
			}
		}
	}
	return false
}

func TestPlotRenderBox(t *testing.T) {
	cyan := RGBA{0x8B, 0xE9, 0xFD, 0xFF}
	p := NewPlot()
	p.Series = []Series{{Label: "lat", Values: []float32{1, 2, 3, 4, 5, 100}, Color: cyan}}
	fb := NewFramebuffer(120, 80)
	if err := p.Render(fb); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if fb.Pixel(0, 0) != p.Background {
		t.Errorf("corner = %v, want background %v", fb.Pixel(0, 0), p.Background)
	}
	if !hasColor(fb, cyan) {
		t.Error("series color not drawn")
	}
	if !hasColor(fb, RGBA{0xF8, 0xF8, 0xF2, 0xFF}) {
		t.Error("median line not drawn")
	}
}

func TestPlotRenderViolin(t *testing.T) {
	green := RGBA{0x50, 0xFA, 0x7B, 0xFF}
	p := NewPlot()
	p.Violin = true
	p.InnerBox = true
	p.Series = []Series{{Label: "e", Values: []float32{1, 2, 2, 3, 3, 3, 4, 4, 5}, Color: green}}
	fb := NewFramebuffer(120, 80)
	if err := p.Render(fb); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !hasColor(fb, green) {
		t.Error("violin body not drawn")
	}
	if !hasColor(fb, RGBA{0xF8, 0xF8, 0xF2, 0xFF}) {
		t.Error("inner box not drawn")
	}
}
