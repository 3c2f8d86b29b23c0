package ui

import (
	"testing"

	"github.com/rjmorel/statgrid/stats"
)

func TestHistogramBins(t *testing.T) {
	h := NewHistogram().
		SetValues([]float64{1, 1, 1, 2}).
		SetBinning(stats.Binning{Strategy: stats.BinCount, Param: 2})
	bins := h.Bins()
	if len(bins) != 2 {
		t.Fatalf("len(bins) = %d, want 2", len(bins))
	}
	if bins[0].Count != 3 || bins[1].Count != 1 {
		t.Errorf("counts = %d, %d, want 3, 1", bins[0].Count, bins[1].Count)
	}
}

func TestHistogramRenderVertical(t *testing.T) {
	h := NewHistogram().
		SetValues([]float64{1, 1, 1, 2}).
		SetBinning(stats.Binning{Strategy: stats.BinCount, Param: 2})
	b := NewBuffer(4, 3)
	if err := h.Render(b, Rect{X: 0, Y: 0, W: 4, H: 3}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "██  \n██  \n████\n"
	if b.Plain() != want {
		t.Errorf("Plain =\n%q, want\n%q", b.Plain(), want)
	}
}

func TestHistogramRenderPartialBlock(t *testing.T) {
	// The shorter bar is 1.5 cells tall: one full block plus a half-height
	// partial on top.
	h := NewHistogram().
		SetValues([]float64{1, 1, 2}).
		SetBinning(stats.Binning{Strategy: stats.BinCount, Param: 2})
	b := NewBuffer(2, 3)
	if err := h.Render(b, Rect{X: 0, Y: 0, W: 2, H: 3}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "█ \n█▅\n██\n"
	if b.Plain() != want {
		t.Errorf("Plain =\n%q, want\n%q", b.Plain(), want)
	}
}

func TestHistogramRenderHorizontalAscii(t *testing.T) {
	h := NewHistogram().
		SetValues([]float64{1, 1, 2}).
		SetBinning(stats.Binning{Strategy: stats.BinCount, Param: 2}).
		SetOrientation(Horizontal).
		SetStyle(BarAscii)
	b := NewBuffer(4, 2)
	if err := h.Render(b, Rect{X: 0, Y: 0, W: 4, H: 2}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "####\n##  \n"
	if b.Plain() != want {
		t.Errorf("Plain =\n%q, want\n%q", b.Plain(), want)
	}
}

func TestHistogramRenderTitle(t *testing.T) {
	h := NewHistogram().
		SetValues([]float64{1, 1}).
		SetBinning(stats.Binning{Strategy: stats.BinCount, Param: 1}).
		SetTitle("sizes")
	b := NewBuffer(8, 2)
	if err := h.Render(b, Rect{X: 0, Y: 0, W: 8, H: 2}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "sizes   \n████████\n"
	if b.Plain() != want {
		t.Errorf("Plain =\n%q, want\n%q", b.Plain(), want)
	}
}

func TestHistogramRenderEmpty(t *testing.T) {
	h := NewHistogram()
	b := NewBuffer(4, 1)
	if err := h.Render(b, Rect{X: 0, Y: 0, W: 4, H: 1}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if b.Plain() != "    \n" {
		t.Errorf("empty data should render nothing, got %q", b.Plain())
	}
}

func TestHistogramRenderDegenerateArea(t *testing.T) {
	h := NewHistogram().SetValues([]float64{1, 2, 3})
	b := NewBuffer(4, 4)
	if err := h.Render(b, Rect{X: 0, Y: 0, W: 0, H: 4}); err != ErrEmptyArea {
		t.Errorf("zero-width area: err = %v, want ErrEmptyArea", err)
	}
	if err := h.Render(b, Rect{X: 0, Y: 0, W: 4, H: 0}); err != ErrEmptyArea {
		t.Errorf("zero-height area: err = %v, want ErrEmptyArea", err)
	}
}
