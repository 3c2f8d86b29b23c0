package ui

import (
	"errors"
	"math"

	"github.com/rjmorel/statgrid/model"
	"github.com/rjmorel/statgrid/stats"
)

// Orientation selects the long axis of a widget.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// BarStyle selects how histogram bars are filled.
type BarStyle int

const (
	// BarSolid fills with full blocks only.
	BarSolid BarStyle = iota
	// BarBlocks adds a sub-cell partial fill on the topmost cell.
	BarBlocks
	// BarAscii fills with '#', for dumb terminals.
	BarAscii
)

// ErrEmptyArea is returned when a widget is asked to render into a
// degenerate rectangle.
var ErrEmptyArea = errors.New("ui: empty render area")

// Histogram is a builder-style histogram widget. Configure, Build, then
// Render; Build is idempotent and caches the bins.
type Histogram struct {
	values  []float64
	binning stats.Binning
	orient  Orientation
	style   BarStyle
	color   model.RGB
	title   string

	built bool
	bins  []stats.Bin
}

// NewHistogram returns a histogram with Sturges binning, vertical
// orientation, and block-style bars.
func NewHistogram() *Histogram {
	return &Histogram{
		binning: stats.Binning{Strategy: stats.BinSturges},
		orient:  Vertical,
		style:   BarBlocks,
		color:   model.ColorCyan,
	}
}

// SetValues replaces the input data and invalidates the built state.
func (h *Histogram) SetValues(values []float64) *Histogram {
	h.values = append([]float64(nil), values...)
	h.built = false
	return h
}

// SetBinning selects the binning strategy.
func (h *Histogram) SetBinning(b stats.Binning) *Histogram {
	h.binning = b
	h.built = false
	return h
}

// SetOrientation selects vertical or horizontal bars.
func (h *Histogram) SetOrientation(o Orientation) *Histogram {
	h.orient = o
	return h
}

// SetStyle selects the bar fill style.
func (h *Histogram) SetStyle(s BarStyle) *Histogram {
	h.style = s
	return h
}

// SetColor sets the bar color.
func (h *Histogram) SetColor(c model.RGB) *Histogram {
	h.color = c
	return h
}

// SetTitle sets an optional title row.
func (h *Histogram) SetTitle(t string) *Histogram {
	h.title = t
	return h
}

// Build computes and caches the bins. Idempotent.
func (h *Histogram) Build() error {
	if h.built {
		return nil
	}
	h.bins = stats.MakeBins(h.values, h.binning)
	h.built = true
	return nil
}

// Bins returns the cached bins, building first if needed.
func (h *Histogram) Bins() []stats.Bin {
	_ = h.Build()
	return h.bins
}

// Render draws the histogram into area. Writes are clipped by the
// buffer; a degenerate area is an error.
func (h *Histogram) Render(b *Buffer, area Rect) error {
	if area.W <= 0 || area.H <= 0 {
		return ErrEmptyArea
	}
	_ = h.Build()

	plot := area
	if h.title != "" {
		b.WriteString(area.X, area.Y, Truncate(h.title, area.W), model.ColorCyan)
		plot = Rect{X: area.X, Y: area.Y + 1, W: area.W, H: area.H - 1}
		if plot.H <= 0 {
			return nil
		}
	}

	maxCount := 0
	for _, bin := range h.bins {
		if bin.Count > maxCount {
			maxCount = bin.Count
		}
	}
	if maxCount == 0 {
		return nil
	}

	if h.orient == Horizontal {
		h.renderHorizontal(b, plot, maxCount)
		return nil
	}
	h.renderVertical(b, plot, maxCount)
	return nil
}

func (h *Histogram) renderVertical(b *Buffer, plot Rect, maxCount int) {
	k := len(h.bins)
	barW := plot.W / k
	if barW < 1 {
		barW = 1
	}
	for i, bin := range h.bins {
		exact := float64(bin.Count) / float64(maxCount) * float64(plot.H)
		cells := int(math.Ceil(exact))
		if cells == 0 {
			continue
		}
		full := int(exact)
		frac := exact - float64(full)

		x0 := plot.X + i*barW
		for dx := 0; dx < barW; dx++ {
			for dy := 0; dy < cells; dy++ {
				y := plot.Bottom() - 1 - dy
				glyph := h.fillGlyph()
				if dy == cells-1 && h.style == BarBlocks && frac > 0 {
					idx := int(frac * 8)
					if idx > len(blockRamp)-1 {
						idx = len(blockRamp) - 1
					}
					glyph = blockRamp[idx]
				}
				b.SetRune(x0+dx, y, glyph, h.color)
			}
		}
	}
}

// hBlocks is the left-anchored partial fill for horizontal bars.
var hBlocks = []rune{'▏', '▎', '▍', '▌', '▋', '▊', '▉', '█'}

func (h *Histogram) renderHorizontal(b *Buffer, plot Rect, maxCount int) {
	k := len(h.bins)
	barH := plot.H / k
	if barH < 1 {
		barH = 1
	}
	for i, bin := range h.bins {
		exact := float64(bin.Count) / float64(maxCount) * float64(plot.W)
		cells := int(math.Ceil(exact))
		if cells == 0 {
			continue
		}
		full := int(exact)
		frac := exact - float64(full)

		y0 := plot.Y + i*barH
		for dy := 0; dy < barH; dy++ {
			for dx := 0; dx < cells; dx++ {
				glyph := h.fillGlyph()
				if dx == cells-1 && h.style == BarBlocks && frac > 0 {
					idx := int(frac * 8)
					if idx > len(hBlocks)-1 {
						idx = len(hBlocks) - 1
					}
					glyph = hBlocks[idx]
				}
				b.SetRune(plot.X+dx, y0+dy, glyph, h.color)
			}
		}
	}
}

func (h *Histogram) fillGlyph() rune {
	if h.style == BarAscii {
		return '#'
	}
	return '█'
}
