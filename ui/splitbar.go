package ui

import (
	"math"

	"github.com/rjmorel/statgrid/model"
)

// SplitCell encodes two independent colors in one character cell: the
// lower half-block glyph with foreground = bottom channel and background
// = top channel. Every "two stats in one character" display in the panel
// library is built from this.
func SplitCell(top, bottom model.RGB) Cell {
	return Cell{Rune: '▄', Fg: bottom, Bg: top, HasBg: true}
}

// SplitBar writes a run of split cells along a row, with per-column
// channel colors taken from top and bottom (shorter slices stop the
// bar). Writes are clipped by the buffer.
func SplitBar(b *Buffer, x, y int, top, bottom []model.RGB) {
	n := len(top)
	if len(bottom) < n {
		n = len(bottom)
	}
	for i := 0; i < n; i++ {
		b.Set(x+i, y, SplitCell(top[i], bottom[i]))
	}
}

// blockRamp is the 8-level partial fill used by sparklines, histogram
// tops, and the horizontal violin.
var blockRamp = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// rampGlyph maps a 0..1 ratio to a block ramp glyph.
func rampGlyph(ratio float64) rune {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	idx := int(ratio * float64(len(blockRamp)-1))
	return blockRamp[idx]
}

// Sparkline draws values as an 8-level block strip into the buffer at
// (x,y), resampled by index striding to fit width. Non-finite values
// render as spaces.
func Sparkline(b *Buffer, x, y, width int, values []float64, fg model.RGB) {
	cells := SparklineString(values, width)
	for i, r := range cells {
		b.SetRune(x+i, y, r, fg)
	}
}

// SparklineString renders values as block-ramp runes of the given width.
// Shared by the buffer sparkline and the dataframe sparkline cell.
func SparklineString(values []float64, width int) []rune {
	if width <= 0 || len(values) == 0 {
		return nil
	}
	out := make([]rune, 0, width)

	lo, hi, any := minMaxFinite(values)
	if !any {
		for i := 0; i < width; i++ {
			out = append(out, ' ')
		}
		return out
	}
	rng := hi - lo
	if rng < 1e-10 {
		rng = 1e-10
	}

	n := width
	if len(values) < n {
		n = len(values)
	}
	for i := 0; i < n; i++ {
		idx := i * len(values) / n
		v := values[idx]
		if !isFinite(v) {
			out = append(out, ' ')
			continue
		}
		out = append(out, rampGlyph((v-lo)/rng))
	}
	return out
}

func minMaxFinite(values []float64) (lo, hi float64, any bool) {
	for _, v := range values {
		if !isFinite(v) {
			continue
		}
		if !any {
			lo, hi, any = v, v, true
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, any
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
