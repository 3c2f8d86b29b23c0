package raster

import (
	"errors"
	"math"
	"sort"
)

// Series is one labeled sample for the raster plots. Inputs are float32
// because the framebuffer path trades precision for footprint, so the
// statistics below are an independent code path from the stats package.
type Series struct {
	Label  string
	Values []float32
	Color  RGBA
}

// Plot renders box-and-whisker or violin figures onto a framebuffer.
type Plot struct {
	Series    []Series
	Violin    bool // fill KDE polygons instead of boxes
	InnerBox  bool // overlay a thin box inside each violin
	Margin    int  // pixels kept clear on every side
	KDEPoints int  // density samples per violin; 0 = 64

	Background RGBA
	Axis       RGBA
}

// ErrPlotCollapsed is returned when the margin leaves no drawable area.
var ErrPlotCollapsed = errors.New("raster: plot area collapsed to zero")

// NewPlot returns a plot with an 8-pixel margin on a dark background.
func NewPlot() *Plot {
	return &Plot{
		Margin:     8,
		KDEPoints:  64,
		Background: RGBA{0x16, 0x18, 0x22, 0xFF},
		Axis:       RGBA{0x62, 0x72, 0xA4, 0xFF},
	}
}

// box32 is the float32 five-number summary with Tukey outliers.
type box32 struct {
	min, q1, med, q3, max float32
	outliers              []float32
}

// percentile32 interpolates the p-th percentile of a sorted sample.
func percentile32(sorted []float32, p float64) float32 {
	if len(sorted) == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := float32(rank - float64(lo))
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// boxStats32 computes the summary; false for an empty sample.
func boxStats32(values []float32) (box32, bool) {
	clean := make([]float32, 0, len(values))
	for _, v := range values {
		f := float64(v)
		if !math.IsNaN(f) && !math.IsInf(f, 0) {
			clean = append(clean, v)
		}
	}
	if len(clean) == 0 {
		return box32{}, false
	}
	sort.Slice(clean, func(i, j int) bool { return clean[i] < clean[j] })

	b := box32{
		q1:  percentile32(clean, 25),
		med: percentile32(clean, 50),
		q3:  percentile32(clean, 75),
	}
	iqr := b.q3 - b.q1
	loFence := b.q1 - 1.5*iqr
	hiFence := b.q3 + 1.5*iqr

	b.min = clean[len(clean)-1]
	b.max = clean[0]
	for _, v := range clean {
		if v < loFence || v > hiFence {
			b.outliers = append(b.outliers, v)
			continue
		}
		if v < b.min {
			b.min = v
		}
		if v > b.max {
			b.max = v
		}
	}
	return b, true
}

// kdeDensities32 samples a Silverman-bandwidth Gaussian KDE over
// [lo, hi], normalized to peak 1. Same contract as the float64 path.
func kdeDensities32(values []float32, lo, hi float32, points int) []float64 {
	if points < 2 || len(values) == 0 || hi <= lo {
		return nil
	}
	n := float64(len(values))
	mean := 0.0
	for _, v := range values {
		mean += float64(v)
	}
	mean /= n
	variance := 0.0
	for _, v := range values {
		d := float64(v) - mean
		variance += d * d
	}
	sigma := 0.0
	if len(values) > 1 {
		sigma = math.Sqrt(variance / (n - 1))
	}
	if sigma < 0.001 {
		sigma = 0.001
	}
	h := 1.06 * sigma * math.Pow(n, -0.2)
	norm := 1 / (n * h * math.Sqrt(2*math.Pi))

	out := make([]float64, points)
	step := float64(hi-lo) / float64(points-1)
	peak := 0.0
	for i := range out {
		x := float64(lo) + float64(i)*step
		sum := 0.0
		for _, v := range values {
			u := (x - float64(v)) / h
			sum += math.Exp(-0.5 * u * u)
		}
		out[i] = norm * sum
		if out[i] > peak {
			peak = out[i]
		}
	}
	if peak <= 0 {
		return nil
	}
	for i := range out {
		out[i] /= peak
	}
	return out
}

// Render draws every series into fb. The figure errors out, rather than
// clipping to nothing, when the margin eats the whole buffer.
func (p *Plot) Render(fb *Framebuffer) error {
	x0 := p.Margin
	y0 := p.Margin
	x1 := fb.Width() - 1 - p.Margin
	y1 := fb.Height() - 1 - p.Margin
	if x1 <= x0 || y1 <= y0 {
		return ErrPlotCollapsed
	}
	if len(p.Series) == 0 {
		return errors.New("raster: no series to plot")
	}

	fb.Clear(p.Background)
	fb.DrawRect(x0, y0, x1, y1, p.Axis)

	lo, hi, ok := p.valueRange()
	if !ok {
		return errors.New("raster: no finite values to plot")
	}

	plotW := x1 - x0
	slotW := plotW / len(p.Series)
	for i, s := range p.Series {
		cx := x0 + i*slotW + slotW/2
		if p.Violin {
			p.drawViolin(fb, s, cx, slotW, y0, y1, lo, hi)
		} else {
			p.drawBox(fb, s, cx, slotW, y0, y1, lo, hi)
		}
	}
	return nil
}

func (p *Plot) valueRange() (float32, float32, bool) {
	first := true
	var lo, hi float32
	for _, s := range p.Series {
		for _, v := range s.Values {
			f := float64(v)
			if math.IsNaN(f) || math.IsInf(f, 0) {
				continue
			}
			if first {
				lo, hi, first = v, v, false
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	if first {
		return 0, 0, false
	}
	if hi == lo {
		lo -= 0.5
		hi += 0.5
	}
	return lo, hi, true
}

// yFor maps a value onto plot pixel rows (top = hi).
func yFor(v, lo, hi float32, y0, y1 int) int {
	frac := float64(v-lo) / float64(hi-lo)
	return y1 - int(frac*float64(y1-y0)+0.5)
}

func (p *Plot) drawBox(fb *Framebuffer, s Series, cx, slotW, y0, y1 int, lo, hi float32) {
	b, ok := boxStats32(s.Values)
	if !ok {
		return
	}
	boxHalf := slotW / 4
	if boxHalf < 2 {
		boxHalf = 2
	}
	capHalf := boxHalf / 2
	if capHalf < 1 {
		capHalf = 1
	}

	yMin := yFor(b.min, lo, hi, y0, y1)
	yMax := yFor(b.max, lo, hi, y0, y1)
	yQ1 := yFor(b.q1, lo, hi, y0, y1)
	yQ3 := yFor(b.q3, lo, hi, y0, y1)
	yMed := yFor(b.med, lo, hi, y0, y1)

	// Whiskers and caps.
	fb.DrawVLine(cx, yMax, yQ3, s.Color)
	fb.DrawVLine(cx, yQ1, yMin, s.Color)
	fb.DrawHLine(cx-capHalf, cx+capHalf, yMax, s.Color)
	fb.DrawHLine(cx-capHalf, cx+capHalf, yMin, s.Color)

	// Box outline and median.
	fb.DrawRect(cx-boxHalf, yQ3, cx+boxHalf, yQ1, s.Color)
	fb.DrawHLine(cx-boxHalf, cx+boxHalf, yMed, RGBA{0xF8, 0xF8, 0xF2, 0xFF})

	for _, o := range b.outliers {
		fb.DrawCross(cx, yFor(o, lo, hi, y0, y1), 2, s.Color)
	}
}

func (p *Plot) drawViolin(fb *Framebuffer, s Series, cx, slotW, y0, y1 int, lo, hi float32) {
	points := p.KDEPoints
	if points < 2 {
		points = 64
	}
	dens := kdeDensities32(s.Values, lo, hi, points)
	if dens == nil {
		return
	}
	maxHalf := slotW/2 - 2
	if maxHalf < 2 {
		maxHalf = 2
	}

	// Fill the mirrored polygon row by row; dens[0] is at lo (bottom).
	for y := y0; y <= y1; y++ {
		frac := float64(y1-y) / float64(y1-y0)
		idx := int(frac*float64(points-1) + 0.5)
		half := int(dens[idx] * float64(maxHalf))
		if half < 1 {
			continue
		}
		fb.DrawHLine(cx-half, cx+half, y, s.Color)
	}

	if p.InnerBox {
		b, ok := boxStats32(s.Values)
		if !ok {
			return
		}
		white := RGBA{0xF8, 0xF8, 0xF2, 0xFF}
		yQ1 := yFor(b.q1, lo, hi, y0, y1)
		yQ3 := yFor(b.q3, lo, hi, y0, y1)
		yMed := yFor(b.med, lo, hi, y0, y1)
		fb.DrawRect(cx-2, yQ3, cx+2, yQ1, white)
		fb.DrawHLine(cx-2, cx+2, yMed, white)
	}
}
