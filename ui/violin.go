package ui

import (
	"math"
	"sort"

	"github.com/rjmorel/statgrid/model"
	"github.com/rjmorel/statgrid/stats"
)

// ViolinStats is the summary row shown next to a violin.
type ViolinStats struct {
	Min, Max, Median, Q1, Q3, Mean float64
}

// ViolinData is one labeled sample with cached derived state. The KDE
// and box caches are invalidated by SetData.
type ViolinData struct {
	Label string
	Color model.RGB

	values []float64

	kde       []float64
	kdePoints int
	kdeMin    float64
	kdeMax    float64

	box    *stats.BoxStats
	vstats *ViolinStats
}

// NewViolinData creates a violin sample.
func NewViolinData(label string, values []float64, color model.RGB) *ViolinData {
	d := &ViolinData{Label: label, Color: color}
	d.SetData(values)
	return d
}

// SetData replaces the sample and drops the cached KDE and box stats.
func (d *ViolinData) SetData(values []float64) {
	d.values = append([]float64(nil), values...)
	d.kde = nil
	d.box = nil
	d.vstats = nil
}

// Values returns the sample.
func (d *ViolinData) Values() []float64 {
	return d.values
}

// Stats computes (and caches) the percentile summary.
func (d *ViolinData) Stats() (ViolinStats, bool) {
	if d.vstats != nil {
		return *d.vstats, true
	}
	if len(d.values) == 0 {
		return ViolinStats{}, false
	}
	sorted := append([]float64(nil), d.values...)
	sort.Float64s(sorted)
	min, _ := stats.Percentile(sorted, 0)
	q1, _ := stats.Percentile(sorted, 25)
	med, _ := stats.Percentile(sorted, 50)
	q3, _ := stats.Percentile(sorted, 75)
	max, _ := stats.Percentile(sorted, 100)
	s := ViolinStats{
		Min: min, Q1: q1, Median: med, Q3: q3, Max: max,
		Mean: stats.Mean(sorted),
	}
	d.vstats = &s
	return s, true
}

// Box computes (and caches) the Tukey box statistics.
func (d *ViolinData) Box() (stats.BoxStats, bool) {
	if d.box != nil {
		return *d.box, true
	}
	b, ok := stats.NewBoxStats(d.values)
	if !ok {
		return stats.BoxStats{}, false
	}
	d.box = &b
	return b, true
}

// Densities returns the normalized KDE sampled at points positions over
// [min, max], cached until SetData or a parameter change.
func (d *ViolinData) Densities(min, max float64, points int) []float64 {
	if d.kde != nil && d.kdePoints == points && d.kdeMin == min && d.kdeMax == max {
		return d.kde
	}
	k, ok := stats.NewKDE(d.values)
	if !ok {
		return nil
	}
	d.kde = k.Sample(min, max, points)
	d.kdePoints = points
	d.kdeMin = min
	d.kdeMax = max
	return d.kde
}

// densityRamp shades a violin body by local density.
var densityRamp = []rune{'░', '▒', '▓', '█'}

// Violin renders one or more kernel density "violins" side by side.
type Violin struct {
	data       []*ViolinData
	orient     Orientation
	showBox    bool
	showMedian bool
	kdePoints  int
	title      string

	hasRange   bool
	rangeMin   float64
	rangeMax   float64
}

// NewViolin returns a violin plot with 50 KDE sample points, vertical
// orientation, and box/median overlays enabled.
func NewViolin() *Violin {
	return &Violin{orient: Vertical, showBox: true, showMedian: true, kdePoints: 50}
}

// Add appends a violin sample.
func (v *Violin) Add(d *ViolinData) *Violin {
	v.data = append(v.data, d)
	return v
}

// SetOrientation selects the long axis.
func (v *Violin) SetOrientation(o Orientation) *Violin { v.orient = o; return v }

// SetShowBox toggles the inner box overlay.
func (v *Violin) SetShowBox(show bool) *Violin { v.showBox = show; return v }

// SetShowMedian toggles the median line.
func (v *Violin) SetShowMedian(show bool) *Violin { v.showMedian = show; return v }

// SetTitle sets an optional title row.
func (v *Violin) SetTitle(t string) *Violin { v.title = t; return v }

// SetKDEPoints sets the density sample count, clamped to [10, 200].
func (v *Violin) SetKDEPoints(n int) *Violin {
	if n < 10 {
		n = 10
	}
	if n > 200 {
		n = 200
	}
	v.kdePoints = n
	return v
}

// SetRange fixes the value axis instead of deriving it from the data.
func (v *Violin) SetRange(min, max float64) *Violin {
	v.hasRange = true
	v.rangeMin = min
	v.rangeMax = max
	return v
}

// valueRange returns the plot range: explicit if set, else the data
// extent padded like a constant histogram.
func (v *Violin) valueRange() (float64, float64, bool) {
	if v.hasRange {
		return v.rangeMin, v.rangeMax, v.rangeMax > v.rangeMin
	}
	first := true
	var lo, hi float64
	for _, d := range v.data {
		for _, x := range d.values {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				continue
			}
			if first {
				lo, hi, first = x, x, false
				continue
			}
			if x < lo {
				lo = x
			}
			if x > hi {
				hi = x
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

// Render draws the violins into area.
func (v *Violin) Render(b *Buffer, area Rect) error {
	if area.W <= 0 || area.H <= 0 {
		return ErrEmptyArea
	}
	if len(v.data) == 0 {
		return nil
	}
	lo, hi, ok := v.valueRange()
	if !ok {
		return nil
	}

	plot := area
	if v.title != "" {
		b.WriteString(area.X, area.Y, Truncate(v.title, area.W), model.ColorCyan)
		plot = Rect{X: area.X, Y: area.Y + 1, W: area.W, H: area.H - 1}
		if plot.H <= 0 {
			return nil
		}
	}

	if v.orient == Horizontal {
		v.renderHorizontal(b, plot, lo, hi)
		return nil
	}
	v.renderVertical(b, plot, lo, hi)
	return nil
}

func (v *Violin) renderVertical(b *Buffer, plot Rect, lo, hi float64) {
	slotW := plot.W / len(v.data)
	if slotW < 1 {
		slotW = 1
	}
	for j, d := range v.data {
		dens := d.Densities(lo, hi, v.kdePoints)
		if dens == nil {
			continue
		}
		center := plot.X + j*slotW + slotW/2
		maxHalf := (slotW - 1) / 2
		if maxHalf < 1 {
			maxHalf = 1
		}

		for row := 0; row < plot.H; row++ {
			// Row 0 is the top of the plot (= hi).
			frac := 1.0
			if plot.H > 1 {
				frac = 1 - float64(row)/float64(plot.H-1)
			}
			idx := int(frac*float64(len(dens)-1) + 0.5)
			density := dens[idx]
			if density <= 0 {
				continue
			}
			half := int(density * float64(maxHalf))
			shade := int(density*3 + 0.5)
			if shade > len(densityRamp)-1 {
				shade = len(densityRamp) - 1
			}
			glyph := densityRamp[shade]
			for dx := -half; dx <= half; dx++ {
				b.SetRune(center+dx, plot.Y+row, glyph, d.Color)
			}
		}

		if v.showBox {
			v.overlayBoxVertical(b, d, plot, center, lo, hi)
		}
		if v.showMedian {
			if s, ok := d.Stats(); ok {
				y := rowForValue(s.Median, lo, hi, plot)
				for dx := -maxHalf; dx <= maxHalf; dx++ {
					b.SetRune(center+dx, y, '─', model.ColorWhite)
				}
			}
		}
	}
}

func (v *Violin) overlayBoxVertical(b *Buffer, d *ViolinData, plot Rect, center int, lo, hi float64) {
	box, ok := d.Box()
	if !ok {
		return
	}
	yMin := rowForValue(box.Min, lo, hi, plot)
	yMax := rowForValue(box.Max, lo, hi, plot)
	yQ1 := rowForValue(box.Q1, lo, hi, plot)
	yQ3 := rowForValue(box.Q3, lo, hi, plot)
	for y := yMax; y <= yMin; y++ { // yMax is the higher row (smaller y)
		glyph := '│'
		if y >= yQ3 && y <= yQ1 {
			glyph = '┃'
		}
		b.SetRune(center, y, glyph, model.ColorWhite)
	}
}

func (v *Violin) renderHorizontal(b *Buffer, plot Rect, lo, hi float64) {
	slotH := plot.H / len(v.data)
	if slotH < 1 {
		slotH = 1
	}
	for j, d := range v.data {
		dens := d.Densities(lo, hi, v.kdePoints)
		if dens == nil {
			continue
		}
		center := plot.Y + j*slotH + slotH/2
		maxHalf := (slotH - 1) / 2
		if maxHalf < 1 {
			maxHalf = 1
		}

		for col := 0; col < plot.W; col++ {
			frac := 0.0
			if plot.W > 1 {
				frac = float64(col) / float64(plot.W-1)
			}
			idx := int(frac*float64(len(dens)-1) + 0.5)
			density := dens[idx]
			if density <= 0 {
				continue
			}
			half := int(density * float64(maxHalf))
			glyph := rampGlyph(density)
			for dy := -half; dy <= half; dy++ {
				b.SetRune(plot.X+col, center+dy, glyph, d.Color)
			}
		}

		if v.showMedian {
			if s, ok := d.Stats(); ok {
				x := colForValue(s.Median, lo, hi, plot)
				for dy := -maxHalf; dy <= maxHalf; dy++ {
					b.SetRune(x, center+dy, '│', model.ColorWhite)
				}
			}
		}
	}
}

// rowForValue maps a value to a plot row (top = hi).
func rowForValue(v, lo, hi float64, plot Rect) int {
	if hi <= lo {
		return plot.Y
	}
	frac := (v - lo) / (hi - lo)
	row := plot.Bottom() - 1 - int(frac*float64(plot.H-1)+0.5)
	if row < plot.Y {
		row = plot.Y
	}
	if row > plot.Bottom()-1 {
		row = plot.Bottom() - 1
	}
	return row
}

// colForValue maps a value to a plot column (left = lo).
func colForValue(v, lo, hi float64, plot Rect) int {
	if hi <= lo {
		return plot.X
	}
	frac := (v - lo) / (hi - lo)
	col := plot.X + int(frac*float64(plot.W-1)+0.5)
	if col < plot.X {
		col = plot.X
	}
	if col > plot.Right()-1 {
		col = plot.Right() - 1
	}
	return col
}
