package ui

import (
	"errors"
	"fmt"
	"math"

	"github.com/rjmorel/statgrid/model"
)

// Normalization selects the denominator for confusion-matrix cell
// shading.
type Normalization int

const (
	NormNone Normalization = iota
	NormRow
	NormColumn
	NormTotal
)

// MatrixPalette maps a normalized cell value to background and text
// colors. IsDiagonal lets a palette highlight correct classifications.
type MatrixPalette int

const (
	PaletteBlueRed MatrixPalette = iota
	PaletteDiagonalGreen
	PaletteGrayscale
	PaletteBlues
)

// Color returns the cell background for a normalized value.
func (p MatrixPalette) Color(norm float64, isDiagonal bool) model.RGB {
	if norm < 0 {
		norm = 0
	}
	if norm > 1 {
		norm = 1
	}
	switch p {
	case PaletteDiagonalGreen:
		if isDiagonal {
			return BlendRGB(model.ColorDarkGray, model.ColorGreen, norm)
		}
		return BlendRGB(model.ColorDarkGray, model.ColorRed, norm)
	case PaletteGrayscale:
		v := uint8(norm*255 + 0.5)
		return model.RGB{R: v, G: v, B: v}
	case PaletteBlues:
		return BlendRGB(model.RGB{R: 0x10, G: 0x18, B: 0x30}, model.ColorBlue, norm)
	default: // PaletteBlueRed
		return BlendRGB(model.ColorBlue, model.ColorRed, norm)
	}
}

// TextColor returns a readable foreground for a normalized value.
func (p MatrixPalette) TextColor(norm float64) model.RGB {
	if p == PaletteGrayscale && norm > 0.5 {
		return model.RGB{}
	}
	return model.ColorWhite
}

var errNotSquare = errors.New("ui: confusion matrix must be square with one label per class")

// ConfusionMatrix renders an N×N classification count matrix with
// row = actual class and column = predicted class.
type ConfusionMatrix struct {
	counts    [][]float64
	labels    []string
	norm      Normalization
	palette   MatrixPalette
	cellWidth int
	showVals  bool
	showPcts  bool
	showAcc   bool
	title     string

	built bool
}

// NewConfusionMatrix returns a widget with raw-count cells, the blue-red
// palette, and a cell width of 7.
func NewConfusionMatrix() *ConfusionMatrix {
	return &ConfusionMatrix{palette: PaletteBlueRed, cellWidth: 7, showVals: true}
}

// SetCounts sets the square count matrix and class labels.
func (c *ConfusionMatrix) SetCounts(counts [][]float64, labels []string) *ConfusionMatrix {
	c.counts = counts
	c.labels = labels
	c.built = false
	return c
}

// SetNormalization selects the shading denominator.
func (c *ConfusionMatrix) SetNormalization(n Normalization) *ConfusionMatrix {
	c.norm = n
	return c
}

// SetPalette selects the cell palette.
func (c *ConfusionMatrix) SetPalette(p MatrixPalette) *ConfusionMatrix {
	c.palette = p
	return c
}

// SetCellWidth sets the cell width, floored at 3.
func (c *ConfusionMatrix) SetCellWidth(w int) *ConfusionMatrix {
	if w < 3 {
		w = 3
	}
	c.cellWidth = w
	return c
}

// ShowPercentages renders cells as round(norm·100)% instead of counts.
func (c *ConfusionMatrix) ShowPercentages(on bool) *ConfusionMatrix {
	c.showPcts = on
	return c
}

// ShowAccuracy appends an accuracy footer.
func (c *ConfusionMatrix) ShowAccuracy(on bool) *ConfusionMatrix {
	c.showAcc = on
	return c
}

// SetTitle sets an optional title row.
func (c *ConfusionMatrix) SetTitle(t string) *ConfusionMatrix {
	c.title = t
	return c
}

// Build validates the configuration. Idempotent.
func (c *ConfusionMatrix) Build() error {
	if c.built {
		return nil
	}
	n := len(c.counts)
	if n == 0 || len(c.labels) != n {
		return errNotSquare
	}
	for _, row := range c.counts {
		if len(row) != n {
			return errNotSquare
		}
	}
	c.built = true
	return nil
}

// total sums every cell.
func (c *ConfusionMatrix) total() float64 {
	sum := 0.0
	for _, row := range c.counts {
		for _, v := range row {
			sum += v
		}
	}
	return sum
}

// Accuracy is trace / total, 0 on an empty matrix.
func (c *ConfusionMatrix) Accuracy() float64 {
	total := c.total()
	if total == 0 {
		return 0
	}
	diag := 0.0
	for i := range c.counts {
		diag += c.counts[i][i]
	}
	return diag / total
}

// Precision is M[c][c] / column total, 0 on a zero denominator.
func (c *ConfusionMatrix) Precision(class int) float64 {
	col := 0.0
	for i := range c.counts {
		col += c.counts[i][class]
	}
	if col == 0 {
		return 0
	}
	return c.counts[class][class] / col
}

// Recall is M[c][c] / row total, 0 on a zero denominator.
func (c *ConfusionMatrix) Recall(class int) float64 {
	row := 0.0
	for _, v := range c.counts[class] {
		row += v
	}
	if row == 0 {
		return 0
	}
	return c.counts[class][class] / row
}

// F1 is the harmonic mean of precision and recall, 0 when both vanish.
func (c *ConfusionMatrix) F1(class int) float64 {
	p := c.Precision(class)
	r := c.Recall(class)
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

// MacroF1 is the unweighted mean of per-class F1.
func (c *ConfusionMatrix) MacroF1() float64 {
	n := len(c.counts)
	if n == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += c.F1(i)
	}
	return sum / float64(n)
}

// Normalized returns the [0,1] shading value for cell (row, col).
func (c *ConfusionMatrix) Normalized(row, col int) float64 {
	v := c.counts[row][col]
	var denom float64
	switch c.norm {
	case NormRow:
		for _, x := range c.counts[row] {
			denom += x
		}
	case NormColumn:
		for i := range c.counts {
			denom += c.counts[i][col]
		}
	case NormTotal:
		denom = c.total()
	default:
		for _, r := range c.counts {
			for _, x := range r {
				if x > denom {
					denom = x
				}
			}
		}
	}
	if denom == 0 {
		return 0
	}
	return v / denom
}

// Render draws the matrix into area: label column, one shaded cell per
// (actual, predicted) pair, and an optional accuracy footer. Cell text
// is truncated, never wrapped.
func (c *ConfusionMatrix) Render(b *Buffer, area Rect) error {
	if area.W <= 0 || area.H <= 0 {
		return ErrEmptyArea
	}
	if err := c.Build(); err != nil {
		return err
	}

	y := area.Y
	if c.title != "" {
		b.WriteString(area.X, y, Truncate(c.title, area.W), model.ColorCyan)
		y++
	}

	labelW := 0
	for _, l := range c.labels {
		if len(l) > labelW {
			labelW = len(l)
		}
	}
	if labelW > 10 {
		labelW = 10
	}

	// Header row of predicted-class labels.
	x := area.X + labelW + 1
	for _, l := range c.labels {
		b.WriteString(x, y, PadRight(Truncate(l, c.cellWidth-1), c.cellWidth), model.ColorGray)
		x += c.cellWidth
	}
	y++

	n := len(c.counts)
	for row := 0; row < n; row++ {
		b.WriteString(area.X, y, PadRight(Truncate(c.labels[row], labelW), labelW), model.ColorGray)
		x = area.X + labelW + 1
		for col := 0; col < n; col++ {
			norm := c.Normalized(row, col)
			bg := c.palette.Color(norm, row == col)
			fg := c.palette.TextColor(norm)

			text := c.cellText(row, col, norm)
			text = PadRight(Truncate(text, c.cellWidth), c.cellWidth)
			for i, r := range []rune(text) {
				b.Set(x+i, y, Cell{Rune: r, Fg: fg, Bg: bg, HasBg: true})
			}
			x += c.cellWidth
		}
		y++
	}

	if c.showAcc {
		footer := fmt.Sprintf("acc %.1f%%  macro-F1 %.2f", c.Accuracy()*100, c.MacroF1())
		b.WriteString(area.X, y, Truncate(footer, area.W), model.ColorWhite)
	}
	return nil
}

func (c *ConfusionMatrix) cellText(row, col int, norm float64) string {
	if c.showPcts {
		return fmt.Sprintf("%d%%", int(math.Round(norm*100)))
	}
	if c.showVals {
		return fmt.Sprintf("%.0f", c.counts[row][col])
	}
	return ""
}
