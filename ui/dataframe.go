package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rjmorel/statgrid/model"
)

// CellKind tags the dataframe cell union. The set is closed; rendering
// is a single switch, not an interface.
type CellKind int

const (
	KindNull CellKind = iota
	KindBool
	KindInt
	KindFloat
	KindText
	KindSparkline
	KindProgress
	KindStatus
	KindTrend
	KindMicroBar
)

// CellValue is one dataframe cell.
type CellValue struct {
	Kind   CellKind
	B      bool
	I      int64
	F      float64 // float, progress pct, trend delta, microbar value
	S      string
	Vec    []float64 // sparkline samples
	Status model.StatusLevel
	Max    float64 // microbar denominator
}

// Null returns the missing-cell value.
func Null() CellValue { return CellValue{Kind: KindNull} }

// Bool makes a boolean cell.
func Bool(v bool) CellValue { return CellValue{Kind: KindBool, B: v} }

// Int makes an integer cell.
func Int(v int64) CellValue { return CellValue{Kind: KindInt, I: v} }

// Float makes a two-decimal fixed cell.
func Float(v float64) CellValue { return CellValue{Kind: KindFloat, F: v} }

// Text makes a plain text cell.
func Text(s string) CellValue { return CellValue{Kind: KindText, S: s} }

// SparklineCell makes an inline block-ramp history cell.
func SparklineCell(values []float64) CellValue {
	return CellValue{Kind: KindSparkline, Vec: values}
}

// ProgressCell makes a percentage bar cell; pct is clamped to [0,100].
func ProgressCell(pct float64) CellValue { return CellValue{Kind: KindProgress, F: pct} }

// StatusCell makes a status glyph cell.
func StatusCell(s model.StatusLevel) CellValue {
	return CellValue{Kind: KindStatus, Status: s}
}

// TrendCell makes an arrow + delta cell; delta is a fraction.
func TrendCell(delta float64) CellValue { return CellValue{Kind: KindTrend, F: delta} }

// MicroBarCell makes a compact value/max bar cell.
func MicroBarCell(value, max float64) CellValue {
	return CellValue{Kind: KindMicroBar, F: value, Max: max}
}

// Align selects cell alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Column is a named, fixed-width dataframe column. All columns of a
// frame have equal length; a missing cell is Null.
type Column struct {
	Name   string
	Values []CellValue
	Width  int
	Align  Align
}

// DataFrame renders tabular data with inline sparkline, progress, trend,
// status, and microbar cells.
type DataFrame struct {
	columns     []Column
	visibleRows int
	scroll      int
	selected    int // -1 = none
	showHeader  bool
	showRowNums bool
	title       string
}

// NewDataFrame returns a frame with header enabled and no selection.
func NewDataFrame() *DataFrame {
	return &DataFrame{visibleRows: 20, selected: -1, showHeader: true}
}

// AddColumn appends a column.
func (d *DataFrame) AddColumn(c Column) *DataFrame {
	if c.Width < 1 {
		c.Width = 8
	}
	d.columns = append(d.columns, c)
	return d
}

// SetVisibleRows sets the row window height.
func (d *DataFrame) SetVisibleRows(n int) *DataFrame {
	if n > 0 {
		d.visibleRows = n
	}
	return d
}

// SetScroll sets the first visible row index.
func (d *DataFrame) SetScroll(offset int) *DataFrame {
	if offset < 0 {
		offset = 0
	}
	d.scroll = offset
	return d
}

// SetSelected highlights one row; pass -1 to clear.
func (d *DataFrame) SetSelected(row int) *DataFrame { d.selected = row; return d }

// ShowRowNumbers toggles the row-number gutter.
func (d *DataFrame) ShowRowNumbers(on bool) *DataFrame { d.showRowNums = on; return d }

// ShowHeader toggles the header row.
func (d *DataFrame) ShowHeader(on bool) *DataFrame { d.showHeader = on; return d }

// SetTitle sets an optional title row.
func (d *DataFrame) SetTitle(t string) *DataFrame { d.title = t; return d }

// RowCount returns the longest column length.
func (d *DataFrame) RowCount() int {
	n := 0
	for _, c := range d.columns {
		if len(c.Values) > n {
			n = len(c.Values)
		}
	}
	return n
}

// rowNumWidth is the gutter width when row numbers are shown.
func (d *DataFrame) rowNumWidth() int {
	if !d.showRowNums {
		return 0
	}
	return len(strconv.Itoa(d.RowCount())) + 1
}

// Render draws the frame into area. All writes are clipped.
func (d *DataFrame) Render(b *Buffer, area Rect) error {
	if area.W <= 0 || area.H <= 0 {
		return ErrEmptyArea
	}
	y := area.Y
	if d.title != "" {
		b.WriteString(area.X, y, Truncate(d.title, area.W), model.ColorCyan)
		y++
	}

	gutter := d.rowNumWidth()
	if d.showHeader {
		x := area.X + gutter
		for _, c := range d.columns {
			name := PadDisplay(Truncate(c.Name, c.Width), c.Width)
			for i, r := range []rune(name) {
				b.Set(x+i, y, Cell{Rune: r, Fg: model.ColorGray, Bold: true})
			}
			x += c.Width + 1
		}
		y++
	}

	rows := d.RowCount()
	for vis := 0; vis < d.visibleRows; vis++ {
		row := d.scroll + vis
		if row >= rows {
			break
		}
		ry := y + vis
		if ry >= area.Bottom() {
			break
		}
		selected := row == d.selected
		if selected {
			d.fillRowBackground(b, area, ry)
		}
		if d.showRowNums {
			num := PadLeft(strconv.Itoa(row), gutter-1)
			b.WriteString(area.X, ry, num, model.ColorGray)
		}
		x := area.X + gutter
		for _, c := range d.columns {
			val := Null()
			if row < len(c.Values) {
				val = c.Values[row]
			}
			RenderCellValue(b, x, ry, c, val, selected)
			x += c.Width + 1
		}
	}
	return nil
}

func (d *DataFrame) fillRowBackground(b *Buffer, area Rect, y int) {
	for x := area.X; x < area.Right(); x++ {
		if cell, ok := b.Cell(x, y); ok {
			cell.Bg = model.ColorDarkGray
			cell.HasBg = true
		}
	}
}

// RenderCellValue is the one dispatch point for every cell kind. It is
// exported so panels can place single cells outside a full frame.
func RenderCellValue(b *Buffer, x, y int, col Column, v CellValue, selected bool) {
	fg := model.ColorWhite
	text := ""

	switch v.Kind {
	case KindNull:
		// empty

	case KindBool:
		text = "false"
		if v.B {
			text = "true"
		}
		fg = model.ColorGray

	case KindInt:
		text = strconv.FormatInt(v.I, 10)

	case KindFloat:
		text = fmt.Sprintf("%.2f", v.F)

	case KindText:
		text = v.S

	case KindSparkline:
		runes := SparklineString(v.Vec, col.Width)
		for i, r := range runes {
			putCell(b, x+i, y, r, model.ColorCyan, selected)
		}
		return

	case KindProgress:
		pct := v.F
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
		barW := col.Width - 5
		if barW < 1 {
			barW = 1
		}
		filled := int(pct/100*float64(barW) + 0.5)
		if filled > barW {
			filled = barW
		}
		bar := strings.Repeat("▓", filled) + strings.Repeat("░", barW-filled)
		text = bar + PadLeft(fmt.Sprintf("%.0f%%", pct), 5)
		fg = PercentColor(pct)

	case KindStatus:
		putCell(b, x, y, v.Status.Icon(), v.Status.Color(), selected)
		return

	case KindTrend:
		arrow, color := trendArrow(v.F)
		putCell(b, x, y, arrow, color, selected)
		label := fmt.Sprintf("%+.1f%%", v.F*100)
		for i, r := range []rune(Truncate(label, col.Width-2)) {
			putCell(b, x+2+i, y, r, color, selected)
		}
		return

	case KindMicroBar:
		frac := 0.0
		if v.Max > 0 {
			frac = v.F / v.Max
		}
		if frac < 0 {
			frac = 0
		}
		if frac > 1 {
			frac = 1
		}
		filled := int(frac*float64(col.Width) + 0.5)
		text = strings.Repeat("█", filled) + strings.Repeat("░", col.Width-filled)
		fg = PercentColor(frac * 100)
	}

	text = Truncate(text, col.Width)
	if col.Align == AlignRight {
		text = PadLeft(text, col.Width)
	}
	for i, r := range []rune(text) {
		putCell(b, x+i, y, r, fg, selected)
	}
}

// putCell writes one glyph, preserving the selected-row background.
func putCell(b *Buffer, x, y int, r rune, fg model.RGB, selected bool) {
	cell, ok := b.Cell(x, y)
	if !ok {
		return
	}
	cell.Rune = r
	cell.Fg = fg
	if selected {
		cell.Bg = model.ColorDarkGray
		cell.HasBg = true
	}
}

// trendArrow keys the five-arrow set by the ±0.1 and ±0.02 thresholds.
func trendArrow(delta float64) (rune, model.RGB) {
	switch {
	case delta >= 0.1:
		return '↑', model.ColorRed
	case delta >= 0.02:
		return '↗', model.ColorOrange
	case delta <= -0.1:
		return '↓', model.ColorGreen
	case delta <= -0.02:
		return '↘', model.ColorCyan
	default:
		return '→', model.ColorGray
	}
}
