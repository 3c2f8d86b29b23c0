package ui

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/rjmorel/statgrid/engine"
	"github.com/rjmorel/statgrid/geoip"
	"github.com/rjmorel/statgrid/model"
)

// FilePanel composes the analyzer snapshot into a cell buffer: metric
// sparklines, a ranked file table with inline history cells, duplicate
// groups, the watchlist, and the depth intensity strip. Panels borrow
// the buffer for one frame and never mutate the analyzer.
type FilePanel struct {
	Analyzer *engine.Analyzer
	Selected int // selected table row, -1 for none
}

// Render draws the panel into area.
func (p *FilePanel) Render(b *Buffer, area Rect) error {
	if area.W <= 0 || area.H <= 0 {
		return ErrEmptyArea
	}
	y := area.Y

	y = p.renderMetrics(b, area, y)
	y = p.renderDepthStrip(b, area, y)
	y = p.renderFileTable(b, area, y)
	p.renderWatchlist(b, area, y)
	return nil
}

// metricRows pairs a label with its normalized history series.
var metricRows = []struct {
	label string
	name  string
	color model.RGB
}{
	{"io   ", engine.MetricHighIO, model.ColorRed},
	{"entr ", engine.MetricHighEntropy, model.ColorOrange},
	{"dupes", engine.MetricDuplicates, model.ColorYellow},
	{"new  ", engine.MetricRecent, model.ColorGreen},
}

func (p *FilePanel) renderMetrics(b *Buffer, area Rect, y int) int {
	m, ok := p.Analyzer.CurrentMetrics()
	header := "files — waiting for first scan"
	if ok {
		header = fmt.Sprintf("files  hi-io=%d  hi-entropy=%d  dupes=%d  wasted=%s",
			m.HighIO, m.HighEntropy, m.Duplicates, humanize.IBytes(m.WastedBytes))
	}
	b.WriteString(area.X, y, Truncate(header, area.W), model.ColorCyan)
	y++

	sparkW := area.W - 6
	if sparkW < 4 {
		return y
	}
	for _, row := range metricRows {
		if y >= area.Bottom() {
			return y
		}
		b.WriteString(area.X, y, row.label, model.ColorGray)
		Sparkline(b, area.X+6, y, sparkW, p.Analyzer.MetricHistory(row.name), row.color)
		y++
	}
	return y + 1
}

// renderDepthStrip draws one split-bar row: top channel = depth
// intensity, bottom channel = average entropy at that depth band.
func (p *FilePanel) renderDepthStrip(b *Buffer, area Rect, y int) int {
	if y >= area.Bottom() {
		return y
	}
	maxDepth := p.Analyzer.MaxDepth()
	b.WriteString(area.X, y, "depth", model.ColorGray)

	top := make([]model.RGB, 0, maxDepth+1)
	bottom := make([]model.RGB, 0, maxDepth+1)
	for d := 0; d <= maxDepth && len(top) < area.W-6; d++ {
		intensity := p.Analyzer.DepthIntensity(d)
		top = append(top, BlendRGB(model.ColorDarkGray, model.ColorCyan, intensity))
		bottom = append(bottom, EntropyColor(intensity))
	}
	SplitBar(b, area.X+6, y, top, bottom)
	return y + 2
}

func (p *FilePanel) renderFileTable(b *Buffer, area Rect, y int) int {
	files := p.Analyzer.LargestFiles(10)
	if len(files) == 0 || y >= area.Bottom() {
		return y
	}

	nameW := area.W - 46
	if nameW < 12 {
		nameW = 12
	}
	frame := NewDataFrame().
		SetVisibleRows(len(files)).
		SetSelected(p.Selected)

	var names, sizes, types, gauges []CellValue
	var acts, ents []CellValue
	for _, f := range files {
		names = append(names, Text(Truncate(f.Path, nameW)))
		sizes = append(sizes, Text(humanize.IBytes(f.Size)))
		types = append(types, Text(f.Type.String()))
		acts = append(acts, StatusCell(ioStatus(f.IoActivity)))
		ents = append(ents, ProgressCell(f.Entropy*100))
		dupPct := 0.0
		if f.IsDuplicate {
			dupPct = 100
		}
		gauge, _ := EntropyHeatmap(f.Entropy, dupPct)
		gauges = append(gauges, Text(gauge))
	}
	frame.AddColumn(Column{Name: "path", Values: names, Width: nameW}).
		AddColumn(Column{Name: "size", Values: sizes, Width: 9, Align: AlignRight}).
		AddColumn(Column{Name: "type", Values: types, Width: 7}).
		AddColumn(Column{Name: "io", Values: acts, Width: 2}).
		AddColumn(Column{Name: "entropy", Values: ents, Width: 12}).
		AddColumn(Column{Name: "heat", Values: gauges, Width: 12})

	sub, ok := ClampRect(area, area.X, y, area.W, area.Bottom()-y)
	if !ok {
		return y
	}
	_ = frame.Render(b, sub)
	return y + len(files) + 2
}

func (p *FilePanel) renderWatchlist(b *Buffer, area Rect, y int) {
	watched := p.Analyzer.Watchlist()
	if len(watched) == 0 || y >= area.Bottom() {
		return
	}
	b.WriteString(area.X, y, "watchlist", model.ColorCyan)
	y++
	for _, w := range watched {
		if y >= area.Bottom() {
			return
		}
		color := model.ColorGreen
		if w.IsAlerting() {
			color = model.ColorRed
		}
		line := fmt.Sprintf("%s  %+.0f B/s", Truncate(w.Path, area.W-14), w.GrowthRate)
		b.WriteString(area.X, y, line, color)
		y++
	}
}

// ioStatus folds I/O activity into the dataframe status enum.
func ioStatus(a model.IoActivity) model.StatusLevel {
	switch a {
	case model.IoHigh:
		return model.StatusCrit
	case model.IoMedium:
		return model.StatusWarn
	case model.IoNone:
		return model.StatusUnknown
	default:
		return model.StatusOk
	}
}

// Connection is a host-supplied network peer record for the geo panel.
// The core looks up the country; the host owns the socket accounting.
type Connection struct {
	RemoteAddr string
	BytesIn    uint64
	BytesOut   uint64
}

// GeoPanel lists remote peers with their GeoIP classification.
type GeoPanel struct {
	Connections []Connection
}

// Render draws one row per connection: flag, country code, address, and
// a microbar of relative traffic.
func (p *GeoPanel) Render(b *Buffer, area Rect) error {
	if area.W <= 0 || area.H <= 0 {
		return ErrEmptyArea
	}
	b.WriteString(area.X, area.Y, "peers", model.ColorCyan)

	var maxBytes uint64 = 1
	for _, c := range p.Connections {
		if t := c.BytesIn + c.BytesOut; t > maxBytes {
			maxBytes = t
		}
	}

	y := area.Y + 1
	for _, c := range p.Connections {
		if y >= area.Bottom() {
			break
		}
		flag := geoip.Flag(c.RemoteAddr)
		code := geoip.CountryCode(c.RemoteAddr)
		total := c.BytesIn + c.BytesOut

		x := area.X
		x += b.WriteString(x, y, PadDisplay(flag, 3), model.ColorWhite)
		x += b.WriteString(x, y, PadRight(code, 8), model.ColorGray)
		x += b.WriteString(x, y, PadRight(Truncate(c.RemoteAddr, 21), 22), model.ColorWhite)

		barW := area.Right() - x - 10
		if barW > 0 {
			bar := MicroBarCell(float64(total), float64(maxBytes))
			col := Column{Width: barW}
			RenderCellValue(b, x, y, col, bar, false)
			x += barW + 1
		}
		b.WriteString(x, y, humanize.IBytes(total), model.ColorGray)
		y++
	}
	return nil
}
