package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rjmorel/statgrid/engine"
	"github.com/rjmorel/statgrid/model"
)

// Page identifies the current screen.
type Page int

const (
	PageFiles Page = iota
	PageCharts
	PageMatrix
	PagePeers
	pageCount
)

var pageNames = []string{"Files", "Charts", "Matrix", "Peers"}

type tickMsg time.Time

// scanMsg carries the outcome of one analyzer collection.
type scanMsg struct {
	ran bool
	err error
}

// ConnSource supplies the peers page; the host owns socket accounting.
type ConnSource func() []Connection

// Model is the bubbletea model.
type Model struct {
	analyzer *engine.Analyzer
	interval time.Duration
	conns    ConnSource

	width  int
	height int

	page     Page
	selected int // file table row
	showHelp bool
	paused   bool

	scanErr  string
	scanErrT time.Time

	// Entropy level per path from the previous scan, for the
	// transition matrix page.
	prevLevels map[string]model.EntropyLevel
	transition [][]float64
}

// NewModel creates the TUI model around a prepared analyzer.
func NewModel(a *engine.Analyzer, interval time.Duration, conns ConnSource) Model {
	return Model{
		analyzer:   a,
		interval:   interval,
		conns:      conns,
		selected:   -1,
		prevLevels: make(map[string]model.EntropyLevel),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(m.interval), scanOnce(m.analyzer))
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func scanOnce(a *engine.Analyzer) tea.Cmd {
	return func() tea.Msg {
		ran, err := a.Collect()
		return scanMsg{ran: ran, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "?":
			m.showHelp = true
		case "a":
			m.paused = !m.paused
			if !m.paused {
				return m, tea.Batch(tick(m.interval), scanOnce(m.analyzer))
			}
		case "r":
			m.analyzer.Invalidate()
			return m, scanOnce(m.analyzer)
		case "1":
			m.page = PageFiles
		case "2":
			m.page = PageCharts
		case "3":
			m.page = PageMatrix
		case "4":
			m.page = PagePeers
		case "b", "esc":
			m.page = PageFiles
		case "tab":
			m.page = (m.page + 1) % pageCount
		case "j", "down":
			if m.page == PageFiles && m.selected < 9 {
				m.selected++
			}
		case "k", "up":
			if m.page == PageFiles && m.selected > -1 {
				m.selected--
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tickMsg:
		if m.paused {
			return m, nil
		}
		return m, tea.Batch(tick(m.interval), scanOnce(m.analyzer))
	case scanMsg:
		if msg.err != nil {
			m.scanErr = msg.err.Error()
			m.scanErrT = time.Now()
		}
		if msg.ran {
			m.updateTransition()
		}
	}
	return m, nil
}

// updateTransition folds the new scan into the entropy-level
// transition counts keyed against the previous scan.
func (m *Model) updateTransition() {
	n := int(model.EntropyVeryHigh) + 1
	counts := make([][]float64, n)
	for i := range counts {
		counts[i] = make([]float64, n)
	}
	next := make(map[string]model.EntropyLevel)
	for _, f := range m.analyzer.Files() {
		level := model.EntropyLevelOf(f.Entropy)
		next[f.Path] = level
		if prev, ok := m.prevLevels[f.Path]; ok {
			counts[int(prev)][int(level)]++
		}
	}
	m.prevLevels = next
	m.transition = counts
}

func (m Model) View() string {
	if m.showHelp {
		return m.renderHelp()
	}
	if m.width == 0 {
		return "Loading..."
	}
	bufH := m.height - 1
	if bufH < 3 {
		bufH = 3
	}
	b := NewBuffer(m.width, bufH)
	area := Rect{X: 0, Y: 0, W: m.width, H: bufH}

	var err error
	switch m.page {
	case PageFiles:
		p := &FilePanel{Analyzer: m.analyzer, Selected: m.selected}
		err = p.Render(b, area)
	case PageCharts:
		err = m.renderCharts(b, area)
	case PageMatrix:
		err = m.renderMatrix(b, area)
	case PagePeers:
		err = m.renderPeers(b, area)
	}
	if err != nil {
		b.WriteString(0, 0, Truncate(err.Error(), m.width), model.ColorRed)
	}

	return b.String() + m.renderStatusBar()
}

// renderCharts splits the page between a size histogram and an
// entropy violin.
func (m Model) renderCharts(b *Buffer, area Rect) error {
	files := m.analyzer.Files()
	if len(files) == 0 {
		b.WriteString(area.X, area.Y, "waiting for first scan", model.ColorGray)
		return nil
	}
	sizes := make([]float64, 0, len(files))
	entropies := make([]float64, 0, len(files))
	for _, f := range files {
		sizes = append(sizes, float64(f.Size))
		if f.Entropy > 0 {
			entropies = append(entropies, f.Entropy)
		}
	}

	half := area.H / 2
	top, ok := ClampRect(area, area.X, area.Y, area.W, half)
	if ok {
		h := NewHistogram().
			SetValues(sizes).
			SetTitle("file sizes").
			SetStyle(BarBlocks).
			SetColor(model.ColorCyan)
		if err := h.Render(b, top); err != nil {
			return err
		}
	}
	bottom, ok := ClampRect(area, area.X, area.Y+half, area.W, area.H-half)
	if ok && len(entropies) >= 2 {
		v := NewViolin().
			Add(NewViolinData("entropy", entropies, model.ColorOrange)).
			SetTitle("entropy").
			SetOrientation(Horizontal)
		return v.Render(b, bottom)
	}
	return nil
}

// renderMatrix shows entropy-level drift between consecutive scans.
func (m Model) renderMatrix(b *Buffer, area Rect) error {
	if m.transition == nil {
		b.WriteString(area.X, area.Y, "need two scans for drift matrix", model.ColorGray)
		return nil
	}
	labels := []string{"unk", "low", "med", "high", "vhigh"}
	cm := NewConfusionMatrix().
		SetCounts(m.transition, labels).
		SetTitle("entropy drift").
		SetNormalization(NormRow).
		SetPalette(PaletteDiagonalGreen).
		ShowAccuracy(true)
	return cm.Render(b, area)
}

func (m Model) renderPeers(b *Buffer, area Rect) error {
	if m.conns == nil {
		b.WriteString(area.X, area.Y, "no peer source attached", model.ColorGray)
		return nil
	}
	p := &GeoPanel{Connections: m.conns()}
	return p.Render(b, area)
}

func (m Model) renderStatusBar() string {
	var tabs []string
	for i, name := range pageNames {
		label := fmt.Sprintf("%d:%s", i+1, name)
		if Page(i) == m.page {
			tabs = append(tabs, titleStyle.Render("["+label+"]"))
		} else {
			tabs = append(tabs, dimStyle.Render(" "+label+" "))
		}
	}
	left := strings.Join(tabs, "")
	if m.paused {
		left += "  " + critStyle.Render("[PAUSED]")
	}
	if alerts := m.analyzer.AlertingFiles(); len(alerts) > 0 {
		w := alerts[0]
		left += "  " + rateStyle(w.GrowthRate, w.AlertThreshold).Render(
			fmt.Sprintf("%s %+.0f B/s", filepath.Base(w.Path), w.GrowthRate))
	}
	if m.scanErr != "" && time.Since(m.scanErrT) < 10*time.Second {
		left += "  " + warnStyle.Render(m.scanErr)
	}

	help := helpStyle.Render("r:rescan  a:pause  ?:help  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(help)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + help
}

func (m Model) renderHelp() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("statgrid — directory statistics monitor"))
	sb.WriteString("\n\n")
	sb.WriteString("  1         Files (table, metrics, watchlist)\n")
	sb.WriteString("  2         Charts (size histogram, entropy violin)\n")
	sb.WriteString("  3         Matrix (entropy drift between scans)\n")
	sb.WriteString("  4         Peers (GeoIP classification)\n")
	sb.WriteString("  tab       Next page\n")
	sb.WriteString("  j/k       Move table selection\n")
	sb.WriteString("  r         Force a rescan\n")
	sb.WriteString("  a         Toggle auto-refresh\n")
	sb.WriteString("  q/Ctrl+C  Quit\n")
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("Press any key to close"))
	return sb.String()
}
