package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rjmorel/statgrid/config"
	"github.com/rjmorel/statgrid/engine"
	"github.com/rjmorel/statgrid/model"
	"github.com/rjmorel/statgrid/raster"
	"github.com/rjmorel/statgrid/ui"
)

// Version is set at build time via ldflags.
var Version = "0.3.0"

// Options holds CLI configuration.
type Options struct {
	Root       string
	Interval   time.Duration
	JSONMode   bool
	WatchMode  bool
	WatchCount int
	PlotMode   string
	PlotWidth  int
	NoFsWatch  bool
}

// validPlots lists encodings for -plot.
var validPlots = []string{"ascii", "half", "truecolor"}

func printUsage() {
	fmt.Fprintf(os.Stderr, `statgrid v%s — directory statistics monitor

Usage:
  statgrid [OPTIONS] [ROOT]

Modes:
  (default)         Interactive TUI (bubbletea, fullscreen)
  -watch            CLI output mode — prints one summary line per scan
  -json             Single JSON snapshot to stdout, then exit
  -plot MODE        Render a size box plot per file type to stdout
                    Modes: ascii, half, truecolor
  -version          Print version and exit

Options:
  -interval N       Refresh interval in seconds (default: 1)
  -count N          Iterations for -watch mode (0 = infinite, default: 0)
  -width N          Character width for -plot output (default: 72)
  -no-fswatch       Disable inotify touch hints between scans

Positional:
  ROOT              Directory to scan (default: config root, then ".")

Examples:
  statgrid                       Interactive TUI on the config root
  statgrid /var/log              Interactive TUI on /var/log
  statgrid -watch -count 5 .     Five scan summaries, then exit
  statgrid -json . | jq '.metrics'
  statgrid -plot half /data      Half-block box plot of sizes by type
`, Version)
}

// Run parses flags and starts the application.
func Run() error {
	var opts Options
	var intervalSec int
	var showVersion bool

	flag.IntVar(&intervalSec, "interval", 0, "Refresh interval in seconds (0 = config value)")
	flag.BoolVar(&opts.JSONMode, "json", false, "Output a single JSON snapshot and exit")
	flag.BoolVar(&opts.WatchMode, "watch", false, "CLI output mode (no TUI)")
	flag.IntVar(&opts.WatchCount, "count", 0, "Iterations for -watch (0=infinite)")
	flag.StringVar(&opts.PlotMode, "plot", "", "Render a size box plot (ascii,half,truecolor)")
	flag.IntVar(&opts.PlotWidth, "width", 72, "Character width for -plot output")
	flag.BoolVar(&opts.NoFsWatch, "no-fswatch", false, "Disable inotify touch hints")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")

	flag.Usage = printUsage
	flag.Parse()

	if showVersion {
		fmt.Printf("statgrid v%s\n", Version)
		return nil
	}

	if opts.PlotMode != "" {
		valid := false
		for _, p := range validPlots {
			if opts.PlotMode == p {
				valid = true
				break
			}
		}
		if !valid {
			fmt.Fprintf(os.Stderr, "Error: unknown plot mode %q\n", opts.PlotMode)
			fmt.Fprintf(os.Stderr, "Valid modes: %s\n\n", strings.Join(validPlots, ", "))
			printUsage()
			os.Exit(1)
		}
	}

	cfg := config.Load()
	opts.Root = cfg.Root
	if args := flag.Args(); len(args) > 0 {
		opts.Root = args[0]
	}
	if intervalSec <= 0 {
		intervalSec = cfg.IntervalSec
	}
	if intervalSec <= 0 {
		intervalSec = 1
	}
	opts.Interval = time.Duration(intervalSec) * time.Second

	if _, err := os.Stat(opts.Root); err != nil {
		return fmt.Errorf("cannot scan %s: %w", opts.Root, err)
	}

	a := engine.NewAnalyzer(opts.Root)
	a.SetScanInterval(time.Duration(cfg.ScanIntervalSec) * time.Second)
	a.SetEntropySampleSize(cfg.EntropySampleSize)
	for _, w := range cfg.Watchlist {
		a.Watch(w.Path, w.AlertThreshold)
	}

	if opts.JSONMode {
		return runJSON(a)
	}
	if opts.PlotMode != "" {
		return runPlot(a, opts)
	}

	if cfg.WatchFs && !opts.NoFsWatch {
		fw, err := engine.NewFsWatcher(a)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: fs watcher unavailable: %v\n", err)
		} else {
			defer fw.Close()
		}
	}

	if opts.WatchMode {
		return runWatch(a, opts)
	}

	m := ui.NewModel(a, opts.Interval, nil)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// snapshot is the -json output document.
type snapshot struct {
	Timestamp  time.Time              `json:"timestamp"`
	Root       string                 `json:"root"`
	FileCount  int                    `json:"file_count"`
	MaxDepth   int                    `json:"max_depth"`
	Metrics    model.ActivityMetrics  `json:"metrics"`
	Largest    []model.FileEntry      `json:"largest"`
	Duplicates []model.DuplicateGroup `json:"duplicates"`
	Watchlist  []model.WatchedFile    `json:"watchlist,omitempty"`
}

// runJSON scans once and dumps the snapshot to stdout.
func runJSON(a *engine.Analyzer) error {
	if _, err := a.Collect(); err != nil {
		return err
	}
	metrics, _ := a.CurrentMetrics()
	doc := snapshot{
		Timestamp:  time.Now(),
		Root:       a.Root(),
		FileCount:  len(a.Files()),
		MaxDepth:   a.MaxDepth(),
		Metrics:    metrics,
		Largest:    a.LargestFiles(20),
		Duplicates: a.Duplicates(),
		Watchlist:  a.Watchlist(),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// runWatch prints one summary line per interval.
func runWatch(a *engine.Analyzer, opts Options) error {
	ticker := time.NewTicker(opts.Interval)
	defer ticker.Stop()

	iter := 0
	for range ticker.C {
		if _, err := a.Collect(); err != nil {
			return err
		}
		m, ok := a.CurrentMetrics()
		if !ok {
			continue
		}
		ts := time.Now().Format("15:04:05")
		fmt.Printf("[%s] files=%d hi-io=%d hi-entropy=%d dupes=%d wasted=%d recent=%d avg-entropy=%.2f\n",
			ts, len(a.Files()), m.HighIO, m.HighEntropy, m.Duplicates, m.WastedBytes, m.Recent, m.AvgEntropy)
		for _, w := range a.AlertingFiles() {
			fmt.Printf("  ALERT %s growing at %.0f B/s\n", w.Path, w.GrowthRate)
		}
		iter++
		if opts.WatchCount > 0 && iter >= opts.WatchCount {
			return nil
		}
	}
	return nil
}

// plotPalette cycles series colors for -plot.
var plotPalette = []raster.RGBA{
	{R: 0x50, G: 0xFA, B: 0x7B, A: 0xFF},
	{R: 0x8B, G: 0xE9, B: 0xFD, A: 0xFF},
	{R: 0xFF, G: 0xB8, B: 0x6C, A: 0xFF},
	{R: 0xF1, G: 0xFA, B: 0x8C, A: 0xFF},
	{R: 0xFF, G: 0x55, B: 0x55, A: 0xFF},
	{R: 0xBD, G: 0x93, B: 0xF9, A: 0xFF},
}

// runPlot scans once, draws a per-type size box plot into a framebuffer,
// and encodes it for the terminal.
func runPlot(a *engine.Analyzer, opts Options) error {
	if _, err := a.Collect(); err != nil {
		return err
	}
	byType := make(map[model.FileType][]float32)
	for _, f := range a.Files() {
		byType[f.Type] = append(byType[f.Type], float32(f.Size))
	}

	plot := raster.NewPlot()
	for t := model.FileType(0); int(t) <= int(model.FileOther); t++ {
		values := byType[t]
		if len(values) < 2 {
			continue
		}
		plot.Series = append(plot.Series, raster.Series{
			Label:  t.String(),
			Values: values,
			Color:  plotPalette[len(plot.Series)%len(plotPalette)],
		})
	}
	if len(plot.Series) == 0 {
		return fmt.Errorf("not enough files under %s to plot", a.Root())
	}

	fb := raster.NewFramebuffer(opts.PlotWidth*4, opts.PlotWidth*2)
	if err := plot.Render(fb); err != nil {
		return err
	}

	enc := raster.Encoder{Width: opts.PlotWidth}
	switch opts.PlotMode {
	case "half":
		enc.Mode = raster.ModeHalfBlock
	case "truecolor":
		enc.Mode = raster.ModeTrueColor
	default:
		enc.Mode = raster.ModeASCII
	}
	fmt.Print(enc.Encode(fb))
	return nil
}
