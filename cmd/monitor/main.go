// monitor is a headless version of statgrid that prints scan metrics to
// stdout.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/rjmorel/statgrid/engine"
	"github.com/rjmorel/statgrid/util"
)

func main() {
	interval := flag.Int("interval", 1, "Refresh interval in seconds")
	duration := flag.Int("duration", 60, "How long to run in seconds (0=forever)")
	root := flag.String("root", ".", "Directory to scan")
	flag.Parse()

	a := engine.NewAnalyzer(*root)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(time.Duration(*interval) * time.Second)
	defer ticker.Stop()

	deadline := time.Time{}
	if *duration > 0 {
		deadline = time.Now().Add(time.Duration(*duration) * time.Second)
	}

	fmt.Printf("statgrid monitor — headless scan output for %s\n", *root)
	fmt.Println(strings.Repeat("=", 72))

	var prevWasted uint64
	var prevT time.Time
	for {
		select {
		case <-sig:
			fmt.Println("\nStopped.")
			return
		case <-ticker.C:
			if !deadline.IsZero() && time.Now().After(deadline) {
				fmt.Println("\nDuration reached.")
				return
			}
			ran, err := a.Collect()
			if err != nil {
				fmt.Fprintf(os.Stderr, "scan: %v\n", err)
				continue
			}
			m, ok := a.CurrentMetrics()
			if !ok {
				continue
			}
			ts := m.Timestamp.Format("15:04:05")

			if ran {
				wasteRate := ""
				if !prevT.IsZero() {
					r := util.Rate(prevWasted, m.WastedBytes, m.Timestamp.Sub(prevT))
					if r > 0 {
						wasteRate = fmt.Sprintf("  waste+%.0fB/s", r)
					}
				}
				fmt.Printf("[%s] files=%d hi-io=%d hi-entropy=%d dupes=%d wasted=%s%s\n",
					ts, len(a.Files()), m.HighIO, m.HighEntropy, m.Duplicates,
					humanize.IBytes(m.WastedBytes), wasteRate)
				for _, f := range a.HotFiles(3) {
					fmt.Printf("  hot %-40s %s\n", f.Path, humanize.IBytes(f.Size))
				}
				prevWasted = m.WastedBytes
				prevT = m.Timestamp
			}

			for _, w := range a.AlertingFiles() {
				fmt.Printf("  ALERT %s growing at %.0f B/s (threshold %.0f)\n",
					w.Path, w.GrowthRate, w.AlertThreshold)
			}
		}
	}
}
