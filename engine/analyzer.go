// Package engine holds the file analyzer: a rate-limited directory scan
// enriched with type classification, recency, duplicate grouping, entropy
// sampling, a growth watchlist, and a bounded per-scan metrics history.
package engine

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/rjmorel/statgrid/model"
	"github.com/rjmorel/statgrid/stats"
)

// Scan bounds. The caps guarantee termination on pathological trees.
const (
	MaxFiles = 10_000
	MaxDepth = 20

	DefaultScanInterval      = 30 * time.Second
	DefaultEntropySampleSize = 2048

	// entropyTopFiles is how many of the largest files get sampled.
	entropyTopFiles = 20

	// duplicateMinSize excludes tiny files from duplicate grouping.
	duplicateMinSize = 1024

	// recentThreshold is the modification window for IsRecent.
	recentThreshold = 10 * time.Minute

	metricsHistoryCap = 60
)

// skipDirs are never descended into.
var skipDirs = map[string]bool{
	".git":        true,
	"target":      true,
	"__pycache__": true,
}

// Analyzer scans a directory tree and maintains the file snapshot.
// Time-gated like the big-file collector: a Collect call inside the scan
// interval only refreshes the watchlist and returns cached results.
type Analyzer struct {
	root              string
	scanInterval      time.Duration
	entropySampleSize int

	mu         sync.RWMutex
	lastScan   time.Time
	files      []model.FileEntry
	duplicates []model.DuplicateGroup
	watchlist  map[string]*model.WatchedFile
	history    []model.ActivityMetrics
	touched    map[string]time.Time // write hints from the fs watcher
	maxDepth   int

	// now is swappable for tests.
	now func() time.Time
}

// NewAnalyzer creates an analyzer rooted at root with default bounds.
func NewAnalyzer(root string) *Analyzer {
	return &Analyzer{
		root:              root,
		scanInterval:      DefaultScanInterval,
		entropySampleSize: DefaultEntropySampleSize,
		watchlist:         make(map[string]*model.WatchedFile),
		touched:           make(map[string]time.Time),
		now:               time.Now,
	}
}

// SetScanInterval overrides the rescan gate.
func (a *Analyzer) SetScanInterval(d time.Duration) {
	a.mu.Lock()
	a.scanInterval = d
	a.mu.Unlock()
}

// Invalidate forces the next Collect to run a full scan regardless of
// the scan interval.
func (a *Analyzer) Invalidate() {
	a.mu.Lock()
	a.lastScan = time.Time{}
	a.mu.Unlock()
}

// SetEntropySampleSize overrides how many bytes each entropy probe reads.
func (a *Analyzer) SetEntropySampleSize(n int) {
	a.mu.Lock()
	if n > 0 {
		a.entropySampleSize = n
	}
	a.mu.Unlock()
}

// Root returns the scan root.
func (a *Analyzer) Root() string { return a.root }

// NoteTouched records a write hint for path; the next Collect promotes
// its I/O activity to high. Called by the fs watcher.
func (a *Analyzer) NoteTouched(path string) {
	a.mu.Lock()
	a.touched[path] = a.now()
	a.mu.Unlock()
}

// Collect refreshes the snapshot. Inside the scan interval only the
// watchlist is updated; otherwise the prior state is cleared and the tree
// is re-walked under MaxFiles/MaxDepth, then duplicates are grouped, the
// largest files are entropy-sampled, and a metrics record is pushed.
// The bool reports whether a full scan ran.
func (a *Analyzer) Collect() (bool, error) {
	a.mu.Lock()
	interval := a.scanInterval
	due := a.lastScan.IsZero() || a.now().Sub(a.lastScan) >= interval
	a.mu.Unlock()

	a.updateWatchlist()
	if !due {
		return false, nil
	}

	entries, maxDepth := a.walk()

	groups := groupDuplicates(entries)
	dupPaths := make(map[string]bool)
	for _, g := range groups {
		for _, p := range g.Paths {
			dupPaths[p] = true
		}
	}
	for i := range entries {
		entries[i].IsDuplicate = dupPaths[entries[i].Path]
	}

	a.sampleEntropy(entries)

	a.mu.Lock()
	// Promote write-hinted paths, then drop consumed hints.
	for i := range entries {
		if _, ok := a.touched[entries[i].Path]; ok {
			entries[i].IoActivity = model.IoHigh
		}
	}
	a.touched = make(map[string]time.Time)

	a.files = entries
	a.duplicates = groups
	a.maxDepth = maxDepth
	a.lastScan = a.now()
	a.pushMetricsLocked()
	a.mu.Unlock()
	return true, nil
}

// walk scans the tree, swallowing per-entry errors.
func (a *Analyzer) walk() ([]model.FileEntry, int) {
	var out []model.FileEntry
	maxDepth := 0
	now := a.now()

	var descend func(dir string, depth int)
	descend = func(dir string, depth int) {
		if depth > MaxDepth || len(out) >= MaxFiles {
			return
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			return
		}
		for _, e := range entries {
			if len(out) >= MaxFiles {
				return
			}
			name := e.Name()
			full := filepath.Join(dir, name)
			if e.IsDir() {
				if skipDirs[name] {
					continue
				}
				descend(full, depth+1)
				continue
			}
			if !e.Type().IsRegular() {
				continue
			}
			info, err := e.Info()
			if err != nil {
				continue
			}
			mod := info.ModTime()
			age := now.Sub(mod)
			fe := model.FileEntry{
				Path:       full,
				Size:       uint64(info.Size()),
				Type:       model.ClassifyPath(full),
				Depth:      depth,
				Modified:   mod,
				IsRecent:   age >= 0 && age < recentThreshold,
				IoActivity: ioActivityFor(age),
			}
			if depth > maxDepth {
				maxDepth = depth
			}
			out = append(out, fe)
		}
	}
	descend(a.root, 0)
	return out, maxDepth
}

// ioActivityFor derives a coarse I/O level from modification recency.
// There is no portable per-file I/O accounting, so recency is the proxy.
func ioActivityFor(age time.Duration) model.IoActivity {
	switch {
	case age < 0:
		return model.IoNone
	case age < 60*time.Second:
		return model.IoHigh
	case age < 180*time.Second:
		return model.IoMedium
	case age < recentThreshold:
		return model.IoLow
	default:
		return model.IoNone
	}
}

// groupDuplicates buckets entries by exact byte size (> duplicateMinSize)
// and emits groups with at least two members, largest waste first.
func groupDuplicates(entries []model.FileEntry) []model.DuplicateGroup {
	bySize := make(map[uint64][]string)
	for _, e := range entries {
		if e.Size <= duplicateMinSize {
			continue
		}
		bySize[e.Size] = append(bySize[e.Size], e.Path)
	}
	var groups []model.DuplicateGroup
	for size, paths := range bySize {
		if len(paths) < 2 {
			continue
		}
		sort.Strings(paths)
		groups = append(groups, model.DuplicateGroup{
			Size:        size,
			Paths:       paths,
			WastedBytes: size * uint64(len(paths)-1),
		})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].WastedBytes != groups[j].WastedBytes {
			return groups[i].WastedBytes > groups[j].WastedBytes
		}
		return groups[i].Size > groups[j].Size
	})
	return groups
}

// sampleEntropy probes the largest files and fills Entropy/EntropyLevel
// in place. Read failures leave the entry at EntropyUnknown.
func (a *Analyzer) sampleEntropy(entries []model.FileEntry) {
	a.mu.RLock()
	sampleSize := a.entropySampleSize
	a.mu.RUnlock()

	idx := make([]int, len(entries))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool {
		return entries[idx[i]].Size > entries[idx[j]].Size
	})
	if len(idx) > entropyTopFiles {
		idx = idx[:entropyTopFiles]
	}
	// Deterministic order regardless of how probes might be scheduled.
	sort.Ints(idx)

	for _, i := range idx {
		score, ok := probeEntropy(entries[i].Path, int64(entries[i].Size), sampleSize)
		if !ok {
			continue
		}
		entries[i].Entropy = score
		entries[i].EntropyLevel = model.EntropyLevelOf(score)
	}
}

// probeEntropy reads up to sampleSize bytes from the head, plus a second
// chunk from the midpoint when the file exceeds twice the sample size,
// and returns the normalized Shannon entropy of the combined sample.
func probeEntropy(path string, size int64, sampleSize int) (float64, bool) {
	if size == 0 || sampleSize <= 0 {
		return 0, false
	}
	f, err := os.Open(path)
	if err != nil {
		return 0, false
	}
	defer f.Close()

	buf := make([]byte, sampleSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF {
		return 0, false
	}
	sample := buf[:n]

	if size > 2*int64(sampleSize) {
		mid := make([]byte, sampleSize)
		if _, err := f.Seek(size/2, io.SeekStart); err == nil {
			m, err := io.ReadFull(f, mid)
			if err == nil || err == io.ErrUnexpectedEOF {
				sample = append(sample, mid[:m]...)
			}
		}
	}
	return stats.ShannonEntropy(sample)
}
