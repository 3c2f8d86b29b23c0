package engine

import (
	"sort"

	"github.com/rjmorel/statgrid/model"
)

// Files returns a copy of the current snapshot.
func (a *Analyzer) Files() []model.FileEntry {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]model.FileEntry(nil), a.files...)
}

// RecentFiles returns the entries modified within the recent threshold,
// newest first.
func (a *Analyzer) RecentFiles() []model.FileEntry {
	a.mu.RLock()
	defer a.mu.RUnlock()
	var out []model.FileEntry
	for _, f := range a.files {
		if f.IsRecent {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Modified.After(out[j].Modified) })
	return out
}

// Duplicates returns the duplicate groups, largest waste first.
func (a *Analyzer) Duplicates() []model.DuplicateGroup {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]model.DuplicateGroup(nil), a.duplicates...)
}

// topN sorts a copy of the snapshot by less and truncates to n.
func (a *Analyzer) topN(n int, keep func(model.FileEntry) bool, less func(x, y model.FileEntry) bool) []model.FileEntry {
	a.mu.RLock()
	ranked := make([]model.FileEntry, 0, len(a.files))
	for _, f := range a.files {
		if keep == nil || keep(f) {
			ranked = append(ranked, f)
		}
	}
	a.mu.RUnlock()
	sort.Slice(ranked, func(i, j int) bool { return less(ranked[i], ranked[j]) })
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// LargestFiles returns the n largest entries.
func (a *Analyzer) LargestFiles(n int) []model.FileEntry {
	return a.topN(n, nil, func(x, y model.FileEntry) bool { return x.Size > y.Size })
}

// HotFiles returns the n entries with the highest I/O activity, most
// recently modified first within a level.
func (a *Analyzer) HotFiles(n int) []model.FileEntry {
	return a.topN(n,
		func(f model.FileEntry) bool { return f.IoActivity != model.IoNone },
		func(x, y model.FileEntry) bool {
			if x.IoActivity != y.IoActivity {
				return x.IoActivity > y.IoActivity
			}
			return x.Modified.After(y.Modified)
		})
}

// HighEntropyFiles returns the n sampled entries with the highest
// entropy scores.
func (a *Analyzer) HighEntropyFiles(n int) []model.FileEntry {
	return a.topN(n,
		func(f model.FileEntry) bool { return f.Entropy > 0 },
		func(x, y model.FileEntry) bool { return x.Entropy > y.Entropy })
}

// LowEntropyFiles returns the n sampled entries with the lowest entropy
// scores.
func (a *Analyzer) LowEntropyFiles(n int) []model.FileEntry {
	return a.topN(n,
		func(f model.FileEntry) bool { return f.Entropy > 0 },
		func(x, y model.FileEntry) bool { return x.Entropy < y.Entropy })
}

// DuplicateFiles returns the n largest entries that belong to a
// duplicate group.
func (a *Analyzer) DuplicateFiles(n int) []model.FileEntry {
	return a.topN(n,
		func(f model.FileEntry) bool { return f.IsDuplicate },
		func(x, y model.FileEntry) bool { return x.Size > y.Size })
}

// TotalWasted sums wasted bytes across all duplicate groups.
func (a *Analyzer) TotalWasted() uint64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	var total uint64
	for _, g := range a.duplicates {
		total += g.WastedBytes
	}
	return total
}

// MaxDepth returns the deepest directory level seen in the last scan.
func (a *Analyzer) MaxDepth() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.maxDepth
}

// DepthIntensity returns how populated depth d is relative to the
// busiest depth, in [0,1].
func (a *Analyzer) DepthIntensity(d int) float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if d < 0 {
		return 0
	}
	counts := make(map[int]int)
	peak := 0
	for _, f := range a.files {
		counts[f.Depth]++
		if counts[f.Depth] > peak {
			peak = counts[f.Depth]
		}
	}
	if peak == 0 {
		return 0
	}
	return float64(counts[d]) / float64(peak)
}
