package engine

import (
	"os"
	"sort"

	"github.com/rjmorel/statgrid/model"
)

// Watch adds path to the growth watchlist. threshold is the growth rate
// in bytes/s above which the entry alerts; zero disables alerting.
func (a *Analyzer) Watch(path string, threshold float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if w, ok := a.watchlist[path]; ok {
		w.AlertThreshold = threshold
		return
	}
	a.watchlist[path] = &model.WatchedFile{
		Path:           path,
		AlertThreshold: threshold,
	}
}

// Unwatch removes path from the watchlist.
func (a *Analyzer) Unwatch(path string) {
	a.mu.Lock()
	delete(a.watchlist, path)
	a.mu.Unlock()
}

// updateWatchlist samples the current size of every watched path. Runs on
// every Collect call, including rate-limited ones; stat failures are
// skipped so a temporarily missing file keeps its history.
func (a *Analyzer) updateWatchlist() {
	a.mu.Lock()
	defer a.mu.Unlock()
	now := a.now()
	for _, w := range a.watchlist {
		info, err := os.Stat(w.Path)
		if err != nil || info.IsDir() {
			continue
		}
		w.Record(now, uint64(info.Size()))
	}
}

// Watchlist returns the watched files ordered by path.
func (a *Analyzer) Watchlist() []model.WatchedFile {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]model.WatchedFile, 0, len(a.watchlist))
	for _, w := range a.watchlist {
		out = append(out, *w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// AlertingFiles returns watched files whose growth rate exceeds their
// threshold, fastest growth first.
func (a *Analyzer) AlertingFiles() []model.WatchedFile {
	all := a.Watchlist()
	out := all[:0]
	for _, w := range all {
		if w.IsAlerting() {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GrowthRate > out[j].GrowthRate })
	return out
}
