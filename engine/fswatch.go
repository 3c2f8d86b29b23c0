package engine

import (
	"log"

	"github.com/fsnotify/fsnotify"
)

// FsWatcher forwards filesystem write events to an analyzer as touch
// hints, so activity shows up between rate-limited scans. Optional: the
// analyzer works without one.
type FsWatcher struct {
	w    *fsnotify.Watcher
	done chan struct{}
}

// NewFsWatcher starts watching the analyzer's root directory (non
// recursive; fsnotify does not descend) and feeds write/create events
// into the analyzer.
func NewFsWatcher(a *Analyzer) (*FsWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(a.Root()); err != nil {
		w.Close()
		return nil, err
	}
	fw := &FsWatcher{w: w, done: make(chan struct{})}
	go fw.run(a)
	return fw, nil
}

func (fw *FsWatcher) run(a *Analyzer) {
	for {
		select {
		case ev, ok := <-fw.w.Events:
			if !ok {
				return
			}
			if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) {
				a.NoteTouched(ev.Name)
			}
		case err, ok := <-fw.w.Errors:
			if !ok {
				return
			}
			log.Printf("statgrid: warning: fs watcher: %v", err)
		case <-fw.done:
			return
		}
	}
}

// Close stops the watcher.
func (fw *FsWatcher) Close() error {
	close(fw.done)
	return fw.w.Close()
}
