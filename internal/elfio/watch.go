package elfio

import (
	"github.com/fsnotify/fsnotify"
)

// Validation reports the outcome of re-parsing one watched file.
type Validation struct {
	Path string
	Err  error // nil if the file decoded as a well-formed ELF32 image
}

// Watcher watches a directory of build outputs and re-validates every
// created or written file against elf32.FromBytes, reporting a
// Validation per event. Adapted from internal/runtime/vfs's
// FSNotifyWatcher: same event-loop-over-a-channel shape, specialized so
// the payload is a decode outcome instead of a raw filesystem event.
type Watcher struct {
	w    *fsnotify.Watcher
	outC chan Validation
}

// NewWatcher starts watching dir.
func NewWatcher(dir string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}
	wt := &Watcher{w: w, outC: make(chan Validation, 128)}
	go wt.loop()
	return wt, nil
}

func (wt *Watcher) loop() {
	for {
		select {
		case ev, ok := <-wt.w.Events:
			if !ok {
				close(wt.outC)
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			_, err := Load(FileSource{Path: ev.Name})
			wt.outC <- Validation{Path: ev.Name, Err: err}
		case _, ok := <-wt.w.Errors:
			if !ok {
				return
			}
		}
	}
}

// Validations streams one Validation per watched write/create event.
func (wt *Watcher) Validations() <-chan Validation { return wt.outC }

// Close stops the watch.
func (wt *Watcher) Close() error { return wt.w.Close() }
