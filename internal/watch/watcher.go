// Package watch monitors a Custom Scenery directory for pack changes so the
// organizer can rescan and re-lint without being restarted.
package watch

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeKind describes the kind of change detected.
type ChangeKind int

const (
	PackAdded    ChangeKind = iota // new pack folder appeared
	PackRemoved                    // pack folder deleted
	PackModified                   // pack contents or the manifest changed
)

// Change is one detected scenery change.
type Change struct {
	Kind ChangeKind
	Name string // pack folder name, or the manifest file name
	Path string // absolute path
}

// Watcher monitors a Custom Scenery directory using fsnotify. Events are
// debounced: installers unzip thousands of files, and one Change per pack is
// enough to trigger a rescan.
type Watcher struct {
	Dir     string
	Changes <-chan Change

	changes chan Change
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the given Custom Scenery directory.
func NewWatcher(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan Change, 16)
	return &Watcher{
		Dir:     dir,
		Changes: ch,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}, nil
}

// Start begins watching. Only the top-level directory is watched: a pack is
// its top-level folder, and the manifest lives beside them.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.Dir); err != nil {
		return err
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and the Changes channel.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	const debounce = 250 * time.Millisecond
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				for path := range pending {
					w.emit(path)
				}
				return
			}
			if !w.isRelevant(event.Name) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending[event.Name] = time.Now()
			}

		case _, ok := <-ticker.C:
			if !ok {
				return
			}
			now := time.Now()
			for path, t := range pending {
				if now.Sub(t) >= debounce {
					w.emit(path)
					delete(pending, path)
				}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the next rescan catches up.
		}
	}
}

// isRelevant filters out editor droppings and hidden files.
func (w *Watcher) isRelevant(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") {
		return false
	}
	return true
}

func (w *Watcher) emit(path string) {
	change := Change{Kind: PackModified, Name: filepath.Base(path), Path: path}
	info, err := os.Stat(path)
	switch {
	case err != nil:
		change.Kind = PackRemoved
	case info.IsDir():
		change.Kind = PackAdded
	}

	// Never block: a full buffer means the consumer is backlogged or gone,
	// and the next rescan catches up anyway. Keeps Stop safe unconditionally.
	select {
	case w.changes <- change:
	default:
	}
}
