package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// waitFor reads changes until one matches, with a generous deadline: CI
// filesystems deliver inotify events slowly.
func waitFor(t *testing.T, ch <-chan Change, match func(Change) bool) Change {
	t.Helper()
	deadline := time.After(10 * time.Second)
	for {
		select {
		case c, ok := <-ch:
			if !ok {
				t.Fatal("changes channel closed before a matching event")
			}
			if match(c) {
				return c
			}
		case <-deadline:
			t.Fatal("no matching change within deadline")
		}
	}
}

func startWatcher(t *testing.T, dir string) *Watcher {
	t.Helper()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return w
}

func TestWatcher_PackAdded(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := startWatcher(t, dir)
	defer w.Stop()

	if err := os.Mkdir(filepath.Join(dir, "New Pack"), 0o755); err != nil {
		t.Fatal(err)
	}

	c := waitFor(t, w.Changes, func(c Change) bool { return c.Name == "New Pack" })
	if c.Kind != PackAdded {
		t.Errorf("Kind = %v, want PackAdded", c.Kind)
	}
}

func TestWatcher_ManifestModified(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ini := filepath.Join(dir, "scenery_packs.ini")
	if err := os.WriteFile(ini, []byte("I\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := startWatcher(t, dir)
	defer w.Stop()

	if err := os.WriteFile(ini, []byte("I\n1000 Version\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := waitFor(t, w.Changes, func(c Change) bool { return c.Name == "scenery_packs.ini" })
	if c.Kind != PackModified {
		t.Errorf("Kind = %v, want PackModified", c.Kind)
	}
}

func TestWatcher_PackRemoved(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pack := filepath.Join(dir, "Doomed Pack")
	if err := os.Mkdir(pack, 0o755); err != nil {
		t.Fatal(err)
	}

	w := startWatcher(t, dir)
	defer w.Stop()

	if err := os.Remove(pack); err != nil {
		t.Fatal(err)
	}

	c := waitFor(t, w.Changes, func(c Change) bool { return c.Name == "Doomed Pack" })
	if c.Kind != PackRemoved {
		t.Errorf("Kind = %v, want PackRemoved", c.Kind)
	}
}

func TestEmit_DoesNotBlockWithoutConsumer(t *testing.T) {
	t.Parallel()

	// An unbuffered channel with no reader: emit must drop the event and
	// return instead of blocking.
	w := &Watcher{changes: make(chan Change)}
	w.emit(filepath.Join(t.TempDir(), "gone"))
}

func TestStop_SafeWithUnreadBacklog(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := startWatcher(t, dir)

	// Overflow the change buffer without ever reading from it.
	for i := 0; i < 32; i++ {
		if err := os.Mkdir(filepath.Join(dir, fmt.Sprintf("Pack %02d", i)), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	time.Sleep(600 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("Stop blocked on an unread backlog")
	}
}

func TestIsRelevant(t *testing.T) {
	t.Parallel()

	w := &Watcher{}
	tests := []struct {
		path string
		want bool
	}{
		{"/cs/New Pack", true},
		{"/cs/scenery_packs.ini", true},
		{"/cs/.DS_Store", false},
		{"/cs/.hidden", false},
		{"/cs/backup~", false},
	}
	for _, tt := range tests {
		if got := w.isRelevant(tt.path); got != tt.want {
			t.Errorf("isRelevant(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
