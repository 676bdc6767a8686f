package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gogpu/aadraw"
)

func TestWatchProcessesNewFiles(t *testing.T) {
	in, out, stage := t.TempDir(), t.TempDir(), t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, in, out, NewMargin(1, 1, 1, 1, aadraw.White), 20*time.Millisecond)
	}()
	t.Cleanup(func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("Watch() error = %v", err)
		}
	})

	// Give the watcher time to register before the file appears.
	time.Sleep(100 * time.Millisecond)

	// Write elsewhere and rename so the watcher never sees a partial file.
	src := filepath.Join(stage, "photo.png")
	if err := NewCanvas(testImage(3, 2)).Save(src); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(src, filepath.Join(in, "photo.png")); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(in, "notes.txt"), []byte("ignored"), 0o600); err != nil {
		t.Fatal(err)
	}

	target := filepath.Join(out, "photo.png")
	deadline := time.Now().Add(5 * time.Second)
	for {
		if c, err := Open(target); err == nil {
			if w, h := c.Current().Width(), c.Current().Height(); w != 5 || h != 4 {
				t.Errorf("output size = %dx%d, want 5x4", w, h)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("watched file was not processed")
		}
		time.Sleep(20 * time.Millisecond)
	}

	if _, err := os.Stat(filepath.Join(out, "notes.txt")); !os.IsNotExist(err) {
		t.Error("non-image file was processed")
	}
}

func TestWatchSameDirectory(t *testing.T) {
	dir := t.TempDir()
	err := Watch(context.Background(), dir, dir, NewMargin(1, 1, 1, 1, aadraw.White), 0)
	if !errors.Is(err, ErrSameDirectory) {
		t.Errorf("Watch() error = %v, want ErrSameDirectory", err)
	}
}

func TestWatchOutput(t *testing.T) {
	if got := watchOutput("/out", "/in/a.WEBP"); got != filepath.Join("/out", "a.png") {
		t.Errorf("watchOutput(webp) = %s", got)
	}
	if got := watchOutput("/out", "/in/b.jpg"); got != filepath.Join("/out", "b.jpg") {
		t.Errorf("watchOutput(jpg) = %s", got)
	}
}
