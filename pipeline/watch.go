package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/aadraw"
)

// DefaultWatchDebounce is the quiet period Watch waits for after the last
// file event before processing.
const DefaultWatchDebounce = 500 * time.Millisecond

// inputExts are the file extensions Watch treats as images.
var inputExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".bmp": true, ".tif": true, ".tiff": true, ".webp": true,
}

// Watch processes image files created or rewritten in dir until ctx is
// done. Each file is forwarded through u and saved under outDir with the
// same name; WebP inputs, which cannot be encoded, are saved as PNG.
//
// Events are debounced: files are processed in one batch once no event has
// arrived for debounce (DefaultWatchDebounce when <= 0). Failures are
// logged and do not stop watching.
func Watch(ctx context.Context, dir, outDir string, u Unit, debounce time.Duration) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	absOut, err := filepath.Abs(outDir)
	if err != nil {
		return err
	}
	if absDir == absOut {
		return fmt.Errorf("%w: %s", ErrSameDirectory, dir)
	}
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(absDir); err != nil {
		return err
	}

	pending := make(map[string]bool)
	var debounceTimer *time.Timer
	var debounceCh <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !inputExts[strings.ToLower(filepath.Ext(event.Name))] {
				continue
			}
			pending[event.Name] = true

			// Debounce: reset the timer on each event
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.NewTimer(debounce)
			debounceCh = debounceTimer.C

		case <-debounceCh:
			jobs := make([]Job, 0, len(pending))
			for in := range pending {
				jobs = append(jobs, Job{Input: in, Output: watchOutput(absOut, in)})
			}
			clear(pending)
			debounceTimer = nil
			debounceCh = nil

			if err := RunBatch(jobs, u, 0); err != nil {
				aadraw.Logger().Warn("pipeline: watch batch failed", "err", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			aadraw.Logger().Warn("pipeline: watch error", "err", err)
		}
	}
}

func watchOutput(outDir, in string) string {
	name := filepath.Base(in)
	if strings.EqualFold(filepath.Ext(name), ".webp") {
		name = strings.TrimSuffix(name, filepath.Ext(name)) + ".png"
	}
	return filepath.Join(outDir, name)
}
