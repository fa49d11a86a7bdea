// Package watch re-runs a scan pass whenever matching files in a directory
// change. Events are debounced so an editor save or a bulk copy triggers a
// single pass, and every pass runs on the caller's goroutine.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Stats tracks watcher activity.
type Stats struct {
	FilesCreated  int
	FilesModified int
	FilesDeleted  int
	Passes        int
	FailedPasses  int
	Errors        int
	LastEventTime time.Time
	LastEventPath string
	LastEventType string
}

// Watcher watches one directory for files matching a pattern.
type Watcher struct {
	mu       sync.RWMutex
	root     string
	pattern  string
	debounce time.Duration
	logger   *zap.Logger
	stats    Stats
}

// New creates a Watcher for root. pattern uses doublestar syntax and is
// applied to base names.
func New(root, pattern string, debounce time.Duration, logger *zap.Logger) (*Watcher, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern %q", pattern)
	}
	if debounce <= 0 {
		return nil, fmt.Errorf("debounce must be positive: %s", debounce)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		root:     root,
		pattern:  pattern,
		debounce: debounce,
		logger:   logger,
	}, nil
}

// Run calls pass once, then again each time matching files settle after a
// change, until ctx is done. Errors from pass are logged and counted; they
// do not stop the watch. Run returns nil on cancellation and an error only
// when the directory cannot be watched.
func (w *Watcher) Run(ctx context.Context, pass func() error) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.root); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.root, err)
	}
	w.logger.Info("watching", zap.String("root", w.root), zap.String("pattern", w.pattern))

	w.runPass(pass)

	// The timer is armed by the first relevant event and re-armed by each
	// later one; a pass runs once it fires.
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("watch cancelled")
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				w.logger.Debug("event channel closed")
				return nil
			}
			if w.handleEvent(event) {
				timer.Reset(w.debounce)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				w.logger.Debug("error channel closed")
				return nil
			}
			w.logger.Warn("watch error", zap.Error(err))
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()

		case <-timer.C:
			w.runPass(pass)
		}
	}
}

// handleEvent records an event and reports whether it should trigger a pass.
func (w *Watcher) handleEvent(event fsnotify.Event) bool {
	if ok, err := doublestar.Match(w.pattern, filepath.Base(event.Name)); err != nil || !ok {
		return false
	}

	var eventType string
	switch {
	case event.Op&fsnotify.Create != 0:
		eventType = "create"
	case event.Op&fsnotify.Write != 0:
		eventType = "modify"
	case event.Op&fsnotify.Remove != 0:
		eventType = "delete"
	case event.Op&fsnotify.Rename != 0:
		eventType = "rename"
	default:
		return false // chmod
	}

	w.logger.Debug("asset changed", zap.String("event", eventType), zap.String("path", event.Name))

	w.mu.Lock()
	defer w.mu.Unlock()
	w.stats.LastEventTime = time.Now()
	w.stats.LastEventPath = event.Name
	w.stats.LastEventType = eventType
	switch eventType {
	case "create":
		w.stats.FilesCreated++
	case "modify":
		w.stats.FilesModified++
	case "delete", "rename":
		w.stats.FilesDeleted++
	}
	return true
}

func (w *Watcher) runPass(pass func() error) {
	err := pass()

	w.mu.Lock()
	w.stats.Passes++
	if err != nil {
		w.stats.FailedPasses++
	}
	w.mu.Unlock()

	if err != nil {
		w.logger.Error("scan pass failed", zap.Error(err))
	}
}

// Stats returns a snapshot of the watcher statistics.
func (w *Watcher) Stats() Stats {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.stats
}
