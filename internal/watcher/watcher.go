package watcher

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/bili-notes/internal/logger"
)

const drainQuiet = 150 * time.Millisecond

type implWatcher struct {
	dir     string
	filter  Filter
	handler EventHandler
	logger  logger.Logger
	watcher *fsnotify.Watcher
}

// Start monitors the directory for created files
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Debug(ctx, "File watcher started. Monitoring: %s", w.dir)

	for {
		select {
		case <-ctx.Done():
			w.drain(ctx)
			w.logger.Debug(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			w.dispatch(ctx, event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Warn(ctx, "Watcher error: %v", err)
		}
	}
}

// drain dispatches events still in flight after cancellation, until the
// directory has been quiet for drainQuiet.
func (w *implWatcher) drain(ctx context.Context) {
	timer := time.NewTimer(drainQuiet)
	defer timer.Stop()
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.dispatch(ctx, event)
			timer.Reset(drainQuiet)
		case <-timer.C:
			return
		}
	}
}

func (w *implWatcher) dispatch(ctx context.Context, event fsnotify.Event) {
	// A rename into the directory arrives as Create for the new name.
	if !event.Has(fsnotify.Create) {
		return
	}
	if !w.filter(event.Name) {
		w.logger.Debug(ctx, "Ignoring file: %s", event.Name)
		return
	}
	w.logger.Debug(ctx, "New file detected: %s", event.Name)
	w.handler(ctx, event.Name)
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}
