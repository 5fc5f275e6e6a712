package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/bili-notes/internal/logger"
)

// New creates a Watcher on dir. A nil filter accepts every path.
func New(dir string, filter Filter, handler EventHandler, log logger.Logger) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if filter == nil {
		filter = func(string) bool { return true }
	}

	return &implWatcher{
		dir:     dir,
		filter:  filter,
		handler: handler,
		logger:  log,
		watcher: watcher,
	}, nil
}
