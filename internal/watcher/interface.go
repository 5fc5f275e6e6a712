package watcher

import "context"

// Watcher defines the interface for file system monitoring
type Watcher interface {
	// Start blocks, dispatching create events, until ctx is done. Events
	// already queued when ctx ends are still dispatched.
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is a function that handles file events
type EventHandler func(ctx context.Context, filePath string)

// Filter decides whether a created path is passed to the handler.
type Filter func(filePath string) bool
