package executor

import "context"

// Result holds the captured output streams of a finished command.
type Result struct {
	Stdout string
	Stderr string
}

// Executor defines the interface for executing external commands
type Executor interface {
	// Execute runs name with args and waits for it to exit. The captured
	// output is returned even when the command fails.
	Execute(ctx context.Context, name string, args ...string) (Result, error)
	// LookPath resolves name against PATH.
	LookPath(name string) (string, error)
}
