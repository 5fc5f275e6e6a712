package notes

import (
	"context"
	"errors"
)

// NoTextMessage is returned instead of calling the model when there is no text.
const NoTextMessage = "No subtitle text available to generate notes."

// ErrGenerationFailed wraps completion backend failures.
var ErrGenerationFailed = errors.New("notes generation failed")

// Request is a single-turn completion request.
type Request struct {
	Model       string
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float32
}

// Completer sends one request to a language model and returns its text.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Generator produces notes for a video from its subtitle text.
type Generator interface {
	Generate(ctx context.Context, subtitleText, sourceURL string) (string, error)
}

// Output lists the files a Writer produced.
type Output struct {
	Markdown string
	DOCX     string
}

// Writer persists notes for a source URL.
type Writer interface {
	Write(ctx context.Context, notes, sourceURL string) (Output, error)
}
