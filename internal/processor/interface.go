package processor

import (
	"context"
	"time"
)

// Result describes a completed run.
type Result struct {
	URL           string
	VideoPath     string
	SubtitlePath  string
	SubtitleChars int
	NotesPath     string
	DOCXPath      string
	Duration      time.Duration
}

// Processor turns a video URL into a notes file.
type Processor interface {
	Process(ctx context.Context, url string) (Result, error)
}
