package processor

import "errors"

var (
	// ErrNoSubtitleFound means the download produced no subtitle file.
	ErrNoSubtitleFound = errors.New("no subtitle file found")
	// ErrSubtitleExtractionEmpty means the subtitle file held no dialogue.
	ErrSubtitleExtractionEmpty = errors.New("failed to extract text from subtitles")
)
