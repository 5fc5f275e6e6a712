package downloader

import "context"

// Result lists the files a download produced. Empty fields were not found.
type Result struct {
	VideoPath    string
	SubtitlePath string
}

// Fetcher downloads a video and its subtitles.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (Result, error)
}
