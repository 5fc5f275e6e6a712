package downloader

import (
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/bili-notes/internal/config"
)

// Kind classifies a downloaded file by extension.
type Kind int

const (
	KindOther Kind = iota
	KindVideo
	KindSubtitle
)

// Parser recognises saved-file announcements in downloader output.
type Parser struct {
	Markers            []string
	VideoExtensions    []string
	SubtitleExtensions []string
}

// NewParser builds a Parser from the downloader configuration.
func NewParser(cfg config.DownloaderConfig) Parser {
	return Parser{
		Markers:            cfg.Markers,
		VideoExtensions:    cfg.VideoExtensions,
		SubtitleExtensions: cfg.SubtitleExtensions,
	}
}

// ParseOutput parses output with the default you-get markers and extensions.
func ParseOutput(output string) Result {
	return NewParser(config.Default().Downloader).Parse(output)
}

// Parse scans output line by line. For each category the last announced
// path wins.
func (p Parser) Parse(output string) Result {
	var res Result
	for _, line := range strings.Split(output, "\n") {
		path, ok := p.savedPath(line)
		if !ok {
			continue
		}
		switch p.Classify(path) {
		case KindVideo:
			res.VideoPath = path
		case KindSubtitle:
			res.SubtitlePath = path
		}
	}
	return res
}

// savedPath returns the text after the last marker occurrence on line.
func (p Parser) savedPath(line string) (string, bool) {
	for _, marker := range p.Markers {
		idx := strings.LastIndex(line, marker)
		if idx < 0 {
			continue
		}
		path := strings.TrimSpace(line[idx+len(marker):])
		if path == "" {
			return "", false
		}
		return path, true
	}
	return "", false
}

// Classify reports whether path looks like a video, a subtitle or neither.
func (p Parser) Classify(path string) Kind {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return KindOther
	}
	if hasExtension(p.VideoExtensions, ext) {
		return KindVideo
	}
	if hasExtension(p.SubtitleExtensions, ext) {
		return KindSubtitle
	}
	return KindOther
}

func hasExtension(list []string, ext string) bool {
	for _, candidate := range list {
		if strings.EqualFold(candidate, ext) {
			return true
		}
	}
	return false
}
