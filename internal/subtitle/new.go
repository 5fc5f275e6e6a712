package subtitle

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

type implRegistry struct {
	formats map[string]Extractor
}

// New creates a Registry with the SRT, ASS and VTT extractors registered.
func New() Registry {
	r := &implRegistry{formats: make(map[string]Extractor)}
	r.Register(".srt", srtExtractor{})
	r.Register(".ass", assExtractor{})
	r.Register(".vtt", vttExtractor{})
	return r
}

// Register adds or replaces the extractor for ext (".srt" or "srt").
func (r *implRegistry) Register(ext string, e Extractor) {
	r.formats[normalizeExt(ext)] = e
}

// Supported lists the registered extensions.
func (r *implRegistry) Supported() []string {
	exts := make([]string, 0, len(r.formats))
	for ext := range r.formats {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Extract returns "" for an empty path.
func (r *implRegistry) Extract(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	e, ok := r.formats[normalizeExt(filepath.Ext(path))]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return e.Extract(path)
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// joinFragments flattens fragments into one line, dropping empty ones.
func joinFragments(fragments []string) string {
	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if f = strings.Join(strings.Fields(f), " "); f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, " ")
}
