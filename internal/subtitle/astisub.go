package subtitle

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/asticode/go-astisub"
)

type srtExtractor struct{}

func (srtExtractor) Extract(path string) (string, error) {
	return readWith(path, "srt", astisub.ReadFromSRT)
}

type vttExtractor struct{}

func (vttExtractor) Extract(path string) (string, error) {
	return readWith(path, "vtt", astisub.ReadFromWebVTT)
}

func readWith(path, format string, read func(io.Reader) (*astisub.Subtitles, error)) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", format, err)
	}
	defer f.Close()

	subs, err := read(f)
	if err != nil {
		return "", fmt.Errorf("parse %s %s: %w", format, path, err)
	}
	return itemsText(subs), nil
}

// itemsText joins every cue's lines, cue by cue, with single spaces.
func itemsText(subs *astisub.Subtitles) string {
	var fragments []string
	for _, item := range subs.Items {
		for _, line := range item.Lines {
			fragments = append(fragments, lineText(line))
		}
	}
	return joinFragments(fragments)
}

// lineText rebuilds a line from its styled pieces. The VTT reader trims each
// piece, so a space is put back only where the neighbours are words:
// "Hi" "," "there" "!" becomes "Hi, there!".
func lineText(line astisub.Line) string {
	var b strings.Builder
	prev := rune(-1)
	for _, item := range line.Items {
		text := strings.TrimSpace(item.Text)
		if text == "" {
			continue
		}
		first, _ := utf8.DecodeRuneInString(text)
		if prev >= 0 && needsSpace(prev, first) {
			b.WriteByte(' ')
		}
		b.WriteString(text)
		prev, _ = utf8.DecodeLastRuneInString(text)
	}
	return b.String()
}

func needsSpace(prev, next rune) bool {
	switch {
	case isClosing(next), isOpening(prev):
		return false
	case isCJK(prev) && isCJK(next):
		return false
	}
	return true
}

func isClosing(r rune) bool {
	return unicode.In(r, unicode.Pe, unicode.Pf) || strings.ContainsRune(",.!?;:%…、。，！？：；", r)
}

func isOpening(r rune) bool {
	return unicode.In(r, unicode.Ps, unicode.Pi)
}

func isCJK(r rune) bool {
	return unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul)
}
