package notes

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/nguyentantai21042004/bili-notes/internal/config"
	"github.com/nguyentantai21042004/bili-notes/internal/logger"
)

var reNotesName = regexp.MustCompile(`^notes_[0-9a-f]{10}\.md$`)

func TestFileName(t *testing.T) {
	a := FileName("notes_", "https://www.bilibili.com/video/BV1xx")
	b := FileName("notes_", "https://www.bilibili.com/video/BV1xx")
	c := FileName("notes_", "https://www.bilibili.com/video/BV2yy")

	if a != b {
		t.Errorf("FileName() not stable: %q vs %q", a, b)
	}
	if a == c {
		t.Errorf("FileName() collided for different URLs: %q", a)
	}
	if !reNotesName.MatchString(a) {
		t.Errorf("FileName() = %q, want notes_<10 hex>.md", a)
	}
	if got := FileName("summary-", "x"); got[:8] != "summary-" {
		t.Errorf("FileName() ignored prefix: %q", got)
	}
}

func writerConfig(t *testing.T, docx bool) (config.PathsConfig, config.NotesConfig) {
	t.Helper()
	cfg := config.Config{
		Paths: config.PathsConfig{Notes: t.TempDir()},
		Notes: config.NotesConfig{DOCX: docx},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	return cfg.Paths, cfg.Notes
}

func TestWriteOverwrites(t *testing.T) {
	paths, notesCfg := writerConfig(t, false)
	w := NewWriter(paths, notesCfg, logger.New("error"))
	url := "https://www.bilibili.com/video/BV1xx"

	first, err := w.Write(context.Background(), "first body", url)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	second, err := w.Write(context.Background(), "second", url)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if first.Markdown != second.Markdown {
		t.Errorf("paths differ: %q vs %q", first.Markdown, second.Markdown)
	}
	if filepath.Dir(first.Markdown) != paths.Notes {
		t.Errorf("notes written to %q, want under %q", first.Markdown, paths.Notes)
	}
	if second.DOCX != "" {
		t.Errorf("DOCX = %q, want none", second.DOCX)
	}

	data, err := os.ReadFile(second.Markdown)
	if err != nil {
		t.Fatal(err)
	}
	want := "# Notes for Bilibili Video\n\nSource: https://www.bilibili.com/video/BV1xx\n\nsecond"
	if string(data) != want {
		t.Errorf("content = %q, want %q", data, want)
	}
}

func TestWriteLeavesOnlyNotes(t *testing.T) {
	paths, notesCfg := writerConfig(t, false)
	w := NewWriter(paths, notesCfg, logger.New("error"))

	out, err := w.Write(context.Background(), "body", "https://www.bilibili.com/video/BV1xx")
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	entries, err := os.ReadDir(paths.Notes)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != filepath.Base(out.Markdown) {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("notes directory holds %v, want only %s", names, filepath.Base(out.Markdown))
	}
}

func TestWriteDOCX(t *testing.T) {
	paths, notesCfg := writerConfig(t, true)
	w := NewWriter(paths, notesCfg, logger.New("error"))

	out, err := w.Write(context.Background(), "# Topics\n\n- **Go** basics\n1. first\n\nplain text", "https://example.com/v")
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	info, err := os.Stat(out.DOCX)
	if err != nil {
		t.Fatalf("docx not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("docx is empty")
	}
}

func TestWriteMissingDir(t *testing.T) {
	paths, notesCfg := writerConfig(t, false)
	paths.Notes = filepath.Join(paths.Notes, "missing")

	if _, err := NewWriter(paths, notesCfg, logger.New("error")).Write(context.Background(), "x", "https://example.com"); err == nil {
		t.Error("Write() should fail when the notes directory does not exist")
	}
}
