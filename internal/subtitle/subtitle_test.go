package subtitle

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const twoEntrySRT = `1
00:00:01,000 --> 00:00:02,000
Hello

2
00:00:02,500 --> 00:00:04,000
world
`

func TestExtractSRT(t *testing.T) {
	path := writeFile(t, "video.srt", twoEntrySRT)

	got, err := New().Extract(path)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got != "Hello world" {
		t.Errorf("Extract() = %q, want %q", got, "Hello world")
	}
}

func TestExtractSRTMultiLineEntry(t *testing.T) {
	path := writeFile(t, "video.srt", `1
00:00:01,000 --> 00:00:02,000
first line
second line

2
00:00:03,000 --> 00:00:04,000
third
`)

	got, err := New().Extract(path)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got != "first line second line third" {
		t.Errorf("Extract() = %q", got)
	}
}

func TestExtractVTT(t *testing.T) {
	path := writeFile(t, "video.vtt", `WEBVTT

00:00:01.000 --> 00:00:02.000
First caption

00:00:02.500 --> 00:00:04.000
Second caption

00:00:04.500 --> 00:00:06.000
Third
`)

	got, err := New().Extract(path)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got != "First caption Second caption Third" {
		t.Errorf("Extract() = %q", got)
	}
}

const sampleASS = "\ufeff[Script Info]\n" +
	"Title: sample\n" +
	"Dialogue: 0,0:00:00.00,0:00:01.00,Default,,0,0,0,,not an event yet\n" +
	"\n" +
	"[V4+ Styles]\n" +
	"Format: Name, Fontname, Fontsize\n" +
	"Style: Default,Arial,20\n" +
	"\n" +
	"[Events]\n" +
	"Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n" +
	"Dialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,{\\an8}Hello, world\n" +
	"Comment: 0,0:00:02.00,0:00:03.00,Default,,0,0,0,,skipped\n" +
	"Dialogue: 0,0:00:03.00,0:00:04.00,Default,,0,0,0,,{\\i1}second{\\i0} line\r\n" +
	"Dialogue: too,few,fields\n"

func TestExtractVTTInlineMarkup(t *testing.T) {
	tests := []struct {
		name string
		cue  string
		want string
	}{
		{"voice and italics", "<v Roger>Hi</v>, <i>there</i>!", "Hi, there!"},
		{"parentheses", "see (<b>note</b>) here", "see (note) here"},
		{"chinese", "<i>你好</i>世界", "你好世界"},
		{"plain", "no markup at all", "no markup at all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "video.vtt", "WEBVTT\n\n00:00:01.000 --> 00:00:02.000\n"+tt.cue+"\n")

			got, err := New().Extract(path)
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Extract() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractSRTKeepsInlineTags(t *testing.T) {
	path := writeFile(t, "video.srt", "1\n00:00:01,000 --> 00:00:02,000\n<i>Hello</i>, world\n")

	got, err := New().Extract(path)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got != "<i>Hello</i>, world" {
		t.Errorf("Extract() = %q, want %q", got, "<i>Hello</i>, world")
	}
}

func TestExtractASS(t *testing.T) {
	path := writeFile(t, "video.ass", sampleASS)

	got, err := New().Extract(path)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got != "Hello, world second line" {
		t.Errorf("Extract() = %q, want %q", got, "Hello, world second line")
	}
}

func TestExtractASSWithoutEvents(t *testing.T) {
	path := writeFile(t, "video.ass", "[Script Info]\nDialogue: 0,a,b,c,d,e,f,g,h,text\n")

	got, err := New().Extract(path)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got != "" {
		t.Errorf("Extract() = %q, want empty", got)
	}
}

func TestExtractUnsupported(t *testing.T) {
	path := writeFile(t, "video.xyz", "anything")

	got, err := New().Extract(path)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Extract() error = %v, want ErrUnsupportedFormat", err)
	}
	if got != "" {
		t.Errorf("Extract() = %q, want empty", got)
	}
}

func TestExtractEmptyPath(t *testing.T) {
	got, err := New().Extract("")
	if err != nil || got != "" {
		t.Errorf("Extract(\"\") = %q, %v; want empty, nil", got, err)
	}
}

func TestExtractMissingFile(t *testing.T) {
	_, err := New().Extract(filepath.Join(t.TempDir(), "missing.srt"))
	if err == nil {
		t.Error("Extract() should fail for a missing file")
	}
}

type upperExtractor struct{}

func (upperExtractor) Extract(path string) (string, error) { return "CUSTOM", nil }

func TestRegisterFormat(t *testing.T) {
	r := New()
	r.Register("txt", upperExtractor{})

	got, err := r.Extract(writeFile(t, "notes.TXT", "x"))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got != "CUSTOM" {
		t.Errorf("Extract() = %q, want CUSTOM", got)
	}

	want := []string{".ass", ".srt", ".txt", ".vtt"}
	supported := r.Supported()
	if len(supported) != len(want) {
		t.Fatalf("Supported() = %v, want %v", supported, want)
	}
	for i := range want {
		if supported[i] != want[i] {
			t.Errorf("Supported() = %v, want %v", supported, want)
		}
	}
}
