package notes

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/nguyentantai21042004/bili-notes/internal/config"
	"github.com/nguyentantai21042004/bili-notes/internal/logger"
)

// mockCompleter is a mock implementation of Completer for testing
type mockCompleter struct {
	text      string
	err       error
	callCount int
	lastReq   Request
}

func (m *mockCompleter) Complete(ctx context.Context, req Request) (string, error) {
	m.callCount++
	m.lastReq = req
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}

func llmConfig(t *testing.T, policy string) config.LLMConfig {
	t.Helper()
	cfg := config.Config{LLM: config.LLMConfig{FailurePolicy: policy}}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	return cfg.LLM
}

func TestGenerateEmptyTextSkipsModel(t *testing.T) {
	for _, text := range []string{"", "   \n\t"} {
		completer := &mockCompleter{text: "should not be used"}
		g := New(llmConfig(t, ""), completer, logger.New("error"))

		got, err := g.Generate(context.Background(), text, "https://www.bilibili.com/video/BV1xx")
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if got != NoTextMessage {
			t.Errorf("Generate() = %q, want %q", got, NoTextMessage)
		}
		if completer.callCount != 0 {
			t.Errorf("completer called %d times, want 0", completer.callCount)
		}
	}
}

func TestGenerateSendsRequest(t *testing.T) {
	completer := &mockCompleter{text: "# Notes\n..."}
	cfg := llmConfig(t, "")
	g := New(cfg, completer, logger.New("error"))

	got, err := g.Generate(context.Background(), "Hello world", "https://www.bilibili.com/video/BV1xx")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "# Notes\n..." {
		t.Errorf("Generate() = %q", got)
	}

	req := completer.lastReq
	if req.Model != cfg.Model {
		t.Errorf("Model = %q, want %q", req.Model, cfg.Model)
	}
	if req.MaxTokens != 4000 {
		t.Errorf("MaxTokens = %d, want 4000", req.MaxTokens)
	}
	if req.Temperature != 0.3 {
		t.Errorf("Temperature = %v, want 0.3", req.Temperature)
	}
	if req.System != cfg.SystemPrompt || req.System == "" {
		t.Errorf("System = %q", req.System)
	}
	for _, want := range []string{"https://www.bilibili.com/video/BV1xx", "Hello world", "Main topics and themes", "Key points and insights", "Important details or examples"} {
		if !strings.Contains(req.Prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestGenerateFailureAbort(t *testing.T) {
	completer := &mockCompleter{err: errors.New("503 unavailable")}
	g := New(llmConfig(t, config.FailureAbort), completer, logger.New("error"))

	got, err := g.Generate(context.Background(), "text", "https://example.com")
	if !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("Generate() error = %v, want ErrGenerationFailed", err)
	}
	if got != "" {
		t.Errorf("Generate() = %q, want empty", got)
	}
}

func TestGenerateFailurePlaceholder(t *testing.T) {
	completer := &mockCompleter{err: errors.New("503 unavailable")}
	g := New(llmConfig(t, config.FailurePlaceholder), completer, logger.New("error"))

	got, err := g.Generate(context.Background(), "text", "https://example.com")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "Error generating notes: 503 unavailable" {
		t.Errorf("Generate() = %q", got)
	}
}

func TestGenerateEmptyResponse(t *testing.T) {
	completer := &mockCompleter{text: "  "}
	g := New(llmConfig(t, ""), completer, logger.New("error"))

	if _, err := g.Generate(context.Background(), "text", "https://example.com"); !errors.Is(err, ErrGenerationFailed) {
		t.Errorf("Generate() error = %v, want ErrGenerationFailed", err)
	}
}

func TestBuildPromptTruncates(t *testing.T) {
	text := strings.Repeat("字", 20000)
	prompt := BuildPrompt("https://example.com", text, 15000)

	if got := strings.Count(prompt, "字"); got != 15000 {
		t.Errorf("prompt carries %d characters, want 15000", got)
	}
	if !utf8.ValidString(prompt) {
		t.Error("prompt is not valid UTF-8 after truncation")
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"hello", 3, "hel"},
		{"hello", 5, "hello"},
		{"hello", 10, "hello"},
		{"hello", 0, "hello"},
		{"你好世界", 2, "你好"},
		{"", 3, ""},
	}
	for _, tt := range tests {
		if got := truncateRunes(tt.in, tt.n); got != tt.want {
			t.Errorf("truncateRunes(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
