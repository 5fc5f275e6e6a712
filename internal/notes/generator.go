package notes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/bili-notes/internal/config"
	"github.com/nguyentantai21042004/bili-notes/internal/logger"
)

const notesPrompt = `I have subtitles from a Bilibili video: %s

Please create comprehensive notes based on the content. Organize the notes in a clear structure with:
1. Main topics and themes
2. Key points and insights
3. Important details or examples

Subtitle text:
%s

Generate detailed, well-structured notes that would be useful for someone who wants to review the video content later.`

type implGenerator struct {
	cfg       config.LLMConfig
	completer Completer
	logger    logger.Logger
}

// New creates a Generator backed by completer.
func New(cfg config.LLMConfig, completer Completer, log logger.Logger) Generator {
	return &implGenerator{
		cfg:       cfg,
		completer: completer,
		logger:    log,
	}
}

// Generate asks the model for notes. With the placeholder failure policy a
// backend error becomes the notes body instead of an error.
func (g *implGenerator) Generate(ctx context.Context, subtitleText, sourceURL string) (string, error) {
	if strings.TrimSpace(subtitleText) == "" {
		return NoTextMessage, nil
	}

	g.logger.Info(ctx, "Generating notes from subtitles with %s", g.cfg.Model)

	req := Request{
		Model:       g.cfg.Model,
		System:      g.cfg.SystemPrompt,
		Prompt:      BuildPrompt(sourceURL, subtitleText, g.cfg.MaxInputChars),
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.temperature(),
	}

	if g.cfg.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(g.cfg.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	startTime := time.Now()
	text, err := g.completer.Complete(ctx, req)
	if err == nil && strings.TrimSpace(text) == "" {
		err = fmt.Errorf("empty response from model")
	}
	if err != nil {
		if g.cfg.FailurePolicy == config.FailurePlaceholder {
			g.logger.Error(ctx, "Error generating notes: %v", err)
			return fmt.Sprintf("Error generating notes: %v", err), nil
		}
		return "", fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	g.logger.Info(ctx, "Notes generated in %s", time.Since(startTime).Round(time.Millisecond))
	return text, nil
}

func (g *implGenerator) temperature() float32 {
	if g.cfg.Temperature == nil {
		return 0
	}
	return *g.cfg.Temperature
}

// BuildPrompt embeds the source URL and at most maxChars characters of the
// subtitle text. maxChars <= 0 means no limit.
func BuildPrompt(sourceURL, subtitleText string, maxChars int) string {
	return fmt.Sprintf(notesPrompt, sourceURL, truncateRunes(subtitleText, maxChars))
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
