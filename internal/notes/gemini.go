package notes

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/bili-notes/internal/logger"
	"google.golang.org/genai"
)

// geminiCall performs one GenerateContent call with a single API key.
type geminiCall func(ctx context.Context, apiKey string, req Request) (string, error)

type geminiCompleter struct {
	apiKeys    []string
	currentKey int
	call       geminiCall
	logger     logger.Logger
}

// NewGemini creates a Completer that rotates through the supplied Gemini API
// keys when one is rate limited.
func NewGemini(apiKeys []string, log logger.Logger) Completer {
	return &geminiCompleter{
		apiKeys: apiKeys,
		call:    callGemini,
		logger:  log,
	}
}

// Complete rotates API keys on 429 / quota errors. Any other error is
// returned immediately.
func (g *geminiCompleter) Complete(ctx context.Context, req Request) (string, error) {
	if len(g.apiKeys) == 0 {
		return "", fmt.Errorf("gemini: api key required")
	}

	attempts := len(g.apiKeys)
	var lastErr error

	for range attempts {
		key := g.apiKeys[g.currentKey]

		text, err := g.call(ctx, key, req)
		if err == nil {
			return text, nil
		}
		if isQuotaError(err) {
			g.logger.Warn(ctx, "Key %d rate limited, rotating...", g.currentKey+1)
			g.rotateKey()
			lastErr = err
			continue
		}
		return "", err
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (g *geminiCompleter) rotateKey() {
	g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
}

func isQuotaError(err error) bool {
	errMsg := err.Error()
	return strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED")
}

func callGemini(ctx context.Context, apiKey string, req Request) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	genCfg := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(req.MaxTokens),
		Temperature:     genai.Ptr(req.Temperature),
	}
	if req.System != "" {
		genCfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	result, err := client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), genCfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		return text, nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}
