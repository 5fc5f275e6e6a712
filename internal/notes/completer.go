package notes

import (
	"fmt"

	"github.com/nguyentantai21042004/bili-notes/internal/config"
	"github.com/nguyentantai21042004/bili-notes/internal/logger"
)

// NewCompleter builds the backend selected by cfg.Provider.
func NewCompleter(cfg config.LLMConfig, log logger.Logger) (Completer, error) {
	if len(cfg.APIKeys) == 0 {
		return nil, fmt.Errorf("%w: no API key configured for provider %s", ErrGenerationFailed, cfg.Provider)
	}

	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAI(cfg.APIKeys[0], cfg.BaseURL), nil
	case config.ProviderGemini, "":
		return NewGemini(cfg.APIKeys, log), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
