package downloader

import (
	"github.com/nguyentantai21042004/bili-notes/internal/config"
	"github.com/nguyentantai21042004/bili-notes/internal/logger"
	"github.com/nguyentantai21042004/bili-notes/pkg/executor"
)

type implFetcher struct {
	cfg      *config.Config
	executor executor.Executor
	parser   Parser
	logger   logger.Logger
}

// New creates a Fetcher that runs the configured downloader binary
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Fetcher {
	return &implFetcher{
		cfg:      cfg,
		executor: exec,
		parser:   NewParser(cfg.Downloader),
		logger:   log,
	}
}
