package processor

import (
	"github.com/nguyentantai21042004/bili-notes/internal/config"
	"github.com/nguyentantai21042004/bili-notes/internal/downloader"
	"github.com/nguyentantai21042004/bili-notes/internal/logger"
	"github.com/nguyentantai21042004/bili-notes/internal/notes"
	"github.com/nguyentantai21042004/bili-notes/internal/subtitle"
)

type implProcessor struct {
	cfg       *config.Config
	fetcher   downloader.Fetcher
	extractor subtitle.Extractor
	generator notes.Generator
	writer    notes.Writer
	logger    logger.Logger
}

// New creates a new Processor instance
func New(
	cfg *config.Config,
	fetcher downloader.Fetcher,
	extractor subtitle.Extractor,
	generator notes.Generator,
	writer notes.Writer,
	log logger.Logger,
) Processor {
	return &implProcessor{
		cfg:       cfg,
		fetcher:   fetcher,
		extractor: extractor,
		generator: generator,
		writer:    writer,
		logger:    log,
	}
}
