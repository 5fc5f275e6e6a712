package processor

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Process runs the pipeline for one URL. Any stage failure stops the run
// before a notes file is written.
func (p *implProcessor) Process(ctx context.Context, url string) (Result, error) {
	startTime := time.Now()
	result := Result{URL: url}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing video: %s", url)
	p.logger.Info(ctx, "========================================")

	// Step 1: Make sure output directories exist
	p.ensureDirectories(ctx)

	// Step 2: Download video and subtitles
	download, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		return result, fmt.Errorf("download: %w", err)
	}
	result.VideoPath = download.VideoPath
	result.SubtitlePath = download.SubtitlePath

	if download.SubtitlePath == "" {
		return result, ErrNoSubtitleFound
	}

	// Step 3: Extract subtitle text
	p.logger.Info(ctx, "Extracting text from subtitles: %s", download.SubtitlePath)
	text, err := p.extractor.Extract(download.SubtitlePath)
	if err != nil {
		return result, fmt.Errorf("extract subtitles: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return result, ErrSubtitleExtractionEmpty
	}
	result.SubtitleChars = utf8.RuneCountInString(text)
	p.logger.Info(ctx, "Extracted %d characters of subtitle text", result.SubtitleChars)

	// Step 4: Generate notes
	body, err := p.generator.Generate(ctx, text, url)
	if err != nil {
		return result, fmt.Errorf("generate notes: %w", err)
	}

	// Step 5: Save notes
	out, err := p.writer.Write(ctx, body, url)
	if err != nil {
		return result, fmt.Errorf("save notes: %w", err)
	}
	result.NotesPath = out.Markdown
	result.DOCXPath = out.DOCX

	if p.cfg.Paths.CleanupDownloads {
		p.cleanupDownloads(ctx, download.VideoPath, download.SubtitlePath)
	}

	result.Duration = time.Since(startTime)
	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Notes generated successfully!")
	p.logger.Info(ctx, "Notes file: %s", result.NotesPath)
	p.logger.Info(ctx, "Processing time: %s", result.Duration)
	p.logger.Info(ctx, "========================================")

	return result, nil
}
