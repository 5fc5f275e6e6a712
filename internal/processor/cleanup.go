package processor

import (
	"context"
	"os"
)

// cleanupDownloads removes the downloaded files once notes are written.
func (p *implProcessor) cleanupDownloads(ctx context.Context, paths ...string) {
	for _, path := range paths {
		if path == "" {
			continue
		}
		p.cleanupFile(ctx, path)
	}
}

// cleanupFile removes a file, logs warning if fails
func (p *implProcessor) cleanupFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil {
		p.logger.Warn(ctx, "Failed to clean up %s: %v", filePath, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up: %s", filePath)
	}
}
