package processor

import (
	"context"
	"os"
)

// ensureDirectories creates the downloads and notes directories. Failures
// are only logged; the stage that needs the directory reports the real error.
func (p *implProcessor) ensureDirectories(ctx context.Context) {
	for _, dir := range []string{p.cfg.Paths.Output, p.cfg.Paths.Notes} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			p.logger.Warn(ctx, "Failed to create directory %s: %v", dir, err)
			continue
		}
		p.logger.Debug(ctx, "Directory ready: %s", dir)
	}
}
