package downloader

import (
	"context"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/bili-notes/internal/watcher"
)

// Fetch runs the downloader for url and reports the files it saved.
func (f *implFetcher) Fetch(ctx context.Context, url string) (Result, error) {
	binary := f.cfg.Downloader.BinaryPath
	if _, err := f.executor.LookPath(binary); err != nil {
		return Result{}, &FailedError{Err: err}
	}

	args := f.buildArgs(url)
	f.logger.Info(ctx, "Downloading video from %s", url)
	f.logger.Debug(ctx, "Downloader command: %s %s", binary, strings.Join(args, " "))

	stop := f.observe(ctx)
	res, err := f.executor.Execute(ctx, binary, args...)
	created := stop()
	if err != nil {
		return Result{}, &FailedError{Err: err, Stdout: res.Stdout, Stderr: res.Stderr}
	}
	f.logger.Info(ctx, "Download completed successfully")

	result := f.parser.Parse(res.Stdout)
	f.fillFromCreated(ctx, &result, created)

	f.logger.Info(ctx, "Video file: %s", orNone(result.VideoPath))
	f.logger.Info(ctx, "Subtitle file: %s", orNone(result.SubtitlePath))
	return result, nil
}

// buildArgs yields: <output-flag> <dir> <extra args...> <url>
func (f *implFetcher) buildArgs(url string) []string {
	args := make([]string, 0, len(f.cfg.Downloader.ExtraArgs)+3)
	args = append(args, f.cfg.Downloader.OutputFlag, f.cfg.Paths.Output)
	args = append(args, f.cfg.Downloader.ExtraArgs...)
	return append(args, url)
}

// observe watches the output directory while the downloader runs, when
// downloader.watch is set. The
// returned function stops the watch and lists the media files created, in
// event order.
func (f *implFetcher) observe(ctx context.Context) func() []string {
	if !f.cfg.Downloader.Watch {
		return func() []string { return nil }
	}

	var mu sync.Mutex
	var created []string
	filter := func(path string) bool { return f.parser.Classify(path) != KindOther }
	handler := func(_ context.Context, path string) {
		mu.Lock()
		created = append(created, path)
		mu.Unlock()
	}

	w, err := watcher.New(f.cfg.Paths.Output, filter, handler, f.logger)
	if err != nil {
		f.logger.Warn(ctx, "Output directory watch disabled: %v", err)
		return func() []string { return nil }
	}

	watchCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Start(watchCtx)
	}()

	return func() []string {
		cancel()
		<-done
		if err := w.Stop(); err != nil {
			f.logger.Debug(ctx, "Stop watcher: %v", err)
		}
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), created...)
	}
}

// fillFromCreated fills fields the output did not announce with files seen
// in the output directory, last created wins. Announced paths always win.
func (f *implFetcher) fillFromCreated(ctx context.Context, result *Result, created []string) {
	var seen Result
	for _, path := range created {
		switch f.parser.Classify(path) {
		case KindVideo:
			seen.VideoPath = path
		case KindSubtitle:
			seen.SubtitlePath = path
		}
	}

	if result.VideoPath == "" && seen.VideoPath != "" {
		f.logger.Info(ctx, "Video path not announced, using created file: %s", seen.VideoPath)
		result.VideoPath = seen.VideoPath
	}
	if result.SubtitlePath == "" && seen.SubtitlePath != "" {
		f.logger.Info(ctx, "Subtitle path not announced, using created file: %s", seen.SubtitlePath)
		result.SubtitlePath = seen.SubtitlePath
	}
}

func orNone(path string) string {
	if path == "" {
		return "<none>"
	}
	return path
}
