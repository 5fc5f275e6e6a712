package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/bili-notes/internal/config"
	"github.com/nguyentantai21042004/bili-notes/internal/downloader"
	"github.com/nguyentantai21042004/bili-notes/internal/logger"
	"github.com/nguyentantai21042004/bili-notes/internal/notes"
	"github.com/nguyentantai21042004/bili-notes/internal/processor"
	"github.com/nguyentantai21042004/bili-notes/internal/subtitle"
	"github.com/nguyentantai21042004/bili-notes/pkg/executor"
)

func runNotes(cmd *cobra.Command, url, configPath string, missingOK bool) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}

	cfg, err := config.LoadOptional(configPath, missingOK)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.NewWithOptions(logger.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithRunID(ctx)

	completer, err := notes.NewCompleter(cfg.LLM, log)
	if err != nil {
		return err
	}

	exec := executor.New()
	proc := processor.New(
		cfg,
		downloader.New(cfg, exec, log),
		subtitle.New(),
		notes.New(cfg.LLM, completer, log),
		notes.NewWriter(cfg.Paths, cfg.Notes, log),
		log,
	)

	result, err := proc.Process(ctx, url)
	if err != nil {
		printDownloadOutput(cmd, err)
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderSummary(result))
	return nil
}

// printDownloadOutput shows what the downloader printed when it failed.
func printDownloadOutput(cmd *cobra.Command, err error) {
	var failed *downloader.FailedError
	if !errors.As(err, &failed) {
		return
	}
	out := cmd.ErrOrStderr()
	if failed.Stdout != "" {
		fmt.Fprintf(out, "Downloader stdout:\n%s\n", failed.Stdout)
	}
	if failed.Stderr != "" {
		fmt.Fprintf(out, "Downloader stderr:\n%s\n", failed.Stderr)
	}
}
