package notes

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/nguyentantai21042004/bili-notes/internal/config"
	"github.com/nguyentantai21042004/bili-notes/internal/logger"
)

// hashLength is the number of hex characters of the URL hash kept in file names.
const hashLength = 10

type implWriter struct {
	paths  config.PathsConfig
	notes  config.NotesConfig
	logger logger.Logger
}

// NewWriter creates a Writer that stores notes under paths.Notes.
func NewWriter(paths config.PathsConfig, notesCfg config.NotesConfig, log logger.Logger) Writer {
	return &implWriter{
		paths:  paths,
		notes:  notesCfg,
		logger: log,
	}
}

// FileName derives the notes file name from sourceURL. The same URL always
// maps to the same name.
func FileName(prefix, sourceURL string) string {
	sum := md5.Sum([]byte(sourceURL))
	return prefix + hex.EncodeToString(sum[:])[:hashLength] + ".md"
}

// Render returns the notes file content: title, source, blank line, body.
func Render(title, sourceURL, notes string) string {
	return fmt.Sprintf("# %s\n\nSource: %s\n\n%s", title, sourceURL, notes)
}

// Write overwrites the notes file for sourceURL. Concurrent writers for the
// same URL are serialized with a lock file next to it, removed afterwards.
func (w *implWriter) Write(ctx context.Context, notes, sourceURL string) (Output, error) {
	mdPath := filepath.Join(w.paths.Notes, FileName(w.notes.FilePrefix, sourceURL))

	lockPath := mdPath + ".lock"
	lock := flock.New(lockPath)
	if err := lock.Lock(); err != nil {
		return Output{}, fmt.Errorf("lock %s: %w", mdPath, err)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			w.logger.Warn(ctx, "Failed to release lock for %s: %v", mdPath, err)
		}
		if err := os.Remove(lockPath); err != nil && !os.IsNotExist(err) {
			w.logger.Debug(ctx, "Failed to remove %s: %v", lockPath, err)
		}
	}()

	content := Render(w.notes.Title, sourceURL, notes)
	if err := writeFileAtomic(mdPath, []byte(content)); err != nil {
		return Output{}, fmt.Errorf("write notes: %w", err)
	}
	w.logger.Info(ctx, "Notes saved to %s", mdPath)

	out := Output{Markdown: mdPath}
	if w.notes.DOCX {
		docxPath := strings.TrimSuffix(mdPath, filepath.Ext(mdPath)) + ".docx"
		if err := markdownToDocx(w.notes.Title, sourceURL, notes, docxPath); err != nil {
			w.logger.Warn(ctx, "Failed to write DOCX %s: %v", docxPath, err)
			return out, nil
		}
		w.logger.Info(ctx, "DOCX saved to %s", docxPath)
		out.DOCX = docxPath
	}

	return out, nil
}

// writeFileAtomic replaces path in one rename so readers never see a
// partial file.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
