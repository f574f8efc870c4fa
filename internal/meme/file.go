package meme

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/aretw0/luxmeme/internal/motif"
)

// WriteFile writes the table to <dir>/lux_motifs.meme and returns the absolute path.
// The directory must already exist. An existing file is replaced.
//
// Output goes to a temp file in dir which is synced, closed and then renamed
// over the destination, so a failed run never leaves a truncated file behind.
func WriteFile(dir string, table motif.Table) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve output directory: %w", err)
	}
	destPath := filepath.Join(absDir, FileName)

	tmpFile, err := os.CreateTemp(absDir, ".tmp-"+FileName+"-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Closed and removed on every path; after the rename Remove is a no-op.
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if err := Write(tmpFile, table); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", FileName, err)
	}
	if err := tmpFile.Sync(); err != nil {
		return "", fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}
	// CreateTemp uses 0600; match a plain os.Create.
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return "", fmt.Errorf("failed to set file mode: %w", err)
	}

	// On Windows, os.Rename fails if dest exists.
	if runtime.GOOS == "windows" {
		if _, err := os.Stat(destPath); err == nil {
			if err := os.Remove(destPath); err != nil {
				return "", fmt.Errorf("failed to remove existing %s: %w", FileName, err)
			}
		}
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		return "", fmt.Errorf("failed to rename temp file: %w", err)
	}
	return destPath, nil
}
