package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/luxmeme/internal/config"
	"github.com/aretw0/luxmeme/internal/logging"
	"github.com/aretw0/luxmeme/internal/meme"
	"github.com/aretw0/luxmeme/internal/motif"
	"github.com/muesli/termenv"
)

// BuildOptions contains all the configuration for the build command.
type BuildOptions struct {
	EnvFile string
	Debug   bool

	// Stdout receives the success message. Defaults to os.Stdout.
	Stdout io.Writer
	// Logger overrides the logger derived from Debug.
	Logger *slog.Logger
	// Table overrides the embedded reference table.
	Table motif.Table
}

// Build resolves the output directory, creates it and writes the MEME file.
// It returns the absolute path of the written file.
// Configuration errors are returned before anything touches the filesystem.
func Build(opts BuildOptions) (string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.ForDebug(opts.Debug)
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	cfg, err := config.Load(opts.EnvFile)
	if err != nil {
		return "", err
	}

	dir, err := cfg.OutputDir()
	if err != nil {
		return "", err
	}
	logger.Debug("Resolved output directory", "raw", cfg.BaseDir, "dir", dir)

	table := opts.Table
	if table == nil {
		if table, err = motif.Default(); err != nil {
			return "", err
		}
	}

	if err := config.EnsureDir(dir); err != nil {
		return "", err
	}

	path, err := meme.WriteFile(dir, table)
	if err != nil {
		return "", err
	}
	logger.Debug("Wrote motif file", "path", path, "motifs", len(table))

	printSuccess(stdout, path)
	return path, nil
}

// printSuccess writes the confirmation line, colored only when w is a terminal.
func printSuccess(w io.Writer, path string) {
	out := termenv.NewOutput(w)
	msg := out.String(fmt.Sprintf("✅ %s created successfully at: %s", meme.FileName, path)).
		Foreground(out.Color("#34d399"))
	fmt.Fprintln(w, msg)
}

// List prints one line per motif: name, width and sequence, tab separated.
func List(w io.Writer, table motif.Table) error {
	for _, e := range table {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%s\n", e.Name, e.Width(), e.Sequence); err != nil {
			return err
		}
	}
	return nil
}
