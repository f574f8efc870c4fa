// Package config resolves the output directory from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// EnvBaseDir names the variable holding the output base directory.
const EnvBaseDir = "LUX_BASE_DIR"

// ErrMissingBaseDir is returned when EnvBaseDir is unset or empty.
var ErrMissingBaseDir = errors.New(EnvBaseDir + " is not set. Run via the master script that exports " + EnvBaseDir + ".")

type Config struct {
	// BaseDir is the raw value of EnvBaseDir, before home expansion.
	BaseDir string
}

// Load reads the configuration from the process environment.
// If envFile is non-empty it is loaded first; variables already present in
// the environment take precedence over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	dir := strings.TrimSpace(os.Getenv(EnvBaseDir))
	if dir == "" {
		return nil, ErrMissingBaseDir
	}
	return &Config{BaseDir: dir}, nil
}

// OutputDir returns BaseDir with the home shorthand expanded, as an absolute path.
func (c *Config) OutputDir() (string, error) {
	return ExpandHome(c.BaseDir)
}

// ExpandHome expands a leading "~" or "~user" and makes the path absolute.
func ExpandHome(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		name, rest := path[1:], ""
		if i := strings.IndexAny(name, "/"+string(filepath.Separator)); i >= 0 {
			name, rest = name[:i], name[i+1:]
		}

		var home string
		if name == "" {
			h, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to resolve home directory: %w", err)
			}
			home = h
		} else {
			u, err := user.Lookup(name)
			if err != nil {
				return "", fmt.Errorf("failed to resolve home of user %q: %w", name, err)
			}
			home = u.HomeDir
		}
		path = filepath.Join(home, rest)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return abs, nil
}

// EnsureDir creates dir and any missing parents. An existing directory is not an error.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to ensure output directory: %w", err)
	}
	return nil
}
