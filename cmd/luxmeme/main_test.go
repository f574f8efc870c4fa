package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		debug, envFile = false, ""
	})
	code = Execute()
	return code, out.String(), errOut.String()
}

func TestCLI_MissingBaseDir(t *testing.T) {
	t.Setenv("LUX_BASE_DIR", "")
	t.Chdir(t.TempDir())

	code, stdout, stderr := runCLI(t)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "ERROR: LUX_BASE_DIR is not set. Run via the master script that exports LUX_BASE_DIR.\n", stderr)
}

func TestCLI_Build(t *testing.T) {
	base := filepath.Join(t.TempDir(), "lux_test")
	t.Setenv("LUX_BASE_DIR", base)

	code, stdout, stderr := runCLI(t)
	require.Equal(t, 0, code, stderr)
	path := filepath.Join(base, "lux_motifs.meme")
	assert.Contains(t, stdout, path)
	assert.FileExists(t, path)
}

func TestCLI_List(t *testing.T) {
	code, stdout, _ := runCLI(t, "list")
	require.Equal(t, 0, code)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 40)
	assert.Equal(t, "aubIbox\t20\tACCTGGCGGTTCGGCCAGGT", lines[0])
}

func TestCLI_Version(t *testing.T) {
	code, stdout, _ := runCLI(t, "version")
	require.Equal(t, 0, code)
	assert.Equal(t, "luxmeme version dev\n", stdout)
}

func TestCLI_RejectsArgs(t *testing.T) {
	t.Setenv("LUX_BASE_DIR", t.TempDir())
	code, _, stderr := runCLI(t, "extra")
	assert.Equal(t, 1, code)
	assert.True(t, strings.HasPrefix(stderr, "ERROR: "))
	entries, err := os.ReadDir(os.Getenv("LUX_BASE_DIR"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}
