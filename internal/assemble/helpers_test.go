package assemble

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

// recorder is a Reporter that keeps every message.
type recorder struct {
	infos    []string
	warnings []string
	errors   []string
}

func (r *recorder) Info(format string, v ...any) {
	r.infos = append(r.infos, fmt.Sprintf(format, v...))
}

func (r *recorder) Warning(format string, v ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, v...))
}

func (r *recorder) Error(format string, v ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, v...))
}

func testOptions(folderCount int) Options {
	opts := DefaultOptions()
	opts.FolderCount = folderCount
	opts.Now = func() time.Time { return fixedNow }

	return opts
}

// writePNG writes a blank width x height PNG, creating parent directories.
func writePNG(t *testing.T, path string, width, height int) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, png.Encode(f, image.NewGray(image.Rect(0, 0, width, height))))
}

// writeFile writes content to path, creating parent directories.
func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
