package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateFile writes content to dir/name on the real file system, creating
// parent directories, and returns the full path.
func CreateFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755), "parent of %s", path)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "write %s", path)
	return path
}

// CreateDir makes parent/name and returns its path.
func CreateDir(t testing.TB, parent, name string) string {
	t.Helper()
	path := filepath.Join(parent, name)
	require.NoError(t, os.MkdirAll(path, 0o755), "mkdir %s", path)
	return path
}
