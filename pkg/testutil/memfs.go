package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/gdot/pkg/filesystem"
	"github.com/arthur-debert/gdot/pkg/types"
	"github.com/spf13/afero"
)

// NewMemFS returns an empty in-memory filesystem
func NewMemFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// MemDirs creates each directory (and its parents) in fsys
func MemDirs(t *testing.T, fsys types.FS, dirs ...string) {
	t.Helper()
	for _, dir := range dirs {
		if err := fsys.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}
}

// MemFile writes content to path in fsys, creating parent directories
func MemFile(t *testing.T, fsys types.FS, path, content string) {
	t.Helper()
	MemDirs(t, fsys, filepath.Dir(path))
	if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
}
