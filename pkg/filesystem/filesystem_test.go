package filesystem_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/gdot/pkg/filesystem"
	"github.com/arthur-debert/gdot/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exercise(t *testing.T, fsys types.FS, root string) {
	t.Helper()

	dir := filepath.Join(root, "venv", "bin")
	require.NoError(t, fsys.MkdirAll(dir, 0755))

	script := filepath.Join(dir, "activate")
	require.NoError(t, fsys.WriteFile(script, []byte("PS1=\"(demo) ${PS1:-}\"\n"), 0644))

	info, err := fsys.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	data, err := fsys.ReadFile(script)
	require.NoError(t, err)
	assert.Contains(t, string(data), "(demo)")

	f, err := fsys.Open(script)
	require.NoError(t, err)
	streamed, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, data, streamed)

	_, err = fsys.Stat(filepath.Join(root, "missing"))
	assert.True(t, os.IsNotExist(err))
}

func TestOSFS(t *testing.T) {
	exercise(t, filesystem.NewOS(), t.TempDir())
}

func TestAferoFS(t *testing.T) {
	exercise(t, filesystem.NewAferoFS(afero.NewMemMapFs()), "/work")
}

func TestAferoFS_ReadFileOnDirectory(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fsys.MkdirAll("/work/dir", 0755))

	_, err := fsys.ReadFile("/work/dir")
	assert.Error(t, err)
}
