package filesystem

import (
	"io"
	"io/fs"

	"github.com/spf13/afero"

	"github.com/arthur-debert/gdot/pkg/types"
)

type aferoFS struct {
	afero.Afero
}

// NewOS returns the real file system.
func NewOS() types.FS {
	return NewAferoFS(afero.NewOsFs())
}

// NewAferoFS adapts any afero.Fs, typically a MemMapFs in tests.
func NewAferoFS(base afero.Fs) types.FS {
	return aferoFS{afero.Afero{Fs: base}}
}

func (a aferoFS) Open(name string) (io.ReadCloser, error) {
	return a.Fs.Open(name)
}

// ReadFile refuses directories. MemMapFs would otherwise return an empty read.
func (a aferoFS) ReadFile(name string) ([]byte, error) {
	if isDir, err := a.IsDir(name); err != nil {
		return nil, err
	} else if isDir {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return a.Afero.ReadFile(name)
}
