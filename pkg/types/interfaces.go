package types

import (
	"context"
	"io"
	"io/fs"
)

// FS is the filesystem interface required by the renderers
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Open(name string) (io.ReadCloser, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
}

// CommandRunner runs an external program and returns what it printed on stdout.
// A non-zero exit or a missing executable is reported as an error.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}
