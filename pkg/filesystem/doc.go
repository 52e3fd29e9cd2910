// Package filesystem adapts afero to types.FS. The binary runs on the OS
// file system; tests hand renderers an in-memory tree.
package filesystem
