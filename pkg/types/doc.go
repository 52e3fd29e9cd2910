// Package types defines the small interfaces shared across shrinky:
// the filesystem it inspects and the external commands it runs.
// Keeping them here lets renderers be tested against an in-memory
// filesystem and canned command output.
package types
