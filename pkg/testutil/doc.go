// Package testutil provides utilities for testing shrinky components.
//
// Key components:
//   - FakeRunner: canned output for external commands (git, uptime, python)
//   - MemFS helpers: an afero-backed types.FS populated declaratively
//   - CreateFile/CreateDir: real temp-dir fixtures for end-to-end CLI tests
package testutil
