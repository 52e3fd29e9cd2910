// Package config handles configuration management for shrinky.
// It layers the embedded defaults, an optional user file (TOML or YAML) and
// SHRINKY_* environment variables, then decodes the result into Config.
// Command line flags are applied on top by the callers.
package config
