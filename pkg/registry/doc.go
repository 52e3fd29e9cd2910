// Package registry provides a generic, type-safe registry for named
// items. shrinky keeps its renderer command table in one.
package registry
