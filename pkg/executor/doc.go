// Package executor runs the external programs shrinky consults (git,
// uptime, a venv's python) in a strictly best-effort way.
//
// Every call happens on the prompt-draw path, so a missing program or a
// non-zero exit is never an error for the caller: Output simply returns
// an empty string and the corresponding prompt fragment is omitted.
// No timeout, retry or cache is layered on top; the caller's context is
// the only way to cut a call short.
package executor
