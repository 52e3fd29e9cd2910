// Package tmux renders tmux status line segments: the current git branch
// styled by a branch spec, the machine uptime, and short window names.
//
// Segments use tmux's own #[fg=...] style markup, and every piece of
// information coming from an external program is optional.
package tmux
