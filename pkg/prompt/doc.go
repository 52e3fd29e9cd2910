// Package prompt renders a shell PS1 as a list of fragments.
//
// A prompt is made of, in order: a container or root marker, the active
// python venv, the user name when it isn't one of the expected owners, the
// abbreviated working directory and the prompt character, coloured by the
// last exit code. Every piece is optional except the prompt character.
package prompt
