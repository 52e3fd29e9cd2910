package colors

import (
	"github.com/muesli/termenv"
)

var (
	ttySet  = ansiSet("tty-colors", "")
	bashSet = ansiSet("bash-ps1-colors", bashNonPrinting)
	zshSet  = zshPromptSet()
)

// TTY returns raw ANSI colours, suitable for a terminal
func TTY() *Set {
	return ttySet
}

// Bash returns ANSI colours escaped for a bash PS1
func Bash() *Set {
	return bashSet
}

// Zsh returns colours as zsh prompt escapes (%F{..}, %B)
func Zsh() *Set {
	return zshSet
}

// ForShell returns the prompt colour set for a shell name. ok is false for
// shells shrinky doesn't know how to decorate.
func ForShell(shell string) (*Set, bool) {
	switch shell {
	case "bash":
		return Bash(), true
	case "zsh":
		return Zsh(), true
	case "tty":
		return TTY(), true
	}
	return nil, false
}

// Shells lists the names ForShell accepts
func Shells() []string {
	return []string{"bash", "zsh", "tty"}
}

func ansiSet(name, wrapper string) *Set {
	clear := termenv.CSI + "m"
	bits := make([]Bit, 0, len(Names))
	for _, n := range Names {
		bits = append(bits, NewBit(n, termenv.CSI+ansiCodes[n]+"m", clear, wrapper))
	}
	return mustSet(name, bits...)
}

func zshPromptSet() *Set {
	bits := make([]Bit, 0, len(Names))
	for _, n := range Names {
		if n == Bold {
			bits = append(bits, NewBit(n, "%B", "%b", ""))
			continue
		}
		bits = append(bits, NewBit(n, "%F{"+n+"}", "%f", ""))
	}
	return mustSet("zsh-ps1-colors", bits...)
}
