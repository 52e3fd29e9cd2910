package paths

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/gdot/pkg/types"
)

const (
	// Ellipsis marks text or path segments that were cut away
	Ellipsis = "𓈓"

	// HomeMarker stands for the user's home directory in abbreviated paths
	HomeMarker = "~"

	// GitMarker is the entry that makes a directory an SCM root
	GitMarker = ".git"

	// DefaultMaxParts is how many trailing path segments ShortenPath keeps
	DefaultMaxParts = 6
)

// HomeDir returns the current user's home directory, or "" if unknown
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return os.Getenv("HOME")
	}
	return home
}

// ResolvePath normalizes a user-supplied path: one layer of surrounding
// double quotes is stripped (tmux passes "#{pane_current_path}" quoted),
// "~" and "~/..." are expanded against home, and the result is cleaned.
// An empty path stands for the current directory.
func ResolvePath(raw, home string) string {
	p := raw
	if len(p) >= 2 && strings.HasPrefix(p, `"`) && strings.HasSuffix(p, `"`) {
		p = p[1 : len(p)-1]
	}

	switch {
	case p == "":
		return "."
	case p == HomeMarker:
		return filepath.Clean(home)
	case strings.HasPrefix(p, HomeMarker+"/"):
		return filepath.Join(home, p[2:])
	}

	return filepath.Clean(p)
}

// FindSCMRoot walks up from dir and returns the first directory (dir
// included) that contains a .git entry. The filesystem root itself is
// never considered. Returns "" when no root is found.
func FindSCMRoot(fsys types.FS, dir string) string {
	if dir == "" {
		return ""
	}

	current, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}

	for {
		parent := filepath.Dir(current)
		if parent == current {
			return ""
		}
		if _, err := fsys.Stat(filepath.Join(current, GitMarker)); err == nil {
			return current
		}
		current = parent
	}
}

// FolderParts splits folder into a prefix and its segments: ("~", segments
// below home) when folder is home or under it, ("", absolute segments)
// otherwise.
func FolderParts(folder, home string) (string, []string) {
	abs := folder
	if !filepath.IsAbs(abs) {
		if resolved, err := filepath.Abs(abs); err == nil {
			abs = resolved
		}
	}
	abs = filepath.Clean(abs)
	sep := string(filepath.Separator)

	if home != "" {
		rel, err := filepath.Rel(filepath.Clean(home), abs)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+sep) {
			if rel == "." {
				return HomeMarker, nil
			}
			return HomeMarker, strings.Split(rel, sep)
		}
	}

	trimmed := strings.TrimPrefix(abs, sep)
	if trimmed == "" {
		return "", nil
	}
	return "", strings.Split(trimmed, sep)
}

// ShortenPath abbreviates path segments for display. The prefix comes
// first; when there are more than maxParts segments an Ellipsis is
// inserted and only the last maxParts are kept. Every remaining segment
// except the final two is reduced to its first character.
func ShortenPath(prefix string, parts []string, maxParts int) []string {
	out := make([]string, 0, len(parts)+2)
	out = append(out, prefix)

	if maxParts > 0 && len(parts) > maxParts {
		out = append(out, Ellipsis)
		parts = parts[len(parts)-maxParts:]
	}

	pivot := len(parts) - 2
	for i, part := range parts {
		if i < pivot {
			out = append(out, firstRune(part))
		} else {
			out = append(out, part)
		}
	}

	return out
}

// CapText keeps the last max characters of text, preceded by Ellipsis,
// when text is longer than max. A max of 0 disables capping.
func CapText(text string, max int) string {
	if max <= 0 || utf8.RuneCountInString(text) <= max {
		return text
	}
	runes := []rune(text)
	return Ellipsis + string(runes[len(runes)-max:])
}

// CleanList resolves each entry of a PATH-style list and keeps the
// distinct ones that are existing directories, in first-seen order.
func CleanList(fsys types.FS, raw, home string) []string {
	seen := make(map[string]bool)
	var result []string

	for _, entry := range filepath.SplitList(raw) {
		if entry == "" {
			continue
		}
		folder := ResolvePath(entry, home)
		if seen[folder] {
			continue
		}
		seen[folder] = true

		if info, err := fsys.Stat(folder); err == nil && info.IsDir() {
			result = append(result, folder)
		}
	}

	return result
}

func firstRune(s string) string {
	if s == "" {
		return s
	}
	r, _ := utf8.DecodeRuneInString(s)
	return string(r)
}
