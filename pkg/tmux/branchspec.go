package tmux

import (
	"strings"
	"unicode/utf8"
)

// DefaultBranchSpec styles main branches blue, release branches green and
// everything else yellow
const DefaultBranchSpec = "📌yellow+✨blue:master,main+🧐green:release,publish"

// BranchSpec is one clause of a branch spec: an icon and a tmux colour,
// applied to the listed branches (or to any branch when none are listed)
type BranchSpec struct {
	Spec     string
	Icon     string
	Color    string
	Branches []string
}

// BranchSpecs maps branch names to their clause
type BranchSpecs struct {
	Default  *BranchSpec
	byBranch map[string]*BranchSpec
}

// ParseBranchSpecs parses clauses of the form <icon><color>[:b1,b2] joined
// by "+". An empty spec means DefaultBranchSpec. A clause without branches
// becomes the fallback; later clauses win over earlier ones.
func ParseBranchSpecs(spec string) *BranchSpecs {
	if spec == "" {
		spec = DefaultBranchSpec
	}

	specs := &BranchSpecs{byBranch: make(map[string]*BranchSpec)}
	for _, clause := range strings.Split(spec, "+") {
		if clause == "" {
			continue
		}
		parsed := parseClause(clause)
		if len(parsed.Branches) == 0 {
			specs.Default = parsed
			continue
		}
		for _, branch := range parsed.Branches {
			specs.byBranch[branch] = parsed
		}
	}
	return specs
}

func parseClause(clause string) *BranchSpec {
	visual, branches, _ := strings.Cut(clause, ":")
	icon, size := utf8.DecodeRuneInString(visual)

	parsed := &BranchSpec{Spec: clause, Color: visual[size:]}
	if visual != "" {
		parsed.Icon = string(icon)
	}
	if branches != "" {
		parsed.Branches = strings.Split(branches, ",")
	}
	return parsed
}

// Resolve returns the clause for branch, the fallback clause, or nil
func (s *BranchSpecs) Resolve(branch string) *BranchSpec {
	if spec, ok := s.byBranch[branch]; ok {
		return spec
	}
	return s.Default
}
