// Test Type: Unit Test
// Description: Tests for path normalization, abbreviation and SCM root discovery

package paths_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/gdot/pkg/paths"
	"github.com/arthur-debert/gdot/pkg/testutil"
	"github.com/stretchr/testify/assert"
)

const home = "/home/tester"

func TestResolvePath(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty_is_cwd", "", "."},
		{"dot", ".", "."},
		{"quoted_dot", `"."`, "."},
		{"tilde", "~", home},
		{"quoted_tilde", `"~"`, home},
		{"tilde_subdir", "~/dev/gdot", filepath.Join(home, "dev", "gdot")},
		{"absolute_unchanged", "/tmp/foo", "/tmp/foo"},
		{"absolute_cleaned", "/tmp/foo/../bar/", "/tmp/bar"},
		{"single_quote_layer_only", `""x""`, `"x"`},
		{"tilde_inside_is_literal", "foo/~", "foo/~"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paths.ResolvePath(tt.raw, home))
		})
	}
}

func TestResolvePath_HomeRoundTrip(t *testing.T) {
	for _, p := range []string{home, home + "/a", home + "/a/b/c", home + "/.config/gdot"} {
		_, parts := paths.FolderParts(p, home)
		rebuilt := filepath.Join(append([]string{paths.ResolvePath("~", home)}, parts...)...)
		assert.Equal(t, p, rebuilt)
	}
}

func TestFolderParts(t *testing.T) {
	tests := []struct {
		name       string
		folder     string
		wantPrefix string
		wantParts  []string
	}{
		{"home", home, "~", nil},
		{"under_home", home + "/dev/gdot", "~", []string{"dev", "gdot"}},
		{"sibling_of_home", "/home/tester2/x", "", []string{"home", "tester2", "x"}},
		{"absolute", "/tmp/foo/bar/baz", "", []string{"tmp", "foo", "bar", "baz"}},
		{"root", "/", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix, parts := paths.FolderParts(tt.folder, home)
			assert.Equal(t, tt.wantPrefix, prefix)
			assert.Equal(t, tt.wantParts, parts)
		})
	}
}

func TestShortenPath(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		parts  []string
		want   string
	}{
		{"empty", "~", nil, "~"},
		{"two_parts_kept", "~", []string{"dev", "gdot"}, "~/dev/gdot"},
		{"abbreviated", "", []string{"tmp", "foo", "bar", "baz"}, "/t/f/bar/baz"},
		{
			name:   "deep_path_gets_ellipsis",
			prefix: "",
			parts:  strings.Split("a/sample/some/very/deep/folder/foo/bar/baz/even/more/tests", "/"),
			want:   "/𓈓/f/b/b/e/more/tests",
		},
		{"unicode_first_rune", "~", []string{"élan", "x", "y"}, "~/é/x/y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := paths.ShortenPath(tt.prefix, tt.parts, paths.DefaultMaxParts)
			assert.Equal(t, tt.want, strings.Join(got, "/"))
		})
	}
}

func TestShortenPath_LongInputProperties(t *testing.T) {
	for n := paths.DefaultMaxParts + 1; n < 15; n++ {
		parts := make([]string, n)
		for i := range parts {
			parts[i] = strings.Repeat(string(rune('a'+i)), 3)
		}

		got := paths.ShortenPath("~", parts, paths.DefaultMaxParts)

		ellipses := 0
		for _, segment := range got {
			if segment == paths.Ellipsis {
				ellipses++
			}
		}
		assert.Equal(t, 1, ellipses, "n=%d", n)
		assert.Equal(t, parts[n-2:], got[len(got)-2:], "n=%d", n)
		assert.Len(t, got, paths.DefaultMaxParts+2)
	}
}

func TestCapText(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
		want string
	}{
		{"shorter", "main", 20, "main"},
		{"exact", "12345", 5, "12345"},
		{"longer_keeps_tail", "netflix-grpc-client-gen-py", 20, "𓈓x-grpc-client-gen-py"},
		{"zero_disables", "anything", 0, "anything"},
		{"empty", "", 3, ""},
		{"unicode_counts_runes", "ééééé", 4, "𓈓éééé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paths.CapText(tt.text, tt.max))
		})
	}
}

func TestCapText_LengthProperty(t *testing.T) {
	text := "some-very-long-venv-prompt"
	for n := 1; n < len(text); n++ {
		got := []rune(paths.CapText(text, n))
		assert.Len(t, got, n+1)
		assert.Equal(t, paths.Ellipsis, string(got[0]))
		assert.True(t, strings.HasSuffix(text, string(got[1:])))
	}
}

func TestFindSCMRoot(t *testing.T) {
	fsys := testutil.NewMemFS()
	testutil.MemDirs(t, fsys,
		"/src/gdot/.git",
		"/src/gdot/src/gdot",
		"/src/plain/dir",
		"/src/worktree/sub",
	)
	testutil.MemFile(t, fsys, "/src/worktree/.git", "gitdir: /src/gdot/.git/worktrees/wt\n")

	tests := []struct {
		name string
		dir  string
		want string
	}{
		{"root_itself", "/src/gdot", "/src/gdot"},
		{"nested", "/src/gdot/src/gdot", "/src/gdot"},
		{"git_file_counts", "/src/worktree/sub", "/src/worktree"},
		{"no_root", "/src/plain/dir", ""},
		{"empty", "", ""},
		{"filesystem_root", "/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paths.FindSCMRoot(fsys, tt.dir))
		})
	}
}

func TestCleanList(t *testing.T) {
	fsys := testutil.NewMemFS()
	testutil.MemDirs(t, fsys, "/usr/bin", "/bin", home+"/.local/bin")
	testutil.MemFile(t, fsys, "/usr/local/bin", "not a dir")

	raw := strings.Join([]string{
		"/usr/bin", "/nope", "", "/bin", "/usr/bin/", "~/.local/bin", "/usr/local/bin", `"/bin"`,
	}, string(filepath.ListSeparator))

	got := paths.CleanList(fsys, raw, home)

	assert.Equal(t, []string{"/usr/bin", "/bin", home + "/.local/bin"}, got)
}
