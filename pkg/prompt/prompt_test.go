package prompt

import (
	"context"
	"strings"
	"testing"

	"github.com/arthur-debert/gdot/pkg/config"
	"github.com/arthur-debert/gdot/pkg/errors"
	"github.com/arthur-debert/gdot/pkg/testutil"
	"github.com/arthur-debert/gdot/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const home = "/home/alice"

func newRenderer(fsys types.FS, runner types.CommandRunner) *Renderer {
	return &Renderer{
		FS:       fsys,
		Runner:   runner,
		Home:     home,
		Settings: config.Default().Prompt,
	}
}

func render(t *testing.T, r *Renderer, opts Options) string {
	t.Helper()
	if opts.ExitCode == "" {
		opts.ExitCode = "0"
	}
	fragments, err := r.Render(context.Background(), opts)
	require.NoError(t, err)
	return strings.Join(fragments, "")
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{
			name: "bash minimal",
			opts: Options{Shell: "bash"},
			want: "\\[\x1b[32m\\]:\\[\x1b[m\\] ",
		},
		{
			name: "tty minimal",
			opts: Options{Shell: "tty"},
			want: "\x1b[32m:\x1b[m ",
		},
		{
			name: "zsh root",
			opts: Options{Shell: "zsh", User: "root", Pwd: "/tmp/foo/bar/baz"},
			want: "❕ %F{yellow}/t/f/bar/baz%f%F{green} #%f ",
		},
		{
			name: "foreign user after failure",
			opts: Options{Shell: "zsh", User: "user1", Owner: "user2,user3", ExitCode: "1"},
			want: "%F{blue}user1%f@%F{red}:%f ",
		},
		{
			name: "owner",
			opts: Options{Shell: "zsh", User: "user2", Owner: "user2,user3"},
			want: "%F{green}:%f ",
		},
		{
			name: "root is never flagged as foreign",
			opts: Options{Shell: "zsh", User: "root", Owner: "user2"},
			want: "❕ %F{green} #%f ",
		},
		{
			name: "home",
			opts: Options{Shell: "zsh", Pwd: "~/projects"},
			want: "%F{yellow}~/projects%f%F{green}:%f ",
		},
		{
			name: "quoted pwd",
			opts: Options{Shell: "zsh", Pwd: `"/home/alice"`},
			want: "%F{yellow}~%f%F{green}:%f ",
		},
		{
			name: "fictional venv",
			opts: Options{Shell: "zsh", Venv: "foo/bar/.venv"},
			want: "(%F{cyan}bar%f %F{blue}None%f) %F{green}:%f ",
		},
		{
			name: "named venv",
			opts: Options{Shell: "zsh", Venv: "/opt/venvs/tools"},
			want: "(%F{cyan}tools%f %F{blue}None%f) %F{green}:%f ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRenderer(testutil.NewMemFS(), testutil.NewFakeRunner())
			assert.Equal(t, tt.want, render(t, r, tt.opts))
		})
	}
}

func TestRenderDeepPath(t *testing.T) {
	fsys := testutil.NewMemFS()
	sample := "/src/sample/some/very/deep/folder/with/way/too/many/characters/tests"
	full := sample + "/foo/bar/baz/even/more/tests"
	testutil.MemFile(t, fsys, sample+"/.git", "")
	testutil.MemFile(t, fsys, full+"/.venv/bin/activate", "\nPS1=\"(some-very-long-venv-prompt) ${PS1:-}\"")

	r := newRenderer(fsys, testutil.NewFakeRunner())
	got := render(t, r, Options{Shell: "zsh", Pwd: `"` + full + `"`, Venv: full + "/.venv"})

	assert.Equal(t, "(%F{cyan}𓈓me-very-long-venv-prompt%f %F{blue}None%f) %F{yellow}/𓈓/f/b/b/e/more/tests%f%F{green}:%f ", got)
}

func TestRenderContainer(t *testing.T) {
	fsys := testutil.NewMemFS()
	testutil.MemFile(t, fsys, "/.dockerenv", "")
	r := newRenderer(fsys, testutil.NewFakeRunner())

	assert.Equal(t, "🐳 %F{green}:%f ", render(t, r, Options{Shell: "zsh"}))
	assert.Equal(t, "🐳 %F{green} #%f ", render(t, r, Options{Shell: "zsh", User: "root"}),
		"the container marker replaces the root marker")
}

func TestRenderVenvVersion(t *testing.T) {
	fsys := testutil.NewMemFS()
	venv := "/work/project/.venv"
	testutil.MemFile(t, fsys, venv+"/bin/python", "")
	testutil.MemFile(t, fsys, venv+"/bin/activate", "PS1=\"(old) ${PS1:-}\"\n    PS1=\"(project-dev) ${PS1:-}\"\n")

	runner := testutil.NewFakeRunner()
	runner.Register(venv+"/bin/python --version", "Python 3.11.4\n", nil)

	r := newRenderer(fsys, runner)
	got := render(t, r, Options{Shell: "zsh", Venv: venv})

	assert.Equal(t, "(%F{cyan}project-dev%f %F{blue}3.11%f) %F{green}:%f ", got)
	assert.True(t, runner.Called(venv+"/bin/python"))
}

func TestRenderVenvVersionWithoutMatch(t *testing.T) {
	fsys := testutil.NewMemFS()
	venv := "/work/project/.venv"
	testutil.MemFile(t, fsys, venv+"/bin/python", "")

	runner := testutil.NewFakeRunner()
	runner.Register(venv+"/bin/python --version", "weird output", nil)

	r := newRenderer(fsys, runner)
	got := render(t, r, Options{Shell: "zsh", Venv: venv})

	assert.Equal(t, "(%F{cyan}project%f %F{blue}𓈓utput%f) %F{green}:%f ", got)
}

func TestRenderUnsupportedShell(t *testing.T) {
	r := newRenderer(testutil.NewMemFS(), testutil.NewFakeRunner())

	fragments, err := r.Render(context.Background(), Options{Shell: "fish", ExitCode: "0"})
	assert.Nil(t, fragments)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedShell))
	assert.Equal(t, "Shell 'fish' not supported", errors.Message(err))
	assert.Equal(t, []string{"bash", "zsh", "tty"}, errors.GetErrorDetails(err)["supported"])
}
