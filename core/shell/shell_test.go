package shell

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablesh/tablesh/core/logger"
	"github.com/tablesh/tablesh/core/pipeline"
)

// newTestShell builds a session without a terminal attached.
func newTestShell(t *testing.T) (*Shell, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	s := &Shell{
		fs:   afero.NewMemMapFs(),
		user: "tester",
		home: "/home/tester",
		cwd:  "/home/tester",
		env: map[string]string{
			EnvUser:     "tester",
			EnvHostname: "testhost",
			EnvHome:     "/home/tester",
			EnvPWD:      "/home/tester",
			EnvPrompt:   DefaultPrompt,
		},
		aliases:   map[string]string{"ll": "ls -a"},
		bookmarks: make(map[string]string),
		stdout:    out,
		stderr:    out,
		log:       logger.NewNopLogger().NewSession(),
	}
	s.wireExecutor(out, false)

	require.NoError(t, s.fs.MkdirAll("/home/tester", 0755))
	return s, out
}

func TestSplitStages(t *testing.T) {
	stages := SplitStages([]string{"ls", "-a", "|", "where", "Size", ">", "1kb", "|", "limit", "2"})

	require.Len(t, stages, 3)
	assert.Equal(t, pipeline.Stage{Name: "ls", Args: []string{"-a"}}, stages[0])
	assert.Equal(t, pipeline.Stage{Name: "where", Args: []string{"Size", ">", "1kb"}}, stages[1])
	assert.Equal(t, pipeline.Stage{Name: "limit", Args: []string{"2"}}, stages[2])
}

func TestSplitStages_degenerate(t *testing.T) {
	assert.Empty(t, SplitStages(nil))
	assert.Len(t, SplitStages([]string{"|", "|"}), 0)
	assert.Len(t, SplitStages([]string{"ls", "|", "|", "limit", "1"}), 2)
}

func TestPrompt(t *testing.T) {
	s, _ := newTestShell(t)

	assert.Equal(t, "tester@testhost:~$ ", s.Prompt())

	require.NoError(t, s.fs.MkdirAll("/home/tester/docs", 0755))
	require.NoError(t, s.chdir("docs"))
	assert.Equal(t, "tester@testhost:~/docs$ ", s.Prompt())
}

func TestPrompt_rootGetsHash(t *testing.T) {
	s, _ := newTestShell(t)
	s.user = "root"

	assert.Equal(t, "tester@testhost:~# ", s.Prompt())
}

func TestExpandAlias(t *testing.T) {
	s, _ := newTestShell(t)

	assert.Equal(t, []string{"ls", "-a", "docs"}, s.expandAlias([]string{"ll", "docs"}))
	assert.Equal(t, []string{"ls"}, s.expandAlias([]string{"ls"}))
}

func TestDispatch_pipeline(t *testing.T) {
	s, out := newTestShell(t)
	require.NoError(t, afero.WriteFile(s.fs, "/home/tester/big.bin", bytes.Repeat([]byte("x"), 100*1024), 0644))
	require.NoError(t, afero.WriteFile(s.fs, "/home/tester/tiny.txt", []byte("x"), 0644))

	s.Dispatch("ls | where Size > 1kb | select Name")

	output := out.String()
	assert.Contains(t, output, "Name")
	assert.Contains(t, output, "big.bin")
	assert.NotContains(t, output, "tiny.txt")
}

func TestDispatch_pipelineErrorKeepsShellAlive(t *testing.T) {
	s, out := newTestShell(t)

	s.Dispatch("ls | where Owner == root")
	assert.Contains(t, out.String(), "unknown field")

	out.Reset()
	s.Dispatch("ls")
	assert.Contains(t, out.String(), "Name")
}

func TestDispatch_unknownFilter(t *testing.T) {
	s, out := newTestShell(t)

	s.Dispatch("ls | group-by Size")
	assert.Contains(t, out.String(), "unknown filter")
}

func TestDispatch_plainCommandsCannotPipe(t *testing.T) {
	s, out := newTestShell(t)

	s.Dispatch("echo hi | limit 1")
	assert.Contains(t, out.String(), "does not support piping")
	assert.NotContains(t, out.String(), "hi\n")
}

func TestDispatch_plainCommand(t *testing.T) {
	s, out := newTestShell(t)

	s.Dispatch("echo hello world")
	assert.Equal(t, "hello world\n", out.String())
}

func TestDispatch_commandNotFound(t *testing.T) {
	s, out := newTestShell(t)

	s.Dispatch("frobnicate")
	assert.Contains(t, out.String(), "frobnicate: command not found")
}

func TestDispatch_envExpansion(t *testing.T) {
	s, out := newTestShell(t)

	s.Dispatch("echo $USER")
	assert.Equal(t, "tester\n", out.String())
}

func TestBuiltinCd(t *testing.T) {
	s, out := newTestShell(t)
	require.NoError(t, s.fs.MkdirAll("/home/tester/docs", 0755))

	assert.Equal(t, 0, Cd(s, []string{"cd", "docs"}))
	assert.Equal(t, "/home/tester/docs", s.cwd)

	// No argument returns home.
	assert.Equal(t, 0, Cd(s, []string{"cd"}))
	assert.Equal(t, "/home/tester", s.cwd)

	assert.Equal(t, 1, Cd(s, []string{"cd", "missing"}))
	assert.Contains(t, out.String(), "cd:")
}

func TestBuiltinPwd(t *testing.T) {
	s, out := newTestShell(t)

	Pwd(s, []string{"pwd"})
	assert.Equal(t, "/home/tester\n", out.String())
}

func TestBuiltinExit(t *testing.T) {
	s, _ := newTestShell(t)

	Exit(s, []string{"exit"})
	assert.True(t, s.quit)
}

func TestBuiltinAlias(t *testing.T) {
	s, out := newTestShell(t)

	assert.Equal(t, 0, Alias(s, []string{"alias", "la", "ls", "-a"}))
	assert.Equal(t, []string{"ls", "-a"}, s.expandAlias([]string{"la"}))

	out.Reset()
	assert.Equal(t, 0, Alias(s, []string{"alias", "la"}))
	assert.Equal(t, "alias la='ls -a'\n", out.String())

	assert.Equal(t, 1, Alias(s, []string{"alias", "nope"}))
}

func TestBuiltinBookmark(t *testing.T) {
	s, out := newTestShell(t)
	require.NoError(t, s.fs.MkdirAll("/home/tester/project", 0755))
	require.NoError(t, s.chdir("project"))

	assert.Equal(t, 0, Bookmark(s, []string{"bookmark", "add", "proj"}))

	require.NoError(t, s.chdir("/home/tester"))
	assert.Equal(t, 0, Bookmark(s, []string{"bookmark", "proj"}))
	assert.Equal(t, "/home/tester/project", s.cwd)

	out.Reset()
	assert.Equal(t, 0, Bookmark(s, []string{"bookmark"}))
	assert.Contains(t, out.String(), "proj\t/home/tester/project\n")

	assert.Equal(t, 0, Bookmark(s, []string{"bookmark", "rm", "proj"}))
	assert.Equal(t, 1, Bookmark(s, []string{"bookmark", "proj"}))
}

func TestChdirRejectsFiles(t *testing.T) {
	s, _ := newTestShell(t)
	require.NoError(t, afero.WriteFile(s.fs, "/home/tester/file.txt", []byte("x"), 0644))

	assert.Error(t, s.chdir("file.txt"))
	assert.Equal(t, "/home/tester", s.cwd)
}
