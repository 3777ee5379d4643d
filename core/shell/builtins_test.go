package shell

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCd(t *testing.T) {
	s := newTestShell(t)

	orig, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(orig) })

	dir := t.TempDir()
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	outcome := s.Dispatch([]string{"cd", dir})
	assert.Equal(t, Continue, outcome)

	wd, err := os.Getwd()
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(wd)
	require.NoError(t, err)
	assert.Equal(t, resolved, got)
}

func TestCd_missingArgument(t *testing.T) {
	s := newTestShell(t)

	outcome := s.Dispatch([]string{"cd"})

	assert.False(t, outcome.Exit)
	assert.Contains(t, s.stderrBuf.String(), `expected argument to "cd"`)
}

func TestCd_badDirectory(t *testing.T) {
	s := newTestShell(t)

	outcome := s.Dispatch([]string{"cd", "/definitely/missing/gsh-dir"})

	assert.Equal(t, 1, outcome.Code)
	assert.NotEmpty(t, s.stderrBuf.String())
}

func TestCd_tooManyArguments(t *testing.T) {
	s := newTestShell(t)

	outcome := s.Dispatch([]string{"cd", "/a", "/b"})

	assert.Equal(t, 1, outcome.Code)
	assert.Contains(t, s.stderrBuf.String(), "too many arguments")
}

func TestHelp_listsAllBuiltins(t *testing.T) {
	s := newTestShell(t)

	assert.Equal(t, Continue, s.Dispatch([]string{"help"}))

	out := s.stdoutBuf.String()
	for _, name := range []string{"cd", "exit", "help", "clear", "about", "history", "count", "cp", "mv", "rm"} {
		assert.Contains(t, out, name)
	}
}

func TestClear(t *testing.T) {
	s := newTestShell(t)

	assert.Equal(t, Continue, s.Dispatch([]string{"clear"}))
	assert.Equal(t, "\033[H\033[J", s.stdoutBuf.String())
}

func TestAbout(t *testing.T) {
	s := newTestShell(t)

	assert.Equal(t, Continue, s.Dispatch([]string{"about"}))
	assert.Contains(t, s.stdoutBuf.String(), "gsh "+Version)
}

func TestHistory_list(t *testing.T) {
	s := newTestShell(t)
	s.history.Add("ls -la")
	s.history.Add("cd /tmp")

	assert.Equal(t, Continue, s.Dispatch([]string{"history"}))
	assert.Equal(t, "1 ls -la\n2 cd /tmp\n", s.stdoutBuf.String())
}

func TestHistory_clear(t *testing.T) {
	s := newTestShell(t)
	s.history.Add("ls")

	assert.Equal(t, Continue, s.Dispatch([]string{"history", "-c"}))
	assert.Zero(t, s.history.Len())
}

// The file-utility commands are wired into the builtin registry and run
// against the shell's filesystem and streams.
func TestFileUtilityBuiltins(t *testing.T) {
	s := newTestShell(t)
	require.NoError(t, afero.WriteFile(s.fs, "/note.txt", []byte("a b\nc\n"), 0644))

	outcome := s.Dispatch([]string{"count", "/note.txt"})
	assert.Equal(t, Continue, outcome)
	assert.Equal(t, "Lines: 2\nWords: 3\nChars: 6\n", s.stdoutBuf.String())

	s.stdoutBuf.Reset()

	assert.Equal(t, Continue, s.Dispatch([]string{"cp", "/note.txt", "/copy.txt"}))
	got, err := afero.ReadFile(s.fs, "/copy.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("a b\nc\n"), got)

	assert.Equal(t, Continue, s.Dispatch([]string{"mv", "/copy.txt", "/moved.txt"}))
	assert.Equal(t, Continue, s.Dispatch([]string{"rm", "/moved.txt"}))

	exists, err := afero.Exists(s.fs, "/moved.txt")
	require.NoError(t, err)
	assert.False(t, exists)
}

// A failing file utility still reports "continue": only exit stops the
// loop.
func TestFileUtilityBuiltins_failureContinues(t *testing.T) {
	s := newTestShell(t)

	outcome := s.Dispatch([]string{"rm", "/nope"})

	assert.False(t, outcome.Exit)
	assert.Equal(t, 1, outcome.Code)
	assert.NotEmpty(t, s.stderrBuf.String())
}
