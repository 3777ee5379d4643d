package commands

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCp(t *testing.T) {
	// Binary content with NUL and high bytes must survive unchanged.
	content := []byte{0x00, 0xff, 'h', 'i', '\n', 0x7f, 0x00}

	env := newTestEnv("cp", "/src", "/dst")
	require.NoError(t, afero.WriteFile(env.Fs, "/src", content, 0644))

	assert.Equal(t, 0, Cp(env.Env))

	got, err := afero.ReadFile(env.Fs, "/dst")
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestCp_overwritesDestination(t *testing.T) {
	env := newTestEnv("cp", "/src", "/dst")
	require.NoError(t, afero.WriteFile(env.Fs, "/src", []byte("new"), 0644))
	require.NoError(t, afero.WriteFile(env.Fs, "/dst", []byte("something longer"), 0644))

	assert.Equal(t, 0, Cp(env.Env))

	got, err := afero.ReadFile(env.Fs, "/dst")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)
}

func TestCp_missingOperands(t *testing.T) {
	env := newTestEnv("cp", "/only-one")

	assert.Equal(t, 1, Cp(env.Env))
	assert.Contains(t, env.stderr.String(), "expected source and destination")
}

func TestCp_missingSource(t *testing.T) {
	env := newTestEnv("cp", "/nope", "/dst")

	assert.Equal(t, 1, Cp(env.Env))
	assert.NotEmpty(t, env.stderr.String())
}
