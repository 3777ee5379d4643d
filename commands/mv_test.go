package commands

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMv(t *testing.T) {
	env := newTestEnv("mv", "/old", "/new")
	require.NoError(t, afero.WriteFile(env.Fs, "/old", []byte("payload"), 0644))

	assert.Equal(t, 0, Mv(env.Env))

	got, err := afero.ReadFile(env.Fs, "/new")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)

	exists, err := afero.Exists(env.Fs, "/old")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMv_missingOperands(t *testing.T) {
	env := newTestEnv("mv", "/only-one")

	assert.Equal(t, 1, Mv(env.Env))
	assert.Contains(t, env.stderr.String(), "expected source and destination")
}

func TestMv_missingSource(t *testing.T) {
	env := newTestEnv("mv", "/nope", "/dst")

	assert.Equal(t, 1, Mv(env.Env))
	assert.NotEmpty(t, env.stderr.String())
}
