package history

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_ordering(t *testing.T) {
	h := New(10)
	h.Add("first")
	h.Add("second")
	h.Add("third")

	assert.Equal(t, []string{"first", "second", "third"}, h.Entries())
	assert.Equal(t, 3, h.Len())
}

func TestAdd_evictsOldest(t *testing.T) {
	h := New(3)
	for _, line := range []string{"a", "b", "c", "d", "e"} {
		h.Add(line)
	}

	assert.Equal(t, []string{"c", "d", "e"}, h.Entries())
	assert.Equal(t, 3, h.Len())
}

func TestAdd_ignoresEmpty(t *testing.T) {
	h := New(3)
	h.Add("")
	h.Add("ls")
	h.Add("")

	assert.Equal(t, []string{"ls"}, h.Entries())
}

func TestEntries_isACopy(t *testing.T) {
	h := New(3)
	h.Add("ls")

	got := h.Entries()
	got[0] = "mutated"

	assert.Equal(t, []string{"ls"}, h.Entries())
}

func TestClear(t *testing.T) {
	h := New(3)
	h.Add("ls")
	h.Clear()

	assert.Zero(t, h.Len())
	assert.Empty(t, h.Entries())
}

func TestSaveLoad_roundTrip(t *testing.T) {
	h := New(10)
	h.Add("ls -la")
	h.Add("cd /tmp")

	var buf bytes.Buffer
	require.NoError(t, h.Save(&buf))
	assert.Equal(t, "ls -la\ncd /tmp\n", buf.String())

	loaded := New(10)
	require.NoError(t, loaded.Load(&buf))
	assert.Equal(t, h.Entries(), loaded.Entries())
}

func TestLoad_respectsCapacity(t *testing.T) {
	loaded := New(2)
	require.NoError(t, loaded.Load(strings.NewReader("a\nb\nc\n")))

	assert.Equal(t, []string{"b", "c"}, loaded.Entries())
}

func TestLoadFile_missingIsNotAnError(t *testing.T) {
	h := New(10)
	assert.NoError(t, h.LoadFile(afero.NewMemMapFs(), "/does/not/exist"))
	assert.Zero(t, h.Len())
}

func TestSaveFile_roundTrip(t *testing.T) {
	fsys := afero.NewMemMapFs()

	h := New(10)
	h.Add("echo hi")
	require.NoError(t, h.SaveFile(fsys, "/hist"))

	loaded := New(10)
	require.NoError(t, loaded.LoadFile(fsys, "/hist"))
	assert.Equal(t, h.Entries(), loaded.Entries())
}
