// Package history holds the shell's bounded command history and its
// persistence to the history file.
package history

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/afero"
)

// History is a bounded, ordered log of command lines. Adding to a full
// history evicts the oldest entry.
type History struct {
	capacity int
	entries  []string
}

// New returns an empty history retaining at most capacity entries.
func New(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{capacity: capacity}
}

// Add appends a line, evicting the oldest entry when full. Empty lines are
// ignored.
func (h *History) Add(line string) {
	if line == "" {
		return
	}

	if len(h.entries) < h.capacity {
		h.entries = append(h.entries, line)
		return
	}

	copy(h.entries, h.entries[1:])
	h.entries[h.capacity-1] = line
}

// Entries returns the recorded lines, oldest first. The returned slice is a
// copy the caller may keep.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len reports the number of recorded lines.
func (h *History) Len() int {
	return len(h.entries)
}

// Clear drops all recorded lines.
func (h *History) Clear() {
	h.entries = nil
}

// Load reads one entry per line from r.
func (h *History) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		h.Add(scanner.Text())
	}
	return scanner.Err()
}

// Save writes all entries to w, one per line.
func (h *History) Save(w io.Writer) error {
	for _, line := range h.entries {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// LoadFile loads history from path. A missing file is not an error.
func (h *History) LoadFile(fsys afero.Fs, path string) error {
	fd, err := fsys.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer fd.Close()

	return h.Load(fd)
}

// SaveFile overwrites path with the current entries.
func (h *History) SaveFile(fsys afero.Fs, path string) error {
	fd, err := fsys.Create(path)
	if err != nil {
		return err
	}

	if err := h.Save(fd); err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}
