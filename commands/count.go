package commands

import (
	"fmt"
	"io"
)

// countState tallies lines, words and bytes from a stream. Words are runs
// of non-whitespace tracked with a small state machine.
type countState struct {
	lines  int
	words  int
	chars  int
	inWord bool
}

func (c *countState) Write(data []byte) (int, error) {
	for _, b := range data {
		c.chars++
		if b == '\n' {
			c.lines++
		}

		switch b {
		case ' ', '\n', '\t':
			c.inWord = false
		default:
			if !c.inWord {
				c.words++
			}
			c.inWord = true
		}
	}

	return len(data), nil
}

// Count reports the line, word and character counts of a file.
func Count(env *Env) int {
	cmd := &SimpleCommand{
		Use:   "count FILE",
		Short: "Report the number of lines, words and characters in a file.",
	}

	return cmd.Run(env, func() int {
		args := cmd.Flags().Args()
		if len(args) < 1 {
			fmt.Fprintln(env.Stderr, `gsh: expected argument to "count"`)
			return 1
		}

		fd, err := env.Fs.Open(args[0])
		if err != nil {
			fmt.Fprintf(env.Stderr, "gsh: %v\n", err)
			return 1
		}
		defer fd.Close()

		var counts countState
		if _, err := io.Copy(&counts, fd); err != nil {
			fmt.Fprintf(env.Stderr, "gsh: %v\n", err)
			return 1
		}

		fmt.Fprintf(env.Stdout, "Lines: %d\n", counts.lines)
		fmt.Fprintf(env.Stdout, "Words: %d\n", counts.words)
		fmt.Fprintf(env.Stdout, "Chars: %d\n", counts.chars)
		return 0
	})
}

var _ CommandFunc = Count

func init() {
	addCmd("count", Count)
}
