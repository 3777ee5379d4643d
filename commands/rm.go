package commands

import (
	"errors"
	"fmt"
	"io/fs"
)

// Rm deletes files.
func Rm(env *Env) int {
	cmd := &SimpleCommand{
		Use:   "rm [-f] FILE...",
		Short: "Remove files.",
	}

	force := cmd.Flags().BoolLong("force", 'f', "ignore missing files, never prompt")

	return cmd.Run(env, func() int {
		args := cmd.Flags().Args()
		if len(args) == 0 {
			fmt.Fprintln(env.Stderr, `gsh: expected argument to "rm"`)
			return 1
		}

		code := 0
		for _, file := range args {
			err := env.Fs.Remove(file)
			switch {
			case err == nil:
			case errors.Is(err, fs.ErrNotExist) && *force:
			default:
				fmt.Fprintf(env.Stderr, "gsh: %v\n", err)
				code = 1
			}
		}
		return code
	})
}

var _ CommandFunc = Rm

func init() {
	addCmd("rm", Rm)
}
