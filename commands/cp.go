package commands

import (
	"fmt"
	"io"
)

// Cp copies a file byte for byte.
func Cp(env *Env) int {
	cmd := &SimpleCommand{
		Use:   "cp SOURCE DEST",
		Short: "Copy a file.",
	}

	return cmd.Run(env, func() int {
		args := cmd.Flags().Args()
		if len(args) < 2 {
			fmt.Fprintln(env.Stderr, `gsh: expected source and destination for "cp"`)
			return 1
		}

		src, err := env.Fs.Open(args[0])
		if err != nil {
			fmt.Fprintf(env.Stderr, "gsh: %v\n", err)
			return 1
		}
		defer src.Close()

		dst, err := env.Fs.Create(args[1])
		if err != nil {
			fmt.Fprintf(env.Stderr, "gsh: %v\n", err)
			return 1
		}

		if _, err := io.Copy(dst, src); err != nil {
			dst.Close()
			fmt.Fprintf(env.Stderr, "gsh: %v\n", err)
			return 1
		}
		if err := dst.Close(); err != nil {
			fmt.Fprintf(env.Stderr, "gsh: %v\n", err)
			return 1
		}
		return 0
	})
}

var _ CommandFunc = Cp

func init() {
	addCmd("cp", Cp)
}
