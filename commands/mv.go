package commands

import "fmt"

// Mv renames or moves a file.
func Mv(env *Env) int {
	cmd := &SimpleCommand{
		Use:   "mv SOURCE DEST",
		Short: "Rename or move a file.",
	}

	return cmd.Run(env, func() int {
		args := cmd.Flags().Args()
		if len(args) < 2 {
			fmt.Fprintln(env.Stderr, `gsh: expected source and destination for "mv"`)
			return 1
		}

		if err := env.Fs.Rename(args[0], args[1]); err != nil {
			fmt.Fprintf(env.Stderr, "gsh: %v\n", err)
			return 1
		}
		return 0
	})
}

var _ CommandFunc = Mv

func init() {
	addCmd("mv", Mv)
}
