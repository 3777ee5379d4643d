// Package commands holds the file-utility builtins. They are plain I/O
// wrappers over an afero filesystem and never touch the execution engine's
// state.
package commands

import (
	"fmt"
	"io"

	getopt "github.com/pborman/getopt/v2"
	"github.com/spf13/afero"
)

// Env holds everything a file-utility builtin needs: the filesystem it
// operates on, its argument list and the shell's current streams.
type Env struct {
	Fs     afero.Fs
	Args   []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// CommandFunc is a file-utility builtin entry point. The return value is an
// exit code; the interactive loop continues regardless.
type CommandFunc func(env *Env) int

// AllCommands holds the registered file-utility builtins by name.
var AllCommands = make(map[string]CommandFunc)

func addCmd(name string, cmd CommandFunc) {
	AllCommands[name] = cmd
}

// SimpleCommand reduces the boilerplate of builtins that only need flag
// parsing and help output.
type SimpleCommand struct {
	// Use holds a one line usage string.
	Use string
	// Short holds a one line description of the command.
	Short string

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}

	return s.flags
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	s.Flags().PrintOptions(w)
}

// Run parses flags and, if parsing succeeded, calls the callback.
func (s *SimpleCommand) Run(env *Env, callback func() int) int {
	opts := s.Flags()
	showHelp := opts.BoolLong("help", 'h', "show this help and exit")

	if err := opts.Getopt(env.Args, nil); err != nil {
		fmt.Fprintf(env.Stderr, "error: %s\n\n", err)
		s.PrintHelp(env.Stdout)
		return 1
	}

	if *showHelp {
		s.PrintHelp(env.Stdout)
		return 0
	}

	return callback()
}
