package shell

import (
	"fmt"
	"os"
	"sort"

	"github.com/pborman/getopt/v2"

	"github.com/abdelhs/gsh/commands"
)

// Outcome tells the interactive loop whether to keep going after a command.
// Code carries the command's exit status for diagnostics; only the exit
// builtin sets Exit.
type Outcome struct {
	Exit bool
	Code int
}

// Continue is the outcome of every command except exit.
var Continue = Outcome{}

type Builtin interface {
	Main(s *Shell, args []string) Outcome
}

type BuiltinFunc func(s *Shell, args []string) Outcome

func (f BuiltinFunc) Main(s *Shell, args []string) Outcome {
	return f(s, args)
}

var _ Builtin = (BuiltinFunc)(nil)

// registerBuiltins fills the shell's builtin registry. It runs once per
// shell; the registry is shell-scoped, not global.
func (s *Shell) registerBuiltins() {
	s.builtins = map[string]Builtin{
		"cd":      BuiltinFunc(Cd),
		"exit":    BuiltinFunc(Exit),
		"help":    BuiltinFunc(Help),
		"clear":   BuiltinFunc(Clear),
		"about":   BuiltinFunc(About),
		"history": BuiltinFunc(History),
	}

	for name, cmd := range commands.AllCommands {
		s.builtins[name] = commandBuiltin(cmd)
	}
}

// commandBuiltin adapts a file-utility command to the builtin registry. The
// loop continues regardless of the command's exit code.
func commandBuiltin(cmd commands.CommandFunc) Builtin {
	return BuiltinFunc(func(s *Shell, args []string) Outcome {
		code := cmd(&commands.Env{
			Fs:     s.fs,
			Args:   args,
			Stdin:  s.stdin,
			Stdout: s.stdout,
			Stderr: s.stderr,
		})
		return Outcome{Code: code}
	})
}

// Cd is the cd shell builtin.
func Cd(s *Shell, args []string) Outcome {
	switch len(args) {
	case 1:
		fmt.Fprintf(s.stderr, "gsh: expected argument to %q\n", args[0])
	case 2:
		if err := os.Chdir(args[1]); err != nil {
			fmt.Fprintf(s.stderr, "gsh: %s: %v\n", args[0], err)
			return Outcome{Code: 1}
		}
		return Continue
	default:
		fmt.Fprintf(s.stderr, "gsh: %s: too many arguments\n", args[0])
	}
	return Outcome{Code: 1}
}

// Exit quits the shell. It is the only builtin that stops the loop.
func Exit(s *Shell, args []string) Outcome {
	return Outcome{Exit: true}
}

// Help lists the registered builtins.
func Help(s *Shell, args []string) Outcome {
	w := s.stdout
	fmt.Fprintf(w, "gsh %s\n", Version)
	fmt.Fprintln(w, "Type program names and arguments, and hit enter.")
	fmt.Fprintln(w, "The following are built in:")

	names := make([]string, 0, len(s.builtins))
	for name := range s.builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", name)
	}

	fmt.Fprintln(w, "Use the man command for information on other programs.")
	return Continue
}

// Clear clears the terminal. Assumes VT100 compatibility.
func Clear(s *Shell, args []string) Outcome {
	fmt.Fprint(s.stdout, "\033[H\033[J")
	return Continue
}

// About prints the identity banner.
func About(s *Shell, args []string) Outcome {
	bannerColor.Fprintf(s.stdout, "gsh %s\n", Version)
	fmt.Fprintln(s.stdout, "An interactive shell with pipelines, redirection and persistent history.")
	return Continue
}

// History displays or clears the recorded command lines.
func History(s *Shell, args []string) Outcome {
	opts := getopt.New()
	clear := opts.Bool('c', "clear the history by deleting all entries")
	helpOpt := opts.BoolLong("help", 'h', "show help and exit")

	if err := opts.Getopt(args, nil); err != nil || *helpOpt {
		w := s.stderr
		if err != nil {
			fmt.Fprintln(w, err)
		}
		fmt.Fprintln(w, "usage: history [-c]")
		fmt.Fprintln(w, "Display or clear the command history.")
		opts.PrintOptions(w)
		return Outcome{Code: 1}
	}

	if *clear {
		s.history.Clear()
		if s.readline != nil {
			s.readline.Operation.ResetHistory()
		}
		return Continue
	}

	for i, line := range s.history.Entries() {
		fmt.Fprintf(s.stdout, "%d %s\n", i+1, line)
	}
	return Continue
}
