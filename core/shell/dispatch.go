package shell

import (
	"fmt"
	"io"
	"os"
)

// streamSet is one binding of the shell's standard streams. Dispatch saves
// and restores it around redirected commands so a redirection can never
// leak into the next loop iteration.
type streamSet struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

func (s *Shell) streams() streamSet {
	return streamSet{in: s.stdin, out: s.stdout, err: s.stderr}
}

func (s *Shell) setStreams(ss streamSet) {
	s.stdin, s.stdout, s.stderr = ss.in, ss.out, ss.err
}

// Dispatch runs one tokenized input line to completion and reports whether
// the interactive loop should continue. Builtins and redirection are not
// recognized inside pipelines.
func (s *Shell) Dispatch(args []string) Outcome {
	if len(args) == 0 {
		return Continue
	}

	if HasPipe(args) {
		stages, err := SplitPipeline(args)
		if err != nil {
			fmt.Fprintf(s.stderr, "gsh: %v\n", err)
			return Outcome{Code: 1}
		}
		if err := s.RunPipeline(stages); err != nil {
			fmt.Fprintf(s.stderr, "gsh: %v\n", err)
			return Outcome{Code: 1}
		}
		return Continue
	}

	if builtin, ok := s.builtins[args[0]]; ok {
		return builtin.Main(s, args)
	}

	args, redir, err := ExtractRedirections(args)
	if err != nil {
		fmt.Fprintf(s.stderr, "gsh: %v\n", err)
		return Outcome{Code: 1}
	}
	if len(args) == 0 {
		fmt.Fprintln(s.stderr, "gsh: missing command")
		return Outcome{Code: 1}
	}

	saved := s.streams()
	defer s.setStreams(saved)

	// A file that can't be opened is reported and that side keeps the
	// shell's existing stream.
	if redir.InputPath != "" {
		fd, err := os.Open(redir.InputPath)
		if err != nil {
			fmt.Fprintf(s.stderr, "gsh: %v\n", err)
		} else {
			defer fd.Close()
			s.stdin = fd
		}
	}
	if redir.OutputPath != "" {
		fd, err := os.OpenFile(redir.OutputPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			fmt.Fprintf(s.stderr, "gsh: %v\n", err)
		} else {
			defer fd.Close()
			s.stdout = fd
		}
	}

	return Outcome{Code: s.RunExternal(args)}
}
