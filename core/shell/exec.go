package shell

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// RunExternal starts the program named by args[0] with the shell's current
// streams and blocks until it terminates. The shell keeps running no matter
// how the child fails; the return value is the child's exit code, surfaced
// for diagnostics only.
func (s *Shell) RunExternal(args []string) int {
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = s.stdin
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr

	err := cmd.Run()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, exec.ErrNotFound):
		fmt.Fprintf(s.stderr, "gsh: %s: command not found\n", args[0])
		return 127
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		fmt.Fprintf(s.stderr, "gsh: %s: %v\n", args[0], err)
		return 1
	}
}

// RunPipeline starts one process per stage, adjacent stages connected by OS
// pipes, and waits for every started stage. The first stage reads the
// shell's stdin and the last writes its stdout.
//
// If a stage fails to start the pipeline is aborted: later stages are never
// started, every pipe end held by the shell is closed, and the stages
// already running are still waited on. Closing the pipe ends is what lets a
// running upstream stage die on a broken pipe and a downstream stage see
// end-of-stream.
func (s *Shell) RunPipeline(stages [][]string) error {
	n := len(stages)

	// readers[i] feeds stage i, writers[i] drains it. Index 0 and n-1 stay
	// nil and fall back to the shell's own streams.
	readers := make([]*os.File, n)
	writers := make([]*os.File, n)

	closeEnds := func() {
		for _, fd := range readers {
			if fd != nil {
				fd.Close()
			}
		}
		for _, fd := range writers {
			if fd != nil {
				fd.Close()
			}
		}
	}

	for i := 0; i < n-1; i++ {
		r, w, err := os.Pipe()
		if err != nil {
			closeEnds()
			return fmt.Errorf("create pipe: %w", err)
		}
		writers[i] = w
		readers[i+1] = r
	}

	started := make([]*exec.Cmd, 0, n)
	for i, args := range stages {
		cmd := exec.Command(args[0], args[1:]...)

		if readers[i] != nil {
			cmd.Stdin = readers[i]
		} else {
			cmd.Stdin = s.stdin
		}
		if writers[i] != nil {
			cmd.Stdout = writers[i]
		} else {
			cmd.Stdout = s.stdout
		}
		cmd.Stderr = s.stderr

		if err := cmd.Start(); err != nil {
			if errors.Is(err, exec.ErrNotFound) {
				fmt.Fprintf(s.stderr, "gsh: %s: command not found\n", args[0])
			} else {
				fmt.Fprintf(s.stderr, "gsh: %s: %v\n", args[0], err)
			}
			break
		}
		started = append(started, cmd)
	}

	// The shell's copies of the pipe ends must go away before waiting so
	// downstream stages can observe end-of-stream.
	closeEnds()

	for _, cmd := range started {
		if err := cmd.Wait(); err != nil {
			// Nonzero exits and signal deaths are informational only.
			var exitErr *exec.ExitError
			if !errors.As(err, &exitErr) {
				fmt.Fprintf(s.stderr, "gsh: %s: %v\n", cmd.Path, err)
			}
		}
	}

	return nil
}
