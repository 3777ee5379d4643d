// Package shell implements the interactive loop and the command-execution
// engine: tokenization, pipeline and redirection handling, builtin dispatch
// and external process launch.
package shell

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/abdelhs/gsh/core/config"
	"github.com/abdelhs/gsh/core/history"
)

const Version = "1.0"

var (
	promptUserColor = color.New(color.FgGreen, color.Bold)
	promptDirColor  = color.New(color.FgBlue, color.Bold)
	bannerColor     = color.New(color.FgCyan, color.Bold)
)

type Shell struct {
	config   *config.Configuration
	history  *history.History
	readline *readline.Instance
	builtins map[string]Builtin

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// fs backs the file-utility builtins.
	fs afero.Fs
}

// New builds an interactive shell reading from the terminal.
func New(cfg *config.Configuration, hist *history.History) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		HistoryLimit: cfg.HistorySize,
	})
	if err != nil {
		return nil, err
	}

	s := newShell(cfg, hist)
	s.readline = rl

	// Seed readline's recall buffer with the persisted history.
	for _, line := range hist.Entries() {
		rl.Operation.SaveHistory(line)
	}

	return s, nil
}

// newShell wires everything except the readline front end so tests can
// drive dispatch directly.
func newShell(cfg *config.Configuration, hist *history.History) *Shell {
	s := &Shell{
		config:  cfg,
		history: hist,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		fs:      afero.NewOsFs(),
	}
	s.registerBuiltins()
	return s
}

// Prompt renders the prompt template for the current user, host and
// directory.
func (s *Shell) Prompt() string {
	user := os.Getenv("USER")
	if user == "" {
		user = "user"
	}

	host, err := os.Hostname()
	if err != nil {
		host = "localhost"
	}

	wd, err := os.Getwd()
	if err != nil {
		wd = "unknown"
	}
	if home, err := os.UserHomeDir(); err == nil && strings.HasPrefix(wd, home) {
		wd = "~" + strings.TrimPrefix(wd, home)
	}

	prompt := s.config.Prompt
	prompt = strings.ReplaceAll(prompt, `\u`, promptUserColor.Sprint(user))
	prompt = strings.ReplaceAll(prompt, `\h`, promptUserColor.Sprint(host))
	prompt = strings.ReplaceAll(prompt, `\w`, promptDirColor.Sprint(wd))

	return prompt
}

// Run is the interactive loop: read a line, record it, dispatch it. It
// returns when input is closed or the exit builtin runs.
func (s *Shell) Run() error {
	if s.config.Banner != "" {
		fmt.Fprintln(s.stdout, s.config.Banner)
	}

	for {
		s.readline.SetPrompt(s.Prompt())
		line, err := s.readline.Readline()

		switch {
		case err == io.EOF:
			return nil // Input closed, quit.

		case err == readline.ErrInterrupt:
			continue

		case err != nil:
			return err

		case len(line) == 0:
			continue // empty line
		}

		s.history.Add(line)
		s.readline.Operation.SaveHistory(line)

		if outcome := s.Dispatch(Tokenize(line)); outcome.Exit {
			return nil
		}
	}
}

func (s *Shell) Close() error {
	if s.readline != nil {
		return s.readline.Close()
	}
	return nil
}
