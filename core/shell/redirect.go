package shell

import (
	"errors"
	"fmt"
)

const (
	redirectInToken  = "<"
	redirectOutToken = ">"
)

// ErrMalformedRedirection reports a redirection operator with no following
// file name.
var ErrMalformedRedirection = errors.New("malformed redirection")

// Redirection holds the file paths a command's standard streams should be
// rebound to. An empty path means no redirection on that side. When an
// operator is repeated, the last occurrence wins.
type Redirection struct {
	InputPath  string
	OutputPath string
}

// ExtractRedirections scans an argument list for "<" and ">" operators. The
// token following an operator is its file path; both are removed so the
// command never sees them. The returned argument list is a new slice.
func ExtractRedirections(args []string) ([]string, Redirection, error) {
	var redir Redirection
	rest := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case redirectInToken, redirectOutToken:
			if i+1 >= len(args) {
				return nil, Redirection{}, fmt.Errorf("%w: %q needs a file name", ErrMalformedRedirection, args[i])
			}
			if args[i] == redirectInToken {
				redir.InputPath = args[i+1]
			} else {
				redir.OutputPath = args[i+1]
			}
			i++
		default:
			rest = append(rest, args[i])
		}
	}

	return rest, redir, nil
}
