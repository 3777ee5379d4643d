package shell

import "errors"

const pipeToken = "|"

// ErrEmptyStage reports a pipeline with a leading, trailing or doubled
// separator.
var ErrEmptyStage = errors.New("empty pipeline stage")

// HasPipe reports whether the token list contains a pipeline separator.
func HasPipe(tokens []string) bool {
	for _, tok := range tokens {
		if tok == pipeToken {
			return true
		}
	}
	return false
}

// SplitPipeline partitions a token list at each "|" into per-stage argument
// lists. The separator itself is discarded and every stage must be
// non-empty. The returned lists never alias the input.
func SplitPipeline(tokens []string) ([][]string, error) {
	var stages [][]string
	var stage []string

	for _, tok := range tokens {
		if tok != pipeToken {
			stage = append(stage, tok)
			continue
		}
		if len(stage) == 0 {
			return nil, ErrEmptyStage
		}
		stages = append(stages, stage)
		stage = nil
	}

	if len(stage) == 0 {
		return nil, ErrEmptyStage
	}
	return append(stages, stage), nil
}
