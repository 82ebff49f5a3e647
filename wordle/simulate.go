package wordle

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

type SimulateOptions struct {
	Opening   *Word
	Selector  *Selector
	MaxRounds int
	Logger    zerolog.Logger
}

// Simulate plays one game against a known secret.  The secret must be one of the solutions,
// a secret outside the bank is reported as ErrNoMatchingBucket without playing.
func Simulate(ctx context.Context, guesses []Word, solutions *Bank, secretString string, opts SimulateOptions) (Result, error) {
	secret, err := ParseWord(secretString)
	if err != nil {
		return Result{State: Start}, err
	}
	if !solutions.Contains(secretString) {
		return Result{State: Exhausted}, fmt.Errorf("%w: secret %q is not a solution", ErrNoMatchingBucket, secretString)
	}
	session := &Session{
		Guesses:    guesses,
		Candidates: solutions.Words(),
		Opening:    opts.Opening,
		Selector:   opts.Selector,
		Source:     SecretSource{Secret: secret},
		MaxRounds:  opts.MaxRounds,
		Logger:     opts.Logger,
	}
	return session.Run(ctx)
}

// Path is the list of guesses of a solved game, ending with the secret.  The implied last guess
// of a game that ended with a single candidate is included.
func (r Result) Path() []Word {
	ret := make([]Word, 0, len(r.Steps)+1)
	for _, step := range r.Steps {
		ret = append(ret, step.Guess)
	}
	if r.State == SolvedState && (len(ret) == 0 || ret[len(ret)-1].String() != r.Word.String()) {
		ret = append(ret, r.Word)
	}
	return ret
}
