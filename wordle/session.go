package wordle

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// State of a Session
type State int

const (
	Start State = iota
	Guessing
	AwaitingFeedback
	Filtering
	SolvedState
	Exhausted
)

func (s State) String() string {
	switch s {
	case Start:
		return "start"
	case Guessing:
		return "guessing"
	case AwaitingFeedback:
		return "awaiting-feedback"
	case Filtering:
		return "filtering"
	case SolvedState:
		return "solved"
	case Exhausted:
		return "exhausted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Terminal is true for the states Run returns in.
func (s State) Terminal() bool {
	return s == SolvedState || s == Exhausted
}

// FeedbackSource supplies the feedback for each guess played.  It blocks until an answer is
// available and only returns valid feedback, or an error that ends the session.
type FeedbackSource interface {
	Feedback(ctx context.Context, guess Word, round int) (Feedback, error)
}

// SecretSource computes the feedback against a known secret, for simulation.
type SecretSource struct {
	Secret Word
}

func (s SecretSource) Feedback(_ context.Context, guess Word, _ int) (Feedback, error) {
	return ComputeFeedback(guess, s.Secret), nil
}

// Step is one guess played and the feedback it got
type Step struct {
	Guess      Word
	Feedback   Feedback
	Candidates int // candidates before the guess
}

// Result of a session.  Word and Guesses are only meaningful in SolvedState.
type Result struct {
	State   State
	Word    Word
	Guesses int
	Steps   []Step
}

// Session plays one game: guess, wait for feedback, keep the candidates matching the feedback,
// until the secret is known.
type Session struct {
	Guesses    []Word
	Candidates []Word
	// Opening is played first instead of asking the Selector.  For a fixed word bank the best
	// opening never changes and costs a full search to compute.
	Opening  *Word
	Selector *Selector
	Source   FeedbackSource
	// MaxRounds > 0 stops the session after that many guesses
	MaxRounds int
	Logger    zerolog.Logger

	state      State
	candidates []Word
	guessCount int
	guess      Word
	feedback   Feedback
	steps      []Step
}

func (s *Session) State() State {
	return s.state
}

// Run drives the state machine to a terminal state.  An Exhausted result is returned along with
// ErrNoMatchingBucket, ErrExhausted or ErrRoundLimit.  Errors from the Selector or the Source
// are returned as is.
func (s *Session) Run(ctx context.Context) (Result, error) {
	selector := s.Selector
	if selector == nil {
		selector = &Selector{Logger: s.Logger}
	}
	s.state = Start
	for {
		switch s.state {
		case Start:
			s.candidates = s.Candidates
			s.guessCount = 0
			s.steps = nil
			s.state = Guessing

		case Guessing:
			if s.MaxRounds > 0 && s.guessCount >= s.MaxRounds {
				return s.exhausted(fmt.Errorf("%w: %d guesses", ErrRoundLimit, s.guessCount))
			}
			if s.guessCount == 0 && s.Opening != nil {
				s.guess = *s.Opening
			} else {
				choice, err := selector.Best(ctx, s.Guesses, s.candidates)
				if err != nil {
					return s.result(), err
				}
				s.guess = choice.Guess
			}
			s.guessCount++
			s.Logger.Info().Int("round", s.guessCount).Str("guess", s.guess.String()).Int("candidates", len(s.candidates)).Msg("best guess")
			s.state = AwaitingFeedback

		case AwaitingFeedback:
			feedback, err := s.Source.Feedback(ctx, s.guess, s.guessCount)
			if err != nil {
				return s.result(), err
			}
			s.feedback = feedback
			s.steps = append(s.steps, Step{Guess: s.guess, Feedback: feedback, Candidates: len(s.candidates)})
			s.state = Filtering

		case Filtering:
			if s.feedback.IsSolved() {
				return s.solved(s.guess, s.guessCount)
			}
			bucket, ok := NewPartition(s.guess, s.candidates).Get(s.feedback)
			if !ok {
				return s.exhausted(fmt.Errorf("%w: %s for %s", ErrNoMatchingBucket, s.feedback, s.guess))
			}
			// the selector returns the same guess for the same candidates, so a selected guess
			// that keeps them all would be played forever
			opening := s.guessCount == 1 && s.Opening != nil
			if !opening && len(bucket) > 1 && len(bucket) == len(s.candidates) {
				return s.exhausted(fmt.Errorf("%w: %s does not split %d candidates", ErrExhausted, s.guess, len(bucket)))
			}
			s.candidates = bucket
			switch len(s.candidates) {
			case 0:
				return s.exhausted(ErrExhausted)
			case 1:
				return s.solved(s.candidates[0], s.guessCount+1)
			}
			s.state = Guessing

		default:
			return s.result(), fmt.Errorf("session in terminal state %s", s.state)
		}
	}
}

// Remaining is the current candidate set
func (s *Session) Remaining() []Word {
	return s.candidates
}

func (s *Session) result() Result {
	return Result{State: s.state, Guesses: s.guessCount, Steps: s.steps}
}

func (s *Session) solved(word Word, guesses int) (Result, error) {
	s.state = SolvedState
	s.Logger.Info().Str("word", word.String()).Int("guesses", guesses).Msg("found")
	return Result{State: SolvedState, Word: word, Guesses: guesses, Steps: s.steps}, nil
}

func (s *Session) exhausted(err error) (Result, error) {
	s.state = Exhausted
	s.Logger.Warn().Err(err).Int("guesses", s.guessCount).Msg("no solution found")
	return s.result(), err
}
