package wordle

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource answers with fixed feedback, one per round
type scriptedSource struct {
	answers []Feedback
	guesses []string
}

func (s *scriptedSource) Feedback(_ context.Context, guess Word, round int) (Feedback, error) {
	s.guesses = append(s.guesses, guess.String())
	if round > len(s.answers) {
		return Feedback{}, errors.New("script ended")
	}
	return s.answers[round-1], nil
}

func TestSimulateAgainstAll(t *testing.T) {
	b := testBank(t)
	opening := wordOrFail(t, b, "raise")
	for _, opts := range []SimulateOptions{
		{Opening: &opening},
		{Selector: &Selector{Workers: 3}},
	} {
		worst := 0
		for _, secret := range b.Strings() {
			result, err := Simulate(context.Background(), b.Words(), b, secret, opts)
			require.NoError(t, err, secret)
			assert.Equal(t, SolvedState, result.State)
			assert.Equal(t, secret, result.Word.String())
			path := result.Path()
			assert.Equal(t, secret, path[len(path)-1].String())
			assert.Equal(t, result.Guesses, len(path))
			worst = max(worst, result.Guesses)
		}
		assert.LessOrEqual(t, worst, 6)
	}
}

func TestSimulateOpeningIsSecret(t *testing.T) {
	b := testBank(t)
	opening := wordOrFail(t, b, "cigar")
	result, err := Simulate(context.Background(), b.Words(), b, "cigar", SimulateOptions{Opening: &opening})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Guesses)
	assert.Len(t, result.Steps, 1)
	assert.True(t, result.Steps[0].Feedback.IsSolved())
}

func TestSimulateSecretValidation(t *testing.T) {
	b := testBank(t)
	_, err := Simulate(context.Background(), b.Words(), b, "toolong", SimulateOptions{})
	assert.True(t, errors.Is(err, ErrMalformedWord))

	result, err := Simulate(context.Background(), b.Words(), b, "zzzzz", SimulateOptions{})
	assert.True(t, errors.Is(err, ErrNoMatchingBucket))
	assert.Equal(t, Exhausted, result.State)
}

func TestSessionNoMatchingBucket(t *testing.T) {
	opening := NewWord("cigar")
	source := &scriptedSource{answers: []Feedback{{Correct, Correct, Correct, Correct, Absent}}}
	session := &Session{
		Guesses:    []Word{NewWord("cigar"), NewWord("rebut")},
		Candidates: []Word{NewWord("cigar"), NewWord("rebut")},
		Opening:    &opening,
		Source:     source,
	}
	result, err := session.Run(context.Background())
	assert.True(t, errors.Is(err, ErrNoMatchingBucket))
	assert.Equal(t, Exhausted, result.State)
	assert.Equal(t, Exhausted, session.State())
	assert.Equal(t, []string{"cigar"}, source.guesses)
}

func TestSessionSingleCandidateCountsFinalGuess(t *testing.T) {
	opening := NewWord("cigar")
	rebutFeedback := ComputeFeedback(opening, NewWord("rebut"))
	session := &Session{
		Guesses:    []Word{NewWord("cigar"), NewWord("rebut")},
		Candidates: []Word{NewWord("cigar"), NewWord("rebut")},
		Opening:    &opening,
		Source:     &scriptedSource{answers: []Feedback{rebutFeedback}},
	}
	result, err := session.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SolvedState, result.State)
	assert.Equal(t, "rebut", result.Word.String())
	assert.Equal(t, 2, result.Guesses)
	assert.Equal(t, []string{"cigar", "rebut"}, WordsToStrings(result.Path()))
}

func TestSessionRoundLimit(t *testing.T) {
	opening := NewWord("xxxxx")
	candidates := []Word{NewWord("cigar"), NewWord("rebut"), NewWord("sissy")}
	session := &Session{
		Guesses:    candidates,
		Candidates: candidates,
		Opening:    &opening,
		Source:     SecretSource{Secret: NewWord("sissy")},
		MaxRounds:  1,
	}
	result, err := session.Run(context.Background())
	assert.True(t, errors.Is(err, ErrRoundLimit))
	assert.Equal(t, Exhausted, result.State)
	assert.Equal(t, 1, result.Guesses)
	assert.Len(t, session.Remaining(), 3)
}

func TestSessionUnsplittableCandidates(t *testing.T) {
	session := &Session{
		Guesses:    []Word{NewWord("xxxxx")},
		Candidates: []Word{NewWord("cigar"), NewWord("rebut")},
		Source:     SecretSource{Secret: NewWord("rebut")},
	}
	result, err := session.Run(context.Background())
	assert.True(t, errors.Is(err, ErrExhausted))
	assert.Equal(t, Exhausted, result.State)
	assert.Equal(t, 1, result.Guesses)
	assert.Len(t, result.Steps, 1)
}

func TestSessionOpeningMayNotSplit(t *testing.T) {
	opening := NewWord("xxxxx")
	candidates := []Word{NewWord("cigar"), NewWord("rebut")}
	session := &Session{
		Guesses:    candidates,
		Candidates: candidates,
		Opening:    &opening,
		Source:     SecretSource{Secret: NewWord("rebut")},
	}
	result, err := session.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SolvedState, result.State)
	assert.Equal(t, "rebut", result.Word.String())
}

func TestSessionSourceError(t *testing.T) {
	session := &Session{
		Guesses:    []Word{NewWord("cigar")},
		Candidates: []Word{NewWord("cigar"), NewWord("rebut")},
		Source:     &scriptedSource{},
	}
	result, err := session.Run(context.Background())
	assert.EqualError(t, err, "script ended")
	assert.False(t, result.State.Terminal())
}

func TestSessionEmptyGuessBank(t *testing.T) {
	session := &Session{
		Candidates: []Word{NewWord("cigar"), NewWord("rebut")},
		Source:     SecretSource{Secret: NewWord("cigar")},
	}
	_, err := session.Run(context.Background())
	assert.True(t, errors.Is(err, ErrEmptyGuessBank))
}
