package wordle

import "errors"

var (
	// ErrMalformedWord is returned for a word whose length is not WordLength.
	ErrMalformedWord = errors.New("malformed word")
	// ErrInvalidFeedback is returned when a feedback answer can not be parsed.
	// A Session never sees it, feedback sources re-ask until they get a valid answer.
	ErrInvalidFeedback = errors.New("invalid feedback")
	// ErrNoMatchingBucket means the feedback received is impossible for the guess played.
	ErrNoMatchingBucket = errors.New("no matching candidates")
	// ErrExhausted means no candidate survived filtering, or no guess can tell them apart.
	ErrExhausted = errors.New("candidates exhausted")
	// ErrRoundLimit means the session played MaxRounds guesses without finding the secret.
	ErrRoundLimit = errors.New("round limit reached")

	ErrEmptyGuessBank = errors.New("empty guess bank")
	ErrEmptyBank      = errors.New("empty word bank")
)
