package wordle

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

// Policy scores a guess from the partition it makes of the candidates, lower is better.
type Policy int

const (
	// Minimax is the size of the largest bucket, the worst case.
	Minimax Policy = iota
	// Average is the sum of the squared bucket sizes, the expected number of candidates left
	// times the number of candidates.
	Average
)

func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "", "minimax", "worst":
		return Minimax, nil
	case "average", "avg":
		return Average, nil
	}
	return Minimax, fmt.Errorf("unknown policy %q, expected minimax or average", s)
}

func (p Policy) String() string {
	switch p {
	case Minimax:
		return "minimax"
	case Average:
		return "average"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

func (p Policy) Cost(partition *Partition) int {
	if p == Average {
		return partition.SumSquares()
	}
	return partition.Largest()
}

// Choice is a scored guess. Index is the position of the guess in the guess bank.
type Choice struct {
	Guess Word
	Cost  int
	Index int
}

// Selector picks the guess with the lowest cost.  On a tie the guess earliest in the guess bank
// wins, with any number of workers.
type Selector struct {
	Policy Policy
	// Workers > 1 scores slices of the guess bank concurrently
	Workers int
	// Progress, when not nil, is advanced once per guess scored
	Progress *progressbar.ProgressBar
	Logger   zerolog.Logger
}

// SelectBestGuess is the minimax choice computed on the calling goroutine.
func SelectBestGuess(guesses, candidates []Word) (Word, error) {
	choice, err := (&Selector{Logger: zerolog.Nop()}).Best(context.Background(), guesses, candidates)
	return choice.Guess, err
}

// Best scores every guess against the candidates.  Cost is len(guesses) × len(candidates)
// feedback computations.
func (s *Selector) Best(ctx context.Context, guesses, candidates []Word) (Choice, error) {
	if len(guesses) == 0 {
		return Choice{}, ErrEmptyGuessBank
	}
	workers := min(max(s.Workers, 1), len(guesses))
	var best Choice
	if workers == 1 {
		var err error
		if best, err = s.bestInRange(ctx, guesses, candidates, 0); err != nil {
			return Choice{}, err
		}
	} else {
		// contiguous slices, partials stay in guess bank order so the merge keeps the tie break
		chunk := (len(guesses) + workers - 1) / workers
		partials := make([]Choice, 0, workers)
		for start := 0; start < len(guesses); start += chunk {
			partials = append(partials, Choice{Index: start})
		}
		g, gctx := errgroup.WithContext(ctx)
		for w := range partials {
			start := partials[w].Index
			end := min(start+chunk, len(guesses))
			g.Go(func() error {
				choice, err := s.bestInRange(gctx, guesses[start:end], candidates, start)
				partials[w] = choice
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return Choice{}, err
		}
		i, _ := firstMin(partials, func(c Choice) int { return c.Cost })
		best = partials[i]
	}
	s.Logger.Debug().
		Str("guess", best.Guess.String()).
		Int("cost", best.Cost).
		Str("policy", s.Policy.String()).
		Int("guesses", len(guesses)).
		Int("candidates", len(candidates)).
		Msg("best guess")
	return best, nil
}

// bestInRange is the sequential search, offset is the bank index of guesses[0].
func (s *Selector) bestInRange(ctx context.Context, guesses, candidates []Word, offset int) (Choice, error) {
	best := Choice{Index: -1}
	for i, guess := range guesses {
		if err := ctx.Err(); err != nil {
			return Choice{}, err
		}
		cost := s.Policy.Cost(NewPartition(guess, candidates))
		if best.Index < 0 || cost < best.Cost {
			best = Choice{Guess: guess, Cost: cost, Index: offset + i}
		}
		if s.Progress != nil {
			_ = s.Progress.Add(1)
		}
	}
	return best, nil
}

// Rank scores every guess and sorts them best first, ties in guess bank order.  Workers > 1
// scores contiguous slices concurrently, as Best does.
func (s *Selector) Rank(ctx context.Context, guesses, candidates []Word) ([]Choice, error) {
	ret := make([]Choice, len(guesses))
	workers := min(max(s.Workers, 1), len(guesses))
	if workers <= 1 {
		if err := s.scoreRange(ctx, guesses, candidates, ret, 0); err != nil {
			return nil, err
		}
	} else {
		chunk := (len(guesses) + workers - 1) / workers
		g, gctx := errgroup.WithContext(ctx)
		for start := 0; start < len(guesses); start += chunk {
			end := min(start+chunk, len(guesses))
			g.Go(func() error {
				return s.scoreRange(gctx, guesses[start:end], candidates, ret[start:end], start)
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}
	sort.SliceStable(ret, func(i, j int) bool {
		return ret[i].Cost < ret[j].Cost
	})
	return ret, nil
}

// scoreRange writes the choice for guesses[i] to out[i], offset is the bank index of guesses[0].
func (s *Selector) scoreRange(ctx context.Context, guesses, candidates []Word, out []Choice, offset int) error {
	for i, guess := range guesses {
		if err := ctx.Err(); err != nil {
			return err
		}
		out[i] = Choice{Guess: guess, Cost: s.Policy.Cost(NewPartition(guess, candidates)), Index: offset + i}
		if s.Progress != nil {
			_ = s.Progress.Add(1)
		}
	}
	return nil
}
