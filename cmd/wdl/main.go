package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3" // imports as package "cli"

	"github.com/powellquiring/minimax-wordle/prompt"
	"github.com/powellquiring/minimax-wordle/tree"
	"github.com/powellquiring/minimax-wordle/wordbank"
	"github.com/powellquiring/minimax-wordle/wordle"
)

const (
	exitError      = 1
	exitMalformed  = 2
	exitNoSolution = 3
)

// exitFor maps the error of a command to its exit status
func exitFor(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, wordle.ErrMalformedWord), errors.Is(err, wordle.ErrEmptyBank):
		return cli.Exit(err.Error(), exitMalformed)
	case errors.Is(err, wordle.ErrNoMatchingBucket), errors.Is(err, wordle.ErrExhausted), errors.Is(err, wordle.ErrRoundLimit):
		return cli.Exit("no solution found: "+err.Error(), exitNoSolution)
	}
	return cli.Exit(err.Error(), exitError)
}

// playWordle asks for the feedback of each guess on the terminal, or computes it for a known secret
func playWordle(ctx context.Context, globalConfig GlobalConfiguration, secret string) error {
	var result wordle.Result
	var err error
	if secret != "" {
		result, err = wordle.Simulate(ctx, globalConfig.guesses.Words(), globalConfig.solutions, strings.ToLower(secret), wordle.SimulateOptions{
			Opening:   globalConfig.opening,
			Selector:  globalConfig.selector(nil),
			MaxRounds: globalConfig.maxRounds,
			Logger:    globalConfig.logger,
		})
		for _, step := range result.Steps {
			fmt.Println(globalConfig.console.Render(step.Guess, step.Feedback))
		}
	} else {
		session := &wordle.Session{
			Guesses:    globalConfig.guesses.Words(),
			Candidates: globalConfig.solutions.Words(),
			Opening:    globalConfig.opening,
			Selector:   globalConfig.selector(nil),
			Source:     globalConfig.console,
			MaxRounds:  globalConfig.maxRounds,
			Logger:     globalConfig.logger,
		}
		result, err = session.Run(ctx)
	}
	prompt.Report(os.Stdout, result, err)
	if result.State == wordle.SolvedState {
		return nil
	}
	return exitFor(err)
}

func simulate(ctx context.Context, globalConfig GlobalConfiguration, secrets []string, resultsPath string) error {
	if len(secrets) == 0 {
		secrets = globalConfig.solutions.Strings()
	} else {
		lowered := make([]string, 0, len(secrets))
		for _, secret := range secrets {
			lowered = append(lowered, strings.ToLower(secret))
		}
		secrets = lowered
	}

	var results io.Writer = io.Discard
	if resultsPath != "" {
		f, err := os.Create(resultsPath)
		if err != nil {
			return exitFor(err)
		}
		defer f.Close()
		results = f
	}

	type Game struct {
		Solution string
		Guesses  []string
	}
	sortedGames := make(map[int][]Game)
	failed := 0
	bar := globalConfig.bar(len(secrets), "simulating")
	for count, secret := range secrets {
		result, err := wordle.Simulate(ctx, globalConfig.guesses.Words(), globalConfig.solutions, secret, wordle.SimulateOptions{
			Opening:   globalConfig.opening,
			Selector:  globalConfig.selector(nil),
			MaxRounds: globalConfig.maxRounds,
			Logger:    globalConfig.logger,
		})
		_ = bar.Add(1)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			failed++
			globalConfig.logger.Error().Err(err).Str("secret", secret).Msg("simulation failed")
			continue
		}
		guesses := wordle.WordsToStrings(result.Path())
		if !globalConfig.progress {
			fmt.Printf("%d/%d %s: %s\n", count+1, len(secrets), secret, strings.Join(guesses, " "))
		}
		fmt.Fprintln(results, secret, result.Guesses)
		sortedGames[result.Guesses] = append(sortedGames[result.Guesses], Game{secret, guesses})
	}
	fmt.Println("---------------------")

	// create slice of number of guesses
	keys := make([]int, 0, len(sortedGames))
	for k := range sortedGames {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	total := 0
	for _, numGuesses := range keys {
		games := sortedGames[numGuesses]
		total += numGuesses * len(games)
		fmt.Println(numGuesses, len(games), "---------------------")
		if numGuesses == keys[len(keys)-1] {
			// the hardest words
			for _, game := range games {
				fmt.Printf("%s: %s\n", game.Solution, strings.Join(game.Guesses, " "))
			}
		}
	}
	if solved := len(secrets) - failed; solved > 0 {
		fmt.Printf("average %.4f guesses over %d games\n", float64(total)/float64(solved), solved)
	}
	if failed > 0 {
		return cli.Exit(fmt.Sprintf("no solution found for %d of %d secrets", failed, len(secrets)), exitNoSolution)
	}
	return nil
}

// first computes the best opening guess, the answer never changes for a given pair of word banks
func first(ctx context.Context, globalConfig GlobalConfiguration, top int) error {
	guesses := globalConfig.guesses.Words()
	candidates := globalConfig.solutions.Words()
	fmt.Fprintf(os.Stderr, "Computing best starting word from %d guesses and %d solutions...\n", len(guesses), len(candidates))
	bar := globalConfig.bar(len(guesses), "scoring")
	if top <= 1 {
		choice, err := globalConfig.selector(bar).Best(ctx, guesses, candidates)
		if err != nil {
			return exitFor(err)
		}
		fmt.Println(choice.Guess, choice.Cost)
		return nil
	}
	ranked, err := globalConfig.selector(bar).Rank(ctx, guesses, candidates)
	if err != nil {
		return exitFor(err)
	}
	for _, choice := range ranked[:min(top, len(ranked))] {
		fmt.Println(choice.Guess, choice.Cost)
	}
	return nil
}

func buildTree(ctx context.Context, globalConfig GlobalConfiguration, outPath string) error {
	if globalConfig.opening == nil {
		return cli.Exit("the decision tree needs an opening guess, see the first command", exitMalformed)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return exitFor(err)
	}
	defer f.Close()
	sink := tree.NewWriterSink(f)
	builder := &tree.Builder{
		Guesses:  globalConfig.guesses.Words(),
		Selector: globalConfig.selector(nil),
		Sink:     sink,
		Progress: globalConfig.bar(globalConfig.solutions.Len(), "tree"),
		Logger:   globalConfig.logger,
	}
	stats, err := builder.Build(ctx, *globalConfig.opening, globalConfig.solutions.Words())
	if flushErr := sink.Flush(); err == nil {
		err = flushErr
	}
	if err != nil {
		return exitFor(err)
	}
	keys := make([]int, 0, len(stats.Histogram))
	for k := range stats.Histogram {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, guesses := range keys {
		fmt.Println(guesses, stats.Histogram[guesses])
	}
	fmt.Printf("%d secrets written to %s, average %.4f guesses, worst %d\n", stats.Leaves, outPath, stats.Average(), stats.MaxDepth)
	return nil
}

func cpuProfile() func() {
	f, err := os.Create("cpu.prof")
	if err != nil {
		panic(err)
	}
	pprof.StartCPUProfile(f)
	return pprof.StopCPUProfile
}

type GlobalConfiguration struct {
	guesses   *wordle.Bank
	solutions *wordle.Bank
	opening   *wordle.Word
	policy    wordle.Policy
	workers   int
	maxRounds int
	progress  bool
	console   *prompt.Console
	logger    zerolog.Logger
}

func (g GlobalConfiguration) selector(bar *progressbar.ProgressBar) *wordle.Selector {
	return &wordle.Selector{Policy: g.policy, Workers: g.workers, Progress: bar, Logger: g.logger}
}

func (g GlobalConfiguration) bar(total int, description string) *progressbar.ProgressBar {
	if g.progress {
		return progressbar.Default(int64(total), description)
	}
	return progressbar.DefaultSilent(int64(total), description)
}

type flagValues struct {
	queries   string
	solutions string
	guess     string
	policy    string
	workers   int
	count     int
	maxRounds int
	progress  bool
	profile   bool
	logLevel  string
	noColor   bool
}

func newLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), err
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()
	log.Logger = logger
	return logger, nil
}

func globalConfiguration(flags flagValues) (GlobalConfiguration, error) {
	logger, err := newLogger(flags.logLevel)
	if err != nil {
		return GlobalConfiguration{}, cli.Exit(err.Error(), exitMalformed)
	}
	policy, err := wordle.ParsePolicy(flags.policy)
	if err != nil {
		return GlobalConfiguration{}, cli.Exit(err.Error(), exitMalformed)
	}
	guesses, err := wordbank.LoadBank(flags.queries, wordbank.Options{Logger: logger})
	if err != nil {
		return GlobalConfiguration{}, exitFor(err)
	}
	solutions, err := wordbank.LoadBank(flags.solutions, wordbank.Options{Sort: true, Count: flags.count, Logger: logger})
	if err != nil {
		return GlobalConfiguration{}, exitFor(err)
	}
	var opening *wordle.Word
	if flags.guess != "" {
		word, err := wordle.ParseWord(strings.ToLower(flags.guess))
		if err != nil {
			return GlobalConfiguration{}, exitFor(err)
		}
		opening = &word
	}
	logger.Info().Int("guesses", guesses.Len()).Int("solutions", solutions.Len()).Str("policy", policy.String()).Msg("word banks loaded")
	return GlobalConfiguration{
		guesses:   guesses,
		solutions: solutions,
		opening:   opening,
		policy:    policy,
		workers:   flags.workers,
		maxRounds: flags.maxRounds,
		progress:  flags.progress,
		console:   prompt.NewConsole(os.Stdin, os.Stdout, !flags.noColor),
		logger:    logger,
	}, nil
}

func main() {
	_ = godotenv.Load()

	flags := flagValues{}
	// command specific flags
	secret := ""
	resultsPath := ""
	outPath := ""
	top := 1

	// withConfig loads the word banks and starts profiling before running a command
	withConfig := func(action func(context.Context, *cli.Command, GlobalConfiguration) error) cli.ActionFunc {
		return func(ctx context.Context, cmd *cli.Command) error {
			if flags.profile {
				def := cpuProfile()
				defer def()
			}
			globalConfig, err := globalConfiguration(flags)
			if err != nil {
				return err
			}
			return action(ctx, cmd, globalConfig)
		}
	}

	cmd := &cli.Command{
		Name:  "wdl",
		Usage: "wordle solver, picks the guess that leaves the fewest candidates in the worst case",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "queries",
				Value:       "queries.txt",
				Usage:       "path to the allowed guess word bank",
				Sources:     cli.EnvVars("WORDLE_QUERIES"),
				Destination: &flags.queries,
			},
			&cli.StringFlag{
				Name:        "solutions",
				Value:       "solutions.txt",
				Usage:       "path to the possible solution word bank",
				Sources:     cli.EnvVars("WORDLE_SOLUTIONS"),
				Destination: &flags.solutions,
			},
			&cli.StringFlag{
				Name:        "guess",
				Value:       "aesir",
				Aliases:     []string{"g"},
				Usage:       "first guess, the best first guess for the default word banks.  Empty computes it in the first round",
				Sources:     cli.EnvVars("WORDLE_GUESS"),
				Destination: &flags.guess,
			},
			&cli.StringFlag{
				Name:        "policy",
				Value:       "minimax",
				Usage:       "guess cost, minimax (largest bucket) or average (sum of squared buckets)",
				Sources:     cli.EnvVars("WORDLE_POLICY"),
				Destination: &flags.policy,
			},
			&cli.IntFlag{
				Name:        "workers",
				Value:       1,
				Aliases:     []string{"w"},
				Usage:       "number of goroutines scoring guesses",
				Sources:     cli.EnvVars("WORDLE_WORKERS"),
				Destination: &flags.workers,
			},
			&cli.IntFlag{
				Name:        "count",
				Value:       0,
				Aliases:     []string{"c"},
				Usage:       "number of solution words, 0 is all words",
				Destination: &flags.count,
			},
			&cli.IntFlag{
				Name:        "max-rounds",
				Value:       0,
				Usage:       "give up after this many guesses, 0 is no limit",
				Destination: &flags.maxRounds,
			},
			&cli.BoolFlag{
				Name:        "progress",
				Value:       false,
				Aliases:     []string{"p"},
				Usage:       "show progress bar",
				Destination: &flags.progress,
			},
			&cli.BoolFlag{
				Name:        "profile",
				Value:       false,
				Usage:       "store profile data to analyze",
				Destination: &flags.profile,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Value:       "warn",
				Usage:       "debug, info, warn or error",
				Sources:     cli.EnvVars("LOG_LEVEL"),
				Destination: &flags.logLevel,
			},
			&cli.BoolFlag{
				Name:        "no-color",
				Value:       false,
				Usage:       "show feedback as emoji instead of colored tiles",
				Destination: &flags.noColor,
			},
		},
		Commands: []*cli.Command{
			{
				Name: "play",
				Usage: `play a game of wordle, entering the colors shown for each guess:
				gray yellow green green gray
				`,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "secret",
						Aliases:     []string{"s"},
						Usage:       "simulate the game on a known secret instead of asking for colors",
						Destination: &secret,
					},
				},
				Action: withConfig(func(ctx context.Context, cmd *cli.Command, globalConfig GlobalConfiguration) error {
					return playWordle(ctx, globalConfig, secret)
				}),
			},
			{
				Name: "sim",
				Usage: `sim [solution] ...
				Simulate one game for each solution.  If no solutions are provided, simulate all
				the solutions.  All words can be cut back by using the -count global flag for testing.
				`,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "results",
						Usage:       "write one line per game, the solution and the number of guesses",
						Destination: &resultsPath,
					},
				},
				Action: withConfig(func(ctx context.Context, cmd *cli.Command, globalConfig GlobalConfiguration) error {
					return simulate(ctx, globalConfig, cmd.Args().Slice(), resultsPath)
				}),
			},
			{
				Name: "first",
				Usage: `first
				Compute the best first guess
				`,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:        "top",
						Value:       1,
						Usage:       "print this many of the best first guesses with their cost",
						Destination: &top,
					},
				},
				Action: withConfig(func(ctx context.Context, cmd *cli.Command, globalConfig GlobalConfiguration) error {
					return first(ctx, globalConfig, top)
				}),
			},
			{
				Name: "tree",
				Usage: `tree
				Write the guesses and colors leading to every solution, one line per solution
				`,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "out",
						Aliases:     []string{"o"},
						Value:       "decision_tree.txt",
						Usage:       "decision tree file",
						Destination: &outPath,
					},
				},
				Action: withConfig(func(ctx context.Context, cmd *cli.Command, globalConfig GlobalConfiguration) error {
					return buildTree(ctx, globalConfig, outPath)
				}),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("wdl")
	}
}
