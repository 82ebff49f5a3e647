package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/powellquiring/minimax-wordle/wordle"
)

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var coder cli.ExitCoder
	require.True(t, errors.As(err, &coder), "%v", err)
	return coder.ExitCode()
}

func TestExitFor(t *testing.T) {
	assert.NoError(t, exitFor(nil))
	for err, code := range map[error]int{
		fmt.Errorf("line 3: %w", wordle.ErrMalformedWord): exitMalformed,
		wordle.ErrEmptyBank:        exitMalformed,
		wordle.ErrNoMatchingBucket: exitNoSolution,
		wordle.ErrExhausted:        exitNoSolution,
		wordle.ErrRoundLimit:       exitNoSolution,
		context.Canceled:           exitError,
	} {
		assert.Equal(t, code, exitCode(t, exitFor(err)), err.Error())
	}
}

func testFlags(t *testing.T) flagValues {
	dir := t.TempDir()
	queries := filepath.Join(dir, "queries.txt")
	solutions := filepath.Join(dir, "solutions.txt")
	require.NoError(t, os.WriteFile(queries, []byte("cigar\nrebut\nsissy\nhumph\nawake\n"), 0o644))
	require.NoError(t, os.WriteFile(solutions, []byte("sissy\ncigar\nrebut\n"), 0o644))
	return flagValues{
		queries:   queries,
		solutions: solutions,
		guess:     "CIGAR",
		policy:    "minimax",
		workers:   2,
		logLevel:  "error",
		noColor:   true,
	}
}

func TestGlobalConfiguration(t *testing.T) {
	globalConfig, err := globalConfiguration(testFlags(t))
	require.NoError(t, err)
	assert.Equal(t, 5, globalConfig.guesses.Len())
	assert.Equal(t, []string{"cigar", "rebut", "sissy"}, globalConfig.solutions.Strings())
	require.NotNil(t, globalConfig.opening)
	assert.Equal(t, "cigar", globalConfig.opening.String())
	assert.Equal(t, wordle.Minimax, globalConfig.policy)
	assert.Equal(t, 2, globalConfig.selector(nil).Workers)
}

func TestGlobalConfigurationRejects(t *testing.T) {
	for name, change := range map[string]func(*flagValues){
		"opening":   func(f *flagValues) { f.guess = "abc" },
		"policy":    func(f *flagValues) { f.policy = "entropy" },
		"log level": func(f *flagValues) { f.logLevel = "loud" },
	} {
		flags := testFlags(t)
		change(&flags)
		_, err := globalConfiguration(flags)
		assert.Equal(t, exitMalformed, exitCode(t, err), name)
	}

	flags := testFlags(t)
	flags.solutions = filepath.Join(t.TempDir(), "missing.txt")
	_, err := globalConfiguration(flags)
	assert.Equal(t, exitError, exitCode(t, err))
}

func TestSimulateResultsFile(t *testing.T) {
	globalConfig, err := globalConfiguration(testFlags(t))
	require.NoError(t, err)
	results := filepath.Join(t.TempDir(), "results.txt")
	require.NoError(t, simulate(context.Background(), globalConfig, nil, results))
	data, err := os.ReadFile(results)
	require.NoError(t, err)
	assert.Contains(t, string(data), "cigar 1\n")
	assert.Contains(t, string(data), "sissy ")
}

func TestSimulateUppercaseSecrets(t *testing.T) {
	globalConfig, err := globalConfiguration(testFlags(t))
	require.NoError(t, err)
	results := filepath.Join(t.TempDir(), "results.txt")
	require.NoError(t, simulate(context.Background(), globalConfig, []string{"CIGAR", "Rebut"}, results))
	data, err := os.ReadFile(results)
	require.NoError(t, err)
	assert.Contains(t, string(data), "cigar 1\n")
	assert.Contains(t, string(data), "rebut ")
}

func TestBuildTreeWritesEverySecret(t *testing.T) {
	globalConfig, err := globalConfiguration(testFlags(t))
	require.NoError(t, err)
	out := filepath.Join(t.TempDir(), "tree.txt")
	require.NoError(t, buildTree(context.Background(), globalConfig, out))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	for _, secret := range []string{"cigar", "rebut", "sissy"} {
		assert.Contains(t, string(data), secret)
	}
}
