// Package prompt asks a person for the feedback the game showed for each guess.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/powellquiring/minimax-wordle/wordle"
)

var tileStyles = map[wordle.Color]lipgloss.Style{
	wordle.Absent:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8")).Padding(0, 1),
	wordle.Present: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("3")).Padding(0, 1),
	wordle.Correct: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("2")).Padding(0, 1),
}

// Console is a wordle.FeedbackSource reading from a terminal.  Invalid answers are reported and
// asked for again, they never use up a guess.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	color bool
}

func NewConsole(in io.Reader, out io.Writer, color bool) *Console {
	return &Console{in: bufio.NewReader(in), out: out, color: color}
}

func (c *Console) Feedback(ctx context.Context, guess wordle.Word, round int) (wordle.Feedback, error) {
	fmt.Fprintf(c.out, "Best guess %d: %s\n", round, strings.ToUpper(guess.String()))
	for {
		if err := ctx.Err(); err != nil {
			return wordle.Feedback{}, err
		}
		fmt.Fprintln(c.out, "Enter colors with spaces in between: ")
		line, readErr := c.in.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return wordle.Feedback{}, readErr
		}
		if strings.TrimSpace(line) != "" || readErr == nil {
			feedback, err := wordle.ParseFeedback(line)
			if err == nil {
				fmt.Fprintln(c.out, c.Render(guess, feedback))
				return feedback, nil
			}
			fmt.Fprintln(c.out, err)
		}
		if readErr != nil {
			return wordle.Feedback{}, io.ErrUnexpectedEOF
		}
	}
}

// Render shows the guess with the colors of the feedback, as colored tiles or as emoji squares.
func (c *Console) Render(guess wordle.Word, feedback wordle.Feedback) string {
	if !c.color {
		return feedback.Emoji() + " " + guess.String()
	}
	tiles := make([]string, 0, wordle.WordLength)
	for i, color := range feedback {
		tiles = append(tiles, tileStyles[color].Render(strings.ToUpper(guess.String()[i:i+1])))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

// Report writes the outcome of a session.
func Report(w io.Writer, result wordle.Result, err error) {
	if result.State == wordle.SolvedState {
		plural := "es"
		if result.Guesses == 1 {
			plural = ""
		}
		fmt.Fprintf(w, "FOUND: %s in %d guess%s\n", result.Word, result.Guesses, plural)
		return
	}
	if err != nil {
		fmt.Fprintf(w, "Couldn't find a word! %v\n", err)
		return
	}
	fmt.Fprintln(w, "Couldn't find a word!")
}
