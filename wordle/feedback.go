package wordle

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is the mark for one letter position of a guess
type Color uint8

const (
	Absent  Color = iota // gray, letter not in the secret (or all copies already accounted for)
	Present              // yellow, letter in the secret at another position
	Correct              // green
)

// Feedback is the color of each letter of a guess.  It is comparable and used directly as a map key.
type Feedback [WordLength]Color

// Solved is the feedback for a guess that is the secret
var Solved = func() Feedback {
	var f Feedback
	for i := range f {
		f[i] = Correct
	}
	return f
}()

// compact single letter names, b for the black/gray tile
const compactColors = "byg"

// labels accepted from a person typing in the colors shown by the game
var colorLabels = map[string]Color{
	"gray":   Absent,
	"yellow": Present,
	"green":  Correct,
}

func (c Color) String() string {
	switch c {
	case Absent:
		return "gray"
	case Present:
		return "yellow"
	case Correct:
		return "green"
	default:
		panic("Can not parse Color: " + strconv.Itoa(int(c)))
	}
}

func (f Feedback) IsSolved() bool {
	return f == Solved
}

// Key orders feedback as a base 3 number with the first position the most significant digit.
// It is only used for a stable enumeration order, equality is on the Feedback itself.
func (f Feedback) Key() int {
	key := 0
	for _, color := range f {
		key = key*3 + int(color)
	}
	return key
}

// String is the compact form, one of b, y, g per position: "bbgyb"
func (f Feedback) String() string {
	var sb strings.Builder
	for _, color := range f {
		sb.WriteByte(compactColors[color])
	}
	return sb.String()
}

func (f Feedback) Emoji() string {
	var sb strings.Builder
	for _, color := range f {
		switch color {
		case Absent:
			sb.WriteRune('⬛')
		case Present:
			sb.WriteRune('\U0001F7E8')
		case Correct:
			sb.WriteRune('\U0001F7E9')
		}
	}
	return sb.String()
}

// ParseCompact is the inverse of Feedback.String
func ParseCompact(colors string) (Feedback, error) {
	var f Feedback
	if len(colors) != WordLength {
		return f, fmt.Errorf("%w: expected %d colors, got %q", ErrInvalidFeedback, WordLength, colors)
	}
	for i := range len(colors) {
		c := strings.IndexByte(compactColors, colors[i])
		if c < 0 {
			return f, fmt.Errorf("%w: unexpected color %q in %q", ErrInvalidFeedback, colors[i], colors)
		}
		f[i] = Color(c)
	}
	return f, nil
}

// ParseFeedback reads space separated color labels, gray, yellow or green, in any case.
func ParseFeedback(line string) (Feedback, error) {
	var f Feedback
	fields := strings.Fields(line)
	if len(fields) != WordLength {
		return f, fmt.Errorf("%w: expected %d colors, got %d", ErrInvalidFeedback, WordLength, len(fields))
	}
	for i, field := range fields {
		color, ok := colorLabels[strings.ToLower(field)]
		if !ok {
			return f, fmt.Errorf("%w: unexpected color %q, colors can be gray, yellow, or green", ErrInvalidFeedback, strings.ToLower(field))
		}
		f[i] = color
	}
	return f, nil
}
