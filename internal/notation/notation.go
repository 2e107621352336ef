// Package notation formats and parses FMJD-style move text: a quiet move
// is "{from}-{to}", a capture chain is "{from}x{sq1}x{sq2}...x{to}", all
// squares written as 1..50 decimal.
package notation

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/frankkopp/DraughtsGo/internal/types"
)

// ParseError is returned by ParseMove when text is not well-formed move
// notation.
type ParseError struct {
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("notation: cannot parse %q: %s", e.Text, e.Reason)
}

// FormatMove renders move in FMJD notation. It does not know which
// squares were captured along a chain beyond what move.Steps records.
func FormatMove(move Move) string {
	if !move.IsCapture() {
		return move.From().String() + "-" + move.To().String()
	}
	var b strings.Builder
	b.WriteString(move.From().String())
	for _, step := range move.Steps {
		b.WriteString("x")
		b.WriteString(step.To.String())
	}
	return b.String()
}

// Skeleton is a parsed move shape before it has been matched against a
// legal-move list: the squares are known but, for a capture, which enemy
// piece was jumped on each leg is not encoded in the text and must be
// resolved by the caller against the board.
type Skeleton struct {
	IsCapture bool
	From      Square
	To        Square
	Waypoints []Square // intermediate landing squares for a multi-jump capture, From and To excluded
}

// ParseMove parses FMJD move text into a Skeleton. It validates square
// range and notation shape but does not validate the move against any
// board.
func ParseMove(text string) (Skeleton, error) {
	if strings.Contains(text, "x") {
		return parseCapture(text)
	}
	if strings.Contains(text, "-") {
		return parseQuiet(text)
	}
	return Skeleton{}, &ParseError{Text: text, Reason: "missing '-' or 'x' separator"}
}

func parseQuiet(text string) (Skeleton, error) {
	parts := strings.Split(text, "-")
	if len(parts) != 2 {
		return Skeleton{}, &ParseError{Text: text, Reason: "quiet move must have exactly one '-'"}
	}
	from, err := parseSquare(parts[0])
	if err != nil {
		return Skeleton{}, &ParseError{Text: text, Reason: err.Error()}
	}
	to, err := parseSquare(parts[1])
	if err != nil {
		return Skeleton{}, &ParseError{Text: text, Reason: err.Error()}
	}
	return Skeleton{IsCapture: false, From: from, To: to}, nil
}

func parseCapture(text string) (Skeleton, error) {
	parts := strings.Split(text, "x")
	if len(parts) < 2 {
		return Skeleton{}, &ParseError{Text: text, Reason: "capture move must have at least one 'x'"}
	}
	squares := make([]Square, len(parts))
	for i, p := range parts {
		sq, err := parseSquare(p)
		if err != nil {
			return Skeleton{}, &ParseError{Text: text, Reason: err.Error()}
		}
		squares[i] = sq
	}
	return Skeleton{
		IsCapture: true,
		From:      squares[0],
		To:        squares[len(squares)-1],
		Waypoints: squares[1 : len(squares)-1],
	}, nil
}

func parseSquare(text string) (Square, error) {
	n, err := strconv.Atoi(text)
	if err != nil {
		return SqNone, fmt.Errorf("%q is not a square number", text)
	}
	sq := Square(n)
	if !sq.IsValid() {
		return SqNone, fmt.Errorf("%d is not a valid square (1..50)", n)
	}
	return sq, nil
}
