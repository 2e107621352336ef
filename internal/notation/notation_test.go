package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/DraughtsGo/internal/types"
)

func TestFormatMoveQuiet(t *testing.T) {
	m := NewQuiet(32, 28)
	assert.Equal(t, "32-28", FormatMove(m))
}

func TestFormatMoveSingleCapture(t *testing.T) {
	m := NewCapture([]CaptureStep{{From: 22, To: 31, Captured: 27}})
	assert.Equal(t, "22x31", FormatMove(m))
}

func TestFormatMoveMultiCapture(t *testing.T) {
	m := NewCapture([]CaptureStep{
		{From: 18, To: 27, Captured: 23},
		{From: 27, To: 38, Captured: 32},
	})
	assert.Equal(t, "18x27x38", FormatMove(m))
}

func TestParseMoveQuiet(t *testing.T) {
	s, err := ParseMove("32-28")
	assert.NoError(t, err)
	assert.False(t, s.IsCapture)
	assert.Equal(t, Square(32), s.From)
	assert.Equal(t, Square(28), s.To)
	assert.Empty(t, s.Waypoints)
}

func TestParseMoveSingleCapture(t *testing.T) {
	s, err := ParseMove("22x31")
	assert.NoError(t, err)
	assert.True(t, s.IsCapture)
	assert.Equal(t, Square(22), s.From)
	assert.Equal(t, Square(31), s.To)
	assert.Empty(t, s.Waypoints)
}

func TestParseMoveMultiCapture(t *testing.T) {
	s, err := ParseMove("18x27x38")
	assert.NoError(t, err)
	assert.True(t, s.IsCapture)
	assert.Equal(t, Square(18), s.From)
	assert.Equal(t, Square(38), s.To)
	assert.Equal(t, []Square{27}, s.Waypoints)
}

func TestParseMoveRejectsOutOfRangeSquare(t *testing.T) {
	_, err := ParseMove("0-28")
	assert.Error(t, err)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)

	_, err = ParseMove("32-51")
	assert.Error(t, err)
}

func TestParseMoveRejectsGarbage(t *testing.T) {
	_, err := ParseMove("not a move")
	assert.Error(t, err)

	_, err = ParseMove("32--28")
	assert.Error(t, err)

	_, err = ParseMove("")
	assert.Error(t, err)
}

func TestParseMoveThenFormatRoundTrips(t *testing.T) {
	for _, text := range []string{"32-28", "22x31", "18x27x38"} {
		s, err := ParseMove(text)
		assert.NoError(t, err)

		var m Move
		if s.IsCapture {
			steps := make([]CaptureStep, 0, len(s.Waypoints)+1)
			from := s.From
			for _, wp := range s.Waypoints {
				steps = append(steps, CaptureStep{From: from, To: wp})
				from = wp
			}
			steps = append(steps, CaptureStep{From: from, To: s.To})
			m = NewCapture(steps)
		} else {
			m = NewQuiet(s.From, s.To)
		}
		assert.Equal(t, text, FormatMove(m))
	}
}
