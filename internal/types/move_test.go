package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewQuiet(t *testing.T) {
	m := NewQuiet(16, 21)
	assert.False(t, m.IsCapture())
	assert.Equal(t, Square(16), m.From())
	assert.Equal(t, Square(21), m.To())
	assert.Equal(t, 0, m.CaptureCount())
}

func TestNewCapture(t *testing.T) {
	steps := []CaptureStep{{From: 22, To: 13, Captured: 17}}
	m := NewCapture(steps)
	assert.True(t, m.IsCapture())
	assert.Equal(t, Square(22), m.From())
	assert.Equal(t, Square(13), m.To())
	assert.Equal(t, 1, m.CaptureCount())
	assert.Equal(t, []Square{17}, m.CapturedSquares())
}

func TestMoveEquals(t *testing.T) {
	a := NewQuiet(16, 21)
	b := NewQuiet(16, 21)
	c := NewQuiet(16, 22)
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))

	capA := NewCapture([]CaptureStep{{From: 31, To: 22, Captured: 26}, {From: 22, To: 13, Captured: 17}})
	capB := NewCapture([]CaptureStep{{From: 31, To: 22, Captured: 26}, {From: 22, To: 13, Captured: 17}})
	capC := NewCapture([]CaptureStep{{From: 31, To: 22, Captured: 26}})
	assert.True(t, capA.Equals(capB))
	assert.False(t, capA.Equals(capC))
	assert.False(t, capA.Equals(a))
}

func TestMoveSignature(t *testing.T) {
	m := NewQuiet(16, 21)
	assert.Equal(t, 1621, m.Signature())
}
