package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareRowCol(t *testing.T) {
	tests := []struct {
		sq  Square
		row int
		col int
	}{
		{1, 0, 1},
		{5, 0, 9},
		{6, 1, 0},
		{10, 1, 8},
		{46, 9, 0},
		{50, 9, 8},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.row, tc.sq.RowOf(), "square %d row", tc.sq)
		assert.Equal(t, tc.col, tc.sq.ColOf(), "square %d col", tc.sq)
		assert.Equal(t, tc.sq, SquareOf(tc.row, tc.col), "SquareOf(%d,%d)", tc.row, tc.col)
	}
}

func TestSquareOfLightSquareIsNone(t *testing.T) {
	assert.Equal(t, SqNone, SquareOf(0, 0))
	assert.Equal(t, SqNone, SquareOf(1, 1))
}

func TestAllSquaresRoundTrip(t *testing.T) {
	count := 0
	for row := 0; row < 10; row++ {
		for col := 0; col < 10; col++ {
			sq := SquareOf(row, col)
			if sq == SqNone {
				continue
			}
			count++
			assert.True(t, sq.IsValid())
			assert.Equal(t, row, sq.RowOf())
			assert.Equal(t, col, sq.ColOf())
		}
	}
	assert.Equal(t, NumSquares, count)
}

func TestPromotionRow(t *testing.T) {
	assert.Equal(t, 9, White.PromotionRow())
	assert.Equal(t, 0, Black.PromotionRow())
}
