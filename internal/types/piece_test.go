package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakePiece(t *testing.T) {
	assert.Equal(t, WhiteMan, MakePiece(White, Man))
	assert.Equal(t, WhiteKing, MakePiece(White, King))
	assert.Equal(t, BlackMan, MakePiece(Black, Man))
	assert.Equal(t, BlackKing, MakePiece(Black, King))
}

func TestPieceAccessors(t *testing.T) {
	assert.Equal(t, White, WhiteMan.ColorOf())
	assert.Equal(t, Man, WhiteMan.TypeOf())
	assert.Equal(t, Black, BlackKing.ColorOf())
	assert.Equal(t, King, BlackKing.TypeOf())
	assert.True(t, PieceNone.IsNone())
	assert.False(t, WhiteMan.IsNone())
}

func TestPromoted(t *testing.T) {
	assert.Equal(t, WhiteKing, WhiteMan.Promoted())
	assert.Equal(t, BlackKing, BlackMan.Promoted())
}
