package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/DraughtsGo/internal/types"
)

func TestInitialGameState(t *testing.T) {
	s := InitialGameState()
	assert.Equal(t, White, s.ToMove)
	assert.Equal(t, InProgress, s.Phase)
	assert.Equal(t, 20, s.WhiteCount)
	assert.Equal(t, 20, s.BlackCount)

	for sq := Square(1); sq <= 20; sq++ {
		assert.Equal(t, WhiteMan, s.Board.Get(sq))
	}
	for sq := Square(21); sq <= 30; sq++ {
		assert.Equal(t, PieceNone, s.Board.Get(sq))
	}
	for sq := Square(31); sq <= 50; sq++ {
		assert.Equal(t, BlackMan, s.Board.Get(sq))
	}

	white, black := s.Board.Counts()
	assert.Equal(t, 20, white)
	assert.Equal(t, 20, black)
}

func TestBoardPutGetClear(t *testing.T) {
	var b Board
	assert.Equal(t, PieceNone, b.Get(25))
	b.Put(25, WhiteKing)
	assert.Equal(t, WhiteKing, b.Get(25))
	b.Clear(25)
	assert.Equal(t, PieceNone, b.Get(25))
}

func TestCloneIsIndependent(t *testing.T) {
	s := InitialGameState()
	clone := s.Clone()
	clone.Board.Put(25, WhiteKing)
	clone.MoveHistory = append(clone.MoveHistory, MoveRecord{})
	clone.DrawState.PositionHashes = append(clone.DrawState.PositionHashes, "abc")

	assert.Equal(t, PieceNone, s.Board.Get(25))
	assert.Empty(t, s.MoveHistory)
	assert.Empty(t, s.DrawState.PositionHashes)
}
