package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/DraughtsGo/internal/config"
	"github.com/frankkopp/DraughtsGo/internal/movegen"
	"github.com/frankkopp/DraughtsGo/internal/position"
	. "github.com/frankkopp/DraughtsGo/internal/types"
)

func TestFindBestMoveNoLegalMovesReturnsNil(t *testing.T) {
	var b position.Board
	b.Put(50, BlackMan)
	result := FindBestMove(&b, White, config.Settings.Search.Easy, 1)
	assert.Nil(t, result)
}

func TestFindBestMoveSingleLegalMoveShortcut(t *testing.T) {
	var b position.Board
	b.Put(22, WhiteMan)
	b.Put(27, BlackMan)
	result := FindBestMove(&b, White, config.Settings.Search.Easy, 1)
	assert.NotNil(t, result)
	assert.Equal(t, 0, result.DepthReached)
	assert.True(t, result.Move.IsCapture())
	assert.Equal(t, Square(31), result.Move.To())
}

func TestFindBestMoveReturnsALegalMove(t *testing.T) {
	s := position.InitialGameState()
	legal := movegen.GenerateLegalMoves(&s.Board, s.ToMove)
	result := FindBestMove(&s.Board, s.ToMove, config.Settings.Search.Easy, 7)
	assert.NotNil(t, result)
	assert.True(t, containsMove(legal, result.Move))
	assert.GreaterOrEqual(t, result.DepthReached, 1)
}

func containsMove(moves []Move, candidate Move) bool {
	for _, m := range moves {
		if m.Equals(candidate) {
			return true
		}
	}
	return false
}

func TestFindBestMoveIsDeterministicForSameSeed(t *testing.T) {
	s := position.InitialGameState()
	r1 := FindBestMove(&s.Board, s.ToMove, config.Settings.Search.Medium, 42)
	r2 := FindBestMove(&s.Board, s.ToMove, config.Settings.Search.Medium, 42)
	assert.Equal(t, r1.Move, r2.Move)
	assert.Equal(t, r1.Score, r2.Score)
}

func TestApplyBlunderPolicyNoOpWhenProbabilityZero(t *testing.T) {
	var b position.Board
	b.Put(16, WhiteMan)
	b.Put(17, WhiteMan)
	b.Put(31, BlackMan)
	moves := movegen.GenerateLegalMoves(&b, White)
	best := Result{Move: moves[0], Score: 10, DepthReached: 3}
	profile := config.Settings.Search.Expert // BlunderProb 0
	got := applyBlunderPolicy(&b, White, profile, moves, best, newState(profile, 1).rng)
	assert.Equal(t, best.Move, got.Move)
}
