// Package position represents the data structures for a draughts board and
// the full state of a game in progress. It uses a flat 1..50 piece array
// for the board, a fixed-growth move history for replay, and a draw-rule
// counter block that travels with the state so threefold repetition, the
// 25-move rule and the 16-move endgame rule can be evaluated without
// consulting anything outside the GameState itself.
package position

import (
	"strings"
	"time"

	"github.com/op/go-logging"

	myLogging "github.com/frankkopp/DraughtsGo/internal/logging"
	. "github.com/frankkopp/DraughtsGo/internal/types"
)

var log *logging.Logger

func init() {
	log = myLogging.GetLog()
}

// Board is a flat array of the 50 playable squares, 1-indexed; index 0 is
// reserved and always empty so callers can index directly by Square.
type Board [SqLength]Piece

// Get returns the piece on sq (PieceNone for an empty square).
func (b *Board) Get(sq Square) Piece {
	return b[sq]
}

// Put places piece on sq, overwriting whatever was there.
func (b *Board) Put(sq Square, p Piece) {
	b[sq] = p
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	b[sq] = PieceNone
}

// Clone returns an independent copy of the board.
func (b Board) Clone() Board {
	return b
}

// Counts returns the number of white and black pieces currently on the
// board.
func (b *Board) Counts() (white, black int) {
	for sq := Square(1); sq <= NumSquares; sq++ {
		switch b[sq] {
		case WhiteMan, WhiteKing:
			white++
		case BlackMan, BlackKing:
			black++
		}
	}
	return
}

// String renders the board as a 10x10 text matrix, light squares shown as
// blank cells, for logging and test failure output.
func (b *Board) String() string {
	var s strings.Builder
	for row := 9; row >= 0; row-- {
		for col := 0; col < 10; col++ {
			sq := SquareOf(row, col)
			if sq == SqNone {
				s.WriteString(" . ")
				continue
			}
			s.WriteString(" ")
			s.WriteString(b[sq].String())
			s.WriteString(" ")
		}
		s.WriteString("\n")
	}
	return s.String()
}

// MoveRecord is one entry of a GameState's append-only move history, kept
// for UI replay/undo; the rules engine itself never reads back into it.
type MoveRecord struct {
	Move       Move
	Notation   string
	Player     Color
	MoveNumber int
	Timestamp  time.Time
}

// DrawState carries the counters needed to evaluate the three draw rules.
// It travels as a value inside GameState so every apply_move produces an
// independent copy instead of mutating shared state.
type DrawState struct {
	// PositionHashes holds the wide polynomial hash (see the zobrist
	// package) of the position after each move applied so far, used for
	// threefold repetition; the starting position is not included.
	// Indexed in history order, oldest first.
	PositionHashes []string

	KingOnlyPlies     int
	EndgamePlies      int
	EndgameRuleActive bool
}

// Clone returns an independent copy of the draw state.
func (d DrawState) Clone() DrawState {
	hashes := make([]string, len(d.PositionHashes))
	copy(hashes, d.PositionHashes)
	return DrawState{
		PositionHashes:    hashes,
		KingOnlyPlies:     d.KingOnlyPlies,
		EndgamePlies:      d.EndgamePlies,
		EndgameRuleActive: d.EndgameRuleActive,
	}
}

// GameState is the full, immutable-by-convention snapshot of a game in
// progress. Every mutation goes through the rules engine, which returns a
// freshly built GameState rather than touching the one passed in.
type GameState struct {
	Board       Board
	ToMove      Color
	MoveHistory []MoveRecord
	Phase       GamePhase
	DrawReason  DrawReason
	WinReason   WinReason
	WhiteCount  int
	BlackCount  int
	DrawState   DrawState
}

// Clone returns a deep-enough copy of s: the board is a value type and
// copies automatically, MoveHistory and DrawState are copied explicitly so
// appending to the clone never aliases the original's backing arrays.
func (s *GameState) Clone() GameState {
	history := make([]MoveRecord, len(s.MoveHistory))
	copy(history, s.MoveHistory)
	return GameState{
		Board:       s.Board,
		ToMove:      s.ToMove,
		MoveHistory: history,
		Phase:       s.Phase,
		DrawReason:  s.DrawReason,
		WinReason:   s.WinReason,
		WhiteCount:  s.WhiteCount,
		BlackCount:  s.BlackCount,
		DrawState:   s.DrawState.Clone(),
	}
}

// InitialGameState builds the standard starting position: 20 white men on
// squares 1-20, 20 black men on squares 31-50, squares 21-30 empty, White
// to move.
func InitialGameState() GameState {
	var b Board
	for sq := Square(1); sq <= 20; sq++ {
		b.Put(sq, WhiteMan)
	}
	for sq := Square(31); sq <= 50; sq++ {
		b.Put(sq, BlackMan)
	}
	log.Debugf("initial game state built: %d white, %d black", 20, 20)
	return GameState{
		Board:      b,
		ToMove:     White,
		Phase:      InProgress,
		WhiteCount: 20,
		BlackCount: 20,
	}
}
