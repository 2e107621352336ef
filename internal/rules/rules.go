// Package rules is the authoritative gate for turning a caller-supplied
// move into a new GameState: it validates the move against the generator's
// legal-move list, applies it to the board, maintains the draw-rule
// counters, and detects game-over conditions. This is the only package
// that is allowed to transition a GameState from one turn to the next.
package rules

import (
	"errors"
	"time"

	"github.com/op/go-logging"

	myLogging "github.com/frankkopp/DraughtsGo/internal/logging"
	"github.com/frankkopp/DraughtsGo/internal/movegen"
	"github.com/frankkopp/DraughtsGo/internal/notation"
	"github.com/frankkopp/DraughtsGo/internal/position"
	. "github.com/frankkopp/DraughtsGo/internal/types"
	"github.com/frankkopp/DraughtsGo/internal/zobrist"
)

var log *logging.Logger

func init() {
	log = myLogging.GetLog()
}

// MoveError is the tagged failure type returned by ApplyMove and the other
// state-transition operations.
type MoveError struct {
	Kind MoveErrorKind
}

// MoveErrorKind enumerates the reasons a state transition can be rejected.
type MoveErrorKind int8

const (
	_ MoveErrorKind = iota
	// Illegal means the move does not match any legal move for the side
	// to move.
	Illegal
	// NotInProgress means state.Phase is not InProgress.
	NotInProgress
	// NoPieceAtOrigin means the move's origin square is empty. Defensive:
	// a well-formed Illegal check should already have caught this.
	NoPieceAtOrigin
)

func (k MoveErrorKind) String() string {
	switch k {
	case Illegal:
		return "Illegal"
	case NotInProgress:
		return "NotInProgress"
	case NoPieceAtOrigin:
		return "NoPieceAtOrigin"
	default:
		return "Unknown"
	}
}

func (e *MoveError) Error() string {
	return e.Kind.String()
}

var errNotInProgress = errors.New("rules: state not in progress")

const (
	kingOnlyPliesLimit = 50
	endgamePliesLimit  = 32
	repetitionCount    = 3
)

// ApplyMove validates move against the legal moves for state.ToMove and,
// if valid, returns the resulting state. The input state is never
// mutated: on success a fresh GameState is returned, on failure the
// original state's caller-visible value is unaffected.
func ApplyMove(state *position.GameState, move Move) (position.GameState, error) {
	if state.Phase != InProgress {
		return position.GameState{}, &MoveError{Kind: NotInProgress}
	}

	legalMoves := movegen.GenerateLegalMoves(&state.Board, state.ToMove)
	if !containsMove(legalMoves, move) {
		if state.Board.Get(move.From()) == PieceNone {
			return position.GameState{}, &MoveError{Kind: NoPieceAtOrigin}
		}
		return position.GameState{}, &MoveError{Kind: Illegal}
	}

	next := state.Clone()
	next.Board = movegen.ApplyMoveToBoard(state.Board, move)
	mover := state.ToMove
	next.ToMove = state.ToMove.Flip()
	next.WhiteCount, next.BlackCount = next.Board.Counts()

	next.MoveHistory = append(next.MoveHistory, position.MoveRecord{
		Move:       move,
		Notation:   formatForHistory(move),
		Player:     mover,
		MoveNumber: len(next.MoveHistory) + 1,
		Timestamp:  time.Now(),
	})

	updateDrawState(&next, move)
	detectOutcome(&next, mover)

	log.Debugf("applied move %s by %s, phase now %s", formatForHistory(move), mover, next.Phase)
	return next, nil
}

func containsMove(legal []Move, candidate Move) bool {
	for _, m := range legal {
		if m.Equals(candidate) {
			return true
		}
	}
	return false
}

// Resign ends the game in favor of the side that did not resign. It is
// the current ToMove that resigns, matching the UI-driven "I give up on
// my turn" gesture.
func Resign(state *position.GameState) (position.GameState, error) {
	if state.Phase != InProgress {
		return position.GameState{}, &MoveError{Kind: NotInProgress}
	}
	next := state.Clone()
	if state.ToMove == White {
		next.Phase = BlackWins
	} else {
		next.Phase = WhiteWins
	}
	next.WinReason = Resigned
	return next, nil
}

// OfferDrawAccepted ends the game in a mutually agreed draw.
func OfferDrawAccepted(state *position.GameState) (position.GameState, error) {
	if state.Phase != InProgress {
		return position.GameState{}, &MoveError{Kind: NotInProgress}
	}
	next := state.Clone()
	next.Phase = Draw
	next.DrawReason = Agreement
	return next, nil
}

func updateDrawState(next *position.GameState, move Move) {
	hash := zobrist.WidePositionHashString(&next.Board, next.ToMove)
	next.DrawState.PositionHashes = append(next.DrawState.PositionHashes, hash)

	noMenLeft := countMen(&next.Board) == 0
	if !move.IsCapture() && noMenLeft {
		next.DrawState.KingOnlyPlies++
	} else {
		next.DrawState.KingOnlyPlies = 0
	}

	active := isEndgameRuleConfiguration(&next.Board)
	if move.IsCapture() || !active {
		next.DrawState.EndgamePlies = 0
	} else {
		next.DrawState.EndgamePlies++
	}
	next.DrawState.EndgameRuleActive = active
}

func countMen(b *position.Board) int {
	count := 0
	for sq := Square(1); sq <= NumSquares; sq++ {
		if pc := b.Get(sq); pc == WhiteMan || pc == BlackMan {
			count++
		}
	}
	return count
}

// isEndgameRuleConfiguration reports whether the board matches one of the
// configurations that activate the 16-move endgame rule: the weaker side
// has exactly one king and no men, and the total piece counts are one of
// {3K vs 1K, 2K+1M vs 1K, 1K+2M vs 1K} for either color assignment.
func isEndgameRuleConfiguration(b *position.Board) bool {
	var whiteKings, whiteMen, blackKings, blackMen int
	for sq := Square(1); sq <= NumSquares; sq++ {
		switch b.Get(sq) {
		case WhiteKing:
			whiteKings++
		case WhiteMan:
			whiteMen++
		case BlackKing:
			blackKings++
		case BlackMan:
			blackMen++
		}
	}
	matches := func(strongKings, strongMen, weakKings, weakMen int) bool {
		if weakKings != 1 || weakMen != 0 {
			return false
		}
		switch {
		case strongKings == 3 && strongMen == 0:
			return true
		case strongKings == 2 && strongMen == 1:
			return true
		case strongKings == 1 && strongMen == 2:
			return true
		default:
			return false
		}
	}
	return matches(whiteKings, whiteMen, blackKings, blackMen) ||
		matches(blackKings, blackMen, whiteKings, whiteMen)
}

func detectOutcome(next *position.GameState, justMoved Color) {
	opponentMoves := movegen.GenerateLegalMoves(&next.Board, next.ToMove)
	if len(opponentMoves) == 0 {
		if justMoved == White {
			next.Phase = WhiteWins
		} else {
			next.Phase = BlackWins
		}
		next.WinReason = NoMovesLeft
		return
	}

	if reason, drawn := checkDrawConditions(next); drawn {
		next.Phase = Draw
		next.DrawReason = reason
		return
	}

	next.Phase = InProgress
}

func checkDrawConditions(next *position.GameState) (DrawReason, bool) {
	if countOccurrences(next.DrawState.PositionHashes) >= repetitionCount {
		return ThreefoldRepetition, true
	}
	if next.DrawState.KingOnlyPlies >= kingOnlyPliesLimit {
		return TwentyFiveMoveRule, true
	}
	if next.DrawState.EndgameRuleActive && next.DrawState.EndgamePlies >= endgamePliesLimit {
		return SixteenMoveEndgameRule, true
	}
	return NoDrawReason, false
}

func countOccurrences(hashes []string) int {
	if len(hashes) == 0 {
		return 0
	}
	latest := hashes[len(hashes)-1]
	count := 0
	for _, h := range hashes {
		if h == latest {
			count++
		}
	}
	return count
}

func formatForHistory(move Move) string {
	return notation.FormatMove(move)
}
