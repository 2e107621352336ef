// Package movegen enumerates legal moves on a draughts board: quiet steps
// for men and flying kings, and the full capture tree with the mandatory
// and maximum-capture filters applied. It has no notion of search or
// evaluation; it only answers "what can move on this board".
package movegen

import (
	"github.com/op/go-logging"

	"github.com/frankkopp/DraughtsGo/internal/board"
	myLogging "github.com/frankkopp/DraughtsGo/internal/logging"
	"github.com/frankkopp/DraughtsGo/internal/position"
	. "github.com/frankkopp/DraughtsGo/internal/types"
)

var log *logging.Logger

func init() {
	log = myLogging.GetLog()
}

// GenerateLegalMoves returns the legal moves for the given board and side
// to move. If any capture sequence exists only captures of the maximum
// captured-piece count are returned; otherwise only quiet moves.
func GenerateLegalMoves(b *position.Board, toMove Color) []Move {
	captures := generateCaptures(b, toMove)
	if len(captures) > 0 {
		return filterMaxCaptures(captures)
	}
	return generateQuietMoves(b, toMove)
}

// QuietMoveCount returns the number of quiet (non-capturing) destination
// squares reachable by pieces of the given color and type, ignoring whose
// turn it is and ignoring any mandatory-capture rule. The evaluator uses
// this as a cheap mobility proxy; it is not a legal-move count.
func QuietMoveCount(b *position.Board, color Color, pt PieceType) int {
	count := 0
	for sq := Square(1); sq <= NumSquares; sq++ {
		pc := b.Get(sq)
		if pc == PieceNone || pc.ColorOf() != color || pc.TypeOf() != pt {
			continue
		}
		switch pt {
		case Man:
			for _, dir := range color.ForwardDirections() {
				to := board.Adjacent(sq, dir)
				if to != SqNone && b.Get(to) == PieceNone {
					count++
				}
			}
		case King:
			for dir := Direction(0); dir < DirectionLength; dir++ {
				for _, to := range board.Ray(sq, dir) {
					if b.Get(to) != PieceNone {
						break
					}
					count++
				}
			}
		}
	}
	return count
}

func generateQuietMoves(b *position.Board, toMove Color) []Move {
	var moves []Move
	for sq := Square(1); sq <= NumSquares; sq++ {
		pc := b.Get(sq)
		if pc == PieceNone || pc.ColorOf() != toMove {
			continue
		}
		switch pc.TypeOf() {
		case Man:
			for _, dir := range toMove.ForwardDirections() {
				to := board.Adjacent(sq, dir)
				if to != SqNone && b.Get(to) == PieceNone {
					moves = append(moves, NewQuiet(sq, to))
				}
			}
		case King:
			for dir := Direction(0); dir < DirectionLength; dir++ {
				for _, to := range board.Ray(sq, dir) {
					if b.Get(to) != PieceNone {
						break
					}
					moves = append(moves, NewQuiet(sq, to))
				}
			}
		}
	}
	return moves
}

// capturedSet tracks which squares have already been jumped within one
// capture chain under construction. It is threaded by value through the
// recursion so siblings in the capture tree never see each other's jumps.
type capturedSet struct {
	squares []Square
}

func (c capturedSet) has(sq Square) bool {
	for _, s := range c.squares {
		if s == sq {
			return true
		}
	}
	return false
}

func (c capturedSet) plus(sq Square) capturedSet {
	next := make([]Square, len(c.squares), len(c.squares)+1)
	copy(next, c.squares)
	next = append(next, sq)
	return capturedSet{squares: next}
}

func generateCaptures(b *position.Board, toMove Color) []Move {
	var moves []Move
	for sq := Square(1); sq <= NumSquares; sq++ {
		pc := b.Get(sq)
		if pc == PieceNone || pc.ColorOf() != toMove {
			continue
		}
		var steps []CaptureStep
		walkCaptures(b, sq, sq, pc, capturedSet{}, steps, &moves)
	}
	return moves
}

// walkCaptures performs the depth-first capture-tree search described for
// the move generator: origin is the square the capturing piece started
// the whole chain from (it counts as empty for pass-through landings
// since the piece has vacated it), from is the current link's starting
// square, and captured accumulates the squares jumped so far.
func walkCaptures(b *position.Board, origin, from Square, pc Piece, captured capturedSet, steps []CaptureStep, out *[]Move) {
	extended := false
	switch pc.TypeOf() {
	case Man:
		extended = walkManCaptures(b, origin, from, pc, captured, steps, out)
	case King:
		extended = walkKingCaptures(b, origin, from, pc, captured, steps, out)
	}
	if !extended && len(steps) > 0 {
		*out = append(*out, NewCapture(append([]CaptureStep(nil), steps...)))
	}
}

func isVacant(b *position.Board, origin, sq Square) bool {
	return sq == origin || b.Get(sq) == PieceNone
}

func walkManCaptures(b *position.Board, origin, from Square, pc Piece, captured capturedSet, steps []CaptureStep, out *[]Move) bool {
	extended := false
	for dir := Direction(0); dir < DirectionLength; dir++ {
		mid := board.Adjacent(from, dir)
		if mid == SqNone || mid == origin {
			continue
		}
		midPc := b.Get(mid)
		if midPc == PieceNone || midPc.ColorOf() == pc.ColorOf() || captured.has(mid) {
			continue
		}
		landing := board.Adjacent(mid, dir)
		if landing == SqNone || !isVacant(b, origin, landing) {
			continue
		}
		extended = true
		nextSteps := append(append([]CaptureStep(nil), steps...), CaptureStep{From: from, To: landing, Captured: mid})
		walkCaptures(b, origin, landing, pc, captured.plus(mid), nextSteps, out)
	}
	return extended
}

func walkKingCaptures(b *position.Board, origin, from Square, pc Piece, captured capturedSet, steps []CaptureStep, out *[]Move) bool {
	extended := false
	for dir := Direction(0); dir < DirectionLength; dir++ {
		ray := board.Ray(from, dir)
		enemyIdx := -1
		for i, sq := range ray {
			if isVacant(b, origin, sq) {
				continue
			}
			enemyIdx = i
			break
		}
		if enemyIdx == -1 {
			continue
		}
		enemySq := ray[enemyIdx]
		enemyPc := b.Get(enemySq)
		if enemyPc.ColorOf() == pc.ColorOf() || captured.has(enemySq) {
			continue
		}
		for i := enemyIdx + 1; i < len(ray); i++ {
			landing := ray[i]
			if !isVacant(b, origin, landing) {
				break
			}
			extended = true
			nextSteps := append(append([]CaptureStep(nil), steps...), CaptureStep{From: from, To: landing, Captured: enemySq})
			walkCaptures(b, origin, landing, pc, captured.plus(enemySq), nextSteps, out)
		}
	}
	return extended
}

func filterMaxCaptures(moves []Move) []Move {
	max := 0
	for _, m := range moves {
		if m.CaptureCount() > max {
			max = m.CaptureCount()
		}
	}
	filtered := moves[:0]
	for _, m := range moves {
		if m.CaptureCount() == max {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// ApplyMoveToBoard returns a new board with move applied; it does not
// validate the move or consult whose turn it is, it only performs the
// board-level mechanics. The rules engine is responsible for legality.
func ApplyMoveToBoard(b position.Board, move Move) position.Board {
	result := b.Clone()
	if !move.IsCapture() {
		pc := result.Get(move.From())
		result.Clear(move.From())
		result.Put(move.To(), promoteIfReached(pc, move.To()))
		return result
	}
	pc := result.Get(move.From())
	result.Clear(move.From())
	for _, step := range move.Steps {
		result.Clear(step.Captured)
	}
	result.Put(move.To(), promoteIfReached(pc, move.To()))
	return result
}

func promoteIfReached(pc Piece, to Square) Piece {
	if pc.TypeOf() != Man {
		return pc
	}
	if to.RowOf() == pc.ColorOf().PromotionRow() {
		return pc.Promoted()
	}
	return pc
}
