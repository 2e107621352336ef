// Package board precomputes the static diagonal topology of the 50
// playable squares of a 10x10 international draughts board: the immediate
// neighbor and the full ray (nearest-first) along each of the four
// diagonal directions. This mirrors how a bitboard chess engine
// precomputes attack rays once at process start rather than walking
// (row, col) arithmetic on every move generation call.
package board

import (
	. "github.com/frankkopp/DraughtsGo/internal/types"
)

var adjacent [SqLength][DirectionLength]Square
var rays [SqLength][DirectionLength][]Square

func init() {
	for sq := Square(1); sq <= NumSquares; sq++ {
		row := sq.RowOf()
		col := sq.ColOf()
		for dir := Direction(0); dir < DirectionLength; dir++ {
			var ray []Square
			r, c := row, col
			for {
				r += dir.RowDelta()
				c += dir.ColDelta()
				next := SquareOf(r, c)
				if next == SqNone {
					break
				}
				ray = append(ray, next)
			}
			if len(ray) > 0 {
				adjacent[sq][dir] = ray[0]
			} else {
				adjacent[sq][dir] = SqNone
			}
			rays[sq][dir] = ray
		}
	}
}

// Adjacent returns the next playable square from sq along dir, or SqNone
// if sq is at the edge of the board in that direction.
func Adjacent(sq Square, dir Direction) Square {
	return adjacent[sq][dir]
}

// Ray returns the ordered sequence of playable squares from sq along dir,
// nearest first, terminating at the edge of the board. The returned slice
// is shared and must not be mutated by callers.
func Ray(sq Square, dir Direction) []Square {
	return rays[sq][dir]
}
