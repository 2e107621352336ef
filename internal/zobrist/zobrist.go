// Package zobrist provides the engine's two position-identity hashes: a
// 32-bit Zobrist key used to index the transposition table, and a wider
// polynomial hash used for threefold-repetition detection where a 32-bit
// key would be too collision-prone over a long game history.
package zobrist

import (
	"math/big"

	"github.com/frankkopp/DraughtsGo/internal/position"
	. "github.com/frankkopp/DraughtsGo/internal/types"
)

// Key is a 32-bit Zobrist key, sized to match the fixed-size transposition
// table the search kernel indexes with `key mod table_len`.
type Key uint32

var (
	pieceKeys  [SqLength][PieceLength]Key
	sideToMove Key
)

func init() {
	r := newXorshift32(0x9E3779B9)
	for sq := Square(1); sq <= NumSquares; sq++ {
		for pc := Piece(0); pc < PieceLength; pc++ {
			pieceKeys[sq][pc] = Key(r.next())
		}
	}
	sideToMove = Key(r.next())
}

// xorshift32 is the George Marsaglia xorshift generator used to seed the
// Zobrist tables once at process start; it is never reseeded afterward.
type xorshift32 struct {
	state uint32
}

func newXorshift32(seed uint32) *xorshift32 {
	if seed == 0 {
		seed = 1
	}
	return &xorshift32{state: seed}
}

func (x *xorshift32) next() uint32 {
	s := x.state
	s ^= s << 13
	s ^= s >> 17
	s ^= s << 5
	x.state = s
	return s
}

// PositionKey computes the 32-bit Zobrist key for a board plus side to
// move. Identical (board, toMove) pairs always produce the same key;
// changing a single piece or the side to move always changes it (barring
// an astronomically unlikely XOR collision).
func PositionKey(b *position.Board, toMove Color) Key {
	var key Key
	for sq := Square(1); sq <= NumSquares; sq++ {
		pc := b.Get(sq)
		if pc != PieceNone {
			key ^= pieceKeys[sq][pc]
		}
	}
	if toMove == Black {
		key ^= sideToMove
	}
	return key
}

// wideBase is the polynomial multiplier for the repetition hash. It is
// chosen odd and unrelated to NumSquares so the per-square terms do not
// alias into each other.
var wideBase = big.NewInt(1000003)

// WidePositionHash computes a big.Int polynomial hash of the board plus
// side to move, used for threefold-repetition bookkeeping. Unlike
// PositionKey it never collides within the lifetime of a realistic game,
// since the accumulator width grows with the number of terms folded in.
func WidePositionHash(b *position.Board, toMove Color) *big.Int {
	acc := big.NewInt(0)
	term := big.NewInt(1)
	pieceCode := big.NewInt(0)
	for sq := Square(1); sq <= NumSquares; sq++ {
		pieceCode.SetInt64(int64(b.Get(sq)) + 1)
		contribution := new(big.Int).Mul(term, pieceCode)
		acc.Add(acc, contribution)
		term.Mul(term, wideBase)
	}
	if toMove == Black {
		acc.Add(acc, term)
	}
	return acc
}

// WidePositionHashString renders WidePositionHash in a form suitable for
// direct equality comparison and storage in GameState's repetition list.
func WidePositionHashString(b *position.Board, toMove Color) string {
	return WidePositionHash(b, toMove).Text(36)
}
