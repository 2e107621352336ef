package transpositiontable

import (
	"github.com/frankkopp/DraughtsGo/internal/zobrist"
)

// Kind tags what a stored score means relative to the search window that
// produced it.
type Kind int8

const (
	// None marks a never-written slot.
	None Kind = iota
	// Exact means the stored score is the true minimax value.
	Exact
	// LowerBound means the true value is at least the stored score (a
	// beta cutoff occurred).
	LowerBound
	// UpperBound means the true value is at most the stored score (no
	// move raised alpha).
	UpperBound
)

func (k Kind) String() string {
	switch k {
	case Exact:
		return "Exact"
	case LowerBound:
		return "LowerBound"
	case UpperBound:
		return "UpperBound"
	default:
		return "None"
	}
}

// TtEntry is one slot of the transposition table. BestMoveIndex refers to
// the position within the legal-move list generated for the stored
// position, which move ordering uses to try the previously best move
// first.
type TtEntry struct {
	Key           zobrist.Key
	Score         int
	Depth         int
	Kind          Kind
	BestMoveIndex int
}
