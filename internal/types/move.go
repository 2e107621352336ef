package types

// MoveKind discriminates the two move variants of the draughts move sum
// type: a single quiet step, or a capture chain of one or more jumps.
type MoveKind int8

const (
	Quiet MoveKind = iota
	Capture
)

// CaptureStep is one jump of a capture chain: a piece moves from From to
// To, removing the enemy piece sitting on Captured.
type CaptureStep struct {
	From     Square
	To       Square
	Captured Square
}

// Move is the sum type described by the rules: either a Quiet{from,to} or
// a Capture{steps}. Steps is nil/empty for quiet moves and holds at least
// one step for captures.
type Move struct {
	Kind  MoveKind
	From_ Square // origin; for Capture, equal to Steps[0].From
	To_   Square // destination; for Capture, equal to Steps[len-1].To
	Steps []CaptureStep
}

// NewQuiet builds a quiet move.
func NewQuiet(from, to Square) Move {
	return Move{Kind: Quiet, From_: from, To_: to}
}

// NewCapture builds a capture move from its ordered steps. Panics if steps
// is empty; a Capture move must always have at least one jump.
func NewCapture(steps []CaptureStep) Move {
	if len(steps) == 0 {
		panic("types: NewCapture requires at least one step")
	}
	return Move{
		Kind:  Capture,
		From_: steps[0].From,
		To_:   steps[len(steps)-1].To,
		Steps: steps,
	}
}

// From returns the move's origin square.
func (m Move) From() Square { return m.From_ }

// To returns the move's destination square.
func (m Move) To() Square { return m.To_ }

// IsCapture reports whether this move is a capture chain.
func (m Move) IsCapture() bool {
	return m.Kind == Capture
}

// CaptureCount returns the number of pieces this move captures (0 for a
// quiet move).
func (m Move) CaptureCount() int {
	return len(m.Steps)
}

// CapturedSquares returns the squares vacated by captured pieces, in the
// order they were jumped.
func (m Move) CapturedSquares() []Square {
	if len(m.Steps) == 0 {
		return nil
	}
	out := make([]Square, len(m.Steps))
	for i, st := range m.Steps {
		out[i] = st.Captured
	}
	return out
}

// Signature returns a compact from*100+to encoding used by the killer move
// table; it is only meaningful for (and only computed for) quiet moves.
func (m Move) Signature() int {
	return int(m.From_)*100 + int(m.To_)
}

// Equals implements the structural-equality test the rules engine uses to
// validate a caller-supplied move against the generator's legal moves: same
// variant, same endpoints, same captured squares in the same order.
func (m Move) Equals(other Move) bool {
	if m.Kind != other.Kind || m.From_ != other.From_ || m.To_ != other.To_ {
		return false
	}
	if len(m.Steps) != len(other.Steps) {
		return false
	}
	for i, st := range m.Steps {
		if st != other.Steps[i] {
			return false
		}
	}
	return true
}
