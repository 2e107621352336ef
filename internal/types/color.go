package types

// Color identifies a side: White or Black.
type Color int8

const (
	White Color = iota
	Black
	ColorLength
)

// Flip returns the opposing color.
func (c Color) Flip() Color {
	return c ^ 1
}

// String returns "White" or "Black".
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// ForwardDirections returns the two diagonal directions a man of this
// color advances along. White advances toward row 9 (SE/SW); Black
// advances toward row 0 (NE/NW).
func (c Color) ForwardDirections() [2]Direction {
	if c == White {
		return [2]Direction{SE, SW}
	}
	return [2]Direction{NE, NW}
}
