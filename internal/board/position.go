// Package board implements a mailbox chess board and a pseudo-legal move
// generator for single pieces.
package board

import "fmt"

// Rows and columns are numbered 1-8. Row 1 is White's back rank and
// column 1 is the a-file.
const (
	MinIndex = 1
	MaxIndex = 8
)

// Position identifies a square by row and column.
type Position struct {
	Row int
	Col int
}

// NewPosition creates a position from row and column (1-indexed).
func NewPosition(row, col int) Position {
	return Position{Row: row, Col: col}
}

// IsInBounds reports whether both row and column are within [1,8].
func IsInBounds(p Position) bool {
	return p.Row >= MinIndex && p.Row <= MaxIndex && p.Col >= MinIndex && p.Col <= MaxIndex
}

// IsInBounds reports whether the position lies on the board.
func (p Position) IsInBounds() bool {
	return IsInBounds(p)
}

// Offset returns the position shifted by dr rows and dc columns.
// The result may be off the board.
func (p Position) Offset(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String returns the algebraic notation for the position (e.g., "e4").
func (p Position) String() string {
	if !p.IsInBounds() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+p.Col-1, '1'+p.Row-1)
}

// ParsePosition parses algebraic notation (e.g., "e4") into a Position.
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("invalid square: %q", s)
	}

	col := int(s[0]-'a') + 1
	row := int(s[1]-'1') + 1

	p := NewPosition(row, col)
	if !p.IsInBounds() {
		return Position{}, fmt.Errorf("invalid square: %q", s)
	}
	return p, nil
}

// index maps an in-bounds position to 0-63, a1=0, h8=63.
func (p Position) index() int {
	return (p.Row-1)*8 + (p.Col - 1)
}

func positionFromIndex(i int) Position {
	return Position{Row: i/8 + 1, Col: i%8 + 1}
}
