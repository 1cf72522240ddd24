package board

import "strings"

// Board is a read-only view of piece placement.
// PieceAt returns NoPiece for an empty square.
type Board interface {
	PieceAt(pos Position) Piece
}

// Grid is an 8x8 mailbox board. The zero value is an empty board.
type Grid struct {
	squares [64]Piece
}

// NewGrid creates an empty board.
func NewGrid() *Grid {
	return &Grid{}
}

// PieceAt returns the piece on pos, or NoPiece if the square is empty or off
// the board. A nil Grid is an empty board.
func (g *Grid) PieceAt(pos Position) Piece {
	if g == nil || !pos.IsInBounds() {
		return NoPiece
	}
	return g.squares[pos.index()]
}

// SetPiece places piece on pos, replacing any occupant. Off-board positions are ignored.
func (g *Grid) SetPiece(pos Position, piece Piece) {
	if !pos.IsInBounds() {
		return
	}
	g.squares[pos.index()] = piece
}

// Remove clears pos and returns the piece that was there.
func (g *Grid) Remove(pos Position) Piece {
	piece := g.PieceAt(pos)
	g.SetPiece(pos, NoPiece)
	return piece
}

// IsEmpty returns true if no piece occupies pos.
func (g *Grid) IsEmpty(pos Position) bool {
	return g.PieceAt(pos) == NoPiece
}

// Squares returns the occupied squares of color c, row by row from a1.
func (g *Grid) Squares(c Color) []Position {
	var out []Position
	for i, piece := range g.squares {
		if piece != NoPiece && piece.Color() == c {
			out = append(out, positionFromIndex(i))
		}
	}
	return out
}

// Clone returns an independent copy of the board.
func (g *Grid) Clone() *Grid {
	c := *g
	return &c
}

// String returns an ASCII diagram with row 8 at the top.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for row := MaxIndex; row >= MinIndex; row-- {
		sb.WriteByte(byte('0' + row))
		sb.WriteString("  ")
		for col := MinIndex; col <= MaxIndex; col++ {
			piece := g.PieceAt(NewPosition(row, col))
			if piece == NoPiece {
				sb.WriteString(". ")
			} else {
				sb.WriteString(piece.String() + " ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n")
	return sb.String()
}
