package board

// Color represents the team a piece belongs to.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// PawnDirection returns the row delta of a pawn advance: +1 for White, -1 for Black.
func (c Color) PawnDirection() int {
	if c == White {
		return 1
	}
	return -1
}

// PawnStartRow returns the row from which a pawn of this color may advance two squares.
func (c Color) PawnStartRow() int {
	if c == White {
		return 2
	}
	return 7
}

// PromotionRow returns the far row on which a pawn of this color promotes.
func (c Color) PromotionRow() int {
	if c == White {
		return 8
	}
	return 1
}

// ParseColor parses "white"/"w" or "black"/"b".
func ParseColor(s string) (Color, bool) {
	switch s {
	case "white", "White", "w":
		return White, true
	case "black", "Black", "b":
		return Black, true
	}
	return NoColor, false
}

// PieceType represents the type of a chess piece.
// The zero value is NoPieceType, which is also what a non-promoting Move carries.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the FEN character for the piece type (lowercase).
func (pt PieceType) Char() byte {
	chars := []byte{' ', 'p', 'n', 'b', 'r', 'q', 'k'}
	if pt > King {
		return ' '
	}
	return chars[pt]
}

// PieceTypeFromChar converts a lowercase FEN character to a PieceType.
func PieceTypeFromChar(c byte) PieceType {
	switch c {
	case 'p':
		return Pawn
	case 'n':
		return Knight
	case 'b':
		return Bishop
	case 'r':
		return Rook
	case 'q':
		return Queen
	case 'k':
		return King
	default:
		return NoPieceType
	}
}

// Piece combines PieceType and Color into a single value.
// Encoded as: color<<3 | pieceType, so the zero value is NoPiece.
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = Piece(White)<<3 | Piece(Pawn)
	WhiteKnight Piece = Piece(White)<<3 | Piece(Knight)
	WhiteBishop Piece = Piece(White)<<3 | Piece(Bishop)
	WhiteRook   Piece = Piece(White)<<3 | Piece(Rook)
	WhiteQueen  Piece = Piece(White)<<3 | Piece(Queen)
	WhiteKing   Piece = Piece(White)<<3 | Piece(King)
	BlackPawn   Piece = Piece(Black)<<3 | Piece(Pawn)
	BlackKnight Piece = Piece(Black)<<3 | Piece(Knight)
	BlackBishop Piece = Piece(Black)<<3 | Piece(Bishop)
	BlackRook   Piece = Piece(Black)<<3 | Piece(Rook)
	BlackQueen  Piece = Piece(Black)<<3 | Piece(Queen)
	BlackKing   Piece = Piece(Black)<<3 | Piece(King)
)

// NewPiece creates a Piece from PieceType and Color.
func NewPiece(pt PieceType, c Color) Piece {
	if pt == NoPieceType || pt > King || c >= NoColor {
		return NoPiece
	}
	return Piece(c)<<3 | Piece(pt)
}

// Type returns the PieceType of the piece.
func (p Piece) Type() PieceType {
	pt := PieceType(p & 7)
	if pt > King {
		return NoPieceType
	}
	return pt
}

// Color returns the Color of the piece.
func (p Piece) Color() Color {
	if p.Type() == NoPieceType {
		return NoColor
	}
	return Color(p >> 3)
}

// String returns the FEN character for the piece.
// Uppercase for white, lowercase for black.
func (p Piece) String() string {
	pt := p.Type()
	if pt == NoPieceType {
		return " "
	}
	c := pt.Char()
	if p.Color() == White {
		c -= 'a' - 'A'
	}
	return string(c)
}

// PieceFromChar converts a FEN character to a Piece.
func PieceFromChar(c byte) Piece {
	if c >= 'A' && c <= 'Z' {
		return NewPiece(PieceTypeFromChar(c+('a'-'A')), White)
	}
	return NewPiece(PieceTypeFromChar(c), Black)
}
