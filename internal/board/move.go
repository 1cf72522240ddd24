package board

import (
	"cmp"
	"fmt"
	"slices"
)

// Move is a pseudo-legal move of one piece. Promotion is NoPieceType unless
// the move is a pawn reaching the far rank.
type Move struct {
	From      Position
	To        Position
	Promotion PieceType
}

// NewMove creates a non-promoting move.
func NewMove(from, to Position) Move {
	return Move{From: from, To: to}
}

// NewPromotion creates a promotion move.
func NewPromotion(from, to Position, promo PieceType) Move {
	return Move{From: from, To: to, Promotion: promo}
}

// IsPromotion returns true if this is a promotion move.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPieceType
}

// String returns the UCI format of the move (e.g., "e2e4", "e7e8q").
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.Promotion.Char())
	}
	return s
}

// ParseMove parses a UCI format move string.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("invalid move string: %q", s)
	}

	from, err := ParsePosition(s[0:2])
	if err != nil {
		return Move{}, err
	}

	to, err := ParsePosition(s[2:4])
	if err != nil {
		return Move{}, err
	}

	if len(s) == 5 {
		promo := PieceTypeFromChar(s[4])
		switch promo {
		case Knight, Bishop, Rook, Queen:
			return NewPromotion(from, to, promo), nil
		default:
			return Move{}, fmt.Errorf("invalid promotion piece: %c", s[4])
		}
	}

	return NewMove(from, to), nil
}

// SortMoves orders moves by origin, destination and promotion type, in place.
// Generation order is unspecified; this is for display and comparison.
func SortMoves(moves []Move) {
	slices.SortFunc(moves, func(a, b Move) int {
		if c := comparePosition(a.From, b.From); c != 0 {
			return c
		}
		if c := comparePosition(a.To, b.To); c != 0 {
			return c
		}
		return cmp.Compare(a.Promotion, b.Promotion)
	})
}

func comparePosition(a, b Position) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	return cmp.Compare(a.Col, b.Col)
}
