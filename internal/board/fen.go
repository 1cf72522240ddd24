package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartPlacement is the piece placement field of the starting position.
const StartPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// ParseFEN parses a FEN string and returns its piece placement as a Grid.
// Only the placement field is read; the remaining fields describe game state
// this package does not track.
func ParseFEN(fen string) (*Grid, error) {
	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return nil, fmt.Errorf("invalid FEN: empty string")
	}
	return ParsePlacement(parts[0])
}

// ParsePlacement parses the piece placement section of a FEN string.
func ParsePlacement(placement string) (*Grid, error) {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	g := NewGrid()
	for i, rankStr := range ranks {
		row := MaxIndex - i // FEN starts from rank 8
		col := MinIndex

		for _, c := range rankStr {
			if col > MaxIndex {
				return nil, fmt.Errorf("too many squares in rank %d", row)
			}

			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}

			piece := NoPiece
			if c < 128 {
				piece = PieceFromChar(byte(c))
			}
			if piece == NoPiece {
				return nil, fmt.Errorf("invalid piece character: %c", c)
			}
			g.SetPiece(NewPosition(row, col), piece)
			col++
		}

		if col != MaxIndex+1 {
			return nil, fmt.Errorf("invalid number of squares in rank %d: got %d", row, col-1)
		}
	}

	return g, nil
}

// Placement returns the FEN piece placement field for the board.
func (g *Grid) Placement() string {
	var sb strings.Builder

	for row := MaxIndex; row >= MinIndex; row-- {
		empty := 0
		for col := MinIndex; col <= MaxIndex; col++ {
			piece := g.PieceAt(NewPosition(row, col))
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row > MinIndex {
			sb.WriteByte('/')
		}
	}

	return sb.String()
}
