package board

// Direction vectors as (row, col) deltas.
var (
	straightDirs = [][2]int{{1, 0}, {-1, 0}, {0, -1}, {0, 1}}
	diagonalDirs = [][2]int{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	queenDirs    = append(append([][2]int{}, straightDirs...), diagonalDirs...)

	kingOffsets = [][2]int{
		{1, -1}, {1, 0}, {1, 1},
		{0, -1}, {0, 1},
		{-1, -1}, {-1, 0}, {-1, 1},
	}
	knightOffsets = [][2]int{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {-1, 2}, {1, -2}, {-1, -2},
	}
)

// promotionTypes are the pieces a pawn may promote to, one move each.
var promotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

// Generate returns every pseudo-legal move for the piece on origin.
// Moves that leave the mover's king in check are included; castling and
// en passant are not generated. A nil board, an off-board origin or an
// empty origin yields no moves.
func Generate(b Board, origin Position) []Move {
	if b == nil || !origin.IsInBounds() {
		return nil
	}

	piece := b.PieceAt(origin)
	if piece == NoPiece {
		return nil
	}
	us := piece.Color()

	switch piece.Type() {
	case King:
		return kingMoves(b, origin, us)
	case Knight:
		return knightMoves(b, origin, us)
	case Rook:
		return slidingMoves(b, origin, us, straightDirs)
	case Bishop:
		return slidingMoves(b, origin, us, diagonalDirs)
	case Queen:
		return slidingMoves(b, origin, us, queenDirs)
	case Pawn:
		return pawnMoves(b, origin, us)
	}
	return nil
}

// slidingMoves walks each ray until the edge or the first occupied square.
// An enemy on that square is captured; a friendly piece blocks it.
func slidingMoves(b Board, from Position, us Color, dirs [][2]int) []Move {
	moves := make([]Move, 0, 7*len(dirs))
	for _, d := range dirs {
		to := from.Offset(d[0], d[1])
		for to.IsInBounds() {
			target := b.PieceAt(to)
			if target == NoPiece {
				moves = append(moves, NewMove(from, to))
				to = to.Offset(d[0], d[1])
				continue
			}
			if target.Color() != us {
				moves = append(moves, NewMove(from, to))
			}
			break
		}
	}
	return moves
}

// kingMoves steps to each of the eight adjacent squares.
func kingMoves(b Board, from Position, us Color) []Move {
	return offsetMoves(b, from, us, kingOffsets)
}

// knightMoves jumps to each of the eight (2,1) offsets.
func knightMoves(b Board, from Position, us Color) []Move {
	return offsetMoves(b, from, us, knightOffsets)
}

// offsetMoves emits a move to each in-bounds offset square that is empty or
// holds an enemy piece.
func offsetMoves(b Board, from Position, us Color, offsets [][2]int) []Move {
	moves := make([]Move, 0, len(offsets))
	for _, o := range offsets {
		to := from.Offset(o[0], o[1])
		if !to.IsInBounds() {
			continue
		}
		target := b.PieceAt(to)
		if target == NoPiece || target.Color() != us {
			moves = append(moves, NewMove(from, to))
		}
	}
	return moves
}

// pawnMoves generates single and double pushes, diagonal captures, and
// promotions. No en passant.
func pawnMoves(b Board, from Position, us Color) []Move {
	var moves []Move
	dir := us.PawnDirection()

	// Single push, then double push from the pawn's own starting row only.
	push := from.Offset(dir, 0)
	if push.IsInBounds() && b.PieceAt(push) == NoPiece {
		moves = addPawnMove(moves, from, push, us)

		if from.Row == us.PawnStartRow() {
			double := push.Offset(dir, 0)
			if double.IsInBounds() && b.PieceAt(double) == NoPiece {
				moves = append(moves, NewMove(from, double))
			}
		}
	}

	// Captures
	for _, dc := range [2]int{-1, 1} {
		to := from.Offset(dir, dc)
		if !to.IsInBounds() {
			continue
		}
		target := b.PieceAt(to)
		if target != NoPiece && target.Color() != us {
			moves = addPawnMove(moves, from, to, us)
		}
	}

	return moves
}

// addPawnMove appends a pawn move, expanding it into four promotions when it
// reaches the far row.
func addPawnMove(moves []Move, from, to Position, us Color) []Move {
	if to.Row != us.PromotionRow() {
		return append(moves, NewMove(from, to))
	}
	for _, pt := range promotionTypes {
		moves = append(moves, NewPromotion(from, to, pt))
	}
	return moves
}
