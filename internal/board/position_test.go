package board

import "testing"

func TestIsInBounds(t *testing.T) {
	tests := []struct {
		p    Position
		want bool
	}{
		{Position{1, 1}, true},
		{Position{8, 8}, true},
		{Position{4, 5}, true},
		{Position{0, 4}, false},
		{Position{9, 4}, false},
		{Position{4, 0}, false},
		{Position{4, 9}, false},
		{Position{-1, -1}, false},
	}

	for _, tc := range tests {
		if got := IsInBounds(tc.p); got != tc.want {
			t.Errorf("IsInBounds(%d,%d) = %v, want %v", tc.p.Row, tc.p.Col, got, tc.want)
		}
		if got := tc.p.IsInBounds(); got != tc.want {
			t.Errorf("Position{%d,%d}.IsInBounds() = %v, want %v", tc.p.Row, tc.p.Col, got, tc.want)
		}
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in      string
		want    Position
		wantErr bool
	}{
		{"a1", Position{1, 1}, false},
		{"h8", Position{8, 8}, false},
		{"e4", Position{4, 5}, false},
		{"i1", Position{}, true},
		{"a9", Position{}, true},
		{"a0", Position{}, true},
		{"e", Position{}, true},
		{"e44", Position{}, true},
		{"", Position{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePosition(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParsePosition(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePosition(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParsePosition(%q) = %+v, want %+v", tc.in, got, tc.want)
			}
			if got.String() != tc.in {
				t.Errorf("String() = %q, want %q", got.String(), tc.in)
			}
		})
	}

	if s := (Position{0, 0}).String(); s != "-" {
		t.Errorf("off-board String() = %q, want \"-\"", s)
	}
}

func TestPieceEncoding(t *testing.T) {
	for _, c := range []Color{White, Black} {
		for pt := Pawn; pt <= King; pt++ {
			p := NewPiece(pt, c)
			if p == NoPiece {
				t.Fatalf("NewPiece(%v, %v) = NoPiece", pt, c)
			}
			if p.Type() != pt || p.Color() != c {
				t.Errorf("NewPiece(%v, %v) decodes to (%v, %v)", pt, c, p.Type(), p.Color())
			}
			if back := PieceFromChar(p.String()[0]); back != p {
				t.Errorf("PieceFromChar(%q) = %v, want %v", p.String(), back, p)
			}
		}
	}

	if NoPiece.Color() != NoColor || NoPiece.Type() != NoPieceType {
		t.Errorf("NoPiece decodes to (%v, %v)", NoPiece.Type(), NoPiece.Color())
	}
	if NewPiece(NoPieceType, White) != NoPiece {
		t.Error("NewPiece(NoPieceType) should be NoPiece")
	}
	if WhiteKnight == BlackKnight {
		t.Error("pieces of different colors must differ")
	}
}

func TestColorPawnRules(t *testing.T) {
	if White.PawnDirection() != 1 || Black.PawnDirection() != -1 {
		t.Error("unexpected pawn directions")
	}
	if White.PawnStartRow() != 2 || Black.PawnStartRow() != 7 {
		t.Error("unexpected pawn start rows")
	}
	if White.PromotionRow() != 8 || Black.PromotionRow() != 1 {
		t.Error("unexpected promotion rows")
	}
	if White.Other() != Black || Black.Other() != White {
		t.Error("Other() mismatch")
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		in      string
		want    Move
		wantErr bool
	}{
		{"e2e4", NewMove(Position{2, 5}, Position{4, 5}), false},
		{"e7e8q", NewPromotion(Position{7, 5}, Position{8, 5}, Queen), false},
		{"b2a1n", NewPromotion(Position{2, 2}, Position{1, 1}, Knight), false},
		{"e7e8k", Move{}, true},
		{"e7e8p", Move{}, true},
		{"e2", Move{}, true},
		{"z2e4", Move{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseMove(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseMove(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMove(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseMove(%q) = %+v, want %+v", tc.in, got, tc.want)
			}
			if got.String() != tc.in {
				t.Errorf("String() = %q, want %q", got.String(), tc.in)
			}
		})
	}
}

func TestSortMoves(t *testing.T) {
	moves := []Move{
		NewPromotion(Position{7, 1}, Position{8, 1}, Queen),
		NewMove(Position{2, 5}, Position{4, 5}),
		NewPromotion(Position{7, 1}, Position{8, 1}, Knight),
		NewMove(Position{2, 5}, Position{3, 5}),
	}
	SortMoves(moves)

	want := []string{"e2e3", "e2e4", "a7a8n", "a7a8q"}
	for i, m := range moves {
		if m.String() != want[i] {
			t.Errorf("moves[%d] = %s, want %s", i, m, want[i])
		}
	}
}
