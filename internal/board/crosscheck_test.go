package board

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In these positions no white piece is pinned, White is not in check, and the
// white king has no attacked neighbours, so every pseudo-legal white move is
// also legal and dragontoothmg's legal move list is a complete reference.
var crossCheckFENs = []string{
	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
	"7k/P7/8/8/8/8/8/4K3 w - - 0 1",
	"4k3/8/8/3n4/8/8/1R6/4K3 w - - 0 1",
	"r3k3/1P6/8/2p5/3B4/8/5N2/4K3 w - - 0 1",
}

func TestCrossCheckDragontooth(t *testing.T) {
	for _, fen := range crossCheckFENs {
		t.Run(fen, func(t *testing.T) {
			g, err := ParseFEN(fen)
			require.NoError(t, err)

			var got []string
			for _, origin := range g.Squares(White) {
				got = append(got, moveStrings(Generate(g, origin))...)
			}

			ref := dragontoothmg.ParseFen(fen)
			var want []string
			for _, m := range ref.GenerateLegalMoves() {
				want = append(want, m.String())
			}

			assert.ElementsMatch(t, want, got)
		})
	}
}
