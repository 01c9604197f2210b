package chess

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sq is shorthand for building squares in tests.
func sq(row, col int) Square { return Square{Row: row, Col: col} }

func playMoves(t *testing.T, g *Game, moves [][2]Square) {
	t.Helper()
	for _, m := range moves {
		require.NoError(t, g.Move(m[0], m[1], ""), "move %v -> %v", m[0], m[1])
	}
}

func TestInitialFENRoundTrip(t *testing.T) {
	g, err := NewFromFEN(InitialFEN)
	require.NoError(t, err)
	assert.Equal(t, InitialFEN, g.FEN())
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pp1ppppp/8/2p5/3P4/8/PPP1PPPP/RNBQKBNR b KQkq d3 0 2",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 4 20",
		"8/P6k/8/8/8/8/8/K7 w - - 0 1",
	}
	for _, fen := range fens {
		g, err := NewFromFEN(fen)
		require.NoError(t, err, fen)
		assert.Equal(t, fen, g.FEN())
	}
}

func TestTurnAlternates(t *testing.T) {
	g := New()
	assert.Equal(t, "w", g.Turn())
	require.NoError(t, g.Move(sq(6, 4), sq(4, 4), "")) // e4
	assert.Equal(t, "b", g.Turn())
	require.NoError(t, g.Move(sq(1, 4), sq(3, 4), "")) // e5
	assert.Equal(t, "w", g.Turn())
}

func TestMoveRejections(t *testing.T) {
	g := New()

	assert.ErrorIs(t, g.Move(sq(4, 4), sq(3, 4), ""), ErrNoPiece)
	assert.ErrorIs(t, g.Move(sq(1, 4), sq(2, 4), ""), ErrNotYourPiece)
	assert.ErrorIs(t, g.Move(sq(6, 4), sq(3, 4), ""), ErrIllegalMove)
	assert.ErrorIs(t, g.Move(sq(7, 1), sq(5, 1), ""), ErrIllegalMove) // knight straight up

	// pinned piece may not expose the king
	pinned, err := NewFromFEN("4r3/8/8/8/8/8/4N3/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.ErrorIs(t, pinned.Move(sq(6, 4), sq(4, 3), ""), ErrLeavesCheck)
}

func TestKingsideCastling(t *testing.T) {
	g := New()
	playMoves(t, g, [][2]Square{
		{sq(6, 4), sq(4, 4)}, // e4
		{sq(1, 4), sq(3, 4)}, // e5
		{sq(7, 6), sq(5, 5)}, // Nf3
		{sq(0, 1), sq(2, 2)}, // Nc6
		{sq(7, 5), sq(3, 1)}, // Bb5
		{sq(0, 6), sq(2, 5)}, // Nf6
		{sq(7, 4), sq(7, 6)}, // O-O
	})

	assert.Equal(t, byte('K'), g.board[7][6])
	assert.Equal(t, byte('R'), g.board[7][5])
	assert.Equal(t, byte(0), g.board[7][7])

	fields := strings.Fields(g.FEN())
	assert.Equal(t, "kq", fields[2], "white rights cleared, black kept")
}

func TestCastlingRightsMonotone(t *testing.T) {
	g := New()
	rightsSet := func() int {
		n := 0
		for _, ok := range g.castling {
			if ok {
				n++
			}
		}
		return n
	}

	prev := rightsSet()
	moves := [][2]Square{
		{sq(6, 4), sq(4, 4)}, {sq(1, 4), sq(3, 4)},
		{sq(7, 6), sq(5, 5)}, {sq(0, 1), sq(2, 2)},
		{sq(7, 5), sq(3, 1)}, {sq(0, 6), sq(2, 5)},
		{sq(7, 4), sq(7, 6)}, {sq(0, 3), sq(1, 4)},
	}
	for _, m := range moves {
		require.NoError(t, g.Move(m[0], m[1], ""))
		cur := rightsSet()
		assert.LessOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestCastlingBlockedWhileAttacked(t *testing.T) {
	// black rook on e8 pins the castle through e1
	g, err := NewFromFEN("4r3/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)
	assert.ErrorIs(t, g.Move(sq(7, 4), sq(7, 6), ""), ErrIllegalMove)

	// rook eyeing the transit square f1 also forbids it
	g, err = NewFromFEN("5r2/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)
	assert.ErrorIs(t, g.Move(sq(7, 4), sq(7, 6), ""), ErrIllegalMove)
}

func TestEnPassant(t *testing.T) {
	g := New()
	playMoves(t, g, [][2]Square{
		{sq(6, 4), sq(4, 4)}, // e4
		{sq(1, 3), sq(3, 3)}, // d5
		{sq(4, 4), sq(3, 4)}, // e5
	})

	require.NoError(t, g.Move(sq(1, 5), sq(3, 5), "")) // f5, double push
	fields := strings.Fields(g.FEN())
	assert.Equal(t, "f6", fields[3], "en passant target recorded")

	require.NoError(t, g.Move(sq(3, 4), sq(2, 5), "")) // exf6 e.p.
	assert.Equal(t, byte('P'), g.board[2][5], "white pawn lands on f6")
	assert.Equal(t, byte(0), g.board[3][5], "black pawn on f5 captured")

	fields = strings.Fields(g.FEN())
	assert.Equal(t, "-", fields[3], "target cleared after one ply")
}

func TestEnPassantTargetOnlyOnePly(t *testing.T) {
	g := New()
	require.NoError(t, g.Move(sq(6, 4), sq(4, 4), "")) // e4
	require.NoError(t, g.Move(sq(1, 0), sq(2, 0), "")) // a6
	assert.Equal(t, "-", strings.Fields(g.FEN())[3])
}

func TestPromotion(t *testing.T) {
	tests := []struct {
		name      string
		promotion string
		want      byte
	}{
		{"defaults to queen", "", 'Q'},
		{"explicit rook", "r", 'R'},
		{"explicit knight", "n", 'N'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewFromFEN("8/P6k/8/8/8/8/8/K7 w - - 0 1")
			require.NoError(t, err)
			require.NoError(t, g.Move(sq(1, 0), sq(0, 0), tt.promotion))
			assert.Equal(t, tt.want, g.board[0][0])
		})
	}
}

func TestCheckmate(t *testing.T) {
	g := New()
	playMoves(t, g, [][2]Square{
		{sq(6, 5), sq(5, 5)}, // f3
		{sq(1, 4), sq(3, 4)}, // e5
		{sq(6, 6), sq(4, 6)}, // g4
		{sq(0, 3), sq(4, 7)}, // Qh4#
	})

	assert.True(t, g.InCheck())
	assert.True(t, g.IsGameOver())
	assert.Equal(t, "black", g.Winner())
}

func TestStalemateIsDraw(t *testing.T) {
	g, err := NewFromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	assert.False(t, g.InCheck())
	assert.True(t, g.IsGameOver())
	assert.Equal(t, "draw", g.Winner())
}

func TestUndo(t *testing.T) {
	g := New()
	before := g.FEN()

	assert.False(t, g.Undo(), "nothing to undo yet")
	require.NoError(t, g.Move(sq(6, 4), sq(4, 4), ""))
	require.True(t, g.Undo())
	assert.Equal(t, before, g.FEN())
}
