package xiangqi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sq(row, col int) Square { return Square{Row: row, Col: col} }

func mustGame(t *testing.T, fen string) *Game {
	t.Helper()
	g, err := NewFromFEN(fen)
	require.NoError(t, err)
	return g
}

func TestInitialFENRoundTrip(t *testing.T) {
	g := New()
	assert.Equal(t, InitialFEN, g.FEN())
	assert.Equal(t, "w", g.Turn())
}

func TestOpeningMoves(t *testing.T) {
	tests := []struct {
		name string
		from Square
		to   Square
		err  error
	}{
		{"pawn forward", sq(6, 4), sq(5, 4), nil},
		{"pawn sideways before river", sq(6, 4), sq(6, 3), ErrIllegalMove},
		{"pawn backward", sq(6, 4), sq(7, 4), ErrIllegalMove},
		{"horse around the pawn", sq(9, 1), sq(7, 2), nil},
		{"horse straight", sq(9, 1), sq(7, 1), ErrIllegalMove},
		{"chariot blocked by horse", sq(9, 0), sq(9, 2), ErrIllegalMove},
		{"cannon slide", sq(7, 1), sq(4, 1), nil},
		{"cannon capture over screen", sq(7, 1), sq(0, 1), nil},
		{"elephant to the center", sq(9, 2), sq(7, 4), nil},
		{"advisor diagonal in palace", sq(9, 3), sq(8, 4), nil},
		{"advisor out of palace", sq(9, 3), sq(8, 2), ErrIllegalMove},
		{"general forward", sq(9, 4), sq(8, 4), nil},
		{"general diagonal", sq(9, 4), sq(8, 3), ErrIllegalMove},
		{"empty source", sq(5, 5), sq(4, 5), ErrNoPiece},
		{"enemy piece", sq(3, 0), sq(4, 0), ErrNotYourPiece},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			err := g.Move(tt.from, tt.to)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCannonNeedsExactlyOneScreen(t *testing.T) {
	// cannon at (5,4), enemy chariot at (0,4)
	g := mustGame(t, "3kr4/9/9/9/9/4C4/9/9/9/5K3 w")
	assert.ErrorIs(t, g.Move(sq(5, 4), sq(0, 4)), ErrIllegalMove, "no screen, no capture")

	// one screen makes the same capture legal
	g = mustGame(t, "3kr4/9/4p4/9/9/4C4/9/9/9/5K3 w")
	assert.NoError(t, g.Move(sq(5, 4), sq(0, 4)))
}

func TestHorseLegBlocked(t *testing.T) {
	// red pawn sits on the horse's leg square
	g := mustGame(t, "3k5/9/9/9/9/9/9/9/1P7/1N2K4 w")
	assert.ErrorIs(t, g.Move(sq(9, 1), sq(7, 2)), ErrIllegalMove)
	assert.ErrorIs(t, g.Move(sq(9, 1), sq(7, 0)), ErrIllegalMove)
	assert.NoError(t, g.Move(sq(9, 1), sq(8, 3)), "sideways leg is free")
}

func TestElephantCannotCrossRiver(t *testing.T) {
	g := mustGame(t, "4k4/9/9/9/9/4B4/9/9/9/3K5 w")
	assert.ErrorIs(t, g.Move(sq(5, 4), sq(3, 2)), ErrIllegalMove)
	assert.ErrorIs(t, g.Move(sq(5, 4), sq(3, 6)), ErrIllegalMove)
	assert.NoError(t, g.Move(sq(5, 4), sq(7, 2)))
}

func TestElephantEyeBlocked(t *testing.T) {
	g := mustGame(t, "3k5/9/9/9/9/9/9/9/3p5/2B1K4 w")
	assert.ErrorIs(t, g.Move(sq(9, 2), sq(7, 4)), ErrIllegalMove)
	assert.NoError(t, g.Move(sq(9, 2), sq(7, 0)))
}

func TestPawnSidewaysAfterRiver(t *testing.T) {
	g := mustGame(t, "4k4/9/9/9/4P4/9/9/9/9/3K5 w")
	assert.NoError(t, g.Move(sq(4, 4), sq(4, 3)))

	g = mustGame(t, "4k4/9/9/9/4P4/9/9/9/9/3K5 w")
	assert.NoError(t, g.Move(sq(4, 4), sq(4, 5)))

	g = mustGame(t, "4k4/9/9/9/4P4/9/9/9/9/3K5 w")
	assert.ErrorIs(t, g.Move(sq(4, 4), sq(5, 4)), ErrIllegalMove, "still no retreat")
}

func TestFlyingGenerals(t *testing.T) {
	// black rook screens the file; moving it away would leave the
	// generals staring at each other
	g := mustGame(t, "4k4/9/4r4/9/9/9/9/9/9/4K4 b")
	assert.ErrorIs(t, g.Move(sq(2, 4), sq(2, 0)), ErrLeavesCheck)
	assert.NoError(t, g.Move(sq(2, 4), sq(1, 4)), "staying on the file is fine")
}

func TestGeneralCannotStepIntoFacing(t *testing.T) {
	g := mustGame(t, "3k5/9/9/9/9/9/9/9/9/4K4 b")
	assert.ErrorIs(t, g.Move(sq(0, 3), sq(0, 4)), ErrLeavesCheck)
	assert.NoError(t, g.Move(sq(0, 3), sq(1, 3)))
}

func TestCheckmate(t *testing.T) {
	// two chariots ladder-mate the bare black general
	g := mustGame(t, "R3k4/R8/9/9/9/9/9/9/9/3K5 b")
	assert.True(t, g.InCheck())
	assert.True(t, g.IsGameOver())
	assert.Equal(t, "red", g.Winner())
}

func TestStalematedSideLoses(t *testing.T) {
	// black general cornered with no legal move but not in check
	g := mustGame(t, "5k3/4P1P2/9/9/9/9/9/9/9/3K5 b")
	assert.False(t, g.InCheck())
	assert.True(t, g.IsGameOver())
	assert.Equal(t, "red", g.Winner())
}

func TestUndo(t *testing.T) {
	g := New()
	before := g.FEN()

	assert.False(t, g.Undo())
	require.NoError(t, g.Move(sq(6, 4), sq(5, 4)))
	require.True(t, g.Undo())
	assert.Equal(t, before, g.FEN())
}
