package boggle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regardlessly/multiplayer-games/words"
)

// testBoard reads, row by row:
//
//	T E R S
//	A C H X
//	I O L N
//	D U M P
//
// TEACH and REACH snake through the top-left corner; DUMP runs along the
// bottom row.
var testBoard = [16]string{
	"T", "E", "R", "S",
	"A", "C", "H", "X",
	"I", "O", "L", "N",
	"D", "U", "M", "P",
}

func newTestGame(players int) *Game {
	return NewWithBoard(testBoard, players, words.Dict())
}

func TestSubmitWordRejections(t *testing.T) {
	tests := []struct {
		name string
		word string
		err  error
	}{
		{"too short", "AT", ErrTooShort},
		{"digits", "CA7S", ErrLettersOnly},
		{"not in dictionary", "XLNP", ErrNotAWord},
		{"not formable", "MOON", ErrNotOnBoard},
		{"formable and real", "DUMP", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(2)
			err := g.SubmitWord(0, tt.word)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSubmitWordSeatBounds(t *testing.T) {
	g := newTestGame(2)
	assert.ErrorIs(t, g.SubmitWord(-1, "TEACH"), ErrNoSeat)
	assert.ErrorIs(t, g.SubmitWord(2, "TEACH"), ErrNoSeat, "seat claimed after the round started")
	assert.NoError(t, g.SubmitWord(1, "TEACH"))
}

func TestSubmitWordNormalizes(t *testing.T) {
	g := newTestGame(2)
	require.NoError(t, g.SubmitWord(0, "  teach "))
	assert.ErrorIs(t, g.SubmitWord(0, "TEACH"), ErrAlreadySubmitted)
}

func TestCellsUsedAtMostOnce(t *testing.T) {
	// P and A sit next to each other but PAPA needs each of them twice
	board := testBoard
	board[10] = "A"
	g := NewWithBoard(board, 1, words.Dict())
	assert.ErrorIs(t, g.SubmitWord(0, "PAPA"), ErrNotOnBoard)
}

func TestQuConsumesDigraph(t *testing.T) {
	board := [16]string{
		"Q", "I", "T", "S",
		"A", "C", "H", "X",
		"I", "O", "L", "N",
		"D", "U", "M", "P",
	}
	g := NewWithBoard(board, 1, words.Dict())
	assert.NoError(t, g.SubmitWord(0, "QUIT"))
}

func TestUniqueWordScoring(t *testing.T) {
	g := newTestGame(2)
	require.NoError(t, g.SubmitWord(0, "TEACH"))
	require.NoError(t, g.SubmitWord(1, "TEACH"))
	require.NoError(t, g.SubmitWord(1, "REACH"))

	res := g.EndRound()
	assert.Equal(t, []int{0, 2}, res.Scores, "shared TEACH cancels, unique REACH pays")

	require.Len(t, res.Words[0], 1)
	assert.Equal(t, WordEntry{Word: "TEACH", Unique: false, Points: 0}, res.Words[0][0])

	require.Len(t, res.Words[1], 2)
	assert.Equal(t, WordEntry{Word: "REACH", Unique: true, Points: 2}, res.Words[1][0], "unique words sort first")
	assert.Equal(t, WordEntry{Word: "TEACH", Unique: false, Points: 0}, res.Words[1][1])

	assert.Equal(t, 1, g.Winner())
}

func TestWordPoints(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"CAT", 1},
		{"CATS", 1},
		{"TEACH", 2},
		{"LETTER", 3},
		{"LETTERS", 5},
		{"LETTERING", 11},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, wordPoints(tt.word), tt.word)
	}
}

func TestEndRoundIdempotent(t *testing.T) {
	g := newTestGame(2)
	require.NoError(t, g.SubmitWord(0, "REACH"))

	first := g.EndRound()
	second := g.EndRound()
	assert.Same(t, first, second)
	assert.True(t, g.IsGameOver())
	assert.Equal(t, 0, g.TimeLeft())

	assert.ErrorIs(t, g.SubmitWord(0, "TEACH"), ErrRoundOver)
}

func TestTimeUp(t *testing.T) {
	g := newTestGame(1)
	g.start = time.Now().Add(-RoundLength - time.Second)
	assert.ErrorIs(t, g.SubmitWord(0, "TEACH"), ErrTimeUp)
}

func TestWinnerBeforeEnd(t *testing.T) {
	g := newTestGame(2)
	assert.Equal(t, -1, g.Winner())
}

func TestWinnerTieGoesToLowestSeat(t *testing.T) {
	g := newTestGame(2)
	g.EndRound()
	assert.Equal(t, 0, g.Winner())
}

func TestSubmissionCounts(t *testing.T) {
	g := newTestGame(3)
	require.NoError(t, g.SubmitWord(0, "TEACH"))
	require.NoError(t, g.SubmitWord(0, "REACH"))
	require.NoError(t, g.SubmitWord(2, "DUMP"))
	assert.Equal(t, []int{2, 0, 1}, g.SubmissionCounts())
}
