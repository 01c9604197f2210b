package leaderboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopOrdering(t *testing.T) {
	b := New()
	b.RecordWin("chess", "alice")
	b.RecordWin("chess", "alice")
	b.RecordWin("chess", "bob")
	b.RecordWin("boggle", "carol")
	b.RecordWin("boggle", "bob")

	assert.Equal(t, []Entry{
		{Name: "alice", Wins: 2},
		{Name: "bob", Wins: 1},
	}, b.Top("chess", 0))

	// empty game aggregates across families
	assert.Equal(t, []Entry{
		{Name: "alice", Wins: 2},
		{Name: "bob", Wins: 2},
		{Name: "carol", Wins: 1},
	}, b.Top("", 0))
}

func TestTopLimit(t *testing.T) {
	b := New()
	b.RecordWin("bingo", "a")
	b.RecordWin("bingo", "b")
	b.RecordWin("bingo", "c")

	assert.Len(t, b.Top("bingo", 2), 2)
	assert.Len(t, b.Top("bingo", 0), 3, "zero means unlimited")
}

func TestTopEmpty(t *testing.T) {
	b := New()
	assert.Empty(t, b.Top("chess", 10))
	assert.Empty(t, b.Top("", 0))
}

func TestTiesBreakByName(t *testing.T) {
	b := New()
	b.RecordWin("xiangqi", "zed")
	b.RecordWin("xiangqi", "amy")

	top := b.Top("xiangqi", 0)
	assert.Equal(t, "amy", top[0].Name)
	assert.Equal(t, "zed", top[1].Name)
}
