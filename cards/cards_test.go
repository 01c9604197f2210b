package cards

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankSuitName(t *testing.T) {
	tests := []struct {
		id   int
		rank int
		suit int
		name string
	}{
		{0, 0, 0, "3D"},
		{1, 0, 1, "3C"},
		{2, 0, 2, "3H"},
		{3, 0, 3, "3S"},
		{28, 7, 0, "10D"},
		{38, 9, 2, "QH"},
		{47, 11, 3, "AS"},
		{51, 12, 3, "2S"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.rank, Rank(tt.id))
		assert.Equal(t, tt.suit, Suit(tt.id))
		assert.Equal(t, tt.name, Name(tt.id))
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(0))
	assert.True(t, Valid(51))
	assert.False(t, Valid(-1))
	assert.False(t, Valid(52))
	assert.Equal(t, "?", Name(99))
}

func TestShuffledIsPermutation(t *testing.T) {
	deck := Shuffled(rand.New(rand.NewSource(1)))
	require.Len(t, deck, DeckSize)

	sorted := append([]int(nil), deck...)
	sort.Ints(sorted)
	for i, id := range sorted {
		assert.Equal(t, i, id)
	}
}

func TestDealPartitionsDeck(t *testing.T) {
	hands := Deal(rand.New(rand.NewSource(2)))

	seen := map[int]bool{}
	for _, hand := range hands {
		require.Len(t, hand, DeckSize/4)
		assert.True(t, sort.IntsAreSorted(hand))
		for _, id := range hand {
			require.True(t, Valid(id))
			require.False(t, seen[id], "card %d dealt twice", id)
			seen[id] = true
		}
	}
	assert.Len(t, seen, DeckSize)
}
