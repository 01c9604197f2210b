// Package cards holds the 52-card deck primitives shared by the card games.
//
// A card is a stable integer id 0..51 with id = rank*4 + suit. Ranks run
// 3,4,5,6,7,8,9,10,J,Q,K,A,2 (3 lowest, 2 highest) and suits run
// Diamonds, Clubs, Hearts, Spades (Diamonds lowest), so card 0 is the
// three of diamonds and the id itself is a total ordering.
package cards

import (
	"math/rand"
	"sort"
)

const DeckSize = 52

var rankNames = [13]string{"3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A", "2"}

var suitNames = [4]string{"D", "C", "H", "S"}

// Rank returns the rank index 0..12 of a card id (0 = rank 3, 12 = rank 2).
func Rank(id int) int { return id / 4 }

// Suit returns the suit index 0..3 of a card id (0 = diamonds, 3 = spades).
func Suit(id int) int { return id % 4 }

// Valid reports whether id names a card.
func Valid(id int) bool { return id >= 0 && id < DeckSize }

// Name renders a card id like "3D" or "QS".
func Name(id int) string {
	if !Valid(id) {
		return "?"
	}
	return rankNames[Rank(id)] + suitNames[Suit(id)]
}

// Shuffled returns the ids 0..51 in a random order drawn from rng.
func Shuffled(rng *rand.Rand) []int {
	deck := make([]int, DeckSize)
	for i := range deck {
		deck[i] = i
	}
	rng.Shuffle(DeckSize, func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

// Deal shuffles a deck and splits it into four 13-card hands, seat i
// taking every fourth card starting at offset i. Hands come back sorted
// ascending by id.
func Deal(rng *rand.Rand) [4][]int {
	deck := Shuffled(rng)
	var hands [4][]int
	for i := 0; i < 4; i++ {
		hand := make([]int, 0, DeckSize/4)
		for j := i; j < DeckSize; j += 4 {
			hand = append(hand, deck[j])
		}
		sort.Ints(hand)
		hands[i] = hand
	}
	return hands
}
