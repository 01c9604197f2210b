package bigtwo

import (
	"sort"

	"github.com/regardlessly/multiplayer-games/cards"
)

// ComboType orders combos so that among five-card combos a higher type
// beats any lower type.
type ComboType int

const (
	ComboNone ComboType = iota
	ComboSingle
	ComboPair
	ComboTriple
	ComboStraight
	ComboFlush
	ComboFullHouse
	ComboQuads
	ComboStraightFlush
)

var comboNames = map[ComboType]string{
	ComboSingle:        "single",
	ComboPair:          "pair",
	ComboTriple:        "triple",
	ComboStraight:      "straight",
	ComboFlush:         "flush",
	ComboFullHouse:     "fullhouse",
	ComboQuads:         "quads",
	ComboStraightFlush: "straightflush",
}

func (t ComboType) String() string { return comboNames[t] }

func (t ComboType) fiveCard() bool { return t >= ComboStraight }

// classify names the combo formed by ids, or ComboNone when the cards form
// no legal combo (wrong count, mixed ranks, broken five-card shape).
func classify(ids []int) ComboType {
	sorted := append([]int(nil), ids...)
	sort.Ints(sorted)

	switch len(sorted) {
	case 1:
		return ComboSingle
	case 2:
		if cards.Rank(sorted[0]) == cards.Rank(sorted[1]) {
			return ComboPair
		}
	case 3:
		if cards.Rank(sorted[0]) == cards.Rank(sorted[1]) && cards.Rank(sorted[1]) == cards.Rank(sorted[2]) {
			return ComboTriple
		}
	case 5:
		return classifyFive(sorted)
	}
	return ComboNone
}

func classifyFive(sorted []int) ComboType {
	straight := isStraight(sorted)
	flush := isFlush(sorted)

	switch {
	case straight && flush:
		return ComboStraightFlush
	case rankCounts(sorted, 4, 1):
		return ComboQuads
	case rankCounts(sorted, 3, 2):
		return ComboFullHouse
	case flush:
		return ComboFlush
	case straight:
		return ComboStraight
	}
	return ComboNone
}

// isStraight wants five consecutive ranks in the 3..2 ordering, no wrap.
func isStraight(sorted []int) bool {
	for i := 1; i < 5; i++ {
		if cards.Rank(sorted[i]) != cards.Rank(sorted[i-1])+1 {
			return false
		}
	}
	return true
}

func isFlush(sorted []int) bool {
	for i := 1; i < 5; i++ {
		if cards.Suit(sorted[i]) != cards.Suit(sorted[0]) {
			return false
		}
	}
	return true
}

// rankCounts reports whether the rank multiplicities are exactly {a, b}.
func rankCounts(sorted []int, a, b int) bool {
	counts := map[int]int{}
	for _, id := range sorted {
		counts[cards.Rank(id)]++
	}
	if len(counts) != 2 {
		return false
	}
	for _, n := range counts {
		if n != a && n != b {
			return false
		}
	}
	return true
}

// comboKey is the tie-break between combos of the same type: the highest
// card's total id (rank*4 + suit).
func comboKey(ids []int) int {
	key := -1
	for _, id := range ids {
		if id > key {
			key = id
		}
	}
	return key
}

// beats reports whether the incoming combo takes the table combo.
func beats(inType ComboType, in []int, tableType ComboType, table []int) bool {
	if inType.fiveCard() && tableType.fiveCard() {
		if inType != tableType {
			return inType > tableType
		}
		return comboKey(in) > comboKey(table)
	}
	if inType != tableType {
		return false
	}
	return comboKey(in) > comboKey(table)
}
