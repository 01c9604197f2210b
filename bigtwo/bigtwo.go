// Package bigtwo implements the Big Two ("chordaidi") engine: a four-player
// shedding game where combos must beat the table and the holder of the
// three of diamonds leads.
package bigtwo

import (
	"errors"
	"math/rand"
	"sort"

	"github.com/regardlessly/multiplayer-games/cards"
)

var (
	ErrGameOver      = errors.New("Game over")
	ErrNotYourTurn   = errors.New("Not your turn")
	ErrCardNotInHand = errors.New("Card not in hand")
	ErrInvalidCombo  = errors.New("Invalid combination")
	ErrFirstPlay     = errors.New("First play must include 3♦")
	ErrDoesNotBeat   = errors.New("Does not beat the table")
	ErrEmptyPass     = errors.New("Cannot pass on an empty table")
	ErrOwnerPass     = errors.New("You own the table — play or wait")
)

type Game struct {
	hands      [4][]int
	current    int
	tableType  ComboType
	tableCards []int
	tableOwner int // -1 when nobody owns the table
	passCount  int
	firstPlay  bool
	winner     int // -1 until somebody sheds their last card
}

// New deals four hands from rng and gives the lead to the holder of card 0
// (the three of diamonds).
func New(rng *rand.Rand) *Game {
	g := &Game{
		hands:      cards.Deal(rng),
		tableOwner: -1,
		firstPlay:  true,
		winner:     -1,
	}
	for seat, hand := range g.hands {
		for _, id := range hand {
			if id == 0 {
				g.current = seat
			}
		}
	}
	return g
}

func (g *Game) Turn() int { return g.current }

func (g *Game) IsGameOver() bool { return g.winner >= 0 }

// Winner returns the winning seat, or -1 while the game runs.
func (g *Game) Winner() int { return g.winner }

// HandOf returns a copy of a seat's hand. Reconnecting clients get their
// exact hand back through this.
func (g *Game) HandOf(seat int) []int {
	if seat < 0 || seat > 3 {
		return nil
	}
	return append([]int(nil), g.hands[seat]...)
}

// HandCounts returns the public per-seat hand sizes.
func (g *Game) HandCounts() [4]int {
	var counts [4]int
	for i, h := range g.hands {
		counts[i] = len(h)
	}
	return counts
}

// Play validates and applies a combo from seat. The error message, when
// non-nil, is the client-facing rejection reason.
func (g *Game) Play(seat int, ids []int) error {
	if g.IsGameOver() {
		return ErrGameOver
	}
	if seat != g.current {
		return ErrNotYourTurn
	}
	if !g.holdsAll(seat, ids) {
		return ErrCardNotInHand
	}
	comboType := classify(ids)
	if comboType == ComboNone {
		return ErrInvalidCombo
	}
	if g.firstPlay && !containsID(ids, 0) {
		return ErrFirstPlay
	}
	if g.tableType != ComboNone && !beats(comboType, ids, g.tableType, g.tableCards) {
		return ErrDoesNotBeat
	}

	g.removeFromHand(seat, ids)
	played := append([]int(nil), ids...)
	sort.Ints(played)
	g.tableType = comboType
	g.tableCards = played
	g.tableOwner = seat
	g.passCount = 0
	g.firstPlay = false

	if len(g.hands[seat]) == 0 {
		g.winner = seat
		return nil
	}
	g.current = (g.current + 1) % 4
	return nil
}

// Pass skips seat's turn. Three passes against the table owner clear the
// table and return the lead to that owner.
func (g *Game) Pass(seat int) error {
	if g.IsGameOver() {
		return ErrGameOver
	}
	if seat != g.current {
		return ErrNotYourTurn
	}
	if g.tableType == ComboNone {
		return ErrEmptyPass
	}
	if seat == g.tableOwner {
		return ErrOwnerPass
	}

	g.passCount++
	if g.passCount >= 3 {
		g.current = g.tableOwner
		g.tableType = ComboNone
		g.tableCards = nil
		g.tableOwner = -1
		g.passCount = 0
		return nil
	}
	g.current = (g.current + 1) % 4
	return nil
}

// StateFor builds the personalized snapshot for one seat. Only that seat's
// hand appears as card ids; everybody else is a count. Pass seat -1 for a
// spectator view with no hand at all.
func (g *Game) StateFor(seat int) map[string]interface{} {
	counts := g.HandCounts()
	var tableCombo map[string]interface{}
	if g.tableType != ComboNone {
		tableCombo = map[string]interface{}{
			"type":    g.tableType.String(),
			"cardIds": append([]int(nil), g.tableCards...),
		}
	}
	var winner interface{}
	if g.winner >= 0 {
		winner = g.winner
	}
	var tableOwner interface{}
	if g.tableOwner >= 0 {
		tableOwner = g.tableOwner
	}

	state := map[string]interface{}{
		"gameType":    "chordaidi",
		"handCounts":  counts[:],
		"currentSeat": g.current,
		"tableCombo":  tableCombo,
		"tableOwner":  tableOwner,
		"passCount":   g.passCount,
		"isGameOver":  g.IsGameOver(),
		"winner":      winner,
	}
	if seat >= 0 && seat <= 3 {
		state["myHand"] = g.HandOf(seat)
	}
	return state
}

func (g *Game) holdsAll(seat int, ids []int) bool {
	if len(ids) == 0 {
		return false
	}
	seen := map[int]bool{}
	for _, id := range ids {
		if !cards.Valid(id) || seen[id] || !containsID(g.hands[seat], id) {
			return false
		}
		seen[id] = true
	}
	return true
}

func (g *Game) removeFromHand(seat int, ids []int) {
	hand := g.hands[seat][:0]
	for _, id := range g.hands[seat] {
		if !containsID(ids, id) {
			hand = append(hand, id)
		}
	}
	g.hands[seat] = hand
}

func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
