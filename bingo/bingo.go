// Package bingo implements the caller-driven lottery game: per-seat 5x5
// cards with column-ranged numbers, a shuffled 1..75 pool, and win-pattern
// detection for rows, columns, diagonals, and the full house.
package bingo

import (
	"errors"
	"fmt"
	"math/rand"
)

const (
	MinPlayers = 2
	MaxPlayers = 8

	poolSize   = 75
	columnSpan = 15
	gridSize   = 5
	freeRow    = 2
	freeCol    = 2

	// FreeSquare marks the pre-marked center cell.
	FreeSquare = 0
)

var (
	ErrGameOver  = errors.New("Game over")
	ErrNotCaller = errors.New("Only the caller can draw")
	ErrPoolEmpty = errors.New("No numbers left")
)

// Winner records a seat and every pattern it satisfied when it won.
type Winner struct {
	Seat  int      `json:"seat"`
	Types []string `json:"types"`
}

type Game struct {
	players int
	pool    []int // remaining numbers, pre-shuffled
	called  []int
	cards   [][gridSize][gridSize]int
	marked  [][gridSize][gridSize]bool
	over    bool
	winners []Winner
}

// New generates a card per seat and shuffles the pool. Seat 0 is the
// caller and plays a card like everybody else.
func New(players int, rng *rand.Rand) (*Game, error) {
	if players < MinPlayers || players > MaxPlayers {
		return nil, fmt.Errorf("bingo: want %d-%d players, got %d", MinPlayers, MaxPlayers, players)
	}
	g := &Game{
		players: players,
		pool:    rng.Perm(poolSize),
		cards:   make([][gridSize][gridSize]int, players),
		marked:  make([][gridSize][gridSize]bool, players),
	}
	for i := range g.pool {
		g.pool[i]++ // numbers run 1..75
	}
	for seat := 0; seat < players; seat++ {
		g.cards[seat] = makeCard(rng)
		g.marked[seat][freeRow][freeCol] = true
	}
	return g, nil
}

// makeCard draws five distinct numbers per column from disjoint ranges:
// B 1-15, I 16-30, N 31-45, G 46-60, O 61-75. The center is FREE.
func makeCard(rng *rand.Rand) [gridSize][gridSize]int {
	var card [gridSize][gridSize]int
	for col := 0; col < gridSize; col++ {
		picks := rng.Perm(columnSpan)[:gridSize]
		for row := 0; row < gridSize; row++ {
			card[row][col] = col*columnSpan + picks[row] + 1
		}
	}
	card[freeRow][freeCol] = FreeSquare
	return card
}

func (g *Game) PlayerCount() int { return g.players }

func (g *Game) IsGameOver() bool { return g.over }

func (g *Game) Called() []int { return append([]int(nil), g.called...) }

// LastCalled returns the most recent number, 0 before any call.
func (g *Game) LastCalled() int {
	if len(g.called) == 0 {
		return 0
	}
	return g.called[len(g.called)-1]
}

func (g *Game) Winners() []Winner { return append([]Winner(nil), g.winners...) }

// Cards exposes every card; bingo has no private state.
func (g *Game) Cards() [][gridSize][gridSize]int {
	return append([][gridSize][gridSize]int(nil), g.cards...)
}

func (g *Game) Marked() [][gridSize][gridSize]bool {
	return append([][gridSize][gridSize]bool(nil), g.marked...)
}

// CallNumber draws the next number for the caller seat, marks every card,
// and ends the game when any seat newly completes a pattern. Seats that
// complete on the same call all make the winners list.
func (g *Game) CallNumber(seat int) (int, error) {
	if seat != 0 {
		return 0, ErrNotCaller
	}
	if g.over {
		return 0, ErrGameOver
	}
	if len(g.pool) == 0 {
		return 0, ErrPoolEmpty
	}

	n := g.pool[0]
	g.pool = g.pool[1:]
	g.called = append(g.called, n)

	for s := 0; s < g.players; s++ {
		for row := 0; row < gridSize; row++ {
			for col := 0; col < gridSize; col++ {
				if g.cards[s][row][col] == n {
					g.marked[s][row][col] = true
				}
			}
		}
	}

	for s := 0; s < g.players; s++ {
		if types := g.patternsFor(s); len(types) > 0 {
			g.winners = append(g.winners, Winner{Seat: s, Types: types})
		}
	}
	if len(g.winners) > 0 {
		g.over = true
	}
	return n, nil
}

// patternsFor lists every satisfied pattern on a seat's card.
func (g *Game) patternsFor(seat int) []string {
	m := &g.marked[seat]
	var types []string

	for row := 0; row < gridSize; row++ {
		if m[row][0] && m[row][1] && m[row][2] && m[row][3] && m[row][4] {
			types = append(types, "row")
			break
		}
	}
	for col := 0; col < gridSize; col++ {
		if m[0][col] && m[1][col] && m[2][col] && m[3][col] && m[4][col] {
			types = append(types, "column")
			break
		}
	}
	diag1, diag2, full := true, true, true
	for i := 0; i < gridSize; i++ {
		diag1 = diag1 && m[i][i]
		diag2 = diag2 && m[i][gridSize-1-i]
		for j := 0; j < gridSize; j++ {
			full = full && m[i][j]
		}
	}
	if diag1 || diag2 {
		types = append(types, "diagonal")
	}
	if full {
		types = append(types, "fullhouse")
	}
	return types
}
