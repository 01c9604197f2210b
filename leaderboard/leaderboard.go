// Package leaderboard keeps in-memory per-game win counts. Nothing is
// persisted: the board vanishes on restart.
package leaderboard

import (
	"sort"
	"sync"
)

// Entry is one row of a top-N aggregation.
type Entry struct {
	Name string `json:"name"`
	Wins int    `json:"wins"`
}

type Board struct {
	mu   sync.Mutex
	wins map[string]map[string]int // game -> name -> wins
}

func New() *Board {
	return &Board{wins: map[string]map[string]int{}}
}

// RecordWin increments a display name's win count for a game family.
func (b *Board) RecordWin(game, name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.wins[game] == nil {
		b.wins[game] = map[string]int{}
	}
	b.wins[game][name]++
}

// Top aggregates the highest win counts, across all families when game is
// empty, sorted by wins descending then name.
func (b *Board) Top(game string, limit int) []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	totals := map[string]int{}
	for g, names := range b.wins {
		if game != "" && g != game {
			continue
		}
		for name, wins := range names {
			totals[name] += wins
		}
	}

	entries := make([]Entry, 0, len(totals))
	for name, wins := range totals {
		entries = append(entries, Entry{Name: name, Wins: wins})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Wins != entries[j].Wins {
			return entries[i].Wins > entries[j].Wins
		}
		return entries[i].Name < entries[j].Name
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
