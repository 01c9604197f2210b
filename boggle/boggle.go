// Package boggle implements the concurrent word game: a shared 4x4 dice
// board, per-seat submissions validated against a dictionary and a board
// path, and unique-word scoring where duplicates across seats cancel.
package boggle

import (
	"errors"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/regardlessly/multiplayer-games/trie"
)

// RoundLength is the fixed play window.
const RoundLength = 180 * time.Second

const minWordLength = 3

var (
	ErrRoundOver        = errors.New("Round is over")
	ErrTimeUp           = errors.New("Time is up")
	ErrNoSeat           = errors.New("No seat in this round")
	ErrTooShort         = errors.New("Words must be at least 3 letters")
	ErrLettersOnly      = errors.New("Letters only")
	ErrAlreadySubmitted = errors.New("Already submitted")
	ErrNotAWord         = errors.New("Not a valid word")
	ErrNotOnBoard       = errors.New("Cannot be formed on the board")
)

// WordEntry annotates one submitted word in the final results.
type WordEntry struct {
	Word   string `json:"word"`
	Unique bool   `json:"unique"`
	Points int    `json:"points"`
}

// Results is the outcome of a finished round.
type Results struct {
	Scores []int         `json:"scores"`
	Words  [][]WordEntry `json:"words"`
}

type Game struct {
	board       [16]string // single letters; "Q" represents QU
	playerCount int
	dict        *trie.Trie
	start       time.Time
	submissions []map[string]bool
	results     *Results // non-nil once the round has ended
}

// New rolls a fresh board for playerCount seats.
func New(playerCount int, dict *trie.Trie, rng *rand.Rand) *Game {
	return newGame(rollBoard(rng), playerCount, dict)
}

// NewWithBoard builds a game over a fixed board, used by tests and replays.
func NewWithBoard(board [16]string, playerCount int, dict *trie.Trie) *Game {
	return newGame(board, playerCount, dict)
}

func newGame(board [16]string, playerCount int, dict *trie.Trie) *Game {
	g := &Game{
		board:       board,
		playerCount: playerCount,
		dict:        dict,
		start:       time.Now(),
		submissions: make([]map[string]bool, playerCount),
	}
	for i := range g.submissions {
		g.submissions[i] = map[string]bool{}
	}
	return g
}

func (g *Game) Board() []string {
	return append([]string(nil), g.board[:]...)
}

func (g *Game) PlayerCount() int { return g.playerCount }

func (g *Game) IsGameOver() bool { return g.results != nil }

// TimeLeft returns the whole seconds remaining in the round.
func (g *Game) TimeLeft() int {
	if g.results != nil {
		return 0
	}
	left := RoundLength - time.Since(g.start)
	if left < 0 {
		return 0
	}
	return int(left / time.Second)
}

// SubmissionCounts exposes per-seat accepted word counts without revealing
// the words themselves.
func (g *Game) SubmissionCounts() []int {
	counts := make([]int, g.playerCount)
	for i, set := range g.submissions {
		counts[i] = len(set)
	}
	return counts
}

// SubmitWord validates a word for one seat and records it. The error
// message is the client-facing rejection reason.
func (g *Game) SubmitWord(seat int, word string) error {
	if g.results != nil {
		return ErrRoundOver
	}
	if time.Since(g.start) > RoundLength {
		return ErrTimeUp
	}
	if seat < 0 || seat >= g.playerCount {
		return ErrNoSeat
	}
	word = strings.ToUpper(strings.TrimSpace(word))
	if len(word) < minWordLength {
		return ErrTooShort
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'A' || word[i] > 'Z' {
			return ErrLettersOnly
		}
	}
	if g.submissions[seat][word] {
		return ErrAlreadySubmitted
	}
	if !g.dict.Has(word) {
		return ErrNotAWord
	}
	if !g.formable(word) {
		return ErrNotOnBoard
	}
	g.submissions[seat][word] = true
	return nil
}

// EndRound scores the round and is idempotent: repeated calls return the
// same Results value.
func (g *Game) EndRound() *Results {
	if g.results != nil {
		return g.results
	}

	submitters := map[string][]int{}
	for seat, set := range g.submissions {
		for word := range set {
			submitters[word] = append(submitters[word], seat)
		}
	}

	res := &Results{
		Scores: make([]int, g.playerCount),
		Words:  make([][]WordEntry, g.playerCount),
	}
	for seat, set := range g.submissions {
		for word := range set {
			unique := len(submitters[word]) == 1
			points := 0
			if unique {
				points = wordPoints(word)
				res.Scores[seat] += points
			}
			res.Words[seat] = append(res.Words[seat], WordEntry{Word: word, Unique: unique, Points: points})
		}
		sort.Slice(res.Words[seat], func(i, j int) bool {
			a, b := res.Words[seat][i], res.Words[seat][j]
			if a.Unique != b.Unique {
				return a.Unique
			}
			return a.Word < b.Word
		})
	}
	g.results = res
	return res
}

// Winner returns the seat with the highest final score, lowest seat on
// ties, or -1 while the round is still running.
func (g *Game) Winner() int {
	if g.results == nil {
		return -1
	}
	best := 0
	for seat, score := range g.results.Scores {
		if score > g.results.Scores[best] {
			best = seat
		}
	}
	return best
}

func wordPoints(word string) int {
	switch len(word) {
	case 3, 4:
		return 1
	case 5:
		return 2
	case 6:
		return 3
	case 7:
		return 5
	default:
		return 11
	}
}

// formable runs a DFS over the grid: each step consumes the next face
// whose letter prefixes the remaining suffix, faces used at most once. The
// face letter Q consumes the "QU" digraph.
func (g *Game) formable(word string) bool {
	var used [16]bool
	for i := 0; i < 16; i++ {
		if g.search(word, i, &used) {
			return true
		}
	}
	return false
}

func (g *Game) search(suffix string, cell int, used *[16]bool) bool {
	face := g.board[cell]
	consume := len(face)
	if face == "Q" {
		if !strings.HasPrefix(suffix, "QU") {
			return false
		}
		consume = 2
	} else if !strings.HasPrefix(suffix, face) {
		return false
	}
	rest := suffix[consume:]
	if rest == "" {
		return true
	}

	used[cell] = true
	for _, adj := range neighbors(cell) {
		if !used[adj] && g.search(rest, adj, used) {
			return true
		}
	}
	used[cell] = false
	return false
}

// neighbors lists the face-adjacent cells of a flat 4x4 index.
func neighbors(cell int) []int {
	row, col := cell/4, cell%4
	var adj []int
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if r >= 0 && r < 4 && c >= 0 && c < 4 {
				adj = append(adj, r*4+c)
			}
		}
	}
	return adj
}
