// Package xiangqi implements the Chinese chess engine: palace confinement,
// river rules, horse-leg blocking, cannon screens, and the flying-general
// check.
//
// The board is a 10x9 byte grid, row 0 being Black's back rank and row 9
// Red's. Uppercase piece codes are Red ('w' to move first), lowercase Black.
package xiangqi

import "errors"

const InitialFEN = "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w"

var (
	ErrNoPiece      = errors.New("No piece at source")
	ErrNotYourPiece = errors.New("Not your piece")
	ErrIllegalMove  = errors.New("Illegal move")
	ErrLeavesCheck  = errors.New("Move leaves king in check")
)

type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func onBoard(s Square) bool {
	return s.Row >= 0 && s.Row < 10 && s.Col >= 0 && s.Col < 9
}

// inPalace confines generals and advisors to the 3x3 palace of their side.
func inPalace(s Square, color byte) bool {
	if s.Col < 3 || s.Col > 5 {
		return false
	}
	if color == 'w' {
		return s.Row >= 7 && s.Row <= 9
	}
	return s.Row >= 0 && s.Row <= 2
}

// ownHalf keeps elephants on their side of the river.
func ownHalf(s Square, color byte) bool {
	if color == 'w' {
		return s.Row >= 5
	}
	return s.Row <= 4
}

// crossedRiver unlocks the pawn's sideways step.
func crossedRiver(s Square, color byte) bool {
	if color == 'w' {
		return s.Row <= 4
	}
	return s.Row >= 5
}

type position struct {
	board [10][9]byte
	turn  byte // 'w' = red, 'b' = black
}

type Game struct {
	position
	history []position
}

func New() *Game {
	g, err := NewFromFEN(InitialFEN)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Game) Turn() string { return string(g.turn) }

// InCheck reports whether the side to move is in check, including the
// flying-generals condition.
func (g *Game) InCheck() bool {
	return g.inCheck(g.turn)
}

func (g *Game) Move(from, to Square) error {
	if !onBoard(from) || !onBoard(to) {
		return ErrIllegalMove
	}
	p := g.board[from.Row][from.Col]
	if p == 0 {
		return ErrNoPiece
	}
	if colorOf(p) != g.turn {
		return ErrNotYourPiece
	}
	if !squareIn(g.pseudoMoves(from), to) {
		return ErrIllegalMove
	}

	saved := g.position
	g.board[to.Row][to.Col] = p
	g.board[from.Row][from.Col] = 0
	if g.inCheck(saved.turn) {
		g.position = saved
		return ErrLeavesCheck
	}
	g.history = append(g.history, saved)
	g.turn = enemy(saved.turn)
	return nil
}

// Undo pops one ply.
func (g *Game) Undo() bool {
	if len(g.history) == 0 {
		return false
	}
	g.position = g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	return true
}

// IsGameOver is true when the side to move has no legal move. Xiangqi has
// no draw by stalemate: the stalemated side loses.
func (g *Game) IsGameOver() bool {
	return !g.hasLegalMove()
}

// Winner returns "red" or "black" once the game is over, "" before that.
func (g *Game) Winner() string {
	if g.hasLegalMove() {
		return ""
	}
	if g.turn == 'w' {
		return "black"
	}
	return "red"
}

func (g *Game) hasLegalMove() bool {
	for r := 0; r < 10; r++ {
		for c := 0; c < 9; c++ {
			p := g.board[r][c]
			if p == 0 || colorOf(p) != g.turn {
				continue
			}
			from := Square{r, c}
			for _, to := range g.pseudoMoves(from) {
				saved := g.position
				g.board[to.Row][to.Col] = p
				g.board[from.Row][from.Col] = 0
				safe := !g.inCheck(saved.turn)
				g.position = saved
				if safe {
					return true
				}
			}
		}
	}
	return false
}

// inCheck is true when color's general is attacked or the two generals
// face each other on an open column.
func (g *Game) inCheck(color byte) bool {
	kingSq := g.generalSquare(color)
	if g.generalsFacing() {
		return true
	}
	for r := 0; r < 10; r++ {
		for c := 0; c < 9; c++ {
			p := g.board[r][c]
			if p == 0 || colorOf(p) == color {
				continue
			}
			if squareIn(g.pseudoMoves(Square{r, c}), kingSq) {
				return true
			}
		}
	}
	return false
}

func (g *Game) generalsFacing() bool {
	red := g.generalSquare('w')
	black := g.generalSquare('b')
	if red.Col != black.Col {
		return false
	}
	for r := black.Row + 1; r < red.Row; r++ {
		if g.board[r][red.Col] != 0 {
			return false
		}
	}
	return true
}

func (g *Game) generalSquare(color byte) Square {
	general := byte('K')
	if color == 'b' {
		general = 'k'
	}
	for r := 0; r < 10; r++ {
		for c := 0; c < 9; c++ {
			if g.board[r][c] == general {
				return Square{r, c}
			}
		}
	}
	return Square{-1, -1}
}

func colorOf(p byte) byte {
	if p >= 'A' && p <= 'Z' {
		return 'w'
	}
	return 'b'
}

func enemy(color byte) byte {
	if color == 'w' {
		return 'b'
	}
	return 'w'
}

func squareIn(list []Square, s Square) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
