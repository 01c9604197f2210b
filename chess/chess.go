// Package chess implements the Western chess engine: full move legality
// including castling, en passant, promotion, and stalemate detection.
//
// The board is an 8x8 byte grid, row 0 being Black's back rank. Uppercase
// piece codes are White, lowercase Black, 0 is empty.
package chess

import "errors"

const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

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
	return s.Row >= 0 && s.Row < 8 && s.Col >= 0 && s.Col < 8
}

// castling rights indexes
const (
	whiteKingside = iota
	whiteQueenside
	blackKingside
	blackQueenside
)

type position struct {
	board    [8][8]byte
	turn     byte // 'w' or 'b'
	castling [4]bool
	ep       *Square // en passant target, set only right after a double push
	halfmove int
	fullmove int
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

// InCheck reports whether the side to move has its king attacked.
func (g *Game) InCheck() bool {
	return g.attacked(g.kingSquare(g.turn), enemy(g.turn))
}

// Move validates from/to against the side to move and applies it. The
// promotion piece ("q", "r", "b", "n") only matters when a pawn reaches the
// last rank; empty defaults to queen.
func (g *Game) Move(from, to Square, promotion string) error {
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
	g.apply(from, to, promotion)
	if g.attacked(g.kingSquare(saved.turn), enemy(saved.turn)) {
		g.position = saved
		return ErrLeavesCheck
	}
	g.history = append(g.history, saved)
	g.turn = enemy(saved.turn)
	return nil
}

// Undo pops one ply. Returns false when there is nothing to undo.
func (g *Game) Undo() bool {
	if len(g.history) == 0 {
		return false
	}
	g.position = g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	return true
}

// IsGameOver is true when the side to move has no legal move.
func (g *Game) IsGameOver() bool {
	return !g.hasLegalMove()
}

// Winner returns "white" or "black" on checkmate, "draw" on stalemate, and
// "" while the game runs.
func (g *Game) Winner() string {
	if g.hasLegalMove() {
		return ""
	}
	if !g.InCheck() {
		return "draw"
	}
	if g.turn == 'w' {
		return "black"
	}
	return "white"
}

func (g *Game) hasLegalMove() bool {
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := g.board[r][c]
			if p == 0 || colorOf(p) != g.turn {
				continue
			}
			from := Square{r, c}
			for _, to := range g.pseudoMoves(from) {
				saved := g.position
				g.apply(from, to, "")
				safe := !g.attacked(g.kingSquare(saved.turn), enemy(saved.turn))
				g.position = saved
				if safe {
					return true
				}
			}
		}
	}
	return false
}

func (g *Game) kingSquare(color byte) Square {
	king := byte('K')
	if color == 'b' {
		king = 'k'
	}
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if g.board[r][c] == king {
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
