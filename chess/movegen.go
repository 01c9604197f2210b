package chess

var (
	knightJumps = []Square{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingSteps   = []Square{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	rookRays    = []Square{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	bishopRays  = []Square{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// pseudoMoves lists destinations for the piece on from without considering
// whether the mover's king ends up attacked. Castling destinations are only
// generated when rights, empty path, and the no-cross-check rule all hold.
func (g *Game) pseudoMoves(from Square) []Square {
	p := g.board[from.Row][from.Col]
	if p == 0 {
		return nil
	}
	switch p {
	case 'P', 'p':
		return g.pawnMoves(from)
	case 'N', 'n':
		return g.stepMoves(from, knightJumps)
	case 'B', 'b':
		return g.slideMoves(from, bishopRays)
	case 'R', 'r':
		return g.slideMoves(from, rookRays)
	case 'Q', 'q':
		return append(g.slideMoves(from, rookRays), g.slideMoves(from, bishopRays)...)
	case 'K', 'k':
		return append(g.stepMoves(from, kingSteps), g.castleMoves(from)...)
	}
	return nil
}

func (g *Game) stepMoves(from Square, steps []Square) []Square {
	color := colorOf(g.board[from.Row][from.Col])
	var moves []Square
	for _, d := range steps {
		to := Square{from.Row + d.Row, from.Col + d.Col}
		if !onBoard(to) {
			continue
		}
		if t := g.board[to.Row][to.Col]; t != 0 && colorOf(t) == color {
			continue
		}
		moves = append(moves, to)
	}
	return moves
}

func (g *Game) slideMoves(from Square, rays []Square) []Square {
	color := colorOf(g.board[from.Row][from.Col])
	var moves []Square
	for _, d := range rays {
		to := Square{from.Row + d.Row, from.Col + d.Col}
		for onBoard(to) {
			t := g.board[to.Row][to.Col]
			if t == 0 {
				moves = append(moves, to)
				to = Square{to.Row + d.Row, to.Col + d.Col}
				continue
			}
			if colorOf(t) != color {
				moves = append(moves, to)
			}
			break
		}
	}
	return moves
}

func (g *Game) pawnMoves(from Square) []Square {
	p := g.board[from.Row][from.Col]
	dir, start := -1, 6 // white pushes toward row 0
	if p == 'p' {
		dir, start = 1, 1
	}
	color := colorOf(p)

	var moves []Square
	one := Square{from.Row + dir, from.Col}
	if onBoard(one) && g.board[one.Row][one.Col] == 0 {
		moves = append(moves, one)
		two := Square{from.Row + 2*dir, from.Col}
		if from.Row == start && g.board[two.Row][two.Col] == 0 {
			moves = append(moves, two)
		}
	}
	for _, dc := range []int{-1, 1} {
		to := Square{from.Row + dir, from.Col + dc}
		if !onBoard(to) {
			continue
		}
		t := g.board[to.Row][to.Col]
		if t != 0 && colorOf(t) != color {
			moves = append(moves, to)
		} else if t == 0 && g.ep != nil && *g.ep == to {
			moves = append(moves, to)
		}
	}
	return moves
}

func (g *Game) castleMoves(from Square) []Square {
	p := g.board[from.Row][from.Col]
	var moves []Square
	if p == 'K' && from == (Square{7, 4}) {
		if g.castling[whiteKingside] && g.castlePathOK(7, []int{5, 6}, 'b') {
			moves = append(moves, Square{7, 6})
		}
		if g.castling[whiteQueenside] && g.board[7][1] == 0 && g.castlePathOK(7, []int{3, 2}, 'b') {
			moves = append(moves, Square{7, 2})
		}
	}
	if p == 'k' && from == (Square{0, 4}) {
		if g.castling[blackKingside] && g.castlePathOK(0, []int{5, 6}, 'w') {
			moves = append(moves, Square{0, 6})
		}
		if g.castling[blackQueenside] && g.board[0][1] == 0 && g.castlePathOK(0, []int{3, 2}, 'w') {
			moves = append(moves, Square{0, 2})
		}
	}
	return moves
}

// castlePathOK checks the king's transit squares: empty and not attacked,
// with the origin also free of check.
func (g *Game) castlePathOK(row int, cols []int, by byte) bool {
	for _, c := range cols {
		if g.board[row][c] != 0 {
			return false
		}
	}
	if g.attacked(Square{row, 4}, by) {
		return false
	}
	for _, c := range cols {
		if g.attacked(Square{row, c}, by) {
			return false
		}
	}
	return true
}

// attacked reports whether sq is attacked by any piece of color by.
func (g *Game) attacked(sq Square, by byte) bool {
	if !onBoard(sq) {
		return false
	}
	pick := func(p byte) byte {
		if by == 'w' {
			return p
		}
		return p + ('a' - 'A')
	}

	// pawns attack diagonally toward the enemy side
	pawnRow := sq.Row + 1
	if by == 'b' {
		pawnRow = sq.Row - 1
	}
	for _, dc := range []int{-1, 1} {
		s := Square{pawnRow, sq.Col + dc}
		if onBoard(s) && g.board[s.Row][s.Col] == pick('P') {
			return true
		}
	}

	for _, d := range knightJumps {
		s := Square{sq.Row + d.Row, sq.Col + d.Col}
		if onBoard(s) && g.board[s.Row][s.Col] == pick('N') {
			return true
		}
	}
	for _, d := range kingSteps {
		s := Square{sq.Row + d.Row, sq.Col + d.Col}
		if onBoard(s) && g.board[s.Row][s.Col] == pick('K') {
			return true
		}
	}

	for _, d := range rookRays {
		if p := g.firstAlong(sq, d); p == pick('R') || p == pick('Q') {
			return true
		}
	}
	for _, d := range bishopRays {
		if p := g.firstAlong(sq, d); p == pick('B') || p == pick('Q') {
			return true
		}
	}
	return false
}

// firstAlong returns the first piece met walking from sq in direction d.
func (g *Game) firstAlong(sq Square, d Square) byte {
	s := Square{sq.Row + d.Row, sq.Col + d.Col}
	for onBoard(s) {
		if p := g.board[s.Row][s.Col]; p != 0 {
			return p
		}
		s = Square{s.Row + d.Row, s.Col + d.Col}
	}
	return 0
}

// apply mutates the position for a pseudo-legal move. Castling rook hops,
// en passant removal, promotion, rights and clock maintenance all happen
// here; the caller flips the turn.
func (g *Game) apply(from, to Square, promotion string) {
	p := g.board[from.Row][from.Col]
	captured := g.board[to.Row][to.Col]

	g.board[to.Row][to.Col] = p
	g.board[from.Row][from.Col] = 0

	var newEP *Square

	switch p {
	case 'K':
		if from == (Square{7, 4}) && to == (Square{7, 6}) {
			g.board[7][5], g.board[7][7] = g.board[7][7], 0
		}
		if from == (Square{7, 4}) && to == (Square{7, 2}) {
			g.board[7][3], g.board[7][0] = g.board[7][0], 0
		}
		g.castling[whiteKingside], g.castling[whiteQueenside] = false, false
	case 'k':
		if from == (Square{0, 4}) && to == (Square{0, 6}) {
			g.board[0][5], g.board[0][7] = g.board[0][7], 0
		}
		if from == (Square{0, 4}) && to == (Square{0, 2}) {
			g.board[0][3], g.board[0][0] = g.board[0][0], 0
		}
		g.castling[blackKingside], g.castling[blackQueenside] = false, false
	case 'P', 'p':
		if to.Row-from.Row == -2 {
			newEP = &Square{from.Row - 1, from.Col}
		}
		if to.Row-from.Row == 2 {
			newEP = &Square{from.Row + 1, from.Col}
		}
		if captured == 0 && g.ep != nil && *g.ep == to && from.Col != to.Col {
			g.board[from.Row][to.Col] = 0
			captured = 'x' // counts as a capture for the halfmove clock
		}
		if to.Row == 0 || to.Row == 7 {
			g.board[to.Row][to.Col] = promotionPiece(p, promotion)
		}
	}

	// a rook leaving or being captured on its home square drops that right
	for _, h := range []struct {
		sq    Square
		right int
	}{
		{Square{7, 7}, whiteKingside}, {Square{7, 0}, whiteQueenside},
		{Square{0, 7}, blackKingside}, {Square{0, 0}, blackQueenside},
	} {
		if from == h.sq || to == h.sq {
			g.castling[h.right] = false
		}
	}

	if p == 'P' || p == 'p' || captured != 0 {
		g.halfmove = 0
	} else {
		g.halfmove++
	}
	if g.turn == 'b' {
		g.fullmove++
	}
	g.ep = newEP
}

func promotionPiece(pawn byte, promotion string) byte {
	piece := byte('Q')
	if len(promotion) > 0 {
		switch promotion[0] {
		case 'r', 'R':
			piece = 'R'
		case 'b', 'B':
			piece = 'B'
		case 'n', 'N':
			piece = 'N'
		}
	}
	if pawn == 'p' {
		return piece + ('a' - 'A')
	}
	return piece
}
