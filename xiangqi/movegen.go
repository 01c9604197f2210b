package xiangqi

var orthoSteps = []Square{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// pseudoMoves lists destinations for the piece on from without considering
// check. The flying-general rule is enforced by inCheck, not here.
func (g *Game) pseudoMoves(from Square) []Square {
	p := g.board[from.Row][from.Col]
	if p == 0 {
		return nil
	}
	switch p {
	case 'R', 'r':
		return g.chariotMoves(from)
	case 'C', 'c':
		return g.cannonMoves(from)
	case 'N', 'n':
		return g.horseMoves(from)
	case 'B', 'b':
		return g.elephantMoves(from)
	case 'A', 'a':
		return g.advisorMoves(from)
	case 'K', 'k':
		return g.generalMoves(from)
	case 'P', 'p':
		return g.pawnMoves(from)
	}
	return nil
}

func (g *Game) chariotMoves(from Square) []Square {
	color := colorOf(g.board[from.Row][from.Col])
	var moves []Square
	for _, d := range orthoSteps {
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

// cannonMoves slides to empty squares, and captures only by jumping exactly
// one screen piece.
func (g *Game) cannonMoves(from Square) []Square {
	color := colorOf(g.board[from.Row][from.Col])
	var moves []Square
	for _, d := range orthoSteps {
		to := Square{from.Row + d.Row, from.Col + d.Col}
		jumped := false
		for onBoard(to) {
			t := g.board[to.Row][to.Col]
			if !jumped {
				if t == 0 {
					moves = append(moves, to)
				} else {
					jumped = true
				}
			} else if t != 0 {
				if colorOf(t) != color {
					moves = append(moves, to)
				}
				break
			}
			to = Square{to.Row + d.Row, to.Col + d.Col}
		}
	}
	return moves
}

// horseMoves blocks each L-move when the adjacent orthogonal "leg" square
// is occupied.
func (g *Game) horseMoves(from Square) []Square {
	color := colorOf(g.board[from.Row][from.Col])
	jumps := []struct{ leg, to Square }{
		{Square{-1, 0}, Square{-2, -1}}, {Square{-1, 0}, Square{-2, 1}},
		{Square{1, 0}, Square{2, -1}}, {Square{1, 0}, Square{2, 1}},
		{Square{0, -1}, Square{-1, -2}}, {Square{0, -1}, Square{1, -2}},
		{Square{0, 1}, Square{-1, 2}}, {Square{0, 1}, Square{1, 2}},
	}
	var moves []Square
	for _, j := range jumps {
		leg := Square{from.Row + j.leg.Row, from.Col + j.leg.Col}
		to := Square{from.Row + j.to.Row, from.Col + j.to.Col}
		if !onBoard(to) || !onBoard(leg) || g.board[leg.Row][leg.Col] != 0 {
			continue
		}
		if t := g.board[to.Row][to.Col]; t != 0 && colorOf(t) == color {
			continue
		}
		moves = append(moves, to)
	}
	return moves
}

// elephantMoves steps two diagonals with an empty midpoint and never
// crosses the river.
func (g *Game) elephantMoves(from Square) []Square {
	color := colorOf(g.board[from.Row][from.Col])
	var moves []Square
	for _, d := range []Square{{-2, -2}, {-2, 2}, {2, -2}, {2, 2}} {
		to := Square{from.Row + d.Row, from.Col + d.Col}
		mid := Square{from.Row + d.Row/2, from.Col + d.Col/2}
		if !onBoard(to) || !ownHalf(to, color) || g.board[mid.Row][mid.Col] != 0 {
			continue
		}
		if t := g.board[to.Row][to.Col]; t != 0 && colorOf(t) == color {
			continue
		}
		moves = append(moves, to)
	}
	return moves
}

func (g *Game) advisorMoves(from Square) []Square {
	color := colorOf(g.board[from.Row][from.Col])
	var moves []Square
	for _, d := range []Square{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}} {
		to := Square{from.Row + d.Row, from.Col + d.Col}
		if !inPalace(to, color) {
			continue
		}
		if t := g.board[to.Row][to.Col]; t != 0 && colorOf(t) == color {
			continue
		}
		moves = append(moves, to)
	}
	return moves
}

func (g *Game) generalMoves(from Square) []Square {
	color := colorOf(g.board[from.Row][from.Col])
	var moves []Square
	for _, d := range orthoSteps {
		to := Square{from.Row + d.Row, from.Col + d.Col}
		if !inPalace(to, color) {
			continue
		}
		if t := g.board[to.Row][to.Col]; t != 0 && colorOf(t) == color {
			continue
		}
		moves = append(moves, to)
	}
	return moves
}

// pawnMoves pushes forward, adding sideways steps once across the river.
func (g *Game) pawnMoves(from Square) []Square {
	color := colorOf(g.board[from.Row][from.Col])
	dir := -1 // red marches toward row 0
	if color == 'b' {
		dir = 1
	}
	steps := []Square{{dir, 0}}
	if crossedRiver(from, color) {
		steps = append(steps, Square{0, -1}, Square{0, 1})
	}
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
