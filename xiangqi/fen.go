package xiangqi

import (
	"fmt"
	"strings"
)

// NewFromFEN parses the xiangqi FEN dialect: the 10-row board field plus a
// single side-to-move letter.
func NewFromFEN(fen string) (*Game, error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return nil, fmt.Errorf("fen: want board and side to move, got %q", fen)
	}

	g := &Game{}
	rows := strings.Split(fields[0], "/")
	if len(rows) != 10 {
		return nil, fmt.Errorf("fen: want 10 rows, got %d", len(rows))
	}
	for r, row := range rows {
		c := 0
		for i := 0; i < len(row); i++ {
			ch := row[i]
			if ch >= '1' && ch <= '9' {
				c += int(ch - '0')
				continue
			}
			if c >= 9 || !strings.ContainsRune("kabnrcpKABNRCP", rune(ch)) {
				return nil, fmt.Errorf("fen: bad row %q", row)
			}
			g.board[r][c] = ch
			c++
		}
		if c != 9 {
			return nil, fmt.Errorf("fen: row %q is %d squares", row, c)
		}
	}

	switch fields[1] {
	case "w", "b":
		g.turn = fields[1][0]
	default:
		return nil, fmt.Errorf("fen: bad side to move %q", fields[1])
	}
	return g, nil
}

// FEN serializes the board field plus the side-to-move letter.
func (g *Game) FEN() string {
	var sb strings.Builder
	for r := 0; r < 10; r++ {
		empty := 0
		for c := 0; c < 9; c++ {
			p := g.board[r][c]
			if p == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p)
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r < 9 {
			sb.WriteByte('/')
		}
	}
	return fmt.Sprintf("%s %c", sb.String(), g.turn)
}
