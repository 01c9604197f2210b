package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// NewFromFEN builds a game from a full FEN record. The halfmove and
// fullmove fields may be omitted and default to 0 and 1.
func NewFromFEN(fen string) (*Game, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("fen: want at least 4 fields, got %d", len(fields))
	}

	g := &Game{}
	rows := strings.Split(fields[0], "/")
	if len(rows) != 8 {
		return nil, fmt.Errorf("fen: want 8 rows, got %d", len(rows))
	}
	for r, row := range rows {
		c := 0
		for i := 0; i < len(row); i++ {
			ch := row[i]
			if ch >= '1' && ch <= '8' {
				c += int(ch - '0')
				continue
			}
			if c >= 8 || !strings.ContainsRune("pnbrqkPNBRQK", rune(ch)) {
				return nil, fmt.Errorf("fen: bad row %q", row)
			}
			g.board[r][c] = ch
			c++
		}
		if c != 8 {
			return nil, fmt.Errorf("fen: row %q is %d squares", row, c)
		}
	}

	switch fields[1] {
	case "w", "b":
		g.turn = fields[1][0]
	default:
		return nil, fmt.Errorf("fen: bad side to move %q", fields[1])
	}

	for _, ch := range fields[2] {
		switch ch {
		case 'K':
			g.castling[whiteKingside] = true
		case 'Q':
			g.castling[whiteQueenside] = true
		case 'k':
			g.castling[blackKingside] = true
		case 'q':
			g.castling[blackQueenside] = true
		case '-':
		default:
			return nil, fmt.Errorf("fen: bad castling %q", fields[2])
		}
	}

	if fields[3] != "-" {
		sq, err := parseSquare(fields[3])
		if err != nil {
			return nil, err
		}
		g.ep = &sq
	}

	g.halfmove, g.fullmove = 0, 1
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("fen: bad halfmove %q", fields[4])
		}
		g.halfmove = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, fmt.Errorf("fen: bad fullmove %q", fields[5])
		}
		g.fullmove = n
	}
	return g, nil
}

// FEN serializes the current position as a full six-field record.
func (g *Game) FEN() string {
	var sb strings.Builder
	for r := 0; r < 8; r++ {
		empty := 0
		for c := 0; c < 8; c++ {
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
		if r < 7 {
			sb.WriteByte('/')
		}
	}

	castle := ""
	for i, ch := range "KQkq" {
		if g.castling[i] {
			castle += string(ch)
		}
	}
	if castle == "" {
		castle = "-"
	}

	ep := "-"
	if g.ep != nil {
		ep = squareName(*g.ep)
	}

	return fmt.Sprintf("%s %c %s %s %d %d", sb.String(), g.turn, castle, ep, g.halfmove, g.fullmove)
}

func parseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Square{}, fmt.Errorf("fen: bad square %q", s)
	}
	return Square{Row: 8 - int(s[1]-'0'), Col: int(s[0] - 'a')}, nil
}

func squareName(sq Square) string {
	return string([]byte{byte('a' + sq.Col), byte('0' + 8 - sq.Row)})
}
