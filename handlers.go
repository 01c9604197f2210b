package main

import (
	"strings"
	"time"

	"github.com/regardlessly/multiplayer-games/bigtwo"
	"github.com/regardlessly/multiplayer-games/bingo"
	"github.com/regardlessly/multiplayer-games/boggle"
	"github.com/regardlessly/multiplayer-games/chess"
	"github.com/regardlessly/multiplayer-games/words"
	"github.com/regardlessly/multiplayer-games/xiangqi"
)

// All handlers run with s.mu held.

func (s *Server) handleJoin(c *Client, msg joinGameMsg) {
	name := trimName(msg.PlayerName)
	if name == "" {
		s.sendError(c, "Name required")
		return
	}
	if !msg.Reconnect && !s.limiter.allow(c.ip, time.Now()) {
		s.sendError(c, "Rate limited")
		return
	}

	// a connection can only sit in one room
	if c.RoomID != "" {
		if old, _, _ := s.leaveRoom(c); old != nil {
			s.broadcastRoomUpdate(old)
		}
		c.RoomID, c.Name, c.Color = "", "", ""
	}

	var room *Room
	if msg.RoomID == "" {
		if familyColors[msg.GameType] == nil {
			s.sendError(c, "Unknown game type")
			return
		}
		room = s.createRoom(msg.GameType)
		s.log.Info("room created", "room", room.ID, "game", room.GameType)
	} else {
		room = s.rooms[strings.ToUpper(strings.TrimSpace(msg.RoomID))]
		if room == nil {
			s.sendError(c, "Room not found")
			return
		}
	}

	color, reconnected := s.joinRoom(room, c, name)
	c.RoomID, c.Name, c.Color = room.ID, name, color

	c.Send("joined", map[string]interface{}{
		"roomId":      room.ID,
		"color":       color,
		"reconnected": reconnected,
	})
	s.broadcastRoomUpdate(room)
	if room.Engine != nil {
		s.sendGameStateTo(room, c)
	}
	s.analytics.Event("join", room.ID, map[string]interface{}{
		"player":      name,
		"game":        room.GameType,
		"reconnected": reconnected,
	})
}

// clientRoom resolves and authorizes the sender's room.
func (s *Server) clientRoom(c *Client) *Room {
	if c.RoomID == "" {
		return nil
	}
	return s.rooms[c.RoomID]
}

func (s *Server) handleStart(c *Client) {
	room := s.clientRoom(c)
	if room == nil {
		s.sendError(c, "Room not found")
		return
	}
	if len(room.Seats) == 0 || room.Seats[0].Client != c {
		s.sendError(c, "Only the host can start the game")
		return
	}
	if room.Engine != nil {
		s.sendError(c, "Game already started")
		return
	}
	if len(room.Seats) < minSeats[room.GameType] {
		s.sendError(c, "Not enough players")
		return
	}

	switch room.GameType {
	case GameChess:
		room.Engine = chess.New()
	case GameXiangqi:
		room.Engine = xiangqi.New()
	case GameChordaidi:
		room.Engine = bigtwo.New(s.rng)
	case GameBoggle:
		room.Engine = boggle.New(len(room.Seats), words.Dict(), s.rng)
		roomID := room.ID
		room.roundTimer = time.AfterFunc(boggle.RoundLength, func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if r := s.rooms[roomID]; r != nil {
				s.endBoggleRound(r)
			}
		})
	case GameBingo:
		g, err := bingo.New(len(room.Seats), s.rng)
		if err != nil {
			s.sendError(c, "Not enough players")
			return
		}
		room.Engine = g
	}

	s.log.Info("game started", "room", room.ID, "game", room.GameType)
	s.broadcast(room, "game_started", nil)
	s.broadcastGameState(room)
	s.analytics.Event("start", room.ID, map[string]interface{}{
		"game":    room.GameType,
		"players": len(room.Seats),
	})
}

func (s *Server) handleMove(c *Client, msg makeMoveMsg) {
	room := s.clientRoom(c)
	if room == nil {
		s.sendError(c, "Room not found")
		return
	}
	if room.Engine == nil {
		s.sendInvalidMove(c, "No game in progress")
		return
	}
	if msg.From == nil || msg.To == nil {
		s.sendInvalidMove(c, "Illegal move")
		return
	}
	seat := seatIndex(room, c)
	if seat < 0 {
		s.sendInvalidMove(c, "Not your turn")
		return
	}

	var (
		err  error
		turn string
	)
	switch g := room.Engine.(type) {
	case *chess.Game:
		turn = g.Turn()
		if !seatOwnsTurn(seat, turn) {
			s.sendInvalidMove(c, "Not your turn")
			return
		}
		err = g.Move(
			chess.Square{Row: msg.From.Row, Col: msg.From.Col},
			chess.Square{Row: msg.To.Row, Col: msg.To.Col},
			msg.Promotion,
		)
	case *xiangqi.Game:
		turn = g.Turn()
		if !seatOwnsTurn(seat, turn) {
			s.sendInvalidMove(c, "Not your turn")
			return
		}
		err = g.Move(
			xiangqi.Square{Row: msg.From.Row, Col: msg.From.Col},
			xiangqi.Square{Row: msg.To.Row, Col: msg.To.Col},
		)
	default:
		s.sendInvalidMove(c, "Wrong game")
		return
	}
	if err != nil {
		s.sendInvalidMove(c, err.Error())
		return
	}

	room.pendingUndo = "" // a new move supersedes any open undo request
	s.broadcastGameState(room)
	s.analytics.Event("move", room.ID, map[string]interface{}{
		"player": c.Name,
		"game":   room.GameType,
	})
	s.checkBoardGameOver(room)
}

// seatOwnsTurn maps engine turn letters onto seats: 'w' is seat 0 (white
// in chess, red in xiangqi), 'b' is seat 1.
func seatOwnsTurn(seat int, turn string) bool {
	return (turn == "w" && seat == 0) || (turn == "b" && seat == 1)
}

// checkBoardGameOver finishes a chess/xiangqi game when the engine says
// it is over.
func (s *Server) checkBoardGameOver(room *Room) {
	var winner, reason string
	switch g := room.Engine.(type) {
	case *chess.Game:
		if !g.IsGameOver() {
			return
		}
		winner = g.Winner()
		reason = "checkmate"
		if winner == "draw" {
			reason = "stalemate"
		}
	case *xiangqi.Game:
		if !g.IsGameOver() {
			return
		}
		winner = g.Winner()
		reason = "checkmate"
	default:
		return
	}

	var names []string
	if winner != "draw" {
		for _, seat := range room.Seats {
			if seat.Color == winner {
				names = append(names, seat.Name)
			}
		}
	}
	s.finishGame(room, winner, reason, names)
}

func (s *Server) handlePlay(c *Client, cardIDs []int) {
	room, g, seat := s.bigtwoContext(c)
	if g == nil {
		return
	}
	if err := g.Play(seat, cardIDs); err != nil {
		s.sendInvalidMove(c, err.Error())
		return
	}
	s.broadcastGameState(room)
	s.analytics.Event("move", room.ID, map[string]interface{}{
		"player": c.Name,
		"game":   room.GameType,
	})
	if g.IsGameOver() {
		winner := g.Winner()
		s.finishGame(room, winner, "all cards played", []string{room.Seats[winner].Name})
	}
}

func (s *Server) handlePass(c *Client) {
	room, g, seat := s.bigtwoContext(c)
	if g == nil {
		return
	}
	if err := g.Pass(seat); err != nil {
		s.sendInvalidMove(c, err.Error())
		return
	}
	s.broadcastGameState(room)
}

func (s *Server) bigtwoContext(c *Client) (*Room, *bigtwo.Game, int) {
	room := s.clientRoom(c)
	if room == nil {
		s.sendError(c, "Room not found")
		return nil, nil, 0
	}
	g, ok := room.Engine.(*bigtwo.Game)
	if !ok {
		s.sendInvalidMove(c, "No game in progress")
		return nil, nil, 0
	}
	seat := seatIndex(room, c)
	if seat < 0 {
		s.sendInvalidMove(c, "Not your turn")
		return nil, nil, 0
	}
	return room, g, seat
}

func (s *Server) handleBoggleSubmit(c *Client, word string) {
	room := s.clientRoom(c)
	if room == nil {
		s.sendError(c, "Room not found")
		return
	}
	g, ok := room.Engine.(*boggle.Game)
	if !ok {
		s.sendInvalidMove(c, "No game in progress")
		return
	}
	// seats claimed after the round started have no submission slot
	seat := seatIndex(room, c)
	if seat < 0 || seat >= g.PlayerCount() {
		s.sendInvalidMove(c, "Not your turn")
		return
	}

	if err := g.SubmitWord(seat, word); err != nil {
		metricRejections.Inc()
		c.Send("boggle_reject", map[string]interface{}{
			"word":   word,
			"reason": err.Error(),
		})
		return
	}
	c.Send("boggle_accept", map[string]interface{}{"word": strings.ToUpper(strings.TrimSpace(word))})
	s.broadcast(room, "boggle_counts", map[string]interface{}{
		"submissionCounts": g.SubmissionCounts(),
	})
}

func (s *Server) handleBoggleEnd(c *Client) {
	room := s.clientRoom(c)
	if room == nil {
		s.sendError(c, "Room not found")
		return
	}
	if len(room.Seats) == 0 || room.Seats[0].Client != c {
		s.sendError(c, "Only the host can end the round")
		return
	}
	s.endBoggleRound(room)
}

// endBoggleRound settles the round once, whether the host or the timer
// got here first.
func (s *Server) endBoggleRound(room *Room) {
	g, ok := room.Engine.(*boggle.Game)
	if !ok || g.IsGameOver() {
		return
	}
	g.EndRound()
	s.broadcastGameState(room)
	winner := g.Winner()
	s.finishGame(room, winner, "round over", []string{room.Seats[winner].Name})
}

func (s *Server) handleBingoCall(c *Client) {
	room := s.clientRoom(c)
	if room == nil {
		s.sendError(c, "Room not found")
		return
	}
	g, ok := room.Engine.(*bingo.Game)
	if !ok {
		s.sendInvalidMove(c, "No game in progress")
		return
	}

	if _, err := g.CallNumber(seatIndex(room, c)); err != nil {
		s.sendInvalidMove(c, err.Error())
		return
	}
	s.broadcastGameState(room)
	if g.IsGameOver() {
		winners := g.Winners()
		names := make([]string, 0, len(winners))
		for _, w := range winners {
			names = append(names, room.Seats[w.Seat].Name)
		}
		s.finishGame(room, winners, "bingo", names)
	}
}

func (s *Server) handleUndoRequest(c *Client) {
	room := s.clientRoom(c)
	if room == nil {
		s.sendError(c, "Room not found")
		return
	}
	if !isBoardGame(room.GameType) || room.Engine == nil {
		s.sendInvalidMove(c, "No game in progress")
		return
	}
	seat := seatIndex(room, c)
	if seat < 0 || seat > 1 {
		s.sendInvalidMove(c, "Not your turn")
		return
	}

	room.pendingUndo = c.Color
	if other := room.Seats[1-seat]; other.Client != nil {
		other.Client.Send("undo_requested", map[string]interface{}{"from": c.Name})
	}
}

func (s *Server) handleUndoApprove(c *Client) {
	room, _ := s.undoContext(c)
	if room == nil {
		return
	}
	switch g := room.Engine.(type) {
	case *chess.Game:
		g.Undo()
	case *xiangqi.Game:
		g.Undo()
	}
	room.pendingUndo = ""
	s.broadcastGameState(room)
}

func (s *Server) handleUndoDecline(c *Client) {
	room, requester := s.undoContext(c)
	if room == nil {
		return
	}
	room.pendingUndo = ""
	if requester != nil && requester.Client != nil {
		requester.Client.Send("undo_declined", nil)
	}
}

// undoContext authorizes an undo decision: only the seat opposing the
// requester may answer.
func (s *Server) undoContext(c *Client) (*Room, *Seat) {
	room := s.clientRoom(c)
	if room == nil {
		s.sendError(c, "Room not found")
		return nil, nil
	}
	if room.pendingUndo == "" || room.Engine == nil {
		s.sendError(c, "No undo request pending")
		return nil, nil
	}
	seat := seatIndex(room, c)
	if seat < 0 || seat > 1 || room.Seats[seat].Color == room.pendingUndo {
		s.sendError(c, "Not your decision")
		return nil, nil
	}
	return room, room.Seats[1-seat]
}

func (s *Server) handleResign(c *Client) {
	room := s.clientRoom(c)
	if room == nil {
		s.sendError(c, "Room not found")
		return
	}
	if room.Engine == nil {
		s.sendInvalidMove(c, "No game in progress")
		return
	}
	seat := seatIndex(room, c)
	if seat < 0 {
		s.sendInvalidMove(c, "Not your turn")
		return
	}

	if isBoardGame(room.GameType) && len(room.Seats) == 2 {
		other := room.Seats[1-seat]
		s.finishGame(room, other.Color, "resign", []string{other.Name})
		return
	}
	s.finishGame(room, nil, "resign", nil)
}

func isBoardGame(gameType string) bool {
	return gameType == GameChess || gameType == GameXiangqi
}

// finishGame announces the result, credits the leaderboard, and detaches
// the engine. The room itself lingers for the grace window so clients can
// see the outcome.
func (s *Server) finishGame(room *Room, winner interface{}, reason string, winnerNames []string) {
	if room.roundTimer != nil {
		room.roundTimer.Stop()
		room.roundTimer = nil
	}
	s.broadcast(room, "game_over", map[string]interface{}{
		"winner": winner,
		"reason": reason,
	})
	for _, name := range winnerNames {
		s.board.RecordWin(room.GameType, name)
	}
	s.analytics.Event("end", room.ID, map[string]interface{}{
		"game":    room.GameType,
		"reason":  reason,
		"winners": winnerNames,
	})
	s.log.Info("game over", "room", room.ID, "game", room.GameType, "reason", reason)
	room.Engine = nil
	room.pendingUndo = ""
}
