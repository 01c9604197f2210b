package main

import (
	"github.com/regardlessly/multiplayer-games/bigtwo"
	"github.com/regardlessly/multiplayer-games/bingo"
	"github.com/regardlessly/multiplayer-games/boggle"
	"github.com/regardlessly/multiplayer-games/chess"
	"github.com/regardlessly/multiplayer-games/xiangqi"
)

// roomClients lists every live connection in the room, seats first.
// Caller holds s.mu.
func roomClients(room *Room) []*Client {
	var clients []*Client
	for _, seat := range room.Seats {
		if seat.Client != nil {
			clients = append(clients, seat.Client)
		}
	}
	for _, sp := range room.Spectators {
		if sp.Client != nil {
			clients = append(clients, sp.Client)
		}
	}
	return clients
}

// broadcast sends one event to everyone in the room.
func (s *Server) broadcast(room *Room, event string, payload map[string]interface{}) {
	for _, c := range roomClients(room) {
		c.Send(event, payload)
	}
}

func playersPayload(room *Room) []map[string]interface{} {
	players := make([]map[string]interface{}, 0, len(room.Seats))
	for _, seat := range room.Seats {
		players = append(players, map[string]interface{}{
			"name":      seat.Name,
			"color":     seat.Color,
			"connected": seat.Client != nil,
		})
	}
	return players
}

func (s *Server) broadcastRoomUpdate(room *Room) {
	spectators := make([]string, 0, len(room.Spectators))
	for _, sp := range room.Spectators {
		spectators = append(spectators, sp.Name)
	}
	s.broadcast(room, "room_update", map[string]interface{}{
		"players":    playersPayload(room),
		"spectators": spectators,
	})
}

// broadcastGameState emits the authoritative snapshot to the whole room.
// Big Two states are personalized per recipient so no hand ever reaches
// another seat; every other family is public. Caller holds s.mu.
func (s *Server) broadcastGameState(room *Room) {
	if room.Engine == nil {
		return
	}
	if g, ok := room.Engine.(*bigtwo.Game); ok {
		players := playersPayload(room)
		for i, seat := range room.Seats {
			if seat.Client == nil {
				continue
			}
			state := g.StateFor(i)
			state["players"] = players
			seat.Client.Send("game_state", state)
		}
		for _, sp := range room.Spectators {
			if sp.Client == nil {
				continue
			}
			state := g.StateFor(-1)
			state["players"] = players
			sp.Client.Send("game_state", state)
		}
		return
	}
	s.broadcast(room, "game_state", s.publicState(room))
}

// sendGameStateTo delivers the current snapshot to a single connection,
// filtered for its seat; used for reconnection catch-up.
func (s *Server) sendGameStateTo(room *Room, c *Client) {
	if room.Engine == nil {
		return
	}
	if g, ok := room.Engine.(*bigtwo.Game); ok {
		state := g.StateFor(seatIndex(room, c))
		state["players"] = playersPayload(room)
		c.Send("game_state", state)
		return
	}
	c.Send("game_state", s.publicState(room))
}

// publicState builds the broadcastable snapshot for the families without
// private state.
func (s *Server) publicState(room *Room) map[string]interface{} {
	switch g := room.Engine.(type) {
	case *chess.Game:
		return boardState(room, g.FEN(), g.Turn(), g.InCheck(), g.IsGameOver(), g.Winner())
	case *xiangqi.Game:
		return boardState(room, g.FEN(), g.Turn(), g.InCheck(), g.IsGameOver(), g.Winner())
	case *boggle.Game:
		state := map[string]interface{}{
			"gameType":         GameBoggle,
			"board":            g.Board(),
			"timeLeft":         g.TimeLeft(),
			"submissionCounts": g.SubmissionCounts(),
			"isGameOver":       g.IsGameOver(),
			"playerCount":      g.PlayerCount(),
		}
		if g.IsGameOver() {
			results := g.EndRound()
			state["scores"] = results.Scores
			state["words"] = results.Words
		}
		return state
	case *bingo.Game:
		var lastCalled interface{}
		if n := g.LastCalled(); n != 0 {
			lastCalled = n
		}
		return map[string]interface{}{
			"gameType":    GameBingo,
			"called":      g.Called(),
			"lastCalled":  lastCalled,
			"cards":       g.Cards(),
			"marked":      g.Marked(),
			"isGameOver":  g.IsGameOver(),
			"winners":     g.Winners(),
			"callerSeat":  0,
			"playerCount": g.PlayerCount(),
			"players":     playersPayload(room),
		}
	}
	return nil
}

func boardState(room *Room, fen, turn string, inCheck, over bool, winner string) map[string]interface{} {
	var w interface{}
	if winner != "" {
		w = winner
	}
	return map[string]interface{}{
		"gameType":   room.GameType,
		"fen":        fen,
		"turn":       turn,
		"inCheck":    inCheck,
		"isGameOver": over,
		"winner":     w,
		"players":    playersPayload(room),
	}
}
