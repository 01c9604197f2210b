package main

import "time"

const (
	// roomGrace is how long an empty room survives before deletion.
	roomGrace = 60 * time.Second
	// disconnectGrace delays the disconnect announcement so lobby/game
	// page navigation (which tears down and reopens the socket) stays
	// silent.
	disconnectGrace = 2 * time.Second
)

// createRoom inserts a fresh room for a game family. Caller holds s.mu.
func (s *Server) createRoom(gameType string) *Room {
	id := makeRoomID(s.rng)
	for s.rooms[id] != nil {
		id = makeRoomID(s.rng)
	}
	room := &Room{ID: id, GameType: gameType}
	s.rooms[id] = room
	metricRooms.Inc()
	return room
}

// joinRoom resolves a seat for the connection: an existing seat with the
// same name rebinds (reconnection), otherwise the next free color is
// allocated, otherwise the client becomes a spectator. Caller holds s.mu.
func (s *Server) joinRoom(room *Room, c *Client, name string) (color string, reconnected bool) {
	if room.deleteTimer != nil {
		room.deleteTimer.Stop()
		room.deleteTimer = nil
	}

	for _, seat := range room.Seats {
		if seat.Name == name {
			seat.Client = c
			return seat.Color, true
		}
	}

	colors := familyColors[room.GameType]
	if len(room.Seats) < len(colors) {
		seat := &Seat{Name: name, Color: colors[len(room.Seats)], Client: c}
		room.Seats = append(room.Seats, seat)
		return seat.Color, false
	}

	room.Spectators = append(room.Spectators, &Spectator{Name: name, Client: c})
	return "spectator", false
}

// leaveRoom detaches a connection. Seats survive for reconnection;
// spectators are simply removed. Returns the room and whether a seat was
// affected. Caller holds s.mu.
func (s *Server) leaveRoom(c *Client) (room *Room, seatName string, wasPlayer bool) {
	room = s.rooms[c.RoomID]
	if room == nil {
		return nil, "", false
	}

	for _, seat := range room.Seats {
		if seat.Client == c {
			seat.Client = nil
			seatName = seat.Name
			wasPlayer = true
		}
	}
	if !wasPlayer {
		for i, sp := range room.Spectators {
			if sp.Client == c {
				room.Spectators = append(room.Spectators[:i], room.Spectators[i+1:]...)
				break
			}
		}
	}

	if !roomHasLiveSeat(room) {
		s.armDeletion(room)
	}
	return room, seatName, wasPlayer
}

func roomHasLiveSeat(room *Room) bool {
	for _, seat := range room.Seats {
		if seat.Client != nil {
			return true
		}
	}
	return false
}

// armDeletion schedules room removal after the grace window. The timer
// re-checks for live seats when it fires; any join cancels it. Caller
// holds s.mu.
func (s *Server) armDeletion(room *Room) {
	if room.deleteTimer != nil {
		room.deleteTimer.Stop()
	}
	id := room.ID
	room.deleteTimer = time.AfterFunc(roomGrace, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		r := s.rooms[id]
		if r == nil || roomHasLiveSeat(r) {
			return
		}
		s.deleteRoom(r)
	})
}

// deleteRoom removes the room and stops its timers. Caller holds s.mu.
func (s *Server) deleteRoom(room *Room) {
	if room.deleteTimer != nil {
		room.deleteTimer.Stop()
	}
	if room.roundTimer != nil {
		room.roundTimer.Stop()
	}
	delete(s.rooms, room.ID)
	metricRooms.Dec()
	s.log.Info("room deleted", "room", room.ID, "game", room.GameType)
}

// seatIndex returns the seat index bound to the connection, or -1.
func seatIndex(room *Room, c *Client) int {
	for i, seat := range room.Seats {
		if seat.Client == c {
			return i
		}
	}
	return -1
}
