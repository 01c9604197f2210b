package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(log, newAnalytics("", log), "*")
}

func TestCreateRoom(t *testing.T) {
	s := newTestServer()
	s.mu.Lock()
	defer s.mu.Unlock()

	room := s.createRoom(GameChess)
	assert.Len(t, room.ID, roomIDLength)
	assert.Equal(t, GameChess, room.GameType)
	assert.Same(t, room, s.rooms[room.ID])
}

func TestJoinRoomAllocatesColorsInOrder(t *testing.T) {
	s := newTestServer()
	s.mu.Lock()
	defer s.mu.Unlock()

	room := s.createRoom(GameChordaidi)
	want := []string{"south", "west", "north", "east"}
	for i, color := range want {
		c := &Client{ID: string(rune('a' + i))}
		got, reconnected := s.joinRoom(room, c, "player"+color)
		assert.Equal(t, color, got)
		assert.False(t, reconnected)
	}
	require.Len(t, room.Seats, 4)

	// the fifth joiner watches
	color, reconnected := s.joinRoom(room, &Client{ID: "e"}, "late")
	assert.Equal(t, "spectator", color)
	assert.False(t, reconnected)
	assert.Len(t, room.Spectators, 1)
}

func TestJoinRoomReconnectsByName(t *testing.T) {
	s := newTestServer()
	s.mu.Lock()
	defer s.mu.Unlock()

	room := s.createRoom(GameXiangqi)
	first := &Client{ID: "a"}
	color, _ := s.joinRoom(room, first, "alice")
	require.Equal(t, "red", color)

	// the same name on a new connection takes the old seat back
	second := &Client{ID: "b"}
	color, reconnected := s.joinRoom(room, second, "alice")
	assert.Equal(t, "red", color)
	assert.True(t, reconnected)
	require.Len(t, room.Seats, 1)
	assert.Same(t, second, room.Seats[0].Client)
}

func TestLeaveRoomKeepsSeatForReconnection(t *testing.T) {
	s := newTestServer()
	s.mu.Lock()
	defer s.mu.Unlock()

	room := s.createRoom(GameChess)
	c := &Client{ID: "a"}
	s.joinRoom(room, c, "alice")
	c.RoomID = room.ID

	got, name, wasPlayer := s.leaveRoom(c)
	assert.Same(t, room, got)
	assert.Equal(t, "alice", name)
	assert.True(t, wasPlayer)

	require.Len(t, room.Seats, 1, "seat survives the disconnect")
	assert.Nil(t, room.Seats[0].Client)
	assert.NotNil(t, room.deleteTimer, "empty room is scheduled for deletion")

	// rejoining cancels the pending deletion
	c2 := &Client{ID: "b"}
	_, reconnected := s.joinRoom(room, c2, "alice")
	assert.True(t, reconnected)
	assert.Nil(t, room.deleteTimer)
}

func TestLeaveRoomRemovesSpectator(t *testing.T) {
	s := newTestServer()
	s.mu.Lock()
	defer s.mu.Unlock()

	room := s.createRoom(GameChess)
	a, b := &Client{ID: "a"}, &Client{ID: "b"}
	s.joinRoom(room, a, "alice")
	s.joinRoom(room, b, "bob")
	sp := &Client{ID: "c"}
	color, _ := s.joinRoom(room, sp, "watcher")
	require.Equal(t, "spectator", color)
	sp.RoomID = room.ID

	_, _, wasPlayer := s.leaveRoom(sp)
	assert.False(t, wasPlayer)
	assert.Empty(t, room.Spectators)
	assert.Nil(t, room.deleteTimer, "live seats keep the room alive")
}

func TestSeatIndex(t *testing.T) {
	s := newTestServer()
	s.mu.Lock()
	defer s.mu.Unlock()

	room := s.createRoom(GameChess)
	a, b := &Client{ID: "a"}, &Client{ID: "b"}
	s.joinRoom(room, a, "alice")
	s.joinRoom(room, b, "bob")

	assert.Equal(t, 0, seatIndex(room, a))
	assert.Equal(t, 1, seatIndex(room, b))
	assert.Equal(t, -1, seatIndex(room, &Client{ID: "c"}))
}

func TestFamilyTables(t *testing.T) {
	for _, game := range []string{GameChess, GameXiangqi, GameChordaidi, GameBoggle, GameBingo} {
		colors, ok := familyColors[game]
		require.True(t, ok, game)
		assert.NotEmpty(t, colors)
		assert.LessOrEqual(t, minSeats[game], len(colors), game)
	}
}
