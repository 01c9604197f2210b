package main

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Game family tags. They appear on the wire and are part of the client
// contract.
const (
	GameChess     = "chess"
	GameXiangqi   = "xiangqi"
	GameChordaidi = "chordaidi"
	GameBoggle    = "boggle"
	GameBingo     = "bingo"
)

// familyColors fixes the ordered seat color set per family. Seat 0 is the
// host (and the caller in bingo).
var familyColors = map[string][]string{
	GameChess:     {"white", "black"},
	GameXiangqi:   {"red", "black"},
	GameChordaidi: {"south", "west", "north", "east"},
	GameBoggle:    {"red", "blue", "green", "purple"},
	GameBingo:     {"caller", "p2", "p3", "p4", "p5", "p6", "p7", "p8"},
}

// minSeats is the seat count required before seat 0 may start the game.
var minSeats = map[string]int{
	GameChess:     2,
	GameXiangqi:   2,
	GameChordaidi: 4,
	GameBoggle:    2,
	GameBingo:     2,
}

// engine is the common query surface of all five game engines; the
// dispatcher type-switches on the concrete engine for family verbs.
type engine interface {
	IsGameOver() bool
}

// Seat is a stable position in a room: a color label, a display name, and
// the (possibly nil) connection currently bound to it.
type Seat struct {
	Name   string
	Color  string
	Client *Client
}

type Spectator struct {
	Name   string
	Client *Client
}

type Room struct {
	ID         string
	GameType   string
	Seats      []*Seat
	Spectators []*Spectator
	Engine     engine // non-nil only between game start and game over

	pendingUndo string // color of the seat awaiting an undo decision

	deleteTimer *time.Timer // armed only while no seat holds a live connection
	roundTimer  *time.Timer // boggle auto-end
}

// Client is one websocket connection. Room, Name, and Color are the cached
// identity the dispatcher authorizes commands against; they are set under
// the server mutex.
type Client struct {
	ID   string
	conn *websocket.Conn
	ip   string

	writeMu sync.Mutex

	RoomID string
	Name   string
	Color  string
}

// Send emits one named event to this connection. Payload keys are merged
// beside the type tag.
func (c *Client) Send(event string, payload map[string]interface{}) {
	msg := make(map[string]interface{}, len(payload)+1)
	msg["type"] = event
	for k, v := range payload {
		msg[k] = v
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	c.conn.WriteJSON(msg)
}

// Inbound command payloads.

type joinGameMsg struct {
	Type       string `json:"type"`
	RoomID     string `json:"roomId"`
	PlayerName string `json:"playerName"`
	Reconnect  bool   `json:"reconnect"`
	GameType   string `json:"gameType"`
}

type gridSquare struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type makeMoveMsg struct {
	Type      string      `json:"type"`
	From      *gridSquare `json:"from"`
	To        *gridSquare `json:"to"`
	Promotion string      `json:"promotion"`
}

type playCardsMsg struct {
	Type    string `json:"type"`
	CardIDs []int  `json:"cardIds"`
}

type submitWordMsg struct {
	Type string `json:"type"`
	Word string `json:"word"`
}
