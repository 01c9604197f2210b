package main

import (
	"encoding/json"
	"log/slog"
	"math/rand"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/regardlessly/multiplayer-games/leaderboard"
)

// Server is the event dispatcher: every inbound command, timer callback,
// and disconnect funnels through s.mu, which serializes all access to the
// room table and the engines.
type Server struct {
	mu sync.Mutex

	log       *slog.Logger
	rooms     map[string]*Room
	clients   map[*Client]struct{}
	rng       *rand.Rand
	limiter   *joinLimiter
	analytics *Analytics
	board     *leaderboard.Board

	upgrader websocket.Upgrader
}

func NewServer(log *slog.Logger, analytics *Analytics, corsOrigin string) *Server {
	return &Server{
		log:       log,
		rooms:     map[string]*Room{},
		clients:   map[*Client]struct{}{},
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		limiter:   newJoinLimiter(10, time.Minute),
		analytics: analytics,
		board:     leaderboard.New(),
		upgrader: websocket.Upgrader{
			CheckOrigin: originChecker(corsOrigin),
		},
	}
}

// originChecker applies the configured CORS origin to the websocket
// upgrade as well. Requests without an Origin header (non-browser
// clients) pass.
func originChecker(allowed string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		if allowed == "*" {
			return true
		}
		origin := r.Header.Get("Origin")
		return origin == "" || origin == allowed
	}
}

func (s *Server) handleConnections(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	c := &Client{
		ID:   uuid.NewString(),
		conn: conn,
		ip:   clientIP(r),
	}

	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()
	metricConnections.Inc()
	s.log.Info("client connected", "client", c.ID, "ip", c.ip)

	s.readLoop(c)
	s.handleDisconnect(c)
}

func (s *Server) readLoop(c *Client) {
	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Debug("read error", "client", c.ID, "err", err)
			}
			return
		}

		var probe struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(raw, &probe); err != nil {
			s.log.Debug("bad message", "client", c.ID, "err", err)
			continue
		}
		s.dispatch(c, probe.Type, raw)
	}
}

// knownCommands bounds the command metric label set; anything else is
// counted under "unknown".
var knownCommands = map[string]bool{
	"join_game": true, "start_game": true, "make_move": true,
	"cdi_play": true, "cdi_pass": true, "boggle_submit": true,
	"boggle_end": true, "bingo_call": true, "request_undo": true,
	"approve_undo": true, "decline_undo": true, "resign": true,
	"ping": true,
}

// dispatch routes one command. Handlers run with s.mu held; the outbound
// writes they trigger are the only I/O on that path.
func (s *Server) dispatch(c *Client, command string, raw []byte) {
	label := command
	if !knownCommands[command] {
		label = "unknown"
	}
	metricCommands.WithLabelValues(label).Inc()

	s.mu.Lock()
	defer s.mu.Unlock()

	switch command {
	case "join_game":
		var msg joinGameMsg
		if json.Unmarshal(raw, &msg) == nil {
			s.handleJoin(c, msg)
		}
	case "start_game":
		s.handleStart(c)
	case "make_move":
		var msg makeMoveMsg
		if json.Unmarshal(raw, &msg) == nil {
			s.handleMove(c, msg)
		}
	case "cdi_play":
		var msg playCardsMsg
		if json.Unmarshal(raw, &msg) == nil {
			s.handlePlay(c, msg.CardIDs)
		}
	case "cdi_pass":
		s.handlePass(c)
	case "boggle_submit":
		var msg submitWordMsg
		if json.Unmarshal(raw, &msg) == nil {
			s.handleBoggleSubmit(c, msg.Word)
		}
	case "boggle_end":
		s.handleBoggleEnd(c)
	case "bingo_call":
		s.handleBingoCall(c)
	case "request_undo":
		s.handleUndoRequest(c)
	case "approve_undo":
		s.handleUndoApprove(c)
	case "decline_undo":
		s.handleUndoDecline(c)
	case "resign":
		s.handleResign(c)
	case "ping":
		c.Send("pong", nil)
	default:
		s.log.Debug("unknown command", "client", c.ID, "command", command)
	}
}

// handleDisconnect clears the connection's seat and schedules the
// disconnect announcement. The seat itself survives for reconnection.
func (s *Server) handleDisconnect(c *Client) {
	metricConnections.Dec()

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.clients, c)

	room, seatName, wasPlayer := s.leaveRoom(c)
	if room == nil {
		return
	}
	s.log.Info("client disconnected", "client", c.ID, "room", room.ID, "player", seatName)
	if !wasPlayer {
		s.broadcastRoomUpdate(room)
		return
	}

	roomID := room.ID
	time.AfterFunc(disconnectGrace, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		r := s.rooms[roomID]
		if r == nil {
			return
		}
		for _, seat := range r.Seats {
			if seat.Name == seatName && seat.Client == nil {
				s.broadcast(r, "player_disconnected", map[string]interface{}{
					"playerName": seatName,
				})
				s.broadcastRoomUpdate(r)
				return
			}
		}
	})
}

// sendError reports a generic rejection to the submitter only.
func (s *Server) sendError(c *Client, message string) {
	metricRejections.Inc()
	c.Send("error", map[string]interface{}{"message": message})
}

// sendInvalidMove reports a turn-based rejection to the submitter only.
func (s *Server) sendInvalidMove(c *Client, reason string) {
	metricRejections.Inc()
	c.Send("invalid_move", map[string]interface{}{"reason": reason})
}

// handleHealth serves the health snapshot.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	rooms := len(s.rooms)
	connections := len(s.clients)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":      "ok",
		"rooms":       rooms,
		"connections": connections,
	})
}

// handleLeaderboard serves the top-N win counts as JSON.
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	game := r.URL.Query().Get("game")
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"leaderboard": s.board.Top(game, limit),
	})
}
