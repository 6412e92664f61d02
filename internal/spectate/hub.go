// Package spectate streams live games to websocket watchers.
//
// Every engine event of a watched session is wrapped in an Envelope and
// fanned out to the clients subscribed to that session. Finished games
// arriving from NATS are fanned out on the ResultsChannel.
package spectate

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
	"github.com/vovakirdan/tui-2048/internal/remote"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512

	// Buffered messages per client before it is considered too slow.
	sendBuffer = 256
)

// ResultsChannel is the pseudo-session carrying finished games.
const ResultsChannel = "results"

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Envelope is the JSON frame sent to watchers.
type Envelope struct {
	Session string `json:"session"`
	Type    string `json:"type"`
	Data    any    `json:"data"`
}

// SessionInfo describes a live session for the session list.
type SessionInfo struct {
	ID        string    `json:"id"`
	Player    string    `json:"player"`
	Variant   string    `json:"variant"`
	Score     int       `json:"score"`
	MaxTile   int       `json:"max_tile"`
	Over      bool      `json:"over"`
	StartedAt time.Time `json:"started_at"`
	Watchers  int       `json:"watchers"`
}

type client struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan []byte
	session string
}

type outbound struct {
	session string
	data    []byte
}

// Hub tracks live sessions and the websocket clients watching them.
type Hub struct {
	logger *log.Logger

	mu       sync.RWMutex
	sessions map[string]*SessionInfo
	clients  map[string]map[*client]bool

	broadcast chan outbound
}

// NewHub creates a hub. Call Run to start delivering messages.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		logger:    logger,
		sessions:  make(map[string]*SessionInfo),
		clients:   make(map[string]map[*client]bool),
		broadcast: make(chan outbound, sendBuffer),
	}
}

// Run delivers published messages until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case msg := <-h.broadcast:
			h.deliver(msg)
		}
	}
}

// Open registers a live session.
func (h *Hub) Open(id, player, variant string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[id] = &SessionInfo{ID: id, Player: player, Variant: variant, StartedAt: time.Now().UTC()}
}

// Close removes a session from the list. Watchers stay connected until they leave.
func (h *Hub) Close(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sessions, id)
}

// Sessions returns the live sessions ordered by start time.
func (h *Hub) Sessions() []SessionInfo {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]SessionInfo, 0, len(h.sessions))
	for id, s := range h.sessions {
		info := *s
		info.Watchers = len(h.clients[id])
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].StartedAt.Before(out[j].StartedAt)
	})
	return out
}

// Watchers returns the number of clients subscribed to a session.
func (h *Hub) Watchers(session string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[session])
}

// Listener returns an engine listener that streams a session's events and
// keeps its list entry current.
func (h *Hub) Listener(session string) engine.Listener {
	return func(ev engine.Event) {
		h.track(session, ev)
		h.Publish(session, ev.EventType(), ev)
	}
}

// PublishResult fans a finished game out on the results channel.
func (h *Hub) PublishResult(res remote.ResultMessage) {
	h.Publish(ResultsChannel, "result", res)
}

// Publish queues a message for a session's watchers without blocking.
// Messages are dropped when the hub is saturated.
func (h *Hub) Publish(session, kind string, data any) {
	payload, err := json.Marshal(Envelope{Session: session, Type: kind, Data: data})
	if err != nil {
		h.logger.Warn("cannot encode spectator message", "session", session, "type", kind, "error", err)
		return
	}
	select {
	case h.broadcast <- outbound{session: session, data: payload}:
	default:
		h.logger.Debug("spectator queue full, dropping message", "session", session, "type", kind)
	}
}

func (h *Hub) track(session string, ev engine.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	info, ok := h.sessions[session]
	if !ok {
		return
	}
	switch e := ev.(type) {
	case engine.GameStarted:
		info.Score, info.MaxTile, info.Over = 0, 0, false
	case engine.ScoreChanged:
		info.Score = e.Score
	case engine.TileMerged:
		info.MaxTile = max(info.MaxTile, e.Value)
	case engine.TileSpawned:
		info.MaxTile = max(info.MaxTile, e.Tile.Value)
	case engine.GameOver:
		info.Over = true
		info.Score = e.Result.Score
		info.MaxTile = e.Result.MaxTile
	}
}

// ServeWS upgrades the request and subscribes the client to session.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, session string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := &client{
		hub:     h,
		conn:    conn,
		send:    make(chan []byte, sendBuffer),
		session: session,
	}
	h.register(c)

	go c.writePump()
	go c.readPump()
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c.session] == nil {
		h.clients[c.session] = make(map[*client]bool)
	}
	h.clients[c.session][c] = true
	h.logger.Debug("watcher joined", "session", c.session, "watchers", len(h.clients[c.session]))
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

func (h *Hub) removeLocked(c *client) {
	clients, ok := h.clients[c.session]
	if !ok || !clients[c] {
		return
	}
	delete(clients, c)
	close(c.send)
	if len(clients) == 0 {
		delete(h.clients, c.session)
	}
	h.logger.Debug("watcher left", "session", c.session, "watchers", len(clients))
}

func (h *Hub) deliver(msg outbound) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients[msg.session] {
		select {
		case c.send <- msg.data:
		default:
			// Slow watcher; drop it rather than stall the game.
			h.removeLocked(c)
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, clients := range h.clients {
		for c := range clients {
			h.removeLocked(c)
		}
	}
}

// readPump discards client input and unregisters the client when it leaves.
func (c *client) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Debug("websocket error", "session", c.session, "error", err)
			}
			return
		}
	}
}

// writePump sends queued messages and keeps the connection alive with pings.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
