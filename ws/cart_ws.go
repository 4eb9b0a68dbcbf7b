package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/contrabandkitchen/backend/services"
	"github.com/contrabandkitchen/backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	// writeWait bounds how long one stalled peer can hold up the hub.
	writeWait = 10 * time.Second

	broadcastBuffer = 64
)

// CartHub pushes a cart snapshot to every open connection of a session
// whenever that session's cart changes. It implements services.Notifier.
//
// All websocket writes happen on Run's goroutine; gorilla connections
// support one concurrent writer only.
type CartHub struct {
	clients    map[string]map[*websocket.Conn]bool // sessionID -> set of clients
	broadcast  chan update
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
	carts      *services.CartService
}

type subscription struct {
	Conn      *websocket.Conn
	SessionID string
}

type update struct {
	SessionID string
	Snapshot  services.CartSnapshot
}

func NewCartHub(carts *services.CartService) *CartHub {
	return &CartHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan update, broadcastBuffer),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		carts:      carts,
	}
}

// CartChanged satisfies services.Notifier; called synchronously from every
// cart mutation. It must never block the HTTP request: when the buffer is
// full the snapshot is dropped, the next mutation carries the fresh state.
func (h *CartHub) CartChanged(sessionID string, snap services.CartSnapshot) {
	select {
	case h.broadcast <- update{SessionID: sessionID, Snapshot: snap}:
	default:
		log.Warn().Str("session", sessionID).Msg("ws broadcast buffer full, dropping snapshot")
	}
}

// Run owns the client registry and all connection writes. Start it once, in
// its own goroutine.
func (h *CartHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.SessionID] == nil {
				h.clients[sub.SessionID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.SessionID][sub.Conn] = true
			h.mu.Unlock()

			// Current state right away so the client does not wait for a
			// mutation.
			h.write(sub.SessionID, sub.Conn, h.carts.Get(sub.SessionID))

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.SessionID][sub.Conn]; ok {
				delete(h.clients[sub.SessionID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case up := <-h.broadcast:
			h.mu.Lock()
			conns := make([]*websocket.Conn, 0, len(h.clients[up.SessionID]))
			for conn := range h.clients[up.SessionID] {
				conns = append(conns, conn)
			}
			h.mu.Unlock()
			for _, conn := range conns {
				h.write(up.SessionID, conn, up.Snapshot)
			}
		}
	}
}

// write sends one snapshot under the write deadline and drops the client on
// failure. Only called from Run's goroutine.
func (h *CartHub) write(sessionID string, conn *websocket.Conn, snap services.CartSnapshot) {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(snap); err != nil {
		log.Warn().Err(err).Msg("ws write error")
		conn.Close()
		h.mu.Lock()
		delete(h.clients[sessionID], conn)
		h.mu.Unlock()
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/cart
func (h *CartHub) HandleWebSocket(c *gin.Context) {
	sessionID := utils.CurrentSessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no session"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("ws upgrade error")
		return
	}

	// Run writes the initial snapshot once the registration is processed.
	sub := subscription{Conn: conn, SessionID: sessionID}
	h.register <- sub

	// Clients never send anything meaningful; the read loop just detects close.
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
