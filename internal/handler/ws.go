package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/krish-027/safar-guardian-pilot/internal/bus"
)

var (
	upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			// Allow all origins in development, configure for production
			return true
		},
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}

	pingInterval = 30 * time.Second
	writeTimeout = 10 * time.Second
)

// Client represents a connected WebSocket client.
type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan []byte
	Hub  *WSHub
}

// WSHub fans store-change signals out to connected views. The signal carries
// no data; clients re-read the store through the HTTP API.
type WSHub struct {
	clients     map[*Client]bool
	broadcast   chan []byte
	register    chan *Client
	unregister  chan *Client
	bus         bus.Bus
	unsubscribe func()
	done        chan struct{}
	stopOnce    sync.Once
	mu          sync.RWMutex
}

// NewWSHub creates a hub over the change-notification bus.
func NewWSHub(b bus.Bus) *WSHub {
	return &WSHub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		bus:        b,
		done:       make(chan struct{}),
	}
}

// Run starts the hub's event loop.
func (h *WSHub) Run() {
	h.unsubscribe = h.bus.Subscribe(func() {
		data, err := json.Marshal(map[string]string{"type": "store-update"})
		if err != nil {
			log.Printf("[WS] Failed to marshal update message: %v", err)
			return
		}
		select {
		case h.broadcast <- data:
		default:
			// A full broadcast buffer drops the signal; clients catch up on
			// the next one since every message means re-read anyway.
		}
	})
	log.Println("[WS] Hub started, subscribed to store changes")

	for {
		select {
		case <-h.done:
			h.mu.Lock()
			for client := range h.clients {
				close(client.Send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			log.Println("[WS] Hub stopped")
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			log.Printf("[WS] Client connected: %s, total clients: %d", client.ID, total)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			log.Printf("[WS] Client disconnected: %s, total clients: %d", client.ID, total)

		case message := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					// Slow client; drop the message rather than block.
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Stop removes the bus subscription and terminates the event loop, closing
// every connected client's send channel.
func (h *WSHub) Stop() {
	h.stopOnce.Do(func() {
		if h.unsubscribe != nil {
			h.unsubscribe()
		}
		close(h.done)
	})
}

// ClientCount returns the number of connected clients.
func (h *WSHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// WSHandler upgrades HTTP connections into hub clients.
type WSHandler struct {
	hub *WSHub
}

// NewWSHandler creates a new WebSocket handler.
func NewWSHandler(hub *WSHub) *WSHandler {
	return &WSHandler{hub: hub}
}

// HandleUpdates upgrades the connection and streams store-change signals.
func (h *WSHandler) HandleUpdates(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] Upgrade failed: %v", err)
		return
	}

	client := &Client{
		ID:   uuid.NewString()[:8],
		Conn: conn,
		Send: make(chan []byte, 64),
		Hub:  h.hub,
	}

	h.hub.register <- client
	go client.writePump()
	go client.readPump()
}

// GetStats reports hub occupancy.
func (h *WSHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"clients": h.hub.ClientCount()})
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
