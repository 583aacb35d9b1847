package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub is the club-wide event feed. Every connected client receives a small
// event after each successful mutation and re-fetches whatever list it is
// showing. One connection per user; a newer connection replaces the old one.
type Hub struct {
	clients map[string]*Client
	mu      sync.RWMutex
}

type Client struct {
	conn   *websocket.Conn
	userID string
	send   chan []byte
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
	}
}

// HandleConnection registers the connection and blocks until it closes.
func (h *Hub) HandleConnection(conn *websocket.Conn, userID string) {
	client := &Client{
		conn:   conn,
		userID: userID,
		send:   make(chan []byte, 256),
	}

	h.mu.Lock()
	if old, ok := h.clients[userID]; ok {
		close(old.send)
		old.conn.Close()
	}
	h.clients[userID] = client
	h.mu.Unlock()

	go client.writePump()
	client.readPump(h)
}

// Broadcast sends an event to every connected client.
func (h *Hub) Broadcast(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal feed event: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients {
		select {
		case client.send <- data:
		default:
			// Client buffer full, skip
		}
	}
}

// readPump drains the connection until it closes. The feed is one-way;
// incoming frames only keep the connection alive.
func (c *Client) readPump(h *Hub) {
	defer func() {
		h.removeClient(c)
		c.conn.Close()
	}()

	for {
		_, _, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Feed WebSocket error: %v", err)
			}
			break
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (h *Hub) removeClient(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if current, ok := h.clients[c.userID]; ok && current == c {
		close(c.send)
		delete(h.clients, c.userID)
	}
}
