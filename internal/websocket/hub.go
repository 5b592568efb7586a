package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"fleet-dashboard/internal/logger"
	"fleet-dashboard/internal/models"
)

// Message types pushed to dashboard clients
const (
	TypeLocationUpdate = "truck_location_update"
	TypeSnapshot       = "truck_locations"
	TypePong           = "pong"
)

// Envelope is the wire shape of every server message
type Envelope struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// Hub maintains active WebSocket connections and fans messages out to
// every connected dashboard
type Hub struct {
	// Registered clients (client ID -> Client)
	clients map[string]*Client

	// Encoded messages for every client
	broadcast chan []byte

	register   chan *Client
	unregister chan *Client

	// Closed when Run returns
	done chan struct{}

	log *logger.Logger

	// Guards clients for the read-only accessors
	mu sync.RWMutex
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		log:        log,
	}
}

// Run starts the hub's main loop. It returns when ctx ends, closing every
// client's send channel so their write pumps hang up.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for id, client := range h.clients {
				client.close()
				delete(h.clients, id)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			total := len(h.clients)
			h.mu.Unlock()
			h.log.WithFields(map[string]interface{}{
				"client_id": client.ID,
				"email":     client.Email,
				"total":     total,
			}).Info("✅ [WEBSOCKET] Client connected")

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				client.close()
				h.log.WithFields(map[string]interface{}{
					"client_id": client.ID,
					"remaining": len(h.clients),
				}).Info("🔴 [WEBSOCKET] Client disconnected")
			}
			h.mu.Unlock()

		case data := <-h.broadcast:
			h.mu.Lock()
			for id, client := range h.clients {
				if !client.enqueue(data) {
					client.close()
					delete(h.clients, id)
					h.log.WithField("client_id", id).Warn("⚠️ Client buffer full, disconnecting")
				}
			}
			h.mu.Unlock()
		}
	}
}

// Register adds client to the hub. It reports false once the hub stopped.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes client; safe to call after the hub stopped
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Broadcast queues data for every connected client. When the queue is
// full the message is dropped; the next location tick supersedes it.
func (h *Hub) Broadcast(data interface{}) {
	encoded, err := json.Marshal(data)
	if err != nil {
		h.log.WithError(err).Error("❌ Failed to marshal broadcast message")
		return
	}

	select {
	case h.broadcast <- encoded:
	default:
		h.log.Warn("⚠️ Broadcast queue full, dropping message")
	}
}

// LocationUpdated pushes a moved truck to every dashboard
func (h *Hub) LocationUpdated(_ context.Context, location models.TruckLocation) {
	h.Broadcast(Envelope{Type: TypeLocationUpdate, Data: location})
}

// GetClientCount returns the number of connected clients
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// GetConnectedClientIDs returns a list of all connected client IDs
func (h *Hub) GetConnectedClientIDs() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	ids := make([]string, 0, len(h.clients))
	for id := range h.clients {
		ids = append(ids, id)
	}
	return ids
}
