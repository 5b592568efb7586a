package websocket

import (
	"encoding/json"
	"net/http"

	"fleet-dashboard/internal/middleware"
	"fleet-dashboard/internal/models"
	"fleet-dashboard/internal/session"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS is enforced on the HTTP API; the feed carries no secrets
		return true
	},
}

// Snapshot returns the current truck locations sent to a client on connect
type Snapshot func() []models.TruckLocation

// HandleWebSocket upgrades HTTP connection to WebSocket. Browsers cannot
// set headers on the handshake, so the token may come in the query string.
func HandleWebSocket(hub *Hub, tokens *session.Tokens, snapshot Snapshot, authRequired bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var identity models.Session
		authenticated := false

		if tokenString := r.URL.Query().Get("token"); tokenString != "" {
			parsed, err := tokens.Parse(tokenString)
			if err != nil {
				hub.log.WithError(err).Warn("❌ Invalid token in query parameter")
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			identity, authenticated = parsed, true
		} else {
			// Fallback: Get user from context (set by Auth middleware)
			identity, authenticated = middleware.GetUserFromContext(r)
		}

		if authRequired && !authenticated {
			hub.log.Warn("❌ No user for WebSocket connection")
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			hub.log.WithError(err).Error("❌ WebSocket upgrade failed")
			return
		}

		client := NewClient(identity.Email, conn, hub)
		if snapshot != nil {
			if data, err := json.Marshal(Envelope{Type: TypeSnapshot, Data: snapshot()}); err == nil {
				client.enqueue(data)
			}
		}

		if !hub.Register(client) {
			conn.Close()
			return
		}

		go client.WritePump()
		go client.ReadPump()
	}
}
