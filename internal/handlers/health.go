package handlers

import (
	"net/http"

	"fleet-dashboard/internal/websocket"
	"fleet-dashboard/pkg/utils"
)

func Health(hub *websocket.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
			"status":  "ok",
			"clients": hub.GetClientCount(),
		})
	}
}
