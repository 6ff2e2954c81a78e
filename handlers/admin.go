package handlers

import (
	"log"
	"net/http"

	"rumor-checker/logger"

	"github.com/gorilla/websocket"
)

type AdminHandler struct {
	token string
}

func NewAdminHandler(token string) *AdminHandler {
	return &AdminHandler{token: token}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StreamLogs — GET /admin/logs, pushes live log lines over a websocket.
// When ADMIN_TOKEN is configured the token query parameter must match.
func (h *AdminHandler) StreamLogs(w http.ResponseWriter, r *http.Request) {
	if h.token != "" && r.URL.Query().Get("token") != h.token {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ADMIN] WebSocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	logsChan := logger.Instance.Subscribe()
	defer logger.Instance.Unsubscribe(logsChan)

	// Watch for the client closing the connection.
	done := make(chan struct{})
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				close(done)
				return
			}
		}
	}()

	for {
		select {
		case msg := <-logsChan:
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
