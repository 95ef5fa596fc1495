package websocket

import (
	importservices "inventory-sync-backend/imports/services"

	"inventory-sync-backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type WsHandler struct {
	hub *Hub
}

func NewWsHandler(hub *Hub) *WsHandler {
	return &WsHandler{hub: hub}
}

// UpgradeRequired gates the route so only WebSocket upgrade requests reach
// the handler.
func UpgradeRequired(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// HandleProgress streams import progress events to the connected client
// until it disconnects.
func (h *WsHandler) HandleProgress(conn *websocket.Conn) {
	client := &Client{
		ID:   uuid.New(),
		Conn: conn,
		Hub:  h.hub,
		Send: make(chan importservices.ProgressEvent, 16),
	}
	h.hub.register <- client

	defer func() {
		h.hub.unregister <- client
		conn.Close()
	}()

	// Reader goroutine: we never expect client messages, but reading is
	// required to notice the close frame.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case event, ok := <-client.Send:
			if !ok {
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				config.Logger.Warn("Failed to write progress event", zap.String("client_id", client.ID.String()), zap.Error(err))
				return
			}
		case <-done:
			return
		}
	}
}
