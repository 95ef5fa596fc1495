package websocket

import (
	"sync"

	importservices "inventory-sync-backend/imports/services"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// Client is one connected progress listener.
type Client struct {
	ID   uuid.UUID
	Conn *websocket.Conn
	Hub  *Hub
	Send chan importservices.ProgressEvent
}

// Hub fans import progress events out to every connected client. It
// implements imports/services.ProgressNotifier; a slow client's events are
// dropped rather than stalling the pipeline.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan importservices.ProgressEvent
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan importservices.ProgressEvent, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.broadcastToAll(event)
		}
	}
}

// Publish satisfies ProgressNotifier. Non-blocking: when the broadcast
// buffer is full the event is dropped.
func (h *Hub) Publish(event importservices.ProgressEvent) {
	select {
	case h.broadcast <- event:
	default:
	}
}

func (h *Hub) broadcastToAll(event importservices.ProgressEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.Send <- event:
		default:
			// Client not keeping up; skip this event for it.
		}
	}
}
