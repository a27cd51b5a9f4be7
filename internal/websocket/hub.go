package websocket

import (
	"sync"

	"beertally-be/internal/pkg/logger"

	"github.com/google/uuid"
)

// Hub tracks connected clients and their per-room broadcast groups. Rooms
// here are purely in-memory fan-out groups; membership persistence lives in
// the service layer.
type Hub struct {
	// All connected clients.
	clients map[*Client]bool

	// Room broadcast groups: RoomID -> set of subscribed clients.
	rooms map[uuid.UUID]map[*Client]bool

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Dedicated Logger
	logger logger.ILogger
}

func NewHub(log logger.ILogger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		rooms:      make(map[uuid.UUID]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"user_id": client.UserID})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				h.removeFromRoomLocked(client)
				delete(h.clients, client)
				// Send is never closed here: broadcasters snapshot clients
				// outside the lock and may still be sending. The done signal
				// lets writePump close the connection instead.
				client.shutdown()
				h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"user_id": client.UserID})
			}
			h.mu.Unlock()
		}
	}
}

// Subscribe moves the client into a room group, detaching it from any
// previous group first.
func (h *Hub) Subscribe(client *Client, roomId uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeFromRoomLocked(client)

	group, ok := h.rooms[roomId]
	if !ok {
		group = make(map[*Client]bool)
		h.rooms[roomId] = group
	}
	group[client] = true
	client.RoomID = roomId
}

// Unsubscribe detaches the client from its room group, if any.
func (h *Hub) Unsubscribe(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeFromRoomLocked(client)
	client.RoomID = uuid.Nil
}

// removeFromRoomLocked only touches the room map. RoomID is written by
// Subscribe and Unsubscribe alone, which run on the connection's own
// goroutine; the unregister path must not race that goroutine's reads.
func (h *Hub) removeFromRoomLocked(client *Client) {
	if client.RoomID == uuid.Nil {
		return
	}
	if group, ok := h.rooms[client.RoomID]; ok {
		delete(group, client)
		if len(group) == 0 {
			delete(h.rooms, client.RoomID)
		}
	}
}

// BroadcastToRoom sends a serialized frame to every client in the room.
func (h *Hub) BroadcastToRoom(roomId uuid.UUID, data []byte) {
	h.broadcast(roomId, nil, data)
}

// BroadcastToOthers sends to every client in the room except one.
func (h *Hub) BroadcastToOthers(roomId uuid.UUID, except *Client, data []byte) {
	h.broadcast(roomId, except, data)
}

func (h *Hub) broadcast(roomId uuid.UUID, except *Client, data []byte) {
	h.mu.RLock()
	group := h.rooms[roomId]
	targets := make([]*Client, 0, len(group))
	for client := range group {
		if client != except {
			targets = append(targets, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range targets {
		select {
		case client.Send <- data:
		default:
			// Slow consumer, evict rather than block the room.
			h.logger.Warn("Hub", "Client Send buffer full, dropping connection", map[string]interface{}{"user_id": client.UserID})
			h.unregister <- client
		}
	}
}

// RoomSize reports how many connections a room group currently holds.
func (h *Hub) RoomSize(roomId uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomId])
}
