package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"beertally-be/internal/dto"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// Bridge receives the decoded inbound frames of a connection. It owns the
// chat semantics; the client only shuttles bytes.
type Bridge interface {
	HandleJoinRoom(ctx context.Context, client *Client, code string)
	HandleSendMessage(ctx context.Context, client *Client, body string)
	HandleDisconnect(ctx context.Context, client *Client)
}

// Client is a middleman between the websocket connection and the hub. RoomID
// is uuid.Nil until a join-room succeeds and is only rewritten by Subscribe
// and Unsubscribe, both called from the connection's read loop.
type Client struct {
	Hub *Hub

	// The websocket connection.
	Conn *websocket.Conn

	UserID      uuid.UUID
	DisplayName string

	// Current room group, uuid.Nil when not in a room.
	RoomID uuid.UUID

	// Buffered channel of outbound messages. Never closed; broadcasters may
	// hold a reference to it after the hub has dropped the client.
	Send chan []byte

	// Closed by shutdown to make writePump tear the connection down.
	done      chan struct{}
	closeOnce sync.Once

	bridge Bridge
}

// shutdown signals writePump to close the connection. Safe to call more than
// once and from any goroutine.
func (c *Client) shutdown() {
	c.closeOnce.Do(func() { close(c.done) })
}

// SendEvent serializes an outbound envelope onto the client's buffer. The
// frame is dropped when the buffer is full; the hub will evict on the next
// broadcast anyway.
func (c *Client) SendEvent(eventType string, data interface{}) {
	payload, err := json.Marshal(dto.WsOutbound{Type: eventType, Data: data})
	if err != nil {
		return
	}
	select {
	case c.Send <- payload:
	default:
	}
}

// SendError emits a non-fatal error event. The connection stays open.
func (c *Client) SendError(message string) {
	c.SendEvent("error", dto.WsErrorData{Message: message})
}

// readPump pumps messages from the websocket connection to the bridge.
func (c *Client) readPump() {
	defer func() {
		c.bridge.HandleDisconnect(context.Background(), c)
		c.Hub.unregister <- c
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.logger.Warn("Client", "Unexpected close", map[string]interface{}{"user_id": c.UserID, "error": err.Error()})
			}
			break
		}
		c.handleInbound(raw)
	}
}

// handleInbound decodes one frame and dispatches it. Malformed frames and
// unknown types produce error events, never a disconnect.
func (c *Client) handleInbound(raw []byte) {
	var envelope dto.WsInbound
	if err := json.Unmarshal(raw, &envelope); err != nil {
		c.SendError("malformed message")
		return
	}

	ctx := context.Background()

	switch envelope.Type {
	case "join-room":
		var data dto.WsJoinRoomData
		if err := json.Unmarshal(envelope.Data, &data); err != nil {
			c.SendError("malformed join-room data")
			return
		}
		c.bridge.HandleJoinRoom(ctx, c, data.Code)

	case "send-message":
		var data dto.WsSendMessageData
		if err := json.Unmarshal(envelope.Data, &data); err != nil {
			c.SendError("malformed send-message data")
			return
		}
		c.bridge.HandleSendMessage(ctx, c, data.Body)

	default:
		c.SendError("unknown message type")
	}
}

// writePump pumps messages from the hub to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-c.done:
			// The hub dropped this client.
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ServeWs runs the pump loops for an upgraded connection. Blocks until the
// connection drops.
func ServeWs(hub *Hub, conn *websocket.Conn, bridge Bridge, userID uuid.UUID, displayName string) {
	client := &Client{
		Hub:         hub,
		Conn:        conn,
		UserID:      userID,
		DisplayName: displayName,
		Send:        make(chan []byte, 256),
		done:        make(chan struct{}),
		bridge:      bridge,
	}
	client.Hub.register <- client

	go client.writePump()
	client.readPump()
}
