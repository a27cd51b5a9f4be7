package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"beertally-be/internal/dto"
	"beertally-be/internal/pkg/logger"
	"beertally-be/internal/service"

	"github.com/google/uuid"
)

// ChatBridge connects the websocket layer to the room and message services.
// Service sentinel errors become non-fatal error events on the connection.
type ChatBridge struct {
	hub      *Hub
	rooms    service.IRoomService
	messages service.IMessageService
	logger   logger.ILogger
}

func NewChatBridge(hub *Hub, rooms service.IRoomService, messages service.IMessageService, log logger.ILogger) *ChatBridge {
	return &ChatBridge{
		hub:      hub,
		rooms:    rooms,
		messages: messages,
		logger:   log,
	}
}

func (b *ChatBridge) HandleJoinRoom(ctx context.Context, client *Client, code string) {
	// Joining while already in a room leaves the old one first so the old
	// room's roster never shows a ghost.
	if client.RoomID != uuid.Nil {
		b.leaveCurrentRoom(ctx, client)
	}

	room, err := b.rooms.Join(ctx, code, client.UserID)
	if err != nil {
		if errors.Is(err, service.ErrRoomNotFound) {
			client.SendError("room not found")
		} else {
			b.logger.Error("ChatBridge", "Join failed", map[string]interface{}{"user_id": client.UserID, "code": code, "error": err.Error()})
			client.SendError("could not join room")
		}
		return
	}

	b.hub.Subscribe(client, room.Id)

	history, err := b.messages.Recent(ctx, room.Id, 0)
	if err != nil {
		b.logger.Error("ChatBridge", "History load failed", map[string]interface{}{"room_id": room.Id, "error": err.Error()})
		history = nil
	}
	participants, err := b.rooms.Participants(ctx, room.Id)
	if err != nil {
		b.logger.Error("ChatBridge", "Roster load failed", map[string]interface{}{"room_id": room.Id, "error": err.Error()})
		participants = nil
	}

	client.SendEvent("room-joined", dto.WsRoomJoinedData{
		Room:         *room,
		History:      history,
		Participants: participants,
	})

	b.broadcastToOthers(room.Id, client, "user-joined", dto.WsUserEventData{
		UserId:      client.UserID,
		DisplayName: client.DisplayName,
	})
	b.broadcastRoster(ctx, room.Id)
}

func (b *ChatBridge) HandleSendMessage(ctx context.Context, client *Client, body string) {
	if client.RoomID == uuid.Nil {
		client.SendError("join a room first")
		return
	}

	message, err := b.messages.Append(ctx, client.RoomID, client.UserID, body)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyMessage):
			client.SendError("message body is empty")
		case errors.Is(err, service.ErrMessageTooLong):
			client.SendError("message is too long")
		default:
			b.logger.Error("ChatBridge", "Append failed", map[string]interface{}{"user_id": client.UserID, "error": err.Error()})
			client.SendError("could not send message")
		}
		return
	}

	b.broadcastToRoom(client.RoomID, "new-message", message)
}

func (b *ChatBridge) HandleDisconnect(ctx context.Context, client *Client) {
	if client.RoomID == uuid.Nil {
		return
	}
	b.leaveCurrentRoom(ctx, client)
}

// leaveCurrentRoom detaches the client and tells the remaining occupants.
func (b *ChatBridge) leaveCurrentRoom(ctx context.Context, client *Client) {
	roomId := client.RoomID

	if err := b.rooms.Leave(ctx, roomId, client.UserID); err != nil {
		b.logger.Error("ChatBridge", "Leave failed", map[string]interface{}{"user_id": client.UserID, "room_id": roomId, "error": err.Error()})
	}

	b.hub.Unsubscribe(client)

	b.broadcastToRoom(roomId, "user-left", dto.WsUserEventData{
		UserId:      client.UserID,
		DisplayName: client.DisplayName,
	})
	b.broadcastRoster(ctx, roomId)
}

func (b *ChatBridge) broadcastRoster(ctx context.Context, roomId uuid.UUID) {
	participants, err := b.rooms.Participants(ctx, roomId)
	if err != nil {
		b.logger.Error("ChatBridge", "Roster load failed", map[string]interface{}{"room_id": roomId, "error": err.Error()})
		return
	}
	b.broadcastToRoom(roomId, "participants-updated", participants)
}

func (b *ChatBridge) broadcastToRoom(roomId uuid.UUID, eventType string, data interface{}) {
	payload, err := json.Marshal(dto.WsOutbound{Type: eventType, Data: data})
	if err != nil {
		return
	}
	b.hub.BroadcastToRoom(roomId, payload)
}

func (b *ChatBridge) broadcastToOthers(roomId uuid.UUID, except *Client, eventType string, data interface{}) {
	payload, err := json.Marshal(dto.WsOutbound{Type: eventType, Data: data})
	if err != nil {
		return
	}
	b.hub.BroadcastToOthers(roomId, except, payload)
}
