package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type RoomResponse struct {
	Id          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

type ParticipantResponse struct {
	UserId      uuid.UUID `json:"user_id"`
	DisplayName string    `json:"display_name"`
	JoinedAt    time.Time `json:"joined_at"`
}

type MessageResponse struct {
	Id         uuid.UUID `json:"id"`
	UserId     uuid.UUID `json:"user_id"`
	AuthorName string    `json:"author_name"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

// WebSocket envelopes. Every frame in either direction is {type, data}.

type WsInbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type WsOutbound struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

type WsJoinRoomData struct {
	Code string `json:"code"`
}

type WsSendMessageData struct {
	Body string `json:"body"`
}

type WsRoomJoinedData struct {
	Room         RoomResponse          `json:"room"`
	History      []MessageResponse     `json:"history"`
	Participants []ParticipantResponse `json:"participants"`
}

type WsUserEventData struct {
	UserId      uuid.UUID `json:"user_id"`
	DisplayName string    `json:"display_name"`
}

type WsErrorData struct {
	Message string `json:"message"`
}
