package websocket

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"beertally-be/internal/dto"
	"beertally-be/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRoomService struct {
	room       dto.RoomResponse
	roster     []dto.ParticipantResponse
	leaveCalls []uuid.UUID
}

func newStubRoomService() *stubRoomService {
	return &stubRoomService{
		room: dto.RoomResponse{
			Id:          uuid.New(),
			Code:        "ABC123",
			DisplayName: "Borrel",
		},
	}
}

func (s *stubRoomService) CreateRoom(ctx context.Context, userId uuid.UUID, req *dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	return &s.room, nil
}

func (s *stubRoomService) FindByCode(ctx context.Context, code string) (*dto.RoomResponse, error) {
	if strings.EqualFold(strings.TrimSpace(code), s.room.Code) {
		return &s.room, nil
	}
	return nil, service.ErrRoomNotFound
}

func (s *stubRoomService) Join(ctx context.Context, code string, userId uuid.UUID) (*dto.RoomResponse, error) {
	if !strings.EqualFold(strings.TrimSpace(code), s.room.Code) {
		return nil, service.ErrRoomNotFound
	}
	s.roster = append(s.roster, dto.ParticipantResponse{UserId: userId})
	return &s.room, nil
}

func (s *stubRoomService) Leave(ctx context.Context, roomId, userId uuid.UUID) error {
	s.leaveCalls = append(s.leaveCalls, userId)
	for i, p := range s.roster {
		if p.UserId == userId {
			s.roster = append(s.roster[:i], s.roster[i+1:]...)
			break
		}
	}
	return nil
}

func (s *stubRoomService) Participants(ctx context.Context, roomId uuid.UUID) ([]dto.ParticipantResponse, error) {
	return s.roster, nil
}

type stubMessageService struct{}

func (s *stubMessageService) Append(ctx context.Context, roomId, userId uuid.UUID, body string) (*dto.MessageResponse, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, service.ErrEmptyMessage
	}
	return &dto.MessageResponse{Id: uuid.New(), UserId: userId, Body: body}, nil
}

func (s *stubMessageService) Recent(ctx context.Context, roomId uuid.UUID, limit int) ([]dto.MessageResponse, error) {
	return []dto.MessageResponse{{Body: "older message"}}, nil
}

func newTestBridge(t *testing.T) (*ChatBridge, *Hub, *stubRoomService) {
	t.Helper()
	h := runHub(t)
	rooms := newStubRoomService()
	bridge := NewChatBridge(h, rooms, &stubMessageService{}, noopLogger{})
	return bridge, h, rooms
}

func decodeFrame(t *testing.T, raw []byte) (string, json.RawMessage) {
	t.Helper()
	var frame struct {
		Type string          `json:"type"`
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &frame))
	return frame.Type, frame.Data
}

func TestSendMessageWithoutRoomYieldsError(t *testing.T) {
	bridge, h, _ := newTestBridge(t)
	c := register(t, h)

	bridge.HandleSendMessage(context.Background(), c, "proost")

	eventType, data := decodeFrame(t, recv(t, c))
	assert.Equal(t, "error", eventType)

	var payload dto.WsErrorData
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Equal(t, "join a room first", payload.Message)
	assert.Equal(t, uuid.Nil, c.RoomID)
}

func TestJoinRoomDeliversSnapshotAndNotifiesOthers(t *testing.T) {
	bridge, h, rooms := newTestBridge(t)

	occupant := register(t, h)
	bridge.HandleJoinRoom(context.Background(), occupant, "ABC123")
	drain(occupant)

	joiner := register(t, h)
	bridge.HandleJoinRoom(context.Background(), joiner, "abc123")

	// Joiner gets the snapshot first.
	eventType, data := decodeFrame(t, recv(t, joiner))
	require.Equal(t, "room-joined", eventType)

	var snapshot dto.WsRoomJoinedData
	require.NoError(t, json.Unmarshal(data, &snapshot))
	assert.Equal(t, rooms.room.Id, snapshot.Room.Id)
	assert.Len(t, snapshot.History, 1)
	assert.Len(t, snapshot.Participants, 2)

	// The occupant sees user-joined, then the refreshed roster.
	eventType, data = decodeFrame(t, recv(t, occupant))
	require.Equal(t, "user-joined", eventType)
	var joined dto.WsUserEventData
	require.NoError(t, json.Unmarshal(data, &joined))
	assert.Equal(t, joiner.UserID, joined.UserId)

	eventType, _ = decodeFrame(t, recv(t, occupant))
	assert.Equal(t, "participants-updated", eventType)
}

func TestJoinUnknownRoomYieldsErrorEvent(t *testing.T) {
	bridge, h, _ := newTestBridge(t)
	c := register(t, h)

	bridge.HandleJoinRoom(context.Background(), c, "NOPE42")

	eventType, _ := decodeFrame(t, recv(t, c))
	assert.Equal(t, "error", eventType)
	assert.Equal(t, uuid.Nil, c.RoomID)
}

func TestSendMessageBroadcastsToWholeRoom(t *testing.T) {
	bridge, h, _ := newTestBridge(t)

	sender := register(t, h)
	other := register(t, h)
	bridge.HandleJoinRoom(context.Background(), sender, "ABC123")
	bridge.HandleJoinRoom(context.Background(), other, "ABC123")
	drain(sender)
	drain(other)

	bridge.HandleSendMessage(context.Background(), sender, "proost")

	for _, c := range []*Client{sender, other} {
		eventType, data := decodeFrame(t, recv(t, c))
		require.Equal(t, "new-message", eventType)

		var msg dto.MessageResponse
		require.NoError(t, json.Unmarshal(data, &msg))
		assert.Equal(t, "proost", msg.Body)
		assert.Equal(t, sender.UserID, msg.UserId)
	}
}

func TestDisconnectNotifiesRemainingOccupants(t *testing.T) {
	bridge, h, rooms := newTestBridge(t)

	leaver := register(t, h)
	stayer := register(t, h)
	bridge.HandleJoinRoom(context.Background(), leaver, "ABC123")
	bridge.HandleJoinRoom(context.Background(), stayer, "ABC123")
	drain(leaver)
	drain(stayer)

	bridge.HandleDisconnect(context.Background(), leaver)

	eventType, data := decodeFrame(t, recv(t, stayer))
	require.Equal(t, "user-left", eventType)
	var left dto.WsUserEventData
	require.NoError(t, json.Unmarshal(data, &left))
	assert.Equal(t, leaver.UserID, left.UserId)

	eventType, _ = decodeFrame(t, recv(t, stayer))
	assert.Equal(t, "participants-updated", eventType)

	assert.Contains(t, rooms.leaveCalls, leaver.UserID)
	assert.Equal(t, uuid.Nil, leaver.RoomID)
}

func TestJoinWhileInRoomLeavesOldRoomFirst(t *testing.T) {
	bridge, h, rooms := newTestBridge(t)

	switcher := register(t, h)
	witness := register(t, h)
	bridge.HandleJoinRoom(context.Background(), switcher, "ABC123")
	bridge.HandleJoinRoom(context.Background(), witness, "ABC123")
	drain(switcher)
	drain(witness)

	// Unknown code: the old room must still see the departure before the
	// join attempt fails.
	bridge.HandleJoinRoom(context.Background(), switcher, "OTHER1")

	eventType, data := decodeFrame(t, recv(t, witness))
	require.Equal(t, "user-left", eventType)
	var left dto.WsUserEventData
	require.NoError(t, json.Unmarshal(data, &left))
	assert.Equal(t, switcher.UserID, left.UserId)

	assert.Contains(t, rooms.leaveCalls, switcher.UserID)
	assert.Equal(t, uuid.Nil, switcher.RoomID)
}

func TestMalformedInboundFrameYieldsError(t *testing.T) {
	bridge, h, _ := newTestBridge(t)
	c := register(t, h)
	c.bridge = bridge

	c.handleInbound([]byte("{not json"))
	eventType, _ := decodeFrame(t, recv(t, c))
	assert.Equal(t, "error", eventType)

	c.handleInbound([]byte(`{"type":"dance","data":{}}`))
	eventType, _ = decodeFrame(t, recv(t, c))
	assert.Equal(t, "error", eventType)
}

func drain(c *Client) {
	for {
		select {
		case <-c.Send:
		default:
			return
		}
	}
}
