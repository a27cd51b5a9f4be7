package websocket

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func newTestClient(h *Hub) *Client {
	return newTestClientWithBuffer(h, 16)
}

func newTestClientWithBuffer(h *Hub, size int) *Client {
	return &Client{
		Hub:    h,
		UserID: uuid.New(),
		Send:   make(chan []byte, size),
		done:   make(chan struct{}),
	}
}

func runHub(t *testing.T) *Hub {
	t.Helper()
	h := NewHub(noopLogger{})
	go h.Run()
	return h
}

func register(t *testing.T, h *Hub) *Client {
	t.Helper()
	c := newTestClient(h)
	h.register <- c
	return c
}

func recv(t *testing.T, c *Client) []byte {
	t.Helper()
	select {
	case data := <-c.Send:
		return data
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for frame")
		return nil
	}
}

func TestBroadcastToRoomReachesSubscribersOnly(t *testing.T) {
	h := runHub(t)
	roomId := uuid.New()

	inRoom := register(t, h)
	alsoInRoom := register(t, h)
	outside := register(t, h)

	h.Subscribe(inRoom, roomId)
	h.Subscribe(alsoInRoom, roomId)

	h.BroadcastToRoom(roomId, []byte("hello"))

	assert.Equal(t, []byte("hello"), recv(t, inRoom))
	assert.Equal(t, []byte("hello"), recv(t, alsoInRoom))
	assert.Empty(t, outside.Send)
}

func TestBroadcastToOthersSkipsSender(t *testing.T) {
	h := runHub(t)
	roomId := uuid.New()

	sender := register(t, h)
	other := register(t, h)
	h.Subscribe(sender, roomId)
	h.Subscribe(other, roomId)

	h.BroadcastToOthers(roomId, sender, []byte("ping"))

	assert.Equal(t, []byte("ping"), recv(t, other))
	assert.Empty(t, sender.Send)
}

func TestSubscribeMovesClientBetweenRooms(t *testing.T) {
	h := runHub(t)
	oldRoom := uuid.New()
	newRoom := uuid.New()

	c := register(t, h)
	h.Subscribe(c, oldRoom)
	require.Equal(t, 1, h.RoomSize(oldRoom))

	h.Subscribe(c, newRoom)
	assert.Equal(t, 0, h.RoomSize(oldRoom))
	assert.Equal(t, 1, h.RoomSize(newRoom))
	assert.Equal(t, newRoom, c.RoomID)
}

func TestUnsubscribeClearsRoom(t *testing.T) {
	h := runHub(t)
	roomId := uuid.New()

	c := register(t, h)
	h.Subscribe(c, roomId)
	h.Unsubscribe(c)

	assert.Equal(t, uuid.Nil, c.RoomID)
	assert.Equal(t, 0, h.RoomSize(roomId))

	// Broadcasting to the emptied room is a no-op.
	h.BroadcastToRoom(roomId, []byte("ghost"))
	assert.Empty(t, c.Send)
}

func TestSlowConsumerEvictionDuringConcurrentBroadcasts(t *testing.T) {
	h := runHub(t)
	roomId := uuid.New()

	slow := newTestClientWithBuffer(h, 1)
	h.register <- slow
	h.Subscribe(slow, roomId)
	slow.Send <- []byte("filler") // buffer now full

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.BroadcastToRoom(roomId, []byte("burst"))
		}()
	}
	wg.Wait()

	require.Eventually(t, func() bool {
		return h.RoomSize(roomId) == 0
	}, time.Second, 10*time.Millisecond)

	select {
	case <-slow.done:
	case <-time.After(time.Second):
		t.Fatal("evicted client was never signalled to shut down")
	}

	// A broadcast that still holds the evicted client's channel must not
	// panic, and late frames are simply dropped.
	h.BroadcastToRoom(roomId, []byte("late"))
}

func TestEvictedClientKeepsRoomIDForDisconnect(t *testing.T) {
	h := runHub(t)
	roomId := uuid.New()

	c := register(t, h)
	h.Subscribe(c, roomId)

	h.unregister <- c

	require.Eventually(t, func() bool {
		select {
		case <-c.done:
			return true
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)

	// The disconnect handler still needs to know which room to notify.
	assert.Equal(t, roomId, c.RoomID)
}

func TestUnregisterRemovesClientFromRoom(t *testing.T) {
	h := runHub(t)
	roomId := uuid.New()

	c := register(t, h)
	h.Subscribe(c, roomId)

	h.unregister <- c

	require.Eventually(t, func() bool {
		return h.RoomSize(roomId) == 0
	}, time.Second, 10*time.Millisecond)
}
