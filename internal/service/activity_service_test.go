package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityRecordAndRecent(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewActivityService(factory)

	err := svc.Record(context.Background(), "ROOM_CREATED", map[string]interface{}{"code": "ABC123"})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	err = svc.Record(context.Background(), "TALLY_RECORDED", nil)
	require.NoError(t, err)

	feed, err := svc.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, feed, 2)

	// Newest first.
	assert.Equal(t, "TALLY_RECORDED", feed[0].EventType)
	assert.Equal(t, "ROOM_CREATED", feed[1].EventType)
	assert.Equal(t, "ABC123", feed[1].Metadata["code"])
}

func TestActivityRecentLimit(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewActivityService(factory)

	for i := 0; i < 5; i++ {
		err := svc.Record(context.Background(), fmt.Sprintf("EVENT_%d", i), nil)
		require.NoError(t, err)
	}

	feed, err := svc.Recent(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, feed, 2)
}
