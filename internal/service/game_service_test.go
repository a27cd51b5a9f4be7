package service

import (
	"context"
	"testing"

	"beertally-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonalBestTracksHighestScore(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewGameService(factory)
	user := seedUser(t, factory, "Jan")

	for _, score := range []int{10, 40, 25} {
		_, err := svc.Submit(context.Background(), user.Id, &dto.SubmitScoreRequest{Score: score})
		require.NoError(t, err)
	}

	best, err := svc.PersonalBest(context.Background(), user.Id)
	require.NoError(t, err)
	assert.Equal(t, 40, best.Score)
}

func TestPersonalBestWithoutScores(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewGameService(factory)
	user := seedUser(t, factory, "Jan")

	best, err := svc.PersonalBest(context.Background(), user.Id)
	require.NoError(t, err)
	assert.Equal(t, 0, best.Score)
}

func TestTopRanksBestScorePerUser(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewGameService(factory)
	jan := seedUser(t, factory, "Jan")
	piet := seedUser(t, factory, "Piet")

	for _, score := range []int{10, 50} {
		_, err := svc.Submit(context.Background(), jan.Id, &dto.SubmitScoreRequest{Score: score})
		require.NoError(t, err)
	}
	_, err := svc.Submit(context.Background(), piet.Id, &dto.SubmitScoreRequest{Score: 30})
	require.NoError(t, err)

	top, err := svc.Top(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, top, 2)

	// One row per user, ranked by their best.
	assert.Equal(t, "Jan", top[0].DisplayName)
	assert.Equal(t, 50, top[0].Score)
	assert.Equal(t, "Piet", top[1].DisplayName)
	assert.Equal(t, 30, top[1].Score)
}
