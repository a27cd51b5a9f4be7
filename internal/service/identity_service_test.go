package service

import (
	"context"
	"testing"

	"beertally-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartSessionMintsToken(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewIdentityService(factory, newTestSessions(), nil)

	res, err := svc.StartSession(context.Background(), "", &dto.StartSessionRequest{Name: "Jan"})
	require.NoError(t, err)

	assert.Len(t, res.Token, 64)
	assert.Equal(t, "Jan", res.User.DisplayName)
}

func TestStartSessionDefaultsName(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewIdentityService(factory, newTestSessions(), nil)

	res, err := svc.StartSession(context.Background(), "", &dto.StartSessionRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Anonymous", res.User.DisplayName)
}

func TestStartSessionResolvesExistingToken(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewIdentityService(factory, newTestSessions(), nil)

	first, err := svc.StartSession(context.Background(), "", &dto.StartSessionRequest{Name: "Jan"})
	require.NoError(t, err)

	second, err := svc.StartSession(context.Background(), first.Token, &dto.StartSessionRequest{Name: "Ignored"})
	require.NoError(t, err)

	assert.Equal(t, first.Token, second.Token)
	assert.Equal(t, first.User.Id, second.User.Id)
	assert.Equal(t, "Jan", second.User.DisplayName)
}

func TestResolveRejectsUnknownToken(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewIdentityService(factory, newTestSessions(), nil)

	_, err := svc.Resolve(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestResolveHitsCacheAfterFirstLookup(t *testing.T) {
	factory := newTestFactory(t)
	sessions := newTestSessions()
	svc := NewIdentityService(factory, sessions, nil)

	res, err := svc.StartSession(context.Background(), "", &dto.StartSessionRequest{Name: "Jan"})
	require.NoError(t, err)

	session, err := svc.Resolve(context.Background(), res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.Id, session.UserID)

	cached, found := sessions.Get(res.Token)
	require.True(t, found)
	assert.Equal(t, res.User.Id, cached.UserID)
}

func TestUpdateNameRefreshesSession(t *testing.T) {
	factory := newTestFactory(t)
	sessions := newTestSessions()
	svc := NewIdentityService(factory, sessions, nil)

	res, err := svc.StartSession(context.Background(), "", &dto.StartSessionRequest{Name: "Jan"})
	require.NoError(t, err)

	updated, err := svc.UpdateName(context.Background(), res.User.Id, &dto.UpdateNameRequest{Name: "Jantje"})
	require.NoError(t, err)
	assert.Equal(t, "Jantje", updated.DisplayName)

	session, err := svc.Resolve(context.Background(), res.Token)
	require.NoError(t, err)
	assert.Equal(t, "Jantje", session.DisplayName)
}

func TestUpdateNameRejectsBlank(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewIdentityService(factory, newTestSessions(), nil)

	res, err := svc.StartSession(context.Background(), "", &dto.StartSessionRequest{Name: "Jan"})
	require.NoError(t, err)

	_, err = svc.UpdateName(context.Background(), res.User.Id, &dto.UpdateNameRequest{Name: "  "})
	assert.ErrorIs(t, err, ErrNameRequired)
}
