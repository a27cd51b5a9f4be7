package serverutils

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"beertally-be/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	session *store.Session
}

func (s *stubResolver) Resolve(ctx context.Context, token string) (*store.Session, error) {
	if s.session != nil && token == s.session.Token {
		return s.session, nil
	}
	return nil, errors.New("unknown token")
}

func newProtectedApp(resolver TokenResolver) *fiber.App {
	app := fiber.New()
	app.Get("/protected", SessionMiddleware(resolver), func(ctx *fiber.Ctx) error {
		userId := ctx.Locals("user_id").(uuid.UUID)
		return ctx.JSON(SuccessResponse("ok", userId))
	})
	return app
}

func TestSessionMiddlewareRejectsMissingToken(t *testing.T) {
	app := newProtectedApp(&stubResolver{})

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestSessionMiddlewareRejectsUnknownToken(t *testing.T) {
	app := newProtectedApp(&stubResolver{})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestSessionMiddlewareAcceptsBearerHeader(t *testing.T) {
	session := &store.Session{Token: "good-token", UserID: uuid.New(), DisplayName: "Jan"}
	app := newProtectedApp(&stubResolver{session: session})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSessionMiddlewareAcceptsQueryToken(t *testing.T) {
	// Browser websocket handshakes cannot set headers.
	session := &store.Session{Token: "good-token", UserID: uuid.New(), DisplayName: "Jan"}
	app := newProtectedApp(&stubResolver{session: session})

	req := httptest.NewRequest("GET", "/protected?token=good-token", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
