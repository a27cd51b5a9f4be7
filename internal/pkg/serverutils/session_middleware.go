package serverutils

import (
	"context"

	"beertally-be/pkg/store"

	"github.com/gofiber/fiber/v2"
)

// TokenResolver maps an opaque session token to a resolved session. Tokens
// not backed by a user are rejected; minting happens on /auth/session only.
type TokenResolver interface {
	Resolve(ctx context.Context, token string) (*store.Session, error)
}

// SessionMiddleware authenticates requests by opaque bearer token.
func SessionMiddleware(resolver TokenResolver) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		token := bearerToken(ctx)
		if token == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Missing token"))
		}

		session, err := resolver.Resolve(ctx.UserContext(), token)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid token"))
		}

		ctx.Locals("user_id", session.UserID)
		ctx.Locals("display_name", session.DisplayName)
		return ctx.Next()
	}
}

func bearerToken(ctx *fiber.Ctx) string {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:]
	}
	// WebSocket handshakes from browsers cannot set headers.
	return ctx.Query("token")
}
