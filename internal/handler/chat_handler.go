package handler

import (
	"beertally-be/internal/pkg/logger"
	"beertally-be/internal/service"
	internalWS "beertally-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type ChatHandler struct {
	identity service.IIdentityService
	hub      *internalWS.Hub
	bridge   *internalWS.ChatBridge
	logger   logger.ILogger
}

func NewChatHandler(identity service.IIdentityService, hub *internalWS.Hub, bridge *internalWS.ChatBridge, log logger.ILogger) *ChatHandler {
	return &ChatHandler{
		identity: identity,
		hub:      hub,
		bridge:   bridge,
		logger:   log,
	}
}

func (h *ChatHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/ws", h.ServeWs)
}

// ServeWs authenticates the handshake and upgrades the connection.
func (h *ChatHandler) ServeWs(c *fiber.Ctx) error {
	// Browsers cannot set headers on a WebSocket handshake, so the query
	// param is checked first.
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}

	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token (Query 'token' or Header 'Authorization')"})
	}

	session, err := h.identity.Resolve(c.UserContext(), tokenStr)
	if err != nil {
		h.logger.Warn("ChatHandler", "Invalid token in WS handshake", map[string]interface{}{"error": err.Error()})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	if websocket.IsWebSocketUpgrade(c) {
		userID := session.UserID
		displayName := session.DisplayName
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("ChatHandler", "Starting WebSocket session", map[string]interface{}{"user_id": userID})
			internalWS.ServeWs(h.hub, conn, h.bridge, userID, displayName)
			h.logger.Info("ChatHandler", "WebSocket session ended", map[string]interface{}{"user_id": userID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}
