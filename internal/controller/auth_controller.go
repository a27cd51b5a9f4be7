package controller

import (
	"errors"

	"beertally-be/internal/dto"
	"beertally-be/internal/pkg/serverutils"
	"beertally-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router, authMW fiber.Handler)
	StartSession(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
	UpdateName(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IIdentityService
}

func NewAuthController(service service.IIdentityService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router, authMW fiber.Handler) {
	h := r.Group("/auth")
	h.Post("/session", c.StartSession)
	h.Get("/me", authMW, c.Me)
	h.Patch("/name", authMW, c.UpdateName)
}

// StartSession is the only unauthenticated route: it mints or resolves an
// opaque session token.
func (c *authController) StartSession(ctx *fiber.Ctx) error {
	var req dto.StartSessionRequest
	// The body is optional, an empty one means "anonymous, mint me a token".
	_ = ctx.BodyParser(&req)
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	// An existing token may be presented for re-resolution.
	token := ""
	authHeader := ctx.Get("Authorization")
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		token = authHeader[7:]
	}

	res, err := c.service.StartSession(ctx.UserContext(), token, &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Session started", res))
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uuid.UUID)

	res, err := c.service.GetProfile(ctx.UserContext(), userId)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("User profile", res))
}

func (c *authController) UpdateName(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uuid.UUID)

	var req dto.UpdateNameRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.UpdateName(ctx.UserContext(), userId, &req)
	if err != nil {
		if errors.Is(err, service.ErrNameRequired) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Name updated", res))
}
