package controller

import (
	"beertally-be/internal/dto"
	"beertally-be/internal/pkg/serverutils"
	"beertally-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IGameController interface {
	RegisterRoutes(r fiber.Router, authMW fiber.Handler)
	Submit(ctx *fiber.Ctx) error
	Top(ctx *fiber.Ctx) error
	PersonalBest(ctx *fiber.Ctx) error
}

type gameController struct {
	service service.IGameService
}

func NewGameController(service service.IGameService) IGameController {
	return &gameController{service: service}
}

func (c *gameController) RegisterRoutes(r fiber.Router, authMW fiber.Handler) {
	h := r.Group("/game")
	h.Use(authMW)
	h.Post("/scores", c.Submit)
	h.Get("/scores/top", c.Top)
	h.Get("/scores/me", c.PersonalBest)
}

func (c *gameController) Submit(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uuid.UUID)

	var req dto.SubmitScoreRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.Submit(ctx.UserContext(), userId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Score submitted", res))
}

func (c *gameController) Top(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 0)

	res, err := c.service.Top(ctx.UserContext(), limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("High scores", res))
}

func (c *gameController) PersonalBest(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uuid.UUID)

	res, err := c.service.PersonalBest(ctx.UserContext(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Personal best", res))
}
