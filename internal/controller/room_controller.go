package controller

import (
	"errors"

	"beertally-be/internal/dto"
	"beertally-be/internal/pkg/serverutils"
	"beertally-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IRoomController interface {
	RegisterRoutes(r fiber.Router, authMW fiber.Handler)
	CreateRoom(ctx *fiber.Ctx) error
	GetRoom(ctx *fiber.Ctx) error
	GetMessages(ctx *fiber.Ctx) error
	GetParticipants(ctx *fiber.Ctx) error
}

type roomController struct {
	rooms    service.IRoomService
	messages service.IMessageService
}

func NewRoomController(rooms service.IRoomService, messages service.IMessageService) IRoomController {
	return &roomController{rooms: rooms, messages: messages}
}

func (c *roomController) RegisterRoutes(r fiber.Router, authMW fiber.Handler) {
	h := r.Group("/rooms")
	h.Use(authMW)
	h.Post("/", c.CreateRoom)
	h.Get("/:code", c.GetRoom)
	h.Get("/:code/messages", c.GetMessages)
	h.Get("/:code/participants", c.GetParticipants)
}

func (c *roomController) CreateRoom(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uuid.UUID)

	var req dto.CreateRoomRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.rooms.CreateRoom(ctx.UserContext(), userId, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoomNameRequired):
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		case errors.Is(err, service.ErrCodeSpaceExhausted):
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(serverutils.ErrorResponse(503, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Room created", res))
}

func (c *roomController) GetRoom(ctx *fiber.Ctx) error {
	res, err := c.rooms.FindByCode(ctx.UserContext(), ctx.Params("code"))
	if err != nil {
		if errors.Is(err, service.ErrRoomNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Room not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Room details", res))
}

func (c *roomController) GetMessages(ctx *fiber.Ctx) error {
	room, err := c.rooms.FindByCode(ctx.UserContext(), ctx.Params("code"))
	if err != nil {
		if errors.Is(err, service.ErrRoomNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Room not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	limit := ctx.QueryInt("limit", 0)
	history, err := c.messages.Recent(ctx.UserContext(), room.Id, limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Room messages", history))
}

func (c *roomController) GetParticipants(ctx *fiber.Ctx) error {
	room, err := c.rooms.FindByCode(ctx.UserContext(), ctx.Params("code"))
	if err != nil {
		if errors.Is(err, service.ErrRoomNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Room not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	participants, err := c.rooms.Participants(ctx.UserContext(), room.Id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Room participants", participants))
}
