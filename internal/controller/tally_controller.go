package controller

import (
	"errors"

	"beertally-be/internal/pkg/serverutils"
	"beertally-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITallyController interface {
	RegisterRoutes(r fiber.Router, authMW fiber.Handler)
	Record(ctx *fiber.Ctx) error
	DeleteLast(ctx *fiber.Ctx) error
	MyCounts(ctx *fiber.Ctx) error
	Leaderboard(ctx *fiber.Ctx) error
}

type tallyController struct {
	tallies     service.ITallyService
	leaderboard service.ILeaderboardService
}

func NewTallyController(tallies service.ITallyService, leaderboard service.ILeaderboardService) ITallyController {
	return &tallyController{tallies: tallies, leaderboard: leaderboard}
}

func (c *tallyController) RegisterRoutes(r fiber.Router, authMW fiber.Handler) {
	h := r.Group("/tally")
	h.Use(authMW)
	h.Post("/", c.Record)
	h.Delete("/last", c.DeleteLast)
	h.Get("/me", c.MyCounts)

	r.Get("/leaderboard", authMW, c.Leaderboard)
}

func (c *tallyController) Record(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uuid.UUID)

	res, err := c.tallies.Record(ctx.UserContext(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Beer recorded", res))
}

func (c *tallyController) DeleteLast(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uuid.UUID)

	res, err := c.tallies.DeleteLast(ctx.UserContext(), userId)
	if err != nil {
		if errors.Is(err, service.ErrNoTallies) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Last beer removed", res))
}

func (c *tallyController) MyCounts(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uuid.UUID)

	res, err := c.tallies.MyCounts(ctx.UserContext(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Tally counts", res))
}

func (c *tallyController) Leaderboard(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 0)

	res, err := c.leaderboard.Top(ctx.UserContext(), limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Leaderboard", res))
}
