package schedule

import (
	"log/slog"

	"github.com/KimShota/Universe/internal/dto"
	"github.com/KimShota/Universe/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Get(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Code: dto.CodeUnauthenticated, Message: "Not authenticated",
		})
	}

	days, updatedAt, err := h.service.Get(user.ID)
	if err != nil {
		slog.Error("schedule load failed", "error", err.Error(), "user_id", user.ID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Code: dto.CodeDatabaseError, Message: "Failed to load schedule",
		})
	}

	return c.JSON(fiber.Map{
		"schedule":   days,
		"updated_at": updatedAt,
	})
}

type putRequest struct {
	Schedule map[string]DayPlan `json:"schedule"`
}

func (h *Handler) Put(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Code: dto.CodeUnauthenticated, Message: "Not authenticated",
		})
	}

	var req putRequest
	if err := c.BodyParser(&req); err != nil || req.Schedule == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Code: dto.CodeInvalidRequest, Message: "Invalid request body",
		})
	}

	updatedAt, err := h.service.Put(user.ID, req.Schedule)
	if err != nil {
		slog.Error("schedule save failed", "error", err.Error(), "user_id", user.ID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Code: dto.CodeDatabaseError, Message: "Failed to save schedule",
		})
	}

	return c.JSON(fiber.Map{
		"schedule":   req.Schedule,
		"updated_at": updatedAt,
	})
}
