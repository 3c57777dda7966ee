package mission

import (
	"errors"
	"log/slog"
	"time"

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

type completeRequest struct {
	Date string `json:"date"`
}

func (h *Handler) Complete(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Code: dto.CodeUnauthenticated, Message: "Not authenticated",
		})
	}

	var req completeRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Code: dto.CodeInvalidRequest, Message: "Invalid request body",
		})
	}
	if req.Date == "" {
		req.Date = time.Now().UTC().Format("2006-01-02")
	}

	updated, coins, err := h.service.Complete(user, req.Date)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDate):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Code: dto.CodeInvalidRequest, Message: "date must be YYYY-MM-DD",
			})
		case errors.Is(err, ErrAlreadyCompleted):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Code: dto.CodeAlreadyCompleted, Message: "Mission already completed today",
			})
		default:
			slog.Error("mission completion failed", "error", err.Error(), "user_id", user.ID.String())
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Code: dto.CodeDatabaseError, Message: "Failed to complete mission",
			})
		}
	}

	return c.JSON(fiber.Map{
		"message":      "Mission completed!",
		"coins_earned": coins,
		"user":         updated,
	})
}

func (h *Handler) TodayStatus(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Code: dto.CodeUnauthenticated, Message: "Not authenticated",
		})
	}

	completed, date, err := h.service.TodayStatus(user)
	if err != nil {
		slog.Error("mission status lookup failed", "error", err.Error(), "user_id", user.ID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Code: dto.CodeDatabaseError, Message: "Failed to load mission status",
		})
	}

	return c.JSON(fiber.Map{
		"completed": completed,
		"date":      date,
	})
}
