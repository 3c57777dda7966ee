package tips

import (
	"errors"
	"log/slog"

	"github.com/KimShota/Universe/internal/dto"
	"github.com/KimShota/Universe/internal/middleware"
	"github.com/KimShota/Universe/internal/models"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type completeQuizRequest struct {
	TipID string `json:"tip_id"`
	Score int    `json:"score"`
}

func (h *Handler) CompleteQuiz(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Code: dto.CodeUnauthenticated, Message: "Not authenticated",
		})
	}

	var req completeQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Code: dto.CodeInvalidRequest, Message: "Invalid request body",
		})
	}

	updated, coins, err := h.service.CompleteQuiz(user, req.TipID, req.Score)
	if err != nil {
		if errors.Is(err, ErrInvalidTipID) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Code: dto.CodeInvalidRequest, Message: "tip_id must be a non-empty string of at most 64 characters",
			})
		}
		slog.Error("quiz completion failed", "error", err.Error(), "user_id", user.ID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Code: dto.CodeDatabaseError, Message: "Failed to complete quiz",
		})
	}

	message := "Quiz completed! You've earned 10 coins."
	if coins == 0 {
		message = "Quiz already completed"
	}
	return c.JSON(fiber.Map{
		"message":      message,
		"coins_earned": coins,
		"user":         updated,
	})
}

func (h *Handler) Progress(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Code: dto.CodeUnauthenticated, Message: "Not authenticated",
		})
	}

	progress, err := h.service.Progress(user.ID)
	if err != nil {
		slog.Error("tip progress lookup failed", "error", err.Error(), "user_id", user.ID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Code: dto.CodeDatabaseError, Message: "Failed to load tip progress",
		})
	}
	if progress == nil {
		progress = []models.TipProgress{}
	}
	return c.JSON(fiber.Map{"progress": progress})
}
