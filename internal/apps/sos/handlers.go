package sos

import (
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

type completeRequest struct {
	IssueType    string   `json:"issue_type"`
	Asteroids    []string `json:"asteroids"`
	Affirmations []string `json:"affirmations"`
}

func (h *Handler) Complete(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Code: dto.CodeUnauthenticated, Message: "Not authenticated",
		})
	}

	var req completeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Code: dto.CodeInvalidRequest, Message: "Invalid request body",
		})
	}

	updated, coins, err := h.service.Complete(user, req.IssueType, req.Asteroids, req.Affirmations)
	if err != nil {
		slog.Error("sos completion failed", "error", err.Error(), "user_id", user.ID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Code: dto.CodeDatabaseError, Message: "Failed to complete SOS",
		})
	}

	return c.JSON(fiber.Map{
		"message":      "SOS completed! You've earned 10 coins.",
		"coins_earned": coins,
		"user":         updated,
	})
}

func (h *Handler) History(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Code: dto.CodeUnauthenticated, Message: "Not authenticated",
		})
	}

	completions, err := h.service.History(user)
	if err != nil {
		slog.Error("sos history lookup failed", "error", err.Error(), "user_id", user.ID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Code: dto.CodeDatabaseError, Message: "Failed to load SOS history",
		})
	}
	if completions == nil {
		completions = []models.SOSCompletion{}
	}

	return c.JSON(fiber.Map{"history": completions})
}
