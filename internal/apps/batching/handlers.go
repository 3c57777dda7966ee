package batching

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

func (h *Handler) List(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Code: dto.CodeUnauthenticated, Message: "Not authenticated",
		})
	}

	scripts, err := h.service.List(user.ID)
	if err != nil {
		slog.Error("batching list failed", "error", err.Error(), "user_id", user.ID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Code: dto.CodeDatabaseError, Message: "Failed to load batching scripts",
		})
	}
	if scripts == nil {
		scripts = []models.BatchingScript{}
	}
	return c.JSON(fiber.Map{"scripts": scripts})
}

type saveRequest struct {
	Script models.BatchingScript `json:"script"`
}

func (h *Handler) Save(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Code: dto.CodeUnauthenticated, Message: "Not authenticated",
		})
	}

	var req saveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Code: dto.CodeInvalidRequest, Message: "Invalid request body",
		})
	}

	script, err := h.service.Save(user.ID, req.Script)
	if err != nil {
		if errors.Is(err, ErrInvalidScriptID) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Code: dto.CodeInvalidRequest, Message: "script id must be a non-empty string of at most 64 characters",
			})
		}
		slog.Error("batching save failed", "error", err.Error(), "user_id", user.ID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Code: dto.CodeDatabaseError, Message: "Failed to save batching script",
		})
	}
	return c.JSON(fiber.Map{"message": "Script saved", "script": script})
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Code: dto.CodeUnauthenticated, Message: "Not authenticated",
		})
	}

	scriptID := c.Params("scriptId")
	if err := h.service.Delete(user.ID, scriptID); err != nil {
		switch {
		case errors.Is(err, ErrInvalidScriptID):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Code: dto.CodeInvalidRequest, Message: "script id must be a non-empty string of at most 64 characters",
			})
		case errors.Is(err, ErrScriptNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Code: dto.CodeNotFound, Message: "Script not found",
			})
		default:
			slog.Error("batching delete failed", "error", err.Error(), "user_id", user.ID.String())
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Code: dto.CodeDatabaseError, Message: "Failed to delete batching script",
			})
		}
	}
	return c.JSON(fiber.Map{"message": "Script deleted"})
}
