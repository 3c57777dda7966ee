package analysis

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

	entries, err := h.service.List(user.ID)
	if err != nil {
		slog.Error("analysis list failed", "error", err.Error(), "user_id", user.ID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Code: dto.CodeDatabaseError, Message: "Failed to load analysis entries",
		})
	}
	if entries == nil {
		entries = []models.AnalysisEntry{}
	}
	return c.JSON(fiber.Map{"entries": entries})
}

type saveRequest struct {
	Entry models.AnalysisEntry `json:"entry"`
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

	entry, err := h.service.Save(user.ID, req.Entry)
	if err != nil {
		if errors.Is(err, ErrInvalidEntryID) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Code: dto.CodeInvalidRequest, Message: "entry id must be a non-empty string of at most 64 characters",
			})
		}
		slog.Error("analysis save failed", "error", err.Error(), "user_id", user.ID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Code: dto.CodeDatabaseError, Message: "Failed to save analysis entry",
		})
	}
	return c.JSON(fiber.Map{"message": "Entry saved", "entry": entry})
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Code: dto.CodeUnauthenticated, Message: "Not authenticated",
		})
	}

	entryID := c.Params("entryId")
	if err := h.service.Delete(user.ID, entryID); err != nil {
		switch {
		case errors.Is(err, ErrInvalidEntryID):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Code: dto.CodeInvalidRequest, Message: "entry id must be a non-empty string of at most 64 characters",
			})
		case errors.Is(err, ErrEntryNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Code: dto.CodeNotFound, Message: "Entry not found",
			})
		default:
			slog.Error("analysis delete failed", "error", err.Error(), "user_id", user.ID.String())
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Code: dto.CodeDatabaseError, Message: "Failed to delete analysis entry",
			})
		}
	}
	return c.JSON(fiber.Map{"message": "Entry deleted"})
}
