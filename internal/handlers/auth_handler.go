package handlers

import (
	"errors"
	"log/slog"
	"time"

	"github.com/KimShota/Universe/internal/dto"
	"github.com/KimShota/Universe/internal/middleware"
	"github.com/KimShota/Universe/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
	sessionTTL  time.Duration
}

func NewAuthHandler(authService *services.AuthService, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, sessionTTL: sessionTTL}
}

// ExchangeSession trades the provider session id for a logged-in user
// and sets the session cookie.
func (h *AuthHandler) ExchangeSession(c *fiber.Ctx) error {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Code: dto.CodeInvalidRequest, Message: "session_id query parameter is required",
		})
	}

	user, token, err := h.authService.ExchangeSession(sessionID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidSessionID):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Code: dto.CodeInvalidSessionID, Message: "Invalid session ID",
			})
		case errors.Is(err, services.ErrProviderUnavailable):
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Error: true, Code: dto.CodeProviderUnavailable, Message: "Auth provider unavailable",
			})
		case errors.Is(err, services.ErrMalformedResponse):
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
				Error: true, Code: dto.CodeMalformedAuthResponse, Message: "Auth provider returned a malformed response",
			})
		default:
			slog.Error("session exchange failed", "error", err.Error(), "action", "exchange_session")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Code: dto.CodeDatabaseError, Message: "Failed to create session",
			})
		}
	}

	h.setSessionCookie(c, token)
	return c.JSON(dto.LoginResponse{User: user, SessionToken: token})
}

// Me returns the authenticated user's profile and gamification state.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Code: dto.CodeUnauthenticated, Message: "Not authenticated",
		})
	}
	return c.JSON(user)
}

// Logout revokes the user's sessions and clears the cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Code: dto.CodeUnauthenticated, Message: "Not authenticated",
		})
	}

	if err := h.authService.Logout(user.ID); err != nil {
		slog.Error("logout failed", "error", err.Error(), "user_id", user.ID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Code: dto.CodeDatabaseError, Message: "Failed to log out",
		})
	}

	h.clearSessionCookie(c)
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

// DeleteAccount removes the user and all owned data, then clears the
// cookie.
func (h *AuthHandler) DeleteAccount(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Code: dto.CodeUnauthenticated, Message: "Not authenticated",
		})
	}

	if err := h.authService.DeleteAccount(user.ID); err != nil {
		slog.Error("account deletion failed", "error", err.Error(), "user_id", user.ID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Code: dto.CodeDatabaseError, Message: "Failed to delete account",
		})
	}

	h.clearSessionCookie(c)
	return c.JSON(fiber.Map{"message": "Account deleted successfully"})
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})
}
