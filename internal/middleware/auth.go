package middleware

import (
	"errors"
	"strings"

	"github.com/KimShota/Universe/internal/dto"
	"github.com/KimShota/Universe/internal/models"
	"github.com/KimShota/Universe/internal/services"
	"github.com/gofiber/fiber/v2"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "session_token"

const currentUserKey = "current_user"

// SessionProtected resolves the request credential — session cookie
// first, Authorization bearer as fallback — to a live user record and
// stores it in the request context. It is the only authorization
// mechanism; handlers scope queries by the resolved user id.
func SessionProtected(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookieName)
		if token == "" {
			header := c.Get(fiber.HeaderAuthorization)
			if strings.HasPrefix(header, "Bearer ") {
				token = strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			}
		}
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Code: dto.CodeUnauthenticated, Message: "Not authenticated",
			})
		}

		user, err := auth.ResolveSession(token)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidSession):
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
					Error: true, Code: dto.CodeInvalidSession, Message: "Invalid session",
				})
			case errors.Is(err, services.ErrSessionExpired):
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
					Error: true, Code: dto.CodeSessionExpired, Message: "Session expired",
				})
			case errors.Is(err, services.ErrUserNotFound):
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
					Error: true, Code: dto.CodeUserNotFound, Message: "User not found",
				})
			default:
				return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
					Error: true, Code: dto.CodeDatabaseError, Message: "Internal server error",
				})
			}
		}

		c.Locals(currentUserKey, user)
		return c.Next()
	}
}

// CurrentUser returns the user resolved by SessionProtected.
func CurrentUser(c *fiber.Ctx) (*models.User, error) {
	user, ok := c.Locals(currentUserKey).(*models.User)
	if !ok {
		return nil, errors.New("no authenticated user in context")
	}
	return user, nil
}
