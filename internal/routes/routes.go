package routes

import (
	"time"

	"github.com/KimShota/Universe/internal/apps"
	"github.com/KimShota/Universe/internal/config"
	"github.com/KimShota/Universe/internal/handlers"
	"github.com/KimShota/Universe/internal/middleware"
	"github.com/KimShota/Universe/internal/services"
	"github.com/KimShota/Universe/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// Setup mounts the full route tree: health probes at the root, the
// authless session exchange, then every plugin behind the session
// middleware under /api.
func Setup(
	app *fiber.App,
	cfg *config.Config,
	st store.Store,
	authService *services.AuthService,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	plugins []apps.Plugin,
) {
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.Check)

	api := app.Group("/api", limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	// Tighter limit on the exchange endpoint: it calls out to the auth
	// provider.
	api.Post("/auth/session", limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}), authHandler.ExchangeSession)

	protected := api.Group("", middleware.SessionProtected(authService))

	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/logout", authHandler.Logout)
	protected.Delete("/auth/account", authHandler.DeleteAccount)
	protected.Get("/user/profile", authHandler.Me)

	for _, plugin := range plugins {
		plugin.RegisterRoutes(protected, st, cfg)
	}
}
