package middleware

import (
	"github.com/KimShota/Universe/internal/config"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func CORS(cfg *config.Config) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Authorization, Accept",
		AllowMethods: "GET, POST, PUT, DELETE, PATCH, OPTIONS",
		// Browsers refuse credentialed CORS with a wildcard origin, so
		// cookies only flow when explicit origins are configured.
		AllowCredentials: cfg.CORSOrigins != "*",
	})
}
