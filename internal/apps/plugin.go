// Package apps defines the feature plugin contract. Each feature of the
// product — missions, SOS, creator universe, analysis, schedule, story
// finder, content tips, batching — is a self-contained plugin that owns
// its models and routes.
package apps

import (
	"github.com/KimShota/Universe/internal/config"
	"github.com/KimShota/Universe/internal/store"
	"github.com/gofiber/fiber/v2"
)

type Plugin interface {
	// ID is the plugin's stable identifier, used in logs.
	ID() string

	// Models returns the GORM models the plugin owns, for migration.
	Models() []interface{}

	// RegisterRoutes mounts the plugin's routes on an already
	// authenticated router group.
	RegisterRoutes(router fiber.Router, st store.Store, cfg *config.Config)
}
