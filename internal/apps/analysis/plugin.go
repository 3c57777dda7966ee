package analysis

import (
	"github.com/KimShota/Universe/internal/config"
	"github.com/KimShota/Universe/internal/models"
	"github.com/KimShota/Universe/internal/store"
	"github.com/gofiber/fiber/v2"
)

type Plugin struct{}

func New() *Plugin { return &Plugin{} }

func (p *Plugin) ID() string { return "analysis" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{&models.AnalysisEntry{}}
}

func (p *Plugin) RegisterRoutes(router fiber.Router, st store.Store, cfg *config.Config) {
	handler := NewHandler(NewService(st))

	router.Get("/analysis/entries", handler.List)
	router.Post("/analysis/entries", handler.Save)
	router.Delete("/analysis/entries/:entryId", handler.Delete)
}
