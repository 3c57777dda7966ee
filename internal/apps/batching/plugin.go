package batching

import (
	"github.com/KimShota/Universe/internal/config"
	"github.com/KimShota/Universe/internal/models"
	"github.com/KimShota/Universe/internal/store"
	"github.com/gofiber/fiber/v2"
)

type Plugin struct{}

func New() *Plugin { return &Plugin{} }

func (p *Plugin) ID() string { return "batching" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{&models.BatchingScript{}}
}

func (p *Plugin) RegisterRoutes(router fiber.Router, st store.Store, cfg *config.Config) {
	handler := NewHandler(NewService(st))

	router.Get("/batching/scripts", handler.List)
	router.Post("/batching/scripts", handler.Save)
	router.Delete("/batching/scripts/:scriptId", handler.Delete)
}
