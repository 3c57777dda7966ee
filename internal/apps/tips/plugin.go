package tips

import (
	"github.com/KimShota/Universe/internal/config"
	"github.com/KimShota/Universe/internal/models"
	"github.com/KimShota/Universe/internal/store"
	"github.com/gofiber/fiber/v2"
)

type Plugin struct{}

func New() *Plugin { return &Plugin{} }

func (p *Plugin) ID() string { return "tips" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{&models.TipProgress{}}
}

func (p *Plugin) RegisterRoutes(router fiber.Router, st store.Store, cfg *config.Config) {
	handler := NewHandler(NewService(st))

	router.Post("/content-tips/quiz", handler.CompleteQuiz)
	router.Get("/content-tips/progress", handler.Progress)
}
