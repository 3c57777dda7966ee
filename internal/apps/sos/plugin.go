package sos

import (
	"github.com/KimShota/Universe/internal/config"
	"github.com/KimShota/Universe/internal/models"
	"github.com/KimShota/Universe/internal/store"
	"github.com/gofiber/fiber/v2"
)

type Plugin struct{}

func New() *Plugin { return &Plugin{} }

func (p *Plugin) ID() string { return "sos" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{&models.SOSCompletion{}}
}

func (p *Plugin) RegisterRoutes(router fiber.Router, st store.Store, cfg *config.Config) {
	handler := NewHandler(NewService(st))

	router.Post("/sos/complete", handler.Complete)
	router.Get("/sos/history", handler.History)
}
