package routes

import (
	"log"

	"moonlight/internal/config"
	"moonlight/internal/database"
	"moonlight/internal/delivery/http/handler"
	v1 "moonlight/internal/delivery/http/routes/v1"
	"moonlight/internal/usecase"
	"moonlight/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  usecase.FeedCache
	Hub    *ws.Hub
	Logger *log.Logger
}

func Register(app *fiber.App, deps Deps) {
	if app == nil {
		return
	}

	var cachePinger handler.Pinger
	if p, ok := deps.Cache.(handler.Pinger); ok {
		cachePinger = p
	}
	health := handler.NewHealthHandler(deps.DB, cachePinger)
	health.RegisterRoutes(app)

	wsHandler := ws.NewHandler(deps.Hub, deps.Logger)
	app.Get("/ws/matches", wsHandler.HandleMatchesWS)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), deps.Config, deps.DB, deps.Cache, deps.Logger)
}
