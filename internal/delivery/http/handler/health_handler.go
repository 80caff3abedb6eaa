package handler

import (
	"context"
	"time"

	"moonlight/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// Pinger is any dependency that can report liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

// Health reports component status. The cache is optional infrastructure, so
// a cache failure degrades the report but never the status code.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	data := map[string]string{
		"database": "ok",
		"cache":    "ok",
	}

	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			data["database"] = "unavailable"
			return response.Error(c, fiber.StatusServiceUnavailable, "unhealthy", data)
		}
	}
	if h.cache != nil {
		if err := h.cache.Ping(ctx); err != nil {
			data["cache"] = "bypassed"
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
