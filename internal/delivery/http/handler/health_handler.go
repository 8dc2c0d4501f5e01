package handler

import (
	"context"
	"time"

	"jobpilot/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	appName string
	env     string
	db      pinger
	started time.Time
}

func NewHealthHandler(appName, env string, db pinger) *HealthHandler {
	return &HealthHandler{appName: appName, env: env, db: db, started: time.Now()}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	data := map[string]any{
		"app":    h.appName,
		"env":    h.env,
		"uptime": time.Since(h.started).Round(time.Second).String(),
	}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			data["database"] = "down"
			return response.Error(c, fiber.StatusServiceUnavailable, "degraded", data)
		}
		data["database"] = "up"
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
