package routes

import (
	"jobpilot/internal/delivery/http/handler"
	"jobpilot/internal/delivery/http/middleware"
	"jobpilot/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Handlers collects everything the router mounts. The container builds
// them; this package only decides paths and which groups need auth.
type Handlers struct {
	Health       *handler.HealthHandler
	Auth         *handler.AuthHandler
	Profile      *handler.ProfileHandler
	Jobs         *handler.JobsHandler
	Applications *handler.ApplicationHandler
	Insights     *handler.InsightHandler
	Providers    *handler.ProviderHandler
	Events       *ws.Handler

	AuthMW *middleware.AuthMiddleware
}

type Registry struct {
	h Handlers
}

func NewRegistry(h Handlers) *Registry {
	return &Registry{h: h}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	if r.h.Health != nil {
		r.h.Health.RegisterRoutes(app)
	}
	if r.h.Events != nil {
		app.Get("/ws", r.h.Events.HandleEvents)
	}

	api := app.Group("/api")
	v1 := api.Group("/v1")

	if r.h.Auth != nil {
		r.h.Auth.RegisterRoutes(v1.Group("/auth"))
	}
	if r.h.Providers != nil {
		r.h.Providers.RegisterRoutes(v1.Group("/ai"))
	}

	if r.h.AuthMW == nil {
		return
	}
	protected := v1.Group("", r.h.AuthMW.Middleware())

	if r.h.Profile != nil {
		r.h.Profile.RegisterRoutes(protected.Group("/profile"))
	}

	jobs := protected.Group("/jobs")
	if r.h.Jobs != nil {
		r.h.Jobs.RegisterRoutes(jobs)
	}
	if r.h.Insights != nil {
		r.h.Insights.RegisterRoutes(jobs)
	}

	if r.h.Applications != nil {
		r.h.Applications.RegisterRoutes(protected.Group("/applications"))
	}
}
