package app

import (
	"fmt"
	"log"
	"strings"

	"jobpilot/internal/config"
	"jobpilot/internal/delivery/http/handler"
	"jobpilot/internal/delivery/http/middleware"
	"jobpilot/internal/delivery/http/routes"
	"jobpilot/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap builds the container, wires handlers and middleware, and
// starts the websocket hub. The returned cleanup closes the database.
func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	if logger == nil {
		logger = log.Default()
	}

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{})

	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(logger).Middleware())

	registry := routes.NewRegistry(routes.Handlers{
		Health:       handler.NewHealthHandler(cfg.App.AppName, cfg.App.Environment, c.DB),
		Auth:         handler.NewAuthHandler(c.AuthUC),
		Profile:      handler.NewProfileHandler(c.ProfileUC),
		Jobs:         handler.NewJobsHandler(c.JobListUC),
		Applications: handler.NewApplicationHandler(c.ApplicationUC),
		Insights:     handler.NewInsightHandler(c.InsightUC),
		Providers:    handler.NewProviderHandler(),
		Events:       ws.NewHandler(c.Hub, c.JWT, logger),
		AuthMW:       middleware.NewAuthMiddleware(c.JWT),
	})
	registry.Register(f)

	go c.Hub.Run()

	cleanup := func() error { return c.Close() }
	return &App{Fiber: f, Container: c}, cleanup, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
