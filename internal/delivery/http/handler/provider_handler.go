package handler

import (
	"jobpilot/internal/ai"
	"jobpilot/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// ProviderHandler lists the AI providers clients may bring a key for.
type ProviderHandler struct{}

func NewProviderHandler() *ProviderHandler {
	return &ProviderHandler{}
}

func (h *ProviderHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/providers", h.List)
}

func (h *ProviderHandler) List(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, ai.Providers())
}
