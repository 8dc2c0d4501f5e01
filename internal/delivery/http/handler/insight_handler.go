package handler

import (
	"errors"

	"jobpilot/internal/ai"
	"jobpilot/internal/delivery/http/middleware"
	"jobpilot/internal/pkg/response"
	"jobpilot/internal/repository"
	"jobpilot/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type InsightHandler struct {
	uc usecase.InsightUsecase
}

type insightRequest struct {
	AI ai.Config `json:"ai"`
}

func NewInsightHandler(uc usecase.InsightUsecase) *InsightHandler {
	return &InsightHandler{uc: uc}
}

func (h *InsightHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/:id/insights", h.JobInsights)
}

func (h *InsightHandler) JobInsights(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req insightRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	insights, err := h.uc.JobInsights(c.Context(), middleware.UserID(c), jobID, req.AI)
	if err != nil {
		switch {
		case errors.Is(err, ai.ErrUnsupportedProvider):
			return middleware.NewAppError(fiber.StatusBadRequest, "Unsupported AI provider", nil, err)
		case errors.Is(err, repository.ErrJobNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
		case errors.Is(err, repository.ErrProfileNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"insights": insights})
}
