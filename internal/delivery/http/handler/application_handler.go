package handler

import (
	"errors"

	"jobpilot/internal/ai"
	"jobpilot/internal/delivery/http/dto"
	"jobpilot/internal/delivery/http/middleware"
	"jobpilot/internal/pkg/response"
	"jobpilot/internal/repository"
	"jobpilot/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

type submitApplicationRequest struct {
	JobID uuid.UUID `json:"job_id"`
	UseAI bool      `json:"use_ai"`
	AI    ai.Config `json:"ai"`
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Submit)
	r.Get("/", h.List)
}

func (h *ApplicationHandler) Submit(c fiber.Ctx) error {
	var req submitApplicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Submit(c.Context(), usecase.SubmitApplicationInput{
		UserID: middleware.UserID(c),
		JobID:  req.JobID,
		UseAI:  req.UseAI,
		AI:     req.AI,
	})
	if err != nil {
		return mapApplicationError(err)
	}

	return response.Success(c, fiber.StatusCreated, "application submitted", dto.FromApplication(created))
}

func (h *ApplicationHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListByUser(c.Context(), middleware.UserID(c))
	if err != nil {
		return mapApplicationError(err)
	}

	out := make([]dto.ApplicationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.FromApplicationWithJob(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapApplicationError(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateApplication):
		return middleware.NewAppError(fiber.StatusConflict, "Already applied to this job", nil, err)
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
