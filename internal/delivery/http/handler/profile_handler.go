package handler

import (
	"errors"

	"jobpilot/internal/ai"
	"jobpilot/internal/ai/resume"
	"jobpilot/internal/delivery/http/dto"
	"jobpilot/internal/delivery/http/middleware"
	"jobpilot/internal/pkg/response"
	"jobpilot/internal/repository"
	"jobpilot/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type profileRequest struct {
	JobTitles       []string `json:"job_titles"`
	Location        string   `json:"location"`
	LocationType    string   `json:"location_type"`
	MinSalary       *int     `json:"min_salary"`
	MaxSalary       *int     `json:"max_salary"`
	ExperienceYears string   `json:"experience_years"`
	Skills          string   `json:"skills"`
	WorkHistory     string   `json:"work_history"`
	ResumeURL       *string  `json:"resume_url"`
}

type profileUpdateRequest struct {
	JobTitles       *[]string `json:"job_titles"`
	Location        *string   `json:"location"`
	LocationType    *string   `json:"location_type"`
	MinSalary       *int      `json:"min_salary"`
	MaxSalary       *int      `json:"max_salary"`
	ExperienceYears *string   `json:"experience_years"`
	Skills          *string   `json:"skills"`
	WorkHistory     *string   `json:"work_history"`
	ResumeURL       *string   `json:"resume_url"`
}

type parseResumeRequest struct {
	ResumeText string    `json:"resume_text"`
	AI         ai.Config `json:"ai"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Get("/", h.Get)
	r.Put("/", h.Update)
	r.Post("/resume", h.ParseResume)
}

func (h *ProfileHandler) Create(c fiber.Ctx) error {
	var req profileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), middleware.UserID(c), usecase.ProfileInput{
		JobTitles:       req.JobTitles,
		Location:        req.Location,
		LocationType:    req.LocationType,
		MinSalary:       req.MinSalary,
		MaxSalary:       req.MaxSalary,
		ExperienceYears: req.ExperienceYears,
		Skills:          req.Skills,
		WorkHistory:     req.WorkHistory,
		ResumeURL:       req.ResumeURL,
	})
	if err != nil {
		return mapProfileError(err)
	}

	return response.Success(c, fiber.StatusCreated, "profile created", dto.FromProfile(created))
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	p, err := h.uc.Get(c.Context(), middleware.UserID(c))
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromProfile(p))
}

func (h *ProfileHandler) Update(c fiber.Ctx) error {
	var req profileUpdateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.Update(c.Context(), middleware.UserID(c), usecase.ProfileUpdate{
		JobTitles:       req.JobTitles,
		Location:        req.Location,
		LocationType:    req.LocationType,
		MinSalary:       req.MinSalary,
		MaxSalary:       req.MaxSalary,
		ExperienceYears: req.ExperienceYears,
		Skills:          req.Skills,
		WorkHistory:     req.WorkHistory,
		ResumeURL:       req.ResumeURL,
	})
	if err != nil {
		return mapProfileError(err)
	}

	return response.Success(c, fiber.StatusOK, "profile updated", dto.FromProfile(updated))
}

// ParseResume extracts a profile draft from raw resume text. The draft
// goes back to the client for review; nothing is persisted here.
func (h *ProfileHandler) ParseResume(c fiber.Ctx) error {
	var req parseResumeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	parsed, err := h.uc.ParseResume(c.Context(), middleware.UserID(c), req.ResumeText, req.AI)
	if err != nil {
		switch {
		case errors.Is(err, ai.ErrUnsupportedProvider):
			return middleware.NewAppError(fiber.StatusBadRequest, "Unsupported AI provider", nil, err)
		case errors.Is(err, ai.ErrProviderUnavailable):
			return middleware.NewAppError(fiber.StatusBadGateway, "AI provider unavailable", nil, err)
		case errors.Is(err, resume.ErrParse):
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Could not parse resume", nil, err)
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, parsed)
}

func mapProfileError(err error) error {
	switch {
	case errors.Is(err, repository.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	case errors.Is(err, repository.ErrProfileExists):
		return middleware.NewAppError(fiber.StatusConflict, "Profile already exists", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
