package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"jobpilot/internal/ai"
	"jobpilot/internal/ai/resume"
	"jobpilot/internal/repository"
)

type insightGenerator interface {
	GenerateInsights(ctx context.Context, profile resume.InsightProfile, jobDescription string, cfg ai.Config) []string
}

type providerRegistry interface {
	Supports(provider string) bool
}

type InsightUsecase interface {
	JobInsights(ctx context.Context, userID, jobID uuid.UUID, cfg ai.Config) ([]string, error)
}

// Insight produces job-match insights. The provider id is validated before
// anything else so a bad id surfaces as client error instead of silently
// degrading to the fallback insight.
type Insight struct {
	jobs      repository.JobRepository
	profiles  repository.ProfileRepository
	generator insightGenerator
	providers providerRegistry
}

func NewInsightUsecase(jobs repository.JobRepository, profiles repository.ProfileRepository, generator insightGenerator, providers providerRegistry) *Insight {
	return &Insight{jobs: jobs, profiles: profiles, generator: generator, providers: providers}
}

func (u *Insight) JobInsights(ctx context.Context, userID, jobID uuid.UUID, cfg ai.Config) ([]string, error) {
	if userID == uuid.Nil || jobID == uuid.Nil || cfg.APIKey == "" {
		return nil, ErrInvalidInput
	}
	if !u.providers.Supports(cfg.Provider) {
		return nil, fmt.Errorf("%w: %s", ai.ErrUnsupportedProvider, cfg.Provider)
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, err
		}
		return nil, ErrInternal
	}

	profile, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, err
		}
		return nil, ErrInternal
	}

	insights := u.generator.GenerateInsights(ctx, resume.InsightProfile{
		Skills:          profile.Skills,
		ExperienceYears: profile.ExperienceYears,
		WorkHistory:     profile.WorkHistory,
	}, job.Description, cfg)

	return insights, nil
}
