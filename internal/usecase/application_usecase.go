package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"jobpilot/internal/ai"
	"jobpilot/internal/ai/resume"
	"jobpilot/internal/domain/application"
	"jobpilot/internal/domain/matching"
	"jobpilot/internal/repository"
)

type SubmitApplicationInput struct {
	UserID uuid.UUID
	JobID  uuid.UUID
	UseAI  bool
	AI     ai.Config
}

type ApplicationUsecase interface {
	Submit(ctx context.Context, in SubmitApplicationInput) (application.Application, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]repository.ApplicationWithJob, error)
}

type resumeOptimizer interface {
	OptimizeResume(ctx context.Context, req resume.OptimizeRequest, cfg ai.Config) resume.OptimizeResult
}

type applicationNotifier interface {
	ApplicationCreated(userID uuid.UUID, app application.Application)
}

// Application submits and lists job applications. Submission freezes the
// match score computed at apply time; AI tailoring is strictly best effort
// and never blocks the application.
type Application struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	profiles     repository.ProfileRepository
	optimizer    resumeOptimizer
	notifier     applicationNotifier
	logger       *log.Logger
}

func NewApplicationUsecase(
	applications repository.ApplicationRepository,
	jobs repository.JobRepository,
	profiles repository.ProfileRepository,
	optimizer resumeOptimizer,
	notifier applicationNotifier,
	logger *log.Logger,
) *Application {
	return &Application{
		applications: applications,
		jobs:         jobs,
		profiles:     profiles,
		optimizer:    optimizer,
		notifier:     notifier,
		logger:       logger,
	}
}

func (u *Application) Submit(ctx context.Context, in SubmitApplicationInput) (application.Application, error) {
	if in.UserID == uuid.Nil || in.JobID == uuid.Nil {
		return application.Application{}, ErrInvalidInput
	}

	exists, err := u.applications.ExistsByUserAndJob(ctx, in.UserID, in.JobID)
	if err != nil {
		return application.Application{}, ErrInternal
	}
	if exists {
		return application.Application{}, repository.ErrDuplicateApplication
	}

	job, err := u.jobs.GetByID(ctx, in.JobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return application.Application{}, err
		}
		return application.Application{}, ErrInternal
	}

	profile, err := u.profiles.GetByUserID(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return application.Application{}, err
		}
		return application.Application{}, ErrInternal
	}

	score := matching.Score(matching.SplitSkills(profile.Skills), job.Skills, job.Keywords)

	tailoredResume := profile.WorkHistory
	coverLetter := fmt.Sprintf(`Dear Hiring Manager,

I am interested in the %s position at %s. Based on my experience and skills, I believe I would be a great fit for this role.

Best regards`, job.Title, job.Company)

	if in.UseAI && in.AI.Provider != "" && in.AI.APIKey != "" && u.optimizer != nil {
		result := u.optimizer.OptimizeResume(ctx, resume.OptimizeRequest{
			OriginalResume: profile.WorkHistory,
			JobDescription: job.Description,
			JobTitle:       job.Title,
			RequiredSkills: job.Skills,
		}, in.AI)
		tailoredResume = result.OptimizedResume
		coverLetter = result.CoverLetter
	}

	created, err := u.applications.Create(ctx, application.Application{
		UserID:         in.UserID,
		JobID:          in.JobID,
		Status:         application.StatusApplied,
		MatchScore:     score,
		TailoredResume: &tailoredResume,
		CoverLetter:    &coverLetter,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateApplication) {
			return application.Application{}, err
		}
		return application.Application{}, ErrInternal
	}

	if u.notifier != nil {
		u.notifier.ApplicationCreated(in.UserID, created)
	}
	if u.logger != nil {
		u.logger.Printf("[Applications] user=%s job=%s score=%d", in.UserID, in.JobID, created.MatchScore)
	}

	return created, nil
}

func (u *Application) ListByUser(ctx context.Context, userID uuid.UUID) ([]repository.ApplicationWithJob, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	out, err := u.applications.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}
