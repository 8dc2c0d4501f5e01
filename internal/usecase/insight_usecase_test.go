package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"jobpilot/internal/ai"
	"jobpilot/internal/domain/job"
	"jobpilot/internal/domain/user"
	"jobpilot/internal/repository"
)

func insightUsecase(jobID uuid.UUID, gen *mockInsightGen) *Insight {
	jobs := &mockJobRepo{jobs: map[uuid.UUID]job.Job{jobID: {
		ID:          jobID,
		Description: "Backend role with Go and PostgreSQL.",
	}}}
	profiles := &mockProfileRepo{profile: user.Profile{Skills: "go, sql", ExperienceYears: "4-6"}}
	registry := &mockRegistry{supported: map[string]bool{"openai": true, "gemini": true}}
	return NewInsightUsecase(jobs, profiles, gen, registry)
}

func TestInsightUsecase_UnsupportedProvider(t *testing.T) {
	jobID := uuid.New()
	gen := &mockInsightGen{insights: []string{"x"}}
	uc := insightUsecase(jobID, gen)

	_, err := uc.JobInsights(context.Background(), uuid.New(), jobID, ai.Config{Provider: "mistral", APIKey: "k"})
	if !errors.Is(err, ai.ErrUnsupportedProvider) {
		t.Fatalf("expected ErrUnsupportedProvider, got %v", err)
	}
	if gen.calls != 0 {
		t.Fatal("generator must not run for unknown providers")
	}
}

func TestInsightUsecase_MissingCredential(t *testing.T) {
	jobID := uuid.New()
	uc := insightUsecase(jobID, &mockInsightGen{})

	_, err := uc.JobInsights(context.Background(), uuid.New(), jobID, ai.Config{Provider: "openai"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestInsightUsecase_JobNotFound(t *testing.T) {
	uc := insightUsecase(uuid.New(), &mockInsightGen{})

	_, err := uc.JobInsights(context.Background(), uuid.New(), uuid.New(), ai.Config{Provider: "openai", APIKey: "k"})
	if !errors.Is(err, repository.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestInsightUsecase_Success(t *testing.T) {
	jobID := uuid.New()
	gen := &mockInsightGen{insights: []string{"Your Go background fits.", "Mention the migration."}}
	uc := insightUsecase(jobID, gen)

	got, err := uc.JobInsights(context.Background(), uuid.New(), jobID, ai.Config{Provider: "gemini", APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || gen.calls != 1 {
		t.Fatalf("unexpected insights: %v (calls=%d)", got, gen.calls)
	}
}
