package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"jobpilot/internal/domain/job"
	"jobpilot/internal/domain/user"
	"jobpilot/internal/repository"
)

func listingFixtures(now time.Time) []job.Job {
	return []job.Job{
		{
			ID:       uuid.New(),
			Title:    "Frontend Developer",
			Company:  "Microsoft",
			Skills:   []string{"React", "TypeScript"},
			Keywords: []string{"frontend"},
			PostedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:       uuid.New(),
			Title:    "Backend Engineer",
			Company:  "Stripe",
			Skills:   []string{"Go", "PostgreSQL", "Redis"},
			Keywords: []string{"backend", "go"},
			PostedAt: now.Add(-48 * time.Hour),
		},
	}
}

func TestJobListUsecase_ListJobs_InvalidLimit(t *testing.T) {
	uc := NewJobListUsecase(&mockJobRepo{}, &mockProfileRepo{}, nil, nil)
	if _, err := uc.ListJobs(context.Background(), JobListParams{Limit: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobListUsecase_ListJobs_Anonymous(t *testing.T) {
	now := time.Now().UTC()
	jobs := &mockJobRepo{items: listingFixtures(now)}
	uc := NewJobListUsecase(jobs, &mockProfileRepo{getErr: repository.ErrProfileNotFound}, nil, nil)
	uc.now = func() time.Time { return now }

	items, err := uc.ListJobs(context.Background(), JobListParams{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	for _, it := range items {
		if it.MatchScore != 0 {
			t.Fatalf("anonymous listing must not carry scores: %+v", it)
		}
	}
	if items[0].TimeAgo != "2 hours ago" {
		t.Fatalf("unexpected time ago: %q", items[0].TimeAgo)
	}
}

func TestJobListUsecase_ListJobs_ScoredAndSorted(t *testing.T) {
	now := time.Now().UTC()
	jobs := &mockJobRepo{items: listingFixtures(now)}
	profiles := &mockProfileRepo{profile: user.Profile{Skills: "Go, PostgreSQL"}}
	uc := NewJobListUsecase(jobs, profiles, nil, nil)
	uc.now = func() time.Time { return now }

	items, err := uc.ListJobs(context.Background(), JobListParams{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items[0].Job.Title != "Backend Engineer" {
		t.Fatalf("expected best match first, got %q", items[0].Job.Title)
	}
	if items[0].MatchScore <= items[1].MatchScore {
		t.Fatalf("expected descending scores: %d then %d", items[0].MatchScore, items[1].MatchScore)
	}
}

func TestJobListUsecase_ListJobs_NoProfileFallsBackUnscored(t *testing.T) {
	now := time.Now().UTC()
	jobs := &mockJobRepo{items: listingFixtures(now)}
	profiles := &mockProfileRepo{getErr: repository.ErrProfileNotFound}
	uc := NewJobListUsecase(jobs, profiles, nil, nil)

	items, err := uc.ListJobs(context.Background(), JobListParams{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, it := range items {
		if it.MatchScore != 0 {
			t.Fatalf("expected unscored listing, got %+v", it)
		}
	}
}

func TestJobListUsecase_ListJobs_CachesBaseListing(t *testing.T) {
	now := time.Now().UTC()
	jobs := &mockJobRepo{items: listingFixtures(now)}
	cache := &mockCache{}
	uc := NewJobListUsecase(jobs, &mockProfileRepo{getErr: repository.ErrProfileNotFound}, cache, nil)

	if _, err := uc.ListJobs(context.Background(), JobListParams{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.ListJobs(context.Background(), JobListParams{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if jobs.listCalls != 1 {
		t.Fatalf("expected one repository read, got %d", jobs.listCalls)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", cache.sets)
	}
}

func TestJobListUsecase_GetJob_NotFound(t *testing.T) {
	uc := NewJobListUsecase(&mockJobRepo{jobs: map[uuid.UUID]job.Job{}}, &mockProfileRepo{}, nil, nil)
	if _, err := uc.GetJob(context.Background(), uuid.New()); !errors.Is(err, repository.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobListUsecase_AnalyzeDescription(t *testing.T) {
	uc := NewJobListUsecase(&mockJobRepo{}, &mockProfileRepo{}, nil, nil)

	if _, err := uc.AnalyzeDescription("   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank description, got %v", err)
	}

	got, err := uc.AnalyzeDescription("We need strong Go and PostgreSQL experience. Bachelor degree required.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Skills) == 0 || len(got.Keywords) == 0 || len(got.Requirements) == 0 {
		t.Fatalf("expected non-empty extraction, got %+v", got)
	}
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		at   time.Time
		want string
	}{
		{"just now", now.Add(-30 * time.Minute), "Just now"},
		{"hours", now.Add(-5 * time.Hour), "5 hours ago"},
		{"one day", now.Add(-30 * time.Hour), "1 day ago"},
		{"days", now.Add(-3 * 24 * time.Hour), "3 days ago"},
		{"one week", now.Add(-8 * 24 * time.Hour), "1 week ago"},
		{"weeks", now.Add(-30 * 24 * time.Hour), "4 weeks ago"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TimeAgo(tc.at, now); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
