package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobpilot/internal/domain/job"
	"jobpilot/internal/domain/matching"
	"jobpilot/internal/domain/nlp"
	"jobpilot/internal/repository"
)

type JobListParams struct {
	UserID    uuid.UUID
	Location  string
	Remote    *bool
	MinSalary *int
	MaxSalary *int
	Skills    []string
	Limit     int
	Offset    int
}

// JobListItem is one listing, optionally scored against the requesting
// user's profile.
type JobListItem struct {
	Job        job.Job
	MatchScore int
	TimeAgo    string
}

type JobListUsecase interface {
	ListJobs(ctx context.Context, params JobListParams) ([]JobListItem, error)
	GetJob(ctx context.Context, id uuid.UUID) (job.Job, error)
	AnalyzeDescription(description string) (nlp.Extraction, error)
}

// ListingCache is the redis surface the job listing path uses.
type ListingCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type JobList struct {
	jobs     repository.JobRepository
	profiles repository.ProfileRepository
	cache    ListingCache
	logger   *log.Logger
	now      func() time.Time
}

func NewJobListUsecase(jobs repository.JobRepository, profiles repository.ProfileRepository, cache ListingCache, logger *log.Logger) *JobList {
	return &JobList{jobs: jobs, profiles: profiles, cache: cache, logger: logger, now: time.Now}
}

// ListJobs returns listings matching the filters. When the caller is known
// and has a profile, every listing carries a match score and the result is
// ordered best match first. The unscored base listing is cached; scores are
// always computed on read so profile edits show up immediately.
func (u *JobList) ListJobs(ctx context.Context, params JobListParams) ([]JobListItem, error) {
	if params.Limit < 0 || params.Offset < 0 {
		return nil, ErrInvalidInput
	}

	filter := repository.JobFilter{
		Location:  params.Location,
		Remote:    params.Remote,
		MinSalary: params.MinSalary,
		MaxSalary: params.MaxSalary,
		Skills:    params.Skills,
		Limit:     params.Limit,
		Offset:    params.Offset,
	}

	jobs, err := u.listBase(ctx, filter)
	if err != nil {
		return nil, ErrInternal
	}

	now := u.now()
	out := make([]JobListItem, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, JobListItem{Job: j, TimeAgo: TimeAgo(j.PostedAt, now)})
	}

	if params.UserID == uuid.Nil {
		return out, nil
	}

	profile, err := u.profiles.GetByUserID(ctx, params.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return out, nil
		}
		return nil, ErrInternal
	}

	userSkills := matching.SplitSkills(profile.Skills)
	for i := range out {
		out[i].MatchScore = matching.Score(userSkills, out[i].Job.Skills, out[i].Job.Keywords)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MatchScore > out[j].MatchScore })

	return out, nil
}

func (u *JobList) listBase(ctx context.Context, filter repository.JobFilter) ([]job.Job, error) {
	key := listingCacheKey(filter)

	if u.cache != nil {
		var cached []job.Job
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Jobs] Cache HIT: %s", key)
			}
			return cached, nil
		}
	}

	jobs, err := u.jobs.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, jobs, 0)
	}
	return jobs, nil
}

func (u *JobList) GetJob(ctx context.Context, id uuid.UUID) (job.Job, error) {
	if id == uuid.Nil {
		return job.Job{}, ErrInvalidInput
	}
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Job{}, err
		}
		return job.Job{}, ErrInternal
	}
	return j, nil
}

// AnalyzeDescription runs keyword extraction over an ad-hoc description.
func (u *JobList) AnalyzeDescription(description string) (nlp.Extraction, error) {
	if strings.TrimSpace(description) == "" {
		return nlp.Extraction{}, ErrInvalidInput
	}
	return nlp.Extract(description), nil
}

func listingCacheKey(f repository.JobFilter) string {
	remote := "any"
	if f.Remote != nil {
		remote = fmt.Sprintf("%t", *f.Remote)
	}
	minSalary, maxSalary := "", ""
	if f.MinSalary != nil {
		minSalary = fmt.Sprintf("%d", *f.MinSalary)
	}
	if f.MaxSalary != nil {
		maxSalary = fmt.Sprintf("%d", *f.MaxSalary)
	}
	skills := strings.ToLower(strings.Join(f.Skills, ","))
	return fmt.Sprintf("jobs:list:%s|%s|%s|%s|%s|%d|%d",
		strings.ToLower(strings.TrimSpace(f.Location)), remote, minSalary, maxSalary, skills, f.Limit, f.Offset)
}

// TimeAgo renders a coarse relative timestamp for listings and
// applications.
func TimeAgo(t, now time.Time) string {
	hours := int(now.Sub(t).Hours())
	if hours < 1 {
		return "Just now"
	}
	if hours < 24 {
		return fmt.Sprintf("%d hours ago", hours)
	}

	days := hours / 24
	if days == 1 {
		return "1 day ago"
	}
	if days < 7 {
		return fmt.Sprintf("%d days ago", days)
	}

	weeks := days / 7
	if weeks == 1 {
		return "1 week ago"
	}
	return fmt.Sprintf("%d weeks ago", weeks)
}
