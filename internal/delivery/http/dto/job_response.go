package dto

import (
	"time"

	"github.com/google/uuid"

	"jobpilot/internal/domain/job"
	"jobpilot/internal/usecase"
)

type JobResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	LocationType string    `json:"location_type"`
	MinSalary    *int      `json:"min_salary"`
	MaxSalary    *int      `json:"max_salary"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	Skills       []string  `json:"skills"`
	Keywords     []string  `json:"keywords"`
	IsRemote     bool      `json:"is_remote"`
	PostedAt     time.Time `json:"posted_at"`
	PostedAgo    string    `json:"posted_ago,omitempty"`
	ExternalURL  *string   `json:"external_url"`
	MatchScore   *int      `json:"match_score,omitempty"`
}

func FromJob(j job.Job) JobResponse {
	skills := j.Skills
	if skills == nil {
		skills = []string{}
	}
	keywords := j.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return JobResponse{
		ID:           j.ID,
		Title:        j.Title,
		Company:      j.Company,
		Location:     j.Location,
		LocationType: j.LocationType,
		MinSalary:    j.MinSalary,
		MaxSalary:    j.MaxSalary,
		Description:  j.Description,
		Requirements: j.Requirements,
		Skills:       skills,
		Keywords:     keywords,
		IsRemote:     j.IsRemote,
		PostedAt:     j.PostedAt,
		ExternalURL:  j.ExternalURL,
	}
}

// FromJobListItem carries the per-user match score only when the listing
// was scored.
func FromJobListItem(it usecase.JobListItem, scored bool) JobResponse {
	out := FromJob(it.Job)
	out.PostedAgo = it.TimeAgo
	if scored {
		score := it.MatchScore
		out.MatchScore = &score
	}
	return out
}
