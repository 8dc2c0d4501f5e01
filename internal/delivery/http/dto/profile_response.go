package dto

import (
	"time"

	"github.com/google/uuid"

	"jobpilot/internal/domain/user"
)

type ProfileResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	JobTitles       []string  `json:"job_titles"`
	Location        string    `json:"location"`
	LocationType    string    `json:"location_type"`
	MinSalary       *int      `json:"min_salary"`
	MaxSalary       *int      `json:"max_salary"`
	ExperienceYears string    `json:"experience_years"`
	Skills          string    `json:"skills"`
	WorkHistory     string    `json:"work_history"`
	ResumeURL       *string   `json:"resume_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromProfile(p user.Profile) ProfileResponse {
	titles := p.JobTitles
	if titles == nil {
		titles = []string{}
	}
	return ProfileResponse{
		ID:              p.ID,
		UserID:          p.UserID,
		JobTitles:       titles,
		Location:        p.Location,
		LocationType:    p.LocationType,
		MinSalary:       p.MinSalary,
		MaxSalary:       p.MaxSalary,
		ExperienceYears: p.ExperienceYears,
		Skills:          p.Skills,
		WorkHistory:     p.WorkHistory,
		ResumeURL:       p.ResumeURL,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
