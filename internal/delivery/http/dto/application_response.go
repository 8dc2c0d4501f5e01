package dto

import (
	"time"

	"github.com/google/uuid"

	"jobpilot/internal/domain/application"
	"jobpilot/internal/repository"
)

type ApplicationResponse struct {
	ID             uuid.UUID `json:"id"`
	JobID          uuid.UUID `json:"job_id"`
	Status         string    `json:"status"`
	MatchScore     int       `json:"match_score"`
	TailoredResume *string   `json:"tailored_resume,omitempty"`
	CoverLetter    *string   `json:"cover_letter,omitempty"`
	AppliedAt      time.Time `json:"applied_at"`

	JobTitle    string `json:"job_title,omitempty"`
	JobCompany  string `json:"job_company,omitempty"`
	JobLocation string `json:"job_location,omitempty"`
}

func FromApplication(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:             a.ID,
		JobID:          a.JobID,
		Status:         a.Status,
		MatchScore:     a.MatchScore,
		TailoredResume: a.TailoredResume,
		CoverLetter:    a.CoverLetter,
		AppliedAt:      a.AppliedAt,
	}
}

func FromApplicationWithJob(a repository.ApplicationWithJob) ApplicationResponse {
	out := FromApplication(a.Application)
	out.JobTitle = a.JobTitle
	out.JobCompany = a.JobCompany
	out.JobLocation = a.JobLocation
	return out
}
