package application

import (
	"time"

	"github.com/google/uuid"
)

// Status values an application can carry. Submission only ever writes
// StatusApplied; the remaining transitions happen elsewhere.
const (
	StatusApplied     = "applied"
	StatusUnderReview = "under_review"
	StatusInterview   = "interview"
	StatusRejected    = "rejected"
	StatusHired       = "hired"
)

type Application struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	JobID          uuid.UUID
	Status         string
	MatchScore     int
	TailoredResume *string
	CoverLetter    *string
	AppliedAt      time.Time
	UpdatedAt      time.Time
}
