package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile is a user's job-search profile. One per user.
type Profile struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	JobTitles       []string
	Location        string
	LocationType    string
	MinSalary       *int
	MaxSalary       *int
	ExperienceYears string
	Skills          string
	WorkHistory     string
	ResumeURL       *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

const (
	LocationTypeRemote = "remote"
	LocationTypeOnsite = "onsite"
	LocationTypeHybrid = "hybrid"
	LocationTypeCity   = "city"
)

// LocationTypes lists the accepted profile location types.
var LocationTypes = []string{LocationTypeRemote, LocationTypeOnsite, LocationTypeHybrid, LocationTypeCity}

// ExperienceBuckets lists the accepted experience ranges.
var ExperienceBuckets = []string{"0-1", "2-3", "4-6", "7-10", "10+"}
