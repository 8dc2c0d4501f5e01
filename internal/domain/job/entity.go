package job

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID           uuid.UUID
	Title        string
	Company      string
	Location     string
	LocationType string
	MinSalary    *int
	MaxSalary    *int
	Description  string
	Requirements string
	Skills       []string
	Keywords     []string
	IsRemote     bool
	PostedAt     time.Time
	ExternalURL  *string
}
