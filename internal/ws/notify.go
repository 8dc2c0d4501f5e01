package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"jobpilot/internal/domain/application"
)

// ApplicationCreatedEvent is pushed to the applying user's sockets when a
// submission lands.
type ApplicationCreatedEvent struct {
	Type          string    `json:"type"`
	ApplicationID uuid.UUID `json:"application_id"`
	JobID         uuid.UUID `json:"job_id"`
	Status        string    `json:"status"`
	MatchScore    int       `json:"match_score"`
	Timestamp     string    `json:"timestamp"`
}

// Notifier adapts the hub to the orchestrator's notification interface.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) ApplicationCreated(userID uuid.UUID, app application.Application) {
	if n == nil || n.hub == nil {
		return
	}

	evt := ApplicationCreatedEvent{
		Type:          "application_created",
		ApplicationID: app.ID,
		JobID:         app.JobID,
		Status:        app.Status,
		MatchScore:    app.MatchScore,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Publish(userID, b)
}
