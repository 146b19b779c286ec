package messaging

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const EventAlertCreated = "alert.created"

// AlertEvent is the payload published when an alert is raised for a patient.
type AlertEvent struct {
	Type      string    `json:"type"`
	AlertID   uuid.UUID `json:"alert_id"`
	PatientID uuid.UUID `json:"patient_id"`
	Message   string    `json:"message"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Publisher interface {
	PublishAlert(ctx context.Context, event AlertEvent) error
	Close() error
}

func encode(event AlertEvent) ([]byte, error) {
	if event.Type == "" {
		event.Type = EventAlertCreated
	}
	return json.Marshal(event)
}

type noopPublisher struct{}

// NewNoopPublisher drops every event.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishAlert(context.Context, AlertEvent) error { return nil }
func (noopPublisher) Close() error                                  { return nil }
