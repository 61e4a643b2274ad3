package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	TypeSubscriptionsDetected = "subscriptions.detected"
	TypeSubscriptionCanceled  = "subscription.canceled"
	TypeBudgetOverLimit       = "budget.over_limit"
	TypeDemoDataSeeded        = "demo_data.seeded"
)

// Event is a domain notification published after a write has succeeded
type Event struct {
	ID         uuid.UUID       `json:"id"`
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

// NewEvent builds an event with a JSON-encoded payload
func NewEvent(eventType string, occurredAt time.Time, payload interface{}) (*Event, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Event{
		ID:         uuid.New(),
		Type:       eventType,
		OccurredAt: occurredAt,
		Payload:    body,
	}, nil
}

// ToJSON converts the event to JSON bytes
func (e *Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// EventFromJSON creates an event from JSON bytes
func EventFromJSON(data []byte) (*Event, error) {
	var event Event
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// Publisher delivers events to a broker
type Publisher interface {
	Publish(ctx context.Context, event *Event) error
	Close() error
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, event *Event) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}
