package events

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/petstore/order-system/shared/models"
)

var (
	ErrInvalidPayload  = errors.New("invalid payload")
	ErrInvalidReceiver = errors.New("receiver should be a pointer")
)

// Metadata represents event metadata
type Metadata map[string]string

func (m Metadata) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m Metadata) Set(key string, value string) {
	if m == nil {
		m = make(Metadata)
	}
	m[key] = value
}

func (m Metadata) Has(key string) bool {
	_, ok := m[key]
	return ok
}

func (m Metadata) Clone() Metadata {
	clone := Metadata{}
	for k, v := range m {
		clone[k] = v
	}
	return clone
}

// Event represents a domain event
type Event struct {
	ID            models.ID   `json:"id"`
	AggregateID   models.ID   `json:"aggregate_id"`
	EventType     string      `json:"event_type"`
	Version       string      `json:"version"`
	Data          interface{} `json:"data"`
	Metadata      Metadata    `json:"metadata"`
	Timestamp     time.Time   `json:"timestamp"`
	CorrelationID models.ID   `json:"correlation_id"`
}

// Publisher publishes events
type Publisher interface {
	Publish(ctx context.Context, events ...*Event) error
}

// Subscriber subscribes to events
type Subscriber interface {
	Subscribe(ctx context.Context, eventType string, handler EventHandler) error
}

// EventHandler handles domain events
type EventHandler interface {
	Handle(ctx context.Context, event *Event) error
}

// EventStore stores and retrieves events
type EventStore interface {
	SaveEvents(ctx context.Context, aggregateID models.ID, events []*Event, expectedVersion int) error
	GetEvents(ctx context.Context, aggregateID models.ID) ([]*Event, error)
	GetEventsByType(ctx context.Context, eventType string, offset, limit int) ([]*Event, error)
}

// NewEvent creates a new domain event
func NewEvent(aggregateID models.ID, eventType string, data interface{}) *Event {
	return &Event{
		ID:          models.GenerateUUID(),
		AggregateID: aggregateID,
		EventType:   eventType,
		Version:     "1.0",
		Data:        data,
		Metadata:    make(Metadata),
		Timestamp:   time.Now(),
	}
}

// WithCorrelationID sets correlation ID
func (e *Event) WithCorrelationID(correlationID models.ID) *Event {
	e.CorrelationID = correlationID
	return e
}

// WithMetadata adds metadata
func (e *Event) WithMetadata(key string, value string) *Event {
	if e.Metadata == nil {
		e.Metadata = make(Metadata)
	}
	e.Metadata.Set(key, value)
	return e
}

// ToJSON converts event to JSON
func (e *Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// FromJSON creates event from JSON
func FromJSON(data []byte) (*Event, error) {
	var event Event
	err := json.Unmarshal(data, &event)
	return &event, err
}

// MarshalPayload marshals the event payload
func (e *Event) MarshalPayload() (json.RawMessage, error) {
	if b, ok := e.Data.([]byte); ok {
		return b, nil
	}

	if b, ok := e.Data.(json.RawMessage); ok {
		return b, nil
	}

	return json.Marshal(e.Data)
}

// UnmarshalPayload unmarshals the event payload into the given receiver.
// Events arriving off the wire carry their payload as raw JSON; events
// still in memory carry the original Data value, which is re-marshalled.
func (e *Event) UnmarshalPayload(v interface{}) error {
	if b, ok := e.Data.([]byte); ok {
		return json.Unmarshal(b, v)
	}

	if b, ok := e.Data.(json.RawMessage); ok {
		return json.Unmarshal([]byte(b), v)
	}

	b, err := json.Marshal(e.Data)
	if err != nil {
		return ErrInvalidPayload
	}
	return json.Unmarshal(b, v)
}
