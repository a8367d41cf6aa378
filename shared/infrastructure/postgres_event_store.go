package infrastructure

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/petstore/order-system/shared/events"
	"github.com/petstore/order-system/shared/models"
	"github.com/pkg/errors"
)

var _ events.EventStore = (*PostgresEventStore)(nil)

// PostgresEventStore persists the order lifecycle history. Every event an
// order aggregate records is appended here, giving each order an auditable
// stream from received to its terminal status.
type PostgresEventStore struct {
	db *sqlx.DB
}

// NewPostgresEventStore creates a new PostgresEventStore
func NewPostgresEventStore(db *sqlx.DB) *PostgresEventStore {
	return &PostgresEventStore{db: db}
}

type postgresEvent struct {
	ID            string    `db:"id"`
	AggregateID   string    `db:"aggregate_id"`
	EventType     string    `db:"event_type"`
	Version       string    `db:"version"`
	Data          []byte    `db:"data"`
	Metadata      []byte    `db:"metadata"`
	Timestamp     time.Time `db:"timestamp"`
	CorrelationID string    `db:"correlation_id"`
	StreamVersion int       `db:"stream_version"`
}

// SaveEvents appends events to an aggregate's stream, guarded by the
// expected stream version.
func (es *PostgresEventStore) SaveEvents(ctx context.Context, aggregateID models.ID, evts []*events.Event, expectedVersion int) error {
	if len(evts) == 0 {
		return nil
	}

	tx, err := es.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	var currentVersion int
	err = tx.GetContext(ctx, &currentVersion,
		"SELECT COALESCE(MAX(stream_version), 0) FROM order_events WHERE aggregate_id = $1",
		aggregateID.String())
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return errors.Wrap(err, "failed to get current stream version")
	}

	if currentVersion != expectedVersion {
		return errors.Errorf("concurrency conflict: expected stream version %d, got %d", expectedVersion, currentVersion)
	}

	query := `
		INSERT INTO order_events (
			id, aggregate_id, event_type, version, data, metadata,
			timestamp, correlation_id, stream_version
		) VALUES (
			:id, :aggregate_id, :event_type, :version, :data, :metadata,
			:timestamp, :correlation_id, :stream_version
		)`

	for i, event := range evts {
		pgEvent, err := es.toPostgres(event, currentVersion+i+1)
		if err != nil {
			return errors.Wrap(err, "failed to convert event")
		}

		if _, err := tx.NamedExecContext(ctx, query, pgEvent); err != nil {
			return errors.Wrap(err, "failed to insert event")
		}
	}

	return tx.Commit()
}

// GetEvents retrieves an aggregate's event stream in order.
func (es *PostgresEventStore) GetEvents(ctx context.Context, aggregateID models.ID) ([]*events.Event, error) {
	query := `
		SELECT id, aggregate_id, event_type, version, data, metadata,
		       timestamp, correlation_id, stream_version
		FROM order_events
		WHERE aggregate_id = $1
		ORDER BY stream_version ASC`

	var pgEvents []postgresEvent
	if err := es.db.SelectContext(ctx, &pgEvents, query, aggregateID.String()); err != nil {
		return nil, errors.Wrap(err, "failed to get events")
	}

	return es.toDomainList(pgEvents)
}

// GetEventsByType retrieves events of one type with pagination.
func (es *PostgresEventStore) GetEventsByType(ctx context.Context, eventType string, offset, limit int) ([]*events.Event, error) {
	query := `
		SELECT id, aggregate_id, event_type, version, data, metadata,
		       timestamp, correlation_id, stream_version
		FROM order_events
		WHERE event_type = $1
		ORDER BY timestamp ASC
		OFFSET $2 LIMIT $3`

	var pgEvents []postgresEvent
	if err := es.db.SelectContext(ctx, &pgEvents, query, eventType, offset, limit); err != nil {
		return nil, errors.Wrap(err, "failed to get events by type")
	}

	return es.toDomainList(pgEvents)
}

func (es *PostgresEventStore) toPostgres(event *events.Event, streamVersion int) (*postgresEvent, error) {
	data, err := event.MarshalPayload()
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal event data")
	}

	metadata, err := json.Marshal(event.Metadata)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal event metadata")
	}

	return &postgresEvent{
		ID:            event.ID.String(),
		AggregateID:   event.AggregateID.String(),
		EventType:     event.EventType,
		Version:       event.Version,
		Data:          data,
		Metadata:      metadata,
		Timestamp:     event.Timestamp,
		CorrelationID: event.CorrelationID.String(),
		StreamVersion: streamVersion,
	}, nil
}

func (es *PostgresEventStore) toDomainList(pgEvents []postgresEvent) ([]*events.Event, error) {
	result := make([]*events.Event, len(pgEvents))
	for i, pgEvent := range pgEvents {
		var metadata events.Metadata
		if len(pgEvent.Metadata) > 0 {
			if err := json.Unmarshal(pgEvent.Metadata, &metadata); err != nil {
				return nil, errors.Wrap(err, "failed to unmarshal event metadata")
			}
		}

		result[i] = &events.Event{
			ID:            models.ID(pgEvent.ID),
			AggregateID:   models.ID(pgEvent.AggregateID),
			EventType:     pgEvent.EventType,
			Version:       pgEvent.Version,
			Data:          json.RawMessage(pgEvent.Data),
			Metadata:      metadata,
			Timestamp:     pgEvent.Timestamp,
			CorrelationID: models.ID(pgEvent.CorrelationID),
		}
	}
	return result, nil
}
