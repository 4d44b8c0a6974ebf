package ports

import (
	"context"
	"time"

	"planora/contexts/event-planning/event-ledger-service/domain/entities"
	contractsv1 "planora/contracts/gen/events/v1"
)

// LedgerRepository persists one customer's event bookings. Every operation
// is scoped by customer ID; list order is insertion order and stays stable
// across mutations.
type LedgerRepository interface {
	CreateEvent(ctx context.Context, event entities.CustomerEvent) error
	UpdateEvent(ctx context.Context, event entities.CustomerEvent) error
	GetEvent(ctx context.Context, customerID string, eventID string) (entities.CustomerEvent, error)
	ListEvents(ctx context.Context, customerID string) ([]entities.CustomerEvent, error)
	DeleteEvent(ctx context.Context, customerID string, eventID string) error
}

type HistoryRepository interface {
	AppendState(ctx context.Context, item entities.StateHistory) error
	ListHistory(ctx context.Context, eventID string) ([]entities.StateHistory, error)
}

type IdempotencyRecord struct {
	Key             string
	RequestHash     string
	ResponsePayload []byte
	ExpiresAt       time.Time
}

type IdempotencyStore interface {
	GetRecord(ctx context.Context, key string, now time.Time) (IdempotencyRecord, bool, error)
	PutRecord(ctx context.Context, record IdempotencyRecord) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type EventEnvelope = contractsv1.Envelope

type OutboxMessage struct {
	OutboxID     string
	EventType    string
	PartitionKey string
	Payload      []byte
	CreatedAt    time.Time
}

type OutboxWriter interface {
	AppendOutbox(ctx context.Context, envelope EventEnvelope) error
}

type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}
