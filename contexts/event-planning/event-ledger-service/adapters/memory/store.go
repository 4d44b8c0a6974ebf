package memory

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"planora/contexts/event-planning/event-ledger-service/domain/entities"
	domainerrors "planora/contexts/event-planning/event-ledger-service/domain/errors"
	"planora/contexts/event-planning/event-ledger-service/ports"

	"github.com/google/uuid"
)

const outboxStatusPending = "pending"

type outboxRow struct {
	OutboxID     string
	EventType    string
	PartitionKey string
	Payload      []byte
	Status       string
	CreatedAt    time.Time
	PublishedAt  *time.Time
}

// Store keeps each customer's ledger as an insertion-ordered slice so list
// output is stable across mutations.
type Store struct {
	mu sync.RWMutex

	eventsByCustomer map[string][]entities.CustomerEvent
	historyByEventID map[string][]entities.StateHistory
	idempotency      map[string]ports.IdempotencyRecord
	outbox           []outboxRow
}

func NewStore() *Store {
	return &Store{
		eventsByCustomer: make(map[string][]entities.CustomerEvent),
		historyByEventID: make(map[string][]entities.StateHistory),
		idempotency:      make(map[string]ports.IdempotencyRecord),
	}
}

func (s *Store) CreateEvent(_ context.Context, event entities.CustomerEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	customerID := strings.TrimSpace(event.CustomerID)
	for _, existing := range s.eventsByCustomer[customerID] {
		if existing.EventID == event.EventID {
			return domainerrors.ErrInvalidEventInput
		}
	}
	s.eventsByCustomer[customerID] = append(s.eventsByCustomer[customerID], event)
	return nil
}

func (s *Store) UpdateEvent(_ context.Context, event entities.CustomerEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	customerID := strings.TrimSpace(event.CustomerID)
	items := s.eventsByCustomer[customerID]
	for i, existing := range items {
		if existing.EventID == event.EventID {
			items[i] = event
			return nil
		}
	}
	return domainerrors.ErrEventNotFound
}

func (s *Store) GetEvent(_ context.Context, customerID string, eventID string) (entities.CustomerEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, existing := range s.eventsByCustomer[strings.TrimSpace(customerID)] {
		if existing.EventID == strings.TrimSpace(eventID) {
			return existing, nil
		}
	}
	return entities.CustomerEvent{}, domainerrors.ErrEventNotFound
}

func (s *Store) ListEvents(_ context.Context, customerID string) ([]entities.CustomerEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.eventsByCustomer[strings.TrimSpace(customerID)]
	out := make([]entities.CustomerEvent, len(items))
	copy(out, items)
	return out, nil
}

func (s *Store) DeleteEvent(_ context.Context, customerID string, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.TrimSpace(customerID)
	items := s.eventsByCustomer[key]
	for i, existing := range items {
		if existing.EventID == strings.TrimSpace(eventID) {
			s.eventsByCustomer[key] = append(items[:i:i], items[i+1:]...)
			return nil
		}
	}
	return domainerrors.ErrEventNotFound
}

func (s *Store) AppendState(_ context.Context, item entities.StateHistory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.historyByEventID[item.EventID] = append(s.historyByEventID[item.EventID], item)
	return nil
}

func (s *Store) ListHistory(_ context.Context, eventID string) ([]entities.StateHistory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.historyByEventID[strings.TrimSpace(eventID)]
	out := make([]entities.StateHistory, len(items))
	copy(out, items)
	return out, nil
}

func (s *Store) GetRecord(_ context.Context, key string, now time.Time) (ports.IdempotencyRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.idempotency[key]
	if !ok {
		return ports.IdempotencyRecord{}, false, nil
	}
	if !record.ExpiresAt.IsZero() && now.UTC().After(record.ExpiresAt.UTC()) {
		delete(s.idempotency, key)
		return ports.IdempotencyRecord{}, false, nil
	}
	return record, true, nil
}

func (s *Store) PutRecord(_ context.Context, record ports.IdempotencyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.idempotency[record.Key]; ok {
		if existing.RequestHash != record.RequestHash {
			return domainerrors.ErrIdempotencyKeyConflict
		}
		return nil
	}
	s.idempotency[record.Key] = record
	return nil
}

func (s *Store) AppendOutbox(_ context.Context, envelope ports.EventEnvelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	row := outboxRow{
		OutboxID:     strings.TrimSpace(envelope.EventID),
		EventType:    strings.TrimSpace(envelope.EventType),
		PartitionKey: strings.TrimSpace(envelope.PartitionKey),
		Payload:      payload,
		Status:       outboxStatusPending,
		CreatedAt:    envelope.OccurredAt.UTC(),
	}
	if row.OutboxID == "" {
		row.OutboxID = uuid.NewString()
	}
	s.outbox = append(s.outbox, row)
	return nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.OutboxMessage, 0, limit)
	for _, row := range s.outbox {
		if row.Status != outboxStatusPending {
			continue
		}
		items = append(items, ports.OutboxMessage{
			OutboxID:     row.OutboxID,
			EventType:    row.EventType,
			PartitionKey: row.PartitionKey,
			Payload:      append([]byte(nil), row.Payload...),
			CreatedAt:    row.CreatedAt,
		})
		if len(items) >= limit {
			break
		}
	}
	return items, nil
}

func (s *Store) MarkOutboxPublished(_ context.Context, outboxID string, publishedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, row := range s.outbox {
		if row.OutboxID == strings.TrimSpace(outboxID) {
			at := publishedAt.UTC()
			s.outbox[i].Status = "published"
			s.outbox[i].PublishedAt = &at
			return nil
		}
	}
	return domainerrors.ErrEventNotFound
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

var _ ports.LedgerRepository = (*Store)(nil)
var _ ports.HistoryRepository = (*Store)(nil)
var _ ports.IdempotencyStore = (*Store)(nil)
var _ ports.OutboxWriter = (*Store)(nil)
var _ ports.OutboxRepository = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
var _ ports.IDGenerator = (*Store)(nil)
