package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"planora/contexts/event-planning/event-ledger-service/domain/entities"
	domainerrors "planora/contexts/event-planning/event-ledger-service/domain/errors"
	"planora/contexts/event-planning/event-ledger-service/ports"
)

func TestListEventsKeepsInsertionOrder(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		err := store.CreateEvent(ctx, entities.CustomerEvent{
			EventID:    "evt-" + title,
			CustomerID: "cust-1",
			Title:      title,
			Status:     entities.EventStatusDraft,
		})
		if err != nil {
			t.Fatalf("create %s failed: %v", title, err)
		}
	}

	// Updating the first event must not move it.
	if err := store.UpdateEvent(ctx, entities.CustomerEvent{
		EventID:    "evt-first",
		CustomerID: "cust-1",
		Title:      "first edited",
		Status:     entities.EventStatusDraft,
	}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	items, err := store.ListEvents(ctx, "cust-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 events, got %d", len(items))
	}
	if items[0].EventID != "evt-first" || items[1].EventID != "evt-second" || items[2].EventID != "evt-third" {
		t.Fatalf("unexpected order: %s, %s, %s", items[0].EventID, items[1].EventID, items[2].EventID)
	}
	if items[0].Title != "first edited" {
		t.Fatalf("expected edited title, got %q", items[0].Title)
	}
}

func TestEventsAreScopedByCustomer(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	if err := store.CreateEvent(ctx, entities.CustomerEvent{
		EventID:    "evt-1",
		CustomerID: "cust-1",
		Title:      "mine",
		Status:     entities.EventStatusDraft,
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := store.GetEvent(ctx, "cust-2", "evt-1"); !errors.Is(err, domainerrors.ErrEventNotFound) {
		t.Fatalf("expected not found for foreign customer, got %v", err)
	}
	if err := store.DeleteEvent(ctx, "cust-2", "evt-1"); !errors.Is(err, domainerrors.ErrEventNotFound) {
		t.Fatalf("expected delete rejection for foreign customer, got %v", err)
	}

	items, err := store.ListEvents(ctx, "cust-2")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty ledger for other customer, got %d", len(items))
	}
}

func TestDeletePreservesOrderOfRemaining(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	for _, id := range []string{"evt-a", "evt-b", "evt-c"} {
		if err := store.CreateEvent(ctx, entities.CustomerEvent{
			EventID:    id,
			CustomerID: "cust-1",
			Title:      id,
			Status:     entities.EventStatusDraft,
		}); err != nil {
			t.Fatalf("create %s failed: %v", id, err)
		}
	}

	if err := store.DeleteEvent(ctx, "cust-1", "evt-b"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	items, err := store.ListEvents(ctx, "cust-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 2 || items[0].EventID != "evt-a" || items[1].EventID != "evt-c" {
		t.Fatalf("unexpected remaining events: %+v", items)
	}
}

func TestIdempotencyRecordExpires(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	now := time.Now().UTC()

	if err := store.PutRecord(ctx, ports.IdempotencyRecord{
		Key:             "idem-1",
		RequestHash:     "hash-1",
		ResponsePayload: []byte(`{"ok":true}`),
		ExpiresAt:       now.Add(time.Hour),
	}); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	if _, found, err := store.GetRecord(ctx, "idem-1", now); err != nil || !found {
		t.Fatalf("expected live record, found=%v err=%v", found, err)
	}
	if _, found, err := store.GetRecord(ctx, "idem-1", now.Add(2*time.Hour)); err != nil || found {
		t.Fatalf("expected expired record to vanish, found=%v err=%v", found, err)
	}
}

func TestOutboxLifecycle(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	now := time.Now().UTC()

	if err := store.AppendOutbox(ctx, ports.EventEnvelope{
		EventID:    "out-1",
		EventType:  "booking.created",
		OccurredAt: now,
		Data:       []byte(`{"event_id":"evt-1"}`),
	}); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	pending, err := store.ListPendingOutbox(ctx, 10)
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pending) != 1 || pending[0].EventType != "booking.created" {
		t.Fatalf("unexpected pending rows: %+v", pending)
	}

	if err := store.MarkOutboxPublished(ctx, pending[0].OutboxID, now); err != nil {
		t.Fatalf("mark published failed: %v", err)
	}
	pending, err = store.ListPendingOutbox(ctx, 10)
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("expected drained outbox, got %d rows", len(pending))
	}
}
