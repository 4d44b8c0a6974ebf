package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"planora/contexts/event-planning/event-ledger-service/adapters/memory"
	"planora/contexts/event-planning/event-ledger-service/ports"
)

type capturingPublisher struct {
	published []publishedEvent
	failOn    string
}

type publishedEvent struct {
	topic string
	event ports.EventEnvelope
}

func (p *capturingPublisher) Publish(_ context.Context, topic string, event ports.EventEnvelope) error {
	if p.failOn != "" && event.EventID == p.failOn {
		return errors.New("bus unavailable")
	}
	p.published = append(p.published, publishedEvent{topic: topic, event: event})
	return nil
}

func appendEnvelope(t *testing.T, store *memory.Store, eventID string, eventType string) {
	t.Helper()
	err := store.AppendOutbox(context.Background(), ports.EventEnvelope{
		EventID:    eventID,
		EventType:  eventType,
		OccurredAt: time.Now().UTC(),
		Data:       []byte(`{"event_id":"evt-1"}`),
	})
	if err != nil {
		t.Fatalf("append outbox failed: %v", err)
	}
}

func TestRunOncePublishesPendingByTopic(t *testing.T) {
	store := memory.NewStore()
	publisher := &capturingPublisher{}
	appendEnvelope(t, store, "env-1", "booking.created")
	appendEnvelope(t, store, "env-2", "booking.confirmed")

	relay := OutboxRelay{Outbox: store, Publisher: publisher, Clock: store}
	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("relay run failed: %v", err)
	}

	if len(publisher.published) != 2 {
		t.Fatalf("expected two published events, got %d", len(publisher.published))
	}
	if publisher.published[0].topic != "booking.created" || publisher.published[1].topic != "booking.confirmed" {
		t.Fatalf("unexpected topics %q and %q", publisher.published[0].topic, publisher.published[1].topic)
	}

	pending, err := store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("expected drained outbox, got %d pending", len(pending))
	}
}

func TestRunOnceStopsOnPublishFailure(t *testing.T) {
	store := memory.NewStore()
	publisher := &capturingPublisher{failOn: "env-1"}
	appendEnvelope(t, store, "env-1", "booking.created")
	appendEnvelope(t, store, "env-2", "booking.confirmed")

	relay := OutboxRelay{Outbox: store, Publisher: publisher, Clock: store}
	if err := relay.RunOnce(context.Background()); err == nil {
		t.Fatalf("expected publish failure to surface")
	}

	// The failed row stays pending so the next cycle retries it in order.
	pending, err := store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected both rows still pending, got %d", len(pending))
	}
	if len(publisher.published) != 0 {
		t.Fatalf("expected nothing published after leading failure, got %d", len(publisher.published))
	}
}
