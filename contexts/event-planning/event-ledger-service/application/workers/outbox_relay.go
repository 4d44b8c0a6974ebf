package workers

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	application "planora/contexts/event-planning/event-ledger-service/application"
	"planora/contexts/event-planning/event-ledger-service/ports"
)

// OutboxRelay publishes pending booking outbox rows to the event bus.
type OutboxRelay struct {
	Outbox    ports.OutboxRepository
	Publisher ports.EventPublisher
	Clock     ports.Clock
	BatchSize int
	Logger    *slog.Logger
}

func (r OutboxRelay) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(r.Logger)
	limit := r.BatchSize
	if limit <= 0 {
		limit = 100
	}

	pending, err := r.Outbox.ListPendingOutbox(ctx, limit)
	if err != nil {
		logger.Error("booking outbox list failed",
			"event", "booking_outbox_list_failed",
			"module", "event-planning/event-ledger-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}

	now := time.Now().UTC()
	if r.Clock != nil {
		now = r.Clock.Now().UTC()
	}

	for _, row := range pending {
		var event ports.EventEnvelope
		if err := json.Unmarshal(row.Payload, &event); err != nil {
			logger.Error("booking outbox decode failed",
				"event", "booking_outbox_decode_failed",
				"module", "event-planning/event-ledger-service",
				"layer", "worker",
				"outbox_id", row.OutboxID,
				"error", err.Error(),
			)
			return err
		}

		topic := event.EventType
		if topic == "" {
			topic = row.EventType
		}
		if err := r.Publisher.Publish(ctx, topic, event); err != nil {
			logger.Error("booking outbox publish failed",
				"event", "booking_outbox_publish_failed",
				"module", "event-planning/event-ledger-service",
				"layer", "worker",
				"outbox_id", row.OutboxID,
				"event_id", event.EventID,
				"event_type", event.EventType,
				"topic", topic,
				"error", err.Error(),
			)
			return err
		}
		if err := r.Outbox.MarkOutboxPublished(ctx, row.OutboxID, now); err != nil {
			logger.Error("booking outbox mark published failed",
				"event", "booking_outbox_mark_published_failed",
				"module", "event-planning/event-ledger-service",
				"layer", "worker",
				"outbox_id", row.OutboxID,
				"error", err.Error(),
			)
			return err
		}
	}

	if len(pending) > 0 {
		logger.Info("booking outbox relay cycle completed",
			"event", "booking_outbox_relay_completed",
			"module", "event-planning/event-ledger-service",
			"layer", "worker",
			"published_count", len(pending),
		)
	}
	return nil
}
