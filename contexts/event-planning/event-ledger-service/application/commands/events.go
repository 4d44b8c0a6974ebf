package commands

import (
	"encoding/json"
	"time"

	"planora/contexts/event-planning/event-ledger-service/ports"
)

func newBookingEnvelope(
	eventID string,
	eventType string,
	ledgerEventID string,
	occurredAt time.Time,
	data map[string]any,
) (ports.EventEnvelope, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return ports.EventEnvelope{}, err
	}
	return ports.EventEnvelope{
		EventID:          eventID,
		EventType:        eventType,
		OccurredAt:       occurredAt.UTC(),
		SourceService:    "event-ledger-service",
		SchemaVersion:    1,
		PartitionKeyPath: "event_id",
		PartitionKey:     ledgerEventID,
		Data:             payload,
	}, nil
}
