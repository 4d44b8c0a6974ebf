package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	application "planora/contexts/event-planning/event-ledger-service/application"
	"planora/contexts/event-planning/event-ledger-service/domain/entities"
	domainerrors "planora/contexts/event-planning/event-ledger-service/domain/errors"
	"planora/contexts/event-planning/event-ledger-service/ports"
)

type CreateEventCommand struct {
	CustomerID     string
	IdempotencyKey string
	EventTypeID    string
	Title          string
	Description    string
	Date           string
	Time           string
	Location       string
	GuestCount     int
	TotalCost      float64
}

type CreateEventUseCase struct {
	Ledger         ports.LedgerRepository
	History        ports.HistoryRepository
	Idempotency    ports.IdempotencyStore
	Outbox         ports.OutboxWriter
	Clock          ports.Clock
	IDGenerator    ports.IDGenerator
	IdempotencyTTL time.Duration
	Logger         *slog.Logger
}

type CreateEventResult struct {
	Event    entities.CustomerEvent
	Replayed bool
}

type createEventReplayPayload struct {
	EventID     string               `json:"event_id"`
	CustomerID  string               `json:"customer_id"`
	EventTypeID string               `json:"event_type_id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Date        string               `json:"date"`
	Time        string               `json:"time"`
	Location    string               `json:"location"`
	GuestCount  int                  `json:"guest_count"`
	TotalCost   float64              `json:"total_cost"`
	Status      entities.EventStatus `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
}

// Execute creates a draft booking. Any status supplied by the caller is
// ignored: new events always enter the ledger as drafts.
func (uc CreateEventUseCase) Execute(ctx context.Context, cmd CreateEventCommand) (CreateEventResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	if strings.TrimSpace(cmd.IdempotencyKey) == "" {
		return CreateEventResult{}, domainerrors.ErrIdempotencyKeyRequired
	}

	now := uc.Clock.Now().UTC()
	requestHash := hashCreateEventCommand(cmd)
	if record, found, err := uc.Idempotency.GetRecord(ctx, cmd.IdempotencyKey, now); err != nil {
		return CreateEventResult{}, err
	} else if found {
		if record.RequestHash != requestHash {
			return CreateEventResult{}, domainerrors.ErrIdempotencyKeyConflict
		}
		var payload createEventReplayPayload
		if err := json.Unmarshal(record.ResponsePayload, &payload); err != nil {
			return CreateEventResult{}, err
		}
		return CreateEventResult{
			Event: entities.CustomerEvent{
				EventID:     payload.EventID,
				CustomerID:  payload.CustomerID,
				EventTypeID: payload.EventTypeID,
				Title:       payload.Title,
				Description: payload.Description,
				Date:        payload.Date,
				Time:        payload.Time,
				Location:    payload.Location,
				GuestCount:  payload.GuestCount,
				TotalCost:   payload.TotalCost,
				Status:      payload.Status,
				CreatedAt:   payload.CreatedAt,
				UpdatedAt:   payload.CreatedAt,
			},
			Replayed: true,
		}, nil
	}

	eventID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return CreateEventResult{}, err
	}

	event := entities.CustomerEvent{
		EventID:     eventID,
		CustomerID:  strings.TrimSpace(cmd.CustomerID),
		EventTypeID: strings.TrimSpace(cmd.EventTypeID),
		Title:       strings.TrimSpace(cmd.Title),
		Description: strings.TrimSpace(cmd.Description),
		Date:        strings.TrimSpace(cmd.Date),
		Time:        strings.TrimSpace(cmd.Time),
		Location:    strings.TrimSpace(cmd.Location),
		GuestCount:  entities.CoerceGuestCount(cmd.GuestCount),
		TotalCost:   cmd.TotalCost,
		Status:      entities.EventStatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if event.TotalCost < 0 {
		event.TotalCost = 0
	}
	if !event.ValidateBasics() {
		return CreateEventResult{}, domainerrors.ErrInvalidEventInput
	}

	if err := uc.Ledger.CreateEvent(ctx, event); err != nil {
		return CreateEventResult{}, err
	}

	payload := createEventReplayPayload{
		EventID:     event.EventID,
		CustomerID:  event.CustomerID,
		EventTypeID: event.EventTypeID,
		Title:       event.Title,
		Description: event.Description,
		Date:        event.Date,
		Time:        event.Time,
		Location:    event.Location,
		GuestCount:  event.GuestCount,
		TotalCost:   event.TotalCost,
		Status:      event.Status,
		CreatedAt:   event.CreatedAt,
	}
	serialized, err := json.Marshal(payload)
	if err != nil {
		return CreateEventResult{}, err
	}
	if err := uc.Idempotency.PutRecord(ctx, ports.IdempotencyRecord{
		Key:             cmd.IdempotencyKey,
		RequestHash:     requestHash,
		ResponsePayload: serialized,
		ExpiresAt:       now.Add(uc.IdempotencyTTL),
	}); err != nil {
		return CreateEventResult{}, err
	}

	if uc.Outbox != nil {
		outboxEventID, err := uc.IDGenerator.NewID(ctx)
		if err != nil {
			return CreateEventResult{}, err
		}
		envelope, err := newBookingEnvelope(
			outboxEventID,
			"booking.created",
			event.EventID,
			now,
			map[string]any{
				"event_id":    event.EventID,
				"customer_id": event.CustomerID,
				"status":      string(event.Status),
			},
		)
		if err != nil {
			return CreateEventResult{}, err
		}
		if err := uc.Outbox.AppendOutbox(ctx, envelope); err != nil {
			return CreateEventResult{}, err
		}
	}

	logger.Info("customer event created",
		"event", "ledger_event_created",
		"module", "event-planning/event-ledger-service",
		"layer", "application",
		"event_id", event.EventID,
		"customer_id", event.CustomerID,
	)
	return CreateEventResult{Event: event}, nil
}

func hashCreateEventCommand(cmd CreateEventCommand) string {
	payload := map[string]any{
		"customer_id":   strings.TrimSpace(cmd.CustomerID),
		"event_type_id": strings.TrimSpace(cmd.EventTypeID),
		"title":         strings.TrimSpace(cmd.Title),
		"description":   strings.TrimSpace(cmd.Description),
		"date":          strings.TrimSpace(cmd.Date),
		"time":          strings.TrimSpace(cmd.Time),
		"location":      strings.TrimSpace(cmd.Location),
		"guest_count":   cmd.GuestCount,
		"total_cost":    cmd.TotalCost,
	}
	raw, _ := json.Marshal(payload)
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
