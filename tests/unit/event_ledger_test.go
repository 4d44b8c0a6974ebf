package unit

import (
	"context"
	"errors"
	"testing"

	eventledgerservice "planora/contexts/event-planning/event-ledger-service"
	"planora/contexts/event-planning/event-ledger-service/domain/entities"
	domainerrors "planora/contexts/event-planning/event-ledger-service/domain/errors"
	httptransport "planora/contexts/event-planning/event-ledger-service/transport/http"
)

func createDraftEvent(t *testing.T, module eventledgerservice.Module, customerID string, key string, title string) httptransport.CustomerEventDTO {
	t.Helper()
	resp, err := module.Handler.CreateEventHandler(context.Background(), customerID, key, httptransport.CreateEventRequest{
		EventTypeID: "wedding",
		Title:       title,
		Date:        "2026-10-17",
		Time:        "16:00",
		Location:    "Lakeside Pavilion",
		GuestCount:  80,
		TotalCost:   4200,
	})
	if err != nil {
		t.Fatalf("create event failed: %v", err)
	}
	return resp.Event
}

func TestNewEventsAlwaysStartAsDraft(t *testing.T) {
	module := eventledgerservice.NewInMemoryModule(nil)
	event := createDraftEvent(t, module, "cust-1", "idem-led-1", "Garden Wedding")

	if event.Status != string(entities.EventStatusDraft) {
		t.Fatalf("expected draft status, got %q", event.Status)
	}
}

func TestCreateEventIdempotencyReplay(t *testing.T) {
	module := eventledgerservice.NewInMemoryModule(nil)
	ctx := context.Background()

	req := httptransport.CreateEventRequest{
		EventTypeID: "birthday",
		Title:       "Sweet Sixteen",
		GuestCount:  30,
	}
	first, err := module.Handler.CreateEventHandler(ctx, "cust-1", "idem-led-2", req)
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	second, err := module.Handler.CreateEventHandler(ctx, "cust-1", "idem-led-2", req)
	if err != nil {
		t.Fatalf("replayed create failed: %v", err)
	}
	if first.Event.EventID != second.Event.EventID {
		t.Fatalf("expected replay to return the same event id")
	}
	if !second.Replayed {
		t.Fatalf("expected second response to be marked replayed")
	}

	items, err := module.Handler.ListEventsHandler(ctx, "cust-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items.Items) != 1 {
		t.Fatalf("expected a single event after replay, got %d", len(items.Items))
	}
}

func TestCreateEventRequiresIdempotencyKey(t *testing.T) {
	module := eventledgerservice.NewInMemoryModule(nil)

	_, err := module.Handler.CreateEventHandler(context.Background(), "cust-1", "", httptransport.CreateEventRequest{
		Title: "No Key",
	})
	if !errors.Is(err, domainerrors.ErrIdempotencyKeyRequired) {
		t.Fatalf("expected idempotency key requirement, got %v", err)
	}
}

func TestGuestCountClampsNonNumericInput(t *testing.T) {
	module := eventledgerservice.NewInMemoryModule(nil)

	resp, err := module.Handler.CreateEventHandler(context.Background(), "cust-1", "idem-led-3", httptransport.CreateEventRequest{
		Title:      "Casual Picnic",
		GuestCount: "a bunch of friends",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if resp.Event.GuestCount != 0 {
		t.Fatalf("expected clamped guest count 0, got %d", resp.Event.GuestCount)
	}
}

func TestEditAllowedForDraftAndConfirmed(t *testing.T) {
	module := eventledgerservice.NewInMemoryModule(nil)
	ctx := context.Background()
	event := createDraftEvent(t, module, "cust-1", "idem-led-4", "Corporate Offsite")

	newTitle := "Corporate Offsite 2026"
	updated, err := module.Handler.UpdateEventHandler(ctx, "cust-1", event.EventID, httptransport.UpdateEventRequest{
		Title: &newTitle,
	})
	if err != nil {
		t.Fatalf("draft edit failed: %v", err)
	}
	if updated.Event.Title != newTitle {
		t.Fatalf("expected edited title, got %q", updated.Event.Title)
	}
	if updated.Event.Status != string(entities.EventStatusDraft) {
		t.Fatalf("edit must not change status, got %q", updated.Event.Status)
	}

	if _, err := module.Handler.ConfirmEventHandler(ctx, "cust-1", event.EventID, httptransport.ConfirmEventRequest{}); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}

	location := "Harbor Hotel"
	updated, err = module.Handler.UpdateEventHandler(ctx, "cust-1", event.EventID, httptransport.UpdateEventRequest{
		Location: &location,
	})
	if err != nil {
		t.Fatalf("confirmed edit failed: %v", err)
	}
	if updated.Event.Status != string(entities.EventStatusConfirmed) {
		t.Fatalf("edit must keep confirmed status, got %q", updated.Event.Status)
	}
}

func TestEditRejectedForFinalizedEvents(t *testing.T) {
	module := eventledgerservice.NewInMemoryModule(nil)
	ctx := context.Background()

	for _, status := range []entities.EventStatus{entities.EventStatusCompleted, entities.EventStatusCancelled} {
		eventID := "evt-" + string(status)
		if err := module.Store.CreateEvent(ctx, entities.CustomerEvent{
			EventID:    eventID,
			CustomerID: "cust-1",
			Title:      "Finalized",
			Status:     status,
		}); err != nil {
			t.Fatalf("seed %s event failed: %v", status, err)
		}

		title := "Rewritten"
		_, err := module.Handler.UpdateEventHandler(ctx, "cust-1", eventID, httptransport.UpdateEventRequest{
			Title: &title,
		})
		if !errors.Is(err, domainerrors.ErrTransitionRejected) {
			t.Fatalf("expected edit rejection for %s, got %v", status, err)
		}

		var transitionErr *domainerrors.TransitionError
		if !errors.As(err, &transitionErr) {
			t.Fatalf("expected transition detail, got %T", err)
		}
		if transitionErr.Action != "edit" || transitionErr.Status != string(status) {
			t.Fatalf("unexpected transition detail %+v", transitionErr)
		}
	}
}

func TestCancelOnlyFromConfirmed(t *testing.T) {
	module := eventledgerservice.NewInMemoryModule(nil)
	ctx := context.Background()
	event := createDraftEvent(t, module, "cust-1", "idem-led-5", "Anniversary Dinner")

	_, err := module.Handler.CancelEventHandler(ctx, "cust-1", event.EventID, httptransport.CancelEventRequest{Reason: "changed plans"})
	if !errors.Is(err, domainerrors.ErrTransitionRejected) {
		t.Fatalf("expected draft cancel rejection, got %v", err)
	}

	if _, err := module.Handler.ConfirmEventHandler(ctx, "cust-1", event.EventID, httptransport.ConfirmEventRequest{}); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	cancelled, err := module.Handler.CancelEventHandler(ctx, "cust-1", event.EventID, httptransport.CancelEventRequest{Reason: "venue flooded"})
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if cancelled.Event.Status != string(entities.EventStatusCancelled) {
		t.Fatalf("expected cancelled status, got %q", cancelled.Event.Status)
	}
}

func TestDeleteRejectedWhileConfirmed(t *testing.T) {
	module := eventledgerservice.NewInMemoryModule(nil)
	ctx := context.Background()
	event := createDraftEvent(t, module, "cust-1", "idem-led-6", "Graduation Party")

	if _, err := module.Handler.ConfirmEventHandler(ctx, "cust-1", event.EventID, httptransport.ConfirmEventRequest{}); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}

	err := module.Handler.DeleteEventHandler(ctx, "cust-1", event.EventID)
	if !errors.Is(err, domainerrors.ErrTransitionRejected) {
		t.Fatalf("expected delete rejection while confirmed, got %v", err)
	}

	if _, err := module.Handler.CancelEventHandler(ctx, "cust-1", event.EventID, httptransport.CancelEventRequest{}); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if err := module.Handler.DeleteEventHandler(ctx, "cust-1", event.EventID); err != nil {
		t.Fatalf("delete after cancel failed: %v", err)
	}
	if _, err := module.Handler.GetEventHandler(ctx, "cust-1", event.EventID); !errors.Is(err, domainerrors.ErrEventNotFound) {
		t.Fatalf("expected deleted event to be gone, got %v", err)
	}
}

func TestLedgerKeepsInsertionOrderAcrossMutations(t *testing.T) {
	module := eventledgerservice.NewInMemoryModule(nil)
	ctx := context.Background()

	first := createDraftEvent(t, module, "cust-1", "idem-led-7", "First Booking")
	second := createDraftEvent(t, module, "cust-1", "idem-led-8", "Second Booking")
	third := createDraftEvent(t, module, "cust-1", "idem-led-9", "Third Booking")

	if _, err := module.Handler.ConfirmEventHandler(ctx, "cust-1", second.EventID, httptransport.ConfirmEventRequest{}); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	title := "First Booking Edited"
	if _, err := module.Handler.UpdateEventHandler(ctx, "cust-1", first.EventID, httptransport.UpdateEventRequest{Title: &title}); err != nil {
		t.Fatalf("edit failed: %v", err)
	}

	items, err := module.Handler.ListEventsHandler(ctx, "cust-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	got := []string{items.Items[0].EventID, items.Items[1].EventID, items.Items[2].EventID}
	want := []string{first.EventID, second.EventID, third.EventID}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected stable order %v, got %v", want, got)
		}
	}
}

func TestConfirmRecordsVendorAndHistory(t *testing.T) {
	module := eventledgerservice.NewInMemoryModule(nil)
	ctx := context.Background()
	event := createDraftEvent(t, module, "cust-1", "idem-led-10", "Baby Shower")

	confirmed, err := module.Handler.ConfirmEventHandler(ctx, "cust-1", event.EventID, httptransport.ConfirmEventRequest{
		Vendor: &httptransport.VendorAssignmentDTO{
			VendorID:   "ven-1",
			VendorName: "Vino Catering",
		},
	})
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if confirmed.Event.Vendor == nil || confirmed.Event.Vendor.VendorID != "ven-1" {
		t.Fatalf("expected vendor assignment, got %+v", confirmed.Event.Vendor)
	}

	history, err := module.Handler.ListHistoryHandler(ctx, "cust-1", event.EventID)
	if err != nil {
		t.Fatalf("list history failed: %v", err)
	}
	if len(history.Items) != 1 {
		t.Fatalf("expected one transition, got %d", len(history.Items))
	}
	item := history.Items[0]
	if item.FromStatus != string(entities.EventStatusDraft) || item.ToStatus != string(entities.EventStatusConfirmed) {
		t.Fatalf("unexpected transition %s -> %s", item.FromStatus, item.ToStatus)
	}
}

func TestEventsInvisibleAcrossCustomers(t *testing.T) {
	module := eventledgerservice.NewInMemoryModule(nil)
	ctx := context.Background()
	event := createDraftEvent(t, module, "cust-1", "idem-led-11", "Private Party")

	if _, err := module.Handler.GetEventHandler(ctx, "cust-2", event.EventID); !errors.Is(err, domainerrors.ErrEventNotFound) {
		t.Fatalf("expected cross-customer read to fail, got %v", err)
	}
	items, err := module.Handler.ListEventsHandler(ctx, "cust-2")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items.Items) != 0 {
		t.Fatalf("expected empty foreign ledger, got %d", len(items.Items))
	}
}
