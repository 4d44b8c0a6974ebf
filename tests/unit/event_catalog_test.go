package unit

import (
	"context"
	"errors"
	"testing"

	eventcatalogservice "planora/contexts/event-planning/event-catalog-service"
	domainerrors "planora/contexts/event-planning/event-catalog-service/domain/errors"
	httptransport "planora/contexts/event-planning/event-catalog-service/transport/http"
)

func TestCatalogStartsWithDefaultEventTypes(t *testing.T) {
	module := eventcatalogservice.NewInMemoryModule(nil)

	resp, err := module.Handler.ListEventTypesHandler(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(resp.Items) != 6 {
		t.Fatalf("expected six default event types, got %d", len(resp.Items))
	}
	for i := 1; i < len(resp.Items); i++ {
		if resp.Items[i-1].ID >= resp.Items[i].ID {
			t.Fatalf("expected listing sorted by id, got %q before %q", resp.Items[i-1].ID, resp.Items[i].ID)
		}
	}

	wedding, err := module.Handler.GetEventTypeHandler(context.Background(), "wedding")
	if err != nil {
		t.Fatalf("get wedding failed: %v", err)
	}
	if !wedding.EventType.Popular {
		t.Fatalf("expected wedding to be marked popular")
	}
}

func TestSeedReplacesWholeCatalog(t *testing.T) {
	module := eventcatalogservice.NewInMemoryModule(nil)
	ctx := context.Background()

	resp, err := module.Handler.SeedHandler(ctx, httptransport.SeedRequest{
		Items: []httptransport.EventTypeDTO{
			{ID: "retreat", Name: "Company Retreat", AccentStyle: "teal"},
		},
	})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].ID != "retreat" {
		t.Fatalf("expected seeded catalog of one item, got %+v", resp.Items)
	}

	if _, err := module.Handler.GetEventTypeHandler(ctx, "wedding"); !errors.Is(err, domainerrors.ErrEventTypeNotFound) {
		t.Fatalf("expected pre-seed types to be replaced, got %v", err)
	}
}

func TestReseedingDefaultsIsIdempotent(t *testing.T) {
	module := eventcatalogservice.NewInMemoryModule(nil)
	ctx := context.Background()

	defaults := make([]httptransport.EventTypeDTO, 0, 6)
	listing, err := module.Handler.ListEventTypesHandler(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	defaults = append(defaults, listing.Items...)

	for i := 0; i < 2; i++ {
		if _, err := module.Handler.SeedHandler(ctx, httptransport.SeedRequest{Items: defaults}); err != nil {
			t.Fatalf("seed round %d failed: %v", i+1, err)
		}
	}
	listing, err = module.Handler.ListEventTypesHandler(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listing.Items) != 6 {
		t.Fatalf("expected six event types after reseeding, got %d", len(listing.Items))
	}
}

func TestSeedRejectsDuplicateIDs(t *testing.T) {
	module := eventcatalogservice.NewInMemoryModule(nil)

	_, err := module.Handler.SeedHandler(context.Background(), httptransport.SeedRequest{
		Items: []httptransport.EventTypeDTO{
			{ID: "gala", Name: "Charity Gala"},
			{ID: "gala", Name: "Charity Gala Again"},
		},
	})
	if !errors.Is(err, domainerrors.ErrDuplicateEventType) {
		t.Fatalf("expected duplicate id rejection, got %v", err)
	}
}

func TestGetUnknownEventType(t *testing.T) {
	module := eventcatalogservice.NewInMemoryModule(nil)

	_, err := module.Handler.GetEventTypeHandler(context.Background(), "quinceanera")
	if !errors.Is(err, domainerrors.ErrEventTypeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
