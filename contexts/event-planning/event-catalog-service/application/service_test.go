package application

import (
	"context"
	"errors"
	"testing"

	domainerrors "planora/contexts/event-planning/event-catalog-service/domain/errors"
	"planora/contexts/event-planning/event-catalog-service/ports"
)

type fakeRepo struct {
	items map[string]ports.EventTypeRecord
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[string]ports.EventTypeRecord)}
}

func (f *fakeRepo) Replace(_ context.Context, items []ports.EventTypeRecord) error {
	next := make(map[string]ports.EventTypeRecord, len(items))
	for _, item := range items {
		next[item.ID] = item
	}
	f.items = next
	return nil
}

func (f *fakeRepo) List(_ context.Context) ([]ports.EventTypeRecord, error) {
	out := make([]ports.EventTypeRecord, 0, len(f.items))
	for _, item := range f.items {
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeRepo) Get(_ context.Context, id string) (ports.EventTypeRecord, error) {
	item, ok := f.items[id]
	if !ok {
		return ports.EventTypeRecord{}, domainerrors.ErrEventTypeNotFound
	}
	return item, nil
}

func TestSeedReplacesCatalog(t *testing.T) {
	repo := newFakeRepo()
	service := Service{Repo: repo}
	ctx := context.Background()

	if _, err := service.Seed(ctx, DefaultEventTypes()); err != nil {
		t.Fatalf("initial seed failed: %v", err)
	}

	items, err := service.Seed(ctx, []ports.EventTypeRecord{
		{ID: "festival", Name: "Festival"},
	})
	if err != nil {
		t.Fatalf("re-seed failed: %v", err)
	}
	if len(items) != 1 || items[0].ID != "festival" {
		t.Fatalf("expected catalog to be replaced, got %+v", items)
	}
	if _, err := service.Get(ctx, "wedding"); !errors.Is(err, domainerrors.ErrEventTypeNotFound) {
		t.Fatalf("expected old rows to be gone, got %v", err)
	}
}

func TestSeedRejectsDuplicateIDs(t *testing.T) {
	service := Service{Repo: newFakeRepo()}

	_, err := service.Seed(context.Background(), []ports.EventTypeRecord{
		{ID: "wedding", Name: "Wedding"},
		{ID: "wedding", Name: "Wedding Again"},
	})
	if !errors.Is(err, domainerrors.ErrDuplicateEventType) {
		t.Fatalf("expected duplicate rejection, got %v", err)
	}
}

func TestSeedRejectsBlankRows(t *testing.T) {
	service := Service{Repo: newFakeRepo()}

	_, err := service.Seed(context.Background(), []ports.EventTypeRecord{
		{ID: "  ", Name: "Nameless"},
	})
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid request, got %v", err)
	}
	_, err = service.Seed(context.Background(), nil)
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid request for empty batch, got %v", err)
	}
}

func TestListIsSortedByID(t *testing.T) {
	repo := newFakeRepo()
	service := Service{Repo: repo}
	ctx := context.Background()

	if _, err := service.Seed(ctx, DefaultEventTypes()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	items, err := service.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for i := 1; i < len(items); i++ {
		if items[i-1].ID >= items[i].ID {
			t.Fatalf("expected sorted ids, got %q before %q", items[i-1].ID, items[i].ID)
		}
	}
}

func TestDefaultEventTypesAreComplete(t *testing.T) {
	defaults := DefaultEventTypes()
	if len(defaults) != 6 {
		t.Fatalf("expected 6 default event types, got %d", len(defaults))
	}
	seen := make(map[string]bool, len(defaults))
	for _, item := range defaults {
		seen[item.ID] = true
	}
	for _, id := range []string{"wedding", "birthday", "corporate", "anniversary", "graduation", "babyshower"} {
		if !seen[id] {
			t.Fatalf("missing default event type %q", id)
		}
	}
}
