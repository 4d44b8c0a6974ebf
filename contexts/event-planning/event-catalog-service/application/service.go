package application

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	domainerrors "planora/contexts/event-planning/event-catalog-service/domain/errors"
	"planora/contexts/event-planning/event-catalog-service/ports"
)

type Service struct {
	Repo   ports.Repository
	Logger *slog.Logger
}

// Seed replaces the entire catalog with the given batch. The previous
// contents are discarded, so callers re-seed the full reference set every
// time rather than patching individual rows.
func (s Service) Seed(ctx context.Context, items []ports.EventTypeRecord) ([]ports.EventTypeRecord, error) {
	if len(items) == 0 {
		return nil, domainerrors.ErrInvalidRequest
	}

	seen := make(map[string]struct{}, len(items))
	cleaned := make([]ports.EventTypeRecord, 0, len(items))
	for _, item := range items {
		id := strings.TrimSpace(item.ID)
		name := strings.TrimSpace(item.Name)
		if id == "" || name == "" {
			return nil, domainerrors.ErrInvalidRequest
		}
		if _, dup := seen[id]; dup {
			return nil, domainerrors.ErrDuplicateEventType
		}
		seen[id] = struct{}{}
		cleaned = append(cleaned, ports.EventTypeRecord{
			ID:          id,
			Name:        name,
			Description: strings.TrimSpace(item.Description),
			AccentStyle: strings.TrimSpace(item.AccentStyle),
			Popular:     item.Popular,
		})
	}

	if err := s.Repo.Replace(ctx, cleaned); err != nil {
		return nil, err
	}

	resolveLogger(s.Logger).Info("event type catalog seeded",
		"event", "event_type_catalog_seeded",
		"module", "event-planning/event-catalog-service",
		"layer", "application",
		"count", len(cleaned),
	)
	return s.List(ctx)
}

func (s Service) List(ctx context.Context) ([]ports.EventTypeRecord, error) {
	items, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (s Service) Get(ctx context.Context, id string) (ports.EventTypeRecord, error) {
	if strings.TrimSpace(id) == "" {
		return ports.EventTypeRecord{}, domainerrors.ErrInvalidRequest
	}
	return s.Repo.Get(ctx, strings.TrimSpace(id))
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}

// DefaultEventTypes is the reference catalog a fresh deployment starts with.
func DefaultEventTypes() []ports.EventTypeRecord {
	return []ports.EventTypeRecord{
		{ID: "wedding", Name: "Wedding", Description: "Ceremonies and receptions of every size.", AccentStyle: "rose", Popular: true},
		{ID: "birthday", Name: "Birthday Party", Description: "Milestone and everyday birthday celebrations.", AccentStyle: "amber", Popular: true},
		{ID: "corporate", Name: "Corporate Event", Description: "Conferences, offsites, and company gatherings.", AccentStyle: "slate", Popular: false},
		{ID: "anniversary", Name: "Anniversary", Description: "Anniversary dinners and renewal celebrations.", AccentStyle: "violet", Popular: false},
		{ID: "graduation", Name: "Graduation", Description: "Graduation parties and commencement events.", AccentStyle: "emerald", Popular: false},
		{ID: "babyshower", Name: "Baby Shower", Description: "Showers and gender reveal gatherings.", AccentStyle: "sky", Popular: false},
	}
}
