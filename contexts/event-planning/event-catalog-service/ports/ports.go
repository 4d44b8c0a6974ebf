package ports

import "context"

// EventTypeRecord is a catalog row. AccentStyle is an opaque presentation
// hint the browse UI uses for card styling; the service stores it verbatim.
type EventTypeRecord struct {
	ID          string
	Name        string
	Description string
	AccentStyle string
	Popular     bool
}

// Repository holds the catalog reference data. Replace swaps the whole
// catalog atomically; readers never observe a partially seeded state.
type Repository interface {
	Replace(ctx context.Context, items []EventTypeRecord) error
	List(ctx context.Context) ([]EventTypeRecord, error)
	Get(ctx context.Context, id string) (EventTypeRecord, error)
}
