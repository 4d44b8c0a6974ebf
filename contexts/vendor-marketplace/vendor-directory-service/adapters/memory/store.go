package memory

import (
	"context"
	"sync"
	"time"

	"planora/contexts/vendor-marketplace/vendor-directory-service/domain/entities"
	domainerrors "planora/contexts/vendor-marketplace/vendor-directory-service/domain/errors"
	"planora/contexts/vendor-marketplace/vendor-directory-service/ports"

	"github.com/google/uuid"
)

var (
	_ ports.VendorRepository    = (*Store)(nil)
	_ ports.DashboardRepository = (*Store)(nil)
	_ ports.EventDedupStore     = (*Store)(nil)
	_ ports.Clock               = (*Store)(nil)
	_ ports.IDGenerator         = (*Store)(nil)
)

type dedupRecord struct {
	PayloadHash string
	ExpiresAt   time.Time
}

type Store struct {
	mu         sync.RWMutex
	vendors    []entities.VendorProfile
	dashboards map[string]entities.Dashboard
	eventDedup map[string]dedupRecord
}

func NewStore() *Store {
	return &Store{
		dashboards: make(map[string]entities.Dashboard),
		eventDedup: make(map[string]dedupRecord),
	}
}

func (s *Store) CreateVendor(_ context.Context, vendor entities.VendorProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.vendors {
		if existing.VendorID == vendor.VendorID {
			return domainerrors.ErrInvalidVendorInput
		}
	}
	s.vendors = append(s.vendors, vendor)
	return nil
}

func (s *Store) GetVendor(_ context.Context, vendorID string) (entities.VendorProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, vendor := range s.vendors {
		if vendor.VendorID == vendorID {
			return vendor, nil
		}
	}
	return entities.VendorProfile{}, domainerrors.ErrVendorNotFound
}

func (s *Store) ListVendors(_ context.Context, vendorType string) ([]entities.VendorProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.VendorProfile, 0, len(s.vendors))
	for _, vendor := range s.vendors {
		if vendorType != "" && vendor.VendorType != vendorType {
			continue
		}
		items = append(items, vendor)
	}
	return items, nil
}

func (s *Store) GetDashboard(_ context.Context, vendorID string) (entities.Dashboard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dashboard, ok := s.dashboards[vendorID]
	if !ok {
		return entities.Dashboard{VendorID: vendorID}, nil
	}
	return dashboard, nil
}

func (s *Store) ApplyConfirmedBooking(_ context.Context, booking ports.BookingApplication) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dashboard := s.dashboards[booking.VendorID]
	dashboard.VendorID = booking.VendorID
	dashboard.ConfirmedBookings++
	dashboard.TotalRevenue += booking.Amount
	bookedAt := booking.BookedAt.UTC()
	if dashboard.LastBookingAt == nil || bookedAt.After(*dashboard.LastBookingAt) {
		dashboard.LastBookingAt = &bookedAt
	}
	s.dashboards[booking.VendorID] = dashboard
	return nil
}

func (s *Store) ReserveEvent(
	_ context.Context,
	eventID string,
	payloadHash string,
	expiresAt time.Time,
) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if record, ok := s.eventDedup[eventID]; ok {
		if record.ExpiresAt.After(now) {
			return true, nil
		}
	}
	s.eventDedup[eventID] = dedupRecord{
		PayloadHash: payloadHash,
		ExpiresAt:   expiresAt.UTC(),
	}
	return false, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
