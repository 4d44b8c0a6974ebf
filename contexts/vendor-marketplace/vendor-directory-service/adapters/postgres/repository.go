package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"planora/contexts/vendor-marketplace/vendor-directory-service/domain/entities"
	domainerrors "planora/contexts/vendor-marketplace/vendor-directory-service/domain/errors"
	"planora/contexts/vendor-marketplace/vendor-directory-service/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	_ ports.VendorRepository    = (*Repository)(nil)
	_ ports.DashboardRepository = (*Repository)(nil)
	_ ports.EventDedupStore     = (*Repository)(nil)
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) CreateVendor(ctx context.Context, vendor entities.VendorProfile) error {
	row := vendorModelFromEntity(vendor)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidVendorInput
		}
		return err
	}
	return nil
}

func (r *Repository) GetVendor(ctx context.Context, vendorID string) (entities.VendorProfile, error) {
	var row vendorModel
	err := r.db.WithContext(ctx).Where("vendor_id = ?", vendorID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.VendorProfile{}, domainerrors.ErrVendorNotFound
		}
		return entities.VendorProfile{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListVendors(ctx context.Context, vendorType string) ([]entities.VendorProfile, error) {
	query := r.db.WithContext(ctx).Order("created_at ASC")
	if vendorType != "" {
		query = query.Where("vendor_type = ?", vendorType)
	}

	var rows []vendorModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entities.VendorProfile, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) GetDashboard(ctx context.Context, vendorID string) (entities.Dashboard, error) {
	var row dashboardModel
	err := r.db.WithContext(ctx).Where("vendor_id = ?", vendorID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Dashboard{VendorID: vendorID}, nil
		}
		return entities.Dashboard{}, err
	}

	dashboard := entities.Dashboard{
		VendorID:          row.VendorID,
		ConfirmedBookings: row.ConfirmedBookings,
		TotalRevenue:      row.TotalRevenue,
	}
	if row.LastBookingAt != nil {
		at := row.LastBookingAt.UTC()
		dashboard.LastBookingAt = &at
	}
	return dashboard, nil
}

// ApplyConfirmedBooking locks the dashboard row for the duration of the
// update so two consumer instances never interleave counter increments.
func (r *Repository) ApplyConfirmedBooking(ctx context.Context, booking ports.BookingApplication) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row dashboardModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("vendor_id = ?", booking.VendorID).
			First(&row).
			Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			row = dashboardModel{VendorID: booking.VendorID}
		}

		row.ConfirmedBookings++
		row.TotalRevenue += booking.Amount
		bookedAt := booking.BookedAt.UTC()
		if row.LastBookingAt == nil || bookedAt.After(*row.LastBookingAt) {
			row.LastBookingAt = &bookedAt
		}
		row.UpdatedAt = booking.AppliedAt.UTC()

		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "vendor_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"confirmed_bookings",
				"total_revenue",
				"last_booking_at",
				"updated_at",
			}),
		}).Create(&row).Error
	})
}

func (r *Repository) ReserveEvent(
	ctx context.Context,
	eventID string,
	payloadHash string,
	expiresAt time.Time,
) (bool, error) {
	row := consumedEventModel{
		EventID:     eventID,
		PayloadHash: payloadHash,
		ExpiresAt:   expiresAt.UTC(),
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}},
			DoNothing: true,
		}).
		Create(&row)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 0, nil
}

// SystemClock is the default runtime clock implementation.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// UUIDGenerator creates stable UUIDv4 identifiers for vendor profiles.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

type vendorModel struct {
	VendorID    string    `gorm:"column:vendor_id;primaryKey"`
	OwnerUserID string    `gorm:"column:owner_user_id;index"`
	Name        string    `gorm:"column:name"`
	VendorType  string    `gorm:"column:vendor_type;index"`
	Description string    `gorm:"column:description"`
	Location    string    `gorm:"column:location"`
	PriceRange  string    `gorm:"column:price_range"`
	Contact     string    `gorm:"column:contact"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (vendorModel) TableName() string {
	return "vendor_profiles"
}

func vendorModelFromEntity(item entities.VendorProfile) vendorModel {
	return vendorModel{
		VendorID:    item.VendorID,
		OwnerUserID: item.OwnerUserID,
		Name:        item.Name,
		VendorType:  item.VendorType,
		Description: item.Description,
		Location:    item.Location,
		PriceRange:  item.PriceRange,
		Contact:     item.Contact,
		CreatedAt:   item.CreatedAt.UTC(),
		UpdatedAt:   item.UpdatedAt.UTC(),
	}
}

func (m vendorModel) toEntity() entities.VendorProfile {
	return entities.VendorProfile{
		VendorID:    m.VendorID,
		OwnerUserID: m.OwnerUserID,
		Name:        m.Name,
		VendorType:  m.VendorType,
		Description: m.Description,
		Location:    m.Location,
		PriceRange:  m.PriceRange,
		Contact:     m.Contact,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}

type dashboardModel struct {
	VendorID          string     `gorm:"column:vendor_id;primaryKey"`
	ConfirmedBookings int        `gorm:"column:confirmed_bookings"`
	TotalRevenue      float64    `gorm:"column:total_revenue"`
	LastBookingAt     *time.Time `gorm:"column:last_booking_at"`
	UpdatedAt         time.Time  `gorm:"column:updated_at"`
}

func (dashboardModel) TableName() string {
	return "vendor_dashboards"
}

type consumedEventModel struct {
	EventID     string    `gorm:"column:event_id;primaryKey"`
	PayloadHash string    `gorm:"column:payload_hash"`
	ExpiresAt   time.Time `gorm:"column:expires_at"`
}

func (consumedEventModel) TableName() string {
	return "vendor_consumed_events"
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
