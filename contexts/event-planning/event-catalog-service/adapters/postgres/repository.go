package postgresadapter

import (
	"context"
	"errors"
	"log/slog"

	domainerrors "planora/contexts/event-planning/event-catalog-service/domain/errors"
	"planora/contexts/event-planning/event-catalog-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var _ ports.Repository = (*Repository)(nil)

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

// Replace runs as one transaction: the old catalog is cleared and the new
// batch inserted, so concurrent readers see either the old set or the new
// set, never a mix.
func (r *Repository) Replace(ctx context.Context, items []ports.EventTypeRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&eventTypeModel{}).Error; err != nil {
			return err
		}
		rows := make([]eventTypeModel, 0, len(items))
		for _, item := range items {
			rows = append(rows, eventTypeModel{
				ID:          item.ID,
				Name:        item.Name,
				Description: item.Description,
				AccentStyle: item.AccentStyle,
				Popular:     item.Popular,
			})
		}
		if err := tx.Create(&rows).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrDuplicateEventType
			}
			return err
		}
		return nil
	})
}

func (r *Repository) List(ctx context.Context) ([]ports.EventTypeRecord, error) {
	var rows []eventTypeModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]ports.EventTypeRecord, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toRecord())
	}
	return items, nil
}

func (r *Repository) Get(ctx context.Context, id string) (ports.EventTypeRecord, error) {
	var row eventTypeModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.EventTypeRecord{}, domainerrors.ErrEventTypeNotFound
		}
		return ports.EventTypeRecord{}, err
	}
	return row.toRecord(), nil
}

type eventTypeModel struct {
	ID          string `gorm:"column:id;primaryKey"`
	Name        string `gorm:"column:name"`
	Description string `gorm:"column:description"`
	AccentStyle string `gorm:"column:accent_style"`
	Popular     bool   `gorm:"column:popular"`
}

func (eventTypeModel) TableName() string {
	return "event_types"
}

func (m eventTypeModel) toRecord() ports.EventTypeRecord {
	return ports.EventTypeRecord{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		AccentStyle: m.AccentStyle,
		Popular:     m.Popular,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
