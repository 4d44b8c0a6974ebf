package postgresadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"planora/contexts/event-planning/event-ledger-service/domain/entities"
	domainerrors "planora/contexts/event-planning/event-ledger-service/domain/errors"
	"planora/contexts/event-planning/event-ledger-service/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	outboxStatusPending   = "pending"
	outboxStatusPublished = "published"
)

var (
	_ ports.LedgerRepository  = (*Repository)(nil)
	_ ports.HistoryRepository = (*Repository)(nil)
	_ ports.IdempotencyStore  = (*Repository)(nil)
	_ ports.OutboxWriter      = (*Repository)(nil)
	_ ports.OutboxRepository  = (*Repository)(nil)
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

func (r *Repository) CreateEvent(ctx context.Context, event entities.CustomerEvent) error {
	row := eventModelFromEntity(event)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidEventInput
		}
		return err
	}
	return nil
}

func (r *Repository) UpdateEvent(ctx context.Context, event entities.CustomerEvent) error {
	result := r.db.WithContext(ctx).
		Model(&eventModel{}).
		Where("event_id = ? AND customer_id = ?", strings.TrimSpace(event.EventID), strings.TrimSpace(event.CustomerID)).
		Updates(eventUpdatesFromEntity(event))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrEventNotFound
	}
	return nil
}

func (r *Repository) GetEvent(ctx context.Context, customerID string, eventID string) (entities.CustomerEvent, error) {
	var row eventModel
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND customer_id = ?", strings.TrimSpace(eventID), strings.TrimSpace(customerID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.CustomerEvent{}, domainerrors.ErrEventNotFound
		}
		return entities.CustomerEvent{}, err
	}
	return row.toEntity(), nil
}

// ListEvents orders by the insertion sequence, not by date or update time,
// so the ledger keeps its stable insertion order.
func (r *Repository) ListEvents(ctx context.Context, customerID string) ([]entities.CustomerEvent, error) {
	var rows []eventModel
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", strings.TrimSpace(customerID)).
		Order("seq ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]entities.CustomerEvent, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) DeleteEvent(ctx context.Context, customerID string, eventID string) error {
	result := r.db.WithContext(ctx).
		Where("event_id = ? AND customer_id = ?", strings.TrimSpace(eventID), strings.TrimSpace(customerID)).
		Delete(&eventModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrEventNotFound
	}
	return nil
}

func (r *Repository) AppendState(ctx context.Context, item entities.StateHistory) error {
	row := stateHistoryModel{
		HistoryID:    strings.TrimSpace(item.HistoryID),
		EventID:      strings.TrimSpace(item.EventID),
		FromStatus:   string(item.FromStatus),
		ToStatus:     string(item.ToStatus),
		ChangedBy:    strings.TrimSpace(item.ChangedBy),
		ChangeReason: strings.TrimSpace(item.ChangeReason),
		CreatedAt:    item.CreatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidEventInput
		}
		return err
	}
	return nil
}

func (r *Repository) ListHistory(ctx context.Context, eventID string) ([]entities.StateHistory, error) {
	var rows []stateHistoryModel
	if err := r.db.WithContext(ctx).
		Where("event_id = ?", strings.TrimSpace(eventID)).
		Order("created_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]entities.StateHistory, 0, len(rows))
	for _, row := range rows {
		items = append(items, entities.StateHistory{
			HistoryID:    row.HistoryID,
			EventID:      row.EventID,
			FromStatus:   entities.EventStatus(row.FromStatus),
			ToStatus:     entities.EventStatus(row.ToStatus),
			ChangedBy:    row.ChangedBy,
			ChangeReason: row.ChangeReason,
			CreatedAt:    row.CreatedAt.UTC(),
		})
	}
	return items, nil
}

func (r *Repository) GetRecord(ctx context.Context, key string, now time.Time) (ports.IdempotencyRecord, bool, error) {
	var row idempotencyModel
	err := r.db.WithContext(ctx).
		Where("key = ?", strings.TrimSpace(key)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.IdempotencyRecord{}, false, nil
		}
		return ports.IdempotencyRecord{}, false, err
	}

	if !row.ExpiresAt.IsZero() && now.UTC().After(row.ExpiresAt.UTC()) {
		if err := r.db.WithContext(ctx).
			Where("key = ?", strings.TrimSpace(key)).
			Delete(&idempotencyModel{}).
			Error; err != nil {
			return ports.IdempotencyRecord{}, false, err
		}
		return ports.IdempotencyRecord{}, false, nil
	}

	return ports.IdempotencyRecord{
		Key:             row.Key,
		RequestHash:     row.RequestHash,
		ResponsePayload: append([]byte(nil), row.ResponsePayload...),
		ExpiresAt:       row.ExpiresAt.UTC(),
	}, true, nil
}

func (r *Repository) PutRecord(ctx context.Context, record ports.IdempotencyRecord) error {
	row := idempotencyModel{
		Key:             strings.TrimSpace(record.Key),
		RequestHash:     record.RequestHash,
		ResponsePayload: append([]byte(nil), record.ResponsePayload...),
		ExpiresAt:       record.ExpiresAt.UTC(),
	}
	createResult := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoNothing: true,
		}).
		Create(&row)
	if createResult.Error != nil {
		return createResult.Error
	}
	if createResult.RowsAffected > 0 {
		return nil
	}

	var existing idempotencyModel
	if err := r.db.WithContext(ctx).
		Where("key = ?", row.Key).
		First(&existing).
		Error; err != nil {
		return err
	}
	if existing.RequestHash != row.RequestHash || !bytes.Equal(existing.ResponsePayload, row.ResponsePayload) {
		return domainerrors.ErrIdempotencyKeyConflict
	}
	return nil
}

func (r *Repository) AppendOutbox(ctx context.Context, envelope ports.EventEnvelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	row := outboxModel{
		OutboxID:     strings.TrimSpace(envelope.EventID),
		EventType:    strings.TrimSpace(envelope.EventType),
		PartitionKey: strings.TrimSpace(envelope.PartitionKey),
		Payload:      payload,
		Status:       outboxStatusPending,
		CreatedAt:    envelope.OccurredAt.UTC(),
	}
	if row.OutboxID == "" {
		row.OutboxID = uuid.NewString()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}

	createResult := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "outbox_id"}},
			DoNothing: true,
		}).
		Create(&row)
	if createResult.Error != nil {
		return createResult.Error
	}
	if createResult.RowsAffected > 0 {
		return nil
	}

	var existing outboxModel
	if err := r.db.WithContext(ctx).
		Select("payload").
		Where("outbox_id = ?", row.OutboxID).
		First(&existing).
		Error; err != nil {
		return err
	}
	if !bytes.Equal(existing.Payload, row.Payload) {
		return domainerrors.ErrIdempotencyKeyConflict
	}
	return nil
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}

	var rows []outboxModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", outboxStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.OutboxMessage{
			OutboxID:     row.OutboxID,
			EventType:    row.EventType,
			PartitionKey: row.PartitionKey,
			Payload:      append([]byte(nil), row.Payload...),
			CreatedAt:    row.CreatedAt.UTC(),
		})
	}
	return items, nil
}

func (r *Repository) MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("outbox_id = ?", strings.TrimSpace(outboxID)).
		Updates(map[string]any{
			"status":       outboxStatusPublished,
			"published_at": publishedAt.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrEventNotFound
	}
	return nil
}

type eventModel struct {
	Seq           int64     `gorm:"column:seq;autoIncrement"`
	EventID       string    `gorm:"column:event_id;primaryKey"`
	CustomerID    string    `gorm:"column:customer_id;index"`
	EventTypeID   string    `gorm:"column:event_type_id"`
	Title         string    `gorm:"column:title"`
	Description   string    `gorm:"column:description"`
	Date          string    `gorm:"column:event_date"`
	Time          string    `gorm:"column:event_time"`
	Location      string    `gorm:"column:location"`
	GuestCount    int       `gorm:"column:guest_count"`
	TotalCost     float64   `gorm:"column:total_cost"`
	VendorID      string    `gorm:"column:vendor_id"`
	VendorName    string    `gorm:"column:vendor_name"`
	VendorContact string    `gorm:"column:vendor_contact"`
	Status        string    `gorm:"column:status"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (eventModel) TableName() string {
	return "customer_events"
}

func eventModelFromEntity(item entities.CustomerEvent) eventModel {
	row := eventModel{
		EventID:     strings.TrimSpace(item.EventID),
		CustomerID:  strings.TrimSpace(item.CustomerID),
		EventTypeID: strings.TrimSpace(item.EventTypeID),
		Title:       strings.TrimSpace(item.Title),
		Description: strings.TrimSpace(item.Description),
		Date:        strings.TrimSpace(item.Date),
		Time:        strings.TrimSpace(item.Time),
		Location:    strings.TrimSpace(item.Location),
		GuestCount:  item.GuestCount,
		TotalCost:   item.TotalCost,
		Status:      string(item.Status),
		CreatedAt:   item.CreatedAt.UTC(),
		UpdatedAt:   item.UpdatedAt.UTC(),
	}
	if item.Vendor != nil {
		row.VendorID = strings.TrimSpace(item.Vendor.VendorID)
		row.VendorName = strings.TrimSpace(item.Vendor.VendorName)
		row.VendorContact = strings.TrimSpace(item.Vendor.Contact)
	}
	return row
}

func eventUpdatesFromEntity(item entities.CustomerEvent) map[string]any {
	row := eventModelFromEntity(item)
	return map[string]any{
		"event_type_id":  row.EventTypeID,
		"title":          row.Title,
		"description":    row.Description,
		"event_date":     row.Date,
		"event_time":     row.Time,
		"location":       row.Location,
		"guest_count":    row.GuestCount,
		"total_cost":     row.TotalCost,
		"vendor_id":      row.VendorID,
		"vendor_name":    row.VendorName,
		"vendor_contact": row.VendorContact,
		"status":         row.Status,
		"updated_at":     row.UpdatedAt,
	}
}

func (m eventModel) toEntity() entities.CustomerEvent {
	item := entities.CustomerEvent{
		EventID:     m.EventID,
		CustomerID:  m.CustomerID,
		EventTypeID: m.EventTypeID,
		Title:       m.Title,
		Description: m.Description,
		Date:        m.Date,
		Time:        m.Time,
		Location:    m.Location,
		GuestCount:  m.GuestCount,
		TotalCost:   m.TotalCost,
		Status:      entities.EventStatus(m.Status),
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
	if m.VendorID != "" || m.VendorName != "" || m.VendorContact != "" {
		item.Vendor = &entities.VendorAssignment{
			VendorID:   m.VendorID,
			VendorName: m.VendorName,
			Contact:    m.VendorContact,
		}
	}
	return item
}

type stateHistoryModel struct {
	HistoryID    string    `gorm:"column:history_id;primaryKey"`
	EventID      string    `gorm:"column:event_id;index"`
	FromStatus   string    `gorm:"column:from_status"`
	ToStatus     string    `gorm:"column:to_status"`
	ChangedBy    string    `gorm:"column:changed_by"`
	ChangeReason string    `gorm:"column:change_reason"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (stateHistoryModel) TableName() string {
	return "customer_event_state_history"
}

type idempotencyModel struct {
	Key             string    `gorm:"column:key;primaryKey"`
	RequestHash     string    `gorm:"column:request_hash"`
	ResponsePayload []byte    `gorm:"column:response_payload"`
	ExpiresAt       time.Time `gorm:"column:expires_at"`
}

func (idempotencyModel) TableName() string {
	return "ledger_idempotency"
}

type outboxModel struct {
	OutboxID     string     `gorm:"column:outbox_id;primaryKey"`
	EventType    string     `gorm:"column:event_type"`
	PartitionKey string     `gorm:"column:partition_key"`
	Payload      []byte     `gorm:"column:payload"`
	Status       string     `gorm:"column:status"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	PublishedAt  *time.Time `gorm:"column:published_at"`
}

func (outboxModel) TableName() string {
	return "ledger_outbox"
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
