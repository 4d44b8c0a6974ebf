package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	domainerrors "planora/contexts/identity-access/auth-service/domain/errors"
	"planora/contexts/identity-access/auth-service/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	_ ports.UserRepository = (*Repository)(nil)
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

func (r *Repository) CreateUser(ctx context.Context, user ports.UserRecord) error {
	row := userModel{
		UserID:       user.UserID,
		Name:         user.Name,
		Email:        user.Email,
		Role:         user.Role,
		VendorType:   user.VendorType,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (ports.UserRecord, error) {
	var row userModel
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.UserRecord{}, domainerrors.ErrUserNotFound
		}
		return ports.UserRecord{}, err
	}
	return ports.UserRecord{
		UserID:       row.UserID,
		Name:         row.Name,
		Email:        row.Email,
		Role:         row.Role,
		VendorType:   row.VendorType,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt.UTC(),
	}, nil
}

// SystemClock is the default runtime clock implementation.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// UUIDGenerator creates stable UUIDv4 identifiers for user accounts.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

type userModel struct {
	UserID       string    `gorm:"column:user_id;primaryKey"`
	Name         string    `gorm:"column:name"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	Role         string    `gorm:"column:role"`
	VendorType   string    `gorm:"column:vendor_type"`
	PasswordHash string    `gorm:"column:password_hash"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (userModel) TableName() string {
	return "auth_users"
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
