package recipients

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mealbridge/mealbridge-backend/pkg/db/models"
)

// Repository exposes recipient-related persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a recipients repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new recipient and returns the persisted model.
func (r *Repository) Create(ctx context.Context, dto CreateRecipientDTO) (*models.Recipient, error) {
	recipient := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(recipient).Error; err != nil {
		return nil, err
	}
	return recipient, nil
}

// FindByEmail retrieves the recipient matching the provided email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.Recipient, error) {
	var recipient models.Recipient
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&recipient).Error; err != nil {
		return nil, err
	}
	return &recipient, nil
}

// FindByID loads a recipient by their UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Recipient, error) {
	var recipient models.Recipient
	if err := r.db.WithContext(ctx).First(&recipient, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &recipient, nil
}

// UpdateLastLogin refreshes the recipient's last_login_at timestamp.
func (r *Repository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.Recipient{}).
		Where("id = ?", id).
		UpdateColumn("last_login_at", at).Error
}
