package donors

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mealbridge/mealbridge-backend/pkg/db/models"
)

// Repository exposes donor-related persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a donors repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new donor and returns the persisted model.
func (r *Repository) Create(ctx context.Context, dto CreateDonorDTO) (*models.Donor, error) {
	donor := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(donor).Error; err != nil {
		return nil, err
	}
	return donor, nil
}

// FindByEmail retrieves the donor matching the provided email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.Donor, error) {
	var donor models.Donor
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&donor).Error; err != nil {
		return nil, err
	}
	return &donor, nil
}

// FindByID loads a donor by their UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Donor, error) {
	var donor models.Donor
	if err := r.db.WithContext(ctx).First(&donor, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &donor, nil
}

// UpdateLastLogin refreshes the donor's last_login_at timestamp.
func (r *Repository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.Donor{}).
		Where("id = ?", id).
		UpdateColumn("last_login_at", at).Error
}
