package ngos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mealbridge/mealbridge-backend/pkg/db/models"
)

// Repository exposes NGO-related persistence operations. The plate
// counter itself is only mutated through the inventory service.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an NGO repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new NGO and returns the persisted model.
func (r *Repository) Create(ctx context.Context, dto CreateNGODTO) (*models.NGO, error) {
	ngo := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(ngo).Error; err != nil {
		return nil, err
	}
	return ngo, nil
}

// FindByEmail retrieves the NGO matching the provided email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.NGO, error) {
	var ngo models.NGO
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&ngo).Error; err != nil {
		return nil, err
	}
	return &ngo, nil
}

// FindByID loads an NGO by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.NGO, error) {
	var ngo models.NGO
	if err := r.db.WithContext(ctx).First(&ngo, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ngo, nil
}

// List returns active NGOs ordered by name, the public directory view.
func (r *Repository) List(ctx context.Context) ([]models.NGO, error) {
	var list []models.NGO
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// UpdateLastLogin refreshes the NGO's last_login_at timestamp.
func (r *Repository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.NGO{}).
		Where("id = ?", id).
		UpdateColumn("last_login_at", at).Error
}
