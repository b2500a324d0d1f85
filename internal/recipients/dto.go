package recipients

import (
	"time"

	"github.com/google/uuid"

	"github.com/mealbridge/mealbridge-backend/pkg/db/models"
)

// RecipientDTO is the transport shape that omits credentials.
type RecipientDTO struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       *string    `json:"phone,omitempty"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateRecipientDTO holds the data required to persist a new recipient.
type CreateRecipientDTO struct {
	Name         string
	Email        string
	PasswordHash string
	Phone        *string
}

func FromModel(rec *models.Recipient) *RecipientDTO {
	if rec == nil {
		return nil
	}
	return &RecipientDTO{
		ID:          rec.ID,
		Name:        rec.Name,
		Email:       rec.Email,
		Phone:       rec.Phone,
		IsActive:    rec.IsActive,
		LastLoginAt: rec.LastLoginAt,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
}

func (c CreateRecipientDTO) ToModel() *models.Recipient {
	return &models.Recipient{
		ID:           uuid.New(),
		Name:         c.Name,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		Phone:        c.Phone,
		IsActive:     true,
	}
}
