package donors

import (
	"time"

	"github.com/google/uuid"

	"github.com/mealbridge/mealbridge-backend/pkg/db/models"
)

// DonorDTO is the transport shape that omits credentials.
type DonorDTO struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       *string    `json:"phone,omitempty"`
	Aadhaar     *string    `json:"aadhaar,omitempty"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateDonorDTO holds the data required to persist a new donor.
type CreateDonorDTO struct {
	Name         string
	Email        string
	PasswordHash string
	Phone        *string
	Aadhaar      *string
}

func FromModel(d *models.Donor) *DonorDTO {
	if d == nil {
		return nil
	}
	return &DonorDTO{
		ID:          d.ID,
		Name:        d.Name,
		Email:       d.Email,
		Phone:       d.Phone,
		Aadhaar:     d.Aadhaar,
		IsActive:    d.IsActive,
		LastLoginAt: d.LastLoginAt,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (c CreateDonorDTO) ToModel() *models.Donor {
	return &models.Donor{
		ID:           uuid.New(),
		Name:         c.Name,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		Phone:        c.Phone,
		Aadhaar:      c.Aadhaar,
		IsActive:     true,
	}
}
