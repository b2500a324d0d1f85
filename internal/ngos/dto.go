package ngos

import (
	"time"

	"github.com/google/uuid"

	"github.com/mealbridge/mealbridge-backend/pkg/db/models"
)

// NGODTO is the transport shape that omits credentials.
type NGODTO struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Phone           *string    `json:"phone,omitempty"`
	Address         *string    `json:"address,omitempty"`
	PlatesAvailable int        `json:"plates_available"`
	IsActive        bool       `json:"is_active"`
	LastLoginAt     *time.Time `json:"last_login_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// CreateNGODTO holds the data required to persist a new NGO.
type CreateNGODTO struct {
	Name         string
	Email        string
	PasswordHash string
	Phone        *string
	Address      *string
}

func FromModel(n *models.NGO) *NGODTO {
	if n == nil {
		return nil
	}
	return &NGODTO{
		ID:              n.ID,
		Name:            n.Name,
		Email:           n.Email,
		Phone:           n.Phone,
		Address:         n.Address,
		PlatesAvailable: n.PlatesAvailable,
		IsActive:        n.IsActive,
		LastLoginAt:     n.LastLoginAt,
		CreatedAt:       n.CreatedAt,
		UpdatedAt:       n.UpdatedAt,
	}
}

func (c CreateNGODTO) ToModel() *models.NGO {
	return &models.NGO{
		ID:           uuid.New(),
		Name:         c.Name,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		Phone:        c.Phone,
		Address:      c.Address,
		IsActive:     true,
	}
}
