package models

import (
	"time"

	"github.com/google/uuid"
)

// NGO is a food distribution point. PlatesAvailable is the inventory
// account every donation credits and every booking debits; it is only
// ever mutated through the inventory service's guarded updates and
// must never go negative.
type NGO struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name            string    `gorm:"column:name;not null"`
	Email           string    `gorm:"type:text;not null;uniqueIndex"`
	PasswordHash    string    `gorm:"column:password_hash;not null"`
	Phone           *string   `gorm:"column:phone"`
	Address         *string   `gorm:"column:address"`
	PlatesAvailable int       `gorm:"column:plates_available;not null;default:0"`
	IsActive        bool      `gorm:"column:is_active;not null;default:true"`
	LastLoginAt     *time.Time `gorm:"column:last_login_at"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
