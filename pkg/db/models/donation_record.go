package models

import (
	"time"

	"github.com/google/uuid"
)

// DonationRecord is the immutable log entry written when a donor
// credits an NGO's plate inventory. Rows are never updated or deleted.
type DonationRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	DonorID   uuid.UUID `gorm:"column:donor_id;type:uuid;not null;index"`
	NGOID     uuid.UUID `gorm:"column:ngo_id;type:uuid;not null;index"`
	Quantity  int       `gorm:"column:quantity;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
