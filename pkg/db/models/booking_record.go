package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/mealbridge/mealbridge-backend/pkg/enums"
)

// BookingRecord reserves plates for a recipient. Taken tracks how many
// of the booked plates have been physically collected; 0 <= Taken <=
// Quantity always holds. Records are kept forever as the audit trail.
type BookingRecord struct {
	ID          uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	RecipientID uuid.UUID           `gorm:"column:recipient_id;type:uuid;not null;index"`
	NGOID       uuid.UUID           `gorm:"column:ngo_id;type:uuid;not null;index"`
	Quantity    int                 `gorm:"column:quantity;not null"`
	Taken       int                 `gorm:"column:taken;not null;default:0"`
	Status      enums.BookingStatus `gorm:"column:status;type:booking_status;not null;default:'booked'"`
	CreatedAt   time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

// Outstanding returns the booked-but-not-yet-taken plate count.
func (b BookingRecord) Outstanding() int {
	return b.Quantity - b.Taken
}
