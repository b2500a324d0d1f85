package inventory

import (
	"github.com/google/uuid"

	"github.com/mealbridge/mealbridge-backend/pkg/db/models"
)

// RecordDonationInput captures a donor crediting an NGO's plate inventory.
type RecordDonationInput struct {
	DonorID  uuid.UUID `json:"donor_id"`
	NGOID    uuid.UUID `json:"ngo_id"`
	Quantity int       `json:"quantity"`
}

// DonationReceipt is returned after a donation has been recorded.
type DonationReceipt struct {
	Record          models.DonationRecord `json:"record"`
	PlatesAvailable int                   `json:"plates_available"`
}

// BookFoodInput captures a recipient reserving plates from an NGO.
type BookFoodInput struct {
	RecipientID uuid.UUID `json:"recipient_id"`
	NGOID       uuid.UUID `json:"ngo_id"`
	Quantity    int       `json:"quantity"`
}

// BookingReceipt is returned after a booking has debited the NGO.
type BookingReceipt struct {
	Record          models.BookingRecord `json:"record"`
	PlatesAvailable int                  `json:"plates_available"`
}

// TakeFoodInput captures a recipient collecting previously booked plates.
type TakeFoodInput struct {
	RecipientID uuid.UUID `json:"recipient_id"`
	NGOID       uuid.UUID `json:"ngo_id"`
	Quantity    int       `json:"quantity"`
}

// TakeFoodResult reports how a collection settled against open bookings.
type TakeFoodResult struct {
	TotalTaken         int `json:"total_taken"`
	RemainingAfterTake int `json:"remaining_after_take"`
}

// DonorTotal is a per-donor rollup of everything donated to one NGO.
type DonorTotal struct {
	DonorID     uuid.UUID `json:"donor_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone,omitempty"`
	TotalPlates int       `json:"total_plates"`
}

// RecipientTotal is a per-recipient rollup of open bookings against one NGO.
type RecipientTotal struct {
	RecipientID  uuid.UUID `json:"recipient_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        *string   `json:"phone,omitempty"`
	BookedPlates int       `json:"booked_plates"`
}

// BookingFilters narrows the audit listing of booking records.
type BookingFilters struct {
	RecipientID *uuid.UUID
	NGOID       *uuid.UUID
}

// BookingList is one cursor page of booking records, newest first.
type BookingList struct {
	Bookings   []models.BookingRecord `json:"bookings"`
	NextCursor *string                `json:"next_cursor,omitempty"`
}
