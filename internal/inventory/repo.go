package inventory

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mealbridge/mealbridge-backend/pkg/db/models"
	"github.com/mealbridge/mealbridge-backend/pkg/enums"
	"github.com/mealbridge/mealbridge-backend/pkg/pagination"
)

// Repository manages persistence for the plate ledger: donation and
// booking records plus the guarded mutations of ngos.plates_available.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateDonation(ctx context.Context, record *models.DonationRecord) error
	CreateBooking(ctx context.Context, record *models.BookingRecord) error
	CreditPlates(ctx context.Context, ngoID uuid.UUID, quantity int) (int64, error)
	DebitPlates(ctx context.Context, ngoID uuid.UUID, quantity int) (int64, error)
	PlatesAvailable(ctx context.Context, ngoID uuid.UUID) (int, error)
	DonorExists(ctx context.Context, donorID uuid.UUID) (bool, error)
	RecipientExists(ctx context.Context, recipientID uuid.UUID) (bool, error)
	OpenBookings(ctx context.Context, recipientID, ngoID uuid.UUID) ([]models.BookingRecord, error)
	ApplyTake(ctx context.Context, bookingID uuid.UUID, priorTaken, newTaken int, status enums.BookingStatus) (bool, error)
	DonorTotals(ctx context.Context, ngoID uuid.UUID) ([]DonorTotal, error)
	BookedRecipientTotals(ctx context.Context, ngoID uuid.UUID) ([]RecipientTotal, error)
	ListBookings(ctx context.Context, filters BookingFilters, params pagination.Params) (*BookingList, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns an inventory repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) CreateDonation(ctx context.Context, record *models.DonationRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository) CreateBooking(ctx context.Context, record *models.BookingRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(record).Error
}

// CreditPlates adds plates to an NGO's inventory. Zero rows affected
// means the NGO does not exist.
func (r *repository) CreditPlates(ctx context.Context, ngoID uuid.UUID, quantity int) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.NGO{}).
		Where("id = ?", ngoID).
		Update("plates_available", gorm.Expr("plates_available + ?", quantity))
	return result.RowsAffected, result.Error
}

// DebitPlates removes plates only when enough are available. Zero rows
// affected means the NGO is missing or the balance is too low; callers
// disambiguate via PlatesAvailable.
func (r *repository) DebitPlates(ctx context.Context, ngoID uuid.UUID, quantity int) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.NGO{}).
		Where("id = ? AND plates_available >= ?", ngoID, quantity).
		Update("plates_available", gorm.Expr("plates_available - ?", quantity))
	return result.RowsAffected, result.Error
}

func (r *repository) PlatesAvailable(ctx context.Context, ngoID uuid.UUID) (int, error) {
	var ngo models.NGO
	if err := r.db.WithContext(ctx).
		Select("plates_available").
		First(&ngo, "id = ?", ngoID).Error; err != nil {
		return 0, err
	}
	return ngo.PlatesAvailable, nil
}

func (r *repository) DonorExists(ctx context.Context, donorID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Donor{}).
		Where("id = ?", donorID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) RecipientExists(ctx context.Context, recipientID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Recipient{}).
		Where("id = ?", recipientID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// OpenBookings returns the pair's uncollected bookings oldest first,
// the order collections consume them in.
func (r *repository) OpenBookings(ctx context.Context, recipientID, ngoID uuid.UUID) ([]models.BookingRecord, error) {
	var bookings []models.BookingRecord
	if err := r.db.WithContext(ctx).
		Where("recipient_id = ? AND ngo_id = ? AND status = ?", recipientID, ngoID, enums.BookingStatusBooked).
		Order("created_at ASC, id ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// ApplyTake bumps a booking's taken count only if nobody else touched it
// since it was read. Zero rows affected signals a lost race.
func (r *repository) ApplyTake(ctx context.Context, bookingID uuid.UUID, priorTaken, newTaken int, status enums.BookingStatus) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.BookingRecord{}).
		Where("id = ? AND taken = ?", bookingID, priorTaken).
		Updates(map[string]any{"taken": newTaken, "status": status})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *repository) DonorTotals(ctx context.Context, ngoID uuid.UUID) ([]DonorTotal, error) {
	var totals []DonorTotal
	if err := r.db.WithContext(ctx).
		Table("donation_records").
		Select("donors.id AS donor_id, donors.name AS name, donors.email AS email, donors.phone AS phone, SUM(donation_records.quantity) AS total_plates").
		Joins("JOIN donors ON donors.id = donation_records.donor_id").
		Where("donation_records.ngo_id = ?", ngoID).
		Group("donors.id, donors.name, donors.email, donors.phone").
		Order("total_plates DESC").
		Scan(&totals).Error; err != nil {
		return nil, err
	}
	return totals, nil
}

func (r *repository) BookedRecipientTotals(ctx context.Context, ngoID uuid.UUID) ([]RecipientTotal, error) {
	var totals []RecipientTotal
	if err := r.db.WithContext(ctx).
		Table("booking_records").
		Select("recipients.id AS recipient_id, recipients.name AS name, recipients.email AS email, recipients.phone AS phone, SUM(booking_records.quantity) AS booked_plates").
		Joins("JOIN recipients ON recipients.id = booking_records.recipient_id").
		Where("booking_records.ngo_id = ? AND booking_records.status = ?", ngoID, enums.BookingStatusBooked).
		Group("recipients.id, recipients.name, recipients.email, recipients.phone").
		Order("booked_plates DESC").
		Scan(&totals).Error; err != nil {
		return nil, err
	}
	return totals, nil
}

func (r *repository) ListBookings(ctx context.Context, filters BookingFilters, params pagination.Params) (*BookingList, error) {
	normalized := pagination.NormalizeLimit(params.Limit)
	limit := normalized + 1

	query := r.db.WithContext(ctx).Model(&models.BookingRecord{})
	if filters.RecipientID != nil {
		query = query.Where("recipient_id = ?", *filters.RecipientID)
	}
	if filters.NGOID != nil {
		query = query.Where("ngo_id = ?", *filters.NGOID)
	}
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, err
	}
	if cursor != nil {
		query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
	}

	var bookings []models.BookingRecord
	if err := query.Order("created_at DESC, id DESC").Limit(limit).Find(&bookings).Error; err != nil {
		return nil, err
	}

	list := &BookingList{Bookings: bookings}
	if len(bookings) > normalized {
		list.Bookings = bookings[:normalized]
		// Cursor marks the last row handed out; the next query's strict
		// comparison resumes at the row after it.
		last := list.Bookings[normalized-1]
		encoded := pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
		list.NextCursor = &encoded
	}
	return list, nil
}
