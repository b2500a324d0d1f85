package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mealbridge/mealbridge-backend/pkg/db/models"
	"github.com/mealbridge/mealbridge-backend/pkg/enums"
	pkgerrors "github.com/mealbridge/mealbridge-backend/pkg/errors"
	"github.com/mealbridge/mealbridge-backend/pkg/metrics"
	"github.com/mealbridge/mealbridge-backend/pkg/pagination"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service owns every mutation of the plate ledger. Donations credit an
// NGO's inventory, bookings debit it, collections consume bookings
// oldest first without touching the inventory counter.
type Service interface {
	RecordDonation(ctx context.Context, input RecordDonationInput) (*DonationReceipt, error)
	BookFood(ctx context.Context, input BookFoodInput) (*BookingReceipt, error)
	TakeFood(ctx context.Context, input TakeFoodInput) (*TakeFoodResult, error)
	DonorTotals(ctx context.Context, ngoID uuid.UUID) ([]DonorTotal, error)
	BookedRecipientTotals(ctx context.Context, ngoID uuid.UUID) ([]RecipientTotal, error)
	ListBookings(ctx context.Context, filters BookingFilters, params pagination.Params) (*BookingList, error)
}

type service struct {
	repo   Repository
	tx     txRunner
	meters *metrics.LedgerMetrics
}

// NewService wires the inventory service. The metrics handle may be nil.
func NewService(repo Repository, tx txRunner, meters *metrics.LedgerMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inventory repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx, meters: meters}, nil
}

func (s *service) RecordDonation(ctx context.Context, input RecordDonationInput) (*DonationReceipt, error) {
	if input.DonorID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "donor id required")
	}
	if input.NGOID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "ngo id required")
	}
	if input.Quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	started := time.Now()
	receipt := &DonationReceipt{}
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		exists, err := repo.DonorExists(ctx, input.DonorID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check donor")
		}
		if !exists {
			return pkgerrors.New(pkgerrors.CodeNotFound, "donor not found")
		}

		rows, err := repo.CreditPlates(ctx, input.NGOID, input.Quantity)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "credit plates")
		}
		if rows == 0 {
			return pkgerrors.New(pkgerrors.CodeNotFound, "ngo not found")
		}

		record := &models.DonationRecord{
			DonorID:  input.DonorID,
			NGOID:    input.NGOID,
			Quantity: input.Quantity,
		}
		if err := repo.CreateDonation(ctx, record); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create donation record")
		}

		available, err := repo.PlatesAvailable(ctx, input.NGOID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read plates available")
		}

		receipt.Record = *record
		receipt.PlatesAvailable = available
		return nil
	})
	if err != nil {
		s.meters.IncFailure("record_donation")
		return nil, err
	}

	s.meters.AddDonated(input.Quantity)
	s.meters.ObserveDuration("record_donation", time.Since(started))
	return receipt, nil
}

func (s *service) BookFood(ctx context.Context, input BookFoodInput) (*BookingReceipt, error) {
	if input.RecipientID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "recipient id required")
	}
	if input.NGOID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "ngo id required")
	}
	if input.Quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	started := time.Now()
	receipt := &BookingReceipt{}
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		exists, err := repo.RecipientExists(ctx, input.RecipientID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check recipient")
		}
		if !exists {
			return pkgerrors.New(pkgerrors.CodeNotFound, "recipient not found")
		}

		rows, err := repo.DebitPlates(ctx, input.NGOID, input.Quantity)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "debit plates")
		}
		if rows == 0 {
			available, err := repo.PlatesAvailable(ctx, input.NGOID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return pkgerrors.New(pkgerrors.CodeNotFound, "ngo not found")
				}
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read plates available")
			}
			return pkgerrors.New(pkgerrors.CodeInsufficientInventory, "not enough plates available").
				WithDetails(map[string]int{"available": available, "requested": input.Quantity})
		}

		record := &models.BookingRecord{
			RecipientID: input.RecipientID,
			NGOID:       input.NGOID,
			Quantity:    input.Quantity,
			Taken:       0,
			Status:      enums.BookingStatusBooked,
		}
		if err := repo.CreateBooking(ctx, record); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create booking record")
		}

		available, err := repo.PlatesAvailable(ctx, input.NGOID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read plates available")
		}

		receipt.Record = *record
		receipt.PlatesAvailable = available
		return nil
	})
	if err != nil {
		s.meters.IncFailure("book_food")
		return nil, err
	}

	s.meters.AddBooked(input.Quantity)
	s.meters.ObserveDuration("book_food", time.Since(started))
	return receipt, nil
}

func (s *service) TakeFood(ctx context.Context, input TakeFoodInput) (*TakeFoodResult, error) {
	if input.RecipientID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "recipient id required")
	}
	if input.NGOID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "ngo id required")
	}
	if input.Quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	started := time.Now()
	result := &TakeFoodResult{}
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		bookings, err := repo.OpenBookings(ctx, input.RecipientID, input.NGOID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load open bookings")
		}

		remaining := 0
		for _, booking := range bookings {
			remaining += booking.Outstanding()
		}
		if remaining == 0 {
			return pkgerrors.New(pkgerrors.CodeInsufficientInventory, "no booked plates to collect")
		}
		if input.Quantity > remaining {
			return pkgerrors.New(pkgerrors.CodeOverTake, "take exceeds outstanding bookings").
				WithDetails(map[string]int{"outstanding": remaining, "requested": input.Quantity})
		}

		still := input.Quantity
		for _, booking := range bookings {
			if still == 0 {
				break
			}
			available := booking.Outstanding()
			if available == 0 {
				continue
			}
			take := available
			if still < take {
				take = still
			}
			newTaken := booking.Taken + take
			status := enums.BookingStatusBooked
			if newTaken == booking.Quantity {
				status = enums.BookingStatusCollected
			}

			applied, err := repo.ApplyTake(ctx, booking.ID, booking.Taken, newTaken, status)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "apply take")
			}
			if !applied {
				return pkgerrors.New(pkgerrors.CodeConflict, "booking changed concurrently, retry the take")
			}
			still -= take
		}

		result.TotalTaken = input.Quantity
		result.RemainingAfterTake = remaining - input.Quantity
		return nil
	})
	if err != nil {
		s.meters.IncFailure("take_food")
		return nil, err
	}

	s.meters.AddCollected(input.Quantity)
	s.meters.ObserveDuration("take_food", time.Since(started))
	return result, nil
}

func (s *service) DonorTotals(ctx context.Context, ngoID uuid.UUID) ([]DonorTotal, error) {
	if ngoID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "ngo id required")
	}
	totals, err := s.repo.DonorTotals(ctx, ngoID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "donor totals")
	}
	return totals, nil
}

func (s *service) BookedRecipientTotals(ctx context.Context, ngoID uuid.UUID) ([]RecipientTotal, error) {
	if ngoID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "ngo id required")
	}
	totals, err := s.repo.BookedRecipientTotals(ctx, ngoID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "booked recipient totals")
	}
	return totals, nil
}

func (s *service) ListBookings(ctx context.Context, filters BookingFilters, params pagination.Params) (*BookingList, error) {
	list, err := s.repo.ListBookings(ctx, filters, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list bookings")
	}
	return list, nil
}
