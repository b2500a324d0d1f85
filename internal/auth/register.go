package auth

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/mealbridge/mealbridge-backend/internal/donors"
	"github.com/mealbridge/mealbridge-backend/internal/ngos"
	"github.com/mealbridge/mealbridge-backend/internal/recipients"
	"github.com/mealbridge/mealbridge-backend/pkg/config"
	"github.com/mealbridge/mealbridge-backend/pkg/enums"
	pkgerrors "github.com/mealbridge/mealbridge-backend/pkg/errors"
	"github.com/mealbridge/mealbridge-backend/pkg/security"
)

// RegisterService handles the onboarding transaction for every account kind.
type RegisterService interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error)
}

// RegisterServiceParams packages the dependencies for the registration flow.
type RegisterServiceParams struct {
	TxRunner       TxRunner
	PasswordConfig config.PasswordConfig
}

type registerService struct {
	tx          TxRunner
	passwordCfg config.PasswordConfig
}

// NewRegisterService builds a registration service with the provided dependencies.
func NewRegisterService(params RegisterServiceParams) (RegisterService, error) {
	if params.TxRunner == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "transaction runner required")
	}
	return &registerService{
		tx:          params.TxRunner,
		passwordCfg: params.PasswordConfig,
	}, nil
}

func (s *registerService) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	if !req.Kind.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid account kind")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	var summary AccountSummary
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		switch req.Kind {
		case enums.AccountKindDonor:
			repo := donors.NewRepository(tx)
			if err := ensureEmailFree(ctx, func() error {
				_, err := repo.FindByEmail(ctx, email)
				return err
			}); err != nil {
				return err
			}
			donor, err := repo.Create(ctx, donors.CreateDonorDTO{
				Name:         name,
				Email:        email,
				PasswordHash: passwordHash,
				Phone:        req.Phone,
				Aadhaar:      req.Aadhaar,
			})
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create donor")
			}
			summary = AccountSummary{ID: donor.ID, Kind: req.Kind, Name: donor.Name, Email: donor.Email}
		case enums.AccountKindRecipient:
			repo := recipients.NewRepository(tx)
			if err := ensureEmailFree(ctx, func() error {
				_, err := repo.FindByEmail(ctx, email)
				return err
			}); err != nil {
				return err
			}
			recipient, err := repo.Create(ctx, recipients.CreateRecipientDTO{
				Name:         name,
				Email:        email,
				PasswordHash: passwordHash,
				Phone:        req.Phone,
			})
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create recipient")
			}
			summary = AccountSummary{ID: recipient.ID, Kind: req.Kind, Name: recipient.Name, Email: recipient.Email}
		case enums.AccountKindNGO:
			repo := ngos.NewRepository(tx)
			if err := ensureEmailFree(ctx, func() error {
				_, err := repo.FindByEmail(ctx, email)
				return err
			}); err != nil {
				return err
			}
			ngo, err := repo.Create(ctx, ngos.CreateNGODTO{
				Name:         name,
				Email:        email,
				PasswordHash: passwordHash,
				Phone:        req.Phone,
				Address:      req.Address,
			})
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create ngo")
			}
			summary = AccountSummary{ID: ngo.ID, Kind: req.Kind, Name: ngo.Name, Email: ngo.Email}
		default:
			return pkgerrors.New(pkgerrors.CodeValidation, "invalid account kind")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &RegisterResponse{Account: summary}, nil
}

func ensureEmailFree(ctx context.Context, find func() error) error {
	err := find()
	if err == nil {
		return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check email")
	}
	return nil
}
