package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgAuth "github.com/mealbridge/mealbridge-backend/pkg/auth"
	"github.com/mealbridge/mealbridge-backend/pkg/auth/session"
	"github.com/mealbridge/mealbridge-backend/pkg/config"
	"github.com/mealbridge/mealbridge-backend/pkg/db/models"
	"github.com/mealbridge/mealbridge-backend/pkg/enums"
	pkgerrors "github.com/mealbridge/mealbridge-backend/pkg/errors"
	"github.com/mealbridge/mealbridge-backend/pkg/security"
)

const invalidCredentialsMessage = "invalid credentials"

// TxRunner executes a function inside a database transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service defines the behavior needed by the auth controllers.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
}

type donorDirectory interface {
	FindByEmail(ctx context.Context, email string) (*models.Donor, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type recipientDirectory interface {
	FindByEmail(ctx context.Context, email string) (*models.Recipient, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type ngoDirectory interface {
	FindByEmail(ctx context.Context, email string) (*models.NGO, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type sessionManager interface {
	Generate(ctx context.Context, accessID string) (string, error)
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	Donors         donorDirectory
	Recipients     recipientDirectory
	NGOs           ngoDirectory
	SessionManager sessionManager
	JWTConfig      config.JWTConfig
}

type service struct {
	donors     donorDirectory
	recipients recipientDirectory
	ngos       ngoDirectory
	session    sessionManager
	jwtCfg     config.JWTConfig
}

// NewService constructs a login service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Donors == nil {
		return nil, fmt.Errorf("donor repository is required")
	}
	if params.Recipients == nil {
		return nil, fmt.Errorf("recipient repository is required")
	}
	if params.NGOs == nil {
		return nil, fmt.Errorf("ngo repository is required")
	}
	if params.SessionManager == nil {
		return nil, fmt.Errorf("session manager is required")
	}
	return &service{
		donors:     params.Donors,
		recipients: params.Recipients,
		ngos:       params.NGOs,
		session:    params.SessionManager,
		jwtCfg:     params.JWTConfig,
	}, nil
}

// account is the kind-independent view of an authenticated row.
type account struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	IsActive     bool
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if !req.Kind.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid account kind")
	}

	acct, err := s.authenticate(ctx, req.Kind, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.recordLogin(ctx, req.Kind, acct.ID, now); err != nil {
		return nil, err
	}

	accessID := session.NewAccessID()
	accessToken, err := pkgAuth.MintAccessToken(s.jwtCfg, now, pkgAuth.AccessTokenPayload{
		AccountID: acct.ID,
		Kind:      req.Kind,
		JTI:       accessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}
	refreshToken, err := s.session.Generate(ctx, accessID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store refresh token")
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Account: AccountSummary{
			ID:    acct.ID,
			Kind:  req.Kind,
			Name:  acct.Name,
			Email: acct.Email,
		},
	}, nil
}

func (s *service) authenticate(ctx context.Context, kind enums.AccountKind, email, password string) (*account, error) {
	input := strings.TrimSpace(email)
	if input == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}

	acct, err := s.lookup(ctx, kind, strings.ToLower(input))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup account")
	}

	valid, err := security.VerifyPassword(password, acct.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !valid || !acct.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}
	return acct, nil
}

func (s *service) lookup(ctx context.Context, kind enums.AccountKind, email string) (*account, error) {
	switch kind {
	case enums.AccountKindDonor:
		donor, err := s.donors.FindByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		return &account{ID: donor.ID, Name: donor.Name, Email: donor.Email, PasswordHash: donor.PasswordHash, IsActive: donor.IsActive}, nil
	case enums.AccountKindRecipient:
		recipient, err := s.recipients.FindByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		return &account{ID: recipient.ID, Name: recipient.Name, Email: recipient.Email, PasswordHash: recipient.PasswordHash, IsActive: recipient.IsActive}, nil
	case enums.AccountKindNGO:
		ngo, err := s.ngos.FindByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		return &account{ID: ngo.ID, Name: ngo.Name, Email: ngo.Email, PasswordHash: ngo.PasswordHash, IsActive: ngo.IsActive}, nil
	default:
		return nil, gorm.ErrRecordNotFound
	}
}

func (s *service) recordLogin(ctx context.Context, kind enums.AccountKind, id uuid.UUID, at time.Time) error {
	var err error
	switch kind {
	case enums.AccountKindDonor:
		err = s.donors.UpdateLastLogin(ctx, id, at)
	case enums.AccountKindRecipient:
		err = s.recipients.UpdateLastLogin(ctx, id, at)
	case enums.AccountKindNGO:
		err = s.ngos.UpdateLastLogin(ctx, id, at)
	}
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update last login")
	}
	return nil
}
