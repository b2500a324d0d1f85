package auth

import (
	"github.com/google/uuid"

	"github.com/mealbridge/mealbridge-backend/pkg/enums"
)

// RegisterRequest captures the payload for onboarding any account kind.
// Aadhaar only applies to donors, address only to NGOs.
type RegisterRequest struct {
	Kind     enums.AccountKind `json:"kind" validate:"required"`
	Name     string            `json:"name" validate:"required"`
	Email    string            `json:"email" validate:"required,email"`
	Password string            `json:"password" validate:"required,min=8"`
	Phone    *string           `json:"phone,omitempty"`
	Aadhaar  *string           `json:"aadhaar,omitempty"`
	Address  *string           `json:"address,omitempty"`
}

// AccountSummary describes the authenticated account returned to clients.
type AccountSummary struct {
	ID    uuid.UUID         `json:"id"`
	Kind  enums.AccountKind `json:"kind"`
	Name  string            `json:"name"`
	Email string            `json:"email"`
}

// RegisterResponse returns the freshly created account.
type RegisterResponse struct {
	Account AccountSummary `json:"account"`
}

// LoginRequest carries the credentials plus the account kind to
// authenticate against.
type LoginRequest struct {
	Kind     enums.AccountKind `json:"kind" validate:"required"`
	Email    string            `json:"email" validate:"required,email"`
	Password string            `json:"password" validate:"required"`
}

// LoginResponse contains the token pair and account produced by a
// successful login.
type LoginResponse struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	Account      AccountSummary `json:"account"`
}
