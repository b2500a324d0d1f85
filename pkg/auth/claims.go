package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mealbridge/mealbridge-backend/pkg/enums"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	AccountID uuid.UUID
	Kind      enums.AccountKind
	JTI       string
}

// AccessTokenClaims represents the typed JWT issued to clients. The
// ledger only ever consumes the opaque AccountID; Kind exists so the
// HTTP layer can gate donor/recipient/ngo routes.
type AccessTokenClaims struct {
	AccountID uuid.UUID         `json:"account_id"`
	Kind      enums.AccountKind `json:"kind"`
	jwt.RegisteredClaims
}
