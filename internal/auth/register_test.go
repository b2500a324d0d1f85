package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mealbridge/mealbridge-backend/pkg/db/models"
	"github.com/mealbridge/mealbridge-backend/pkg/enums"
	pkgerrors "github.com/mealbridge/mealbridge-backend/pkg/errors"
	"github.com/mealbridge/mealbridge-backend/pkg/security"
)

type gormTxRunner struct {
	db *gorm.DB
}

func (g gormTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return g.db.WithContext(ctx).Transaction(fn)
}

func setupAccountsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	schemas := []string{
		`CREATE TABLE IF NOT EXISTS ngos (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  phone TEXT,
  address TEXT,
  plates_available INTEGER NOT NULL DEFAULT 0,
  is_active INTEGER NOT NULL DEFAULT 1,
  last_login_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS donors (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  phone TEXT,
  aadhaar TEXT,
  is_active INTEGER NOT NULL DEFAULT 1,
  last_login_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS recipients (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  phone TEXT,
  is_active INTEGER NOT NULL DEFAULT 1,
  last_login_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`,
	}
	for _, schema := range schemas {
		require.NoError(t, db.Exec(schema).Error)
	}
	return db
}

func newRegisterService(t *testing.T) (RegisterService, *gorm.DB) {
	t.Helper()
	db := setupAccountsTestDB(t)
	svc, err := NewRegisterService(RegisterServiceParams{
		TxRunner:       gormTxRunner{db: db},
		PasswordConfig: testPasswordCfg,
	})
	require.NoError(t, err)
	return svc, db
}

func TestRegister_Donor(t *testing.T) {
	svc, db := newRegisterService(t)

	aadhaar := "1234-5678-9012"
	resp, err := svc.Register(context.Background(), RegisterRequest{
		Kind:     enums.AccountKindDonor,
		Name:     "Alice",
		Email:    "Alice@Example.org",
		Password: "correct horse battery",
		Aadhaar:  &aadhaar,
	})
	require.NoError(t, err)
	assert.Equal(t, enums.AccountKindDonor, resp.Account.Kind)
	assert.Equal(t, "alice@example.org", resp.Account.Email)

	var donor models.Donor
	require.NoError(t, db.First(&donor, "email = ?", "alice@example.org").Error)
	assert.True(t, donor.IsActive)
	require.NotNil(t, donor.Aadhaar)
	assert.Equal(t, aadhaar, *donor.Aadhaar)

	ok, err := security.VerifyPassword("correct horse battery", donor.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRegister_NGOWithAddress(t *testing.T) {
	svc, db := newRegisterService(t)

	address := "12 Relief Road"
	resp, err := svc.Register(context.Background(), RegisterRequest{
		Kind:     enums.AccountKindNGO,
		Name:     "Helping Hands",
		Email:    "ngo@example.org",
		Password: "plates for everyone",
		Address:  &address,
	})
	require.NoError(t, err)
	assert.Equal(t, enums.AccountKindNGO, resp.Account.Kind)

	var ngo models.NGO
	require.NoError(t, db.First(&ngo, "email = ?", "ngo@example.org").Error)
	assert.Zero(t, ngo.PlatesAvailable)
	require.NotNil(t, ngo.Address)
	assert.Equal(t, address, *ngo.Address)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newRegisterService(t)
	ctx := context.Background()

	req := RegisterRequest{
		Kind:     enums.AccountKindRecipient,
		Name:     "Shelter A",
		Email:    "shelter@example.org",
		Password: "plates for everyone",
	}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeConflict, typed.Code())
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newRegisterService(t)
	ctx := context.Background()

	cases := []RegisterRequest{
		{Kind: "robot", Name: "X", Email: "x@example.org", Password: "p"},
		{Kind: enums.AccountKindDonor, Name: "", Email: "x@example.org", Password: "p"},
		{Kind: enums.AccountKindDonor, Name: "X", Email: "   ", Password: "p"},
	}
	for _, req := range cases {
		_, err := svc.Register(ctx, req)
		typed := pkgerrors.As(err)
		require.NotNil(t, typed, "expected coded error for %+v", req)
		assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	}
}
