package ngos

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupNGOTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`CREATE TABLE IF NOT EXISTS ngos (
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
);`).Error)
	return db
}

func TestNGORepositoryCreateAndFind(t *testing.T) {
	repo := NewRepository(setupNGOTestDB(t))
	ctx := context.Background()

	address := "12 Shelter Lane"
	created, err := repo.Create(ctx, CreateNGODTO{
		Name:         "Community Kitchen",
		Email:        "kitchen@example.org",
		PasswordHash: "hash",
		Address:      &address,
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, 0, created.PlatesAvailable)

	byEmail, err := repo.FindByEmail(ctx, "kitchen@example.org")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Community Kitchen", byID.Name)
	require.NotNil(t, byID.Address)
	assert.Equal(t, address, *byID.Address)
}

func TestNGORepositoryListReturnsActiveSortedByName(t *testing.T) {
	repo := NewRepository(setupNGOTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"Zion Shelter", "Annapurna Trust", "Midway Meals"} {
		_, err := repo.Create(ctx, CreateNGODTO{
			Name:         name,
			Email:        fmt.Sprintf("%s@example.org", name[:3]),
			PasswordHash: "hash",
		})
		require.NoError(t, err)
	}

	inactive, err := repo.Create(ctx, CreateNGODTO{
		Name:         "Closed Kitchen",
		Email:        "closed@example.org",
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	require.NoError(t, repo.db.Model(inactive).Update("is_active", false).Error)

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "Annapurna Trust", listed[0].Name)
	assert.Equal(t, "Midway Meals", listed[1].Name)
	assert.Equal(t, "Zion Shelter", listed[2].Name)
}

func TestNGORepositoryUpdateLastLogin(t *testing.T) {
	repo := NewRepository(setupNGOTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateNGODTO{
		Name:         "Community Kitchen",
		Email:        "kitchen@example.org",
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	at := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.UpdateLastLogin(ctx, created.ID, at))

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found.LastLoginAt)
	assert.WithinDuration(t, at, *found.LastLoginAt, time.Second)
}
