package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mealbridge/mealbridge-backend/pkg/migrate"
)

func TestMigrationsDirValidates(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("validate migrations dir: %v", err)
	}
}

func TestBookingMigrationContainsConstraints(t *testing.T) {
	content := readMigration(t, "*_create_booking_records.sql")

	checks := []string{
		"CREATE TYPE booking_status AS ENUM ('booked', 'collected')",
		"CREATE TABLE IF NOT EXISTS booking_records",
		"taken INTEGER NOT NULL DEFAULT 0 CHECK (taken >= 0 AND taken <= quantity)",
		"FOREIGN KEY (recipient_id) REFERENCES recipients(id) ON DELETE RESTRICT",
		"CREATE INDEX IF NOT EXISTS idx_booking_records_ngo_status_created",
		"DROP TABLE IF EXISTS booking_records",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestAccountsMigrationContainsConstraints(t *testing.T) {
	content := readMigration(t, "*_create_accounts.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS ngos",
		"plates_available INTEGER NOT NULL DEFAULT 0 CHECK (plates_available >= 0)",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_ngos_email",
		"CREATE TABLE IF NOT EXISTS donors",
		"CREATE TABLE IF NOT EXISTS recipients",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func readMigration(t *testing.T, pattern string) string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join("migrations", pattern))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no migration matching %q found", pattern)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	return string(data)
}
