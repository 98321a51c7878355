package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/saadjs/coach-cli/internal/db"
	"github.com/saadjs/coach-cli/internal/service"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "coach.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func fixedClock(t time.Time) service.LedgerOption {
	return service.WithClock(func() time.Time { return t })
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

// newProfiledLedger returns a ledger for an 80 kg athlete with 2500 kcal maintenance.
func newProfiledLedger(t *testing.T, now time.Time) *service.Ledger {
	t.Helper()
	l := service.NewLedger(fixedClock(now))
	name := "Ana"
	bw := 80.0
	maint := 2500
	if err := l.SetProfile(service.ProfileInput{Name: &name, BodyWeight: &bw, MaintenanceCalories: &maint}); err != nil {
		t.Fatalf("set profile: %v", err)
	}
	return l
}

func strPtr(v string) *string { return &v }

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }
