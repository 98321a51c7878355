package coach

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/saadjs/coach-cli/internal/app"
	"github.com/saadjs/coach-cli/internal/db"
	"github.com/saadjs/coach-cli/internal/service"
)

const dateLayout = "2006-01-02"

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if cfg != nil && cfg.DBPath != "" {
		return cfg.DBPath, nil
	}
	return app.DefaultDBPath()
}

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	logr().Debugw("opened database", "path", path)
	return run(sqldb)
}

// withLedger loads the stored ledger, runs fn and, when save is set, writes it back.
func withLedger(save bool, run func(*sql.DB, *service.Ledger) error) error {
	return withDB(func(sqldb *sql.DB) error {
		l, err := service.LoadLedger(sqldb, service.WithClock(clock))
		if err != nil {
			return err
		}
		if err := run(sqldb, l); err != nil {
			return err
		}
		if !save {
			return nil
		}
		if err := service.SaveLedger(sqldb, l); err != nil {
			return err
		}
		logr().Debugw("saved ledger", "foods", len(l.Foods()), "days", len(l.Dates()))
		return nil
	})
}

func location() *time.Location {
	if cfg == nil {
		return time.Local
	}
	return cfg.Location()
}

func clock() time.Time {
	return time.Now().In(location())
}

// parseDayOrNow returns now for an empty date, otherwise midnight of the date.
func parseDayOrNow(date string) (time.Time, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return clock(), nil
	}
	t, err := time.ParseInLocation(dateLayout, date, location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", date)
	}
	return t, nil
}

func dayOrToday(date string) (string, error) {
	t, err := parseDayOrNow(date)
	if err != nil {
		return "", err
	}
	return t.Format(dateLayout), nil
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(w, string(b))
	return nil
}
