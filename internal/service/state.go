package service

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/saadjs/coach-cli/internal/model"
)

const ledgerKey = "ledger"

// LoadLedger reads the persisted ledger document. A missing document yields a
// fresh ledger.
func LoadLedger(db *sql.DB, opts ...LedgerOption) (*Ledger, error) {
	raw, ok, err := GetValue(db, ledgerKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return NewLedger(opts...), nil
	}
	var snap model.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil, fmt.Errorf("parse ledger document: %w", err)
	}
	return FromSnapshot(snap, opts...)
}

func SaveLedger(db *sql.DB, l *Ledger) error {
	b, err := json.Marshal(l.Snapshot())
	if err != nil {
		return fmt.Errorf("marshal ledger document: %w", err)
	}
	return PutValue(db, ledgerKey, string(b))
}

type ReportExport struct {
	ID        int64     `json:"id"`
	FromDate  string    `json:"from_date"`
	ToDate    string    `json:"to_date"`
	Format    string    `json:"format"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"created_at"`
}

func RecordReportExport(db *sql.DB, r *WeeklyReport, format, path string) (int64, error) {
	res, err := db.Exec(`
INSERT INTO report_exports(from_date, to_date, format, path, created_at)
VALUES(?, ?, ?, ?, ?)
`, r.FromDate, r.ToDate, format, path, time.Now().Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("record report export: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve report export id: %w", err)
	}
	return id, nil
}

func ListReportExports(db *sql.DB, limit int) ([]ReportExport, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(`
SELECT id, from_date, to_date, format, path, created_at
FROM report_exports
ORDER BY id DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("list report exports: %w", err)
	}
	defer rows.Close()

	items := make([]ReportExport, 0)
	for rows.Next() {
		var e ReportExport
		var createdRaw string
		if err := rows.Scan(&e.ID, &e.FromDate, &e.ToDate, &e.Format, &e.Path, &createdRaw); err != nil {
			return nil, fmt.Errorf("scan report export: %w", err)
		}
		created, err := time.Parse(time.RFC3339, createdRaw)
		if err != nil {
			return nil, fmt.Errorf("parse created_at for export %d: %w", e.ID, err)
		}
		e.CreatedAt = created
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate report exports: %w", err)
	}
	return items, nil
}
