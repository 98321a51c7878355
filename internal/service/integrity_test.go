package service_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/saadjs/coach-cli/internal/service"
)

func TestBackupCreateListRestore(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "coach.db")
	if err := os.WriteFile(dbPath, []byte("ledger-bytes"), 0o644); err != nil {
		t.Fatalf("write db: %v", err)
	}

	backupPath := filepath.Join(dir, "backups", "coach-1.db")
	info, err := service.CreateBackup(dbPath, backupPath)
	if err != nil {
		t.Fatalf("create backup: %v", err)
	}
	if info.Checksum == "" || info.SizeBytes != int64(len("ledger-bytes")) {
		t.Fatalf("unexpected backup info %+v", info)
	}

	items, err := service.ListBackups(filepath.Dir(backupPath))
	if err != nil {
		t.Fatalf("list backups: %v", err)
	}
	if len(items) != 1 || items[0].Checksum != info.Checksum {
		t.Fatalf("unexpected backup list %+v", items)
	}

	if err := service.RestoreBackup(backupPath, dbPath, false); err == nil {
		t.Fatalf("expected restore over existing db to fail without force")
	}
	restored := filepath.Join(dir, "restored.db")
	if err := service.RestoreBackup(backupPath, restored, false); err != nil {
		t.Fatalf("restore backup: %v", err)
	}
	b, err := os.ReadFile(restored)
	if err != nil || string(b) != "ledger-bytes" {
		t.Fatalf("restored contents mismatch: %q %v", b, err)
	}

	if err := os.WriteFile(backupPath, []byte("tampered"), 0o644); err != nil {
		t.Fatalf("tamper backup: %v", err)
	}
	if err := service.RestoreBackup(backupPath, dbPath, true); err == nil {
		t.Fatalf("expected checksum mismatch")
	}
}
