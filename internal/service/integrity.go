package service

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/saadjs/coach-cli/internal/model"
)

type BackupInfo struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	CreatedAt time.Time `json:"created_at"`
	SizeBytes int64     `json:"size_bytes"`
}

const checksumExt = ".sha256"

func checksumPath(path string) string { return path + checksumExt }

// readChecksum returns the recorded digest of path, or "" when no sidecar exists.
func readChecksum(path string) (string, error) {
	b, err := os.ReadFile(checksumPath(path))
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read checksum file: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

// CreateBackup copies the database to outPath and records its SHA-256 digest
// in a sidecar file.
func CreateBackup(dbPath, outPath string) (BackupInfo, error) {
	switch {
	case strings.TrimSpace(dbPath) == "":
		return BackupInfo{}, fmt.Errorf("db path is required")
	case strings.TrimSpace(outPath) == "":
		return BackupInfo{}, fmt.Errorf("backup output path is required")
	}
	sum, err := replaceFile(dbPath, outPath)
	if err != nil {
		return BackupInfo{}, fmt.Errorf("write backup: %w", err)
	}
	if err := os.WriteFile(checksumPath(outPath), []byte(sum+"\n"), 0o644); err != nil {
		return BackupInfo{}, fmt.Errorf("write checksum file: %w", err)
	}
	return backupInfo(outPath, sum)
}

// RestoreBackup replaces dbPath with the backup. A recorded checksum must match,
// and an existing database is only overwritten with force.
func RestoreBackup(backupPath, dbPath string, force bool) error {
	if strings.TrimSpace(backupPath) == "" || strings.TrimSpace(dbPath) == "" {
		return fmt.Errorf("backup path and db path are required")
	}
	if _, err := os.Stat(dbPath); err == nil && !force {
		return fmt.Errorf("target db already exists; use --force to overwrite")
	}
	want, err := readChecksum(backupPath)
	if err != nil {
		return err
	}
	if want != "" {
		got, err := fileSHA256(backupPath)
		if err != nil {
			return err
		}
		if got != want {
			return fmt.Errorf("backup checksum mismatch: recorded %s, file has %s", want, got)
		}
	}
	if _, err := replaceFile(backupPath, dbPath); err != nil {
		return fmt.Errorf("restore backup: %w", err)
	}
	return nil
}

// ListBackups returns the .db files in dir, newest first.
func ListBackups(dir string) ([]BackupInfo, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read backup dir: %w", err)
	}
	out := make([]BackupInfo, 0, len(files))
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".db" {
			continue
		}
		path := filepath.Join(dir, f.Name())
		sum, err := readChecksum(path)
		if err != nil {
			continue
		}
		info, err := backupInfo(path, sum)
		if err != nil {
			continue
		}
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func backupInfo(path, sum string) (BackupInfo, error) {
	st, err := os.Stat(path)
	if err != nil {
		return BackupInfo{}, fmt.Errorf("stat backup: %w", err)
	}
	return BackupInfo{Path: path, Checksum: sum, CreatedAt: st.ModTime(), SizeBytes: st.Size()}, nil
}

type DoctorReport struct {
	DuplicateFoodNames   int `json:"duplicate_food_names"`
	DuplicateEntryIDs    int `json:"duplicate_entry_ids"`
	InvalidWeightSamples int `json:"invalid_weight_samples"`
	FixedWeightSamples   int `json:"fixed_weight_samples,omitempty"`
}

func (r DoctorReport) Healthy() bool {
	return r.DuplicateFoodNames == 0 && r.DuplicateEntryIDs == 0 && r.InvalidWeightSamples == 0
}

// RunDoctor inspects the ledger for state the operations never produce but a
// hand-edited import can carry. fix drops invalid weight samples.
func RunDoctor(l *Ledger, fix bool) DoctorReport {
	report := DoctorReport{}

	names := map[string]int{}
	for _, f := range l.foods {
		names[normalizeName(f.Name)]++
	}
	for _, n := range names {
		if n > 1 {
			report.DuplicateFoodNames += n - 1
		}
	}

	ids := map[string]int{}
	for _, day := range l.dailyMeals {
		for _, slot := range model.MealSlots {
			for _, e := range day.Entries(slot) {
				ids[e.ID]++
			}
		}
	}
	for _, n := range ids {
		if n > 1 {
			report.DuplicateEntryIDs += n - 1
		}
	}

	kept := make([]model.WeightSample, 0, len(l.weightHistory))
	for _, s := range l.weightHistory {
		if _, err := time.Parse(dateLayout, s.Date); err != nil || s.Weight <= 0 {
			report.InvalidWeightSamples++
			continue
		}
		kept = append(kept, s)
	}
	if fix && report.InvalidWeightSamples > 0 {
		report.FixedWeightSamples = report.InvalidWeightSamples
		l.weightHistory = kept
	}
	return report
}

// replaceFile copies src over dst through a temporary file in dst's directory
// so a failed copy never leaves a truncated dst. It returns the digest of the
// copied bytes.
func replaceFile(src, dst string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("open source file: %w", err)
	}
	defer in.Close()

	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dst)+".*")
	if err != nil {
		return "", fmt.Errorf("create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	h := sha256.New()
	if _, err := io.Copy(io.MultiWriter(tmp, h), in); err != nil {
		tmp.Close()
		return "", fmt.Errorf("copy file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return "", fmt.Errorf("sync file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close file: %w", err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return "", fmt.Errorf("move file into place: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func fileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file for checksum: %w", err)
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash file: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
