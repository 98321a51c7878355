package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "coach.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("FileValues", func(t *testing.T) {
		path := writeConfig(t, "db_path: /tmp/coach-file.db\nlog_level: debug\ntimezone: UTC\nreport_dir: /tmp/reports\n")

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.DBPath != "/tmp/coach-file.db" {
			t.Fatalf("expected db path from file, got %q", cfg.DBPath)
		}
		if cfg.LogLevel != "debug" {
			t.Fatalf("expected debug log level, got %q", cfg.LogLevel)
		}
		if cfg.Location().String() != "UTC" {
			t.Fatalf("expected UTC location, got %s", cfg.Location())
		}
		if cfg.ReportDir != "/tmp/reports" {
			t.Fatalf("expected report dir from file, got %q", cfg.ReportDir)
		}
	})

	t.Run("EnvOverridesFile", func(t *testing.T) {
		path := writeConfig(t, "db_path: /tmp/coach-file.db\n")
		t.Setenv("COACH_DB_PATH", "/tmp/coach-env.db")
		t.Setenv("COACH_LOG_LEVEL", "WARN")

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.DBPath != "/tmp/coach-env.db" {
			t.Fatalf("expected env db path, got %q", cfg.DBPath)
		}
		if cfg.LogLevel != "warn" {
			t.Fatalf("expected normalized warn level, got %q", cfg.LogLevel)
		}
	})

	t.Run("Defaults", func(t *testing.T) {
		path := writeConfig(t, "{}\n")

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.DBPath == "" {
			t.Fatalf("expected default db path")
		}
		if cfg.LogLevel != "info" {
			t.Fatalf("expected default info level, got %q", cfg.LogLevel)
		}
		if cfg.ReportDir != "." {
			t.Fatalf("expected default report dir, got %q", cfg.ReportDir)
		}
	})

	t.Run("InvalidTimezone", func(t *testing.T) {
		path := writeConfig(t, "timezone: Mars/Olympus\n")
		if _, err := Load(path); err == nil {
			t.Fatal("expected error for unknown timezone")
		}
	})

	t.Run("InvalidLogLevel", func(t *testing.T) {
		path := writeConfig(t, "log_level: chatty\n")
		if _, err := Load(path); err == nil {
			t.Fatal("expected error for unknown log level")
		}
	})

	t.Run("MissingExplicitFile", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
			t.Fatal("expected error for missing config file")
		}
	})
}
