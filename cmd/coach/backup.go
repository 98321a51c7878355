package coach

import (
	"database/sql"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/saadjs/coach-cli/internal/service"
	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Snapshot and restore the coaching database",
}

var (
	backupOut    string
	backupDir    string
	backupJSON   bool
	restoreFile  string
	restoreForce bool
)

// backupDirFor defaults to a backups/ directory next to the database.
func backupDirFor(db string) string {
	if backupDir != "" {
		return backupDir
	}
	return filepath.Join(filepath.Dir(db), "backups")
}

// describeLedger prints what a backup holds and whether the doctor would flag it.
func describeLedger(w io.Writer, l *service.Ledger) service.DoctorReport {
	report := service.RunDoctor(l, false)
	fmt.Fprintf(w, "Ledger: %d foods, %d logged days, %d weight samples\n", len(l.Foods()), len(l.Dates()), len(l.WeightHistory()))
	if report.Healthy() {
		fmt.Fprintln(w, "Doctor: healthy")
	} else {
		fmt.Fprintf(w, "Doctor: %d duplicate foods, %d duplicate entries, %d invalid weights (run `coach doctor --fix`)\n",
			report.DuplicateFoodNames, report.DuplicateEntryIDs, report.InvalidWeightSamples)
	}
	return report
}

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Copy the database and record its checksum",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := resolveDBPath()
		if err != nil {
			return err
		}
		out := backupOut
		if out == "" {
			out = filepath.Join(backupDirFor(db), "coach-"+clock().Format("20060102-150405")+".db")
		}
		// Load first so the database exists and is migrated before it is copied.
		return withLedger(false, func(_ *sql.DB, l *service.Ledger) error {
			info, err := service.CreateBackup(db, out)
			if err != nil {
				return err
			}
			logr().Infow("created backup", "path", info.Path, "bytes", info.SizeBytes, "days", len(l.Dates()))
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Created backup: %s\n", info.Path)
			fmt.Fprintf(w, "Checksum: %s\n", info.Checksum)
			describeLedger(w, l)
			return nil
		})
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List backups, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := resolveDBPath()
		if err != nil {
			return err
		}
		items, err := service.ListBackups(backupDirFor(db))
		if err != nil {
			return err
		}
		if backupJSON {
			return printJSON(cmd.OutOrStdout(), items)
		}
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "FILE\tSIZE\tCREATED\tVERIFIED")
		for _, it := range items {
			verified := it.Checksum
			switch {
			case verified == "":
				verified = "no checksum"
			case len(verified) > 12:
				verified = verified[:12]
			}
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", it.Path, it.SizeBytes, it.CreatedAt.Format(time.RFC3339), verified)
		}
		return nil
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Replace the database with a verified backup",
	RunE: func(cmd *cobra.Command, args []string) error {
		if restoreFile == "" {
			return fmt.Errorf("--file is required")
		}
		db, err := resolveDBPath()
		if err != nil {
			return err
		}
		if err := service.RestoreBackup(restoreFile, db, restoreForce); err != nil {
			return err
		}
		return withLedger(false, func(_ *sql.DB, l *service.Ledger) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Restored backup from %s\n", restoreFile)
			report := describeLedger(w, l)
			logr().Warnw("restored backup", "from", restoreFile, "to", db, "healthy", report.Healthy())
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupCreateCmd, backupListCmd, backupRestoreCmd)

	backupCreateCmd.Flags().StringVar(&backupOut, "out", "", "Backup file path (default: timestamped file in --dir)")
	for _, c := range []*cobra.Command{backupCreateCmd, backupListCmd} {
		c.Flags().StringVar(&backupDir, "dir", "", "Backup directory (default: backups/ next to the database)")
	}
	backupListCmd.Flags().BoolVar(&backupJSON, "json", false, "Output as JSON")
	backupRestoreCmd.Flags().StringVar(&restoreFile, "file", "", "Backup .db file to restore")
	backupRestoreCmd.Flags().BoolVar(&restoreForce, "force", false, "Overwrite an existing database")
}
