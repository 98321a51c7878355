package coach

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/saadjs/coach-cli/internal/service"
	"github.com/spf13/cobra"
)

var (
	exportOut    string
	importIn     string
	importMode   string
	importDryRun bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(exportOut) == "" {
			return fmt.Errorf("--out is required")
		}
		return withLedger(false, func(_ *sql.DB, l *service.Ledger) error {
			data, err := service.ExportLedger(l)
			if err != nil {
				return err
			}
			if err := os.WriteFile(exportOut, data, 0o644); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported ledger to %s\n", exportOut)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a JSON ledger export",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(importIn) == "" {
			return fmt.Errorf("--in is required")
		}
		mode, err := service.ParseImportMode(importMode)
		if err != nil {
			return err
		}
		raw, err := os.ReadFile(importIn)
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}
		return withLedger(!importDryRun, func(_ *sql.DB, l *service.Ledger) error {
			report, err := service.ImportLedger(l, raw, mode)
			if err != nil {
				return err
			}
			logr().Infow("imported ledger", "mode", report.Mode, "dry_run", importDryRun, "entries", report.Entries)
			prefix := "Import report"
			if importDryRun {
				prefix = "Dry run"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): foods=%d entries=%d weights=%d profile=%t\n",
				prefix, report.Mode, report.Foods, report.Entries, report.WeightSamples, report.ProfileReplaced)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file path")
	importCmd.Flags().StringVar(&importIn, "in", "", "Input file path")
	importCmd.Flags().StringVar(&importMode, "mode", string(service.ImportModeMerge), "Import mode: merge or replace")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Report what would change without saving")
}
