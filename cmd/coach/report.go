package coach

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/saadjs/coach-cli/internal/export"
	"github.com/saadjs/coach-cli/internal/service"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate coaching reports",
}

var (
	reportDate   string
	reportJSON   bool
	reportOut    string
	reportFormat string
)

var reportWeekCmd = &cobra.Command{
	Use:   "week",
	Short: "Weekly report for the seven days ending on --date",
	RunE: func(cmd *cobra.Command, args []string) error {
		format := strings.ToLower(strings.TrimSpace(reportFormat))
		switch format {
		case "text", "xlsx":
		default:
			return fmt.Errorf("invalid --format value %q (use text|xlsx)", reportFormat)
		}
		if format == "xlsx" && reportJSON {
			return fmt.Errorf("--json cannot be combined with --format xlsx")
		}
		today, err := parseDayOrNow(reportDate)
		if err != nil {
			return err
		}
		return withLedger(false, func(sqldb *sql.DB, l *service.Ledger) error {
			r := service.WeeklyReportFor(l, today)
			logr().Debugw("generated weekly report", "from", r.FromDate, "to", r.ToDate, "days_with_data", r.DaysWithData)

			if format == "xlsx" {
				path := reportOut
				if path == "" {
					path = defaultReportPath(r, "xlsx")
				}
				if err := export.WriteWeeklyReportXLSX(r, path); err != nil {
					return err
				}
				return recordExport(cmd, sqldb, r, "xlsx", path)
			}

			var data []byte
			kind := "text"
			if reportJSON {
				kind = "json"
				data, err = json.MarshalIndent(r, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal weekly report json: %w", err)
				}
				data = append(data, '\n')
			} else {
				data = []byte(service.RenderWeeklyReport(r))
			}
			if reportOut == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(reportOut, data, 0o644); err != nil {
				return fmt.Errorf("write weekly report to %q: %w", reportOut, err)
			}
			return recordExport(cmd, sqldb, r, kind, reportOut)
		})
	},
}

var reportHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved report files",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			items, err := service.ListReportExports(sqldb, 20)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tFROM\tTO\tFORMAT\tPATH")
			for _, e := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%s\n", e.ID, e.FromDate, e.ToDate, e.Format, e.Path)
			}
			return nil
		})
	},
}

func defaultReportPath(r *service.WeeklyReport, ext string) string {
	dir := "."
	if cfg != nil && cfg.ReportDir != "" {
		dir = cfg.ReportDir
	}
	return filepath.Join(dir, fmt.Sprintf("reporte-semanal-%s.%s", r.ToDate, ext))
}

func recordExport(cmd *cobra.Command, sqldb *sql.DB, r *service.WeeklyReport, format, path string) error {
	if _, err := service.RecordReportExport(sqldb, r, format, path); err != nil {
		return err
	}
	logr().Infow("saved weekly report", "path", path, "format", format)
	fmt.Fprintf(cmd.OutOrStdout(), "Saved weekly report to %s\n", path)
	return nil
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.AddCommand(reportWeekCmd, reportHistoryCmd)

	reportWeekCmd.Flags().StringVar(&reportDate, "date", "", "Last day of the week YYYY-MM-DD (default today)")
	reportWeekCmd.Flags().BoolVar(&reportJSON, "json", false, "Output as JSON")
	reportWeekCmd.Flags().StringVar(&reportOut, "out", "", "Write the report to a file path")
	reportWeekCmd.Flags().StringVar(&reportFormat, "format", "text", "Report format: text|xlsx")
}
