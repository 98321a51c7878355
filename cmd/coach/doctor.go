package coach

import (
	"database/sql"
	"fmt"

	"github.com/saadjs/coach-cli/internal/service"
	"github.com/spf13/cobra"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the stored ledger for inconsistent records",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(doctorFix, func(_ *sql.DB, l *service.Ledger) error {
			report := service.RunDoctor(l, doctorFix)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Duplicate food names: %d\n", report.DuplicateFoodNames)
			fmt.Fprintf(out, "Duplicate entry ids: %d\n", report.DuplicateEntryIDs)
			fmt.Fprintf(out, "Invalid weight samples: %d\n", report.InvalidWeightSamples)
			if doctorFix {
				fmt.Fprintf(out, "Fixed weight samples: %d\n", report.FixedWeightSamples)
				// Re-check so the exit status reflects the repaired state.
				report = service.RunDoctor(l, false)
			}
			if !report.Healthy() {
				logr().Warnw("doctor found issues", "report", report)
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Drop invalid weight samples")
}
