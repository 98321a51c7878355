package coach

import (
	"database/sql"
	"fmt"

	"github.com/saadjs/coach-cli/internal/service"
	"github.com/spf13/cobra"
)

var (
	todayDate string
	todayJSON bool
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show a day's intake against the phase targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := parseDayOrNow(todayDate)
		if err != nil {
			return err
		}
		return withLedger(false, func(_ *sql.DB, l *service.Ledger) error {
			status := service.TodaySummary(l, target)
			if todayJSON {
				return printJSON(cmd.OutOrStdout(), status)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s\n", status.Date)
			if status.Phase != nil {
				fmt.Fprintf(out, "Phase: %s\n", status.Phase.Name)
			}
			fmt.Fprintf(out, "Intake: %d kcal\n", status.Calories)
			fmt.Fprintf(out, "Macros: P %.1fg | F %.1fg | C %.1fg\n", status.ProteinG, status.FatG, status.CarbsG)
			if !status.HasTargets {
				fmt.Fprintln(out, "Targets: none (no active phase)")
				return nil
			}
			fmt.Fprintf(out, "Targets: %d kcal | P %.0fg | F %.0fg | C %.0fg\n", status.GoalCalories, status.GoalProteinG, status.GoalFatG, status.GoalCarbsG)
			fmt.Fprintf(out, "Remaining: %d kcal | P %.1fg | F %.1fg | C %.1fg\n", status.RemainingCalories, status.RemainingProteinG, status.RemainingFatG, status.RemainingCarbsG)
			fmt.Fprintf(out, "Progress: kcal %d%% | P %d%% | F %d%% | C %d%%\n", status.CaloriesPct, status.ProteinPct, status.FatPct, status.CarbsPct)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date YYYY-MM-DD (default today)")
	todayCmd.Flags().BoolVar(&todayJSON, "json", false, "Output as JSON")
}
