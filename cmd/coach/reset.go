package coach

import (
	"database/sql"
	"fmt"

	"github.com/saadjs/coach-cli/internal/service"
	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase profile, foods, meals and weight history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			return fmt.Errorf("refusing to reset without --yes")
		}
		return withLedger(true, func(_ *sql.DB, l *service.Ledger) error {
			l.Reset()
			logr().Warnw("reset ledger")
			fmt.Fprintln(cmd.OutOrStdout(), "All coaching data erased")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Confirm erasing all data")
}
