package coach

import (
	"database/sql"
	"fmt"

	"github.com/saadjs/coach-cli/internal/service"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect resolved configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective settings and stored keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDBPath()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "KEY\tVALUE")
		fmt.Fprintf(out, "db_path\t%s\n", path)
		if cfg != nil {
			fmt.Fprintf(out, "log_level\t%s\n", cfg.LogLevel)
			fmt.Fprintf(out, "timezone\t%s\n", cfg.Timezone)
			fmt.Fprintf(out, "report_dir\t%s\n", cfg.ReportDir)
		}
		return withDB(func(sqldb *sql.DB) error {
			keys, err := service.ListKeys(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "stored_keys\t%d\n", len(keys))
			for _, k := range keys {
				fmt.Fprintf(out, "  %s\n", k)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
}
