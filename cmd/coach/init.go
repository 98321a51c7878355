package coach

import (
	"database/sql"
	"fmt"

	"github.com/saadjs/coach-cli/internal/db"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize local coach database",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDBPath()
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			logr().Infow("database ready", "path", path, "schema_version", db.LatestVersion())
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized coach database at %s\n", path)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
