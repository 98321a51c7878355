package coach

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/saadjs/coach-cli/internal/service"
	"github.com/spf13/cobra"
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Record and review body weight",
}

var (
	weightUnit    string
	weightOutUnit string
	weightJSON    bool
)

var weightSetCmd = &cobra.Command{
	Use:   "set <weight>",
	Short: "Record today's body weight",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
		if err != nil {
			return fmt.Errorf("invalid weight %q", args[0])
		}
		kg, err := service.ToKg(value, weightUnit)
		if err != nil {
			return err
		}
		return withLedger(true, func(_ *sql.DB, l *service.Ledger) error {
			if err := l.UpdateBodyWeight(kg); err != nil {
				return err
			}
			logr().Infow("recorded body weight", "kg", kg)
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded body weight %.2f kg\n", kg)
			return nil
		})
	},
}

var weightHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded body weights",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(false, func(_ *sql.DB, l *service.Ledger) error {
			history := l.WeightHistory()
			if weightJSON {
				return printJSON(cmd.OutOrStdout(), history)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tWEIGHT\tUNIT")
			for _, s := range history {
				w, err := service.WeightFromKg(s.Weight, weightOutUnit)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.2f\t%s\n", s.Date, w, weightOutUnit)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(weightCmd)
	weightCmd.AddCommand(weightSetCmd, weightHistoryCmd)

	weightSetCmd.Flags().StringVar(&weightUnit, "unit", "kg", "Weight unit: kg or lb")
	weightHistoryCmd.Flags().StringVar(&weightOutUnit, "unit", "kg", "Output unit: kg or lb")
	weightHistoryCmd.Flags().BoolVar(&weightJSON, "json", false, "Output as JSON")
}
