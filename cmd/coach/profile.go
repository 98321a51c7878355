package coach

import (
	"database/sql"
	"fmt"

	"github.com/saadjs/coach-cli/internal/service"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the athlete profile",
}

var (
	profileName           string
	profileWeight         float64
	profileUnit           string
	profileMaintenance    int
	profileEndHypertrophy int
	profileEndDeficit     int
	profileReverseWeek    int
	profileJSON           bool
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or update the profile (only flags given are changed)",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.ProfileInput{}
		flags := cmd.Flags()
		if flags.Changed("name") {
			in.Name = &profileName
		}
		if flags.Changed("weight") {
			kg, err := service.ToKg(profileWeight, profileUnit)
			if err != nil {
				return err
			}
			in.BodyWeight = &kg
		}
		if flags.Changed("maintenance") {
			in.MaintenanceCalories = &profileMaintenance
		}
		if flags.Changed("end-hypertrophy") {
			in.EndHypertrophyCalories = &profileEndHypertrophy
		}
		if flags.Changed("end-deficit") {
			in.EndDeficitCalories = &profileEndDeficit
		}
		if flags.Changed("reverse-week") {
			in.ReverseWeek = &profileReverseWeek
		}
		return withLedger(true, func(_ *sql.DB, l *service.Ledger) error {
			if err := l.SetProfile(in); err != nil {
				return err
			}
			p := l.Profile()
			logr().Infow("updated profile", "name", p.Name, "body_weight", p.BodyWeight, "maintenance", p.MaintenanceCalories)
			fmt.Fprintf(cmd.OutOrStdout(), "Saved profile for %s (%.1f kg, maintenance %d kcal)\n", p.Name, p.BodyWeight, p.MaintenanceCalories)
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(false, func(_ *sql.DB, l *service.Ledger) error {
			p := l.Profile()
			if profileJSON {
				return printJSON(cmd.OutOrStdout(), p)
			}
			if !p.SetupComplete {
				fmt.Fprintln(cmd.OutOrStdout(), "Profile: not set (run `coach profile set`)")
				return nil
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name: %s\n", p.Name)
			fmt.Fprintf(out, "Body weight: %.1f kg\n", p.BodyWeight)
			fmt.Fprintf(out, "Maintenance: %d kcal\n", p.MaintenanceCalories)
			fmt.Fprintf(out, "End of hypertrophy: %s\n", kcalOrUnset(p.EndHypertrophyCalories))
			fmt.Fprintf(out, "End of deficit: %s\n", kcalOrUnset(p.EndDeficitCalories))
			fmt.Fprintf(out, "Reverse diet week: %d\n", p.ReverseWeek)
			return nil
		})
	},
}

func kcalOrUnset(v int) string {
	if v == 0 {
		return "not set"
	}
	return fmt.Sprintf("%d kcal", v)
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd, profileShowCmd)

	profileSetCmd.Flags().StringVar(&profileName, "name", "", "Athlete name")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Body weight")
	profileSetCmd.Flags().StringVar(&profileUnit, "unit", "kg", "Weight unit: kg or lb")
	profileSetCmd.Flags().IntVar(&profileMaintenance, "maintenance", 0, "Maintenance calories")
	profileSetCmd.Flags().IntVar(&profileEndHypertrophy, "end-hypertrophy", 0, "Calories at the end of the hypertrophy block (0 uses maintenance)")
	profileSetCmd.Flags().IntVar(&profileEndDeficit, "end-deficit", 0, "Calories at the end of the deficit (0 uses maintenance - 700)")
	profileSetCmd.Flags().IntVar(&profileReverseWeek, "reverse-week", 1, "Current reverse diet week")

	profileShowCmd.Flags().BoolVar(&profileJSON, "json", false, "Output as JSON")
}
