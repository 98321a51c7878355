package coach

import (
	"database/sql"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/saadjs/coach-cli/internal/model"
	"github.com/saadjs/coach-cli/internal/service"
	"github.com/spf13/cobra"
)

var phaseCmd = &cobra.Command{
	Use:   "phase",
	Short: "Inspect the program calendar and override the current phase",
}

var (
	phaseDate string
	phaseJSON bool
)

type phaseView struct {
	Date       string              `json:"date"`
	Phase      *model.Phase        `json:"phase"`
	Overridden bool                `json:"overridden"`
	Targets    *model.MacroTargets `json:"targets,omitempty"`
}

var phaseCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the phase and macro targets for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		at, err := parseDayOrNow(phaseDate)
		if err != nil {
			return err
		}
		return withLedger(false, func(_ *sql.DB, l *service.Ledger) error {
			view := phaseView{Date: at.Format(dateLayout), Phase: l.CurrentPhase(at), Overridden: l.PhaseOverride() != nil}
			if targets, ok := l.CurrentMacros(at); ok {
				view.Targets = &targets
			}
			if phaseJSON {
				return printJSON(cmd.OutOrStdout(), view)
			}
			out := cmd.OutOrStdout()
			if view.Phase == nil {
				fmt.Fprintf(out, "No active phase on %s\n", view.Date)
				return nil
			}
			fmt.Fprintf(out, "Date: %s\n", view.Date)
			fmt.Fprintf(out, "Phase: %s\n", view.Phase.Name)
			if view.Phase.Description != "" {
				fmt.Fprintf(out, "Description: %s\n", view.Phase.Description)
			}
			fmt.Fprintf(out, "Sub-phase: %d/%s\n", view.Phase.Phase, view.Phase.SubPhase)
			if view.Overridden {
				fmt.Fprintln(out, "Source: manual override")
			}
			printTargets(out, *view.Targets)
			return nil
		})
	},
}

var phaseOverrideCmd = &cobra.Command{
	Use:   "override",
	Short: "Force a phase instead of the calendar",
}

var phaseOverrideSetCmd = &cobra.Command{
	Use:   "set <phase> <sub-phase>",
	Short: "Force a phase until the override is cleared",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(strings.TrimSpace(args[0]))
		if err != nil {
			return fmt.Errorf("invalid phase %q", args[0])
		}
		o := model.PhaseOverride{Phase: n, SubPhase: strings.TrimSpace(strings.ToLower(args[1]))}
		if !service.ValidOverride(o) {
			return fmt.Errorf("unknown phase %d/%s (see `coach phase plan`)", o.Phase, o.SubPhase)
		}
		return withLedger(true, func(_ *sql.DB, l *service.Ledger) error {
			l.SetPhaseOverride(&o)
			logr().Infow("set phase override", "phase", o.Phase, "sub_phase", o.SubPhase)
			fmt.Fprintf(cmd.OutOrStdout(), "Phase override set to %d/%s\n", o.Phase, o.SubPhase)
			return nil
		})
	},
}

var phaseOverrideClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Return to calendar-based phase resolution",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(true, func(_ *sql.DB, l *service.Ledger) error {
			l.SetPhaseOverride(nil)
			logr().Infow("cleared phase override")
			fmt.Fprintln(cmd.OutOrStdout(), "Phase override cleared")
			return nil
		})
	},
}

var phasePlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the whole program with targets for the current profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(false, func(_ *sql.DB, l *service.Ledger) error {
			plan := service.ProgramPlan(l.Profile(), l.CurrentPhase(clock()))
			if phaseJSON {
				return printJSON(cmd.OutOrStdout(), plan)
			}
			out := cmd.OutOrStdout()
			for _, p := range plan {
				fmt.Fprintf(out, "%s\n", p.Name)
				fmt.Fprintf(out, "  Cardio: %d x %s | Training: %s | Focus: %s\n", p.Guidance.Cardio.Sessions, p.Guidance.Cardio.Type, p.Guidance.Training, p.Guidance.Focus)
				for _, s := range p.SubPhases {
					marker := " "
					if s.Current {
						marker = "*"
					}
					fmt.Fprintf(out, "  %s %d/%s  %s\n", marker, p.Phase, s.SubPhase, s.Duration)
					fmt.Fprintf(out, "      %s: %d kcal | P %.0fg | F %.0fg | C %.0fg\n", s.Name, s.Targets.Calories, s.Targets.Protein, s.Targets.Fat, s.Targets.Carbs)
				}
			}
			return nil
		})
	},
}

var phaseContextCmd = &cobra.Command{
	Use:   "context",
	Short: "Show cardio and training guidance for the current phase",
	RunE: func(cmd *cobra.Command, args []string) error {
		at, err := parseDayOrNow(phaseDate)
		if err != nil {
			return err
		}
		return withLedger(false, func(_ *sql.DB, l *service.Ledger) error {
			g := service.PhaseContext(l.CurrentPhase(at))
			if phaseJSON {
				return printJSON(cmd.OutOrStdout(), g)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Cardio: %d sessions %s\n", g.Cardio.Sessions, g.Cardio.Type)
			fmt.Fprintf(out, "Training: %s\n", g.Training)
			fmt.Fprintf(out, "Focus: %s\n", g.Focus)
			return nil
		})
	},
}

func printTargets(out io.Writer, t model.MacroTargets) {
	fmt.Fprintf(out, "Targets: %d kcal | P %.0fg | F %.0fg | C %.0fg\n", t.Calories, t.Protein, t.Fat, t.Carbs)
}

var reverseWeekCmd = &cobra.Command{
	Use:   "reverse-week",
	Short: "Manage the reverse diet week counter",
}

var reverseWeekNextCmd = &cobra.Command{
	Use:   "next",
	Short: "Advance the reverse diet by one week",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(true, func(_ *sql.DB, l *service.Ledger) error {
			l.IncrementReverseWeek()
			week := l.Profile().ReverseWeek
			logr().Infow("advanced reverse diet week", "week", week)
			fmt.Fprintf(cmd.OutOrStdout(), "Reverse diet week is now %d\n", week)
			if p := l.CurrentPhase(clock()); p != nil && p.SubPhase == service.SubPhaseDietaInversa {
				targets, _ := l.CurrentMacros(clock())
				printTargets(cmd.OutOrStdout(), targets)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(phaseCmd, reverseWeekCmd)
	phaseCmd.AddCommand(phaseCurrentCmd, phaseOverrideCmd, phasePlanCmd, phaseContextCmd)
	phaseOverrideCmd.AddCommand(phaseOverrideSetCmd, phaseOverrideClearCmd)
	reverseWeekCmd.AddCommand(reverseWeekNextCmd)

	for _, c := range []*cobra.Command{phaseCurrentCmd, phaseContextCmd} {
		c.Flags().StringVar(&phaseDate, "date", "", "Date YYYY-MM-DD (default today)")
	}
	for _, c := range []*cobra.Command{phaseCurrentCmd, phasePlanCmd, phaseContextCmd} {
		c.Flags().BoolVar(&phaseJSON, "json", false, "Output as JSON")
	}
}
