package coach

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/saadjs/coach-cli/internal/model"
	"github.com/saadjs/coach-cli/internal/service"
	"github.com/spf13/cobra"
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Log and review meal entries",
}

var (
	mealDate     string
	mealSlot     string
	mealName     string
	mealGrams    float64
	mealCalories int
	mealProtein  float64
	mealFat      float64
	mealCarbs    float64
	mealJSON     bool
	mealUnit     string
)

var mealAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a manual meal entry with explicit values",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, slot, err := mealTarget()
		if err != nil {
			return err
		}
		entry := model.MealEntry{FoodName: mealName, Quantity: mealGrams, Calories: mealCalories, Protein: mealProtein, Fat: mealFat, Carbs: mealCarbs}
		if !cmd.Flags().Changed("calories") {
			entry.Calories = service.FoodCaloriesFromMacros(mealProtein, mealFat, mealCarbs)
		}
		return withLedger(true, func(_ *sql.DB, l *service.Ledger) error {
			added, err := l.AddMealEntry(date, slot, entry)
			if err != nil {
				return err
			}
			logr().Infow("added meal entry", "date", date, "slot", slot, "id", added.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s on %s (%s)\n", added.FoodName, slot, date, added.ID)
			return nil
		})
	},
}

var mealLogCmd = &cobra.Command{
	Use:   "log <food> <amount>",
	Short: "Log an amount of a catalog food (grams unless --unit is set)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, slot, err := mealTarget()
		if err != nil {
			return err
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(args[1]), 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q", args[1])
		}
		grams, err := service.ToGrams(amount, mealUnit)
		if err != nil {
			return err
		}
		return withLedger(true, func(_ *sql.DB, l *service.Ledger) error {
			added, err := l.LogFood(date, slot, args[0], grams)
			if err != nil {
				return err
			}
			logr().Infow("logged food", "date", date, "slot", slot, "id", added.ID, "food", added.FoodName)
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %.0f g %s to %s on %s: %d kcal | P %.1fg | F %.1fg | C %.1fg (%s)\n",
				added.Quantity, added.FoodName, slot, date, added.Calories, added.Protein, added.Fat, added.Carbs, added.ID)
			return nil
		})
	},
}

var mealRemoveCmd = &cobra.Command{
	Use:   "remove <entry-id>",
	Short: "Remove a meal entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, slot, err := mealTarget()
		if err != nil {
			return err
		}
		return withLedger(true, func(_ *sql.DB, l *service.Ledger) error {
			if !l.RemoveMealEntry(date, slot, args[0]) {
				fmt.Fprintf(cmd.OutOrStdout(), "No entry %s in %s on %s\n", args[0], slot, date)
				return nil
			}
			logr().Infow("removed meal entry", "date", date, "slot", slot, "id", args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Removed entry %s\n", args[0])
			return nil
		})
	},
}

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List meal entries for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := dayOrToday(mealDate)
		if err != nil {
			return err
		}
		return withLedger(false, func(_ *sql.DB, l *service.Ledger) error {
			day, _ := l.DayMeals(date)
			if mealJSON {
				return printJSON(cmd.OutOrStdout(), day)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s\n", date)
			fmt.Fprintln(out, "SLOT\tID\tFOOD\tGRAMS\tKCAL\tP\tF\tC")
			for _, slot := range model.MealSlots {
				for _, e := range day.Entries(slot) {
					fmt.Fprintf(out, "%s\t%s\t%s\t%.0f\t%d\t%.1f\t%.1f\t%.1f\n", slot, e.ID, e.FoodName, e.Quantity, e.Calories, e.Protein, e.Fat, e.Carbs)
				}
			}
			totals := l.DailyProgress(date)
			fmt.Fprintf(out, "Total: %d kcal | P %.1fg | F %.1fg | C %.1fg\n", totals.Calories, totals.Protein, totals.Fat, totals.Carbs)
			return nil
		})
	},
}

func mealTarget() (string, model.MealSlot, error) {
	date, err := dayOrToday(mealDate)
	if err != nil {
		return "", "", err
	}
	slot, err := service.ParseMealSlot(mealSlot)
	if err != nil {
		return "", "", err
	}
	return date, slot, nil
}

func init() {
	rootCmd.AddCommand(mealCmd)
	mealCmd.AddCommand(mealAddCmd, mealLogCmd, mealRemoveCmd, mealListCmd)

	for _, c := range []*cobra.Command{mealAddCmd, mealLogCmd, mealRemoveCmd, mealListCmd} {
		c.Flags().StringVar(&mealDate, "date", "", "Date YYYY-MM-DD (default today)")
	}
	for _, c := range []*cobra.Command{mealAddCmd, mealLogCmd, mealRemoveCmd} {
		c.Flags().StringVar(&mealSlot, "slot", "", "Meal slot: breakfast, lunch, dinner or snacks")
		_ = c.MarkFlagRequired("slot")
	}
	mealAddCmd.Flags().StringVar(&mealName, "name", "", "Food name")
	mealAddCmd.Flags().Float64Var(&mealGrams, "grams", 0, "Quantity in grams")
	mealAddCmd.Flags().IntVar(&mealCalories, "calories", 0, "Calories (default derived from macros)")
	mealAddCmd.Flags().Float64Var(&mealProtein, "protein", 0, "Protein grams")
	mealAddCmd.Flags().Float64Var(&mealFat, "fat", 0, "Fat grams")
	mealAddCmd.Flags().Float64Var(&mealCarbs, "carbs", 0, "Carb grams")
	_ = mealAddCmd.MarkFlagRequired("name")
	_ = mealAddCmd.MarkFlagRequired("grams")
	mealLogCmd.Flags().StringVar(&mealUnit, "unit", "g", "Amount unit: mg, g, kg, oz or lb")
	mealListCmd.Flags().BoolVar(&mealJSON, "json", false, "Output as JSON")
}
