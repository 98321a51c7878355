package coach

import (
	"database/sql"
	"fmt"

	"github.com/saadjs/coach-cli/internal/model"
	"github.com/saadjs/coach-cli/internal/service"
	"github.com/spf13/cobra"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Manage the food catalog (values per 100 g)",
}

var (
	foodName     string
	foodCalories float64
	foodProtein  float64
	foodFat      float64
	foodCarbs    float64
	foodJSON     bool
)

var foodAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a food to the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.FoodInput{Name: args[0], Calories: foodCalories, Protein: foodProtein, Fat: foodFat, Carbs: foodCarbs}
		if !cmd.Flags().Changed("calories") {
			in.Calories = float64(service.FoodCaloriesFromMacros(foodProtein, foodFat, foodCarbs))
		}
		return withLedger(true, func(_ *sql.DB, l *service.Ledger) error {
			item, err := l.AddFood(in)
			if err != nil {
				return err
			}
			logr().Infow("added food", "id", item.ID, "name", item.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Added food %s (%s)\n", item.Name, item.ID)
			return nil
		})
	},
}

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog foods",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(false, func(_ *sql.DB, l *service.Ledger) error {
			foods := l.Foods()
			if foodJSON {
				return printJSON(cmd.OutOrStdout(), foods)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tKCAL\tP\tF\tC")
			for _, f := range foods {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.0f\t%.1f\t%.1f\t%.1f\n", f.ID, f.Name, f.Calories, f.Protein, f.Fat, f.Carbs)
			}
			return nil
		})
	},
}

var foodUpdateCmd = &cobra.Command{
	Use:   "update <id-or-name>",
	Short: "Update a catalog food (entries already logged keep their values)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(true, func(_ *sql.DB, l *service.Ledger) error {
			current, ok := l.FindFood(args[0])
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "No food matches %q\n", args[0])
				return nil
			}
			in := mergeFoodFlags(cmd, current)
			if _, err := l.UpdateFood(current.ID, in); err != nil {
				return err
			}
			logr().Infow("updated food", "id", current.ID, "name", in.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Updated food %s (%s)\n", in.Name, current.ID)
			return nil
		})
	},
}

var foodDeleteCmd = &cobra.Command{
	Use:   "delete <id-or-name>",
	Short: "Delete a catalog food",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(true, func(_ *sql.DB, l *service.Ledger) error {
			f, ok := l.FindFood(args[0])
			if !ok || !l.DeleteFood(f.ID) {
				fmt.Fprintf(cmd.OutOrStdout(), "No food matches %q\n", args[0])
				return nil
			}
			logr().Infow("deleted food", "id", f.ID, "name", f.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted food %s (%s)\n", f.Name, f.ID)
			return nil
		})
	},
}

func mergeFoodFlags(cmd *cobra.Command, current model.FoodItem) service.FoodInput {
	in := service.FoodInput{Name: current.Name, Calories: current.Calories, Protein: current.Protein, Fat: current.Fat, Carbs: current.Carbs}
	flags := cmd.Flags()
	if flags.Changed("name") {
		in.Name = foodName
	}
	if flags.Changed("calories") {
		in.Calories = foodCalories
	}
	if flags.Changed("protein") {
		in.Protein = foodProtein
	}
	if flags.Changed("fat") {
		in.Fat = foodFat
	}
	if flags.Changed("carbs") {
		in.Carbs = foodCarbs
	}
	return in
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodAddCmd, foodListCmd, foodUpdateCmd, foodDeleteCmd)

	for _, c := range []*cobra.Command{foodAddCmd, foodUpdateCmd} {
		c.Flags().Float64Var(&foodCalories, "calories", 0, "Calories per 100 g (default derived from macros)")
		c.Flags().Float64Var(&foodProtein, "protein", 0, "Protein grams per 100 g")
		c.Flags().Float64Var(&foodFat, "fat", 0, "Fat grams per 100 g")
		c.Flags().Float64Var(&foodCarbs, "carbs", 0, "Carb grams per 100 g")
	}
	foodUpdateCmd.Flags().StringVar(&foodName, "name", "", "New food name")
	foodListCmd.Flags().BoolVar(&foodJSON, "json", false, "Output as JSON")
}
