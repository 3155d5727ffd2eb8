package dieta

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FelipeFrancca/dieta-facil-sub000/internal/model"
	"github.com/FelipeFrancca/dieta-facil-sub000/internal/service"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Manage the food reference database",
}

var (
	foodName     string
	foodCalories float64
	foodProtein  float64
	foodCarbs    float64
	foodFat      float64
	foodUnits    []string

	foodListQuery string
	foodListLimit int
)

var foodAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a food with its per-100g nutrient profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		units, err := parseUnitFlags(foodUnits)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.CreateFood(sqldb, service.CreateFoodInput{
				Name:     foodName,
				Calories: foodCalories,
				ProteinG: foodProtein,
				CarbsG:   foodCarbs,
				FatG:     foodFat,
				Units:    units,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added food %d\n", id)
			return nil
		})
	},
}

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List foods",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			foods, err := service.ListFoods(sqldb, service.ListFoodsFilter{
				Query: foodListQuery,
				Limit: foodListLimit,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "NAME\tKCAL/100G\tP\tC\tF\tUNITS\tSOURCE")
			for _, f := range foods {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.0f\t%.1f\t%.1f\t%.1f\t%d\t%s\n",
					f.Name, f.Calories, f.ProteinG, f.CarbsG, f.FatG, len(f.Units), f.Source)
			}
			return nil
		})
	},
}

var foodUnitsCmd = &cobra.Command{
	Use:   "units <name>",
	Short: "Show the selectable unit catalog for a food",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			food, err := service.FoodByName(sqldb, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "KIND\tDESCRIPTION\tGRAMS/UNIT")
			for _, opt := range service.ResolveUnits(*food) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.1f\n", opt.Kind, opt.Description, opt.GramsPerUnit)
			}
			return nil
		})
	},
}

var foodRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a food (saved plan entries keep their snapshots)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteFood(sqldb, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed food %s\n", strings.TrimSpace(args[0]))
			return nil
		})
	},
}

// parseUnitFlags parses repeated --unit kind:description:grams flags.
func parseUnitFlags(raw []string) ([]model.UnitDefinition, error) {
	units := make([]model.UnitDefinition, 0, len(raw))
	for _, spec := range raw {
		parts := strings.SplitN(spec, ":", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid --unit %q (expected kind:description:grams)", spec)
		}
		var grams float64
		if _, err := fmt.Sscanf(strings.TrimSpace(parts[2]), "%f", &grams); err != nil {
			return nil, fmt.Errorf("invalid --unit grams in %q", spec)
		}
		units = append(units, model.UnitDefinition{
			Kind:         strings.TrimSpace(parts[0]),
			Description:  strings.TrimSpace(parts[1]),
			GramsPerUnit: grams,
		})
	}
	return units, nil
}

func init() {
	foodAddCmd.Flags().StringVar(&foodName, "name", "", "Food name")
	foodAddCmd.Flags().Float64Var(&foodCalories, "kcal", 0, "Calories per 100g")
	foodAddCmd.Flags().Float64Var(&foodProtein, "protein", 0, "Protein grams per 100g")
	foodAddCmd.Flags().Float64Var(&foodCarbs, "carbs", 0, "Carb grams per 100g")
	foodAddCmd.Flags().Float64Var(&foodFat, "fat", 0, "Fat grams per 100g")
	foodAddCmd.Flags().StringArrayVar(&foodUnits, "unit", nil, "Discrete unit as kind:description:grams (repeatable)")
	_ = foodAddCmd.MarkFlagRequired("name")

	foodListCmd.Flags().StringVar(&foodListQuery, "query", "", "Filter by name substring")
	foodListCmd.Flags().IntVar(&foodListLimit, "limit", 0, "Maximum rows")

	foodCmd.AddCommand(foodAddCmd)
	foodCmd.AddCommand(foodListCmd)
	foodCmd.AddCommand(foodUnitsCmd)
	foodCmd.AddCommand(foodRemoveCmd)
	rootCmd.AddCommand(foodCmd)
}
