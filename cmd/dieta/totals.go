package dieta

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FelipeFrancca/dieta-facil-sub000/internal/model"
	"github.com/FelipeFrancca/dieta-facil-sub000/internal/service"
)

var (
	totalsDay  string
	totalsJSON bool
)

var totalsCmd = &cobra.Command{
	Use:   "totals [plan]",
	Short: "Show day or week macro totals for a plan",
	Long:  "Totals count only the primary alternative of each meal slot and are always recomputed from the stored entries. Falls back to the configured default_plan when no plan is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			name, err := resolvePlanName(sqldb, args)
			if err != nil {
				return err
			}
			plan, err := service.LoadPlan(sqldb, name)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if totalsDay != "" {
				day, err := parseDayArg(totalsDay)
				if err != nil {
					return err
				}
				total := service.DayTotal(plan, day)
				if totalsJSON {
					return printTotalJSON(cmd, total)
				}
				fmt.Fprintf(out, "%s\t%d kcal\tP %.1f\tC %.1f\tF %.1f\t%dg\n",
					day, total.Calories, total.ProteinG, total.CarbsG, total.FatG, total.Grams)
				return nil
			}

			week := service.WeekTotal(plan)
			if totalsJSON {
				return printTotalJSON(cmd, week)
			}
			fmt.Fprintln(out, "DAY\tKCAL\tP\tC\tF\tGRAMS")
			for _, day := range model.WeekDays {
				t := service.DayTotal(plan, day)
				fmt.Fprintf(out, "%s\t%d\t%.1f\t%.1f\t%.1f\t%d\n",
					day, t.Calories, t.ProteinG, t.CarbsG, t.FatG, t.Grams)
			}
			fmt.Fprintf(out, "week\t%d\t%.1f\t%.1f\t%.1f\t%d\n",
				week.Calories, week.ProteinG, week.CarbsG, week.FatG, week.Grams)
			return nil
		})
	},
}

func printTotalJSON(cmd *cobra.Command, total model.NutrientTotal) error {
	b, err := json.MarshalIndent(total, "", "  ")
	if err != nil {
		return fmt.Errorf("encode totals: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}

func init() {
	totalsCmd.Flags().StringVar(&totalsDay, "day", "", "Limit totals to one day")
	totalsCmd.Flags().BoolVar(&totalsJSON, "json", false, "Print totals as JSON")
	rootCmd.AddCommand(totalsCmd)
}
