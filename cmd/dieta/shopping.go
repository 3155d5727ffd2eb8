package dieta

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FelipeFrancca/dieta-facil-sub000/internal/service"
)

var (
	shoppingJSON    bool
	shoppingDetails bool
	shoppingNoTips  bool
)

var shoppingCmd = &cobra.Command{
	Use:   "shopping [plan]",
	Short: "Build the shopping list for a plan",
	Long:  "Aggregates the primary alternative of every meal into purchase quantities, converting prepared weights to raw weights by inferred preparation. Falls back to the configured default_plan when no plan is given.",
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
			items := service.BuildShoppingList(service.PlanMeals(plan))
			out := cmd.OutOrStdout()

			if shoppingJSON {
				b, err := json.MarshalIndent(items, "", "  ")
				if err != nil {
					return fmt.Errorf("encode shopping list: %w", err)
				}
				fmt.Fprintln(out, string(b))
				return nil
			}

			fmt.Fprintln(out, "ITEM\tBUY\tPREPARATIONS")
			for _, item := range items {
				fmt.Fprintf(out, "%s\t%s\t%s\n", item.PurchaseName, item.DisplayQuantity, strings.Join(item.Preparations, ", "))
				if !shoppingDetails {
					continue
				}
				for _, src := range item.Sources {
					fmt.Fprintf(out, "    %s\t%.0fg eaten (%s)\t%.0fg to buy\n",
						src.MealName, src.ConsumedGrams, src.Preparation, src.PurchaseGrams)
				}
			}

			if shoppingNoTips {
				return nil
			}
			for _, tip := range service.BuildTips(items) {
				fmt.Fprintf(out, "tip: %s\n", tip)
			}
			return nil
		})
	},
}

func init() {
	shoppingCmd.Flags().BoolVar(&shoppingJSON, "json", false, "Print the list as JSON")
	shoppingCmd.Flags().BoolVar(&shoppingDetails, "details", false, "Show the per-meal breakdown of each item")
	shoppingCmd.Flags().BoolVar(&shoppingNoTips, "no-tips", false, "Skip advisory tips")
	rootCmd.AddCommand(shoppingCmd)
}
