package dieta

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FelipeFrancca/dieta-facil-sub000/internal/model"
	"github.com/FelipeFrancca/dieta-facil-sub000/internal/service"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage weekly meal plans",
}

var planCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create an empty weekly plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.CreatePlan(sqldb, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created plan %d\n", id)
			return nil
		})
	},
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			plans, err := service.ListPlans(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tUPDATED")
			for _, p := range plans {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", p.ID, p.Name, p.UpdatedAt.Local().Format("2006-01-02 15:04"))
			}
			return nil
		})
	},
}

var planRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Delete a stored plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeletePlan(sqldb, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed plan %s\n", args[0])
			return nil
		})
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a plan's meals and alternatives",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			plan, err := service.LoadPlan(sqldb, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, day := range model.WeekDays {
				slots, ok := plan.Days[day]
				if !ok || len(slots) == 0 {
					continue
				}
				fmt.Fprintf(out, "%s\n", day)
				for _, slot := range model.MealSlots {
					alts := slots[slot]
					if len(alts) == 0 {
						continue
					}
					fmt.Fprintf(out, "  %s\n", slot)
					for i, alt := range alts {
						marker := " "
						if i == 0 {
							marker = "*"
						}
						macros := service.SumEntries(alt.FoodEntries)
						fmt.Fprintf(out, "  %s %s\t%s\t%d kcal  P %.1f  C %.1f  F %.1f  (%dg)\n",
							marker, alt.ID, alt.Name, macros.Calories, macros.ProteinG, macros.CarbsG, macros.FatG, macros.Grams)
						for _, e := range alt.FoodEntries {
							fmt.Fprintf(out, "      %s\t%s\t%.1f %s\n", e.ID, e.Food.Name, e.Quantity, e.Unit)
						}
					}
				}
			}
			return nil
		})
	},
}

var altName string

var planAddAltCmd = &cobra.Command{
	Use:   "add-alt <plan> <day> <slot>",
	Short: "Add a meal alternative to a slot",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDayArg(args[1])
		if err != nil {
			return err
		}
		slot, err := parseSlotArg(args[2])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			return service.MutatePlan(sqldb, args[0], func(plan model.WeeklyPlan) (model.WeeklyPlan, error) {
				return service.AddAlternative(plan, day, slot, model.MealAlternative{Name: altName})
			})
		})
	},
}

var planRemoveAltCmd = &cobra.Command{
	Use:   "remove-alt <plan> <day> <slot> <alt-id>",
	Short: "Remove a meal alternative",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutateAlt(args, func(plan model.WeeklyPlan, day model.Day, slot model.Slot, altID string) (model.WeeklyPlan, error) {
			return service.RemoveAlternative(plan, day, slot, altID)
		})
	},
}

var planDupAltCmd = &cobra.Command{
	Use:   "dup-alt <plan> <day> <slot> <alt-id>",
	Short: "Duplicate a meal alternative for independent editing",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutateAlt(args, func(plan model.WeeklyPlan, day model.Day, slot model.Slot, altID string) (model.WeeklyPlan, error) {
			return service.DuplicateAlternative(plan, day, slot, altID)
		})
	},
}

var planPromoteCmd = &cobra.Command{
	Use:   "promote <plan> <day> <slot> <alt-id>",
	Short: "Make an alternative the primary one for totals",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutateAlt(args, func(plan model.WeeklyPlan, day model.Day, slot model.Slot, altID string) (model.WeeklyPlan, error) {
			return service.PromoteAlternative(plan, day, slot, altID)
		})
	},
}

var (
	addFoodName string
	addFoodQty  float64
	addFoodUnit string
	addFoodAlt  string
)

var planAddFoodCmd = &cobra.Command{
	Use:   "add-food <plan> <day> <slot>",
	Short: "Add a food to a slot's primary (or chosen) alternative",
	Long:  "Snapshots the food's current profile into the plan. Without --alt the food goes to the slot's primary alternative; an empty slot gets one created.",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDayArg(args[1])
		if err != nil {
			return err
		}
		slot, err := parseSlotArg(args[2])
		if err != nil {
			return err
		}
		if addFoodQty <= 0 {
			return fmt.Errorf("--qty must be > 0")
		}
		return withDB(func(sqldb *sql.DB) error {
			food, err := service.FoodByName(sqldb, addFoodName)
			if err != nil {
				return err
			}
			if err := validateUnitKind(*food, addFoodUnit); err != nil {
				return err
			}
			entry := service.NewFoodEntry(*food, addFoodQty, addFoodUnit)
			return service.MutatePlan(sqldb, args[0], func(plan model.WeeklyPlan) (model.WeeklyPlan, error) {
				altID := addFoodAlt
				if altID == "" {
					alts := plan.Days[day][slot]
					if len(alts) == 0 {
						withAlt, err := service.AddAlternative(plan, day, slot, model.MealAlternative{Name: "opcao 1"})
						if err != nil {
							return plan, err
						}
						plan = withAlt
					}
					altID = plan.Days[day][slot][0].ID
				}
				return service.AddEntryToAlternative(plan, day, slot, altID, entry)
			})
		})
	},
}

var removeFoodAlt string

var planRemoveFoodCmd = &cobra.Command{
	Use:   "remove-food <plan> <day> <slot> <entry-id>",
	Short: "Remove a food entry from a slot's primary (or chosen) alternative",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDayArg(args[1])
		if err != nil {
			return err
		}
		slot, err := parseSlotArg(args[2])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			return service.MutatePlan(sqldb, args[0], func(plan model.WeeklyPlan) (model.WeeklyPlan, error) {
				altID := removeFoodAlt
				if altID == "" {
					alts := plan.Days[day][slot]
					if len(alts) == 0 {
						return plan, fmt.Errorf("slot %s/%s is empty", day, slot)
					}
					altID = alts[0].ID
				}
				return service.RemoveEntryFromAlternative(plan, day, slot, altID, args[3])
			})
		})
	},
}

var planCopyDayCmd = &cobra.Command{
	Use:   "copy-day <plan> <from> <to>",
	Short: "Copy one day's meals over another day",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := parseDayArg(args[1])
		if err != nil {
			return err
		}
		to, err := parseDayArg(args[2])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			return service.MutatePlan(sqldb, args[0], func(plan model.WeeklyPlan) (model.WeeklyPlan, error) {
				return service.CopyDay(plan, from, to)
			})
		})
	},
}

var planRepairCmd = &cobra.Command{
	Use:   "repair <name>",
	Short: "Recompute every cached alternative total in a plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.RepairPlan(sqldb, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Repaired plan %s\n", args[0])
			return nil
		})
	},
}

// validateUnitKind rejects unit kinds absent from the food's catalog at the
// CLI boundary. The engine itself tolerates unknown kinds as 1:1 grams so
// stored plans keep totalling, but new entries should not be mis-specified.
func validateUnitKind(food model.FoodDefinition, kind string) error {
	options := service.ResolveUnits(food)
	for _, opt := range options {
		if opt.Kind == kind {
			return nil
		}
	}
	kinds := make([]string, len(options))
	for i, opt := range options {
		kinds[i] = opt.Kind
	}
	return fmt.Errorf("food %q has no unit %q (available: %s)", food.Name, kind, strings.Join(kinds, ", "))
}

func mutateAlt(args []string, op func(model.WeeklyPlan, model.Day, model.Slot, string) (model.WeeklyPlan, error)) error {
	day, err := parseDayArg(args[1])
	if err != nil {
		return err
	}
	slot, err := parseSlotArg(args[2])
	if err != nil {
		return err
	}
	return withDB(func(sqldb *sql.DB) error {
		return service.MutatePlan(sqldb, args[0], func(plan model.WeeklyPlan) (model.WeeklyPlan, error) {
			return op(plan, day, slot, args[3])
		})
	})
}

func init() {
	planAddAltCmd.Flags().StringVar(&altName, "name", "", "Alternative display name")

	planAddFoodCmd.Flags().StringVar(&addFoodName, "food", "", "Food name from the reference database")
	planAddFoodCmd.Flags().Float64Var(&addFoodQty, "qty", 0, "Quantity in the chosen unit")
	planAddFoodCmd.Flags().StringVar(&addFoodUnit, "unit", "grams", "Unit kind from the food's catalog")
	planAddFoodCmd.Flags().StringVar(&addFoodAlt, "alt", "", "Target alternative id (defaults to the primary)")
	_ = planAddFoodCmd.MarkFlagRequired("food")
	_ = planAddFoodCmd.MarkFlagRequired("qty")

	planRemoveFoodCmd.Flags().StringVar(&removeFoodAlt, "alt", "", "Target alternative id (defaults to the primary)")

	planCmd.AddCommand(planCreateCmd)
	planCmd.AddCommand(planListCmd)
	planCmd.AddCommand(planRemoveCmd)
	planCmd.AddCommand(planShowCmd)
	planCmd.AddCommand(planAddAltCmd)
	planCmd.AddCommand(planRemoveAltCmd)
	planCmd.AddCommand(planDupAltCmd)
	planCmd.AddCommand(planPromoteCmd)
	planCmd.AddCommand(planAddFoodCmd)
	planCmd.AddCommand(planRemoveFoodCmd)
	planCmd.AddCommand(planCopyDayCmd)
	planCmd.AddCommand(planRepairCmd)
	rootCmd.AddCommand(planCmd)
}
