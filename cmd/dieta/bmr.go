package dieta

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/FelipeFrancca/dieta-facil-sub000/internal/service"
)

var (
	bmrSex      string
	bmrAge      int
	bmrHeight   float64
	bmrWeight   float64
	bmrActivity string
	bmrFormula  string

	bmrProteinPct float64
	bmrCarbsPct   float64
	bmrFatPct     float64
)

var bmrCmd = &cobra.Command{
	Use:   "bmr",
	Short: "Compute basal metabolic rate, daily expenditure, and macro targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		sex := service.Sex(bmrSex)

		var bmr float64
		var err error
		switch bmrFormula {
		case "mifflin":
			bmr, err = service.MifflinStJeorBMR(sex, bmrAge, bmrHeight, bmrWeight)
		case "harris":
			bmr, err = service.HarrisBenedictBMR(sex, bmrAge, bmrHeight, bmrWeight)
		default:
			return fmt.Errorf("unknown formula %q (expected mifflin or harris)", bmrFormula)
		}
		if err != nil {
			return err
		}

		tdee, err := service.TDEE(bmr, bmrActivity)
		if err != nil {
			return err
		}

		targets, err := service.SuggestMacros(int(math.Round(tdee)), bmrProteinPct, bmrCarbsPct, bmrFatPct)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "BMR\t%d kcal/day\n", int(math.Round(bmr)))
		fmt.Fprintf(out, "TDEE\t%d kcal/day (%s)\n", int(math.Round(tdee)), bmrActivity)
		fmt.Fprintf(out, "Targets\tP %.1fg\tC %.1fg\tF %.1fg\n", targets.ProteinG, targets.CarbsG, targets.FatG)
		return nil
	},
}

func init() {
	bmrCmd.Flags().StringVar(&bmrSex, "sex", "", "male or female")
	bmrCmd.Flags().IntVar(&bmrAge, "age", 0, "Age in years")
	bmrCmd.Flags().Float64Var(&bmrHeight, "height-cm", 0, "Height in centimeters")
	bmrCmd.Flags().Float64Var(&bmrWeight, "weight-kg", 0, "Weight in kilograms")
	bmrCmd.Flags().StringVar(&bmrActivity, "activity", "sedentary", "Activity level: sedentary, light, moderate, active, very_active")
	bmrCmd.Flags().StringVar(&bmrFormula, "formula", "mifflin", "BMR formula: mifflin or harris")
	bmrCmd.Flags().Float64Var(&bmrProteinPct, "protein-pct", 30, "Protein share of calories")
	bmrCmd.Flags().Float64Var(&bmrCarbsPct, "carbs-pct", 40, "Carb share of calories")
	bmrCmd.Flags().Float64Var(&bmrFatPct, "fat-pct", 30, "Fat share of calories")
	_ = bmrCmd.MarkFlagRequired("sex")
	_ = bmrCmd.MarkFlagRequired("age")
	_ = bmrCmd.MarkFlagRequired("height-cm")
	_ = bmrCmd.MarkFlagRequired("weight-kg")
	rootCmd.AddCommand(bmrCmd)
}
