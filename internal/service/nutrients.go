package service

import (
	"math"

	"github.com/FelipeFrancca/dieta-facil-sub000/internal/model"
)

// ComputeNutrients scales a food's per-100g profile to the mass implied by
// (quantity, unitKind). A zero or invalid quantity yields the zero total.
// Calories and grams are rounded to integers, macro grams to one decimal.
func ComputeNutrients(food model.FoodDefinition, quantity float64, unitKind string, catalog []model.UnitOption) model.NutrientTotal {
	grams := GramsForQuantity(quantity, unitKind, catalog)
	if grams <= 0 {
		return model.NutrientTotal{}
	}
	factor := grams / 100
	return model.NutrientTotal{
		Calories: int(math.Round(food.Calories * factor)),
		ProteinG: roundTenth(food.ProteinG * factor),
		CarbsG:   roundTenth(food.CarbsG * factor),
		FatG:     roundTenth(food.FatG * factor),
		Grams:    int(math.Round(grams)),
	}
}

// EntryNutrients computes the total for a single meal entry from its
// snapshotted food profile.
func EntryNutrients(entry model.FoodEntry) model.NutrientTotal {
	return ComputeNutrients(entry.Food, entry.Quantity, entry.Unit, ResolveUnits(entry.Food))
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
