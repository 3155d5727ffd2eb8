package service

import (
	"github.com/FelipeFrancca/dieta-facil-sub000/internal/model"
)

// SumEntries folds EntryNutrients over a list of meal entries. Addition is
// commutative, so entry order never affects the result.
func SumEntries(entries []model.FoodEntry) model.NutrientTotal {
	total := model.NutrientTotal{}
	for _, e := range entries {
		total = total.Add(EntryNutrients(e))
	}
	return total
}

// DayTotal sums the primary (first) alternative of every slot in a day.
// Cached alternative macros are ignored; totals are always recomputed from
// the entries. Missing days and empty slots contribute zero.
func DayTotal(plan model.WeeklyPlan, day model.Day) model.NutrientTotal {
	total := model.NutrientTotal{}
	slots, ok := plan.Days[day]
	if !ok {
		return total
	}
	for _, slot := range model.MealSlots {
		alts := slots[slot]
		if len(alts) == 0 {
			continue
		}
		total = total.Add(SumEntries(alts[0].FoodEntries))
	}
	return total
}

// WeekTotal sums DayTotal over the seven fixed plan days.
func WeekTotal(plan model.WeeklyPlan) model.NutrientTotal {
	total := model.NutrientTotal{}
	for _, day := range model.WeekDays {
		total = total.Add(DayTotal(plan, day))
	}
	return total
}

// RecomputeAllCachedMacros returns a copy of the plan with every
// alternative's cached macros recomputed from its entries. Entries and
// alternative ordering are untouched, so running it twice is the same as
// running it once.
func RecomputeAllCachedMacros(plan model.WeeklyPlan) model.WeeklyPlan {
	out := model.WeeklyPlan{Name: plan.Name}
	if plan.Days == nil {
		return out
	}
	out.Days = make(map[model.Day]map[model.Slot][]model.MealAlternative, len(plan.Days))
	for day, slots := range plan.Days {
		outSlots := make(map[model.Slot][]model.MealAlternative, len(slots))
		for slot, alts := range slots {
			outAlts := make([]model.MealAlternative, len(alts))
			for i, alt := range alts {
				alt.FoodEntries = append([]model.FoodEntry(nil), alt.FoodEntries...)
				alt.ComputedMacros = SumEntries(alt.FoodEntries)
				outAlts[i] = alt
			}
			outSlots[slot] = outAlts
		}
		out.Days[day] = outSlots
	}
	return out
}
