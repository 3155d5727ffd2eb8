package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/FelipeFrancca/dieta-facil-sub000/internal/model"
)

// NewWeeklyPlan returns an empty named plan. Days and slots materialize
// lazily as alternatives are added; absent ones count as zero everywhere.
func NewWeeklyPlan(name string) model.WeeklyPlan {
	return model.WeeklyPlan{
		Name: strings.TrimSpace(name),
		Days: map[model.Day]map[model.Slot][]model.MealAlternative{},
	}
}

// AddAlternative appends an alternative to a meal slot, assigning it an id
// when missing and recomputing its cached macros from its entries. The
// input plan is not mutated.
func AddAlternative(plan model.WeeklyPlan, day model.Day, slot model.Slot, alt model.MealAlternative) (model.WeeklyPlan, error) {
	if err := validateDaySlot(day, slot); err != nil {
		return plan, err
	}
	out := clonePlan(plan)
	if alt.ID == "" {
		alt.ID = uuid.NewString()
	}
	alt.FoodEntries = append([]model.FoodEntry(nil), alt.FoodEntries...)
	alt.ComputedMacros = SumEntries(alt.FoodEntries)
	if out.Days[day] == nil {
		out.Days[day] = map[model.Slot][]model.MealAlternative{}
	}
	out.Days[day][slot] = append(out.Days[day][slot], alt)
	return out, nil
}

// UpdateAlternative replaces an alternative's name and entries, keeping
// its position, and recomputes its cached macros.
func UpdateAlternative(plan model.WeeklyPlan, day model.Day, slot model.Slot, altID, name string, entries []model.FoodEntry) (model.WeeklyPlan, error) {
	if err := validateDaySlot(day, slot); err != nil {
		return plan, err
	}
	out := clonePlan(plan)
	alts, idx, err := findAlternative(out, day, slot, altID)
	if err != nil {
		return plan, err
	}
	alt := alts[idx]
	if strings.TrimSpace(name) != "" {
		alt.Name = strings.TrimSpace(name)
	}
	alt.FoodEntries = append([]model.FoodEntry(nil), entries...)
	alt.ComputedMacros = SumEntries(alt.FoodEntries)
	alts[idx] = alt
	return out, nil
}

// RemoveAlternative deletes an alternative from a slot. Removing the
// primary promotes the next alternative in the list.
func RemoveAlternative(plan model.WeeklyPlan, day model.Day, slot model.Slot, altID string) (model.WeeklyPlan, error) {
	if err := validateDaySlot(day, slot); err != nil {
		return plan, err
	}
	out := clonePlan(plan)
	alts, idx, err := findAlternative(out, day, slot, altID)
	if err != nil {
		return plan, err
	}
	out.Days[day][slot] = append(alts[:idx], alts[idx+1:]...)
	if len(out.Days[day][slot]) == 0 {
		delete(out.Days[day], slot)
	}
	return out, nil
}

// DuplicateAlternative appends a copy of an alternative with fresh ids, so
// the copy can be edited independently.
func DuplicateAlternative(plan model.WeeklyPlan, day model.Day, slot model.Slot, altID string) (model.WeeklyPlan, error) {
	if err := validateDaySlot(day, slot); err != nil {
		return plan, err
	}
	out := clonePlan(plan)
	alts, idx, err := findAlternative(out, day, slot, altID)
	if err != nil {
		return plan, err
	}
	dup := reidentifyAlternative(alts[idx])
	if dup.Name != "" {
		dup.Name += " (copia)"
	}
	out.Days[day][slot] = append(alts, dup)
	return out, nil
}

// PromoteAlternative moves an alternative to the front of its slot,
// making it the one counted in day and week totals.
func PromoteAlternative(plan model.WeeklyPlan, day model.Day, slot model.Slot, altID string) (model.WeeklyPlan, error) {
	if err := validateDaySlot(day, slot); err != nil {
		return plan, err
	}
	out := clonePlan(plan)
	alts, idx, err := findAlternative(out, day, slot, altID)
	if err != nil {
		return plan, err
	}
	promoted := alts[idx]
	rest := append(append([]model.MealAlternative(nil), alts[:idx]...), alts[idx+1:]...)
	out.Days[day][slot] = append([]model.MealAlternative{promoted}, rest...)
	return out, nil
}

// AddEntryToAlternative appends a food entry to an alternative and
// recomputes its cached macros.
func AddEntryToAlternative(plan model.WeeklyPlan, day model.Day, slot model.Slot, altID string, entry model.FoodEntry) (model.WeeklyPlan, error) {
	if err := validateDaySlot(day, slot); err != nil {
		return plan, err
	}
	out := clonePlan(plan)
	alts, idx, err := findAlternative(out, day, slot, altID)
	if err != nil {
		return plan, err
	}
	alt := alts[idx]
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	alt.FoodEntries = append(alt.FoodEntries, entry)
	alt.ComputedMacros = SumEntries(alt.FoodEntries)
	alts[idx] = alt
	return out, nil
}

// RemoveEntryFromAlternative deletes a food entry from an alternative and
// recomputes its cached macros.
func RemoveEntryFromAlternative(plan model.WeeklyPlan, day model.Day, slot model.Slot, altID, entryID string) (model.WeeklyPlan, error) {
	if err := validateDaySlot(day, slot); err != nil {
		return plan, err
	}
	out := clonePlan(plan)
	alts, idx, err := findAlternative(out, day, slot, altID)
	if err != nil {
		return plan, err
	}
	alt := alts[idx]
	for i, e := range alt.FoodEntries {
		if e.ID == entryID {
			alt.FoodEntries = append(alt.FoodEntries[:i], alt.FoodEntries[i+1:]...)
			alt.ComputedMacros = SumEntries(alt.FoodEntries)
			alts[idx] = alt
			return out, nil
		}
	}
	return plan, fmt.Errorf("entry %q does not exist in alternative %q", entryID, altID)
}

// CopyDay replaces the target day with a fresh-id copy of the source day.
func CopyDay(plan model.WeeklyPlan, from, to model.Day) (model.WeeklyPlan, error) {
	if !validDay(from) {
		return plan, fmt.Errorf("unknown day %q", from)
	}
	if !validDay(to) {
		return plan, fmt.Errorf("unknown day %q", to)
	}
	if from == to {
		return plan, fmt.Errorf("source and target day are the same")
	}
	out := clonePlan(plan)
	src, ok := out.Days[from]
	if !ok || len(src) == 0 {
		delete(out.Days, to)
		return out, nil
	}
	target := map[model.Slot][]model.MealAlternative{}
	for slot, alts := range src {
		copied := make([]model.MealAlternative, len(alts))
		for i, alt := range alts {
			copied[i] = reidentifyAlternative(alt)
		}
		target[slot] = copied
	}
	out.Days[to] = target
	return out, nil
}

func validateDaySlot(day model.Day, slot model.Slot) error {
	if !validDay(day) {
		return fmt.Errorf("unknown day %q", day)
	}
	if !validSlot(slot) {
		return fmt.Errorf("unknown meal slot %q", slot)
	}
	return nil
}

func validDay(day model.Day) bool {
	for _, d := range model.WeekDays {
		if d == day {
			return true
		}
	}
	return false
}

func validSlot(slot model.Slot) bool {
	for _, s := range model.MealSlots {
		if s == slot {
			return true
		}
	}
	return false
}

func findAlternative(plan model.WeeklyPlan, day model.Day, slot model.Slot, altID string) ([]model.MealAlternative, int, error) {
	alts := plan.Days[day][slot]
	for i, alt := range alts {
		if alt.ID == altID {
			return alts, i, nil
		}
	}
	return nil, 0, fmt.Errorf("alternative %q does not exist in %s/%s", altID, day, slot)
}

func reidentifyAlternative(alt model.MealAlternative) model.MealAlternative {
	out := alt
	out.ID = uuid.NewString()
	out.FoodEntries = make([]model.FoodEntry, len(alt.FoodEntries))
	for i, e := range alt.FoodEntries {
		e.ID = uuid.NewString()
		out.FoodEntries[i] = e
	}
	return out
}

func clonePlan(plan model.WeeklyPlan) model.WeeklyPlan {
	out := model.WeeklyPlan{Name: plan.Name}
	out.Days = make(map[model.Day]map[model.Slot][]model.MealAlternative, len(plan.Days))
	for day, slots := range plan.Days {
		outSlots := make(map[model.Slot][]model.MealAlternative, len(slots))
		for slot, alts := range slots {
			outAlts := make([]model.MealAlternative, len(alts))
			for i, alt := range alts {
				alt.FoodEntries = append([]model.FoodEntry(nil), alt.FoodEntries...)
				outAlts[i] = alt
			}
			outSlots[slot] = outAlts
		}
		out.Days[day] = outSlots
	}
	return out
}
