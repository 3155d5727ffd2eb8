package model

import "time"

// Day identifies one of the seven fixed days of a weekly plan.
type Day string

const (
	Monday    Day = "segunda"
	Tuesday   Day = "terca"
	Wednesday Day = "quarta"
	Thursday  Day = "quinta"
	Friday    Day = "sexta"
	Saturday  Day = "sabado"
	Sunday    Day = "domingo"
)

// WeekDays lists the plan days in display order. Week totals iterate this
// slice, so every day contributes exactly once.
var WeekDays = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Slot identifies one of the six fixed meal slots of a day.
type Slot string

const (
	Breakfast      Slot = "cafe_da_manha"
	MorningSnack   Slot = "lanche_manha"
	Lunch          Slot = "almoco"
	AfternoonSnack Slot = "lanche_tarde"
	Dinner         Slot = "jantar"
	LateSnack      Slot = "ceia"
)

// MealSlots lists the slots in the order they occur during a day.
var MealSlots = []Slot{Breakfast, MorningSnack, Lunch, AfternoonSnack, Dinner, LateSnack}

// UnitDefinition describes a discrete, non-mass measure for a food,
// e.g. "1 medium egg" weighing 50g.
type UnitDefinition struct {
	Kind         string  `json:"kind"`
	Description  string  `json:"description"`
	GramsPerUnit float64 `json:"grams_per_unit"`
}

// FoodDefinition is immutable reference data: a food's nutrient profile
// per 100g plus any declared discrete units.
type FoodDefinition struct {
	ID        int64            `json:"id,omitempty"`
	Name      string           `json:"name"`
	Calories  float64          `json:"calories"`
	ProteinG  float64          `json:"protein_g"`
	CarbsG    float64          `json:"carbs_g"`
	FatG      float64          `json:"fat_g"`
	Units     []UnitDefinition `json:"units,omitempty"`
	Source    string           `json:"source,omitempty"`
	CreatedAt time.Time        `json:"created_at,omitempty"`
}

// UnitOption is one selectable measure in a food's resolved unit catalog.
// Kind is unique within the catalog.
type UnitOption struct {
	Kind         string  `json:"kind"`
	Description  string  `json:"description"`
	GramsPerUnit float64 `json:"grams_per_unit"`
}

// FoodEntry is a food placed into a meal. The nutrient profile and unit
// list are snapshotted from the FoodDefinition at add time, so later edits
// to the reference database do not rewrite saved plans.
type FoodEntry struct {
	ID       string         `json:"id"`
	Food     FoodDefinition `json:"food"`
	Quantity float64        `json:"quantity"`
	Unit     string         `json:"unit"`
}

// NutrientTotal is the additive macro summary of one or more entries.
// All fields are non-negative.
type NutrientTotal struct {
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	Grams    int     `json:"grams"`
}

// Add returns the componentwise sum of two totals.
func (n NutrientTotal) Add(other NutrientTotal) NutrientTotal {
	return NutrientTotal{
		Calories: n.Calories + other.Calories,
		ProteinG: n.ProteinG + other.ProteinG,
		CarbsG:   n.CarbsG + other.CarbsG,
		FatG:     n.FatG + other.FatG,
		Grams:    n.Grams + other.Grams,
	}
}

// MealAlternative is one saved composition for a meal slot. ComputedMacros
// is a display cache; it is recomputed from FoodEntries on every mutation
// and never treated as authoritative by the aggregator.
type MealAlternative struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	FoodEntries    []FoodEntry   `json:"food_entries"`
	ComputedMacros NutrientTotal `json:"computed_macros"`
}

// WeeklyPlan maps each day to its meal slots. The first alternative in a
// slot's list is the primary one counted in day/week totals; the rest are
// kept for display and swapping.
type WeeklyPlan struct {
	Name string                             `json:"name"`
	Days map[Day]map[Slot][]MealAlternative `json:"days"`
}

// ShoppingSource records where part of a shopping-list item came from.
type ShoppingSource struct {
	MealName      string  `json:"meal_name"`
	ConsumedGrams float64 `json:"consumed_grams"`
	Preparation   string  `json:"preparation"`
	PurchaseGrams float64 `json:"purchase_grams"`
}

// ShoppingListItem is one aggregated purchase line: all entries across all
// meals sharing a base ingredient name, with preparation-aware raw-weight
// conversion already applied.
type ShoppingListItem struct {
	PurchaseName    string           `json:"purchase_name"`
	TotalGrams      int              `json:"total_grams"`
	DisplayQuantity string           `json:"display_quantity"`
	Preparations    []string         `json:"preparations"`
	HasConversion   bool             `json:"has_conversion"`
	Sources         []ShoppingSource `json:"sources"`
}
