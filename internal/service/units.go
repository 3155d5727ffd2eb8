package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/FelipeFrancca/dieta-facil-sub000/internal/model"
)

// GramsKind is the mass unit every food can be measured in. It is always
// the first entry of a resolved unit catalog.
const GramsKind = "grams"

// ResolveUnits builds the selectable unit catalog for a food: the grams
// entry first, then one entry per declared discrete unit. Declared kinds
// are index-suffixed so two units of the same kind stay distinguishable.
func ResolveUnits(food model.FoodDefinition) []model.UnitOption {
	catalog := make([]model.UnitOption, 0, len(food.Units)+1)
	catalog = append(catalog, model.UnitOption{
		Kind:         GramsKind,
		Description:  "gramas",
		GramsPerUnit: 1,
	})
	for i, u := range food.Units {
		kind := strings.TrimSpace(strings.ToLower(u.Kind))
		if kind == "" {
			kind = "unidade"
		}
		catalog = append(catalog, model.UnitOption{
			Kind:         fmt.Sprintf("%s_%d", kind, i),
			Description:  u.Description,
			GramsPerUnit: u.GramsPerUnit,
		})
	}
	return catalog
}

// GramsForQuantity converts a (quantity, unit) pair to grams using the
// catalog. Invalid quantities resolve to 0. An unknown unit kind falls
// back to a 1:1 gram reading so a stale saved plan still renders instead
// of failing.
func GramsForQuantity(quantity float64, unitKind string, catalog []model.UnitOption) float64 {
	if quantity <= 0 || math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return 0
	}
	unitKind = strings.TrimSpace(unitKind)
	if unitKind == "" || unitKind == GramsKind {
		return quantity
	}
	for _, opt := range catalog {
		if opt.Kind == unitKind {
			return quantity * opt.GramsPerUnit
		}
	}
	return quantity
}
