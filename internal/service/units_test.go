package service_test

import (
	"testing"

	"github.com/FelipeFrancca/dieta-facil-sub000/internal/model"
	"github.com/FelipeFrancca/dieta-facil-sub000/internal/service"
)

func TestResolveUnitsAlwaysStartsWithGrams(t *testing.T) {
	t.Parallel()
	catalog := service.ResolveUnits(grilledChicken())
	if len(catalog) != 1 {
		t.Fatalf("expected only the grams entry, got %d entries", len(catalog))
	}
	if catalog[0].Kind != service.GramsKind || catalog[0].GramsPerUnit != 1 {
		t.Fatalf("expected grams entry first, got %+v", catalog[0])
	}
}

func TestResolveUnitsSuffixesDeclaredKinds(t *testing.T) {
	t.Parallel()
	food := model.FoodDefinition{
		Name: "ovo de galinha",
		Units: []model.UnitDefinition{
			{Kind: "unidade", Description: "1 ovo pequeno", GramsPerUnit: 40},
			{Kind: "unidade", Description: "1 ovo grande", GramsPerUnit: 60},
		},
	}
	catalog := service.ResolveUnits(food)
	if len(catalog) != 3 {
		t.Fatalf("expected 3 catalog entries, got %d", len(catalog))
	}
	if catalog[1].Kind != "unidade_0" || catalog[2].Kind != "unidade_1" {
		t.Fatalf("expected index-suffixed kinds, got %q and %q", catalog[1].Kind, catalog[2].Kind)
	}
	if catalog[1].GramsPerUnit != 40 || catalog[2].GramsPerUnit != 60 {
		t.Fatalf("unexpected grams per unit: %+v", catalog[1:])
	}
}

func TestGramsForQuantityKnownUnit(t *testing.T) {
	t.Parallel()
	catalog := service.ResolveUnits(egg())
	if got := service.GramsForQuantity(3, "unidade_0", catalog); got != 150 {
		t.Fatalf("expected 3 eggs = 150g, got %.1f", got)
	}
}

func TestGramsForQuantityUnknownUnitFallsBackToGrams(t *testing.T) {
	t.Parallel()
	catalog := service.ResolveUnits(egg())
	if got := service.GramsForQuantity(80, "fatia_0", catalog); got != 80 {
		t.Fatalf("expected 1:1 gram fallback, got %.1f", got)
	}
}

func TestGramsForQuantityInvalidQuantity(t *testing.T) {
	t.Parallel()
	catalog := service.ResolveUnits(egg())
	for _, qty := range []float64{0, -5} {
		if got := service.GramsForQuantity(qty, service.GramsKind, catalog); got != 0 {
			t.Fatalf("expected 0 grams for quantity %.1f, got %.1f", qty, got)
		}
	}
}
