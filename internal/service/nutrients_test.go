package service_test

import (
	"math"
	"testing"

	"github.com/FelipeFrancca/dieta-facil-sub000/internal/model"
	"github.com/FelipeFrancca/dieta-facil-sub000/internal/service"
)

func TestComputeNutrientsZeroQuantity(t *testing.T) {
	t.Parallel()
	food := grilledChicken()
	catalog := service.ResolveUnits(food)
	for _, qty := range []float64{0, -10, math.NaN()} {
		got := service.ComputeNutrients(food, qty, service.GramsKind, catalog)
		if got != (model.NutrientTotal{}) {
			t.Fatalf("expected zero total for quantity %v, got %+v", qty, got)
		}
	}
}

func TestComputeNutrientsGrilledChicken200g(t *testing.T) {
	t.Parallel()
	food := grilledChicken()
	got := service.ComputeNutrients(food, 200, service.GramsKind, service.ResolveUnits(food))
	want := model.NutrientTotal{Calories: 296, ProteinG: 65.6, CarbsG: 0, FatG: 3.6, Grams: 200}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestComputeNutrientsGramIdentity(t *testing.T) {
	t.Parallel()
	food := grilledChicken()
	catalog := service.ResolveUnits(food)
	for _, qty := range []float64{1, 37.4, 100, 250.5} {
		got := service.ComputeNutrients(food, qty, service.GramsKind, catalog)
		if got.Grams != int(math.Round(qty)) {
			t.Fatalf("expected grams %d for quantity %.1f, got %d", int(math.Round(qty)), qty, got.Grams)
		}
	}
}

func TestComputeNutrientsScalingLinearity(t *testing.T) {
	t.Parallel()
	food := grilledChicken()
	catalog := service.ResolveUnits(food)
	single := service.ComputeNutrients(food, 100, service.GramsKind, catalog)
	double := service.ComputeNutrients(food, 200, service.GramsKind, catalog)
	if double.Calories != 2*single.Calories {
		t.Fatalf("expected calories to scale linearly: 100g=%d, 200g=%d", single.Calories, double.Calories)
	}
}

func TestComputeNutrientsDiscreteUnit(t *testing.T) {
	t.Parallel()
	food := egg()
	got := service.ComputeNutrients(food, 2, "unidade_0", service.ResolveUnits(food))
	// 2 eggs = 100g, so the per-100g profile passes through unchanged.
	want := model.NutrientTotal{Calories: 143, ProteinG: 12.6, CarbsG: 0.7, FatG: 9.5, Grams: 100}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestComputeNutrientsUnknownUnitUsesGramFallback(t *testing.T) {
	t.Parallel()
	food := egg()
	catalog := service.ResolveUnits(food)
	got := service.ComputeNutrients(food, 50, "copo_0", catalog)
	viaGrams := service.ComputeNutrients(food, 50, service.GramsKind, catalog)
	if got != viaGrams {
		t.Fatalf("expected unknown unit to behave as grams: %+v vs %+v", got, viaGrams)
	}
}
