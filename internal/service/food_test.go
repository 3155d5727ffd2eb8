package service_test

import (
	"strings"
	"testing"

	"github.com/FelipeFrancca/dieta-facil-sub000/internal/model"
	"github.com/FelipeFrancca/dieta-facil-sub000/internal/service"
)

func TestCreateFoodAndLoadByName(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	id, err := service.CreateFood(sqldb, service.CreateFoodInput{
		Name:     "Batata Doce Cozida",
		Calories: 86,
		ProteinG: 0.8,
		CarbsG:   20.1,
		FatG:     0.1,
		Units: []model.UnitDefinition{
			{Kind: "unidade", Description: "1 batata media", GramsPerUnit: 130},
		},
	})
	if err != nil {
		t.Fatalf("create food: %v", err)
	}
	if id == 0 {
		t.Fatalf("expected a food id")
	}

	// Lookup folds case and accents the same way names are stored.
	food, err := service.FoodByName(sqldb, "batata doce cozida")
	if err != nil {
		t.Fatalf("load food: %v", err)
	}
	if food.ID != id {
		t.Fatalf("expected food id %d, got %d", id, food.ID)
	}
	if food.Calories != 86 || food.CarbsG != 20.1 {
		t.Fatalf("unexpected macros: %+v", food)
	}
	if food.Source != "manual" {
		t.Fatalf("expected default source manual, got %q", food.Source)
	}
	if len(food.Units) != 1 || food.Units[0].GramsPerUnit != 130 {
		t.Fatalf("expected declared unit loaded, got %+v", food.Units)
	}
}

func TestCreateFoodValidation(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	cases := []struct {
		name string
		in   service.CreateFoodInput
	}{
		{"empty name", service.CreateFoodInput{Name: "   ", Calories: 10}},
		{"negative calories", service.CreateFoodInput{Name: "x", Calories: -1}},
		{"negative protein", service.CreateFoodInput{Name: "x", ProteinG: -0.1}},
		{"zero grams unit", service.CreateFoodInput{
			Name:  "x",
			Units: []model.UnitDefinition{{Kind: "fatia", GramsPerUnit: 0}},
		}},
	}
	for _, tc := range cases {
		if _, err := service.CreateFood(sqldb, tc.in); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestCreateFoodRejectsDuplicateNormalizedName(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	if _, err := service.CreateFood(sqldb, service.CreateFoodInput{Name: "Polpa de Acai", Calories: 58}); err != nil {
		t.Fatalf("create food: %v", err)
	}
	// "Polpa de Açaí" folds to the same stored name.
	if _, err := service.CreateFood(sqldb, service.CreateFoodInput{Name: "Polpa de Açaí", Calories: 58}); err == nil {
		t.Fatalf("expected duplicate name error")
	}
}

func TestListFoodsFiltersAndLimits(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	foods, err := service.ListFoods(sqldb, service.ListFoodsFilter{Query: "frango"})
	if err != nil {
		t.Fatalf("list foods: %v", err)
	}
	if len(foods) == 0 {
		t.Fatalf("expected seeded chicken foods")
	}
	for _, f := range foods {
		if !strings.Contains(f.Name, "frango") {
			t.Errorf("unexpected food %q for query frango", f.Name)
		}
	}

	limited, err := service.ListFoods(sqldb, service.ListFoodsFilter{Limit: 3})
	if err != nil {
		t.Fatalf("list foods: %v", err)
	}
	if len(limited) != 3 {
		t.Fatalf("expected 3 foods, got %d", len(limited))
	}
}

func TestDeleteFood(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	if _, err := service.CreateFood(sqldb, service.CreateFoodInput{Name: "tapioca", Calories: 240}); err != nil {
		t.Fatalf("create food: %v", err)
	}
	if err := service.DeleteFood(sqldb, "Tapioca"); err != nil {
		t.Fatalf("delete food: %v", err)
	}
	if _, err := service.FoodByName(sqldb, "tapioca"); err == nil {
		t.Fatalf("expected food gone")
	}
	if err := service.DeleteFood(sqldb, "tapioca"); err == nil {
		t.Fatalf("expected delete of missing food to fail")
	}
}

func TestNewFoodEntrySnapshotsFood(t *testing.T) {
	t.Parallel()
	food := egg()
	entry := service.NewFoodEntry(food, 2, "unidade_0")
	if entry.ID == "" {
		t.Fatalf("expected generated entry id")
	}
	if entry.Quantity != 2 || entry.Unit != "unidade_0" {
		t.Fatalf("unexpected entry: %+v", entry)
	}

	// Mutating the source food must not reach the snapshot.
	food.Units[0].GramsPerUnit = 999
	if entry.Food.Units[0].GramsPerUnit != 50 {
		t.Fatalf("expected snapshotted units, got %+v", entry.Food.Units)
	}

	blank := service.NewFoodEntry(egg(), 100, "")
	if blank.Unit != service.GramsKind {
		t.Fatalf("expected default unit grams, got %q", blank.Unit)
	}
}
