package service_test

import (
	"testing"

	"github.com/FelipeFrancca/dieta-facil-sub000/internal/model"
	"github.com/FelipeFrancca/dieta-facil-sub000/internal/service"
)

func TestCreateAndLoadPlanRoundtrip(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	if _, err := service.CreatePlan(sqldb, "Plano de Corte"); err != nil {
		t.Fatalf("create plan: %v", err)
	}
	plan, err := service.LoadPlan(sqldb, "plano de corte")
	if err != nil {
		t.Fatalf("load plan: %v", err)
	}
	if plan.Name != "Plano de Corte" {
		t.Fatalf("expected original name kept in document, got %q", plan.Name)
	}
	if plan.Days == nil || len(plan.Days) != 0 {
		t.Fatalf("expected empty days map, got %+v", plan.Days)
	}

	if _, err := service.CreatePlan(sqldb, "Plano de corte"); err == nil {
		t.Fatalf("expected duplicate plan name error")
	}
	if _, err := service.LoadPlan(sqldb, "inexistente"); err == nil {
		t.Fatalf("expected missing plan error")
	}
}

func TestMutatePlanPersistsAndRefreshesMacros(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	if _, err := service.CreatePlan(sqldb, "semana"); err != nil {
		t.Fatalf("create plan: %v", err)
	}
	err := service.MutatePlan(sqldb, "semana", func(plan model.WeeklyPlan) (model.WeeklyPlan, error) {
		return service.AddAlternative(plan, model.Monday, model.Lunch, model.MealAlternative{
			Name: "opcao 1",
			FoodEntries: []model.FoodEntry{
				entryOf(grilledChicken(), 200, service.GramsKind),
			},
			// A stale cache must never survive a save.
			ComputedMacros: model.NutrientTotal{Calories: 9999},
		})
	})
	if err != nil {
		t.Fatalf("mutate plan: %v", err)
	}

	plan, err := service.LoadPlan(sqldb, "semana")
	if err != nil {
		t.Fatalf("load plan: %v", err)
	}
	alt := plan.Days[model.Monday][model.Lunch][0]
	if alt.ComputedMacros.Calories != 296 || alt.ComputedMacros.Grams != 200 {
		t.Fatalf("expected refreshed macros, got %+v", alt.ComputedMacros)
	}
	if got := service.DayTotal(plan, model.Monday); got.Calories != 296 {
		t.Fatalf("expected day total 296 kcal, got %d", got.Calories)
	}
}

func TestMutatePlanDoesNotSaveOnMutationError(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	if _, err := service.CreatePlan(sqldb, "semana"); err != nil {
		t.Fatalf("create plan: %v", err)
	}
	err := service.MutatePlan(sqldb, "semana", func(plan model.WeeklyPlan) (model.WeeklyPlan, error) {
		return service.AddAlternative(plan, "feriado", model.Lunch, model.MealAlternative{Name: "x"})
	})
	if err == nil {
		t.Fatalf("expected mutation error")
	}
	plan, err := service.LoadPlan(sqldb, "semana")
	if err != nil {
		t.Fatalf("load plan: %v", err)
	}
	if len(plan.Days) != 0 {
		t.Fatalf("expected stored plan untouched, got %+v", plan.Days)
	}
}

func TestSavePlanRequiresExistingPlan(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	if err := service.SavePlan(sqldb, service.NewWeeklyPlan("fantasma")); err == nil {
		t.Fatalf("expected save of unknown plan to fail")
	}
}

func TestRepairPlanIsIdempotent(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	if _, err := service.CreatePlan(sqldb, "semana"); err != nil {
		t.Fatalf("create plan: %v", err)
	}
	err := service.MutatePlan(sqldb, "semana", func(plan model.WeeklyPlan) (model.WeeklyPlan, error) {
		return service.AddAlternative(plan, model.Tuesday, model.Dinner, model.MealAlternative{
			Name:        "opcao 1",
			FoodEntries: []model.FoodEntry{entryOf(egg(), 2, "unidade_0")},
		})
	})
	if err != nil {
		t.Fatalf("mutate plan: %v", err)
	}

	if err := service.RepairPlan(sqldb, "semana"); err != nil {
		t.Fatalf("repair plan: %v", err)
	}
	first, err := service.LoadPlan(sqldb, "semana")
	if err != nil {
		t.Fatalf("load plan: %v", err)
	}
	if err := service.RepairPlan(sqldb, "semana"); err != nil {
		t.Fatalf("second repair: %v", err)
	}
	second, err := service.LoadPlan(sqldb, "semana")
	if err != nil {
		t.Fatalf("load plan: %v", err)
	}
	if second.Days[model.Tuesday][model.Dinner][0].ComputedMacros != first.Days[model.Tuesday][model.Dinner][0].ComputedMacros {
		t.Fatalf("expected repair to be stable across runs")
	}
}

func TestListAndDeletePlans(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	for _, name := range []string{"corte", "bulking", "manutencao"} {
		if _, err := service.CreatePlan(sqldb, name); err != nil {
			t.Fatalf("create plan %q: %v", name, err)
		}
	}
	plans, err := service.ListPlans(sqldb)
	if err != nil {
		t.Fatalf("list plans: %v", err)
	}
	var names []string
	for _, p := range plans {
		names = append(names, p.Name)
	}
	want := []string{"bulking", "corte", "manutencao"}
	if len(names) != len(want) {
		t.Fatalf("expected %d plans, got %v", len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected plans %v, got %v", want, names)
		}
	}

	if err := service.DeletePlan(sqldb, "corte"); err != nil {
		t.Fatalf("delete plan: %v", err)
	}
	if _, err := service.LoadPlan(sqldb, "corte"); err == nil {
		t.Fatalf("expected deleted plan gone")
	}
	if err := service.DeletePlan(sqldb, "corte"); err == nil {
		t.Fatalf("expected delete of missing plan to fail")
	}
}

func TestConfigRoundtrip(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	if _, ok, err := service.GetConfig(sqldb, service.ConfigDefaultPlan); err != nil || ok {
		t.Fatalf("expected unset key, ok=%v err=%v", ok, err)
	}
	if err := service.SetConfig(sqldb, service.ConfigDefaultPlan, "semana"); err != nil {
		t.Fatalf("set config: %v", err)
	}
	if err := service.SetConfig(sqldb, service.ConfigDefaultPlan, "corte"); err != nil {
		t.Fatalf("overwrite config: %v", err)
	}
	value, ok, err := service.GetConfig(sqldb, service.ConfigDefaultPlan)
	if err != nil || !ok {
		t.Fatalf("get config: ok=%v err=%v", ok, err)
	}
	if value != "corte" {
		t.Fatalf("expected overwritten value, got %q", value)
	}

	all, err := service.ListConfig(sqldb)
	if err != nil {
		t.Fatalf("list config: %v", err)
	}
	if all[service.ConfigDefaultPlan] != "corte" {
		t.Fatalf("unexpected config map: %+v", all)
	}
}
