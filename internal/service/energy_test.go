package service_test

import (
	"math"
	"testing"

	"github.com/FelipeFrancca/dieta-facil-sub000/internal/service"
)

func TestMifflinStJeorBMR(t *testing.T) {
	t.Parallel()
	// 80kg, 180cm, 30y male: 10*80 + 6.25*180 - 5*30 + 5 = 1780
	bmr, err := service.MifflinStJeorBMR(service.SexMale, 30, 180, 80)
	if err != nil {
		t.Fatalf("compute bmr: %v", err)
	}
	if math.Abs(bmr-1780) > 0.01 {
		t.Fatalf("expected 1780 kcal/day, got %.2f", bmr)
	}

	female, err := service.MifflinStJeorBMR(service.SexFemale, 30, 180, 80)
	if err != nil {
		t.Fatalf("compute female bmr: %v", err)
	}
	if math.Abs(female-(1780-166)) > 0.01 {
		t.Fatalf("expected 1614 kcal/day, got %.2f", female)
	}
}

func TestMifflinStJeorBMRRejectsInvalidInput(t *testing.T) {
	t.Parallel()
	if _, err := service.MifflinStJeorBMR("other", 30, 180, 80); err == nil {
		t.Fatalf("expected invalid sex error")
	}
	if _, err := service.MifflinStJeorBMR(service.SexMale, 0, 180, 80); err == nil {
		t.Fatalf("expected invalid age error")
	}
	if _, err := service.MifflinStJeorBMR(service.SexMale, 30, -1, 80); err == nil {
		t.Fatalf("expected invalid height error")
	}
}

func TestTDEE(t *testing.T) {
	t.Parallel()
	tdee, err := service.TDEE(1780, "moderate")
	if err != nil {
		t.Fatalf("compute tdee: %v", err)
	}
	if math.Abs(tdee-2759) > 0.5 {
		t.Fatalf("expected ~2759 kcal/day, got %.2f", tdee)
	}

	if _, err := service.TDEE(1780, "heroic"); err == nil {
		t.Fatalf("expected unknown activity level error")
	}
}

func TestSuggestMacros(t *testing.T) {
	t.Parallel()
	targets, err := service.SuggestMacros(2000, 30, 40, 30)
	if err != nil {
		t.Fatalf("suggest macros: %v", err)
	}
	if targets.ProteinG != 150 {
		t.Fatalf("expected 150g protein, got %.1f", targets.ProteinG)
	}
	if targets.CarbsG != 200 {
		t.Fatalf("expected 200g carbs, got %.1f", targets.CarbsG)
	}
	if math.Abs(targets.FatG-66.7) > 0.01 {
		t.Fatalf("expected 66.7g fat, got %.1f", targets.FatG)
	}

	if _, err := service.SuggestMacros(2000, 50, 40, 30); err == nil {
		t.Fatalf("expected percentage sum error")
	}
}
