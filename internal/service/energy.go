package service

import (
	"fmt"
	"math"
	"strings"
)

// Sex selects the BMR formula constants.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// ActivityMultipliers maps activity level names to their TDEE multiplier.
// It is the single source of truth for valid levels.
var ActivityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// MifflinStJeorBMR computes basal metabolic rate in kcal/day.
func MifflinStJeorBMR(sex Sex, ageYears int, heightCM, weightKG float64) (float64, error) {
	if err := validateBMRInput(sex, ageYears, heightCM, weightKG); err != nil {
		return 0, err
	}
	bmr := 10*weightKG + 6.25*heightCM - 5*float64(ageYears)
	if sex == SexMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return bmr, nil
}

// HarrisBenedictBMR computes basal metabolic rate with the revised
// Harris-Benedict equation, kept for comparison with older diet plans.
func HarrisBenedictBMR(sex Sex, ageYears int, heightCM, weightKG float64) (float64, error) {
	if err := validateBMRInput(sex, ageYears, heightCM, weightKG); err != nil {
		return 0, err
	}
	if sex == SexMale {
		return 88.362 + 13.397*weightKG + 4.799*heightCM - 5.677*float64(ageYears), nil
	}
	return 447.593 + 9.247*weightKG + 3.098*heightCM - 4.330*float64(ageYears), nil
}

// TDEE scales a BMR by the named activity level.
func TDEE(bmr float64, activityLevel string) (float64, error) {
	if bmr <= 0 {
		return 0, fmt.Errorf("bmr must be > 0")
	}
	mult, ok := ActivityMultipliers[strings.TrimSpace(strings.ToLower(activityLevel))]
	if !ok {
		return 0, fmt.Errorf("unknown activity level %q (expected sedentary, light, moderate, active, or very_active)", activityLevel)
	}
	return bmr * mult, nil
}

// MacroTargets is a daily calorie budget split into macro gram targets.
type MacroTargets struct {
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// SuggestMacros splits a calorie budget into gram targets at 4 kcal/g for
// protein and carbs and 9 kcal/g for fat. Percentages must sum to 100.
func SuggestMacros(calories int, proteinPct, carbsPct, fatPct float64) (MacroTargets, error) {
	if calories <= 0 {
		return MacroTargets{}, fmt.Errorf("calories must be > 0")
	}
	if proteinPct < 0 || carbsPct < 0 || fatPct < 0 {
		return MacroTargets{}, fmt.Errorf("macro percentages must be >= 0")
	}
	if sum := proteinPct + carbsPct + fatPct; math.Abs(sum-100) > 0.5 {
		return MacroTargets{}, fmt.Errorf("macro percentages must sum to 100, got %.1f", sum)
	}
	kcal := float64(calories)
	return MacroTargets{
		Calories: calories,
		ProteinG: roundTenth(kcal * proteinPct / 100 / 4),
		CarbsG:   roundTenth(kcal * carbsPct / 100 / 4),
		FatG:     roundTenth(kcal * fatPct / 100 / 9),
	}, nil
}

func validateBMRInput(sex Sex, ageYears int, heightCM, weightKG float64) error {
	if sex != SexMale && sex != SexFemale {
		return fmt.Errorf("sex must be %q or %q", SexMale, SexFemale)
	}
	if ageYears <= 0 || ageYears > 130 {
		return fmt.Errorf("age must be between 1 and 130")
	}
	if heightCM <= 0 {
		return fmt.Errorf("height-cm must be > 0")
	}
	if weightKG <= 0 {
		return fmt.Errorf("weight-kg must be > 0")
	}
	return nil
}
