package service

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/FelipeFrancca/dieta-facil-sub000/internal/model"
)

// Meal is the shopping-list generator's view of a meal: a display name and
// the entries to purchase for.
type Meal struct {
	Name        string
	FoodEntries []model.FoodEntry
}

// PlanMeals flattens a weekly plan into the meals the shopping list should
// cover: the primary alternative of every populated slot, in week order.
func PlanMeals(plan model.WeeklyPlan) []Meal {
	var meals []Meal
	for _, day := range model.WeekDays {
		slots, ok := plan.Days[day]
		if !ok {
			continue
		}
		for _, slot := range model.MealSlots {
			alts := slots[slot]
			if len(alts) == 0 {
				continue
			}
			name := alts[0].Name
			if name == "" {
				name = fmt.Sprintf("%s %s", day, slot)
			}
			meals = append(meals, Meal{Name: name, FoodEntries: alts[0].FoodEntries})
		}
	}
	return meals
}

type shoppingGroup struct {
	totalGrams    float64
	preparations  map[string]bool
	hasConversion bool
	sources       []model.ShoppingSource
}

// BuildShoppingList aggregates every entry across all meals into purchase
// lines grouped by base ingredient name. Consumed grams are converted to
// raw purchase grams via the preparation factor; totals are
// ceiling-rounded and the output is sorted by base name using Brazilian
// Portuguese collation. An empty meal list yields an empty list.
func BuildShoppingList(meals []Meal) []model.ShoppingListItem {
	groups := map[string]*shoppingGroup{}
	for _, meal := range meals {
		for _, e := range meal.FoodEntries {
			consumed := GramsForQuantity(e.Quantity, e.Unit, ResolveUnits(e.Food))
			if consumed <= 0 {
				continue
			}
			analysis := AnalyzeFoodName(e.Food.Name)
			purchase := consumed * analysis.ConversionFactor

			g, ok := groups[analysis.BaseName]
			if !ok {
				g = &shoppingGroup{preparations: map[string]bool{}}
				groups[analysis.BaseName] = g
			}
			g.totalGrams += purchase
			g.preparations[analysis.Preparation] = true
			if purchase != consumed {
				g.hasConversion = true
			}
			g.sources = append(g.sources, model.ShoppingSource{
				MealName:      meal.Name,
				ConsumedGrams: consumed,
				Preparation:   analysis.Preparation,
				PurchaseGrams: purchase,
			})
		}
	}

	items := make([]model.ShoppingListItem, 0, len(groups))
	for base, g := range groups {
		preps := make([]string, 0, len(g.preparations))
		for p := range g.preparations {
			preps = append(preps, p)
		}
		sort.Strings(preps)
		items = append(items, model.ShoppingListItem{
			PurchaseName:    base,
			TotalGrams:      int(math.Ceil(g.totalGrams)),
			DisplayQuantity: FormatQuantity(g.totalGrams),
			Preparations:    preps,
			HasConversion:   g.hasConversion,
			Sources:         g.sources,
		})
	}

	collator := collate.New(language.BrazilianPortuguese)
	sort.Slice(items, func(i, j int) bool {
		return collator.CompareString(items[i].PurchaseName, items[j].PurchaseName) < 0
	})
	return items
}

// FormatQuantity renders a gram amount the way a shopper reads it:
// kilograms from 1kg up (one decimal below 10kg, whole kilograms rounded
// up above), grams rounded up to the nearest 10g between 100g and 1kg,
// and whole grams below 100g.
func FormatQuantity(grams float64) string {
	if grams >= 1000 {
		kg := grams / 1000
		if kg < 10 {
			return fmt.Sprintf("%.1fkg", kg)
		}
		return fmt.Sprintf("%dkg", int(math.Ceil(kg)))
	}
	if grams >= 100 {
		return fmt.Sprintf("%dg", int(math.Ceil(grams/10))*10)
	}
	return fmt.Sprintf("%dg", int(math.Ceil(grams)))
}

// BuildTips derives the advisory notes shown under the shopping list. The
// order is fixed: conversion note, trip-weight note, small-quantity note.
// Tips whose condition does not hold are omitted.
func BuildTips(items []model.ShoppingListItem) []string {
	if len(items) == 0 {
		return nil
	}
	var tips []string

	hasConversion := false
	totalGrams := 0
	hasSmallItem := false
	for _, item := range items {
		if item.HasConversion {
			hasConversion = true
		}
		totalGrams += item.TotalGrams
		if item.TotalGrams < 50 {
			hasSmallItem = true
		}
	}

	if hasConversion {
		tips = append(tips, "Some quantities were adjusted for cooking weight change; buy the listed raw amounts.")
	}
	if totalGrams > 5000 {
		tips = append(tips, "This list weighs over 5kg; consider splitting the shopping into more than one trip.")
	}
	if hasSmallItem {
		tips = append(tips, "Some items are under 50g; check the minimum package size at the store.")
	}
	return tips
}
