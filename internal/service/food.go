package service

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/FelipeFrancca/dieta-facil-sub000/internal/model"
)

type CreateFoodInput struct {
	Name     string
	Calories float64
	ProteinG float64
	CarbsG   float64
	FatG     float64
	Source   string
	Units    []model.UnitDefinition
}

type ListFoodsFilter struct {
	Query string
	Limit int
}

// CreateFood stores a food definition and its declared units.
func CreateFood(db *sql.DB, in CreateFoodInput) (int64, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return 0, fmt.Errorf("food name is required")
	}
	if err := validateNonNegativeFloat("calories", in.Calories); err != nil {
		return 0, err
	}
	if err := validateNonNegativeFloat("protein", in.ProteinG); err != nil {
		return 0, err
	}
	if err := validateNonNegativeFloat("carbs", in.CarbsG); err != nil {
		return 0, err
	}
	if err := validateNonNegativeFloat("fat", in.FatG); err != nil {
		return 0, err
	}
	for _, u := range in.Units {
		if u.GramsPerUnit <= 0 {
			return 0, fmt.Errorf("unit %q grams-per-unit must be > 0", u.Kind)
		}
	}
	source := strings.TrimSpace(in.Source)
	if source == "" {
		source = "manual"
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
INSERT INTO foods(name, name_norm, calories, protein_g, carbs_g, fat_g, source)
VALUES(?, ?, ?, ?, ?, ?, ?)
`, name, normalizeName(name), in.Calories, in.ProteinG, in.CarbsG, in.FatG, source)
	if err != nil {
		return 0, fmt.Errorf("create food: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve food id: %w", err)
	}
	for _, u := range in.Units {
		kind := strings.TrimSpace(strings.ToLower(u.Kind))
		if kind == "" {
			kind = "unidade"
		}
		if _, err := tx.Exec(`
INSERT INTO food_units(food_id, kind, description, grams_per_unit) VALUES(?, ?, ?, ?)
`, id, kind, strings.TrimSpace(u.Description), u.GramsPerUnit); err != nil {
			return 0, fmt.Errorf("create food unit %q: %w", kind, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit food: %w", err)
	}
	return id, nil
}

// FoodByName loads a food definition, units included, by normalized name.
func FoodByName(db *sql.DB, name string) (*model.FoodDefinition, error) {
	norm := normalizeName(name)
	if norm == "" {
		return nil, fmt.Errorf("food name is required")
	}
	var f model.FoodDefinition
	err := db.QueryRow(`
SELECT id, name, calories, protein_g, carbs_g, fat_g, source, created_at
FROM foods WHERE name_norm = ?
`, norm).Scan(&f.ID, &f.Name, &f.Calories, &f.ProteinG, &f.CarbsG, &f.FatG, &f.Source, &f.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("food %q does not exist", name)
	}
	if err != nil {
		return nil, fmt.Errorf("lookup food %q: %w", name, err)
	}
	units, err := foodUnits(db, f.ID)
	if err != nil {
		return nil, err
	}
	f.Units = units
	return &f, nil
}

// ListFoods returns foods ordered by name, optionally filtered by a
// substring query against the normalized name.
func ListFoods(db *sql.DB, filter ListFoodsFilter) ([]model.FoodDefinition, error) {
	query := `
SELECT id, name, calories, protein_g, carbs_g, fat_g, source, created_at
FROM foods
`
	var args []any
	if q := normalizeName(filter.Query); q != "" {
		query += ` WHERE name_norm LIKE ?`
		args = append(args, "%"+q+"%")
	}
	query += ` ORDER BY name_norm ASC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	defer rows.Close()

	var foods []model.FoodDefinition
	for rows.Next() {
		var f model.FoodDefinition
		if err := rows.Scan(&f.ID, &f.Name, &f.Calories, &f.ProteinG, &f.CarbsG, &f.FatG, &f.Source, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan food: %w", err)
		}
		foods = append(foods, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate foods: %w", err)
	}
	for i := range foods {
		units, err := foodUnits(db, foods[i].ID)
		if err != nil {
			return nil, err
		}
		foods[i].Units = units
	}
	return foods, nil
}

// DeleteFood removes a food and, via the foreign key cascade, its units.
// Saved plan entries keep their snapshots and are unaffected.
func DeleteFood(db *sql.DB, name string) error {
	res, err := db.Exec(`DELETE FROM foods WHERE name_norm = ?`, normalizeName(name))
	if err != nil {
		return fmt.Errorf("delete food %q: %w", name, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete food %q: %w", name, err)
	}
	if affected == 0 {
		return fmt.Errorf("food %q does not exist", name)
	}
	return nil
}

// NewFoodEntry snapshots a food definition into a meal entry. The unit
// defaults to grams when empty; quantity validation stays at the caller,
// since a zero quantity is a defined (zero-total) state for the engine.
func NewFoodEntry(food model.FoodDefinition, quantity float64, unitKind string) model.FoodEntry {
	unitKind = strings.TrimSpace(unitKind)
	if unitKind == "" {
		unitKind = GramsKind
	}
	snapshot := food
	snapshot.Units = append([]model.UnitDefinition(nil), food.Units...)
	return model.FoodEntry{
		ID:       uuid.NewString(),
		Food:     snapshot,
		Quantity: quantity,
		Unit:     unitKind,
	}
}

func foodUnits(db *sql.DB, foodID int64) ([]model.UnitDefinition, error) {
	rows, err := db.Query(`
SELECT kind, description, grams_per_unit FROM food_units WHERE food_id = ? ORDER BY id ASC
`, foodID)
	if err != nil {
		return nil, fmt.Errorf("list food units: %w", err)
	}
	defer rows.Close()

	var units []model.UnitDefinition
	for rows.Next() {
		var u model.UnitDefinition
		if err := rows.Scan(&u.Kind, &u.Description, &u.GramsPerUnit); err != nil {
			return nil, fmt.Errorf("scan food unit: %w", err)
		}
		units = append(units, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate food units: %w", err)
	}
	return units, nil
}
