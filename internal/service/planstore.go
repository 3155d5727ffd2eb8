package service

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/FelipeFrancca/dieta-facil-sub000/internal/model"
)

// PlanSummary is a stored plan's listing row.
type PlanSummary struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreatePlan stores a new empty weekly plan under a unique name.
func CreatePlan(db *sql.DB, name string) (int64, error) {
	plan := NewWeeklyPlan(name)
	if plan.Name == "" {
		return 0, fmt.Errorf("plan name is required")
	}
	doc, err := json.Marshal(plan)
	if err != nil {
		return 0, fmt.Errorf("marshal plan document: %w", err)
	}
	res, err := db.Exec(`INSERT INTO plans(name, document) VALUES(?, ?)`, normalizeName(plan.Name), string(doc))
	if err != nil {
		return 0, fmt.Errorf("create plan %q: %w", plan.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve plan id: %w", err)
	}
	return id, nil
}

// LoadPlan reads a stored plan document by name.
func LoadPlan(db *sql.DB, name string) (model.WeeklyPlan, error) {
	norm := normalizeName(name)
	if norm == "" {
		return model.WeeklyPlan{}, fmt.Errorf("plan name is required")
	}
	var doc string
	err := db.QueryRow(`SELECT document FROM plans WHERE name = ?`, norm).Scan(&doc)
	if err == sql.ErrNoRows {
		return model.WeeklyPlan{}, fmt.Errorf("plan %q does not exist", name)
	}
	if err != nil {
		return model.WeeklyPlan{}, fmt.Errorf("load plan %q: %w", name, err)
	}
	var plan model.WeeklyPlan
	if err := json.Unmarshal([]byte(doc), &plan); err != nil {
		return model.WeeklyPlan{}, fmt.Errorf("decode plan %q: %w", name, err)
	}
	if plan.Days == nil {
		plan.Days = map[model.Day]map[model.Slot][]model.MealAlternative{}
	}
	return plan, nil
}

// SavePlan writes a plan document back under its name, refreshing every
// cached alternative total first so a stored document never carries stale
// macros.
func SavePlan(db *sql.DB, plan model.WeeklyPlan) error {
	norm := normalizeName(plan.Name)
	if norm == "" {
		return fmt.Errorf("plan name is required")
	}
	repaired := RecomputeAllCachedMacros(plan)
	doc, err := json.Marshal(repaired)
	if err != nil {
		return fmt.Errorf("marshal plan document: %w", err)
	}
	res, err := db.Exec(`UPDATE plans SET document = ?, updated_at = CURRENT_TIMESTAMP WHERE name = ?`, string(doc), norm)
	if err != nil {
		return fmt.Errorf("save plan %q: %w", plan.Name, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save plan %q: %w", plan.Name, err)
	}
	if affected == 0 {
		return fmt.Errorf("plan %q does not exist", plan.Name)
	}
	return nil
}

// MutatePlan loads a plan, applies a mutation, and saves the result. Every
// CLI plan operation goes through here, so the write-through macro
// recomputation in SavePlan covers all mutations.
func MutatePlan(db *sql.DB, name string, mutate func(model.WeeklyPlan) (model.WeeklyPlan, error)) error {
	plan, err := LoadPlan(db, name)
	if err != nil {
		return err
	}
	mutated, err := mutate(plan)
	if err != nil {
		return err
	}
	return SavePlan(db, mutated)
}

// RepairPlan recomputes every cached alternative total of a stored plan.
// Safe to run any number of times.
func RepairPlan(db *sql.DB, name string) error {
	return MutatePlan(db, name, func(plan model.WeeklyPlan) (model.WeeklyPlan, error) {
		return RecomputeAllCachedMacros(plan), nil
	})
}

// ListPlans returns stored plans ordered by name.
func ListPlans(db *sql.DB) ([]PlanSummary, error) {
	rows, err := db.Query(`SELECT id, name, created_at, updated_at FROM plans ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var plans []PlanSummary
	for rows.Next() {
		var p PlanSummary
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate plans: %w", err)
	}
	return plans, nil
}

// DeletePlan removes a stored plan.
func DeletePlan(db *sql.DB, name string) error {
	res, err := db.Exec(`DELETE FROM plans WHERE name = ?`, normalizeName(name))
	if err != nil {
		return fmt.Errorf("delete plan %q: %w", name, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete plan %q: %w", name, err)
	}
	if affected == 0 {
		return fmt.Errorf("plan %q does not exist", name)
	}
	return nil
}
