package dieta

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/FelipeFrancca/dieta-facil-sub000/internal/app"
	"github.com/FelipeFrancca/dieta-facil-sub000/internal/db"
	"github.com/FelipeFrancca/dieta-facil-sub000/internal/model"
	"github.com/FelipeFrancca/dieta-facil-sub000/internal/service"
)

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

// resolvePlanName prefers the positional argument, then the configured
// default plan.
func resolvePlanName(sqldb *sql.DB, args []string) (string, error) {
	if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
		return args[0], nil
	}
	name, ok, err := service.GetConfig(sqldb, service.ConfigDefaultPlan)
	if err != nil {
		return "", err
	}
	if !ok || name == "" {
		return "", fmt.Errorf("no plan given and no default_plan configured")
	}
	return name, nil
}

func parseDayArg(value string) (model.Day, error) {
	day := model.Day(strings.TrimSpace(strings.ToLower(value)))
	for _, d := range model.WeekDays {
		if d == day {
			return day, nil
		}
	}
	return "", fmt.Errorf("invalid day %q (expected one of %s)", value, joinDays())
}

func parseSlotArg(value string) (model.Slot, error) {
	slot := model.Slot(strings.TrimSpace(strings.ToLower(value)))
	for _, s := range model.MealSlots {
		if s == slot {
			return slot, nil
		}
	}
	return "", fmt.Errorf("invalid meal slot %q (expected one of %s)", value, joinSlots())
}

func joinDays() string {
	parts := make([]string, len(model.WeekDays))
	for i, d := range model.WeekDays {
		parts[i] = string(d)
	}
	return strings.Join(parts, ", ")
}

func joinSlots() string {
	parts := make([]string, len(model.MealSlots))
	for i, s := range model.MealSlots {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
