package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/FelipeFrancca/dieta-facil-sub000/internal/db"
	"github.com/FelipeFrancca/dieta-facil-sub000/internal/model"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dieta.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func grilledChicken() model.FoodDefinition {
	return model.FoodDefinition{
		Name:     "peito de frango grelhado",
		Calories: 148,
		ProteinG: 32.8,
		CarbsG:   0,
		FatG:     1.8,
	}
}

func egg() model.FoodDefinition {
	return model.FoodDefinition{
		Name:     "ovo de galinha",
		Calories: 143,
		ProteinG: 12.6,
		CarbsG:   0.7,
		FatG:     9.5,
		Units: []model.UnitDefinition{
			{Kind: "unidade", Description: "1 ovo medio", GramsPerUnit: 50},
		},
	}
}
