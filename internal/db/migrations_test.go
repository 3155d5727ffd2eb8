package db_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/FelipeFrancca/dieta-facil-sub000/internal/db"
)

func TestApplyMigrationsIdempotentAndSeedsDefaults(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "dieta.db")
	sqldb, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("first apply migrations: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("second apply migrations: %v", err)
	}

	var migrationCount int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM schema_migrations`).Scan(&migrationCount); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if migrationCount != 1 {
		t.Fatalf("expected 1 migration version, got %d", migrationCount)
	}

	for _, table := range []string{"foods", "food_units", "plans", "app_config"} {
		var count int
		if err := sqldb.QueryRow(`SELECT COUNT(1) FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&count); err != nil {
			t.Fatalf("check %s table: %v", table, err)
		}
		if count != 1 {
			t.Fatalf("expected %s table to exist", table)
		}
	}

	var normColCount int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM pragma_table_info('foods') WHERE name = 'name_norm'`).Scan(&normColCount); err != nil {
		t.Fatalf("check foods name_norm column: %v", err)
	}
	if normColCount != 1 {
		t.Fatalf("expected name_norm column in foods table")
	}

	var docColCount int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM pragma_table_info('plans') WHERE name = 'document'`).Scan(&docColCount); err != nil {
		t.Fatalf("check plans document column: %v", err)
	}
	if docColCount != 1 {
		t.Fatalf("expected document column in plans table")
	}

	var foodCount int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM foods WHERE source = 'builtin'`).Scan(&foodCount); err != nil {
		t.Fatalf("count seeded foods: %v", err)
	}
	if foodCount < 10 {
		t.Fatalf("expected at least 10 seeded foods, got %d", foodCount)
	}

	// Seeding must not duplicate rows on a second run.
	var eggUnitCount int
	if err := sqldb.QueryRow(`
SELECT COUNT(1) FROM food_units
WHERE food_id = (SELECT id FROM foods WHERE name_norm = 'ovo de galinha')
`).Scan(&eggUnitCount); err != nil {
		t.Fatalf("count egg units: %v", err)
	}
	if eggUnitCount != 1 {
		t.Fatalf("expected 1 seeded egg unit, got %d", eggUnitCount)
	}

	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("expected db file to exist: %v", err)
	}
}
