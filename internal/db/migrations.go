package db

import (
	"database/sql"
	"fmt"
)

type migration struct {
	version int
	name    string
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		name:    "initial_schema",
		sql: `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS foods (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  name_norm TEXT NOT NULL UNIQUE,
  calories REAL NOT NULL CHECK(calories >= 0),
  protein_g REAL NOT NULL CHECK(protein_g >= 0),
  carbs_g REAL NOT NULL CHECK(carbs_g >= 0),
  fat_g REAL NOT NULL CHECK(fat_g >= 0),
  source TEXT NOT NULL DEFAULT 'manual',
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_foods_name_norm ON foods(name_norm);

CREATE TABLE IF NOT EXISTS food_units (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  food_id INTEGER NOT NULL,
  kind TEXT NOT NULL,
  description TEXT NOT NULL,
  grams_per_unit REAL NOT NULL CHECK(grams_per_unit > 0),
  FOREIGN KEY(food_id) REFERENCES foods(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_food_units_food_id ON food_units(food_id);

CREATE TABLE IF NOT EXISTS plans (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL UNIQUE,
  document TEXT NOT NULL,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS app_config (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`,
	},
}

// seedFood is a built-in reference food with its per-100g profile and any
// discrete units. Seeds use INSERT OR IGNORE, so user edits survive
// re-running migrations.
type seedFood struct {
	name     string
	calories float64
	protein  float64
	carbs    float64
	fat      float64
	units    []seedUnit
}

type seedUnit struct {
	kind         string
	description  string
	gramsPerUnit float64
}

var seedFoods = []seedFood{
	{name: "arroz branco cozido", calories: 128, protein: 2.5, carbs: 28.1, fat: 0.2},
	{name: "feijao carioca cozido", calories: 76, protein: 4.8, carbs: 13.6, fat: 0.5, units: []seedUnit{
		{kind: "concha", description: "1 concha media", gramsPerUnit: 80},
	}},
	{name: "peito de frango grelhado", calories: 148, protein: 32.8, carbs: 0, fat: 1.8},
	{name: "carne bovina grelhada", calories: 219, protein: 35.9, carbs: 0, fat: 7.3},
	{name: "batata inglesa cozida", calories: 52, protein: 1.2, carbs: 11.9, fat: 0},
	{name: "ovo de galinha", calories: 143, protein: 12.6, carbs: 0.7, fat: 9.5, units: []seedUnit{
		{kind: "unidade", description: "1 ovo medio", gramsPerUnit: 50},
	}},
	{name: "pao frances", calories: 300, protein: 8.0, carbs: 58.6, fat: 3.1, units: []seedUnit{
		{kind: "unidade", description: "1 pao frances", gramsPerUnit: 50},
	}},
	{name: "banana prata", calories: 98, protein: 1.3, carbs: 26.0, fat: 0.1, units: []seedUnit{
		{kind: "unidade", description: "1 banana media", gramsPerUnit: 70},
	}},
	{name: "leite integral", calories: 61, protein: 3.2, carbs: 4.6, fat: 3.3, units: []seedUnit{
		{kind: "copo", description: "1 copo (200ml)", gramsPerUnit: 200},
	}},
	{name: "aveia em flocos", calories: 394, protein: 13.9, carbs: 66.6, fat: 8.5, units: []seedUnit{
		{kind: "colher", description: "1 colher de sopa", gramsPerUnit: 15},
	}},
	{name: "azeite de oliva", calories: 884, protein: 0, carbs: 0, fat: 100, units: []seedUnit{
		{kind: "colher", description: "1 colher de sopa", gramsPerUnit: 13},
	}},
	{name: "queijo minas frescal", calories: 264, protein: 17.4, carbs: 3.2, fat: 20.2, units: []seedUnit{
		{kind: "fatia", description: "1 fatia media", gramsPerUnit: 30},
	}},
}

func ApplyMigrations(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`); err != nil {
		return fmt.Errorf("ensure schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var exists int
		err := db.QueryRow(`SELECT 1 FROM schema_migrations WHERE version = ?`, m.version).Scan(&exists)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("check migration version %d: %w", m.version, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration tx: %w", err)
		}

		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration version %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations(version, name) VALUES(?, ?)`, m.version, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration version %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration version %d: %w", m.version, err)
		}
	}

	for _, f := range seedFoods {
		if err := seedOneFood(db, f); err != nil {
			return err
		}
	}

	return nil
}

func seedOneFood(db *sql.DB, f seedFood) error {
	res, err := db.Exec(`
INSERT OR IGNORE INTO foods(name, name_norm, calories, protein_g, carbs_g, fat_g, source)
VALUES(?, ?, ?, ?, ?, ?, 'builtin')
`, f.name, f.name, f.calories, f.protein, f.carbs, f.fat)
	if err != nil {
		return fmt.Errorf("seed food %q: %w", f.name, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("seed food %q: %w", f.name, err)
	}
	if affected == 0 {
		return nil
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("resolve seeded food id for %q: %w", f.name, err)
	}
	for _, u := range f.units {
		if _, err := db.Exec(`
INSERT INTO food_units(food_id, kind, description, grams_per_unit) VALUES(?, ?, ?, ?)
`, id, u.kind, u.description, u.gramsPerUnit); err != nil {
			return fmt.Errorf("seed unit %q for food %q: %w", u.kind, f.name, err)
		}
	}
	return nil
}
