package testhelpers

import (
	"database/sql"
	"fmt"
)

// SeedCitizen describes a citizen row inserted directly for tests
type SeedCitizen struct {
	UnitID    int64
	Name      string
	Date      string // YYYY-MM-DD
	Type      string
	Town      string
	Street    string
	Building  string
	Apartment int64
}

// SeedImport inserts an import with the given fixed id and its citizens,
// bypassing the identity sequence
func SeedImport(db *sql.DB, importID int64, citizens []SeedCitizen) error {
	if _, err := db.Exec(
		"INSERT INTO imports (import_id) OVERRIDING SYSTEM VALUE VALUES ($1)", importID,
	); err != nil {
		return fmt.Errorf("seed import %d: %w", importID, err)
	}

	for _, c := range citizens {
		if _, err := db.Exec(`
			INSERT INTO units (import_id, unit_id, name, date, type, town, street, building, apartment)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			importID, c.UnitID, c.Name, c.Date, c.Type, c.Town, c.Street, c.Building, c.Apartment,
		); err != nil {
			return fmt.Errorf("seed citizen %d: %w", c.UnitID, err)
		}
	}
	return nil
}

// SeedRelation inserts both directed rows of a relative edge
func SeedRelation(db *sql.DB, importID, a, b int64) error {
	if _, err := db.Exec(`
		INSERT INTO relations (import_id, unit_id, relative_id)
		VALUES ($1, $2, $3), ($1, $3, $2)`,
		importID, a, b,
	); err != nil {
		return fmt.Errorf("seed relation %d<->%d: %w", a, b, err)
	}
	return nil
}

// DefaultCitizen returns a valid citizen row for tests, distinct by unit id
func DefaultCitizen(unitID int64) SeedCitizen {
	return SeedCitizen{
		UnitID:    unitID,
		Name:      fmt.Sprintf("Citizen %d", unitID),
		Date:      "1990-01-01",
		Type:      "offer",
		Town:      "Moscow",
		Street:    "Lva Tolstogo",
		Building:  "16k7",
		Apartment: unitID,
	}
}
