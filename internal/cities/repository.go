package cities

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"weathertop/internal/database"
	"weathertop/internal/models"
)

// Repository persists the user's saved city list
type Repository struct {
	dbPath string
}

// NewRepository creates a repository backed by the database at dbPath
func NewRepository(dbPath string) *Repository {
	return &Repository{dbPath: dbPath}
}

// Save adds a city to the saved list, or refreshes it if already present
func (r *Repository) Save(name string) error {
	if name == "" {
		return fmt.Errorf("city name must not be empty")
	}
	if err := database.EnsureSchema(r.dbPath); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", r.dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	_, err = db.Exec(`
		INSERT INTO saved_cities (name, created_at)
		VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET created_at = excluded.created_at
	`, name, time.Now())
	if err != nil {
		return fmt.Errorf("saving city: %w", err)
	}

	return nil
}

// List retrieves all saved cities ordered by name
func (r *Repository) List() ([]models.City, error) {
	if err := database.EnsureSchema(r.dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", r.dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query("SELECT id, name, created_at FROM saved_cities ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("querying cities: %w", err)
	}
	defer rows.Close()

	var cities []models.City
	for rows.Next() {
		var c models.City
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning city: %w", err)
		}
		cities = append(cities, c)
	}

	return cities, rows.Err()
}

// Delete removes a city by name
func (r *Repository) Delete(name string) error {
	if err := database.EnsureSchema(r.dbPath); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", r.dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	_, err = db.Exec("DELETE FROM saved_cities WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("deleting city: %w", err)
	}

	return nil
}

// Seed inserts the given city names without touching existing entries.
// Used once at startup to make the configured defaults selectable.
func (r *Repository) Seed(names []string) error {
	if err := database.EnsureSchema(r.dbPath); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", r.dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	for _, name := range names {
		if name == "" {
			continue
		}
		_, err = db.Exec(`
			INSERT INTO saved_cities (name, created_at)
			VALUES (?, ?)
			ON CONFLICT(name) DO NOTHING
		`, name, time.Now())
		if err != nil {
			return fmt.Errorf("seeding city %q: %w", name, err)
		}
	}

	return nil
}
