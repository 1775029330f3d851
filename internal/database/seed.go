package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Seed populates the database with initial development data: a default
// admin user and a small sample catalog. No-op if data already exists.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (email, password_hash, display_name)
		VALUES ($1, $2, $3)
	`, "admin@camstore.local", string(hash), "Admin")
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	if err := seedCatalog(db); err != nil {
		return err
	}

	slog.Info("database seeded with default admin user",
		"email", "admin@camstore.local",
		"password", "admin",
	)

	return nil
}

// seedCatalog inserts one full sample chain so the public endpoints,
// sitemap, and search return something in a fresh dev environment.
func seedCatalog(db *sql.DB) error {
	var navbarID, categoryID, subCategoryID string

	err := db.QueryRow(`
		INSERT INTO navbar_categories (name, slug, description, sort_order, keywords)
		VALUES ('CCTV', 'cctv', 'Video surveillance systems', 0, '["cctv","surveillance","security cameras"]')
		RETURNING id
	`).Scan(&navbarID)
	if err != nil {
		return fmt.Errorf("seed navbar category: %w", err)
	}

	err = db.QueryRow(`
		INSERT INTO categories (name, slug, description, navbar_category_id, keywords)
		VALUES ('Dome Cameras', 'dome-cameras', 'Ceiling-mounted dome cameras', $1, '["dome"]')
		RETURNING id
	`, navbarID).Scan(&categoryID)
	if err != nil {
		return fmt.Errorf("seed category: %w", err)
	}

	err = db.QueryRow(`
		INSERT INTO subcategories (name, slug, description, category_id, navbar_category_id)
		VALUES ('Indoor', 'indoor', 'Indoor dome cameras', $1, $2)
		RETURNING id
	`, categoryID, navbarID).Scan(&subCategoryID)
	if err != nil {
		return fmt.Errorf("seed subcategory: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO products (name, slug, description, features, images, meta_title,
			navbar_category_id, category_id, subcategory_id)
		VALUES ('DS-2CE', 'ds-2ce', '1080p Turbo HD indoor dome camera',
			'["IR night vision up to 20m","2.8mm fixed lens"]',
			'["https://cdn.camstore.local/ds-2ce.jpg"]',
			'DS-2CE 1080p dome camera', $1, $2, $3)
	`, navbarID, categoryID, subCategoryID)
	if err != nil {
		return fmt.Errorf("seed product: %w", err)
	}

	return nil
}
