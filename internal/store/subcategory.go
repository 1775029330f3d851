// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"camstore/internal/models"
)

// SubCategoryStore manages third-level taxonomy nodes.
type SubCategoryStore struct {
	db *sql.DB
}

// NewSubCategoryStore returns a new SubCategoryStore.
func NewSubCategoryStore(db *sql.DB) *SubCategoryStore {
	return &SubCategoryStore{db: db}
}

const subCategoryColumns = `id, name, slug, description, keywords, is_active, category_id, navbar_category_id, created_at, updated_at`

// scanSubCategory scans a row into a SubCategory struct.
func scanSubCategory(scanner interface{ Scan(...any) error }) (*models.SubCategory, error) {
	var sc models.SubCategory
	err := scanner.Scan(
		&sc.ID, &sc.Name, &sc.Slug, &sc.Description, &sc.Keywords,
		&sc.IsActive, &sc.CategoryID, &sc.NavbarCategoryID, &sc.CreatedAt, &sc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

func (s *SubCategoryStore) queryList(query string, args ...any) ([]models.SubCategory, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	defer rows.Close()

	var items []models.SubCategory
	for rows.Next() {
		sc, err := scanSubCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subcategory: %w", err)
		}
		items = append(items, *sc)
	}
	return items, rows.Err()
}

// List returns all subcategories ordered by name.
func (s *SubCategoryStore) List() ([]models.SubCategory, error) {
	return s.queryList(`SELECT ` + subCategoryColumns + ` FROM subcategories ORDER BY name`)
}

// ListByCategory returns the subcategories under one category.
func (s *SubCategoryStore) ListByCategory(categoryID uuid.UUID) ([]models.SubCategory, error) {
	return s.queryList(`SELECT `+subCategoryColumns+` FROM subcategories WHERE category_id = $1 ORDER BY name`, categoryID)
}

// FindByID retrieves a subcategory by ID. Returns nil if not found.
func (s *SubCategoryStore) FindByID(id uuid.UUID) (*models.SubCategory, error) {
	row := s.db.QueryRow(`SELECT `+subCategoryColumns+` FROM subcategories WHERE id = $1`, id)
	sc, err := scanSubCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find subcategory by id: %w", err)
	}
	return sc, nil
}

// FindBySlug retrieves a subcategory by slug. Returns nil if not found.
func (s *SubCategoryStore) FindBySlug(slug string) (*models.SubCategory, error) {
	row := s.db.QueryRow(`SELECT `+subCategoryColumns+` FROM subcategories WHERE slug = $1`, slug)
	sc, err := scanSubCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find subcategory by slug: %w", err)
	}
	return sc, nil
}

// SlugExists reports whether a different subcategory already holds the slug.
func (s *SubCategoryStore) SlugExists(slug string, exclude uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM subcategories WHERE slug = $1 AND id <> $2)`,
		slug, exclude,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("subcategory slug exists: %w", err)
	}
	return exists, nil
}

// Create inserts a new subcategory and returns it.
func (s *SubCategoryStore) Create(sc *models.SubCategory) (*models.SubCategory, error) {
	row := s.db.QueryRow(`
		INSERT INTO subcategories (name, slug, description, keywords, is_active, category_id, navbar_category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+subCategoryColumns,
		sc.Name, sc.Slug, sc.Description, sc.Keywords, sc.IsActive, sc.CategoryID, sc.NavbarCategoryID,
	)
	result, err := scanSubCategory(row)
	if err != nil {
		if mapped := mapSlugConflict("subcategory", sc.Slug, err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("create subcategory: %w", err)
	}
	return result, nil
}

// Update replaces an existing subcategory.
func (s *SubCategoryStore) Update(sc *models.SubCategory) error {
	_, err := s.db.Exec(`
		UPDATE subcategories SET
			name = $1, slug = $2, description = $3, keywords = $4, is_active = $5,
			category_id = $6, navbar_category_id = $7, updated_at = NOW()
		WHERE id = $8
	`, sc.Name, sc.Slug, sc.Description, sc.Keywords, sc.IsActive, sc.CategoryID, sc.NavbarCategoryID, sc.ID)
	if err != nil {
		if mapped := mapSlugConflict("subcategory", sc.Slug, err); mapped != err {
			return mapped
		}
		return fmt.Errorf("update subcategory: %w", err)
	}
	return nil
}

// Delete removes a subcategory by ID without cascading. Products that
// still reference it keep their dangling reference and drop out of the
// sitemap until an admin reassigns them.
func (s *SubCategoryStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM subcategories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete subcategory: %w", err)
	}
	return nil
}

// Count returns the number of subcategories.
func (s *SubCategoryStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM subcategories`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count subcategories: %w", err)
	}
	return n, nil
}
