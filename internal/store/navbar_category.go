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

// NavbarCategoryStore manages top-level taxonomy nodes.
type NavbarCategoryStore struct {
	db *sql.DB
}

// NewNavbarCategoryStore returns a new NavbarCategoryStore.
func NewNavbarCategoryStore(db *sql.DB) *NavbarCategoryStore {
	return &NavbarCategoryStore{db: db}
}

const navbarCategoryColumns = `id, name, slug, description, sort_order, is_active, keywords, created_at, updated_at`

// scanNavbarCategory scans a row into a NavbarCategory struct.
func scanNavbarCategory(scanner interface{ Scan(...any) error }) (*models.NavbarCategory, error) {
	var n models.NavbarCategory
	err := scanner.Scan(
		&n.ID, &n.Name, &n.Slug, &n.Description,
		&n.SortOrder, &n.IsActive, &n.Keywords, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// List returns all navbar categories ordered by sort_order, then name.
func (s *NavbarCategoryStore) List() ([]models.NavbarCategory, error) {
	rows, err := s.db.Query(`SELECT ` + navbarCategoryColumns + ` FROM navbar_categories ORDER BY sort_order, name`)
	if err != nil {
		return nil, fmt.Errorf("list navbar categories: %w", err)
	}
	defer rows.Close()

	var items []models.NavbarCategory
	for rows.Next() {
		n, err := scanNavbarCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan navbar category: %w", err)
		}
		items = append(items, *n)
	}
	return items, rows.Err()
}

// FindByID retrieves a navbar category by ID. Returns nil if not found.
func (s *NavbarCategoryStore) FindByID(id uuid.UUID) (*models.NavbarCategory, error) {
	row := s.db.QueryRow(`SELECT `+navbarCategoryColumns+` FROM navbar_categories WHERE id = $1`, id)
	n, err := scanNavbarCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find navbar category by id: %w", err)
	}
	return n, nil
}

// FindBySlug retrieves a navbar category by slug. Returns nil if not found.
func (s *NavbarCategoryStore) FindBySlug(slug string) (*models.NavbarCategory, error) {
	row := s.db.QueryRow(`SELECT `+navbarCategoryColumns+` FROM navbar_categories WHERE slug = $1`, slug)
	n, err := scanNavbarCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find navbar category by slug: %w", err)
	}
	return n, nil
}

// SlugExists reports whether a different navbar category already holds
// the slug. Advisory only; the unique index is the final arbiter.
func (s *NavbarCategoryStore) SlugExists(slug string, exclude uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM navbar_categories WHERE slug = $1 AND id <> $2)`,
		slug, exclude,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("navbar category slug exists: %w", err)
	}
	return exists, nil
}

// Create inserts a new navbar category and returns it.
func (s *NavbarCategoryStore) Create(n *models.NavbarCategory) (*models.NavbarCategory, error) {
	row := s.db.QueryRow(`
		INSERT INTO navbar_categories (name, slug, description, sort_order, is_active, keywords)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+navbarCategoryColumns,
		n.Name, n.Slug, n.Description, n.SortOrder, n.IsActive, n.Keywords,
	)
	result, err := scanNavbarCategory(row)
	if err != nil {
		if mapped := mapSlugConflict("navbar category", n.Slug, err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("create navbar category: %w", err)
	}
	return result, nil
}

// Update replaces an existing navbar category.
func (s *NavbarCategoryStore) Update(n *models.NavbarCategory) error {
	_, err := s.db.Exec(`
		UPDATE navbar_categories SET
			name = $1, slug = $2, description = $3, sort_order = $4,
			is_active = $5, keywords = $6, updated_at = NOW()
		WHERE id = $7
	`, n.Name, n.Slug, n.Description, n.SortOrder, n.IsActive, n.Keywords, n.ID)
	if err != nil {
		if mapped := mapSlugConflict("navbar category", n.Slug, err); mapped != err {
			return mapped
		}
		return fmt.Errorf("update navbar category: %w", err)
	}
	return nil
}

// Delete removes a navbar category by ID. Dependent categories keep
// their references; cleanup is an explicit admin action.
func (s *NavbarCategoryStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM navbar_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete navbar category: %w", err)
	}
	return nil
}

// Count returns the number of navbar categories.
func (s *NavbarCategoryStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM navbar_categories`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count navbar categories: %w", err)
	}
	return n, nil
}
