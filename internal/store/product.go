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

// ProductStore manages catalog products.
type ProductStore struct {
	db *sql.DB
}

// NewProductStore returns a new ProductStore.
func NewProductStore(db *sql.DB) *ProductStore {
	return &ProductStore{db: db}
}

const productColumns = `id, name, slug, description, features, images, meta_title, meta_description,
	keywords, faqs, is_active, navbar_category_id, category_id, subcategory_id, created_at, updated_at`

// scanProduct scans a row into a Product struct.
func scanProduct(scanner interface{ Scan(...any) error }) (*models.Product, error) {
	var p models.Product
	err := scanner.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.Features, &p.Images,
		&p.MetaTitle, &p.MetaDescription, &p.Keywords, &p.FAQs, &p.IsActive,
		&p.NavbarCategoryID, &p.CategoryID, &p.SubCategoryID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProductStore) queryList(query string, args ...any) ([]models.Product, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var items []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// List returns all products, newest first.
func (s *ProductStore) List() ([]models.Product, error) {
	return s.queryList(`SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`)
}

// ListByCategory returns products under one category, newest first.
func (s *ProductStore) ListByCategory(categoryID uuid.UUID) ([]models.Product, error) {
	return s.queryList(`SELECT `+productColumns+` FROM products WHERE category_id = $1 ORDER BY created_at DESC`, categoryID)
}

// ListBySubCategory returns products under one subcategory, newest first.
func (s *ProductStore) ListBySubCategory(subCategoryID uuid.UUID) ([]models.Product, error) {
	return s.queryList(`SELECT `+productColumns+` FROM products WHERE subcategory_id = $1 ORDER BY created_at DESC`, subCategoryID)
}

// FindByID retrieves a product by ID. Returns nil if not found.
func (s *ProductStore) FindByID(id uuid.UUID) (*models.Product, error) {
	row := s.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find product by id: %w", err)
	}
	return p, nil
}

// FindBySlug retrieves a product by slug. Products stay addressable by
// slug even when their ancestor chain is broken.
func (s *ProductStore) FindBySlug(slug string) (*models.Product, error) {
	row := s.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE slug = $1`, slug)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find product by slug: %w", err)
	}
	return p, nil
}

// SlugExists reports whether a different product already holds the slug.
func (s *ProductStore) SlugExists(slug string, exclude uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM products WHERE slug = $1 AND id <> $2)`,
		slug, exclude,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("product slug exists: %w", err)
	}
	return exists, nil
}

// Create inserts a new product and returns it.
func (s *ProductStore) Create(p *models.Product) (*models.Product, error) {
	row := s.db.QueryRow(`
		INSERT INTO products (name, slug, description, features, images, meta_title,
			meta_description, keywords, faqs, is_active, navbar_category_id, category_id, subcategory_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING `+productColumns,
		p.Name, p.Slug, p.Description, p.Features, p.Images, p.MetaTitle,
		p.MetaDescription, p.Keywords, p.FAQs, p.IsActive, p.NavbarCategoryID, p.CategoryID, p.SubCategoryID,
	)
	result, err := scanProduct(row)
	if err != nil {
		if mapped := mapSlugConflict("product", p.Slug, err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("create product: %w", err)
	}
	return result, nil
}

// Update replaces an existing product.
func (s *ProductStore) Update(p *models.Product) error {
	_, err := s.db.Exec(`
		UPDATE products SET
			name = $1, slug = $2, description = $3, features = $4, images = $5,
			meta_title = $6, meta_description = $7, keywords = $8, faqs = $9,
			is_active = $10, navbar_category_id = $11, category_id = $12,
			subcategory_id = $13, updated_at = NOW()
		WHERE id = $14
	`, p.Name, p.Slug, p.Description, p.Features, p.Images, p.MetaTitle,
		p.MetaDescription, p.Keywords, p.FAQs, p.IsActive,
		p.NavbarCategoryID, p.CategoryID, p.SubCategoryID, p.ID)
	if err != nil {
		if mapped := mapSlugConflict("product", p.Slug, err); mapped != err {
			return mapped
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete removes a product by ID.
func (s *ProductStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// Count returns the number of products.
func (s *ProductStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}
