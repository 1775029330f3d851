// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"fmt"

	"github.com/google/uuid"

	"camstore/internal/models"
)

// Stores bundles the read-side dependencies needed to load a Snapshot.
// Each field is satisfied by the corresponding store in internal/store.
type Stores struct {
	Navbars       interface{ List() ([]models.NavbarCategory, error) }
	Categories    interface{ List() ([]models.Category, error) }
	SubCategories interface{ List() ([]models.SubCategory, error) }
	Products      interface{ List() ([]models.Product, error) }
}

// Snapshot is a point-in-time copy of the whole catalog with adjacency
// indexes from parent ID to children. It is built once per projection
// pass so sitemap and search traversals never re-scan the full lists
// per node. A Snapshot may be slightly stale relative to in-flight
// writes; sitemap and search tolerate that.
type Snapshot struct {
	// Ordered as returned by the stores (sort_order, then name).
	Navbars       []models.NavbarCategory
	Categories    []models.Category
	SubCategories []models.SubCategory
	Products      []models.Product

	navbarByID map[uuid.UUID]*models.NavbarCategory
	catByID    map[uuid.UUID]*models.Category
	subByID    map[uuid.UUID]*models.SubCategory

	catsByNavbar map[uuid.UUID][]*models.Category
	subsByCat    map[uuid.UUID][]*models.SubCategory
	prodsBySub   map[uuid.UUID][]*models.Product
}

// Load reads all four entity kinds and builds a Snapshot.
func Load(s Stores) (*Snapshot, error) {
	navbars, err := s.Navbars.List()
	if err != nil {
		return nil, fmt.Errorf("load navbar categories: %w", err)
	}
	cats, err := s.Categories.List()
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	subs, err := s.SubCategories.List()
	if err != nil {
		return nil, fmt.Errorf("load subcategories: %w", err)
	}
	products, err := s.Products.List()
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	return NewSnapshot(navbars, cats, subs, products), nil
}

// NewSnapshot indexes the given entity slices. The slices are retained;
// callers must not mutate them afterwards.
func NewSnapshot(navbars []models.NavbarCategory, cats []models.Category, subs []models.SubCategory, products []models.Product) *Snapshot {
	snap := &Snapshot{
		Navbars:       navbars,
		Categories:    cats,
		SubCategories: subs,
		Products:      products,

		navbarByID: make(map[uuid.UUID]*models.NavbarCategory, len(navbars)),
		catByID:    make(map[uuid.UUID]*models.Category, len(cats)),
		subByID:    make(map[uuid.UUID]*models.SubCategory, len(subs)),

		catsByNavbar: make(map[uuid.UUID][]*models.Category),
		subsByCat:    make(map[uuid.UUID][]*models.SubCategory),
		prodsBySub:   make(map[uuid.UUID][]*models.Product),
	}

	for i := range navbars {
		snap.navbarByID[navbars[i].ID] = &navbars[i]
	}
	for i := range cats {
		c := &cats[i]
		snap.catByID[c.ID] = c
		snap.catsByNavbar[c.NavbarCategoryID] = append(snap.catsByNavbar[c.NavbarCategoryID], c)
	}
	for i := range subs {
		sc := &subs[i]
		snap.subByID[sc.ID] = sc
		snap.subsByCat[sc.CategoryID] = append(snap.subsByCat[sc.CategoryID], sc)
	}
	for i := range products {
		p := &products[i]
		if p.SubCategoryID != nil {
			snap.prodsBySub[*p.SubCategoryID] = append(snap.prodsBySub[*p.SubCategoryID], p)
		}
	}

	return snap
}

// Navbar returns the navbar category with the given ID, or nil.
func (s *Snapshot) Navbar(id uuid.UUID) *models.NavbarCategory { return s.navbarByID[id] }

// Category returns the category with the given ID, or nil.
func (s *Snapshot) Category(id uuid.UUID) *models.Category { return s.catByID[id] }

// SubCategory returns the subcategory with the given ID, or nil.
func (s *Snapshot) SubCategory(id uuid.UUID) *models.SubCategory { return s.subByID[id] }

// CategoriesOf returns the categories under a navbar category.
func (s *Snapshot) CategoriesOf(navbarID uuid.UUID) []*models.Category {
	return s.catsByNavbar[navbarID]
}

// SubCategoriesOf returns the subcategories under a category.
func (s *Snapshot) SubCategoriesOf(categoryID uuid.UUID) []*models.SubCategory {
	return s.subsByCat[categoryID]
}

// ProductsOf returns the products under a subcategory.
func (s *Snapshot) ProductsOf(subCategoryID uuid.UUID) []*models.Product {
	return s.prodsBySub[subCategoryID]
}
