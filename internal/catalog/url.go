// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"camstore/internal/models"
)

// NavbarURL composes the canonical path for a navbar category: /{slug}.
func (s *Snapshot) NavbarURL(n *models.NavbarCategory) string {
	return "/" + n.Slug
}

// CategoryURL composes /{navbarSlug}/{categorySlug}. Returns a
// BrokenChainError if the owning navbar category no longer exists.
func (s *Snapshot) CategoryURL(c *models.Category) (string, error) {
	navbar := s.Navbar(c.NavbarCategoryID)
	if navbar == nil {
		return "", &BrokenChainError{Kind: "category", ID: c.ID, Missing: "navbar category"}
	}
	return "/" + navbar.Slug + "/" + c.Slug, nil
}

// SubCategoryURL composes /{navbarSlug}/{categorySlug}/{subSlug}.
// The chain resolves through the owning category's navbar reference.
func (s *Snapshot) SubCategoryURL(sc *models.SubCategory) (string, error) {
	cat := s.Category(sc.CategoryID)
	if cat == nil {
		return "", &BrokenChainError{Kind: "subcategory", ID: sc.ID, Missing: "category"}
	}
	base, err := s.CategoryURL(cat)
	if err != nil {
		return "", &BrokenChainError{Kind: "subcategory", ID: sc.ID, Missing: "navbar category"}
	}
	return base + "/" + sc.Slug, nil
}

// ProductURL composes /{navbarSlug}/{categorySlug}/{subSlug}/{productSlug}.
// A product without a subcategory has no canonical nested URL; it is
// reported as a broken chain and callers fall back to the bare slug.
// Ancestors must actually form the product's chain: the subcategory must
// belong to the product's category and the category to its navbar.
func (s *Snapshot) ProductURL(p *models.Product) (string, error) {
	if p.SubCategoryID == nil {
		return "", &BrokenChainError{Kind: "product", ID: p.ID, Missing: "subcategory"}
	}
	sub := s.SubCategory(*p.SubCategoryID)
	if sub == nil {
		return "", &BrokenChainError{Kind: "product", ID: p.ID, Missing: "subcategory"}
	}
	if sub.CategoryID != p.CategoryID {
		return "", &BrokenChainError{Kind: "product", ID: p.ID, Missing: "subcategory outside product category"}
	}
	cat := s.Category(p.CategoryID)
	if cat == nil {
		return "", &BrokenChainError{Kind: "product", ID: p.ID, Missing: "category"}
	}
	if cat.NavbarCategoryID != p.NavbarCategoryID {
		return "", &BrokenChainError{Kind: "product", ID: p.ID, Missing: "category outside product navbar"}
	}
	navbar := s.Navbar(p.NavbarCategoryID)
	if navbar == nil {
		return "", &BrokenChainError{Kind: "product", ID: p.ID, Missing: "navbar category"}
	}
	return "/" + navbar.Slug + "/" + cat.Slug + "/" + sub.Slug + "/" + p.Slug, nil
}
