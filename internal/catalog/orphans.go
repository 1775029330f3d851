// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"github.com/google/uuid"
)

// OrphanRef describes a dangling or mismatched parent reference left
// behind by a delete. Deletes never cascade; this report lets an
// operator clean up deliberately instead of the system guessing.
type OrphanRef struct {
	Kind    string    `json:"kind"`
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Slug    string    `json:"slug"`
	Field   string    `json:"field"`
	Problem string    `json:"problem"`
}

// OrphanReport lists every entity whose ancestor chain no longer
// resolves, grouped by kind.
type OrphanReport struct {
	Categories    []OrphanRef `json:"categories"`
	SubCategories []OrphanRef `json:"subcategories"`
	Products      []OrphanRef `json:"products"`
}

// Total returns the number of orphaned references in the report.
func (r OrphanReport) Total() int {
	return len(r.Categories) + len(r.SubCategories) + len(r.Products)
}

// Orphans scans the snapshot for dangling and mismatched references.
func (s *Snapshot) Orphans() OrphanReport {
	report := OrphanReport{
		Categories:    []OrphanRef{},
		SubCategories: []OrphanRef{},
		Products:      []OrphanRef{},
	}

	for i := range s.Categories {
		c := &s.Categories[i]
		if s.Navbar(c.NavbarCategoryID) == nil {
			report.Categories = append(report.Categories, OrphanRef{
				Kind: "category", ID: c.ID, Name: c.Name, Slug: c.Slug,
				Field: "navbar_category_id", Problem: "navbar category no longer exists",
			})
		}
	}

	for i := range s.SubCategories {
		sc := &s.SubCategories[i]
		cat := s.Category(sc.CategoryID)
		if cat == nil {
			report.SubCategories = append(report.SubCategories, OrphanRef{
				Kind: "subcategory", ID: sc.ID, Name: sc.Name, Slug: sc.Slug,
				Field: "category_id", Problem: "category no longer exists",
			})
			continue
		}
		if sc.NavbarCategoryID != nil && *sc.NavbarCategoryID != cat.NavbarCategoryID {
			report.SubCategories = append(report.SubCategories, OrphanRef{
				Kind: "subcategory", ID: sc.ID, Name: sc.Name, Slug: sc.Slug,
				Field: "navbar_category_id", Problem: "denormalized navbar category disagrees with owning category",
			})
		}
	}

	for i := range s.Products {
		p := &s.Products[i]
		if _, err := s.ProductURL(p); err != nil {
			// Products legitimately lacking a subcategory are not orphans.
			if p.SubCategoryID == nil && s.Category(p.CategoryID) != nil && s.Navbar(p.NavbarCategoryID) != nil {
				cat := s.Category(p.CategoryID)
				if cat.NavbarCategoryID == p.NavbarCategoryID {
					continue
				}
			}
			report.Products = append(report.Products, OrphanRef{
				Kind: "product", ID: p.ID, Name: p.Name, Slug: p.Slug,
				Field: "chain", Problem: err.Error(),
			})
		}
	}

	return report
}
