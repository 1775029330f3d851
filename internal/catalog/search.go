// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"strings"

	"github.com/google/uuid"
)

// Result caps per entity kind.
const (
	MaxCategoryHits    = 10
	MaxSubCategoryHits = 10
	MaxProductHits     = 15
)

// Hit is a single search match. URL carries the canonical nested path
// when the ancestor chain resolves, or the bare slug when it is broken.
type Hit struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
	URL  string    `json:"url"`
}

// SearchResults groups hits by entity kind.
type SearchResults struct {
	Categories    []Hit `json:"categories"`
	SubCategories []Hit `json:"subcategories"`
	Products      []Hit `json:"products"`
}

// Search performs a case-insensitive substring match over name and slug
// (and description for products) across categories, subcategories, and
// products. Each group is capped independently. Inactive entities are
// excluded.
func (s *Snapshot) Search(query string) SearchResults {
	q := strings.ToLower(strings.TrimSpace(query))
	results := SearchResults{
		Categories:    []Hit{},
		SubCategories: []Hit{},
		Products:      []Hit{},
	}
	if q == "" {
		return results
	}

	for i := range s.Categories {
		if len(results.Categories) >= MaxCategoryHits {
			break
		}
		c := &s.Categories[i]
		if !c.IsActive || !matches(q, c.Name, c.Slug) {
			continue
		}
		url, err := s.CategoryURL(c)
		if err != nil {
			url = c.Slug
		}
		results.Categories = append(results.Categories, Hit{ID: c.ID, Name: c.Name, Slug: c.Slug, URL: url})
	}

	for i := range s.SubCategories {
		if len(results.SubCategories) >= MaxSubCategoryHits {
			break
		}
		sc := &s.SubCategories[i]
		if !sc.IsActive || !matches(q, sc.Name, sc.Slug) {
			continue
		}
		url, err := s.SubCategoryURL(sc)
		if err != nil {
			url = sc.Slug
		}
		results.SubCategories = append(results.SubCategories, Hit{ID: sc.ID, Name: sc.Name, Slug: sc.Slug, URL: url})
	}

	for i := range s.Products {
		if len(results.Products) >= MaxProductHits {
			break
		}
		p := &s.Products[i]
		if !p.IsActive || !matches(q, p.Name, p.Slug, p.Description) {
			continue
		}
		url, err := s.ProductURL(p)
		if err != nil {
			url = p.Slug
		}
		results.Products = append(results.Products, Hit{ID: p.ID, Name: p.Name, Slug: p.Slug, URL: url})
	}

	return results
}

// matches reports whether q is a substring of any field, case-insensitively.
func matches(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
