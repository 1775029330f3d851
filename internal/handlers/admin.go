// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"camstore/internal/cache"
	"camstore/internal/catalog"
	"camstore/internal/models"
	"camstore/internal/slug"
	"camstore/internal/store"
)

// Admin serves the authenticated back-office API: catalog CRUD, contact
// management, dashboard stats, and maintenance reports.
type Admin struct {
	navbars       *store.NavbarCategoryStore
	categories    *store.CategoryStore
	subcategories *store.SubCategoryStore
	products      *store.ProductStore
	contacts      *store.ContactStore
	validator     *catalog.Validator
	sitemapCache  *cache.SitemapCache
}

// NewAdmin creates a new Admin handler group.
func NewAdmin(
	navbars *store.NavbarCategoryStore,
	categories *store.CategoryStore,
	subcategories *store.SubCategoryStore,
	products *store.ProductStore,
	contacts *store.ContactStore,
	sitemapCache *cache.SitemapCache,
) *Admin {
	return &Admin{
		navbars:       navbars,
		categories:    categories,
		subcategories: subcategories,
		products:      products,
		contacts:      contacts,
		validator: &catalog.Validator{
			Navbars:       navbars,
			Categories:    categories,
			SubCategories: subcategories,
		},
		sitemapCache: sitemapCache,
	}
}

// invalidateProjections drops cached projections after a catalog mutation.
func (a *Admin) invalidateProjections(ctx context.Context) {
	a.sitemapCache.Invalidate(ctx)
}

// Dashboard returns entity counts and the unread contact count.
func (a *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	counts := map[string]int{}
	for _, c := range []struct {
		name  string
		count func() (int, error)
	}{
		{"navbar_categories", a.navbars.Count},
		{"categories", a.categories.Count},
		{"subcategories", a.subcategories.Count},
		{"products", a.products.Count},
		{"contacts", a.contacts.Count},
	} {
		n, err := c.count()
		if err != nil {
			writeDomainError(w, err)
			return
		}
		counts[c.name] = n
	}

	unread, err := a.contacts.CountByStatus(models.ContactStatusUnread)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	counts["unread_contacts"] = unread

	writeJSON(w, http.StatusOK, counts)
}

// Orphans reports dangling and mismatched parent references. Deletes
// never cascade, so this is how an operator finds what needs cleanup.
func (a *Admin) Orphans(w http.ResponseWriter, r *http.Request) {
	snap, err := catalog.Load(catalog.Stores{
		Navbars:       a.navbars,
		Categories:    a.categories,
		SubCategories: a.subcategories,
		Products:      a.products,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap.Orphans())
}

// slugFor derives the slug for a name and runs the advisory uniqueness
// check. The database unique index remains the final arbiter.
func slugFor(kind, name string, exclude uuid.UUID, exists func(string, uuid.UUID) (bool, error)) (string, error) {
	s := slug.Derive(name)
	if s == "" {
		return "", &catalog.ValidationError{Field: "name", Message: "does not produce a usable slug"}
	}
	taken, err := exists(s, exclude)
	if err != nil {
		return "", err
	}
	if taken {
		return "", &catalog.DuplicateSlugError{Kind: kind, Slug: s}
	}
	return s, nil
}

type navbarCategoryRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	SortOrder   int      `json:"sort_order"`
	IsActive    bool     `json:"is_active"`
	Keywords    []string `json:"keywords"`
}

func (req *navbarCategoryRequest) validate() string {
	if msg := validateName(req.Name); msg != "" {
		return msg
	}
	if msg := validateDescription(req.Description); msg != "" {
		return msg
	}
	return validateKeywords(req.Keywords)
}

// ListNavbarCategories returns all navbar categories, active or not.
func (a *Admin) ListNavbarCategories(w http.ResponseWriter, r *http.Request) {
	items, err := a.navbars.List()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// GetNavbarCategory returns one navbar category by ID.
func (a *Admin) GetNavbarCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		notFound(w)
		return
	}
	n, err := a.navbars.FindByID(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if n == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

// CreateNavbarCategory creates a top-level node. The slug is derived
// from the name; collisions are rejected, never suffixed.
func (a *Admin) CreateNavbarCategory(w http.ResponseWriter, r *http.Request) {
	var req navbarCategoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid JSON body")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, "validation", msg)
		return
	}

	s, err := slugFor("navbar category", req.Name, uuid.Nil, a.navbars.SlugExists)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	created, err := a.navbars.Create(&models.NavbarCategory{
		Name:        req.Name,
		Slug:        s,
		Description: req.Description,
		SortOrder:   req.SortOrder,
		IsActive:    req.IsActive,
		Keywords:    req.Keywords,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	a.invalidateProjections(r.Context())
	slog.Info("navbar category created", "id", created.ID, "slug", created.Slug)
	writeJSON(w, http.StatusCreated, created)
}

// UpdateNavbarCategory replaces a navbar category. Renaming re-derives
// the slug.
func (a *Admin) UpdateNavbarCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		notFound(w)
		return
	}
	existing, err := a.navbars.FindByID(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if existing == nil {
		notFound(w)
		return
	}

	var req navbarCategoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid JSON body")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, "validation", msg)
		return
	}

	s, err := slugFor("navbar category", req.Name, id, a.navbars.SlugExists)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	existing.Name = req.Name
	existing.Slug = s
	existing.Description = req.Description
	existing.SortOrder = req.SortOrder
	existing.IsActive = req.IsActive
	existing.Keywords = req.Keywords

	if err := a.navbars.Update(existing); err != nil {
		writeDomainError(w, err)
		return
	}

	a.invalidateProjections(r.Context())
	writeJSON(w, http.StatusOK, existing)
}

// DeleteNavbarCategory removes a navbar category. Dependent categories
// are left in place and show up in the orphan report.
func (a *Admin) DeleteNavbarCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		notFound(w)
		return
	}
	if err := a.navbars.Delete(id); err != nil {
		writeDomainError(w, err)
		return
	}
	a.invalidateProjections(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
