// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"camstore/internal/cache"
	"camstore/internal/catalog"
	"camstore/internal/models"
	"camstore/internal/store"
)

// Public serves the unauthenticated catalog API consumed by the storefront.
type Public struct {
	navbars       *store.NavbarCategoryStore
	categories    *store.CategoryStore
	subcategories *store.SubCategoryStore
	products      *store.ProductStore
	contacts      *store.ContactStore
	sitemapCache  *cache.SitemapCache
	baseURL       string
}

// NewPublic creates a new Public handler group.
func NewPublic(
	navbars *store.NavbarCategoryStore,
	categories *store.CategoryStore,
	subcategories *store.SubCategoryStore,
	products *store.ProductStore,
	contacts *store.ContactStore,
	sitemapCache *cache.SitemapCache,
	baseURL string,
) *Public {
	return &Public{
		navbars:       navbars,
		categories:    categories,
		subcategories: subcategories,
		products:      products,
		contacts:      contacts,
		sitemapCache:  sitemapCache,
		baseURL:       baseURL,
	}
}

// stores bundles the read side for snapshot loading.
func (p *Public) stores() catalog.Stores {
	return catalog.Stores{
		Navbars:       p.navbars,
		Categories:    p.categories,
		SubCategories: p.subcategories,
		Products:      p.products,
	}
}

// Health reports service liveness.
func (p *Public) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListNavbarCategories returns the active top-level navigation nodes.
func (p *Public) ListNavbarCategories(w http.ResponseWriter, r *http.Request) {
	items, err := p.navbars.List()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	active := make([]models.NavbarCategory, 0, len(items))
	for _, n := range items {
		if n.IsActive {
			active = append(active, n)
		}
	}
	writeJSON(w, http.StatusOK, active)
}

// ListCategories returns active categories, optionally filtered by
// ?navbar_category_id=.
func (p *Public) ListCategories(w http.ResponseWriter, r *http.Request) {
	items, err := p.listCategories(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	active := make([]models.Category, 0, len(items))
	for _, c := range items {
		if c.IsActive {
			active = append(active, c)
		}
	}
	writeJSON(w, http.StatusOK, active)
}

func (p *Public) listCategories(r *http.Request) ([]models.Category, error) {
	if raw := r.URL.Query().Get("navbar_category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return []models.Category{}, nil
		}
		return p.categories.ListByNavbar(id)
	}
	return p.categories.List()
}

// ListSubCategories returns active subcategories, optionally filtered by
// ?category_id=.
func (p *Public) ListSubCategories(w http.ResponseWriter, r *http.Request) {
	items, err := p.listSubCategories(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	active := make([]models.SubCategory, 0, len(items))
	for _, sc := range items {
		if sc.IsActive {
			active = append(active, sc)
		}
	}
	writeJSON(w, http.StatusOK, active)
}

func (p *Public) listSubCategories(r *http.Request) ([]models.SubCategory, error) {
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return []models.SubCategory{}, nil
		}
		return p.subcategories.ListByCategory(id)
	}
	return p.subcategories.List()
}

// ListProducts returns active products, optionally filtered by
// ?category_id= or ?subcategory_id=.
func (p *Public) ListProducts(w http.ResponseWriter, r *http.Request) {
	items, err := p.listProducts(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	active := make([]models.Product, 0, len(items))
	for _, prod := range items {
		if prod.IsActive {
			active = append(active, prod)
		}
	}
	writeJSON(w, http.StatusOK, active)
}

func (p *Public) listProducts(r *http.Request) ([]models.Product, error) {
	q := r.URL.Query()
	if raw := q.Get("subcategory_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return []models.Product{}, nil
		}
		return p.products.ListBySubCategory(id)
	}
	if raw := q.Get("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return []models.Product{}, nil
		}
		return p.products.ListByCategory(id)
	}
	return p.products.List()
}

// GetProduct returns one active product by ID.
func (p *Public) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		notFound(w)
		return
	}
	prod, err := p.products.FindByID(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if prod == nil || !prod.IsActive {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, prod)
}

// GetProductBySlug returns one active product by slug. Products stay
// addressable by slug even when their ancestor chain is broken.
func (p *Public) GetProductBySlug(w http.ResponseWriter, r *http.Request) {
	prod, err := p.products.FindBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if prod == nil || !prod.IsActive {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, prod)
}

// Search runs the free-text catalog search over a fresh snapshot.
func (p *Public) Search(w http.ResponseWriter, r *http.Request) {
	snap, err := catalog.Load(p.stores())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap.Search(r.URL.Query().Get("q")))
}

// Sitemap serves the rendered sitemap XML, from Valkey when cached.
func (p *Public) Sitemap(w http.ResponseWriter, r *http.Request) {
	if body, ok := p.sitemapCache.Get(r.Context()); ok {
		w.Header().Set("Content-Type", "application/xml")
		w.Write(body)
		return
	}

	snap, err := catalog.Load(p.stores())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	body, err := catalog.RenderSitemapXML(snap.Sitemap(p.baseURL))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	p.sitemapCache.Set(r.Context(), body)

	w.Header().Set("Content-Type", "application/xml")
	w.Write(body)
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// SubmitContact accepts a public contact-form message. Rate limiting is
// applied by the router.
func (p *Public) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid JSON body")
		return
	}

	if msg := validateContact(req.Name, req.Email, req.Subject, req.Body); msg != "" {
		writeError(w, http.StatusBadRequest, "validation", msg)
		return
	}

	created, err := p.contacts.Create(&models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	slog.Info("contact message received", "id", created.ID, "email", created.Email)
	writeJSON(w, http.StatusCreated, created)
}
