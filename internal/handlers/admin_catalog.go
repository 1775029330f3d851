// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"camstore/internal/models"
)

type categoryRequest struct {
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Keywords         []string  `json:"keywords"`
	IsActive         bool      `json:"is_active"`
	NavbarCategoryID uuid.UUID `json:"navbar_category_id"`
}

func (req *categoryRequest) validate() string {
	if msg := validateName(req.Name); msg != "" {
		return msg
	}
	if msg := validateDescription(req.Description); msg != "" {
		return msg
	}
	return validateKeywords(req.Keywords)
}

// ListCategories returns all categories, active or not.
func (a *Admin) ListCategories(w http.ResponseWriter, r *http.Request) {
	items, err := a.categories.List()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// GetCategory returns one category by ID.
func (a *Admin) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		notFound(w)
		return
	}
	c, err := a.categories.FindByID(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if c == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// CreateCategory creates a category after checking its navbar parent.
func (a *Admin) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid JSON body")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, "validation", msg)
		return
	}

	s, err := slugFor("category", req.Name, uuid.Nil, a.categories.SlugExists)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	c := &models.Category{
		Name:             req.Name,
		Slug:             s,
		Description:      req.Description,
		Keywords:         req.Keywords,
		IsActive:         req.IsActive,
		NavbarCategoryID: req.NavbarCategoryID,
	}
	if err := a.validator.ValidateCategory(c); err != nil {
		writeDomainError(w, err)
		return
	}

	created, err := a.categories.Create(c)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	a.invalidateProjections(r.Context())
	slog.Info("category created", "id", created.ID, "slug", created.Slug)
	writeJSON(w, http.StatusCreated, created)
}

// UpdateCategory replaces a category, re-running parent validation.
func (a *Admin) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		notFound(w)
		return
	}
	existing, err := a.categories.FindByID(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if existing == nil {
		notFound(w)
		return
	}

	var req categoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid JSON body")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, "validation", msg)
		return
	}

	s, err := slugFor("category", req.Name, id, a.categories.SlugExists)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	existing.Name = req.Name
	existing.Slug = s
	existing.Description = req.Description
	existing.Keywords = req.Keywords
	existing.IsActive = req.IsActive
	existing.NavbarCategoryID = req.NavbarCategoryID

	if err := a.validator.ValidateCategory(existing); err != nil {
		writeDomainError(w, err)
		return
	}
	if err := a.categories.Update(existing); err != nil {
		writeDomainError(w, err)
		return
	}

	a.invalidateProjections(r.Context())
	writeJSON(w, http.StatusOK, existing)
}

// DeleteCategory removes a category without cascading.
func (a *Admin) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		notFound(w)
		return
	}
	if err := a.categories.Delete(id); err != nil {
		writeDomainError(w, err)
		return
	}
	a.invalidateProjections(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type subCategoryRequest struct {
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	Keywords         []string   `json:"keywords"`
	IsActive         bool       `json:"is_active"`
	CategoryID       uuid.UUID  `json:"category_id"`
	NavbarCategoryID *uuid.UUID `json:"navbar_category_id,omitempty"`
}

func (req *subCategoryRequest) validate() string {
	if msg := validateName(req.Name); msg != "" {
		return msg
	}
	if msg := validateDescription(req.Description); msg != "" {
		return msg
	}
	return validateKeywords(req.Keywords)
}

// ListSubCategories returns all subcategories, active or not.
func (a *Admin) ListSubCategories(w http.ResponseWriter, r *http.Request) {
	items, err := a.subcategories.List()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// GetSubCategory returns one subcategory by ID.
func (a *Admin) GetSubCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		notFound(w)
		return
	}
	sc, err := a.subcategories.FindByID(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if sc == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

// CreateSubCategory creates a subcategory. The denormalized navbar ref
// is derived from the owning category when omitted.
func (a *Admin) CreateSubCategory(w http.ResponseWriter, r *http.Request) {
	var req subCategoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid JSON body")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, "validation", msg)
		return
	}

	s, err := slugFor("subcategory", req.Name, uuid.Nil, a.subcategories.SlugExists)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	sc := &models.SubCategory{
		Name:             req.Name,
		Slug:             s,
		Description:      req.Description,
		Keywords:         req.Keywords,
		IsActive:         req.IsActive,
		CategoryID:       req.CategoryID,
		NavbarCategoryID: req.NavbarCategoryID,
	}
	if err := a.validator.ValidateSubCategory(sc); err != nil {
		writeDomainError(w, err)
		return
	}

	created, err := a.subcategories.Create(sc)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	a.invalidateProjections(r.Context())
	slog.Info("subcategory created", "id", created.ID, "slug", created.Slug)
	writeJSON(w, http.StatusCreated, created)
}

// UpdateSubCategory replaces a subcategory, re-running parent validation.
func (a *Admin) UpdateSubCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		notFound(w)
		return
	}
	existing, err := a.subcategories.FindByID(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if existing == nil {
		notFound(w)
		return
	}

	var req subCategoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid JSON body")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, "validation", msg)
		return
	}

	s, err := slugFor("subcategory", req.Name, id, a.subcategories.SlugExists)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	existing.Name = req.Name
	existing.Slug = s
	existing.Description = req.Description
	existing.Keywords = req.Keywords
	existing.IsActive = req.IsActive
	existing.CategoryID = req.CategoryID
	existing.NavbarCategoryID = req.NavbarCategoryID

	if err := a.validator.ValidateSubCategory(existing); err != nil {
		writeDomainError(w, err)
		return
	}
	if err := a.subcategories.Update(existing); err != nil {
		writeDomainError(w, err)
		return
	}

	a.invalidateProjections(r.Context())
	writeJSON(w, http.StatusOK, existing)
}

// DeleteSubCategory removes a subcategory without cascading.
func (a *Admin) DeleteSubCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		notFound(w)
		return
	}
	if err := a.subcategories.Delete(id); err != nil {
		writeDomainError(w, err)
		return
	}
	a.invalidateProjections(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type productRequest struct {
	Name             string       `json:"name"`
	Description      string       `json:"description"`
	Features         []string     `json:"features"`
	Images           []string     `json:"images"`
	MetaTitle        string       `json:"meta_title"`
	MetaDescription  string       `json:"meta_description"`
	Keywords         []string     `json:"keywords"`
	FAQs             []models.FAQ `json:"faqs"`
	IsActive         bool         `json:"is_active"`
	NavbarCategoryID uuid.UUID    `json:"navbar_category_id"`
	CategoryID       uuid.UUID    `json:"category_id"`
	SubCategoryID    *uuid.UUID   `json:"subcategory_id,omitempty"`
}

func (req *productRequest) validate() string {
	if msg := validateName(req.Name); msg != "" {
		return msg
	}
	if msg := validateDescription(req.Description); msg != "" {
		return msg
	}
	if msg := validateMeta(req.MetaTitle, req.MetaDescription); msg != "" {
		return msg
	}
	if msg := validateKeywords(req.Keywords); msg != "" {
		return msg
	}
	if len(req.Images) == 0 {
		return "At least one image is required."
	}
	if len(req.Images) > models.MaxProductImages {
		return "Too many images (max 4)."
	}
	return ""
}

// ListProducts returns all products, active or not.
func (a *Admin) ListProducts(w http.ResponseWriter, r *http.Request) {
	items, err := a.products.List()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// GetProduct returns one product by ID.
func (a *Admin) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		notFound(w)
		return
	}
	p, err := a.products.FindByID(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if p == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// CreateProduct creates a product after validating its full ancestor chain.
func (a *Admin) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid JSON body")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, "validation", msg)
		return
	}

	s, err := slugFor("product", req.Name, uuid.Nil, a.products.SlugExists)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	p := &models.Product{
		Name:             req.Name,
		Slug:             s,
		Description:      req.Description,
		Features:         req.Features,
		Images:           req.Images,
		MetaTitle:        req.MetaTitle,
		MetaDescription:  req.MetaDescription,
		Keywords:         req.Keywords,
		FAQs:             req.FAQs,
		IsActive:         req.IsActive,
		NavbarCategoryID: req.NavbarCategoryID,
		CategoryID:       req.CategoryID,
		SubCategoryID:    req.SubCategoryID,
	}
	if err := a.validator.ValidateProduct(p); err != nil {
		writeDomainError(w, err)
		return
	}

	created, err := a.products.Create(p)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	a.invalidateProjections(r.Context())
	slog.Info("product created", "id", created.ID, "slug", created.Slug)
	writeJSON(w, http.StatusCreated, created)
}

// UpdateProduct replaces a product, re-running chain validation. Moving
// a product to another category without fixing a stale subcategory is
// rejected by the validator.
func (a *Admin) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		notFound(w)
		return
	}
	existing, err := a.products.FindByID(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if existing == nil {
		notFound(w)
		return
	}

	var req productRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid JSON body")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, "validation", msg)
		return
	}

	s, err := slugFor("product", req.Name, id, a.products.SlugExists)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	existing.Name = req.Name
	existing.Slug = s
	existing.Description = req.Description
	existing.Features = req.Features
	existing.Images = req.Images
	existing.MetaTitle = req.MetaTitle
	existing.MetaDescription = req.MetaDescription
	existing.Keywords = req.Keywords
	existing.FAQs = req.FAQs
	existing.IsActive = req.IsActive
	existing.NavbarCategoryID = req.NavbarCategoryID
	existing.CategoryID = req.CategoryID
	existing.SubCategoryID = req.SubCategoryID

	if err := a.validator.ValidateProduct(existing); err != nil {
		writeDomainError(w, err)
		return
	}
	if err := a.products.Update(existing); err != nil {
		writeDomainError(w, err)
		return
	}

	a.invalidateProjections(r.Context())
	writeJSON(w, http.StatusOK, existing)
}

// DeleteProduct removes a product.
func (a *Admin) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		notFound(w)
		return
	}
	if err := a.products.Delete(id); err != nil {
		writeDomainError(w, err)
		return
	}
	a.invalidateProjections(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
