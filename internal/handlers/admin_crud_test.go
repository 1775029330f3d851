// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"camstore/internal/models"
	"camstore/internal/slug"
)

// postJSON builds a POST request with a JSON body.
func postJSON(t *testing.T, path string, v any) *http.Request {
	t.Helper()
	body, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
}

// seedNavbar creates a navbar category directly through the store and
// registers cleanup.
func seedNavbar(t *testing.T, env *testEnv, name string) *models.NavbarCategory {
	t.Helper()
	n, err := env.Navbars.Create(&models.NavbarCategory{Name: name, Slug: slug.Derive(name), IsActive: true})
	if err != nil {
		t.Fatalf("seed navbar: %v", err)
	}
	t.Cleanup(func() { env.Navbars.Delete(n.ID) })
	return n
}

func seedCategory(t *testing.T, env *testEnv, name string, navbarID uuid.UUID) *models.Category {
	t.Helper()
	c, err := env.Categories.Create(&models.Category{Name: name, Slug: slug.Derive(name), IsActive: true, NavbarCategoryID: navbarID})
	if err != nil {
		t.Fatalf("seed category: %v", err)
	}
	t.Cleanup(func() { env.Categories.Delete(c.ID) })
	return c
}

func seedSubCategory(t *testing.T, env *testEnv, name string, categoryID, navbarID uuid.UUID) *models.SubCategory {
	t.Helper()
	sc, err := env.SubCategories.Create(&models.SubCategory{
		Name: name, Slug: slug.Derive(name), IsActive: true,
		CategoryID: categoryID, NavbarCategoryID: &navbarID,
	})
	if err != nil {
		t.Fatalf("seed subcategory: %v", err)
	}
	t.Cleanup(func() { env.SubCategories.Delete(sc.ID) })
	return sc
}

// uniqueName appends a random suffix so parallel test runs never collide
// on the slug unique indexes.
func uniqueName(prefix string) string {
	return prefix + " " + uuid.NewString()[:8]
}

func TestCreateCategoryMissingName(t *testing.T) {
	env := newTestEnv(t)

	req := postJSON(t, "/api/admin/categories", categoryRequest{
		Name:             "",
		NavbarCategoryID: uuid.New(),
	})
	rec := httptest.NewRecorder()
	env.Admin.CreateCategory(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Name is required") {
		t.Errorf("body: got %q, want name validation message", rec.Body.String())
	}
}

func TestCreateCategoryUnknownNavbar(t *testing.T) {
	env := newTestEnv(t)

	req := postJSON(t, "/api/admin/categories", categoryRequest{
		Name:             uniqueName("Handler Cat"),
		IsActive:         true,
		NavbarCategoryID: uuid.New(),
	})
	rec := httptest.NewRecorder()
	env.Admin.CreateCategory(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "navbar category does not exist") {
		t.Errorf("body: got %q, want missing-parent message", rec.Body.String())
	}
}

func TestCreateCategoryDuplicateSlug(t *testing.T) {
	env := newTestEnv(t)
	navbar := seedNavbar(t, env, uniqueName("Handler Nav"))

	name := uniqueName("Handler Cat Dup")
	body := categoryRequest{Name: name, IsActive: true, NavbarCategoryID: navbar.ID}

	rec := httptest.NewRecorder()
	env.Admin.CreateCategory(rec, postJSON(t, "/api/admin/categories", body))
	if rec.Code != http.StatusCreated {
		t.Fatalf("first create: got %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var created models.Category
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	t.Cleanup(func() { env.Categories.Delete(created.ID) })

	rec = httptest.NewRecorder()
	env.Admin.CreateCategory(rec, postJSON(t, "/api/admin/categories", body))
	if rec.Code != http.StatusConflict {
		t.Fatalf("second create: got %d, want 409", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "duplicate_slug") {
		t.Errorf("body: got %q, want duplicate_slug code", rec.Body.String())
	}
}

func TestUpdateProductRejectsForeignSubcategory(t *testing.T) {
	env := newTestEnv(t)

	navbar := seedNavbar(t, env, uniqueName("Handler Nav"))
	cat := seedCategory(t, env, uniqueName("Handler Cat A"), navbar.ID)
	other := seedCategory(t, env, uniqueName("Handler Cat B"), navbar.ID)
	sub := seedSubCategory(t, env, uniqueName("Handler Sub"), cat.ID, navbar.ID)

	prodName := uniqueName("Handler Prod")
	prod, err := env.Products.Create(&models.Product{
		Name: prodName, Slug: slug.Derive(prodName), IsActive: true,
		Images:           models.StringList{"https://cdn.camstore.local/p.jpg"},
		NavbarCategoryID: navbar.ID, CategoryID: cat.ID, SubCategoryID: &sub.ID,
	})
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}
	t.Cleanup(func() { env.Products.Delete(prod.ID) })

	// Move the product to the other category while keeping the old
	// subcategory. The validator must reject the mismatched chain.
	r := chi.NewRouter()
	r.Put("/api/admin/products/{id}", env.Admin.UpdateProduct)

	update := productRequest{
		Name:             prodName,
		Images:           []string{"https://cdn.camstore.local/p.jpg"},
		IsActive:         true,
		NavbarCategoryID: navbar.ID,
		CategoryID:       other.ID,
		SubCategoryID:    &sub.ID,
	}
	body, err := json.Marshal(update)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/admin/products/"+prod.ID.String(), bytes.NewReader(body))
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "subcategory does not belong") {
		t.Errorf("body: got %q, want chain mismatch message", rec.Body.String())
	}

	// Nothing may have been persisted on validation failure.
	after, err := env.Products.FindByID(prod.ID)
	if err != nil {
		t.Fatalf("reload product: %v", err)
	}
	if after.CategoryID != cat.ID {
		t.Errorf("category changed despite rejected update: got %s, want %s", after.CategoryID, cat.ID)
	}
}
