package store

import (
	"testing"

	"camstore/internal/models"
)

func TestProductCRUDWithJSONBFields(t *testing.T) {
	db := testDB(t)
	navbars := NewNavbarCategoryStore(db)
	cats := NewCategoryStore(db)
	products := NewProductStore(db)
	t.Cleanup(func() {
		cleanSlugs(t, db, "products", "test-ds-2ce")
		cleanSlugs(t, db, "categories", "test-prod-cat")
		cleanSlugs(t, db, "navbar_categories", "test-prod-navbar")
	})

	navbar, err := navbars.Create(&models.NavbarCategory{Name: "Test Prod Navbar", Slug: "test-prod-navbar", IsActive: true})
	if err != nil {
		t.Fatalf("create navbar: %v", err)
	}
	cat, err := cats.Create(&models.Category{Name: "Test Prod Cat", Slug: "test-prod-cat", NavbarCategoryID: navbar.ID, IsActive: true})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}

	created, err := products.Create(&models.Product{
		Name:        "Test DS-2CE",
		Slug:        "test-ds-2ce",
		Description: "1080p dome camera",
		Features:    models.StringList{"IR night vision", "IP67"},
		Images:      models.StringList{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
		MetaTitle:   "DS-2CE dome camera",
		Keywords:    models.StringList{"dome", "1080p"},
		FAQs: models.FAQList{
			{Question: "Is it outdoor rated?", Answer: "Yes, IP67."},
		},
		IsActive:         true,
		NavbarCategoryID: navbar.ID,
		CategoryID:       cat.ID,
	})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}

	found, err := products.FindBySlug("test-ds-2ce")
	if err != nil {
		t.Fatalf("find by slug: %v", err)
	}
	if found == nil {
		t.Fatal("product not found by slug")
	}
	if len(found.Features) != 2 || len(found.Images) != 2 {
		t.Errorf("JSONB lists roundtrip: features %v, images %v", found.Features, found.Images)
	}
	if len(found.FAQs) != 1 || found.FAQs[0].Question != "Is it outdoor rated?" {
		t.Errorf("FAQ roundtrip: %+v", found.FAQs)
	}
	if found.SubCategoryID != nil {
		t.Error("subcategory should be null")
	}

	found.Description = "updated description"
	if err := products.Update(found); err != nil {
		t.Fatalf("update: %v", err)
	}
	again, err := products.FindByID(created.ID)
	if err != nil || again == nil {
		t.Fatalf("find after update: %v", err)
	}
	if again.Description != "updated description" {
		t.Errorf("description not updated: %q", again.Description)
	}
}
