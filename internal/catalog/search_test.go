package catalog

import (
	"fmt"
	"testing"

	"github.com/google/uuid"

	"camstore/internal/models"
)

func TestSearchMatchesAcrossKinds(t *testing.T) {
	snap := fixtureSnapshot()

	results := snap.Search("cam")
	if len(results.Categories) != 2 {
		t.Errorf("categories: got %d, want 2 (dome-cameras, bullet-cameras)", len(results.Categories))
	}
	// "cam" matches DS-2CE through its description ("dome camera").
	if len(results.Products) != 1 {
		t.Fatalf("products: got %d, want 1", len(results.Products))
	}
	if results.Products[0].URL != "/cctv/dome-cameras/indoor/ds-2ce" {
		t.Errorf("product url: got %q", results.Products[0].URL)
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	snap := fixtureSnapshot()
	for _, q := range []string{"DOME", "Dome", "dOmE"} {
		results := snap.Search(q)
		if len(results.Categories) != 1 {
			t.Errorf("Search(%q) categories: got %d, want 1", q, len(results.Categories))
		}
	}
}

func TestSearchBrokenChainFallsBackToSlug(t *testing.T) {
	// No navbars: category URLs cannot resolve.
	snap := NewSnapshot(nil, fixtureCategories(), nil, nil)
	results := snap.Search("dome")
	if len(results.Categories) != 1 {
		t.Fatalf("categories: got %d, want 1", len(results.Categories))
	}
	if results.Categories[0].URL != "dome-cameras" {
		t.Errorf("broken-chain url: got %q, want bare slug dome-cameras", results.Categories[0].URL)
	}
}

func TestSearchCapsResults(t *testing.T) {
	var products []models.Product
	for i := 0; i < MaxProductHits+10; i++ {
		products = append(products, models.Product{
			ID:               uuid.New(),
			Name:             fmt.Sprintf("Camera %d", i),
			Slug:             fmt.Sprintf("camera-%d", i),
			NavbarCategoryID: navCCTVID,
			CategoryID:       catDomeID,
			IsActive:         true,
		})
	}
	snap := NewSnapshot(fixtureNavbars(), fixtureCategories(), nil, products)

	results := snap.Search("camera")
	if len(results.Products) != MaxProductHits {
		t.Errorf("products: got %d, want cap %d", len(results.Products), MaxProductHits)
	}
}

func TestSearchExcludesInactive(t *testing.T) {
	products := fixtureProducts()
	products[0].IsActive = false
	snap := NewSnapshot(fixtureNavbars(), fixtureCategories(), fixtureSubCategories(), products)

	results := snap.Search("ds-2ce")
	if len(results.Products) != 0 {
		t.Errorf("inactive product must not match, got %d hits", len(results.Products))
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	snap := fixtureSnapshot()
	results := snap.Search("   ")
	if len(results.Categories)+len(results.SubCategories)+len(results.Products) != 0 {
		t.Error("blank query must return no hits")
	}
}
