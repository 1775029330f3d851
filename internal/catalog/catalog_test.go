// catalog_test.go provides shared in-memory fixtures for the catalog
// tests: a small CCTV taxonomy and fake stores for the validator.
package catalog

import (
	"github.com/google/uuid"

	"camstore/internal/models"
)

// Fixture IDs, stable across tests.
var (
	navCCTVID    = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	navAlarmsID  = uuid.MustParse("11111111-1111-1111-1111-222222222222")
	catDomeID    = uuid.MustParse("22222222-2222-2222-2222-111111111111")
	catBulletID  = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	subIndoorID  = uuid.MustParse("33333333-3333-3333-3333-111111111111")
	subOutdoorID = uuid.MustParse("33333333-3333-3333-3333-222222222222")
	prodDS2CEID  = uuid.MustParse("44444444-4444-4444-4444-111111111111")
	prodNVRID    = uuid.MustParse("44444444-4444-4444-4444-222222222222")
)

func fixtureNavbars() []models.NavbarCategory {
	return []models.NavbarCategory{
		{ID: navCCTVID, Name: "CCTV", Slug: "cctv", IsActive: true},
		{ID: navAlarmsID, Name: "Alarms", Slug: "alarms", IsActive: true},
	}
}

func fixtureCategories() []models.Category {
	return []models.Category{
		{ID: catDomeID, Name: "Dome Cameras", Slug: "dome-cameras", NavbarCategoryID: navCCTVID, IsActive: true},
		{ID: catBulletID, Name: "Bullet Cameras", Slug: "bullet-cameras", NavbarCategoryID: navCCTVID, IsActive: true},
	}
}

func fixtureSubCategories() []models.SubCategory {
	nav := navCCTVID
	return []models.SubCategory{
		{ID: subIndoorID, Name: "Indoor", Slug: "indoor", CategoryID: catDomeID, NavbarCategoryID: &nav, IsActive: true},
		{ID: subOutdoorID, Name: "Outdoor", Slug: "outdoor", CategoryID: catDomeID, NavbarCategoryID: &nav, IsActive: true},
	}
}

func fixtureProducts() []models.Product {
	sub := subIndoorID
	return []models.Product{
		{
			ID: prodDS2CEID, Name: "DS-2CE", Slug: "ds-2ce",
			Description:      "1080p turbo HD dome camera",
			Images:           models.StringList{"https://cdn.example.com/ds-2ce.jpg"},
			NavbarCategoryID: navCCTVID, CategoryID: catDomeID, SubCategoryID: &sub,
			IsActive: true,
		},
		{
			// No subcategory: valid, but excluded from canonical URLs.
			ID: prodNVRID, Name: "NVR-8CH", Slug: "nvr-8ch",
			Description:      "8 channel network video recorder",
			Images:           models.StringList{"https://cdn.example.com/nvr.jpg"},
			NavbarCategoryID: navCCTVID, CategoryID: catBulletID,
			IsActive: true,
		},
	}
}

func fixtureSnapshot() *Snapshot {
	return NewSnapshot(fixtureNavbars(), fixtureCategories(), fixtureSubCategories(), fixtureProducts())
}

// memStores backs the Validator with fixture data instead of Postgres.
type memStores struct {
	navbars map[uuid.UUID]models.NavbarCategory
	cats    map[uuid.UUID]models.Category
	subs    map[uuid.UUID]models.SubCategory
}

func newMemStores() *memStores {
	m := &memStores{
		navbars: map[uuid.UUID]models.NavbarCategory{},
		cats:    map[uuid.UUID]models.Category{},
		subs:    map[uuid.UUID]models.SubCategory{},
	}
	for _, n := range fixtureNavbars() {
		m.navbars[n.ID] = n
	}
	for _, c := range fixtureCategories() {
		m.cats[c.ID] = c
	}
	for _, sc := range fixtureSubCategories() {
		m.subs[sc.ID] = sc
	}
	return m
}

type memNavbarStore struct{ m *memStores }

func (s memNavbarStore) FindByID(id uuid.UUID) (*models.NavbarCategory, error) {
	if n, ok := s.m.navbars[id]; ok {
		return &n, nil
	}
	return nil, nil
}

type memCategoryStore struct{ m *memStores }

func (s memCategoryStore) FindByID(id uuid.UUID) (*models.Category, error) {
	if c, ok := s.m.cats[id]; ok {
		return &c, nil
	}
	return nil, nil
}

type memSubCategoryStore struct{ m *memStores }

func (s memSubCategoryStore) FindByID(id uuid.UUID) (*models.SubCategory, error) {
	if sc, ok := s.m.subs[id]; ok {
		return &sc, nil
	}
	return nil, nil
}

func newTestValidator() *Validator {
	m := newMemStores()
	return &Validator{
		Navbars:       memNavbarStore{m},
		Categories:    memCategoryStore{m},
		SubCategories: memSubCategoryStore{m},
	}
}
