// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared infrastructure for handler integration
// tests. Tests are skipped when PostgreSQL is unavailable.
package handlers

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"camstore/internal/cache"
	"camstore/internal/database"
	"camstore/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "camstore")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "camstore")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testEnv bundles the stores and handler groups for integration tests.
type testEnv struct {
	DB            *sql.DB
	Navbars       *store.NavbarCategoryStore
	Categories    *store.CategoryStore
	SubCategories *store.SubCategoryStore
	Products      *store.ProductStore
	Contacts      *store.ContactStore
	Admin         *Admin
	Public        *Public
}

// newTestEnv wires real stores over the test database. The sitemap
// cache runs without a Valkey client (no-op mode).
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	navbars := store.NewNavbarCategoryStore(db)
	categories := store.NewCategoryStore(db)
	subcategories := store.NewSubCategoryStore(db)
	products := store.NewProductStore(db)
	contacts := store.NewContactStore(db)
	sitemapCache := cache.NewSitemapCache(nil, 0)

	return &testEnv{
		DB:            db,
		Navbars:       navbars,
		Categories:    categories,
		SubCategories: subcategories,
		Products:      products,
		Contacts:      contacts,
		Admin:         NewAdmin(navbars, categories, subcategories, products, contacts, sitemapCache),
		Public:        NewPublic(navbars, categories, subcategories, products, contacts, sitemapCache, "http://localhost:8080"),
	}
}
