// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store contains the PostgreSQL persistence layer. One store
// struct per entity kind, all constructed over an injected *sql.DB.
package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"camstore/internal/catalog"
)

// pgUniqueViolation is the PostgreSQL error code for unique_violation.
const pgUniqueViolation = "23505"

// mapSlugConflict converts a unique-index violation on a slug column into
// a DuplicateSlugError. The index is the final arbiter of slug
// uniqueness; the advisory SlugExists check can lose a race, and the
// loser lands here. Other errors pass through unchanged.
func mapSlugConflict(kind, slug string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && strings.Contains(pgErr.ConstraintName, "slug") {
		return &catalog.DuplicateSlugError{Kind: kind, Slug: slug}
	}
	return err
}
