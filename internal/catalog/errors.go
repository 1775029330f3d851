// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog maintains the four-level taxonomy
// (NavbarCategory → Category → SubCategory → Product): it validates
// parent references before writes, composes canonical nested URLs, and
// projects the hierarchy into sitemap entries and search results.
package catalog

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ValidationError reports a field that failed a referential or required
// constraint. It is returned before anything is persisted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

// DuplicateSlugError reports a slug collision within one entity kind.
// The database unique index is the final arbiter; this error is produced
// both by the advisory pre-write check and by unique-violation mapping.
type DuplicateSlugError struct {
	Kind string
	Slug string
}

func (e *DuplicateSlugError) Error() string {
	return fmt.Sprintf("duplicate slug %q for %s", e.Slug, e.Kind)
}

// BrokenChainError reports that URL composition could not resolve the
// full ancestor chain for an entity. Callers degrade to slug-only
// identification instead of emitting a partial URL.
type BrokenChainError struct {
	Kind    string
	ID      uuid.UUID
	Missing string
}

func (e *BrokenChainError) Error() string {
	return fmt.Sprintf("broken chain for %s %s: %s", e.Kind, e.ID, e.Missing)
}

// IsBrokenChain reports whether err is a BrokenChainError.
func IsBrokenChain(err error) bool {
	var bc *BrokenChainError
	return errors.As(err, &bc)
}
