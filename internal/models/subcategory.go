// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// SubCategory is a third-level taxonomy node. It belongs to a category and
// carries a denormalized navbar category reference for query convenience.
// The denormalized reference must always agree with the owning category's
// navbar category; the hierarchy validator derives it when omitted.
type SubCategory struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	Slug             string     `json:"slug"`
	Description      string     `json:"description"`
	Keywords         StringList `json:"keywords"`
	IsActive         bool       `json:"is_active"`
	CategoryID       uuid.UUID  `json:"category_id"`
	NavbarCategoryID *uuid.UUID `json:"navbar_category_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
