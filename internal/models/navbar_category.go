// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// NavbarCategory is a top-level taxonomy node shown in site navigation.
// It has no parent; categories hang off it.
type NavbarCategory struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	SortOrder   int        `json:"sort_order"`
	IsActive    bool       `json:"is_active"`
	Keywords    StringList `json:"keywords"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
