// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxProductImages is the maximum number of image URLs a product may carry.
// The first image is mandatory.
const MaxProductImages = 4

// Product is a catalog leaf. It references its full ancestor chain:
// navbar category, category, and optionally a subcategory. A product
// without a subcategory is valid but has no canonical nested URL.
type Product struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	Slug             string     `json:"slug"`
	Description      string     `json:"description"`
	Features         StringList `json:"features"`
	Images           StringList `json:"images"`
	MetaTitle        string     `json:"meta_title"`
	MetaDescription  string     `json:"meta_description"`
	Keywords         StringList `json:"keywords"`
	FAQs             FAQList    `json:"faqs"`
	IsActive         bool       `json:"is_active"`
	NavbarCategoryID uuid.UUID  `json:"navbar_category_id"`
	CategoryID       uuid.UUID  `json:"category_id"`
	SubCategoryID    *uuid.UUID `json:"subcategory_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
