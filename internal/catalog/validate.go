// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"fmt"

	"github.com/google/uuid"

	"camstore/internal/models"
)

// Validator enforces parent-reference integrity before every create and
// update. Lookups go through the stores so validation always sees
// committed state. Each field is satisfied by the corresponding store.
type Validator struct {
	Navbars interface {
		FindByID(uuid.UUID) (*models.NavbarCategory, error)
	}
	Categories interface {
		FindByID(uuid.UUID) (*models.Category, error)
	}
	SubCategories interface {
		FindByID(uuid.UUID) (*models.SubCategory, error)
	}
}

// ValidateCategory confirms the owning navbar category exists.
func (v *Validator) ValidateCategory(c *models.Category) error {
	if c.NavbarCategoryID == uuid.Nil {
		return &ValidationError{Field: "navbar_category_id", Message: "is required"}
	}
	navbar, err := v.Navbars.FindByID(c.NavbarCategoryID)
	if err != nil {
		return fmt.Errorf("validate category: %w", err)
	}
	if navbar == nil {
		return &ValidationError{Field: "navbar_category_id", Message: "navbar category does not exist"}
	}
	return nil
}

// ValidateSubCategory confirms the owning category exists and that the
// denormalized navbar reference, if supplied, agrees with the category's
// navbar. When omitted it is derived and stored on the entity.
func (v *Validator) ValidateSubCategory(sc *models.SubCategory) error {
	if sc.CategoryID == uuid.Nil {
		return &ValidationError{Field: "category_id", Message: "is required"}
	}
	cat, err := v.Categories.FindByID(sc.CategoryID)
	if err != nil {
		return fmt.Errorf("validate subcategory: %w", err)
	}
	if cat == nil {
		return &ValidationError{Field: "category_id", Message: "category does not exist"}
	}

	if sc.NavbarCategoryID == nil {
		derived := cat.NavbarCategoryID
		sc.NavbarCategoryID = &derived
		return nil
	}
	if *sc.NavbarCategoryID != cat.NavbarCategoryID {
		return &ValidationError{
			Field:   "navbar_category_id",
			Message: "does not match the owning category's navbar category",
		}
	}
	return nil
}

// ValidateProduct confirms the full ancestor chain: the navbar category
// exists, the category exists and belongs to it, and the optional
// subcategory belongs to the category. Changing a product's category
// without updating a now-mismatched subcategory is rejected here.
func (v *Validator) ValidateProduct(p *models.Product) error {
	if p.NavbarCategoryID == uuid.Nil {
		return &ValidationError{Field: "navbar_category_id", Message: "is required"}
	}
	if p.CategoryID == uuid.Nil {
		return &ValidationError{Field: "category_id", Message: "is required"}
	}

	navbar, err := v.Navbars.FindByID(p.NavbarCategoryID)
	if err != nil {
		return fmt.Errorf("validate product: %w", err)
	}
	if navbar == nil {
		return &ValidationError{Field: "navbar_category_id", Message: "navbar category does not exist"}
	}

	cat, err := v.Categories.FindByID(p.CategoryID)
	if err != nil {
		return fmt.Errorf("validate product: %w", err)
	}
	if cat == nil {
		return &ValidationError{Field: "category_id", Message: "category does not exist"}
	}
	if cat.NavbarCategoryID != p.NavbarCategoryID {
		return &ValidationError{
			Field:   "category_id",
			Message: "category does not belong to the selected navbar category",
		}
	}

	if p.SubCategoryID != nil {
		sub, err := v.SubCategories.FindByID(*p.SubCategoryID)
		if err != nil {
			return fmt.Errorf("validate product: %w", err)
		}
		if sub == nil {
			return &ValidationError{Field: "subcategory_id", Message: "subcategory does not exist"}
		}
		if sub.CategoryID != p.CategoryID {
			return &ValidationError{
				Field:   "subcategory_id",
				Message: "subcategory does not belong to the selected category",
			}
		}
	}

	return nil
}
