// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug derivation from display names.
package slug

import (
	"regexp"
	"strings"
)

// nonAlphanumeric matches any run of characters outside [a-z0-9].
var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Derive creates a URL-safe slug from the given name: lowercase, any run
// of non-alphanumeric characters becomes a single hyphen, leading and
// trailing hyphens are trimmed.
// Example: "Dome Cameras (Indoor)" → "dome-cameras-indoor"
//
// Derive is deterministic and idempotent. It does not guarantee
// uniqueness; callers must check the store for collisions.
func Derive(name string) string {
	s := strings.ToLower(name)
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
