// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactStatus tracks how far a contact message has been handled.
// Any status may transition to any other via explicit admin action;
// there is no enforced ordering.
type ContactStatus string

const (
	ContactStatusUnread   ContactStatus = "unread"
	ContactStatusRead     ContactStatus = "read"
	ContactStatusPending  ContactStatus = "pending"
	ContactStatusResolved ContactStatus = "resolved"
)

// Valid reports whether s is one of the known contact statuses.
func (s ContactStatus) Valid() bool {
	switch s {
	case ContactStatusUnread, ContactStatusRead, ContactStatusPending, ContactStatusResolved:
		return true
	}
	return false
}

// Contact is a message submitted through the public contact form.
// It is not part of the catalog hierarchy.
type Contact struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Subject   string        `json:"subject"`
	Body      string        `json:"body"`
	Status    ContactStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}
