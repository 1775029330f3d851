// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"camstore/internal/models"
)

// ContactStore manages contact-form messages.
type ContactStore struct {
	db *sql.DB
}

// NewContactStore returns a new ContactStore.
func NewContactStore(db *sql.DB) *ContactStore {
	return &ContactStore{db: db}
}

const contactColumns = `id, name, email, phone, subject, body, status, created_at`

// scanContact scans a row into a Contact struct.
func scanContact(scanner interface{ Scan(...any) error }) (*models.Contact, error) {
	var c models.Contact
	err := scanner.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Subject, &c.Body, &c.Status, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all contact messages, newest first.
func (s *ContactStore) List() ([]models.Contact, error) {
	rows, err := s.db.Query(`SELECT ` + contactColumns + ` FROM contacts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var items []models.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// FindByID retrieves a contact message by ID. Returns nil if not found.
func (s *ContactStore) FindByID(id uuid.UUID) (*models.Contact, error) {
	row := s.db.QueryRow(`SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id)
	c, err := scanContact(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find contact by id: %w", err)
	}
	return c, nil
}

// Create inserts a new contact message. Status always starts as unread.
func (s *ContactStore) Create(c *models.Contact) (*models.Contact, error) {
	row := s.db.QueryRow(`
		INSERT INTO contacts (name, email, phone, subject, body, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+contactColumns,
		c.Name, c.Email, c.Phone, c.Subject, c.Body, models.ContactStatusUnread,
	)
	result, err := scanContact(row)
	if err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return result, nil
}

// UpdateStatus moves a message to any of the known statuses. There is
// no enforced ordering between statuses. Returns the updated message,
// or nil if the ID does not exist.
func (s *ContactStore) UpdateStatus(id uuid.UUID, status models.ContactStatus) (*models.Contact, error) {
	row := s.db.QueryRow(`
		UPDATE contacts SET status = $1 WHERE id = $2
		RETURNING `+contactColumns,
		status, id,
	)
	c, err := scanContact(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update contact status: %w", err)
	}
	return c, nil
}

// Delete removes a contact message by ID.
func (s *ContactStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}

// Count returns the number of contact messages.
func (s *ContactStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM contacts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count contacts: %w", err)
	}
	return n, nil
}

// CountByStatus returns the number of messages in one status.
func (s *ContactStore) CountByStatus(status models.ContactStatus) (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM contacts WHERE status = $1`, status).Scan(&n); err != nil {
		return 0, fmt.Errorf("count contacts by status: %w", err)
	}
	return n, nil
}
