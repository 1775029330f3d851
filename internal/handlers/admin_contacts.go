// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"camstore/internal/models"
)

// ListContacts returns all contact messages, newest first.
func (a *Admin) ListContacts(w http.ResponseWriter, r *http.Request) {
	items, err := a.contacts.List()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

type contactStatusRequest struct {
	Status models.ContactStatus `json:"status"`
}

// UpdateContactStatus moves a message to any of the known statuses.
// There is no enforced ordering between statuses.
func (a *Admin) UpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		notFound(w)
		return
	}

	var req contactStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid JSON body")
		return
	}
	if !req.Status.Valid() {
		writeError(w, http.StatusBadRequest, "validation", "Unknown contact status")
		return
	}

	updated, err := a.contacts.UpdateStatus(id, req.Status)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if updated == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteContact removes a contact message.
func (a *Admin) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		notFound(w)
		return
	}
	if err := a.contacts.Delete(id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
