// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"camstore/internal/storage"
)

// maxUploadSize is the maximum allowed image upload size (8 MiB).
const maxUploadSize = 8 << 20

// allowedImageTypes defines MIME types accepted for product images.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Media handles image uploads for product and category pictures.
type Media struct {
	storage *storage.Client
}

// NewMedia creates a new Media handler group. storage may be nil, in
// which case uploads return 503.
func NewMedia(storage *storage.Client) *Media {
	return &Media{storage: storage}
}

// Upload stores a multipart image in object storage and returns its
// durable public URL. The catalog stores URL strings only.
func (m *Media) Upload(w http.ResponseWriter, r *http.Request) {
	if m.storage == nil {
		writeError(w, http.StatusServiceUnavailable, "no_storage", "Object storage is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "too_large", "File too large. Maximum size is 8 MiB.")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Missing file field")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		writeError(w, http.StatusBadRequest, "bad_type", "Only JPEG, PNG, GIF, and WebP images are accepted")
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	key := fmt.Sprintf("products/%d/%s%s", time.Now().Year(), uuid.New(), ext)

	url, err := m.storage.Upload(r.Context(), key, contentType, file, header.Size)
	if err != nil {
		slog.Error("media upload failed", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "Upload failed")
		return
	}

	slog.Info("media uploaded", "key", key, "size", header.Size)
	writeJSON(w, http.StatusCreated, map[string]string{"url": url})
}

type mediaDeleteRequest struct {
	URL string `json:"url"`
}

// Delete removes an uploaded image from object storage. The admin sends
// the stored URL; the object key is resolved from it, so URLs pointing
// outside this storage are rejected.
func (m *Media) Delete(w http.ResponseWriter, r *http.Request) {
	if m.storage == nil {
		writeError(w, http.StatusServiceUnavailable, "no_storage", "Object storage is not configured")
		return
	}

	var req mediaDeleteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid JSON body")
		return
	}

	key, ok := m.storage.ExtractKey(req.URL)
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_url", "URL does not belong to this storage")
		return
	}

	if err := m.storage.Delete(r.Context(), key); err != nil {
		slog.Error("media delete failed", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "Delete failed")
		return
	}

	slog.Info("media deleted", "key", key)
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
