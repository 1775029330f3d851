package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"camstore/internal/storage"
)

func TestMediaWithoutStorage(t *testing.T) {
	m := NewMedia(nil)

	rr := httptest.NewRecorder()
	m.Upload(rr, httptest.NewRequest(http.MethodPost, "/api/admin/media", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("upload: got %d, want 503", rr.Code)
	}

	rr = httptest.NewRecorder()
	body := strings.NewReader(`{"url":"https://cdn.camstore.local/x.jpg"}`)
	m.Delete(rr, httptest.NewRequest(http.MethodDelete, "/api/admin/media", body))
	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("delete: got %d, want 503", rr.Code)
	}
}

func TestMediaDeleteRejectsForeignURL(t *testing.T) {
	client, err := storage.New("https://s3.test.local", "eu-central", "key", "secret", "camstore-media", "")
	if err != nil {
		t.Fatalf("storage new: %v", err)
	}
	m := NewMedia(client)

	body := strings.NewReader(`{"url":"https://elsewhere.example.com/stolen.jpg"}`)
	rr := httptest.NewRecorder()
	m.Delete(rr, httptest.NewRequest(http.MethodDelete, "/api/admin/media", body))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "bad_url") {
		t.Errorf("body: got %q, want bad_url code", rr.Body.String())
	}
}

func TestMediaDeleteRejectsBadBody(t *testing.T) {
	client, err := storage.New("https://s3.test.local", "eu-central", "key", "secret", "camstore-media", "")
	if err != nil {
		t.Fatalf("storage new: %v", err)
	}
	m := NewMedia(client)

	rr := httptest.NewRecorder()
	m.Delete(rr, httptest.NewRequest(http.MethodDelete, "/api/admin/media", strings.NewReader("not json")))
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rr.Code)
	}
}
