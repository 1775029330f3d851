package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"camstore/internal/auth"
	"camstore/internal/handlers"
	"camstore/internal/middleware"
)

// newTestRouter wires the router with nil stores. Only routes that the
// middleware stack rejects before reaching a handler are exercised.
func newTestRouter(t *testing.T) (http.Handler, *auth.Tokens) {
	t.Helper()

	tokens := auth.NewTokens("router-test-secret", false)
	contact := middleware.NewRateLimiter(100, time.Minute)
	login := middleware.NewRateLimiter(100, time.Minute)
	t.Cleanup(contact.Stop)
	t.Cleanup(login.Stop)

	public := handlers.NewPublic(nil, nil, nil, nil, nil, nil, "http://localhost")
	admin := handlers.NewAdmin(nil, nil, nil, nil, nil, nil)
	authH := handlers.NewAuth(nil, tokens, false)
	media := handlers.NewMedia(nil)

	return New(tokens, Limiters{Contact: contact, Login: login}, public, admin, authH, media), tokens
}

func TestHealthRoute(t *testing.T) {
	r, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rr.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rr.Code)
	}
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	r, _ := newTestRouter(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/dashboard"},
		{http.MethodGet, "/api/admin/me"},
		{http.MethodGet, "/api/admin/navbar-categories/"},
		{http.MethodPost, "/api/admin/products/"},
		{http.MethodGet, "/api/admin/catalog/orphans"},
		{http.MethodPost, "/api/admin/media"},
		{http.MethodPost, "/api/admin/2fa/verify"},
	}

	for _, p := range paths {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(p.method, p.path, nil))
		if rr.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: got %d, want 401", p.method, p.path, rr.Code)
		}
	}
}

func TestAdminMutationsRequireCSRF(t *testing.T) {
	r, tokens := newTestRouter(t)

	signed, err := tokens.Issue(uuid.New(), "admin@camstore.local", true)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/products/"+uuid.NewString(), nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: signed})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Errorf("status: got %d, want 403 without CSRF header", rr.Code)
	}
}

func TestUnknownRoute(t *testing.T) {
	r, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	if rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rr.Code)
	}
}
