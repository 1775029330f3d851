package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func csrfHandler() http.Handler {
	return CSRFGuard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestCSRFGuardSafeMethodsPass(t *testing.T) {
	handler := csrfHandler()

	for _, method := range []string{http.MethodGet, http.MethodHead, http.MethodOptions} {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(method, "/api/admin/products", nil))
		if rr.Code != http.StatusOK {
			t.Errorf("%s: got %d, want 200", method, rr.Code)
		}
	}
}

func TestCSRFGuardMatchingToken(t *testing.T) {
	token, err := NewCSRFToken()
	if err != nil {
		t.Fatalf("new token: %v", err)
	}

	r := httptest.NewRequest(http.MethodPost, "/api/admin/products", nil)
	r.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: token})
	r.Header.Set(CSRFHeaderName, token)

	rr := httptest.NewRecorder()
	csrfHandler().ServeHTTP(rr, r)
	if rr.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rr.Code)
	}
}

func TestCSRFGuardRejects(t *testing.T) {
	tests := []struct {
		name   string
		cookie string
		header string
	}{
		{name: "missing both"},
		{name: "missing header", cookie: "abc123"},
		{name: "missing cookie", header: "abc123"},
		{name: "mismatch", cookie: "abc123", header: "def456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodDelete, "/api/admin/products/x", nil)
			if tt.cookie != "" {
				r.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: tt.cookie})
			}
			if tt.header != "" {
				r.Header.Set(CSRFHeaderName, tt.header)
			}

			rr := httptest.NewRecorder()
			csrfHandler().ServeHTTP(rr, r)
			if rr.Code != http.StatusForbidden {
				t.Errorf("status: got %d, want 403", rr.Code)
			}
		})
	}
}

func TestNewCSRFTokenUnique(t *testing.T) {
	a, err := NewCSRFToken()
	if err != nil {
		t.Fatalf("new token: %v", err)
	}
	b, err := NewCSRFToken()
	if err != nil {
		t.Fatalf("new token: %v", err)
	}
	if a == b {
		t.Error("two generated tokens must differ")
	}
	if len(a) != 64 {
		t.Errorf("token length: got %d, want 64 hex chars", len(a))
	}
}

func TestCSRFCookieFlags(t *testing.T) {
	w := httptest.NewRecorder()
	SetCSRFCookie(w, "tok", false)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies: got %d, want 1", len(cookies))
	}
	if cookies[0].HttpOnly {
		t.Error("CSRF cookie must be readable by the frontend")
	}
	if cookies[0].SameSite != http.SameSiteStrictMode {
		t.Error("CSRF cookie must be SameSite=Strict")
	}
}
