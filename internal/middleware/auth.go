// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"camstore/internal/auth"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

// ClaimsKey is the context key for verified admin claims.
const ClaimsKey contextKey = "claims"

// LoadClaims verifies the admin token cookie, if any, and stores the
// claims in the request context. It does not enforce authentication;
// it just loads the identity when one is present.
func LoadClaims(tokens *auth.Tokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := tokens.FromRequest(r)
			if err != nil {
				// Invalid or expired token counts as unauthenticated.
				slog.Debug("token rejected", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			if claims != nil {
				ctx := context.WithValue(r.Context(), ClaimsKey, claims)
				r = r.WithContext(ctx)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin returns 401 when no verified admin identity is loaded,
// or when a 2FA-enrolled admin has not completed verification yet.
// Must be applied after LoadClaims in the middleware chain.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromCtx(r.Context())
		if claims == nil {
			unauthorized(w)
			return
		}
		if !claims.TwoFADone {
			unauthorized(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireToken admits any verified token, including one still awaiting
// 2FA verification. Used only by the 2FA endpoints themselves.
func RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ClaimsFromCtx(r.Context()) == nil {
			unauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClaimsFromCtx extracts the verified claims from the request context.
// Returns nil if the request is unauthenticated.
func ClaimsFromCtx(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(ClaimsKey).(*auth.Claims)
	return claims
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"unauthorized","message":"Authentication required"}`))
}
