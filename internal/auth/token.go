// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package auth issues and verifies the admin JWT carried in an HttpOnly
// cookie. The catalog core never sees credentials; handlers only consume
// the verified claims loaded by the middleware.
package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	// CookieName is the name of the admin token cookie.
	CookieName = "cs_token"

	// TokenTTL is how long an issued token stays valid.
	TokenTTL = 24 * time.Hour
)

// Claims is the JWT payload for an authenticated admin. TwoFADone is
// false on a freshly issued token when the user has a TOTP secret
// enrolled; verifying a code re-issues the token with it set.
type Claims struct {
	UserID    uuid.UUID `json:"uid"`
	Email     string    `json:"email"`
	TwoFADone bool      `json:"tfa"`
	jwt.RegisteredClaims
}

// Tokens signs and verifies admin JWTs with a shared HMAC secret.
type Tokens struct {
	secret []byte
	secure bool
}

// NewTokens creates a token manager. secure controls the Secure flag on
// issued cookies (true everywhere except local development).
func NewTokens(secret string, secure bool) *Tokens {
	return &Tokens{secret: []byte(secret), secure: secure}
}

// Issue signs a token for the given admin identity.
func (t *Tokens) Issue(userID uuid.UUID, email string, twoFADone bool) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    userID,
		Email:     email,
		TwoFADone: twoFADone,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a signed token, returning its claims.
func (t *Tokens) Verify(signed string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(signed, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", err)
	}
	return claims, nil
}

// SetCookie writes the token cookie on the response.
func (t *Tokens) SetCookie(w http.ResponseWriter, signed string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		Secure:   t.secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(TokenTTL.Seconds()),
	})
}

// ClearCookie expires the token cookie immediately.
func (t *Tokens) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   t.secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
}

// FromRequest extracts and verifies the token from the request cookie.
// Returns nil without error when no cookie is present.
func (t *Tokens) FromRequest(r *http.Request) (*Claims, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, nil // No cookie = unauthenticated (not an error)
	}
	return t.Verify(cookie.Value)
}
