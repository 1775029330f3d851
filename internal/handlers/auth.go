// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"

	"camstore/internal/auth"
	"camstore/internal/middleware"
	"camstore/internal/store"
)

// Auth groups the login, logout, and 2FA handlers for the admin API.
type Auth struct {
	users  *store.UserStore
	tokens *auth.Tokens
	secure bool
}

// NewAuth creates a new Auth handler group.
func NewAuth(users *store.UserStore, tokens *auth.Tokens, secure bool) *Auth {
	return &Auth{users: users, tokens: tokens, secure: secure}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Email         string `json:"email"`
	TwoFARequired bool   `json:"two_fa_required"`
}

// Login verifies credentials and sets the token cookie. When the user
// has TOTP enrolled the token is issued without the 2FA flag and only
// the 2FA endpoints accept it until a code is verified.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid JSON body")
		return
	}

	user, err := a.users.FindByEmail(req.Email)
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "Internal Server Error")
		return
	}
	if user == nil || !a.users.CheckPassword(user, req.Password) {
		writeError(w, http.StatusUnauthorized, "bad_credentials", "Invalid email or password")
		return
	}

	twoFADone := !user.TOTPEnrolled()
	signed, err := a.tokens.Issue(user.ID, user.Email, twoFADone)
	if err != nil {
		slog.Error("token issue failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "Internal Server Error")
		return
	}
	a.tokens.SetCookie(w, signed)

	if twoFADone {
		if err := a.setCSRF(w); err != nil {
			return
		}
	}

	slog.Info("admin login", "email", user.Email, "two_fa_pending", !twoFADone)
	writeJSON(w, http.StatusOK, loginResponse{Email: user.Email, TwoFARequired: !twoFADone})
}

// Logout clears the token and CSRF cookies.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	a.tokens.ClearCookie(w)
	middleware.ClearCSRFCookie(w, a.secure)
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}

// Me returns the authenticated admin identity.
func (a *Auth) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"id":          claims.UserID,
		"email":       claims.Email,
		"two_fa_done": claims.TwoFADone,
	})
}

type totpSetupResponse struct {
	Secret string `json:"secret"`
	QRCode string `json:"qr_code"` // base64-encoded PNG
}

// TOTPSetup generates a new TOTP secret for the authenticated admin and
// returns it with a provisioning QR code. Enrollment takes effect on the
// next login.
func (a *Auth) TOTPSetup(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "CamStore Admin",
		AccountName: claims.Email,
	})
	if err != nil {
		slog.Error("totp generate failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "Internal Server Error")
		return
	}

	if err := a.users.SetTOTPSecret(claims.UserID, key.Secret()); err != nil {
		slog.Error("totp secret store failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "Internal Server Error")
		return
	}

	png, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		slog.Error("totp qr encode failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, totpSetupResponse{
		Secret: key.Secret(),
		QRCode: base64.StdEncoding.EncodeToString(png),
	})
}

type totpVerifyRequest struct {
	Code string `json:"code"`
}

// TOTPVerify validates a TOTP code and re-issues the token with the 2FA
// flag set, unlocking the rest of the admin API.
func (a *Auth) TOTPVerify(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())

	var req totpVerifyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid JSON body")
		return
	}

	user, err := a.users.FindByID(claims.UserID)
	if err != nil {
		slog.Error("totp user lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "Internal Server Error")
		return
	}
	if user == nil || !user.TOTPEnrolled() {
		writeError(w, http.StatusBadRequest, "not_enrolled", "Two-factor authentication is not enrolled")
		return
	}

	if !totp.Validate(req.Code, *user.TOTPSecret) {
		writeError(w, http.StatusUnauthorized, "bad_code", "Invalid verification code")
		return
	}

	signed, err := a.tokens.Issue(user.ID, user.Email, true)
	if err != nil {
		slog.Error("token issue failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "Internal Server Error")
		return
	}
	a.tokens.SetCookie(w, signed)
	if err := a.setCSRF(w); err != nil {
		return
	}

	slog.Info("admin 2fa verified", "email", user.Email)
	writeJSON(w, http.StatusOK, map[string]string{"status": "verified"})
}

// setCSRF issues a fresh CSRF cookie alongside a fully authenticated token.
func (a *Auth) setCSRF(w http.ResponseWriter) error {
	token, err := middleware.NewCSRFToken()
	if err != nil {
		slog.Error("csrf token generate failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "Internal Server Error")
		return err
	}
	middleware.SetCSRFCookie(w, token, a.secure)
	return nil
}
