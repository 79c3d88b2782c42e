// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/zephyr-centrum/models"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "AUTH_TOKEN"

// setSessionCookie hands token to the browser. Max-Age follows the remaining
// token lifetime so the cookie and the token expire together.
func (h *Handler) setSessionCookie(w http.ResponseWriter, token models.Token) {
	http.SetCookie(w, h.sessionCookie(token.SignedString, token.MaxAge(h.now())))
}

// clearSessionCookie instructs the browser to drop the session cookie.
func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	cookie := h.sessionCookie("", 0)
	// net/http writes "Max-Age=0" only for negative values.
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)
}

func (h *Handler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   !h.insecureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

// sessionToken returns the raw session token of r, or "" when absent.
func sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
