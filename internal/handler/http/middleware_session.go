package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/zephyr-centrum/internal/app"
	"github.com/MKhiriev/zephyr-centrum/internal/logger"
	"github.com/MKhiriev/zephyr-centrum/internal/service"
	"github.com/MKhiriev/zephyr-centrum/internal/utils"
	"github.com/MKhiriev/zephyr-centrum/models"
)

// withSession resolves the session cookie into a user stored in the request
// context. A missing, forged or expired token leaves the request anonymous
// and the endpoint policy decides. A failure to resolve the token subject
// is a server error, not an anonymous request.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := sessionToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		user, err := h.services.AuthService.ValidateToken(r.Context(), token)
		if errors.Is(err, service.ErrTokenIsExpiredOrInvalid) {
			logger.FromRequest(r).Debug().Err(err).Msg("session token rejected, continuing anonymously")
			next.ServeHTTP(w, r)
			return
		}
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(r.Context(), user)))
	})
}

// requireAuthenticated answers 401 to anonymous requests.
func (h *Handler) requireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.UserFromContext(r.Context()); !ok {
			utils.WriteError(w, http.StatusUnauthorized, codeUnauthorized, app.MsgAuthenticationRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireRole answers 401 to anonymous requests and 403 to users without role.
func (h *Handler) requireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := utils.UserFromContext(r.Context())
			if !ok {
				utils.WriteError(w, http.StatusUnauthorized, codeUnauthorized, app.MsgAuthenticationRequired)
				return
			}
			if !user.HasRole(role) {
				logger.FromRequest(r).Info().
					Str("username", user.Username).
					Str("required_role", string(role)).
					Msg("access denied")
				utils.WriteError(w, http.StatusForbidden, codeForbidden, app.MsgAccessDenied)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
