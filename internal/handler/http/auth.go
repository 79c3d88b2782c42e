package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/zephyr-centrum/internal/app"
	"github.com/MKhiriev/zephyr-centrum/internal/logger"
	"github.com/MKhiriev/zephyr-centrum/internal/service"
	"github.com/MKhiriev/zephyr-centrum/internal/utils"
	"github.com/MKhiriev/zephyr-centrum/internal/validators"
	"github.com/MKhiriev/zephyr-centrum/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if !decodeRequest(w, r, &credentials) {
		return
	}

	token, err := h.services.AuthService.Authenticate(r.Context(), credentials.Username, credentials.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info().Int64("id", token.User.UserID).Msg("user successfully logged in")

	h.setSessionCookie(w, token)
	utils.WriteJSON(w, models.UserEnvelope{Data: models.UserData{User: token.User}}, http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if !decodeRequest(w, r, &request) {
		return
	}

	token, err := h.services.AuthService.Register(r.Context(), request)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info().Int64("id", token.User.UserID).Msg("user registered")

	h.setSessionCookie(w, token)
	utils.WriteJSON(w, models.UserEnvelope{Data: models.UserData{User: token.User}}, http.StatusCreated)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgLoggedOut}, http.StatusOK)
}

func (h *Handler) checkAuth(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.UserFromContext(r.Context())
	if !ok {
		utils.WriteJSON(w, models.AuthStatus{Authenticated: false}, http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, models.UserEnvelope{Data: models.UserData{User: user}}, http.StatusOK)
}

// decodeRequest decodes the JSON body of r into dst and checks its presence
// constraints. It answers the request itself and returns false on failure.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeServiceError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return false
	}

	var errs validators.Errors
	if err := validators.ValidateStruct(dst, &errs); err != nil {
		writeServiceError(w, r, err)
		return false
	}
	if errs.HasErrors() {
		writeServiceError(w, r, fmt.Errorf("%w: %w", service.ErrValidationFailed, &errs))
		return false
	}

	return true
}
