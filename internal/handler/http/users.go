package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/zephyr-centrum/internal/logger"
	"github.com/MKhiriev/zephyr-centrum/internal/utils"
	"github.com/MKhiriev/zephyr-centrum/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if len(users) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromPath(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var request models.CreateUserRequest
	if !decodeRequest(w, r, &request) {
		return
	}

	user, err := h.services.UserService.CreateUser(r.Context(), request)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", user.UserID).Msg("user created")
	utils.WriteJSON(w, user, http.StatusCreated)
}

// patchUser applies a flat JSON object of field updates. Unknown and
// reserved keys are ignored by the service.
func (h *Handler) patchUser(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromPath(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var fields map[string]any
	if err = json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeServiceError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), userID, fields)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", user.UserID).Msg("user updated")
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromPath(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), userID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", userID).Msg("user deleted")
	w.WriteHeader(http.StatusNoContent)
}

func userIDFromPath(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUserID, raw)
	}
	return userID, nil
}
