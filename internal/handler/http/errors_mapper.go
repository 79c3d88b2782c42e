package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/zephyr-centrum/internal/app"
	"github.com/MKhiriev/zephyr-centrum/internal/logger"
	"github.com/MKhiriev/zephyr-centrum/internal/service"
	"github.com/MKhiriev/zephyr-centrum/internal/store"
	"github.com/MKhiriev/zephyr-centrum/internal/utils"
	"github.com/MKhiriev/zephyr-centrum/internal/validators"
)

type errorResponse struct {
	status  int
	code    string
	message string
}

var errorStatusMap = map[error]errorResponse{
	ErrInvalidJSON:   {http.StatusBadRequest, codeBadRequest, app.MsgInvalidJSON},
	ErrInvalidUserID: {http.StatusBadRequest, codeBadRequest, app.MsgInvalidUserID},

	service.ErrInvalidCredentials:      {http.StatusUnauthorized, codeInvalidCredentials, app.MsgInvalidCredentials},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, codeUnauthorized, app.MsgAuthenticationRequired},
	service.ErrValidationFailed:        {http.StatusBadRequest, codeValidationFailed, app.MsgValidationFailed},

	store.ErrUsernameAlreadyExists: {http.StatusConflict, codeConflict, app.MsgUsernameAlreadyExists},
	store.ErrEmailAlreadyExists:    {http.StatusConflict, codeConflict, app.MsgEmailAlreadyExists},
	store.ErrNoUserWasFound:        {http.StatusNotFound, codeNotFound, app.MsgUserNotFound},
}

var internalErrorResponse = errorResponse{http.StatusInternalServerError, codeInternal, app.MsgInternalServerError}

func responseFromError(err error) errorResponse {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return internalErrorResponse
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeServiceError logs err and answers with the mapped status. Validation
// failures carry every rejected field; internal failures carry no detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	resp := responseFromError(err)

	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", resp.status).Msg("request rejected")
	}

	var fieldErrs *validators.Errors
	if errors.As(err, &fieldErrs) {
		utils.WriteError(w, resp.status, resp.code, resp.message, fieldErrs.All()...)
		return
	}

	utils.WriteError(w, resp.status, resp.code, resp.message)
}
