package adapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/zephyr-centrum/models"
	"github.com/go-resty/resty/v2"
)

const retryAfterHeader = "X-Rate-Limit-Retry-After-Seconds"

var errUnexpectedStatus = errors.New("unexpected status")

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusTooManyRequests:     ErrRateLimited,
	http.StatusInternalServerError: ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	kind, ok := statusErrors[resp.StatusCode()]
	if !ok {
		kind = errUnexpectedStatus
	}

	apiErr := &APIError{StatusCode: resp.StatusCode(), kind: kind}

	// bodies that are not an ErrorResponse keep only their text
	if err := json.Unmarshal(resp.Body(), &apiErr.Response); err != nil {
		apiErr.Response = models.ErrorResponse{Message: strings.TrimSpace(string(resp.Body()))}
	}

	if resp.StatusCode() == http.StatusTooManyRequests {
		apiErr.RetryAfter = parseRetryAfter(resp.Header().Get(retryAfterHeader))
	}

	return apiErr
}

// parseRetryAfter reads whole seconds, falling back to one second.
func parseRetryAfter(value string) time.Duration {
	seconds, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || seconds < 1 {
		return time.Second
	}
	return time.Duration(seconds) * time.Second
}
