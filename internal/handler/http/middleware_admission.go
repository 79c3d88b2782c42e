package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/zephyr-centrum/internal/app"
	"github.com/MKhiriev/zephyr-centrum/internal/logger"
	"github.com/MKhiriev/zephyr-centrum/internal/utils"
)

// RetryAfterHeader tells a throttled caller how many whole seconds to wait.
const RetryAfterHeader = "X-Rate-Limit-Retry-After-Seconds"

// withAdmission takes one token from the shared bucket per request. A refused
// request is answered with 429 and never reaches the handlers.
func (h *Handler) withAdmission(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		probe := h.gate.TryConsume(1)
		if !probe.Allowed {
			retryAfter := probe.RetryAfterSeconds()
			logger.FromRequest(r).Warn().
				Int64("retry_after_seconds", retryAfter).
				Msg("request throttled")

			w.Header().Set(RetryAfterHeader, strconv.FormatInt(retryAfter, 10))
			utils.WriteError(w, http.StatusTooManyRequests, codeTooManyRequests, app.MsgTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
