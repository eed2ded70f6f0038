// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader is the correlation header shared with the downstream
// services. An inbound value is trusted and propagated; a request without
// one gets a fresh UUID.
const traceIDHeader = "X-Trace-ID"

// withTraceID attaches a request-scoped logger carrying the trace id to
// the request context and echoes the id back on the response, so a caller
// can quote it when reporting a failed request. It must run before
// withLogging, which reads the logger this middleware installs.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		reqLogger := h.logger.GetChildLogger()
		reqLogger.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(reqLogger.WithContext(r.Context())))
	})
}
