// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"
	"time"

	"github.com/abcall/user-management-gateway/internal/logger"
)

// withLogging emits one summary line per handled request with the method,
// URI, response status, response size and elapsed time. The response
// passes through a [responseWriter] so status and size can be observed
// without buffering the body.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", rw.status).
			Int("size", rw.size).
			Dur("elapsed", time.Since(start)).
			Msg("request handled")
	})
}
