// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"net/http"

	"github.com/abcall/user-management-gateway/internal/logger"
	"github.com/abcall/user-management-gateway/internal/utils"
)

// identity is an HTTP middleware that gates the protected user routes.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// credential, and decodes it via the identity service. On success the
// decoded claims are stored in the request context under
// [utils.ClaimsCtxKey] for the handlers to re-issue on outbound calls.
//
// A missing header, an unparsable header, and an undecodable credential all
// short-circuit the request with the same 401 response before any
// downstream call is made — the gateway does not tell callers why their
// credential was rejected.
func (h *Handler) identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Msg("missing Authorization header")
			utils.WriteJSON(w, detailEnvelope{Detail: authenticationRequired}, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Msg("malformed Authorization header")
			utils.WriteJSON(w, detailEnvelope{Detail: authenticationRequired}, http.StatusUnauthorized)
			return
		}

		claims, err := h.services.IdentityService.Extract(tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("credential rejected")
			utils.WriteJSON(w, detailEnvelope{Detail: authenticationRequired}, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.ClaimsCtxKey, claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
