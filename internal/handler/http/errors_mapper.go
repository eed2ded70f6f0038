// SPDX-License-Identifier: Apache-2.0

package http

import (
	"errors"
	"net/http"

	"github.com/abcall/user-management-gateway/internal/logger"
	"github.com/abcall/user-management-gateway/internal/service"
	"github.com/abcall/user-management-gateway/internal/utils"
)

// detailEnvelope is the error envelope every non-success response is
// wrapped in. When a downstream body already contains a "detail" key the
// result is double-wrapped; existing callers depend on that exact shape,
// so it is reproduced rather than flattened.
type detailEnvelope struct {
	Detail any `json:"detail"`
}

const authenticationRequired = "Authentication required"

// writePassthrough writes a downstream (status, body) pair to the caller.
// An expected success status forwards the body unchanged; anything else is
// wrapped in the detail envelope with the downstream status preserved.
func writePassthrough(w http.ResponseWriter, pt service.Passthrough) {
	if pt.OK {
		utils.WriteJSON(w, pt.Body, pt.Status)
		return
	}

	utils.WriteJSON(w, detailEnvelope{Detail: pt.Body}, pt.Status)
}

// writeServiceError translates service-layer errors to wire responses at
// this single boundary: validation failures enumerate the violated fields
// with 422, missing identity yields 401, and everything else — transport
// failures, serialization defects — is a 500-class response.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		log.Debug().Err(err).Any("fields", validationErr.Fields).Msg("request failed validation")
		utils.WriteJSON(w, detailEnvelope{Detail: validationErr.Fields}, http.StatusUnprocessableEntity)
	case errors.Is(err, service.ErrNoIdentity):
		log.Debug().Err(err).Msg("unauthenticated request")
		utils.WriteJSON(w, detailEnvelope{Detail: authenticationRequired}, http.StatusUnauthorized)
	default:
		log.Err(err).Msg("unexpected error occurred during request handling")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
