// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"

	"github.com/abcall/user-management-gateway/internal/logger"
	"github.com/abcall/user-management-gateway/internal/service"
	"github.com/abcall/user-management-gateway/internal/utils"
	"github.com/abcall/user-management-gateway/models"
)

func (h *Handler) getUserCompanies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	claims, ok := utils.GetClaimsFromContext(ctx)
	if !ok {
		writeServiceError(w, r, service.ErrNoIdentity)
		return
	}

	var info models.UserDocumentInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, detailEnvelope{Detail: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	result, err := h.services.UserService.GetUserCompanies(ctx, claims, info)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writePassthrough(w, result)
}

func (h *Handler) getUserWithIncidents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	claims, ok := utils.GetClaimsFromContext(ctx)
	if !ok {
		writeServiceError(w, r, service.ErrNoIdentity)
		return
	}

	var req models.UserCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, detailEnvelope{Detail: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	result, err := h.services.UserService.GetUserWithIncidents(ctx, claims, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writePassthrough(w, result)
}
