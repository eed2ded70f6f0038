// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/abcall/user-management-gateway/internal/logger"
	"github.com/abcall/user-management-gateway/internal/utils"
	"github.com/abcall/user-management-gateway/models"
)

func (h *Handler) createCompany(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var company models.CompanyCreate
	if err := json.NewDecoder(r.Body).Decode(&company); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, detailEnvelope{Detail: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	result, err := h.services.CompanyService.CreateCompany(ctx, company)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writePassthrough(w, result)
}

func (h *Handler) getCompany(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	companyID := chi.URLParam(r, "company_id")

	result, err := h.services.CompanyService.GetCompany(ctx, companyID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writePassthrough(w, result)
}
