// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/abcall/user-management-gateway/internal/adapter"
	"github.com/abcall/user-management-gateway/internal/logger"
	"github.com/abcall/user-management-gateway/internal/validators"
	"github.com/abcall/user-management-gateway/models"
)

type companyService struct {
	companies adapter.CompanyAdapter

	logger *logger.Logger
}

// NewCompanyService fronts the company CRUD downstream.
func NewCompanyService(companies adapter.CompanyAdapter, logger *logger.Logger) CompanyService {
	return &companyService{
		companies: companies,
		logger:    logger,
	}
}

func (s *companyService) CreateCompany(ctx context.Context, company models.CompanyCreate) (Passthrough, error) {
	if fieldErrs := validators.Validate(company); fieldErrs != nil {
		return Passthrough{}, NewValidationError(fieldErrs)
	}

	resp, err := s.companies.CreateCompany(ctx, company)
	if err != nil {
		return Passthrough{}, fmt.Errorf("create company: %w", err)
	}

	return Passthrough{
		Status: resp.Status,
		Body:   resp.Body,
		OK:     resp.Status == http.StatusCreated,
	}, nil
}

func (s *companyService) GetCompany(ctx context.Context, companyID string) (Passthrough, error) {
	if !validators.ValidUUID(companyID) {
		return Passthrough{}, NewValidationError([]validators.FieldError{{
			Field:  "company_id",
			Reason: "must be a valid UUID",
		}})
	}

	resp, err := s.companies.GetCompany(ctx, companyID)
	if err != nil {
		return Passthrough{}, fmt.Errorf("get company: %w", err)
	}

	return Passthrough{
		Status: resp.Status,
		Body:   resp.Body,
		OK:     resp.Status == http.StatusOK,
	}, nil
}
