// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/abcall/user-management-gateway/internal/config"
	"github.com/abcall/user-management-gateway/models"
)

type companyHTTPAdapter struct {
	client *resty.Client
}

// NewCompanyAdapter creates a resty-backed client for the company CRUD
// service.
func NewCompanyAdapter(cfg config.Downstream) CompanyAdapter {
	return &companyHTTPAdapter{client: newRestyClient(cfg.CompanyServiceURL, cfg.Timeout)}
}

func (c *companyHTTPAdapter) CreateCompany(ctx context.Context, company models.CompanyCreate) (Response, error) {
	payload, err := companyCreatePayload(company)
	if err != nil {
		return Response{}, fmt.Errorf("serialize create company payload: %w", err)
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post("/company/")
	if err != nil {
		return Response{}, fmt.Errorf("create company request: %w", err)
	}

	return Response{Status: resp.StatusCode(), Body: resp.Body()}, nil
}

func (c *companyHTTPAdapter) GetCompany(ctx context.Context, companyID string) (Response, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("companyID", companyID).
		Get("/company/{companyID}")
	if err != nil {
		return Response{}, fmt.Errorf("get company request: %w", err)
	}

	return Response{Status: resp.StatusCode(), Body: resp.Body()}, nil
}

// companyCreatePayload flattens the validated company record to the wire
// shape expected by the company endpoint, converting the birth date to its
// ISO-8601 string form. A non-date value in the date slot is a programming
// defect and fails with a type error.
func companyCreatePayload(company models.CompanyCreate) (map[string]any, error) {
	birthDate, err := models.DateToString(company.BirthDate)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"username":     company.Username,
		"password":     company.Password,
		"first_name":   company.FirstName,
		"last_name":    company.LastName,
		"name":         company.Name,
		"birth_date":   birthDate,
		"phone_number": company.PhoneNumber,
		"country":      company.Country,
		"city":         company.City,
	}, nil
}
