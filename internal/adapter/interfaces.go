// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the HTTP clients for the downstream services
// the gateway forwards requests to: the company CRUD service, the user
// service, and the incident-query service.
//
// Adapters are deliberately thin. They serialize a validated domain object
// to the downstream wire format, attach the outbound bearer credential
// where required, perform the call, and hand the decoded response body and
// status code up to the service layer verbatim — they never interpret or
// transform the body. Failures of the transport itself (connection refused,
// timeout) propagate as wrapped errors with no retries.
package adapter

import (
	"context"
	"encoding/json"

	"github.com/abcall/user-management-gateway/internal/config"
	"github.com/abcall/user-management-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapters_mock.go -package=mock

// Response is the uninterpreted (body, status) pair a downstream service
// answered with. Body holds the raw JSON response bytes.
type Response struct {
	Status int
	Body   json.RawMessage
}

// CompanyAdapter talks to the company CRUD service.
type CompanyAdapter interface {
	// CreateCompany POSTs the company payload to the company endpoint.
	// Calendar dates are serialized as "YYYY-MM-DD" strings.
	CreateCompany(ctx context.Context, company models.CompanyCreate) (Response, error)

	// GetCompany GETs a single company by its UUID.
	GetCompany(ctx context.Context, companyID string) (Response, error)
}

// UserAdapter talks to the user service. All calls are bearer-authenticated
// with the re-signed caller credential.
type UserAdapter interface {
	// GetUser GETs a single user profile by its UUID.
	GetUser(ctx context.Context, userID string, token string) (Response, error)

	// GetUserCompanies POSTs the document info to resolve the companies a
	// user belongs to.
	GetUserCompanies(ctx context.Context, info models.UserDocumentInfo, token string) (Response, error)
}

// IncidentAdapter talks to the incident-query service. All calls are
// bearer-authenticated with the re-signed caller credential.
type IncidentAdapter interface {
	// GetUserIncidents POSTs a {user_id, company_id} pair and returns the
	// incidents recorded for that combination.
	GetUserIncidents(ctx context.Context, userID, companyID, token string) (Response, error)
}

// Adapters groups one client per downstream service.
type Adapters struct {
	Company  CompanyAdapter
	User     UserAdapter
	Incident IncidentAdapter
}

// NewAdapters constructs all downstream clients from the merged gateway
// configuration.
func NewAdapters(cfg config.Downstream) *Adapters {
	return &Adapters{
		Company:  NewCompanyAdapter(cfg),
		User:     NewUserAdapter(cfg),
		Incident: NewIncidentAdapter(cfg),
	}
}
