// SPDX-License-Identifier: Apache-2.0

// Package service implements the gateway's request orchestration: schema
// validation, identity propagation, downstream sequencing, and response
// merging. Handlers stay thin; every decision about what to call and in
// which order lives here.
package service

import (
	"context"

	"github.com/abcall/user-management-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// Passthrough carries a downstream (status, body) pair up to the handler
// layer verbatim. OK reports whether the downstream answered with the
// operation's expected success status; when it did not, the handler wraps
// Body in the error envelope instead of returning it directly.
type Passthrough struct {
	Status int
	Body   any
	OK     bool
}

// IdentityService decodes inbound bearer credentials and re-issues them
// for outbound downstream calls.
type IdentityService interface {
	// Extract decodes and verifies the given credential. Any failure —
	// malformed token, wrong signature, expired — yields ErrNoIdentity;
	// callers treat the caller as unauthenticated rather than erroring.
	Extract(tokenString string) (models.Claims, error)

	// Reissue re-encodes the identical claim set with the shared secret
	// and algorithm for attachment as a bearer credential on outbound
	// calls. Claims are never mutated between Extract and Reissue.
	Reissue(claims models.Claims) (string, error)
}

// CompanyService fronts the company CRUD downstream.
type CompanyService interface {
	// CreateCompany validates the payload and forwards it. A validation
	// failure returns *ValidationError before any network call.
	CreateCompany(ctx context.Context, company models.CompanyCreate) (Passthrough, error)

	// GetCompany forwards a lookup by UUID. A malformed id returns
	// *ValidationError before any network call.
	GetCompany(ctx context.Context, companyID string) (Passthrough, error)
}

// UserService fronts the user and incident-query downstreams for the
// authenticated user operations.
type UserService interface {
	// GetUserCompanies forwards the document lookup with a re-issued
	// credential and trims a successful response down to
	// [models.UserCompaniesResponseFiltered]; failures pass through
	// verbatim.
	GetUserCompanies(ctx context.Context, claims models.Claims, info models.UserDocumentInfo) (Passthrough, error)

	// GetUserWithIncidents runs the two-step composite flow: fetch the
	// user, then — only if that succeeded — fetch the incidents for the
	// user/company pair, and merge both into a UserWithIncidents.
	GetUserWithIncidents(ctx context.Context, claims models.Claims, req models.UserCompanyRequest) (Passthrough, error)
}
