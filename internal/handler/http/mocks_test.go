// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"testing"

	"github.com/abcall/user-management-gateway/internal/logger"
	"github.com/abcall/user-management-gateway/internal/service"
	"github.com/abcall/user-management-gateway/models"
)

type identityServiceMock struct {
	extractFunc func(tokenString string) (models.Claims, error)
	reissueFunc func(claims models.Claims) (string, error)
}

func (m *identityServiceMock) Extract(tokenString string) (models.Claims, error) {
	return m.extractFunc(tokenString)
}

func (m *identityServiceMock) Reissue(claims models.Claims) (string, error) {
	return m.reissueFunc(claims)
}

type companyServiceMock struct {
	createCompanyFunc func(ctx context.Context, company models.CompanyCreate) (service.Passthrough, error)
	getCompanyFunc    func(ctx context.Context, companyID string) (service.Passthrough, error)
}

func (m *companyServiceMock) CreateCompany(ctx context.Context, company models.CompanyCreate) (service.Passthrough, error) {
	return m.createCompanyFunc(ctx, company)
}

func (m *companyServiceMock) GetCompany(ctx context.Context, companyID string) (service.Passthrough, error) {
	return m.getCompanyFunc(ctx, companyID)
}

type userServiceMock struct {
	getUserCompaniesFunc     func(ctx context.Context, claims models.Claims, info models.UserDocumentInfo) (service.Passthrough, error)
	getUserWithIncidentsFunc func(ctx context.Context, claims models.Claims, req models.UserCompanyRequest) (service.Passthrough, error)
}

func (m *userServiceMock) GetUserCompanies(ctx context.Context, claims models.Claims, info models.UserDocumentInfo) (service.Passthrough, error) {
	return m.getUserCompaniesFunc(ctx, claims, info)
}

func (m *userServiceMock) GetUserWithIncidents(ctx context.Context, claims models.Claims, req models.UserCompanyRequest) (service.Passthrough, error) {
	return m.getUserWithIncidentsFunc(ctx, claims, req)
}

// newTestHandler wires a Handler around the given service mocks with a
// no-op logger. Nil mocks are allowed for routes the test never hits.
func newTestHandler(t *testing.T, identity *identityServiceMock, companies *companyServiceMock, users *userServiceMock) *Handler {
	t.Helper()

	services := &service.Services{}
	if identity != nil {
		services.IdentityService = identity
	}
	if companies != nil {
		services.CompanyService = companies
	}
	if users != nil {
		services.UserService = users
	}

	return NewHandler(services, logger.Nop())
}
