// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/abcall/user-management-gateway/internal/adapter"
	"github.com/abcall/user-management-gateway/internal/logger"
	"github.com/abcall/user-management-gateway/internal/mock"
	"github.com/abcall/user-management-gateway/models"
)

func validCompany() models.CompanyCreate {
	return models.CompanyCreate{
		Username:    "testuser@example.com",
		Password:    "testpass123",
		FirstName:   "John",
		LastName:    "Doe",
		Name:        "Test Company",
		BirthDate:   models.NewDate(2023, time.January, 1),
		PhoneNumber: "+12 345 678 9012",
		Country:     "TestCountry",
		City:        "TestCity",
	}
}

func TestCompanyService_CreateCompany_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companies := mock.NewMockCompanyAdapter(ctrl)
	svc := NewCompanyService(companies, logger.Nop())
	ctx := context.Background()

	body := json.RawMessage(`{"id":"12345678-1234-5678-1234-567812345678","name":"Test Company"}`)
	companies.EXPECT().
		CreateCompany(ctx, validCompany()).
		Return(adapter.Response{Status: http.StatusCreated, Body: body}, nil)

	result, err := svc.CreateCompany(ctx, validCompany())

	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Equal(t, http.StatusCreated, result.Status)
	assert.Equal(t, body, result.Body)
}

func TestCompanyService_CreateCompany_DownstreamFailurePassedThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companies := mock.NewMockCompanyAdapter(ctrl)
	svc := NewCompanyService(companies, logger.Nop())
	ctx := context.Background()

	body := json.RawMessage(`{"detail":"Error creating company"}`)
	companies.EXPECT().
		CreateCompany(ctx, gomock.Any()).
		Return(adapter.Response{Status: http.StatusBadRequest, Body: body}, nil)

	result, err := svc.CreateCompany(ctx, validCompany())

	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.Equal(t, http.StatusBadRequest, result.Status)
	assert.Equal(t, body, result.Body)
}

// TestCompanyService_CreateCompany_InvalidPayload verifies that a
// validation failure resolves locally: the downstream adapter is never
// invoked.
func TestCompanyService_CreateCompany_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companies := mock.NewMockCompanyAdapter(ctrl)
	companies.EXPECT().CreateCompany(gomock.Any(), gomock.Any()).Times(0)

	svc := NewCompanyService(companies, logger.Nop())

	company := validCompany()
	company.PhoneNumber = "+123 456 789"
	company.FirstName = "John3"

	_, err := svc.CreateCompany(context.Background(), company)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Fields, 2)
}

func TestCompanyService_CreateCompany_AdapterErrorWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companies := mock.NewMockCompanyAdapter(ctrl)
	svc := NewCompanyService(companies, logger.Nop())
	ctx := context.Background()

	companies.EXPECT().
		CreateCompany(ctx, gomock.Any()).
		Return(adapter.Response{}, errors.New("connection refused"))

	_, err := svc.CreateCompany(ctx, validCompany())

	assert.ErrorContains(t, err, "connection refused")
}

func TestCompanyService_GetCompany_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const companyID = "12345678-1234-5678-1234-567812345678"

	companies := mock.NewMockCompanyAdapter(ctrl)
	svc := NewCompanyService(companies, logger.Nop())
	ctx := context.Background()

	body := json.RawMessage(`{"id":"` + companyID + `","name":"Test Company"}`)
	companies.EXPECT().
		GetCompany(ctx, companyID).
		Return(adapter.Response{Status: http.StatusOK, Body: body}, nil)

	result, err := svc.GetCompany(ctx, companyID)

	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Equal(t, http.StatusOK, result.Status)
	assert.Equal(t, body, result.Body)
}

// TestCompanyService_GetCompany_MalformedID verifies the UUID path guard:
// a malformed id is rejected before any downstream call is attempted.
func TestCompanyService_GetCompany_MalformedID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companies := mock.NewMockCompanyAdapter(ctrl)
	companies.EXPECT().GetCompany(gomock.Any(), gomock.Any()).Times(0)

	svc := NewCompanyService(companies, logger.Nop())

	_, err := svc.GetCompany(context.Background(), "invalid-id")

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Fields, 1)
	assert.Equal(t, "company_id", validationErr.Fields[0].Field)
}

func TestCompanyService_GetCompany_NotFoundPassedThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const companyID = "12345678-1234-5678-1234-567812345678"

	companies := mock.NewMockCompanyAdapter(ctrl)
	svc := NewCompanyService(companies, logger.Nop())
	ctx := context.Background()

	body := json.RawMessage(`{"detail":"Company not found"}`)
	companies.EXPECT().
		GetCompany(ctx, companyID).
		Return(adapter.Response{Status: http.StatusNotFound, Body: body}, nil)

	result, err := svc.GetCompany(ctx, companyID)

	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.Equal(t, http.StatusNotFound, result.Status)
	assert.Equal(t, body, result.Body)
}
