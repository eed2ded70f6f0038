// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/abcall/user-management-gateway/internal/adapter"
	"github.com/abcall/user-management-gateway/internal/logger"
	"github.com/abcall/user-management-gateway/internal/validators"
	"github.com/abcall/user-management-gateway/models"
)

type userService struct {
	users     adapter.UserAdapter
	incidents adapter.IncidentAdapter
	identity  IdentityService

	logger *logger.Logger
}

// NewUserService fronts the user and incident-query downstreams.
func NewUserService(users adapter.UserAdapter, incidents adapter.IncidentAdapter, identity IdentityService, logger *logger.Logger) UserService {
	return &userService{
		users:     users,
		incidents: incidents,
		identity:  identity,
		logger:    logger,
	}
}

func (s *userService) GetUserCompanies(ctx context.Context, claims models.Claims, info models.UserDocumentInfo) (Passthrough, error) {
	if fieldErrs := validators.Validate(info); fieldErrs != nil {
		return Passthrough{}, NewValidationError(fieldErrs)
	}

	token, err := s.identity.Reissue(claims)
	if err != nil {
		return Passthrough{}, fmt.Errorf("get user companies: %w", err)
	}

	resp, err := s.users.GetUserCompanies(ctx, info, token)
	if err != nil {
		return Passthrough{}, fmt.Errorf("get user companies: %w", err)
	}
	if resp.Status != http.StatusOK {
		return Passthrough{Status: resp.Status, Body: resp.Body}, nil
	}

	// The downstream answer is reshaped, not forwarded: only the user id
	// and the {id, name} company pairs reach the caller, whatever else the
	// user service includes.
	var filtered models.UserCompaniesResponseFiltered
	if err := json.Unmarshal(resp.Body, &filtered); err != nil {
		return Passthrough{}, fmt.Errorf("%w: user companies: %w", ErrDecodeDownstreamResponse, err)
	}

	return Passthrough{
		Status: http.StatusOK,
		Body:   filtered,
		OK:     true,
	}, nil
}

// GetUserWithIncidents is the composite users-view flow. The two downstream
// calls are sequential and dependent: the incidents lookup is only issued
// once the user fetch has confirmed the subject exists. On either failure
// the downstream (status, body) pair is surfaced verbatim and nothing
// partial is returned.
func (s *userService) GetUserWithIncidents(ctx context.Context, claims models.Claims, req models.UserCompanyRequest) (Passthrough, error) {
	if fieldErrs := validators.Validate(req); fieldErrs != nil {
		return Passthrough{}, NewValidationError(fieldErrs)
	}

	token, err := s.identity.Reissue(claims)
	if err != nil {
		return Passthrough{}, fmt.Errorf("get user with incidents: %w", err)
	}

	userResp, err := s.users.GetUser(ctx, req.UserID, token)
	if err != nil {
		return Passthrough{}, fmt.Errorf("get user with incidents: %w", err)
	}
	if userResp.Status != http.StatusOK {
		return Passthrough{Status: userResp.Status, Body: userResp.Body}, nil
	}

	incidentsResp, err := s.incidents.GetUserIncidents(ctx, req.UserID, req.CompanyID, token)
	if err != nil {
		return Passthrough{}, fmt.Errorf("get user with incidents: %w", err)
	}
	if incidentsResp.Status != http.StatusOK {
		// The already-fetched user data is discarded, not returned partially.
		return Passthrough{Status: incidentsResp.Status, Body: incidentsResp.Body}, nil
	}

	merged, err := mergeUserWithIncidents(userResp.Body, incidentsResp.Body)
	if err != nil {
		return Passthrough{}, err
	}

	return Passthrough{
		Status: http.StatusOK,
		Body:   merged,
		OK:     true,
	}, nil
}

func mergeUserWithIncidents(userBody, incidentsBody json.RawMessage) (models.UserWithIncidents, error) {
	var user models.UserResponse
	if err := json.Unmarshal(userBody, &user); err != nil {
		return models.UserWithIncidents{}, fmt.Errorf("%w: user: %w", ErrDecodeDownstreamResponse, err)
	}

	var incidents []models.IncidentResponse
	if err := json.Unmarshal(incidentsBody, &incidents); err != nil {
		return models.UserWithIncidents{}, fmt.Errorf("%w: incidents: %w", ErrDecodeDownstreamResponse, err)
	}

	return models.UserWithIncidents{
		UserResponse: user,
		Incidents:    incidents,
	}, nil
}
