// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/abcall/user-management-gateway/internal/config"
)

type incidentHTTPAdapter struct {
	client *resty.Client
}

// NewIncidentAdapter creates a resty-backed client for the incident-query
// service. The configured base URL already carries the service path prefix.
func NewIncidentAdapter(cfg config.Downstream) IncidentAdapter {
	return &incidentHTTPAdapter{client: newRestyClient(cfg.IncidentServiceURL, cfg.Timeout)}
}

func (i *incidentHTTPAdapter) GetUserIncidents(ctx context.Context, userID, companyID, token string) (Response, error) {
	resp, err := i.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"user_id":    userID,
			"company_id": companyID,
		}).
		Post("/user-company")
	if err != nil {
		return Response{}, fmt.Errorf("get user incidents request: %w", err)
	}

	return Response{Status: resp.StatusCode(), Body: resp.Body()}, nil
}
