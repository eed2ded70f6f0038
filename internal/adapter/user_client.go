// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/abcall/user-management-gateway/internal/config"
	"github.com/abcall/user-management-gateway/models"
)

type userHTTPAdapter struct {
	client *resty.Client
}

// NewUserAdapter creates a resty-backed client for the user service.
// The configured base URL already carries the service path prefix.
func NewUserAdapter(cfg config.Downstream) UserAdapter {
	return &userHTTPAdapter{client: newRestyClient(cfg.UserServiceURL, cfg.Timeout)}
}

func (u *userHTTPAdapter) GetUser(ctx context.Context, userID string, token string) (Response, error) {
	resp, err := u.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetPathParam("userID", userID).
		Get("/user/{userID}")
	if err != nil {
		return Response{}, fmt.Errorf("get user request: %w", err)
	}

	return Response{Status: resp.StatusCode(), Body: resp.Body()}, nil
}

func (u *userHTTPAdapter) GetUserCompanies(ctx context.Context, info models.UserDocumentInfo, token string) (Response, error) {
	resp, err := u.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetBody(info).
		Post("/user/companies")
	if err != nil {
		return Response{}, fmt.Errorf("get user companies request: %w", err)
	}

	return Response{Status: resp.StatusCode(), Body: resp.Body()}, nil
}
