// SPDX-License-Identifier: Apache-2.0

package service

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/abcall/user-management-gateway/internal/config"
	"github.com/abcall/user-management-gateway/internal/logger"
	"github.com/abcall/user-management-gateway/models"
)

type identityService struct {
	signKey []byte
	method  jwt.SigningMethod

	logger *logger.Logger
}

// NewIdentityService builds the identity passthrough from the shared
// secret and algorithm name in the app configuration. An unknown algorithm
// name falls back to HS256, the only algorithm the downstreams accept.
func NewIdentityService(cfg config.App, logger *logger.Logger) IdentityService {
	method := jwt.GetSigningMethod(cfg.TokenAlgorithm)
	if method == nil {
		logger.Warn().Str("algorithm", cfg.TokenAlgorithm).Msg("unknown signing algorithm, falling back to HS256")
		method = jwt.SigningMethodHS256
	}

	return &identityService{
		signKey: []byte(cfg.TokenSignKey),
		method:  method,
		logger:  logger,
	}
}

func (s *identityService) Extract(tokenString string) (models.Claims, error) {
	token, err := jwt.Parse(
		tokenString,
		func(token *jwt.Token) (any, error) {
			return s.signKey, nil
		},
		jwt.WithValidMethods([]string{s.method.Alg()}),
	)
	if err != nil {
		// Expired, malformed, wrong signature — all collapse into
		// "unauthenticated"; the cause is only worth a debug line.
		s.logger.Debug().Err(err).Msg("credential rejected")
		return nil, ErrNoIdentity
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrNoIdentity
	}

	return claims, nil
}

func (s *identityService) Reissue(claims models.Claims) (string, error) {
	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.signKey)
	if err != nil {
		return "", fmt.Errorf("error re-signing claims: %w", err)
	}

	return signed, nil
}
