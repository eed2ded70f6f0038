// SPDX-License-Identifier: Apache-2.0

package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abcall/user-management-gateway/internal/config"
	"github.com/abcall/user-management-gateway/internal/logger"
	"github.com/abcall/user-management-gateway/models"
)

const testSignKey = "secret_key"

func newTestIdentity(t *testing.T) IdentityService {
	t.Helper()
	return NewIdentityService(config.App{
		TokenSignKey:   testSignKey,
		TokenAlgorithm: "HS256",
	}, logger.Nop())
}

func signTestToken(t *testing.T, claims jwt.MapClaims, key string) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return signed
}

func TestIdentity_Extract_ValidToken(t *testing.T) {
	identity := newTestIdentity(t)
	token := signTestToken(t, jwt.MapClaims{"sub": "agent-42", "role": "agent"}, testSignKey)

	claims, err := identity.Extract(token)

	require.NoError(t, err)
	assert.Equal(t, "agent-42", claims["sub"])
	assert.Equal(t, "agent", claims["role"])
}

func TestIdentity_Extract_WrongSignature(t *testing.T) {
	identity := newTestIdentity(t)
	token := signTestToken(t, jwt.MapClaims{"sub": "agent-42"}, "some-other-key")

	_, err := identity.Extract(token)

	assert.ErrorIs(t, err, ErrNoIdentity)
}

func TestIdentity_Extract_Malformed(t *testing.T) {
	identity := newTestIdentity(t)

	_, err := identity.Extract("not.a.token")

	assert.ErrorIs(t, err, ErrNoIdentity)
}

func TestIdentity_Extract_Expired(t *testing.T) {
	identity := newTestIdentity(t)
	token := signTestToken(t, jwt.MapClaims{
		"sub": "agent-42",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}, testSignKey)

	_, err := identity.Extract(token)

	assert.ErrorIs(t, err, ErrNoIdentity)
}

// TestIdentity_ReissuePreservesClaims verifies the passthrough invariant:
// the re-issued credential carries the identical claim set, signed with the
// same key and algorithm.
func TestIdentity_ReissuePreservesClaims(t *testing.T) {
	identity := newTestIdentity(t)
	original := signTestToken(t, jwt.MapClaims{"sub": "agent-42", "role": "agent"}, testSignKey)

	claims, err := identity.Extract(original)
	require.NoError(t, err)

	reissued, err := identity.Reissue(claims)
	require.NoError(t, err)

	roundTripped, err := identity.Extract(reissued)
	require.NoError(t, err)
	assert.Equal(t, models.Claims(claims), roundTripped)
}
