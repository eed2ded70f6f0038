// Package utils provides general-purpose helper utilities used across
// different parts of the gateway: type-safe context keys, HTTP response
// writing, and bearer-token header parsing.
package utils

import (
	"context"

	"github.com/abcall/user-management-gateway/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ClaimsCtxKey is the key used to store the authenticated caller's decoded
// claims in the request context. Written by the identity middleware, read
// by the protected handlers.
var ClaimsCtxKey = contextKey("claims")

// GetClaimsFromContext retrieves the caller's claims from the context.
//
// Returns the claims and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func GetClaimsFromContext(ctx context.Context) (models.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.Claims)
	return claims, ok
}
