// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// GatewayConfig is the top-level configuration container for the
// user-management gateway. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and the documented defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type GatewayConfig struct {
	// App holds application-level settings: the shared token signing
	// secret and the signing algorithm name.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the inbound
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Downstream holds the base URLs of the backend services the gateway
	// forwards requests to.
	Downstream Downstream
}

// App holds application-level configuration values that control identity
// propagation.
type App struct {
	// TokenSignKey is the shared secret used to verify inbound bearer
	// credentials and to re-sign the claim set for outbound calls.
	// Must be kept confidential.
	// Env: APP_JWT_SECRET_KEY
	TokenSignKey string `env:"JWT_SECRET_KEY"`

	// TokenAlgorithm is the JWT signing algorithm name (e.g. "HS256").
	// Env: APP_JWT_ALGORITHM
	TokenAlgorithm string `env:"JWT_ALGORITHM"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8001").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Downstream holds the base URLs and shared transport timeout for the
// backend services.
type Downstream struct {
	// CompanyServiceURL is the base URL of the company CRUD service.
	// Env: CRUD_SERVICE_URL
	CompanyServiceURL string `env:"CRUD_SERVICE_URL"`

	// UserServiceURL is the base URL of the user service, including its
	// path prefix (e.g. "http://localhost:8002/user").
	// Env: USER_SERVICE_URL
	UserServiceURL string `env:"USER_SERVICE_URL"`

	// IncidentServiceURL is the base URL of the incident-query service,
	// including its path prefix.
	// Env: QUERY_INCIDENT_SERVICE_URL
	IncidentServiceURL string `env:"QUERY_INCIDENT_SERVICE_URL"`

	// Timeout is the transport-level timeout applied to every downstream
	// call. There are no per-call overrides and no retries.
	// Env: DOWNSTREAM_TIMEOUT
	Timeout time.Duration `env:"DOWNSTREAM_TIMEOUT"`
}

// GetGatewayConfig loads, merges, and validates the gateway configuration
// from all available sources in the following priority order (first source
// with a non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. Documented defaults
//
// Returns a fully populated *GatewayConfig or an error if any source fails
// to load or the final config fails validation.
func GetGatewayConfig() (*GatewayConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withDefaults().
		build()
}
