package config

import "errors"

// Validation errors returned by [GatewayConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid inbound server settings
	// (for example, missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid identity settings
	// (for example, missing signing key or algorithm name).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidDownstreamConfigs indicates that one of the downstream
	// service base URLs is missing.
	ErrInvalidDownstreamConfigs = errors.New("invalid downstream configuration")
)
