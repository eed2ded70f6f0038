// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [GatewayConfig] satisfies all
// gateway invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *GatewayConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenAlgorithm == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Downstream.CompanyServiceURL == "" ||
		cfg.Downstream.UserServiceURL == "" ||
		cfg.Downstream.IncidentServiceURL == "" {
		return ErrInvalidDownstreamConfigs
	}

	return nil
}
