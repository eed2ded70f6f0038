// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// Documented defaults. They keep a local development setup working with no
// environment at all; every production deployment is expected to override
// the downstream URLs and the signing secret.
func defaultConfig() *GatewayConfig {
	return &GatewayConfig{
		App: App{
			TokenSignKey:   "secret_key",
			TokenAlgorithm: "HS256",
		},
		Server: Server{
			HTTPAddress:    ":8001",
			RequestTimeout: 30 * time.Second,
		},
		Downstream: Downstream{
			CompanyServiceURL:  "http://localhost:8000",
			UserServiceURL:     "http://localhost:8002/user",
			IncidentServiceURL: "http://localhost:8006/incident-query",
			Timeout:            15 * time.Second,
		},
	}
}
