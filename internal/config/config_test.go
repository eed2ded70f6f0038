// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := defaultConfig()

	require.NoError(t, cfg.validate())
	assert.Equal(t, ":8001", cfg.Server.HTTPAddress)
	assert.Equal(t, "HS256", cfg.App.TokenAlgorithm)
	assert.Equal(t, "http://localhost:8000", cfg.Downstream.CompanyServiceURL)
	assert.Equal(t, "http://localhost:8002/user", cfg.Downstream.UserServiceURL)
	assert.Equal(t, "http://localhost:8006/incident-query", cfg.Downstream.IncidentServiceURL)
	assert.Equal(t, 15*time.Second, cfg.Downstream.Timeout)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("APP_JWT_SECRET_KEY", "env-secret")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9001")
	t.Setenv("CRUD_SERVICE_URL", "http://company.internal:8000")
	t.Setenv("DOWNSTREAM_TIMEOUT", "5s")

	cfg := &GatewayConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "env-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "0.0.0.0:9001", cfg.Server.HTTPAddress)
	assert.Equal(t, "http://company.internal:8000", cfg.Downstream.CompanyServiceURL)
	assert.Equal(t, 5*time.Second, cfg.Downstream.Timeout)

	// untouched fields stay zero for the merge step to fill in
	assert.Empty(t, cfg.App.TokenAlgorithm)
	assert.Empty(t, cfg.Downstream.UserServiceURL)
}

func TestParseEnv_UnparsableDuration(t *testing.T) {
	t.Setenv("DOWNSTREAM_TIMEOUT", "not-a-duration")

	assert.Error(t, parseEnv(&GatewayConfig{}))
}

// TestConfigBuilder_EnvOverridesDefaults checks the merge order: the first
// source with a non-zero value wins, and defaults only fill the gaps.
func TestConfigBuilder_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("APP_JWT_SECRET_KEY", "env-secret")
	t.Setenv("USER_SERVICE_URL", "http://user.internal:8002/user")

	cfg, err := newConfigBuilder().
		withEnv().
		withDefaults().
		build()

	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "http://user.internal:8002/user", cfg.Downstream.UserServiceURL)

	// everything not set in the environment falls back to the defaults
	assert.Equal(t, "HS256", cfg.App.TokenAlgorithm)
	assert.Equal(t, ":8001", cfg.Server.HTTPAddress)
	assert.Equal(t, "http://localhost:8000", cfg.Downstream.CompanyServiceURL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *GatewayConfig)
		wantErr error
	}{
		{
			name:   "complete config",
			mutate: func(cfg *GatewayConfig) {},
		},
		{
			name:    "missing listen address",
			mutate:  func(cfg *GatewayConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "missing signing key",
			mutate:  func(cfg *GatewayConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing algorithm",
			mutate:  func(cfg *GatewayConfig) { cfg.App.TokenAlgorithm = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing company service url",
			mutate:  func(cfg *GatewayConfig) { cfg.Downstream.CompanyServiceURL = "" },
			wantErr: ErrInvalidDownstreamConfigs,
		},
		{
			name:    "missing incident service url",
			mutate:  func(cfg *GatewayConfig) { cfg.Downstream.IncidentServiceURL = "" },
			wantErr: ErrInvalidDownstreamConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"localhost", "localhost:8001", "localhost:8001", false},
		{"ip address", "0.0.0.0:9000", "0.0.0.0:9000", false},
		{"empty host", ":8001", ":8001", false},
		{"no port", "localhost", "", true},
		{"port not a number", "localhost:port", "", true},
		{"port zero", "localhost:0", "", true},
		{"bad host", "not-an-ip:8001", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr.String())
		})
	}
}

func TestNetAddress_StringEmpty(t *testing.T) {
	var addr NetAddress
	assert.Empty(t, addr.String())
}
