// Package config loads and validates the gateway configuration.
//
// Values are merged from three sources in priority order: environment
// variables, command-line flags, and documented defaults. The merged
// configuration is validated once at process start and then passed by
// reference into the adapters and handlers; nothing reads the environment
// after startup.
package config
