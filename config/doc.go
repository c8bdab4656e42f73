// Package config loads singlekit configuration from YAML files and
// environment variables.
//
// The loader resolves a config.yml and an optional .env file, merges
// environment variables over file values via viper, applies defaults,
// and validates the result before returning it.
//
// # Configuration
//
//	name: "my-service"
//	environment: "development"
//	logging:
//	  level: "debug"
//	  format: "console"
//	metrics:
//	  enabled: true
//	  endpoint: "localhost:4318"
//
// Environment variables use the SINGLEKIT_ prefix with underscores for
// nesting: SINGLEKIT_LOGGING_LEVEL=debug.
package config
