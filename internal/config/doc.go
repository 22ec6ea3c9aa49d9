// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to application settings needed by different components while keeping
// configuration details separate from business logic.
//
// Every key can be overridden by an environment variable carrying the TASKS_
// prefix, with dots replaced by underscores (server.port becomes
// TASKS_SERVER_PORT).
package config
