// Package config handles configuration loading, parsing, and validation
// from environment variables, an optional .env file and an optional
// config.yaml. It provides type-safe access to the server and quiz engine
// settings while keeping configuration details out of business logic.
package config
