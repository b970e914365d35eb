// Package config loads runtime configuration for the slugmart CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file passed with --config.
//  3. Environment variables SLUGMART_SERVER_URL and SLUGMART_TIMEOUT.
//
// Command-line flags are bound by the cli package and override all of the above.
//
// # JSON schema
//
//	{
//	  "server_url": "http://localhost:4000/graphql",
//	  "request_timeout": "10s"
//	}
package config
