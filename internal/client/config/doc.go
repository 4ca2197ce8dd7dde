// Package config loads runtime configuration for the relay CLI client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file given with --config.
//  3. Optional dotenv file given with --env-file, never overriding variables
//     already set in the process.
//  4. Environment variables (see EnvConfig).
//  5. Command-line flags, applied by the cli package on top of Load's result.
//
// # JSON schema
//
// Durations can be strings like "30s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "transport_key": "16byteslongkey!!",
//	  "call_timeout": "30s",
//	  "downstream_base_url": "http://localhost:9380"
//	}
package config
