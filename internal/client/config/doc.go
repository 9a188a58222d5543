// Package config loads runtime configuration for the ProfileKeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment, after loading the dotenv file named by -env (".env" by default).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-i int      online status check interval (seconds)
//	-r int      request timeout (seconds)
//
// Environment
//
//	PROFILEKEEPER_SERVER_ADDR, PROFILEKEEPER_ONLINE_CHECK_INTERVAL,
//	PROFILEKEEPER_REQUEST_TIMEOUT (durations like "3s")
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "request_timeout": "5s"
//	}
package config
