// Package config handles configuration for the server component,
// including defaults, environment (with .env support), JSON overlay,
// and command-line flags.
package config

import "time"

// Config holds runtime settings for the ProfileKeeper server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the gRPC profile API.
//   - EndpointAddrHTTP: bind address for the read-only HTTP preview gateway.
//     Empty disables the gateway.
//   - SeedSample: insert the sample profile into the directory on start-up.
//   - SearchLimit: default and maximum number of results per search.
//   - LogLevel: debug, info, warn or error.
//   - ShutdownTimeout: grace period for the HTTP gateway on shutdown.
type Config struct {
	EndpointAddrGRPC string
	EndpointAddrHTTP string
	SeedSample       bool
	SearchLimit      int
	LogLevel         string
	ShutdownTimeout  time.Duration
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.EndpointAddrHTTP = ":8080"
	c.SeedSample = true
	c.SearchLimit = 20
	c.LogLevel = "info"
	c.ShutdownTimeout = 5 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment, an optional JSON file and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
