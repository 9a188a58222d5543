package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/dmitrijs2005/profilekeeper/internal/flagx"
	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvServerAddr          = "PROFILEKEEPER_SERVER_ADDR"
	EnvOnlineCheckInterval = "PROFILEKEEPER_ONLINE_CHECK_INTERVAL"
	EnvRequestTimeout      = "PROFILEKEEPER_REQUEST_TIMEOUT"
)

// parseEnv loads the dotenv file (if present) and copies recognised variables
// into cfg. Malformed durations panic.
func parseEnv(cfg *Config) {
	if err := godotenv.Load(flagx.EnvFileFlags()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v, ok := os.LookupEnv(EnvServerAddr); ok {
		cfg.ServerEndpointAddr = v
	}
	cfg.OnlineCheckInterval = envDuration(EnvOnlineCheckInterval, cfg.OnlineCheckInterval)
	cfg.RequestTimeout = envDuration(EnvRequestTimeout, cfg.RequestTimeout)
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	return d
}
