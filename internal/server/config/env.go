package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/profilekeeper/internal/flagx"
	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvGRPCAddr        = "PROFILEKEEPER_GRPC_ADDR"
	EnvHTTPAddr        = "PROFILEKEEPER_HTTP_ADDR"
	EnvSeedSample      = "PROFILEKEEPER_SEED_SAMPLE"
	EnvSearchLimit     = "PROFILEKEEPER_SEARCH_LIMIT"
	EnvLogLevel        = "PROFILEKEEPER_LOG_LEVEL"
	EnvShutdownTimeout = "PROFILEKEEPER_SHUTDOWN_TIMEOUT"
)

// parseEnv loads the dotenv file named by -env (".env" by default) without
// overriding variables already set, then copies recognised variables into
// config. A missing dotenv file is fine; an unreadable one or a malformed
// value panics.
func parseEnv(config *Config) {
	if err := godotenv.Load(flagx.EnvFileFlags()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v, ok := os.LookupEnv(EnvGRPCAddr); ok {
		config.EndpointAddrGRPC = v
	}
	if v, ok := os.LookupEnv(EnvHTTPAddr); ok {
		config.EndpointAddrHTTP = v
	}
	if v, ok := os.LookupEnv(EnvSeedSample); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(err)
		}
		config.SeedSample = b
	}
	if v, ok := os.LookupEnv(EnvSearchLimit); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		config.SearchLimit = n
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		config.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvShutdownTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		config.ShutdownTimeout = d
	}
}
