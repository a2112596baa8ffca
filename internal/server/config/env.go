package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from environment variables. Unset or
// malformed values leave the current value untouched.
//
// Recognized variables:
//
//	ADDRESS              HTTP bind address (e.g. ":8080")
//	DATABASE_DSN         PostgreSQL DSN
//	REDIS_ADDR           redis host:port for session storage
//	SESSION_COOKIE_NAME  name of the session cookie
//	SESSION_TTL          session lifetime (Go duration, e.g. "24h")
//	BCRYPT_COST          bcrypt work factor
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddrHTTP = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("REDIS_ADDR"); ok {
		config.RedisAddr = v
	}
	if v, ok := os.LookupEnv("SESSION_COOKIE_NAME"); ok {
		config.SessionCookieName = v
	}
	if v, ok := os.LookupEnv("SESSION_TTL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.SessionTTL = d
		}
	}
	if v, ok := os.LookupEnv("BCRYPT_COST"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = n
		}
	}
}
