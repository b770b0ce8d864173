package config

import "os"

const (
	EnvAPIURL   = "VISION_API_URL"
	EnvStore    = "VISION_STORE"
	EnvLogLevel = "VISION_LOG_LEVEL"
)

// parseEnv overlays the fields whose environment variable is set and
// non-empty.
func parseEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv(EnvStore); v != "" {
		cfg.StorePath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}
