package config

import "time"

// DefaultAPIURL is used when neither the environment, a config file nor a
// flag names the backend.
const DefaultAPIURL = "http://localhost:8000"

// Config holds runtime settings for the Vision AI console.
//
// Fields:
//   - APIURL: base address of the REST backend.
//   - StorePath: SQLite file that keeps the session between runs.
//   - RequestTimeout: per-request HTTP timeout.
//   - WatchInterval: how often the notification badge is refreshed.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIURL         string
	StorePath      string
	RequestTimeout time.Duration
	WatchInterval  time.Duration
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = DefaultAPIURL
	c.StorePath = "visionai.db"
	c.RequestTimeout = 15 * time.Second
	c.WatchInterval = 30 * time.Second
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays the
// environment, a JSON file (if one is named) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
