package config

import (
	"encoding/json"
	"os"

	"github.com/visionai/console/internal/flagx"
	"github.com/visionai/console/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// use timex.Duration so they may be written as "15s" or as nanoseconds.
type JsonConfig struct {
	APIURL         string          `json:"api_url"`
	StorePath      string          `json:"store_path"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	WatchInterval  *timex.Duration `json:"watch_interval"`
	LogLevel       string          `json:"log_level"`
}

// parseJson overlays Config with the fields present in the JSON file named
// by -c/-config or $VISION_CONFIG. Without a file it does nothing. Read and
// decode errors panic; the caller may recover.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFile()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIURL != "" {
		cfg.APIURL = jc.APIURL
	}
	if jc.StorePath != "" {
		cfg.StorePath = jc.StorePath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.WatchInterval != nil {
		cfg.WatchInterval = jc.WatchInterval.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
