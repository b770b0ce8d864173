// Package config loads runtime configuration for the Vision AI console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: VISION_API_URL, VISION_STORE, VISION_LOG_LEVEL.
//  3. Optional JSON file named by -c/-config or VISION_CONFIG (see parseJson).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the REST backend (default http://localhost:8000)
//	-d string   local session database (default visionai.db)
//	-t int      request timeout (seconds)
//	-i int      notification refresh interval (seconds)
//	-l string   log level
//
// # JSON schema
//
// Only the keys present in the file are applied:
//
//	{
//	  "api_url": "https://vision.example.com/api",
//	  "store_path": "/var/lib/visionai/session.db",
//	  "request_timeout": "15s",
//	  "watch_interval": "30s",
//	  "log_level": "info"
//	}
package config
