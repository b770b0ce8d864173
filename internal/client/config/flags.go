package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/visionai/console/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the REST backend
//	-d string   path of the local session database
//	-t int      request timeout (in seconds)
//	-i int      notification refresh interval (in seconds)
//	-l string   log level
//
// Note: os.Args is filtered with flagx.FilterArgs first so flags owned by
// other loaders (-c) do not trip this FlagSet.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-i", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIURL, "a", cfg.APIURL, "base URL of the Vision AI API")
	fs.StringVar(&cfg.StorePath, "d", cfg.StorePath, "path of the local session database")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	interval := fs.Int("i", int(cfg.WatchInterval.Seconds()), "notification refresh interval (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
	if *timeout <= 0 || *interval <= 0 {
		panic(fmt.Sprintf("timeout and interval must be positive, got -t %d -i %d", *timeout, *interval))
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	cfg.WatchInterval = time.Duration(*interval) * time.Second
}
