package config

import (
	"flag"
	"os"
	"time"

	"github.com/mvolkova/taskquest/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string    base URL of the backend API (default from Config)
//	-t int       request timeout in seconds (default from Config)
//	-s string    startup strategy: trust | validate
//	-offline     use the local file-backed task store
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-s", "-offline"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.StartupStrategy, "s", cfg.StartupStrategy, "startup strategy: trust | validate")
	fs.BoolVar(&cfg.Offline, "offline", cfg.Offline, "use the local task store instead of the API")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
