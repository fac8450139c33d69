package config

import "time"

// Config holds runtime settings for the taskquest CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API (no trailing slash).
//   - RequestTimeout: upper bound applied to every API call.
//   - StartupStrategy: "trust" or "validate" — what to do with a stored
//     token on startup.
//   - TokenFile: path of the persisted access/refresh token pair.
//   - TasksFile: path of the offline task list.
//   - Offline: use the local file-backed task store instead of the API.
type Config struct {
	APIBaseURL      string
	RequestTimeout  time.Duration
	StartupStrategy string
	TokenFile       string
	TasksFile       string
	Offline         bool
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api"
	c.RequestTimeout = 10 * time.Second
	c.StartupStrategy = "trust"
	c.TokenFile = "tokens.json"
	c.TasksFile = "tasks.json"
	c.Offline = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
