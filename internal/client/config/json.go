package config

import (
	"encoding/json"
	"os"

	"github.com/mvolkova/taskquest/internal/flagx"
	"github.com/mvolkova/taskquest/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "10s" or as integer nanoseconds. After parsing, set values are copied into
// the runtime Config.
type JsonConfig struct {
	APIBaseURL      string         `json:"api_base_url"`
	RequestTimeout  timex.Duration `json:"request_timeout"`
	StartupStrategy string         `json:"startup_strategy"`
	TokenFile       string         `json:"token_file"`
	TasksFile       string         `json:"tasks_file"`
	Offline         *bool          `json:"offline"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c or -config flags. Absent flags mean no JSON is loaded. Fields the
// file does not set keep their earlier values. Panics on read or unmarshal
// errors (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.StartupStrategy != "" {
		cfg.StartupStrategy = jc.StartupStrategy
	}
	if jc.TokenFile != "" {
		cfg.TokenFile = jc.TokenFile
	}
	if jc.TasksFile != "" {
		cfg.TasksFile = jc.TasksFile
	}
	if jc.Offline != nil {
		cfg.Offline = *jc.Offline
	}
}
