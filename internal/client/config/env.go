package config

import (
	"os"
	"strconv"
)

// Environment variables recognized by parseEnv. They override JSON values
// and are themselves overridden by flags.
const (
	EnvAPIBaseURL      = "TASKQUEST_API_URL"
	EnvStartupStrategy = "TASKQUEST_STARTUP_STRATEGY"
	EnvTokenFile       = "TASKQUEST_TOKEN_FILE"
	EnvTasksFile       = "TASKQUEST_TASKS_FILE"
	EnvOffline         = "TASKQUEST_OFFLINE"
)

func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvAPIBaseURL); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := os.LookupEnv(EnvStartupStrategy); ok && v != "" {
		cfg.StartupStrategy = v
	}
	if v, ok := os.LookupEnv(EnvTokenFile); ok && v != "" {
		cfg.TokenFile = v
	}
	if v, ok := os.LookupEnv(EnvTasksFile); ok && v != "" {
		cfg.TasksFile = v
	}
	if v, ok := os.LookupEnv(EnvOffline); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Offline = b
		}
	}
}
