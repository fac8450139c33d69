// Package config loads runtime configuration for the taskquest CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv): TASKQUEST_API_URL,
//     TASKQUEST_STARTUP_STRATEGY, TASKQUEST_TOKEN_FILE,
//     TASKQUEST_TASKS_FILE, TASKQUEST_OFFLINE.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string    base URL of the backend REST API
//	-t int       request timeout (seconds)
//	-s string    startup strategy: trust | validate
//	-offline     use the local file-backed task store
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "10s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:8000/api",
//	  "request_timeout": "10s",
//	  "startup_strategy": "validate",
//	  "token_file": "tokens.json",
//	  "tasks_file": "tasks.json",
//	  "offline": false
//	}
package config
