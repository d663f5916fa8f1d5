// Package config loads process settings from an optional tasks.yaml and
// TASKS_* environment variables, applies defaults, and validates the result
// before anything else starts. DATABASE_URL is honored for the connection
// string.
package config
