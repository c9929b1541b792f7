package config

import "os"

// Config holds all qvis CLI configuration.
type Config struct {
	LogLevel  string // "debug", "info", "warn", "error"
	LogFormat string // "text" or "json"
	Parser    string // registered parser format name
	Lookup    string // optional "category/type" pair to query after the build
}

// Load reads configuration from environment variables with sensible
// defaults.
func Load() Config {
	return Config{
		LogLevel:  getenv("QVIS_LOG_LEVEL", "info"),
		LogFormat: getenv("QVIS_LOG_FORMAT", "text"),
		Parser:    getenv("QVIS_PARSER", "positional"),
		Lookup:    os.Getenv("QVIS_LOOKUP"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
