package config

import "github.com/spf13/viper"

// Version is set at build time via -ldflags.
var Version = "dev"

// Config holds runtime configuration for embedres. None of it affects the
// generated output.
type Config struct {
	LogLevel  string
	LogFormat string
}

// Load reads configuration from viper, which merges flag values, env vars,
// and defaults (set up by the cobra command in cmd/embedres).
func Load() Config {
	return Config{
		LogLevel:  viper.GetString("log_level"),
		LogFormat: viper.GetString("log_format"),
	}
}
