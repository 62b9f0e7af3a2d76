// Package config resolves, parses, validates, and defaults gcd configuration.
package config

// Config is the fully materialized runtime configuration used by gcd.
type Config struct {
	Output OutputConfig
	Log    LogConfig
}

// OutputConfig controls how a computed result is rendered.
type OutputConfig struct {
	Format string
	Quiet  bool
}

// LogConfig controls the JSONL runtime log.
type LogConfig struct {
	Enable bool
	Level  string
}

// Warning is a non-fatal parse/validation message.
type Warning struct {
	Line    int
	Message string
}
