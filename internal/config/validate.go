package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Validate enforces config invariants and returns non-fatal warnings.
func Validate(cfg Config) ([]Warning, error) {
	warnings := make([]Warning, 0)

	format := strings.TrimSpace(cfg.Output.Format)
	if format == "" {
		return nil, fmt.Errorf("output.format must not be empty")
	}
	if format != "text" && format != "json" {
		return nil, fmt.Errorf("output.format must be one of: text, json")
	}

	if _, err := ParseLogLevel(cfg.Log.Level); err != nil {
		return nil, err
	}
	if !cfg.Log.Enable && !strings.EqualFold(strings.TrimSpace(cfg.Log.Level), "info") {
		warnings = append(warnings, Warning{Message: "log.level is ignored when log.enable=false"})
	}

	return warnings, nil
}

// ParseLogLevel maps a config level name onto a slog level.
func ParseLogLevel(raw string) (slog.Level, error) {
	var level slog.Level
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return level, fmt.Errorf("log.level must be one of: debug, info, warn, error")
	}
	return level, nil
}
