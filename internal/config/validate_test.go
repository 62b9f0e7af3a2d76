package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateDefaults(t *testing.T) {
	warnings, err := Validate(Default())
	require.NoError(t, err)
	require.Empty(t, warnings)
}

func TestValidateRejectsInvalidFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "empty format", mutate: func(c *Config) { c.Output.Format = "" }, wantErr: "output.format must not be empty"},
		{name: "unknown format", mutate: func(c *Config) { c.Output.Format = "yaml" }, wantErr: "output.format must be one of"},
		{name: "unknown log level", mutate: func(c *Config) { c.Log.Level = "verbose" }, wantErr: "log.level"},
		{name: "empty log level", mutate: func(c *Config) { c.Log.Level = "" }, wantErr: "log.level"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)

			_, err := Validate(cfg)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestValidateWarnsOnLevelWithDisabledLog(t *testing.T) {
	cfg := Default()
	cfg.Log.Enable = false
	cfg.Log.Level = "debug"

	warnings, err := Validate(cfg)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	require.Contains(t, warnings[0].Message, "log.level is ignored")
}

func TestParseLogLevel(t *testing.T) {
	for raw, want := range map[string]slog.Level{
		"debug":  slog.LevelDebug,
		" INFO ": slog.LevelInfo,
		"warn":   slog.LevelWarn,
		"Error":  slog.LevelError,
	} {
		got, err := ParseLogLevel(raw)
		require.NoError(t, err, raw)
		require.Equal(t, want, got, raw)
	}
}
