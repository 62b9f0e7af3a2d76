package config

// Default returns the canonical runtime configuration used when no file is present.
func Default() Config {
	return Config{
		Output: OutputConfig{
			Format: "text",
			Quiet:  false,
		},
		Log: LogConfig{
			Enable: true,
			Level:  "info",
		},
	}
}
