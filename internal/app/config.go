package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ProfilePath points to an HCL session profile file or a directory of
	// them. Empty means the built-in defaults.
	ProfilePath string

	LogFormat string
	LogLevel  string

	// Iterations and Attempts, when positive, override the corresponding
	// profile values. Zero means "use the profile".
	Iterations int
	Attempts   int
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Iterations < 0 {
		return nil, errors.New("iterations cannot be negative")
	}
	if cfg.Attempts < 0 {
		return nil, errors.New("attempts cannot be negative")
	}
	return &cfg, nil
}
