package ggui

import "errors"

// Sentinel errors for ggui package.
var (
	// ErrNilRenderer is returned by NewFrame when no renderer is provided.
	ErrNilRenderer = errors.New("ggui: renderer is nil")
)

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "ggui: invalid config." + e.Field + ": " + e.Reason
}
